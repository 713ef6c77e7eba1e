//go:build !tinygo && cgo

package hal

import (
	"fmt"

	"wirebox/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

const windowScale = 6

// RunWindow starts a desktop window that shows the panel scaled up.
// It blocks until the window closes.
func RunWindow(newApp func(HAL) func() error) error {
	h := New().(*hostHAL)
	step := newApp(h)

	g := &hostGame{h: h, step: step}
	ebiten.SetWindowTitle("wirebox (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(h.disp.width*windowScale, h.disp.height*windowScale)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h       *hostHAL
	pix     []byte
	fbImg   *ebiten.Image
	scratch []byte
	step    func() error
}

func (g *hostGame) Update() error {
	g.h.t.step()
	if g.step != nil {
		if err := g.step(); err != nil {
			return err
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	d := g.h.disp
	if g.fbImg == nil {
		g.pix = make([]byte, d.width*d.height*4)
		g.scratch = make([]byte, len(d.buf))
		g.fbImg = ebiten.NewImage(d.width, d.height)
	}

	d.snapshot(g.scratch)
	ExpandMono(g.pix, g.scratch, d.width, d.height)
	g.fbImg.WritePixels(g.pix)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(windowScale, windowScale)
	screen.DrawImage(g.fbImg, op)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%.0f FPS", ebiten.ActualTPS()), 4, d.height*windowScale-20)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.disp.width * windowScale, g.h.disp.height * windowScale
}
