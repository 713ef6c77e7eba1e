//go:build !tinygo

package hal

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestHostDisplayPresentCopies(t *testing.T) {
	d := newHostDisplay(128, 64)
	if got := len(d.buf); got != 1024 {
		t.Fatalf("display buffer = %d bytes, want 1024", got)
	}

	frame := make([]byte, 1024)
	frame[0] = 0x81
	if err := d.Present(frame); err != nil {
		t.Fatalf("Present: %v", err)
	}
	frame[0] = 0

	snap := make([]byte, 1024)
	if n := d.snapshot(snap); n != 1 {
		t.Fatalf("frames = %d, want 1", n)
	}
	if snap[0] != 0x81 {
		t.Fatalf("snapshot[0] = %#02x, want 0x81 (Present must copy)", snap[0])
	}
}

func TestHostDisplayRejectsWrongSize(t *testing.T) {
	d := newHostDisplay(128, 64)
	err := d.Present(make([]byte, 512))
	if !errors.Is(err, ErrFrameSize) {
		t.Fatalf("Present error = %v, want ErrFrameSize", err)
	}
}

func TestExpandMono(t *testing.T) {
	src := make([]byte, 16) // 16x8
	src[3] = 0x01 | 0x80    // (3,0) and (3,7)
	dst := make([]byte, 16*8*4)
	ExpandMono(dst, src, 16, 8)

	at := func(x, y int) byte { return dst[(y*16+x)*4] }
	if at(3, 0) != PixelOn.R || at(3, 7) != PixelOn.R {
		t.Fatalf("lit pixels not expanded")
	}
	if at(3, 1) != PixelOff.R || at(0, 0) != PixelOff.R {
		t.Fatalf("dark pixels not expanded")
	}
	if dst[3] != 0xFF {
		t.Fatalf("alpha = %#02x", dst[3])
	}
}

func TestHostTimeTicks(t *testing.T) {
	ht := newHostTime()
	base := time.Unix(100, 0)
	ht.advance(base)
	ht.advance(base.Add(2500 * time.Microsecond))
	ht.advance(base.Add(3000 * time.Microsecond))

	if got := len(ht.Ticks()); got != 3 {
		t.Fatalf("ticks queued = %d, want 3", got)
	}
	for want := uint64(1); want <= 3; want++ {
		if got := <-ht.Ticks(); got != want {
			t.Fatalf("tick = %d, want %d", got, want)
		}
	}
	if ht.TicksPerSecond() != 1000 {
		t.Fatalf("TicksPerSecond = %d", ht.TicksPerSecond())
	}
}

func TestHostLEDLogs(t *testing.T) {
	var out bytes.Buffer
	h := newHost(&out)
	h.LED().High()
	h.LED().Low()
	if got := out.String(); got != "led: HIGH\nled: LOW\n" {
		t.Fatalf("log = %q", got)
	}
}

func TestTermPreviewPlainOutput(t *testing.T) {
	d := newHostDisplay(128, 64)
	frame := make([]byte, 1024)
	frame[0] = 0x01 // (0,0)
	frame[1] = 0x02 // (1,1)
	if err := d.Present(frame); err != nil {
		t.Fatalf("Present: %v", err)
	}

	var out bytes.Buffer
	p := newTermPreview(&out, -1, d)
	p.update()
	if out.Len() != 0 {
		t.Fatalf("non-terminal preview wrote during update")
	}
	p.finish()

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	if len(lines) != 32 {
		t.Fatalf("lines = %d, want 32", len(lines))
	}
	if !strings.HasPrefix(lines[0], "▀▄ ") {
		t.Fatalf("first line starts %q", []rune(lines[0])[:3])
	}
}

func TestRunHeadlessStopsAfterTicks(t *testing.T) {
	var steps int
	err := RunHeadless(context.Background(), func(h HAL) func() error {
		return func() error {
			steps++
			return nil
		}
	}, HeadlessConfig{Hz: 1000, Ticks: 5})
	if err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}
	if steps != 5 {
		t.Fatalf("steps = %d, want 5", steps)
	}
}

func TestRunHeadlessReturnsStepError(t *testing.T) {
	boom := errors.New("boom")
	err := RunHeadless(context.Background(), func(h HAL) func() error {
		return func() error { return boom }
	}, HeadlessConfig{Hz: 1000})
	if !errors.Is(err, boom) {
		t.Fatalf("RunHeadless error = %v, want boom", err)
	}
}

func TestTermPreviewCompact(t *testing.T) {
	d := newHostDisplay(128, 64)
	frame := make([]byte, 1024)
	frame[1] = 0x02 // (1,1): top-left cell
	frame[2] = 0x08 // (2,3): bottom half of the second character
	if err := d.Present(frame); err != nil {
		t.Fatalf("Present: %v", err)
	}

	var out bytes.Buffer
	p := newTermPreview(&out, -1, d)
	p.compact = true
	p.finish()

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	if len(lines) != 16 {
		t.Fatalf("lines = %d, want 16", len(lines))
	}
	row := []rune(lines[0])
	if len(row) != 64 {
		t.Fatalf("columns = %d, want 64", len(row))
	}
	if string(row[:3]) != "▀▄ " {
		t.Fatalf("first cells = %q", string(row[:3]))
	}
}
