// Package scene holds the static wireframe meshes and their integrity checks.
package scene

import (
	"errors"
	"fmt"

	"wirebox/gfx/vecmath"
)

// Capacities of every per-frame scratch array. Meshes above them are rejected.
const (
	MaxVertices = 57
	MaxEdges    = 68
)

var (
	ErrNoMesh          = errors.New("scene: nil mesh")
	ErrUnknownScene    = errors.New("scene: unknown scene")
	ErrTooManyVertices = errors.New("scene: too many vertices")
	ErrTooManyEdges    = errors.New("scene: too many edges")
	ErrEdgeOutOfRange  = errors.New("scene: edge index out of range")
	ErrDegenerateEdge  = errors.New("scene: degenerate edge")
	ErrDuplicateEdge   = errors.New("scene: duplicate edge")
)

// Edge is one wireframe line between two vertex indices.
type Edge struct {
	A, B uint8
}

// Mesh is a read-only vertex and edge table.
type Mesh struct {
	Name     string
	Vertices []vecmath.Vec3
	Edges    []Edge
}

// Validate checks the table invariants: capacity, index range, no degenerate
// and no duplicate edges (in either direction).
func Validate(m *Mesh) error {
	if m == nil {
		return ErrNoMesh
	}
	if len(m.Vertices) > MaxVertices {
		return fmt.Errorf("%w: %s has %d (max %d)", ErrTooManyVertices, m.Name, len(m.Vertices), MaxVertices)
	}
	if len(m.Edges) > MaxEdges {
		return fmt.Errorf("%w: %s has %d (max %d)", ErrTooManyEdges, m.Name, len(m.Edges), MaxEdges)
	}

	var seen [MaxVertices][MaxVertices/8 + 1]uint8
	for i, e := range m.Edges {
		if int(e.A) >= len(m.Vertices) || int(e.B) >= len(m.Vertices) {
			return fmt.Errorf("%w: %s edge %d (%d, %d)", ErrEdgeOutOfRange, m.Name, i, e.A, e.B)
		}
		if e.A == e.B {
			return fmt.Errorf("%w: %s edge %d (%d, %d)", ErrDegenerateEdge, m.Name, i, e.A, e.B)
		}
		lo, hi := e.A, e.B
		if lo > hi {
			lo, hi = hi, lo
		}
		bit := uint8(1) << (hi % 8)
		if seen[lo][hi/8]&bit != 0 {
			return fmt.Errorf("%w: %s edge %d (%d, %d)", ErrDuplicateEdge, m.Name, i, e.A, e.B)
		}
		seen[lo][hi/8] |= bit
	}
	return nil
}

// Lookup returns a built-in mesh by name.
func Lookup(name string) (*Mesh, bool) {
	switch name {
	case "house", "":
		return &House, true
	case "cube":
		return &Cube, true
	}
	return nil, false
}

// ByName is Lookup with an ErrUnknownScene error for unknown names.
func ByName(name string) (*Mesh, error) {
	m, ok := Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	return m, nil
}

// Names lists the built-in meshes.
func Names() []string { return []string{"house", "cube"} }
