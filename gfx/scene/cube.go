package scene

import "wirebox/gfx/vecmath"

var cubeVertices = [8]vecmath.Vec3{
	// Front face (z = -0.5).
	{X: -0x800, Y: -0x800, Z: -0x800},
	{X: 0x800, Y: -0x800, Z: -0x800},
	{X: 0x800, Y: 0x800, Z: -0x800},
	{X: -0x800, Y: 0x800, Z: -0x800},
	// Back face (z = +0.5).
	{X: -0x800, Y: -0x800, Z: 0x800},
	{X: 0x800, Y: -0x800, Z: 0x800},
	{X: 0x800, Y: 0x800, Z: 0x800},
	{X: -0x800, Y: 0x800, Z: 0x800},
}

var cubeEdges = [12]Edge{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// Cube is a unit cube centered on the origin.
var Cube = Mesh{
	Name:     "cube",
	Vertices: cubeVertices[:],
	Edges:    cubeEdges[:],
}
