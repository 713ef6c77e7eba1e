package scene

import "wirebox/gfx/vecmath"

// House scene coordinates in Q4.12. Model +Y points down the screen.
var houseVertices = [MaxVertices]vecmath.Vec3{
	// Walls.
	{X: 0x800, Y: 0x800, Z: 0x800},
	{X: -0x800, Y: 0x800, Z: 0x800},
	{X: -0x800, Y: -0x800, Z: 0x800},
	{X: 0x800, Y: -0x800, Z: 0x800},
	{X: 0x800, Y: 0x800, Z: -0x800},
	{X: -0x800, Y: 0x800, Z: -0x800},
	{X: -0x800, Y: -0x800, Z: -0x800},
	{X: 0x800, Y: -0x800, Z: -0x800},

	// Roof.
	{X: 0x000, Y: -0x1400, Z: 0x000},

	// Door.
	{X: -0x100, Y: 0x800, Z: -0x800},
	{X: -0x600, Y: 0x800, Z: -0x800},
	{X: -0x600, Y: 0x200, Z: -0x800},
	{X: -0x100, Y: 0x200, Z: -0x800},

	// Front window.
	{X: 0x500, Y: -0x200, Z: -0x800},
	{X: 0x200, Y: -0x200, Z: -0x800},
	{X: 0x200, Y: -0x500, Z: -0x800},
	{X: 0x500, Y: -0x500, Z: -0x800},

	// Left window.
	{X: -0x800, Y: 0x500, Z: 0x200},
	{X: -0x800, Y: 0x500, Z: 0x500},
	{X: -0x800, Y: 0x200, Z: 0x500},
	{X: -0x800, Y: 0x200, Z: 0x200},

	// Car.
	{X: -0x800, Y: 0x800, Z: 0xb00},
	{X: 0x800, Y: 0x800, Z: 0xb00},
	{X: 0x800, Y: 0x500, Z: 0xb00},
	{X: 0x400, Y: 0x500, Z: 0xb00},
	{X: 0x200, Y: 0x200, Z: 0xb00},
	{X: -0x600, Y: 0x200, Z: 0xb00},
	{X: -0x800, Y: 0x500, Z: 0xb00},
	{X: -0x800, Y: 0x800, Z: 0x1200},
	{X: 0x800, Y: 0x800, Z: 0x1200},
	{X: 0x800, Y: 0x500, Z: 0x1200},
	{X: 0x400, Y: 0x500, Z: 0x1200},
	{X: 0x200, Y: 0x200, Z: 0x1200},
	{X: -0x600, Y: 0x200, Z: 0x1200},
	{X: -0x800, Y: 0x500, Z: 0x1200},

	// Tree.
	{X: 0x1000, Y: 0x800, Z: 0x000},
	{X: 0x1000, Y: -0x1400, Z: 0x000},
	{X: 0x1000, Y: 0x200, Z: 0x000}, // branch base
	{X: 0x1400, Y: -0x1000, Z: 0x000},
	{X: 0xc00, Y: -0x1000, Z: 0x000},
	{X: 0x1000, Y: -0x1000, Z: 0x400},
	{X: 0x1000, Y: -0x1000, Z: -0x400},

	// Fence.
	{X: -0x800, Y: 0x800, Z: 0x000},
	{X: -0x1400, Y: 0x800, Z: 0x000},
	{X: -0x1400, Y: 0x200, Z: 0x000},
	{X: -0x1200, Y: 0x000, Z: 0x000},
	{X: -0x1000, Y: 0x200, Z: 0x000},
	{X: -0xe00, Y: 0x000, Z: 0x000},
	{X: -0xc00, Y: 0x200, Z: 0x000},
	{X: -0xa00, Y: 0x000, Z: 0x000},
	{X: -0x800, Y: 0x200, Z: 0x000},
	{X: -0x1000, Y: 0x800, Z: 0x000},
	{X: -0xc00, Y: 0x800, Z: 0x000},

	// Welcome mat.
	{X: -0x100, Y: 0x800, Z: -0x900},
	{X: -0x600, Y: 0x800, Z: -0x900},
	{X: -0x600, Y: 0x800, Z: -0xc00},
	{X: -0x100, Y: 0x800, Z: -0xc00},
}

var houseEdges = [MaxEdges]Edge{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
	{2, 8}, {3, 8}, {6, 8}, {7, 8}, // roof
	{10, 11}, {11, 12}, {12, 9}, // door
	{13, 14}, {14, 15}, {15, 16}, {16, 13}, // front window
	{17, 18}, {18, 19}, {19, 20}, {20, 17}, // left window
	{21, 22}, {22, 23}, {23, 24}, {24, 25}, {25, 26}, {26, 27}, {27, 21}, // car inner side
	{28, 29}, {29, 30}, {30, 31}, {31, 32}, {32, 33}, {33, 34}, {34, 28}, // car outer side
	{21, 28}, {22, 29}, {23, 30}, {24, 31}, {25, 32}, {26, 33}, {27, 34}, // car body
	{35, 36}, {37, 38}, {37, 39}, {37, 40}, {37, 41}, // tree
	{42, 43}, {43, 44}, {44, 45}, {45, 46}, {46, 47}, {47, 48}, {48, 49}, {49, 50}, {50, 42}, {46, 51}, {48, 52}, // fence
	{53, 54}, {54, 55}, {55, 56}, {56, 53}, // welcome mat
}

// House is the house, car, tree, fence and welcome mat scene.
var House = Mesh{
	Name:     "house",
	Vertices: houseVertices[:],
	Edges:    houseEdges[:],
}
