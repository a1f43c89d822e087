package testcases

// clipCases have vertices outside the grid.
var clipCases = []TestCase{
	{
		Name:  "pentagon_corner",
		Size:  16,
		Shape: Regular{Vertices: 5, Radius: 12, Center: center(1, 1)},
	},
	{
		Name:  "rectangle_overhang",
		Size:  8,
		Shape: Rectangle{Width: 10, Height: 10, Origin: pt(-3, -3)},
	},
	{
		Name:  "star_offgrid",
		Size:  20,
		Shape: Star{Points: 5, OuterRadius: 14, InnerRadius: 6, Center: center(17, 3)},
	},
}
