package testcases

var regularCases = []TestCase{
	{
		Name:  "hexagon",
		Size:  25,
		Shape: Regular{Vertices: 6, Radius: 10, Center: center(12, 12)},
	},
	{
		Name:  "octagon_rotated",
		Size:  30,
		Shape: Regular{Vertices: 8, Angle: 22.5},
	},
	{
		// size 20 would put a vertex exactly on a rounding tie
		Name:  "triangle_default",
		Size:  22,
		Shape: Regular{Vertices: 3},
	},
}

var starCases = []TestCase{
	{
		Name:  "five_default",
		Size:  31,
		Shape: Star{Points: 5},
	},
	{
		Name:  "seven_rotated",
		Size:  40,
		Shape: Star{Points: 7, Angle: 10},
	},
	{
		Name:  "six",
		Size:  29,
		Shape: Star{Points: 6, OuterRadius: 12, InnerRadius: 6, Center: center(14, 14)},
	},
}
