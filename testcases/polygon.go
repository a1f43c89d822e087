package testcases

import "image"

var polygonCases = []TestCase{
	{
		Name:  "arrow",
		Size:  16,
		Shape: Polygon{Points: []image.Point{pt(2, 2), pt(12, 2), pt(7, 7), pt(12, 12), pt(2, 12)}},
	},
	{
		Name:  "diamond",
		Size:  17,
		Shape: Polygon{Points: []image.Point{pt(8, 1), pt(15, 8), pt(8, 15), pt(1, 8)}},
	},
	{
		Name:  "triangle",
		Size:  5,
		Shape: Polygon{Points: []image.Point{pt(0, 0), pt(4, 0), pt(2, 4)}},
	},
}

var rectangleCases = []TestCase{
	{
		Name:  "square",
		Size:  10,
		Shape: Rectangle{Width: 5, Height: 5, Origin: pt(2, 2)},
	},
	{
		Name:  "wide",
		Size:  16,
		Shape: Rectangle{Width: 12, Height: 3, Origin: pt(1, 4)},
	},
}
