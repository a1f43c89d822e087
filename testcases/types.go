// seehuhn.de/go/shapemask - binary occupancy masks for simple shapes
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package testcases defines the shapes used to check mask generation
// against the reference masks in testdata/reference.
package testcases

import (
	"fmt"
	"image"

	"seehuhn.de/go/shapemask"
)

// TestCase defines a single mask generation test.
type TestCase struct {
	Name  string // lowercase a-z, 0-9 and _ only
	Size  int    // grid size in cells
	Shape Shape  // the shape to render
}

// Shape is the shape description of a test case.
type Shape interface {
	isShape()
}

// Polygon is a polygon with explicit vertices.
type Polygon struct {
	Points []image.Point
}

func (Polygon) isShape() {}

// Rectangle is an axis-aligned rectangle.
type Rectangle struct {
	Width, Height int
	Origin        image.Point
}

func (Rectangle) isShape() {}

// Regular is a regular polygon. Zero values select the defaults of
// [shapemask.RegularConfig].
type Regular struct {
	Vertices int
	Radius   int
	Center   *image.Point
	Angle    float64
}

func (Regular) isShape() {}

// Star is a star. Zero values select the defaults of
// [shapemask.StarConfig].
type Star struct {
	Points      int
	OuterRadius int
	InnerRadius int
	Center      *image.Point
	Angle       float64
}

func (Star) isShape() {}

// New constructs the shape described by tc.
func (tc TestCase) New() (shapemask.Shape, error) {
	switch s := tc.Shape.(type) {
	case Polygon:
		return shapemask.NewPolygon(s.Points)
	case Rectangle:
		return shapemask.NewRectangle(s.Width, s.Height, s.Origin)
	case Regular:
		return shapemask.NewRegularPolygon(shapemask.RegularConfig{
			Vertices: s.Vertices,
			Radius:   s.Radius,
			Center:   s.Center,
			Angle:    s.Angle,
		})
	case Star:
		return shapemask.NewStar(shapemask.StarConfig{
			Points:      s.Points,
			OuterRadius: s.OuterRadius,
			InnerRadius: s.InnerRadius,
			Center:      s.Center,
			Angle:       s.Angle,
		})
	default:
		return nil, fmt.Errorf("%s: unknown shape type %T", tc.Name, tc.Shape)
	}
}

// pt is a helper to create an image.Point from x, y coordinates.
func pt(x, y int) image.Point {
	return image.Point{X: x, Y: y}
}

// center is a helper for the optional center of parametric shapes.
func center(x, y int) *image.Point {
	return &image.Point{X: x, Y: y}
}
