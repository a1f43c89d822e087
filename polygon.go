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

package shapemask

import (
	"fmt"
	"image"
	"slices"
)

// Polygon is a shape with a fixed list of vertices.
// Consecutive vertices are joined by edges, and the last vertex is
// joined to the first one.
type Polygon struct {
	mask
}

var _ Shape = (*Polygon)(nil)

// NewPolygon returns a polygon with the given vertices.
// At least three vertices are required.
func NewPolygon(points []image.Point) (*Polygon, error) {
	if len(points) < minVertices {
		return nil, fmt.Errorf("shapemask: polygon with %d vertices: %w",
			len(points), ErrInvalidShape)
	}
	return &Polygon{
		mask: mask{vertices: slices.Clone(points)},
	}, nil
}

// NewRectangle returns the axis-aligned rectangle covering width×height
// cells, with its top-left cell at origin.
func NewRectangle(width, height int, origin image.Point) (*Polygon, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("shapemask: %dx%d rectangle: %w",
			width, height, ErrInvalidShape)
	}
	x0, y0 := origin.X, origin.Y
	x1, y1 := x0+width-1, y0+height-1
	return NewPolygon([]image.Point{
		{X: x0, Y: y0},
		{X: x0, Y: y1},
		{X: x1, Y: y1},
		{X: x1, Y: y0},
	})
}

// Generate renders the polygon into a new size×size grid.
func (p *Polygon) Generate(size int) error {
	return p.render(size, p.vertices, drawClosed)
}
