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

// mask holds the generation state shared by all shapes.
// A nil grid means that the shape has not been generated yet.
type mask struct {
	grid     *Grid
	vertices []image.Point
}

// Mask returns the grid produced by the last successful call to Generate.
// The grid belongs to the shape; later calls to Generate allocate a new
// grid and leave previously returned grids unchanged.
func (m *mask) Mask() (*Grid, error) {
	if m.grid == nil {
		return nil, ErrUngenerated
	}
	return m.grid, nil
}

// Vertices returns a copy of the current vertex list.
func (m *mask) Vertices() []image.Point {
	return slices.Clone(m.vertices)
}

// BoundingBox returns the inclusive bounding box of the current vertices.
func (m *mask) BoundingBox() (BBox, bool) {
	return boundingBox(m.vertices)
}

// render draws pts into a fresh size×size grid using draw. The grid and
// the vertices are only stored once drawing has succeeded, so that a
// failed call leaves the previous state in place.
func (m *mask) render(size int, pts []image.Point, draw func(*Grid, []image.Point) error) error {
	if err := checkSize(size); err != nil {
		return err
	}
	g := NewGrid(size)
	if err := draw(g, pts); err != nil {
		return err
	}
	m.grid = g
	m.vertices = pts
	return nil
}

func checkSize(size int) error {
	if size < 1 {
		return fmt.Errorf("shapemask: size %d: %w", size, ErrInvalidSize)
	}
	return nil
}

// minVertices is the smallest number of vertices of a polygon, and the
// smallest number of points of a star.
const minVertices = 3
