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
	"image"
	"strings"
)

// Grid is a square grid of cells, stored in row-major order.
type Grid struct {
	size  int
	cells []Cell
}

// NewGrid allocates a size×size grid with all cells set to Inactive.
func NewGrid(size int) *Grid {
	size = max(size, 0)
	return &Grid{
		size:  size,
		cells: make([]Cell, size*size),
	}
}

// Size returns the number of rows (and columns) of the grid.
func (g *Grid) Size() int {
	return g.size
}

// In reports whether (x, y) is a cell of the grid.
func (g *Grid) In(x, y int) bool {
	return inBounds(x, y, g.size)
}

// At returns the cell at (x, y).
// Cells outside the grid are reported as Inactive.
func (g *Grid) At(x, y int) Cell {
	if !g.In(x, y) {
		return Inactive
	}
	return g.cells[y*g.size+x]
}

// Set changes the cell at (x, y).
// Writes outside the grid are ignored.
func (g *Grid) Set(x, y int, c Cell) {
	if !g.In(x, y) {
		return
	}
	g.cells[y*g.size+x] = c
}

// Count returns the number of cells with state c.
func (g *Grid) Count(c Cell) int {
	n := 0
	for _, cell := range g.cells {
		if cell == c {
			n++
		}
	}
	return n
}

// Equal reports whether two grids have the same size and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.size != other.size {
		return false
	}
	for i, c := range g.cells {
		if other.cells[i] != c {
			return false
		}
	}
	return true
}

// String renders the grid as text, one line per row, using
// [Cell.String] for the individual cells.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.size * (g.size + 1))
	for y := range g.size {
		for _, c := range g.cells[y*g.size : (y+1)*g.size] {
			b.WriteString(c.String())
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Alpha converts the grid into an alpha mask image, with opaque pixels
// for active cells and transparent pixels for inactive cells.
func (g *Grid) Alpha() *image.Alpha {
	img := image.NewAlpha(image.Rect(0, 0, g.size, g.size))
	for y := range g.size {
		row := img.Pix[y*img.Stride:]
		for x, c := range g.cells[y*g.size : (y+1)*g.size] {
			if c == Active {
				row[x] = 0xFF
			}
		}
	}
	return img
}
