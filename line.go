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

import "image"

// drawLine sets the cells on the Bresenham line from p1 to p2 to c.
//
// The line is stepped over its full length and clipped per cell, so that
// off-grid segments produce the same on-grid cells as a longer line
// would. If the line is longer in x than in y, the final point p2 is
// not drawn; otherwise it is. Outlines rely on the adjacent edge to
// cover the missing endpoint.
func drawLine(g *Grid, p1, p2 image.Point, c Cell) {
	x, y := p1.X, p1.Y
	dx := abs(p2.X - p1.X)
	dy := abs(p2.Y - p1.Y)
	sx, sy := 1, 1
	if p1.X > p2.X {
		sx = -1
	}
	if p1.Y > p2.Y {
		sy = -1
	}

	// err holds twice the Bresenham error term, so that the initial
	// half step is an integer.
	if dx > dy {
		err := dx
		for x != p2.X {
			g.Set(x, y, c)
			err -= 2 * dy
			if err < 0 {
				y += sy
				err += 2 * dx
			}
			x += sx
		}
		return
	}

	err := dy
	for y != p2.Y {
		g.Set(x, y, c)
		err -= 2 * dx
		if err < 0 {
			x += sx
			err += 2 * dy
		}
		y += sy
	}
	g.Set(x, y, c)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
