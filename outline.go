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

// drawClosed draws the closed outline through pts, including the edge from
// the last vertex back to the first, and then fills the interior.
func drawClosed(g *Grid, pts []image.Point) error {
	if g == nil {
		return ErrUngenerated
	}
	for i, p := range pts {
		drawLine(g, p, pts[(i+1)%len(pts)], Active)
	}
	return fillInterior(g, pts, Active)
}

// drawHalves draws the outline through pts as two open chains which both
// start at the first vertex, and then fills the interior of the closed
// polygon. This gives symmetric results for self-intersecting outlines
// like stars, where a single closed loop renders the two sides unevenly.
func drawHalves(g *Grid, pts []image.Point) error {
	if g == nil {
		return ErrUngenerated
	}
	left, right := splitChains(pts)
	for _, chain := range [][]image.Point{left, right} {
		for i := 1; i < len(chain); i++ {
			drawLine(g, chain[i-1], chain[i], Active)
		}
	}
	return fillInterior(g, pts, Active)
}

// splitChains splits the vertex cycle pts into two open chains starting
// at pts[0]. The left chain follows the vertices in order, the right
// chain runs backwards from the last vertex.
func splitChains(pts []image.Point) (left, right []image.Point) {
	n := len(pts)
	if n == 0 {
		return nil, nil
	}

	leftLen := n/2 + 1
	if n%2 != 0 {
		leftLen = n/2 + 2
	}
	leftLen = min(leftLen, n)
	left = pts[:leftLen:leftLen]

	right = make([]image.Point, 0, n/2+1)
	right = append(right, pts[0])
	for i := range n / 2 {
		right = append(right, pts[n-1-i])
	}
	return left, right
}
