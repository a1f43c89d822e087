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

// edge is a non-horizontal polygon edge in grid coordinates.
type edge struct {
	x0, y0 int // start point
	x1, y1 int // end point
}

// straddles reports whether the horizontal line at y separates the two
// endpoints of e. An endpoint exactly on the line counts as lying below
// it, so that a ray through a shared vertex is counted once.
func (e *edge) straddles(y int) bool {
	return (y < e.y0) != (y < e.y1)
}

// crossesRight reports whether the ray from (x, y) towards +x crosses
// e. The caller must make sure that e straddles y.
func (e *edge) crossesRight(x, y int) bool {
	// x < x0 + (x1-x0)*(y-y0)/(y1-y0), multiplied out to avoid division
	d := e.y1 - e.y0
	lhs := (x - e.x0) * d
	rhs := (e.x1 - e.x0) * (y - e.y0)
	if d > 0 {
		return lhs < rhs
	}
	return lhs > rhs
}

// collectEdges appends the edges of the closed ring through pts to dst.
// Horizontal edges never straddle a scan line and are skipped.
func collectEdges(dst []edge, pts []image.Point) []edge {
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		if p.Y == q.Y {
			continue
		}
		dst = append(dst, edge{x0: p.X, y0: p.Y, x1: q.X, y1: q.Y})
	}
	return dst
}

// Inside reports whether p lies inside the closed polygon through pts,
// using the even-odd rule: a horizontal ray from p towards +x must cross
// the outline an odd number of times.
func Inside(p image.Point, pts []image.Point) bool {
	inside := false
	for _, e := range collectEdges(nil, pts) {
		if e.straddles(p.Y) && e.crossesRight(p.X, p.Y) {
			inside = !inside
		}
	}
	return inside
}

// fillInterior sets all grid cells inside the closed polygon through pts
// to c. Only cells within the bounding box of pts are tested.
func fillInterior(g *Grid, pts []image.Point, c Cell) error {
	if g == nil {
		return ErrUngenerated
	}
	box, ok := boundingBox(pts)
	if !ok {
		return ErrUngenerated
	}

	// Cells outside the grid are never written, so the scan can be
	// limited to the part of the box which overlaps the grid.
	xMin := max(box.Min.X, 0)
	xMax := min(box.Max.X, g.size-1)
	yMin := max(box.Min.Y, 0)
	yMax := min(box.Max.Y, g.size-1)
	if xMin > xMax || yMin > yMax {
		return nil
	}

	edges := collectEdges(nil, pts)
	active := make([]*edge, 0, len(edges))
	for y := yMin; y <= yMax; y++ {
		// Only edges straddling this scan line can be crossed.
		active = active[:0]
		for i := range edges {
			if edges[i].straddles(y) {
				active = append(active, &edges[i])
			}
		}
		if len(active) == 0 {
			continue
		}

		for x := xMin; x <= xMax; x++ {
			inside := false
			for _, e := range active {
				if e.crossesRight(x, y) {
					inside = !inside
				}
			}
			if inside {
				g.Set(x, y, c)
			}
		}
	}
	return nil
}
