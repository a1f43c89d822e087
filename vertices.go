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
	"math"

	"seehuhn.de/go/geom/vec"
)

// northOffset rotates the start angle so that the first vertex of a
// shape points towards row 0.
const northOffset = -90.0

// RegularVertices returns the n vertices of a regular polygon with the
// given radius and center. The angle, in degrees, rotates the polygon
// clockwise on the grid; for angle 0 the first vertex lies straight
// above the center. Vertices are rounded using [RoundHalfUp].
func RegularVertices(n, radius int, center image.Point, angle float64) []image.Point {
	if n <= 0 {
		return nil
	}
	c := vec.Vec2{X: float64(center.X), Y: float64(center.Y)}
	r := float64(radius)

	pts := make([]image.Point, 0, n)
	step := 360.0 / float64(n)
	angle += northOffset
	for range n {
		pts = append(pts, gridVertex(cosSinDeg(angle), r, c))
		angle += step
	}
	return pts
}

// StarVertices returns the 2n vertices of a star with n points.
// Outer vertices (at distance outer from the center) and inner
// vertices (at distance inner) alternate, starting with an outer vertex.
// The angle is interpreted as for [RegularVertices].
func StarVertices(n, outer, inner int, center image.Point, angle float64) []image.Point {
	if n <= 0 {
		return nil
	}
	c := vec.Vec2{X: float64(center.X), Y: float64(center.Y)}
	ro := float64(outer)
	ri := float64(inner)

	pts := make([]image.Point, 0, 2*n)
	step := 180.0 / float64(n)
	angle += northOffset
	for range n {
		pts = append(pts, gridVertex(cosSinDeg(angle), ro, c))
		angle += step
		pts = append(pts, gridVertex(cosSinDeg(angle), ri, c))
		angle += step
	}
	return pts
}

// gridVertex returns the grid cell at distance r from c in direction dir.
func gridVertex(dir vec.Vec2, r float64, c vec.Vec2) image.Point {
	// The explicit conversions stop the compiler from fusing the
	// multiply and add, which could move results across a rounding tie.
	d := dir.Mul(r)
	p := c.Add(vec.Vec2{X: float64(d.X), Y: float64(d.Y)})
	return image.Point{X: RoundHalfUp(p.X), Y: RoundHalfUp(p.Y)}
}

// cosSinDeg returns the unit vector (cos θ, sin θ) for θ in degrees.
// Multiples of 90 degrees give exact results.
func cosSinDeg(deg float64) vec.Vec2 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	switch deg {
	case 0:
		return vec.Vec2{X: 1, Y: 0}
	case 90:
		return vec.Vec2{X: 0, Y: 1}
	case 180:
		return vec.Vec2{X: -1, Y: 0}
	case 270:
		return vec.Vec2{X: 0, Y: -1}
	}
	rad := deg * (math.Pi / 180)
	return vec.Vec2{X: math.Cos(rad), Y: math.Sin(rad)}
}

// defaultRadius is the radius used for size-dependent shapes when no
// radius is given: the largest radius for which a shape centered at
// (r, r) fits into a size×size grid, leaving a margin on even sizes.
func defaultRadius(size int) int {
	if size%2 == 0 {
		return size/2 - 1
	}
	return size / 2
}
