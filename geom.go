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
)

// RoundHalfUp rounds x to the nearest integer.
// Ties are rounded towards positive infinity, so that 2.5 becomes 3
// and -2.5 becomes -2.
func RoundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

// inBounds reports whether (x, y) lies in [0, size)×[0, size).
func inBounds(x, y, size int) bool {
	return x >= 0 && x < size && y >= 0 && y < size
}

// BBox is an axis-aligned bounding box in grid coordinates.
// Both corners are included in the box.
type BBox struct {
	Min, Max image.Point
}

// Rect returns the half-open rectangle covering the same cells as b.
func (b BBox) Rect() image.Rectangle {
	return image.Rectangle{Min: b.Min, Max: b.Max.Add(image.Point{X: 1, Y: 1})}
}

// Contains reports whether p lies inside b.
func (b BBox) Contains(p image.Point) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// boundingBox computes the bounding box of pts.
// The result is false if pts is empty.
func boundingBox(pts []image.Point) (BBox, bool) {
	if len(pts) == 0 {
		return BBox{}, false
	}
	b := BBox{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		b.Min.X = min(b.Min.X, p.X)
		b.Min.Y = min(b.Min.Y, p.Y)
		b.Max.X = max(b.Max.X, p.X)
		b.Max.Y = max(b.Max.Y, p.Y)
	}
	return b, true
}
