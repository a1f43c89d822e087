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
	"testing"
)

func TestRoundHalfUp(t *testing.T) {
	cases := []struct {
		in   float64
		want int
	}{
		{2.5, 3},
		{-2.5, -2},
		{0.5, 1},
		{-0.5, 0},
		{2.4999, 2},
		{-2.6, -3},
		{-2.4, -2},
		{3, 3},
		{-3, -3},
		{0, 0},
	}
	for _, c := range cases {
		if got := RoundHalfUp(c.in); got != c.want {
			t.Errorf("RoundHalfUp(%g) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestInBounds(t *testing.T) {
	cases := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{4, 4, true},
		{5, 0, false},
		{0, 5, false},
		{-1, 2, false},
		{2, -1, false},
	}
	for _, c := range cases {
		if got := inBounds(c.x, c.y, 5); got != c.want {
			t.Errorf("inBounds(%d, %d, 5) = %t, want %t", c.x, c.y, got, c.want)
		}
	}
}

func TestBoundingBox(t *testing.T) {
	if _, ok := boundingBox(nil); ok {
		t.Error("bounding box of no points should not exist")
	}

	pts := []image.Point{{X: 3, Y: -2}, {X: -1, Y: 4}, {X: 7, Y: 1}}
	box, ok := boundingBox(pts)
	if !ok {
		t.Fatal("missing bounding box")
	}
	want := BBox{Min: image.Point{X: -1, Y: -2}, Max: image.Point{X: 7, Y: 4}}
	if box != want {
		t.Errorf("got %v, want %v", box, want)
	}

	r := box.Rect()
	if r.Dx() != 9 || r.Dy() != 7 {
		t.Errorf("Rect() = %v, want 9×7 cells", r)
	}
	for _, p := range pts {
		if !box.Contains(p) || !p.In(r) {
			t.Errorf("%v not contained in %v", p, box)
		}
	}
	if box.Contains(image.Point{X: 8, Y: 0}) {
		t.Error("(8, 0) should be outside the box")
	}
}
