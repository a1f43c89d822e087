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
	"errors"
	"image"
	"slices"
	"testing"
)

func TestRegularPolygonInvalid(t *testing.T) {
	cases := []RegularConfig{
		{Vertices: 2},
		{Vertices: -1},
		{Vertices: 5, Radius: -3},
		{Vertices: 5, Static: true},
		{Vertices: 5, Radius: 4, Static: true},
		{Vertices: 5, Center: &image.Point{X: 3, Y: 3}, Static: true},
	}
	for _, cfg := range cases {
		if _, err := NewRegularPolygon(cfg); !errors.Is(err, ErrInvalidShape) {
			t.Errorf("%+v: got %v, want ErrInvalidShape", cfg, err)
		}
	}
}

func TestRegularPolygonDefaults(t *testing.T) {
	p, err := NewRegularPolygon(RegularConfig{Vertices: 4})
	if err != nil {
		t.Fatal(err)
	}
	if v := p.Vertices(); v != nil {
		t.Errorf("vertices before Generate: %v", v)
	}
	if _, ok := p.BoundingBox(); ok {
		t.Error("bounding box before Generate")
	}

	// radius 10, centered at (10, 10)
	if err := p.Generate(22); err != nil {
		t.Fatal(err)
	}
	want := cells(10, 0, 20, 10, 10, 20, 0, 10)
	if got := p.Vertices(); !slices.Equal(got, want) {
		t.Errorf("size 22: got %v, want %v", got, want)
	}

	// dynamic shapes follow the grid size: radius 5, centered at (5, 5)
	if err := p.Generate(12); err != nil {
		t.Fatal(err)
	}
	want = cells(5, 0, 10, 5, 5, 10, 0, 5)
	if got := p.Vertices(); !slices.Equal(got, want) {
		t.Errorf("size 12: got %v, want %v", got, want)
	}
	box, _ := p.BoundingBox()
	if box != (BBox{Max: image.Pt(10, 10)}) {
		t.Errorf("bounding box %v", box)
	}
}

func TestRegularPolygonCenterDefaultsToRadius(t *testing.T) {
	p, _ := NewRegularPolygon(RegularConfig{Vertices: 4, Radius: 3})
	if err := p.Generate(20); err != nil {
		t.Fatal(err)
	}
	want := cells(3, 0, 6, 3, 3, 6, 0, 3)
	if got := p.Vertices(); !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestRegularPolygonStatic(t *testing.T) {
	c := image.Point{X: 6, Y: 6}
	p, err := NewRegularPolygon(RegularConfig{Vertices: 4, Radius: 4, Center: &c, Static: true})
	if err != nil {
		t.Fatal(err)
	}
	c.X = 100 // the shape keeps its own copy

	want := cells(6, 2, 10, 6, 6, 10, 2, 6)
	if got := p.Vertices(); !slices.Equal(got, want) {
		t.Errorf("before Generate: got %v, want %v", got, want)
	}
	for _, size := range []int{8, 30} {
		if err := p.Generate(size); err != nil {
			t.Fatal(err)
		}
		if got := p.Vertices(); !slices.Equal(got, want) {
			t.Errorf("size %d: got %v, want %v", size, got, want)
		}
	}
}

func TestRegularPolygonFilled(t *testing.T) {
	p, _ := NewRegularPolygon(RegularConfig{Vertices: 6, Radius: 10, Center: &image.Point{X: 12, Y: 12}})
	if err := p.Generate(25); err != nil {
		t.Fatal(err)
	}
	g, _ := p.Mask()
	if g.At(12, 12) != Active {
		t.Error("center is inactive")
	}
	for _, q := range p.Vertices() {
		if g.At(q.X, q.Y) != Active {
			t.Errorf("vertex %v is inactive", q)
		}
	}
	if g.At(0, 0) != Inactive || g.At(24, 24) != Inactive {
		t.Error("grid corners are active")
	}
}

func TestRegularPolygonInvalidSize(t *testing.T) {
	p, _ := NewRegularPolygon(RegularConfig{Vertices: 5})
	if err := p.Generate(15); err != nil {
		t.Fatal(err)
	}
	before, _ := p.Mask()
	v := p.Vertices()
	for _, size := range []int{0, -1} {
		if err := p.Generate(size); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("size %d: got %v, want ErrInvalidSize", size, err)
		}
	}
	if after, _ := p.Mask(); after != before {
		t.Error("mask changed by failed Generate")
	}
	if !slices.Equal(p.Vertices(), v) {
		t.Error("vertices changed by failed Generate")
	}
}
