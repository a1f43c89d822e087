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
)

// RegularConfig describes a regular polygon.
type RegularConfig struct {
	// Vertices is the number of vertices. Must be at least 3.
	Vertices int

	// Radius is the distance from the center to each vertex, in cells.
	// Zero selects the largest radius which fits the grid
	// (size/2 for odd sizes, size/2-1 for even sizes).
	Radius int

	// Center is the center of the polygon.
	// Nil places the center at (r, r), where r is the effective radius.
	Center *image.Point

	// Angle rotates the polygon clockwise, in degrees.
	// For angle 0 the first vertex lies straight above the center.
	Angle float64

	// Static computes the vertices once, when the shape is created.
	// Radius and Center must then be set explicitly. Otherwise the
	// vertices are recomputed for the grid size on every call to
	// Generate.
	Static bool
}

// RegularPolygon is a polygon with equal sides and equal angles.
type RegularPolygon struct {
	mask
	cfg RegularConfig
}

var _ Shape = (*RegularPolygon)(nil)

// NewRegularPolygon returns a regular polygon with the given parameters.
func NewRegularPolygon(cfg RegularConfig) (*RegularPolygon, error) {
	if cfg.Vertices < minVertices {
		return nil, fmt.Errorf("shapemask: regular polygon with %d vertices: %w",
			cfg.Vertices, ErrInvalidShape)
	}
	if cfg.Radius < 0 {
		return nil, fmt.Errorf("shapemask: regular polygon with radius %d: %w",
			cfg.Radius, ErrInvalidShape)
	}
	if cfg.Center != nil {
		c := *cfg.Center
		cfg.Center = &c
	}

	p := &RegularPolygon{cfg: cfg}
	if cfg.Static {
		if cfg.Radius == 0 || cfg.Center == nil {
			return nil, fmt.Errorf("shapemask: static regular polygon needs radius and center: %w",
				ErrInvalidShape)
		}
		p.vertices = p.compute(0)
	}
	return p, nil
}

// Generate renders the polygon into a new size×size grid.
func (p *RegularPolygon) Generate(size int) error {
	pts := p.vertices
	if !p.cfg.Static {
		pts = p.compute(size)
	}
	return p.render(size, pts, drawClosed)
}

// compute returns the vertices for a size×size grid.
func (p *RegularPolygon) compute(size int) []image.Point {
	r := p.cfg.Radius
	if r == 0 {
		r = defaultRadius(size)
	}
	center := image.Point{X: r, Y: r}
	if p.cfg.Center != nil {
		center = *p.cfg.Center
	}
	return RegularVertices(p.cfg.Vertices, r, center, p.cfg.Angle)
}
