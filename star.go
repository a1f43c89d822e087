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

// StarConfig describes a star.
type StarConfig struct {
	// Points is the number of outer vertices. Must be at least 3.
	Points int

	// OuterRadius is the distance from the center to the outer vertices.
	// Zero selects the largest radius which fits the grid.
	OuterRadius int

	// InnerRadius is the distance from the center to the inner vertices.
	// Zero selects half of the largest radius which fits the grid.
	InnerRadius int

	// Center is the center of the star. Nil centers the star on the
	// grid, at (R, R) where R is the largest radius which fits the grid.
	Center *image.Point

	// Angle rotates the star clockwise, in degrees.
	// For angle 0 the first outer vertex lies straight above the center.
	Angle float64

	// Static computes the vertices once, when the shape is created.
	// Both radii and the center must then be set explicitly.
	Static bool
}

// Star is a star-shaped polygon, alternating between outer and inner
// vertices. The outline is drawn as two open chains, one for each side
// of the star, which keeps the rendering symmetric.
type Star struct {
	mask
	cfg StarConfig
}

var _ Shape = (*Star)(nil)

// NewStar returns a star with the given parameters.
func NewStar(cfg StarConfig) (*Star, error) {
	if cfg.Points < minVertices {
		return nil, fmt.Errorf("shapemask: star with %d points: %w",
			cfg.Points, ErrInvalidShape)
	}
	if cfg.OuterRadius < 0 || cfg.InnerRadius < 0 {
		return nil, fmt.Errorf("shapemask: star with radii %d/%d: %w",
			cfg.OuterRadius, cfg.InnerRadius, ErrInvalidShape)
	}
	if cfg.Center != nil {
		c := *cfg.Center
		cfg.Center = &c
	}

	s := &Star{cfg: cfg}
	if cfg.Static {
		if cfg.OuterRadius == 0 || cfg.InnerRadius == 0 || cfg.Center == nil {
			return nil, fmt.Errorf("shapemask: static star needs radii and center: %w",
				ErrInvalidShape)
		}
		s.vertices = s.compute(0)
	}
	return s, nil
}

// Generate renders the star into a new size×size grid.
func (s *Star) Generate(size int) error {
	pts := s.vertices
	if !s.cfg.Static {
		pts = s.compute(size)
	}
	return s.render(size, pts, drawHalves)
}

// compute returns the vertices for a size×size grid.
func (s *Star) compute(size int) []image.Point {
	r := defaultRadius(size)
	outer := s.cfg.OuterRadius
	if outer == 0 {
		outer = r
	}
	inner := s.cfg.InnerRadius
	if inner == 0 {
		inner = r / 2
	}
	center := image.Point{X: r, Y: r}
	if s.cfg.Center != nil {
		center = *s.cfg.Center
	}
	return StarVertices(s.cfg.Points, outer, inner, center, s.cfg.Angle)
}
