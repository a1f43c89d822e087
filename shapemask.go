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

// Package shapemask renders binary occupancy masks for simple geometric
// shapes: explicit polygons, rectangles, regular polygons and stars.
//
// A mask is a square grid of [Active] and [Inactive] cells. Shapes are
// rasterised in three steps: integer vertices are derived from the shape
// parameters, the outline is drawn with a Bresenham line between
// consecutive vertices, and interior cells are found with an even-odd
// ray casting test over the bounding box of the vertices.
//
// Coordinates are grid coordinates. x grows to the right and y grows
// downward, so the first vertex of an unrotated regular polygon or star
// points "north", towards row 0. Vertices may lie outside the grid; only
// the cells inside the grid are ever written.
package shapemask

//go:generate go run ./testcases/export
//go:generate python3 tools/generate_references.py

import "image"

// Shape is a geometric shape which can be rendered into a mask.
//
// Generate must be called before the mask can be read. Each Shape owns
// its grid exclusively; a Shape is not safe for concurrent use, but
// different shapes can be generated concurrently, see [GenerateAll].
type Shape interface {
	// Generate renders the shape into a new size×size grid.
	// Calling Generate again with the same size gives an identical grid.
	Generate(size int) error

	// Mask returns the grid produced by the last successful call to
	// Generate, or ErrUngenerated if there was none.
	Mask() (*Grid, error)

	// Vertices returns a copy of the current vertex list.
	// Shapes with size-dependent vertices return nil before the first
	// call to Generate.
	Vertices() []image.Point

	// BoundingBox returns the inclusive bounding box of the vertices.
	// The second return value is false if no vertices are known yet.
	BoundingBox() (BBox, bool)
}
