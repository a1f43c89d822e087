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

import "errors"

var (
	// ErrInvalidShape is returned by the shape constructors when the
	// shape parameters do not describe a valid shape, for example a
	// polygon with fewer than three vertices.
	ErrInvalidShape = errors.New("invalid shape definition")

	// ErrUngenerated indicates that a mask was drawn or read before
	// Generate was called.
	ErrUngenerated = errors.New("shape not generated")

	// ErrInvalidSize is returned by Generate for a non-positive grid size.
	ErrInvalidSize = errors.New("invalid grid size")
)
