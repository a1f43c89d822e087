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

// Cell is the state of a single mask cell.
type Cell uint8

// These are the possible cell states.
// The zero value is Inactive, so a freshly allocated grid is empty.
const (
	Inactive Cell = iota
	Active
)

// String returns the one-character symbol used in text renderings
// of a mask.
func (c Cell) String() string {
	switch c {
	case Inactive:
		return "."
	case Active:
		return "#"
	default:
		return "?"
	}
}
