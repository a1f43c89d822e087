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
	"runtime"

	"golang.org/x/sync/errgroup"
)

// GenerateAll calls Generate(size) on every shape, using several
// goroutines. Since each shape owns its vertices and grid, no two
// goroutines touch the same data; the same shape must not be passed
// more than once.
//
// If some shapes fail, the error of one of them is returned, annotated
// with the index of the shape. All other shapes are still generated.
func GenerateAll(size int, shapes ...Shape) error {
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, s := range shapes {
		g.Go(func() error {
			if err := s.Generate(size); err != nil {
				return fmt.Errorf("shape %d: %w", i, err)
			}
			return nil
		})
	}
	return g.Wait()
}
