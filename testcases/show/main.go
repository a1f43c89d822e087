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

// Command show prints the masks of all test cases to the terminal.
// Generated masks which differ from their reference mask are reported.
// Run from the shapemask module root directory.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/fatih/color"

	"seehuhn.de/go/shapemask"
	"seehuhn.de/go/shapemask/testcases"
)

var (
	cyan   = color.New(color.FgCyan, color.Bold)
	green  = color.New(color.FgGreen, color.Bold)
	red    = color.New(color.FgRed, color.Bold)
	yellow = color.New(color.FgYellow)
	active = color.New(color.FgWhite, color.BgBlue)
)

func main() {
	failed := 0
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			ok, err := show(name, tc)
			if err != nil {
				red.Printf("✗ %s: %s\n", name, err)
				failed++
				continue
			}
			if !ok {
				failed++
			}
		}
	}

	if failed > 0 {
		red.Printf("%d case(s) failed\n", failed)
		os.Exit(1)
	}
	green.Println("✓ all masks match their references")
}

func show(name string, tc testcases.TestCase) (bool, error) {
	shape, err := tc.New()
	if err != nil {
		return false, err
	}
	if err := shape.Generate(tc.Size); err != nil {
		return false, err
	}
	grid, err := shape.Mask()
	if err != nil {
		return false, err
	}

	cyan.Printf("%s (%d×%d, %d active)\n", name, tc.Size, tc.Size, grid.Count(shapemask.Active))
	for y := range grid.Size() {
		var row strings.Builder
		for x := range grid.Size() {
			if grid.At(x, y) == shapemask.Active {
				row.WriteString(active.Sprint("  "))
			} else {
				row.WriteString("··")
			}
		}
		fmt.Println(row.String())
	}

	ref, err := os.ReadFile(filepath.Join("testdata", "reference", name+".txt"))
	if os.IsNotExist(err) {
		yellow.Println("no reference mask")
		return true, nil
	} else if err != nil {
		return false, err
	}
	if string(ref) != grid.String() {
		red.Println("✗ differs from reference")
		return false, nil
	}
	green.Println("✓ matches reference")
	return true, nil
}
