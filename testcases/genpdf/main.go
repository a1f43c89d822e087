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

// Command genpdf writes a PDF preview for every test case.
// Active cells are shown as dark squares, with the vertex outline
// stroked on top. Run from the shapemask module root directory.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/shapemask"
	"seehuhn.de/go/shapemask/testcases"
)

const (
	previewDir = "debug/preview"

	// cellSize is the side length of one mask cell, in PDF points.
	cellSize = 12
)

func main() {
	if err := os.MkdirAll(previewDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(previewDir, name+".pdf")
			if err := generatePDF(tc, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	shape, err := tc.New()
	if err != nil {
		return err
	}
	if err := shape.Generate(tc.Size); err != nil {
		return err
	}
	grid, err := shape.Mask()
	if err != nil {
		return err
	}

	side := float64(tc.Size * cellSize)
	paper := &pdf.Rectangle{URx: side, URy: side}
	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// White background
	page.SetFillColor(color.DeviceGray(1))
	page.Rectangle(0, 0, side, side)
	page.Fill()

	// PDF origin is bottom-left; masks use a top-left origin.
	// Flip the y-axis, then scale so that one unit is one cell.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, side})
	page.Transform(matrix.Scale(cellSize, cellSize))

	// Active cells
	page.SetFillColor(color.DeviceGray(0.25))
	for y := range grid.Size() {
		for x := range grid.Size() {
			if grid.At(x, y) == shapemask.Active {
				page.Rectangle(float64(x), float64(y), 1, 1)
			}
		}
	}
	page.Fill()

	// Vertex outline, through the cell centers
	page.SetStrokeColor(color.DeviceGray(0.7))
	page.SetLineWidth(0.15)
	page.SetLineCap(graphics.LineCapRound)
	page.SetLineJoin(graphics.LineJoinRound)
	outline := shapemask.Outline(shape.Vertices())
	coordIdx := 0
	for _, cmd := range outline.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			pt := outline.Coords[coordIdx]
			page.MoveTo(pt.X, pt.Y)
			coordIdx++
		case path.CmdLineTo:
			pt := outline.Coords[coordIdx]
			page.LineTo(pt.X, pt.Y)
			coordIdx++
		case path.CmdClose:
			page.ClosePath()
		}
	}
	page.Stroke()

	return page.Close()
}
