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
	"image/color"
	"testing"

	"golang.org/x/image/vector"
)

var benchmarkSizes = []int{20, 200, 2000}

// BenchmarkStar benchmarks mask generation for a five-pointed star
// filling the grid.
func BenchmarkStar(b *testing.B) {
	for _, size := range benchmarkSizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			s, err := NewStar(StarConfig{Points: 5})
			if err != nil {
				b.Fatal(err)
			}

			b.ReportAllocs()
			for b.Loop() {
				if err := s.Generate(size); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkRegular benchmarks mask generation for a 12-gon filling the grid.
func BenchmarkRegular(b *testing.B) {
	for _, size := range benchmarkSizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			p, err := NewRegularPolygon(RegularConfig{Vertices: 12})
			if err != nil {
				b.Fatal(err)
			}

			b.ReportAllocs()
			for b.Loop() {
				if err := p.Generate(size); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkVectorStar benchmarks x/image/vector filling the same star,
// for comparison with BenchmarkStar.
func BenchmarkVectorStar(b *testing.B) {
	for _, size := range benchmarkSizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r := defaultRadius(size)
			pts := StarVertices(5, r, r/2, image.Pt(r, r), 0)

			z := vector.NewRasterizer(size, size)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{255})

			b.ReportAllocs()
			for b.Loop() {
				z.Reset(size, size)
				z.MoveTo(float32(pts[0].X)+0.5, float32(pts[0].Y)+0.5)
				for _, q := range pts[1:] {
					z.LineTo(float32(q.X)+0.5, float32(q.Y)+0.5)
				}
				z.ClosePath()
				z.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

func BenchmarkDrawLine(b *testing.B) {
	g := NewGrid(500)
	b.ReportAllocs()
	for b.Loop() {
		drawLine(g, image.Pt(0, 17), image.Pt(499, 482), Active)
	}
}
