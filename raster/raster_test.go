// seehuhn.de/go/gradient - procedural gradient video sources
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

package raster

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

func rectangle(x1, y1, x2, y2 float64) []vec.Vec2 {
	return []vec.Vec2{{X: x1, Y: y1}, {X: x2, Y: y1}, {X: x2, Y: y2}, {X: x1, Y: y2}}
}

// render fills poly into a w×h float buffer.
func render(r *Rasterizer, poly []vec.Vec2, w, h int) []float32 {
	buf := make([]float32, w*h)
	r.FillNonZero(poly, func(y, xMin int, coverage []float32) {
		copy(buf[y*w+xMin:], coverage)
	})
	return buf
}

// TestTriangleCoverage verifies exact coverage values for a simple triangle.
// The triangle (0,0)→(10,0)→(10,1) has a diagonal edge y = x/10, so pixel
// X has coverage (2X+1)/20.
func TestTriangleCoverage(t *testing.T) {
	tri := []vec.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 1}}
	r := NewRasterizer(rect.Rect{URx: 10, URy: 1})

	coverage := render(r, tri, 10, 1)

	const epsilon = 1e-6
	for x := range 10 {
		expected := float32(2*x+1) / 20
		if math.Abs(float64(coverage[x]-expected)) > epsilon {
			t.Errorf("pixel %d: expected coverage %.4f, got %.4f", x, expected, coverage[x])
		}
	}
}

// TestClippedSpan checks that a polygon reaching past both sides of the
// clip rectangle covers the full row, including the constant tail.
func TestClippedSpan(t *testing.T) {
	r := NewRasterizer(rect.Rect{URx: 10, URy: 10})
	buf := render(r, rectangle(-5, 2, 20, 4), 10, 10)

	for y := range 10 {
		for x := range 10 {
			want := float32(0)
			if y == 2 || y == 3 {
				want = 1
			}
			if got := buf[y*10+x]; math.Abs(float64(got-want)) > 1e-6 {
				t.Errorf("pixel (%d,%d): got %.4f, want %.4f", x, y, got, want)
			}
		}
	}
}

// TestRotatedSquareArea checks that the total coverage of a rotated square
// equals its area.
func TestRotatedSquareArea(t *testing.T) {
	for _, deg := range []float64{0, 10, 30, 45, 60, 89, 135, 271} {
		t.Run(fmt.Sprintf("%gdeg", deg), func(t *testing.T) {
			r := NewRasterizer(rect.Rect{URx: 64, URy: 64})
			r.CTM = matrix.RotateDeg(deg).Mul(matrix.Translate(32.3, 31.7))

			buf := render(r, rectangle(-10, -10, 10, 10), 64, 64)

			var total float64
			for _, c := range buf {
				if c < 0 || c > 1 {
					t.Fatalf("coverage %f out of range", c)
				}
				total += float64(c)
			}
			if math.Abs(total-400) > 1e-2 {
				t.Errorf("total coverage %.4f, want 400", total)
			}
		})
	}
}

// TestThinBand fills a long band of thickness 2 and checks that the row
// spans are short: the band must not touch the full clip width.
func TestThinBand(t *testing.T) {
	const size = 200
	r := NewRasterizer(rect.Rect{URx: size, URy: size})
	r.CTM = matrix.Translate(-400, 0).Mul(matrix.RotateDeg(45)).Mul(matrix.Translate(100, 100))

	var total float64
	r.FillNonZero(rectangle(0, 0, 800, 2), func(y, xMin int, coverage []float32) {
		if len(coverage) > 6 {
			t.Errorf("row %d: span of %d pixels", y, len(coverage))
		}
		for _, c := range coverage {
			total += float64(c)
		}
	})

	// The band runs along the diagonal of the clip square; at both
	// corners a triangle of area 2 falls outside the clip.
	want := 2*size*math.Sqrt2 - 4
	if math.Abs(total-want) > 0.5 {
		t.Errorf("total coverage %.2f, want about %.2f", total, want)
	}
}

func TestDegenerate(t *testing.T) {
	r := NewRasterizer(rect.Rect{URx: 10, URy: 10})
	calls := 0
	emit := func(y, xMin int, coverage []float32) { calls++ }

	r.FillNonZero(nil, emit)
	r.FillNonZero([]vec.Vec2{{X: 1, Y: 1}, {X: 5, Y: 5}}, emit)
	r.FillNonZero(rectangle(1, 3, 8, 3), emit)  // zero height
	r.FillNonZero(rectangle(20, 1, 30, 5), emit) // outside the clip

	if calls != 0 {
		t.Errorf("emit called %d times for degenerate input", calls)
	}
}

func TestReset(t *testing.T) {
	r := NewRasterizer(rect.Rect{URx: 100, URy: 100})
	r.CTM = matrix.Scale(3, 3)
	render(r, rectangle(0, 0, 30, 30), 100, 100)

	r.Reset(rect.Rect{URx: 4, URy: 4})
	if r.CTM != matrix.Identity {
		t.Errorf("CTM not reset: %v", r.CTM)
	}
	buf := render(r, rectangle(1, 1, 3, 3), 4, 4)
	var total float32
	for _, c := range buf {
		total += c
	}
	if total != 4 {
		t.Errorf("total coverage %f after reset, want 4", total)
	}
}

// BenchmarkBand compares filling a rotated gradient band with this
// rasterizer and with x/image/vector.
func BenchmarkBand(b *testing.B) {
	for _, size := range []int{200, 2000} {
		cd := math.Ceil(float64(size) * math.Sqrt2)
		m := matrix.Translate(-cd, 0).Mul(matrix.RotateDeg(30)).Mul(matrix.Translate(float64(size)/2, float64(size)/2))
		band := rectangle(0, 0, 2*cd, 2)

		b.Run(fmt.Sprintf("raster/%d", size), func(b *testing.B) {
			clip := rect.Rect{URx: float64(size), URy: float64(size)}
			r := NewRasterizer(clip)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			b.ReportAllocs()
			for b.Loop() {
				r.Reset(clip)
				r.CTM = m
				r.FillNonZero(band, func(y, xMin int, coverage []float32) {
					row := dst.Pix[y*dst.Stride+xMin:]
					for i, c := range coverage {
						row[i] = uint8(c * 255)
					}
				})
			}
		})

		b.Run(fmt.Sprintf("vector/%d", size), func(b *testing.B) {
			r := vector.NewRasterizer(size, size)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{255})
			b.ReportAllocs()
			for b.Loop() {
				r.Reset(size, size)
				for i, p := range band {
					x := float32(m[0]*p.X + m[2]*p.Y + m[4])
					y := float32(m[1]*p.X + m[3]*p.Y + m[5])
					if i == 0 {
						r.MoveTo(x, y)
					} else {
						r.LineTo(x, y)
					}
				}
				r.ClosePath()
				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}
