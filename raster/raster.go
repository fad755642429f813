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

// Package raster computes anti-aliased pixel coverage for filled polygons.
//
// The rasterizer is tuned for long, thin shapes like the bands of a
// rotated gradient: work per scanline is proportional to the number of
// pixel columns the polygon edges cross, not to the width of the clip
// rectangle.
package raster

import (
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// edge is a polygon edge in device coordinates.
type edge struct {
	x0, y0 float64 // start point
	x1, y1 float64 // end point
	dxdy   float64 // (x1-x0)/(y1-y0)
}

// Rasterizer converts polygons to per-pixel coverage values in the range
// 0 (outside) to 1 (inside). Create one instance and reuse it for many
// polygons; internal buffers grow as needed but never shrink.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// CTM transforms polygon vertices from user space to device space.
	CTM matrix.Matrix

	// Clip bounds output to this device-coordinate rectangle.
	// Coordinates must be integer-aligned.
	Clip rect.Rect

	cover []float32 // signed vertical extent per pixel; reused as output
	area  []float32 // area to the right of the edge within each pixel
	edges []edge

	// columns touched on the current scanline, relative to the fill origin
	lo, hi int

	// device-space bounding box of r.edges
	devXMin, devXMax float64
	devYMin, devYMax float64
}

// NewRasterizer returns a Rasterizer with the identity CTM and the given
// clip rectangle.
func NewRasterizer(clip rect.Rect) *Rasterizer {
	return &Rasterizer{
		CTM:  matrix.Identity,
		Clip: clip,
	}
}

// Reset restores the initial state with a new clip rectangle, keeping the
// capacity of the internal buffers.
func (r *Rasterizer) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.cover = r.cover[:0]
	r.area = r.area[:0]
	r.edges = r.edges[:0]
}

// FillNonZero fills the closed polygon with vertices poly using the
// nonzero winding rule. The polygon is closed implicitly.
//
// Coverage is delivered row by row through emit, in increasing y order.
// Each call covers the columns xMin, xMin+1, ... and contains no leading
// or trailing zeros. The coverage slice is only valid during the call.
func (r *Rasterizer) FillNonZero(poly []vec.Vec2, emit func(y, xMin int, coverage []float32)) {
	xMin, xMax, yMin, yMax, ok := r.collectEdges(poly)
	if !ok {
		return
	}

	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]
	clear(r.cover)
	clear(r.area)

	for y := yMin; y < yMax; y++ {
		r.lo, r.hi = width, -1
		for i := range r.edges {
			r.accumulate(&r.edges[i], y, xMin, xMax)
		}
		if r.hi < 0 {
			continue
		}

		end := r.hi + 1
		row := r.cover[r.lo:end]
		accum := integrateNonZero(row, r.area[r.lo:end])

		// Right of the last touched column the coverage stays constant.
		// This is non-zero when the polygon extends past the clip.
		if tail := min(abs32(accum), 1); tail > tailThreshold {
			for i := end; i < width; i++ {
				r.cover[i] = tail
			}
			end = width
			row = r.cover[r.lo:end]
		}

		if trimmed, offset := trimZeros(row); trimmed != nil {
			emit(y, xMin+r.lo+offset, trimmed)
		}

		clear(r.cover[r.lo:end])
		clear(r.area[r.lo:end])
	}
}

// collectEdges transforms the polygon to device space and stores its
// non-horizontal edges. The returned pixel range is the bounding box of
// the polygon clamped to the clip rectangle.
func (r *Rasterizer) collectEdges(poly []vec.Vec2) (xMin, xMax, yMin, yMax int, ok bool) {
	r.edges = r.edges[:0]
	if len(poly) < 3 {
		return 0, 0, 0, 0, false
	}

	first := true
	prev := r.transform(poly[len(poly)-1])
	for _, p := range poly {
		cur := r.transform(p)
		if first {
			r.devXMin, r.devXMax = cur.X, cur.X
			r.devYMin, r.devYMax = cur.Y, cur.Y
			first = false
		} else {
			r.devXMin = min(r.devXMin, cur.X)
			r.devXMax = max(r.devXMax, cur.X)
			r.devYMin = min(r.devYMin, cur.Y)
			r.devYMax = max(r.devYMax, cur.Y)
		}

		dy := cur.Y - prev.Y
		if dy <= -horizontalEdgeThreshold || dy >= horizontalEdgeThreshold {
			r.edges = append(r.edges, edge{
				x0: prev.X, y0: prev.Y,
				x1: cur.X, y1: cur.Y,
				dxdy: (cur.X - prev.X) / dy,
			})
		}
		prev = cur
	}
	if len(r.edges) == 0 {
		return 0, 0, 0, 0, false
	}

	xMin = max(int(math.Floor(r.devXMin)), int(r.Clip.LLx))
	xMax = min(int(math.Floor(r.devXMax))+1, int(r.Clip.URx))
	yMin = max(int(math.Floor(r.devYMin)), int(r.Clip.LLy))
	yMax = min(int(math.Floor(r.devYMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

// transform maps a user space point to device space.
func (r *Rasterizer) transform(p vec.Vec2) vec.Vec2 {
	m := r.CTM
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// Coverage accumulation model:
//
// Each pixel of a scanline holds two values:
//   cover: signed vertical extent of the edge pieces inside the pixel
//   area:  cover weighted by the fraction of the pixel right of the edge
//
// Integrating left to right, pixel coverage = carried cover + area, and
// the cover of each pixel is carried to all pixels further right.

// accumulate adds the part of e inside scanline y to the cover and area
// buffers. Pieces left of the fill origin are folded into the first
// pixel, pieces right of xMax are dropped.
func (r *Rasterizer) accumulate(e *edge, y, xMin, xMax int) {
	yTop := max(float64(y), min(e.y0, e.y1))
	yBot := min(float64(y+1), max(e.y0, e.y1))
	if yBot <= yTop {
		return
	}

	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	// end points of the piece, ordered by x
	xa := e.x0 + e.dxdy*(yTop-e.y0)
	xb := e.x0 + e.dxdy*(yBot-e.y0)
	ya, yb := yTop, yBot
	if xa > xb {
		xa, xb = xb, xa
		ya, yb = yb, ya
	}

	col := int(math.Floor(xa))
	last := int(math.Floor(xb))
	if col == last {
		r.deposit(col, sign*float32(yBot-yTop), (xa+xb)/2, xMin, xMax)
		return
	}

	// The piece crosses column boundaries; split it at each of them.
	dydx := (yb - ya) / (xb - xa)
	x0, y0 := xa, ya
	if col < xMin {
		xc := min(float64(xMin), xb)
		yc := ya + dydx*(xc-xa)
		r.deposit(xMin-1, sign*float32(math.Abs(yc-y0)), xc, xMin, xMax)
		x0, y0 = xc, yc
		col = xMin
	}
	last = min(last, xMax-1)
	for ; col <= last; col++ {
		x1 := min(float64(col+1), xb)
		y1 := ya + dydx*(x1-xa)
		if dy := math.Abs(y1 - y0); dy > 0 {
			r.deposit(col, sign*float32(dy), (x0+x1)/2, xMin, xMax)
		}
		x0, y0 = x1, y1
	}
}

// deposit records an edge piece with vertical extent c whose midpoint lies
// at horizontal position xMid in pixel column col.
func (r *Rasterizer) deposit(col int, c float32, xMid float64, xMin, xMax int) {
	if col >= xMax {
		return
	}
	idx := 0
	a := c
	if col >= xMin {
		idx = col - xMin
		a = c * float32(1-(xMid-float64(col)))
	}
	r.cover[idx] += c
	r.area[idx] += a
	r.lo = min(r.lo, idx)
	r.hi = max(r.hi, idx)
}

// integrateNonZero converts accumulated cover/area values to coverage
// using the nonzero winding rule. The cover slice is overwritten. The
// return value is the cover carried past the last pixel.
func integrateNonZero(cover, area []float32) float32 {
	var accum float32
	for i := range cover {
		raw := accum + area[i]
		accum += cover[i]
		cover[i] = min(abs32(raw), 1)
	}
	return accum
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// trimZeros returns the non-zero part of coverage and its offset.
// It returns nil, 0 if all values are zero.
func trimZeros(coverage []float32) (trimmed []float32, offset int) {
	n := len(coverage)
	lo := 0
	for lo < n && coverage[lo] == 0 {
		lo++
	}
	if lo == n {
		return nil, 0
	}
	hi := n - 1
	for hi > lo && coverage[hi] == 0 {
		hi--
	}
	return coverage[lo : hi+1], lo
}

const (
	// horizontalEdgeThreshold is the minimum vertical extent for an edge
	// to contribute to coverage.
	horizontalEdgeThreshold = 1e-10

	// tailThreshold is the smallest carried coverage which is extended to
	// the right edge of the fill region.
	tailThreshold = 1e-5
)
