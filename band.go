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

package gradient

import (
	"iter"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// BandThickness is the thickness of a single band, in pixels.
// Consecutive bands are one pixel apart along the scan axis, so every
// pixel centre lies well inside at least one band.
const BandThickness = 2

// Band is one solid-colour strip of a rendered gradient.
type Band struct {
	// CTM maps the band rectangle (0, 0)–(Width, BandThickness) to device
	// space.
	CTM   matrix.Matrix
	Width float64

	Color RGBA

	// Stop is the index of the transition this band belongs to.
	Stop int
}

// Outline returns the corners of the band rectangle in band space.
func (b *Band) Outline() [4]vec.Vec2 {
	return [4]vec.Vec2{
		{X: 0, Y: 0},
		{X: b.Width, Y: 0},
		{X: b.Width, Y: BandThickness},
		{X: 0, Y: BandThickness},
	}
}

// Path returns the band rectangle in band space as a closed path.
func (b *Band) Path() path.Path {
	outline := b.Outline()
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !yield(path.CmdMoveTo, outline[:1]) {
			return
		}
		for i := 1; i < len(outline); i++ {
			if !yield(path.CmdLineTo, outline[i:i+1]) {
				return
			}
		}
		yield(path.CmdClose, nil)
	}
}

// Bands iterates over the bands of a gradient in painting order.
//
// For each transition the scan length is divided into unit steps. Step i
// of transition s sits at scan position (s + i/len) / N, where N is the
// number of transitions and len the per-transition scan length, and is
// painted with the transition colour for fraction i/len.
func Bands(g Geometry, t *Table) iter.Seq[Band] {
	return func(yield func(Band) bool) {
		n := len(t.Transitions)
		if n == 0 {
			return
		}
		length := float32(g.Length() / float64(n))
		if !(length > 0) {
			return
		}

		// Shift the band so that it extends Diagonal units to both sides
		// of its anchor, then rotate it into place.
		local := matrix.Translate(-g.Diagonal, 0).Mul(rotate(g.Rotation))

		for s := range t.Transitions {
			tr := &t.Transitions[s]
			for i := float32(0); i <= length; i++ {
				f := i / length
				pos := (float64(s) + float64(f)) / float64(n)
				x := pos*g.ScanX - g.StartX
				y := pos*g.ScanY - g.StartY

				b := Band{
					CTM:   local.Mul(matrix.Translate(x, y)),
					Width: 2 * g.Diagonal,
					Color: tr.At(f, t.SRGB),
					Stop:  s,
				}
				if !yield(b) {
					return
				}
			}
		}
	}
}

// BandCount returns the number of bands Bands yields.
func BandCount(g Geometry, t *Table) int {
	n := len(t.Transitions)
	if n == 0 {
		return 0
	}
	length := float32(g.Length() / float64(n))
	if !(length > 0) {
		return 0
	}
	return n * (int(math.Floor(float64(length))) + 1)
}

// rotate returns the rotation by deg degrees in device space, where the
// y axis points down: x' = x·cos − y·sin and y' = x·sin + y·cos.
func rotate(deg float64) matrix.Matrix {
	s, c := math.Sincos(rad(deg))
	return matrix.Matrix{c, s, -s, c, 0, 0}
}
