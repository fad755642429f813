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
	"math"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
)

func apply(m matrix.Matrix, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// TestBandAnchors checks that the first band is anchored at the start of
// the scan and the last one at its end.
func TestBandAnchors(t *testing.T) {
	stops := []Stop{{Color: black, Midpoint: 0.5}}
	tab := BuildTable(white, stops, false)
	for _, rot := range []float64{0, 30, 100, 180, 250, 270, 333} {
		g := Resolve(80, 60, rot)

		var first, last Band
		n := 0
		for b := range Bands(g, &tab) {
			if n == 0 {
				first = b
			}
			last = b
			n++
		}

		x, y := apply(first.CTM, g.Diagonal, 0)
		if math.Hypot(x+g.StartX, y+g.StartY) > 1e-9 {
			t.Errorf("%g°: first anchor (%g, %g), want (%g, %g)", rot, x, y, -g.StartX, -g.StartY)
		}
		x, y = apply(last.CTM, g.Diagonal, 0)
		ex, ey := g.ScanX-g.StartX, g.ScanY-g.StartY
		if math.Hypot(x-ex, y-ey) > 1 {
			t.Errorf("%g°: last anchor (%g, %g), want near (%g, %g)", rot, x, y, ex, ey)
		}

		if first.Width != 2*g.Diagonal || first.Color != white {
			t.Errorf("%g°: first band %+v", rot, first)
		}
	}
}

// TestBandDirection checks the orientation of the band axis.
func TestBandDirection(t *testing.T) {
	tab := BuildTable(white, []Stop{{Color: black, Midpoint: 0.5}}, false)
	for _, rot := range []float64{0, 45, 90, 210} {
		g := Resolve(50, 50, rot)
		for b := range Bands(g, &tab) {
			x0, y0 := apply(b.CTM, 0, 0)
			x1, y1 := apply(b.CTM, 1, 0)
			got := math.Atan2(y1-y0, x1-x0) * 180 / math.Pi
			if got < 0 {
				got += 360
			}
			if math.Abs(got-rot) > 1e-9 {
				t.Errorf("band axis at %g°, want %g°", got, rot)
			}
			break
		}
	}
}

func TestBandPath(t *testing.T) {
	b := Band{Width: 10}
	var cmds []path.Command
	var xs []float64
	for cmd, pts := range b.Path() {
		cmds = append(cmds, cmd)
		for _, p := range pts {
			xs = append(xs, p.X)
		}
	}
	want := []path.Command{path.CmdMoveTo, path.CmdLineTo, path.CmdLineTo, path.CmdLineTo, path.CmdClose}
	if len(cmds) != len(want) {
		t.Fatalf("got commands %v, want %v", cmds, want)
	}
	for i := range want {
		if cmds[i] != want[i] {
			t.Errorf("command %d: got %v, want %v", i, cmds[i], want[i])
		}
	}
	if len(xs) != 4 || xs[1] != 10 || xs[3] != 0 {
		t.Errorf("outline x coordinates %v", xs)
	}
}
