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

// Stop is one colour target in a gradient.
type Stop struct {
	// Color is the target colour. The alpha channel holds the opacity.
	Color RGBA

	// Midpoint is the fraction of the transition, in [0, 1], at which the
	// blend between the previous colour and Color reaches one half.
	Midpoint float32
}

// Transition is one segment of a gradient, from the target of the
// previous segment to the target of its own stop.
type Transition struct {
	From, To RGBA
	Midpoint float32

	// linear-light copies of From and To, used in sRGB mode
	fromLinear, toLinear RGBA
}

// At returns the colour of the transition at raw scan fraction f in
// [0, 1]. The fraction is eased by the midpoint before interpolating.
// In sRGB mode the interpolation happens in linear light and the result
// is encoded again.
func (tr *Transition) At(f float32, srgb bool) RGBA {
	f = Ease(f, tr.Midpoint)
	if srgb {
		return tr.fromLinear.Lerp(tr.toLinear, f).Nonlinear()
	}
	return tr.From.Lerp(tr.To, f)
}

// Table is the ordered list of transitions of a gradient.
type Table struct {
	Transitions []Transition
	SRGB        bool

	// Split is the midpoint used for the axis-aligned pre-fill: the first
	// stop's midpoint for single-stop gradients, one half otherwise.
	Split float32
}

// BuildTable chains the stops into transitions. The first transition
// starts at from; every later one starts where the previous one ended.
func BuildTable(from RGBA, stops []Stop, srgb bool) Table {
	t := Table{
		Transitions: make([]Transition, len(stops)),
		SRGB:        srgb,
		Split:       0.5,
	}
	if len(stops) == 1 {
		t.Split = stops[0].Midpoint
	}

	fromLinear := from.Linear()
	for i, s := range stops {
		toLinear := s.Color.Linear()
		t.Transitions[i] = Transition{
			From:       from,
			To:         s.Color,
			Midpoint:   s.Midpoint,
			fromLinear: fromLinear,
			toLinear:   toLinear,
		}
		from, fromLinear = s.Color, toLinear
	}
	return t
}

// Last returns the final target colour of the gradient.
func (t *Table) Last() RGBA {
	if len(t.Transitions) == 0 {
		return RGBA{}
	}
	return t.Transitions[len(t.Transitions)-1].To
}

// Ease remaps the scan fraction f in [0, 1] piecewise linearly, so that
// Ease(0, m) = 0, Ease(m, m) = 0.5 and Ease(1, m) = 1.
//
// Midpoints outside (0, 1) are clamped just inside the interval.
func Ease(f, midpoint float32) float32 {
	m := min(max(midpoint, minMidpoint), 1-minMidpoint)
	if f > m {
		return 0.5 + (f-m)/(1-m)/2
	}
	return 0.5 - (m-f)/m/2
}

const minMidpoint = 1e-6
