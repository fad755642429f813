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

package testcases

// precisionCases place the rotation next to the angles where the scan
// geometry changes, and use degenerate canvas sizes.
var precisionCases = []TestCase{
	near("axis_0_below", 359.999),
	near("axis_0_above", 0.001),
	near("axis_90_below", 89.999),
	near("axis_90_above", 90.001),
	near("axis_180_below", 179.999),
	near("axis_180_above", 180.001),
	near("axis_270_below", 269.999),
	near("axis_270_above", 270.001),

	// For this canvas the dominant axis changes at atan(48/64) ≈ 36.87°.
	near("crossover_below", 36.86),
	near("crossover_above", 36.88),

	{
		Name:        "negative_rotation",
		Width:       64,
		Height:      48,
		Rotation:    -45,
		From:        white,
		FromOpacity: 100,
		Stops:       []Stop{solid(red)},
	},
	{
		Name:        "single_column",
		Width:       1,
		Height:      64,
		Rotation:    10,
		From:        white,
		FromOpacity: 100,
		Stops:       []Stop{solid(black)},
	},
	{
		Name:        "single_row",
		Width:       64,
		Height:      1,
		Rotation:    280,
		From:        white,
		FromOpacity: 100,
		Stops:       []Stop{solid(black)},
	},
	{
		Name:        "single_pixel",
		Width:       1,
		Height:      1,
		Rotation:    33,
		From:        white,
		FromOpacity: 100,
		Stops:       []Stop{solid(black)},
	},
}

func near(name string, rotation float64) TestCase {
	return TestCase{
		Name:        name,
		Width:       64,
		Height:      48,
		Rotation:    rotation,
		From:        white,
		FromOpacity: 100,
		Stops:       []Stop{solid(green)},
	}
}
