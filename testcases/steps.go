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

var stepCases = []TestCase{
	{
		Name:        "two_steps",
		Width:       64,
		Height:      64,
		From:        white,
		FromOpacity: 100,
		Stops:       []Stop{solid(grey), solid(black)},
	},
	{
		Name:        "three_steps_rotated",
		Width:       80,
		Height:      60,
		Rotation:    30,
		From:        red,
		FromOpacity: 100,
		Stops:       []Stop{solid(yellow), solid(green), solid(blue)},
	},
	{
		Name:        "rainbow",
		Width:       128,
		Height:      32,
		Rotation:    270,
		From:        red,
		FromOpacity: 100,
		Stops: []Stop{
			solid(0xFF0080FF), solid(yellow), solid(0xFF00FF80), solid(green),
			solid(0xFFFFFF00), solid(blue), solid(0xFFFF0080), solid(0xFF8000FF),
		},
	},
	{
		Name:        "nine_steps_alternating",
		Width:       90,
		Height:      90,
		Rotation:    135,
		From:        white,
		FromOpacity: 100,
		Stops: []Stop{
			solid(black), solid(white), solid(black), solid(white), solid(black),
			solid(white), solid(black), solid(white), solid(black),
		},
	},
	{
		Name:        "legacy_keys",
		Width:       64,
		Height:      64,
		Rotation:    90,
		From:        grey,
		FromOpacity: 100,
		Stops:       []Stop{{Color: red, Opacity: 100, Midpoint: 30}},
		Legacy:      true,
	},
}
