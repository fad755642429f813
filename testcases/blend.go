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

// blendCases vary the colour interpolation: midpoints, linear light and
// opacity.
var blendCases = []TestCase{
	{
		Name:        "midpoint_00",
		Width:       64,
		Height:      64,
		From:        white,
		FromOpacity: 100,
		Stops:       []Stop{{Color: black, Opacity: 100, Midpoint: 0}},
	},
	{
		Name:        "midpoint_25",
		Width:       64,
		Height:      64,
		From:        white,
		FromOpacity: 100,
		Stops:       []Stop{{Color: black, Opacity: 100, Midpoint: 25}},
	},
	{
		Name:        "midpoint_75",
		Width:       64,
		Height:      64,
		From:        white,
		FromOpacity: 100,
		Stops:       []Stop{{Color: black, Opacity: 100, Midpoint: 75}},
	},
	{
		Name:        "midpoint_100",
		Width:       64,
		Height:      64,
		From:        white,
		FromOpacity: 100,
		Stops:       []Stop{{Color: black, Opacity: 100, Midpoint: 100}},
	},
	{
		Name:        "srgb_off",
		Width:       128,
		Height:      32,
		Rotation:    270,
		From:        red,
		FromOpacity: 100,
		Stops:       []Stop{solid(green)},
	},
	{
		Name:        "srgb_on",
		Width:       128,
		Height:      32,
		Rotation:    270,
		SRGB:        true,
		From:        red,
		FromOpacity: 100,
		Stops:       []Stop{solid(green)},
	},
	{
		Name:        "fade_out",
		Width:       64,
		Height:      64,
		Rotation:    45,
		From:        blue,
		FromOpacity: 100,
		Stops:       []Stop{{Color: blue, Opacity: 0, Midpoint: 50}},
	},
	{
		Name:        "half_transparent",
		Width:       64,
		Height:      64,
		Rotation:    200,
		SRGB:        true,
		From:        yellow,
		FromOpacity: 50,
		Stops:       []Stop{{Color: red, Opacity: 50, Midpoint: 50}},
	},
}
