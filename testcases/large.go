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

// largeCases use full video frame sizes.
var largeCases = []TestCase{
	{
		Name:        "default_1080p",
		Width:       1920,
		Height:      1080,
		Rotation:    270,
		From:        grey,
		FromOpacity: 100,
		Stops:       []Stop{solid(black)},
	},
	{
		Name:        "tilted_720p",
		Width:       1280,
		Height:      720,
		Rotation:    17,
		SRGB:        true,
		From:        red,
		FromOpacity: 100,
		Stops:       []Stop{solid(blue), solid(yellow)},
	},
	{
		Name:        "portrait",
		Width:       1080,
		Height:      1920,
		Rotation:    120,
		From:        white,
		FromOpacity: 100,
		Stops:       []Stop{{Color: green, Opacity: 100, Midpoint: 20}, solid(black)},
	},
}
