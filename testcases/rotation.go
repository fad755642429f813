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

import "fmt"

// rotationCases sweeps a two-colour gradient around the full circle, on a
// landscape canvas so that both axis regimes and all four directions
// occur.
var rotationCases = rotationSweep(0, 360, 15)

func rotationSweep(from, to, step int) []TestCase {
	var cases []TestCase
	for deg := from; deg < to; deg += step {
		cases = append(cases, TestCase{
			Name:        fmt.Sprintf("rot_%03d", deg),
			Width:       96,
			Height:      64,
			Rotation:    float64(deg),
			From:        white,
			FromOpacity: 100,
			Stops:       []Stop{solid(blue)},
		})
	}
	return cases
}
