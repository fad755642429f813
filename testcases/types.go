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

// Package testcases contains named gradient configurations, used for
// tests and for generating reference images.
package testcases

import (
	"seehuhn.de/go/gradient"
)

type TestCase struct {
	Name     string  // lowercase a-z, 0-9 and _ only
	Width    int     // canvas width in pixels
	Height   int     // canvas height in pixels
	Rotation float64 // degrees
	SRGB     bool

	From        uint32  // packed host colour, red in the low byte
	FromOpacity float64 // percent
	Stops       []Stop

	// Legacy stores the first stop under the keys of single-stop
	// versions of the source.
	Legacy bool
}

// Stop is one colour stop, in the units used by the host settings.
type Stop struct {
	Color    uint32  // packed host colour
	Opacity  float64 // percent
	Midpoint float64 // percent
}

// Settings returns the host settings for tc, with the defaults of the
// gradient source installed.
func (tc *TestCase) Settings() *gradient.Settings {
	s := gradient.NewSettings()
	gradient.Defaults(s)

	s.SetInt(gradient.KeyWidth, int64(tc.Width))
	s.SetInt(gradient.KeyHeight, int64(tc.Height))
	s.SetDouble(gradient.KeyRotation, tc.Rotation)
	s.SetBool(gradient.KeySRGB, tc.SRGB)
	s.SetInt(gradient.KeyFromColor, int64(tc.From))
	s.SetDouble(gradient.KeyFromOpacity, tc.FromOpacity)
	s.SetInt(gradient.KeySteps, int64(len(tc.Stops)))

	for i, stop := range tc.Stops {
		n := i + 1
		midpoint := gradient.StopKey(gradient.KeyMidpoint, n)
		toColor := gradient.StopKey(gradient.KeyToColor, n)
		toOpacity := gradient.StopKey(gradient.KeyToOpacity, n)
		if n == 1 && tc.Legacy {
			midpoint, toColor, toOpacity = gradient.KeyMidpoint, gradient.KeyToColor, gradient.KeyToOpacity
		}
		s.SetDouble(midpoint, stop.Midpoint)
		s.SetInt(toColor, int64(stop.Color))
		s.SetDouble(toOpacity, stop.Opacity)
	}
	return s
}

// Opaque reports whether all colours of tc are fully opaque.
func (tc *TestCase) Opaque() bool {
	if tc.FromOpacity < 100 {
		return false
	}
	for _, s := range tc.Stops {
		if s.Opacity < 100 {
			return false
		}
	}
	return true
}

// solid returns a fully opaque stop with a centred midpoint.
func solid(color uint32) Stop {
	return Stop{Color: color, Opacity: 100, Midpoint: 50}
}

// Frequently used colours, in the packed host format.
const (
	white  = 0xFFFFFFFF
	black  = 0xFF000000
	grey   = 0xFFD1D1D1
	red    = 0xFF0000FF
	green  = 0xFF00FF00
	blue   = 0xFFFF0000
	yellow = 0xFF00FFFF
)
