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

import "math"

const (
	// MaxSteps is the maximum number of colour stops.
	MaxSteps = 9

	// MaxSize is the maximum width and height of a gradient, in pixels.
	MaxSize = 4096
)

// Config is the complete description of one gradient.
type Config struct {
	Width, Height int
	Rotation      float64 // degrees, in [0, 360)
	SRGB          bool

	// From is the start colour.
	From RGBA

	// Stops lists the colour targets in scan order. There is at least one
	// and at most MaxSteps stops.
	Stops []Stop
}

// ConfigFromSettings reads a gradient configuration from s. Out of range
// values are clamped: sizes to [0, MaxSize], the number of steps to
// [1, MaxSteps], opacities and midpoints to [0, 100] percent.
func ConfigFromSettings(s *Settings) Config {
	c := Config{
		Width:    int(clampInt(s.Int(KeyWidth), 0, MaxSize)),
		Height:   int(clampInt(s.Int(KeyHeight), 0, MaxSize)),
		Rotation: NormalizeRotation(s.Double(KeyRotation)),
		SRGB:     s.Bool(KeySRGB),
		From:     colorWithOpacity(s.Int(KeyFromColor), s.Double(KeyFromOpacity)),
	}

	steps := int(clampInt(s.Int(KeySteps), 1, MaxSteps))
	c.Stops = make([]Stop, steps)
	for i := range c.Stops {
		n := i + 1
		c.Stops[i] = Stop{
			Color:    colorWithOpacity(s.Int(StopKey(KeyToColor, n)), s.Double(StopKey(KeyToOpacity, n))),
			Midpoint: percent(s.Double(StopKey(KeyMidpoint, n))),
		}
	}
	return c
}

// Geometry resolves the scan geometry of c.
func (c *Config) Geometry() Geometry {
	return Resolve(c.Width, c.Height, c.Rotation)
}

// Table builds the transition table of c.
func (c *Config) Table() Table {
	return BuildTable(c.From, c.Stops, c.SRGB)
}

// colorWithOpacity decodes a packed host colour and replaces its alpha
// channel by an opacity given in percent.
func colorWithOpacity(packed int64, opacity float64) RGBA {
	c := FromPacked(uint32(packed))
	c.A = percent(opacity)
	return c
}

func percent(v float64) float32 {
	if math.IsNaN(v) {
		return 0
	}
	return float32(min(max(v, 0), 100) / 100)
}

func clampInt(v, lo, hi int64) int64 {
	return min(max(v, lo), hi)
}
