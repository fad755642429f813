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
)

// Axis is the dominant direction in which the bands of a gradient move.
type Axis int

const (
	// Vertical means the bands move up or down the image.
	Vertical Axis = iota

	// Horizontal means the bands move left or right across the image.
	Horizontal
)

func (a Axis) String() string {
	if a == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Direction is the scan direction within the dominant axis.
type Direction int

const (
	// Down moves the bands from the top edge to the bottom edge.
	Down Direction = iota

	// Up moves the bands from the bottom edge to the top edge.
	Up

	// Right moves the bands from the left edge to the right edge.
	Right

	// Left moves the bands from the right edge to the left edge.
	Left
)

func (d Direction) String() string {
	switch d {
	case Down:
		return "down"
	case Up:
		return "up"
	case Right:
		return "right"
	case Left:
		return "left"
	default:
		return "invalid"
	}
}

// Geometry describes how the bands of a rotated gradient sweep across a
// rectangle. The band for scan position t in [0, 1] is anchored at
// (t·ScanX - StartX, t·ScanY - StartY) and extends Diagonal units to both
// sides along the rotated band axis.
type Geometry struct {
	Width, Height int
	Rotation      float64 // degrees, in [0, 360)

	Axis      Axis
	Direction Direction

	// ScanX, ScanY is the signed scan vector. Exactly one of the two is
	// non-zero, except for empty rectangles.
	ScanX, ScanY float64

	// StartX, StartY compensate for the skew of the rotated bands, so that
	// the first band touches the leading corner of the rectangle.
	StartX, StartY float64

	// Diagonal is the half-length of each band. It is large enough for
	// every band to cross the rectangle completely.
	Diagonal float64
}

// Length returns the total scan length in pixels.
func (g Geometry) Length() float64 {
	return max(math.Abs(g.ScanX), math.Abs(g.ScanY))
}

// NormalizeRotation maps an angle in degrees to the range [0, 360).
// Non-finite angles map to 0.
func NormalizeRotation(deg float64) float64 {
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		return 0
	}
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 { // -1e-20 + 360 rounds to 360
		deg = 0
	}
	return deg
}

// Resolve computes the scan geometry for a width×height rectangle and a
// rotation in degrees.
//
// The rotation decides which axis the bands move along: vertically when
// the projection cy·cos(rot) is larger than cx·sin(rot), horizontally
// otherwise. Within that axis the sign of the projection picks the
// direction, and the tangent of the rotation relative to that direction
// determines how far the bands have to travel to sweep the whole
// rectangle.
func Resolve(width, height int, rotation float64) Geometry {
	rotation = NormalizeRotation(rotation)
	cx := float64(max(width, 0))
	cy := float64(max(height, 0))

	g := Geometry{
		Width:    int(cx),
		Height:   int(cy),
		Rotation: rotation,
	}

	moveX := cy * math.Cos(rad(rotation))
	moveY := cx * math.Sin(rad(rotation))

	if math.Abs(moveX) > math.Abs(moveY) {
		g.Axis = Vertical
		if moveX > 0 {
			g.Direction = Down
			t := math.Abs(math.Tan(rad(rotation)))
			g.ScanY = cy + cx*t
			if moveY > 0 {
				g.StartY = cx * t
			}
		} else {
			g.Direction = Up
			t := math.Abs(math.Tan(rad(rotation + 180)))
			g.ScanY = -(cy + cx*t)
			if moveY < 0 {
				g.StartY = g.ScanY
			} else {
				g.StartY = -cy
			}
			g.StartX = -cx
		}
		g.Diagonal = math.Ceil(math.Hypot(cx, g.ScanY))
	} else {
		g.Axis = Horizontal
		if moveY < 0 {
			g.Direction = Right
			t := math.Abs(math.Tan(rad(rotation + 270)))
			g.ScanX = cx + cy*t
			if moveX > 0 {
				g.StartX = cy * t
			}
			g.StartY = -cy
		} else {
			g.Direction = Left
			t := math.Abs(math.Tan(rad(rotation + 90)))
			g.ScanX = -(cx + cy*t)
			if moveX < 0 {
				g.StartX = g.ScanX
			} else {
				g.StartX = -cx
			}
		}
		g.Diagonal = math.Ceil(math.Hypot(cy, g.ScanX))
	}

	return g
}

func rad(deg float64) float64 {
	return deg * math.Pi / 180
}
