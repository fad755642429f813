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
	"image/color"
	"math"
)

// RGBA is a colour with float32 components in the range [0, 1].
// Alpha is straight (not premultiplied) and never gamma-encoded.
type RGBA struct {
	R, G, B, A float32
}

// FromPacked decodes a colour in the host's packed format: red in the
// lowest byte, then green, blue and alpha in the highest byte.
func FromPacked(v uint32) RGBA {
	return RGBA{
		R: float32(v&0xFF) / 255,
		G: float32((v>>8)&0xFF) / 255,
		B: float32((v>>16)&0xFF) / 255,
		A: float32(v>>24) / 255,
	}
}

// Packed encodes c in the host's packed format.
func (c RGBA) Packed() uint32 {
	return uint32(quantize(c.R)) |
		uint32(quantize(c.G))<<8 |
		uint32(quantize(c.B))<<16 |
		uint32(quantize(c.A))<<24
}

// NRGBA converts c to 8-bit straight alpha.
func (c RGBA) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: quantize(c.R),
		G: quantize(c.G),
		B: quantize(c.B),
		A: quantize(c.A),
	}
}

// Linear converts the colour channels from sRGB encoding to linear light.
func (c RGBA) Linear() RGBA {
	return RGBA{
		R: srgbToLinear(c.R),
		G: srgbToLinear(c.G),
		B: srgbToLinear(c.B),
		A: c.A,
	}
}

// Nonlinear converts the colour channels from linear light to sRGB
// encoding.
func (c RGBA) Nonlinear() RGBA {
	return RGBA{
		R: linearToSRGB(c.R),
		G: linearToSRGB(c.G),
		B: linearToSRGB(c.B),
		A: c.A,
	}
}

// Lerp interpolates all four channels between c (t=0) and other (t=1).
func (c RGBA) Lerp(other RGBA, t float32) RGBA {
	s := 1 - t
	return RGBA{
		R: c.R*s + other.R*t,
		G: c.G*s + other.G*t,
		B: c.B*s + other.B*t,
		A: c.A*s + other.A*t,
	}
}

// srgbToLinear is the sRGB electro-optical transfer function.
func srgbToLinear(s float32) float32 {
	if s <= 0.04045 {
		return s / 12.92
	}
	return float32(math.Pow((float64(s)+0.055)/1.055, 2.4))
}

// linearToSRGB is the inverse of srgbToLinear.
func linearToSRGB(l float32) float32 {
	if l <= 0.0031308 {
		return l * 12.92
	}
	return float32(1.055*math.Pow(float64(l), 1/2.4) - 0.055)
}

func quantize(v float32) uint8 {
	switch {
	case v <= 0 || v != v:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255 + 0.5)
}
