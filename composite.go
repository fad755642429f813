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
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/gradient/raster"
)

// coverageThreshold is the coverage at which a band owns a pixel.
// A coverage of one half or more means the band contains the pixel centre
// (up to the slope of the band edges within one pixel).
const coverageThreshold = 0.5

// Compositor paints gradients into NRGBA images. It keeps its rasteriser
// between calls, so a single Compositor should be reused for all frames of
// a source.
//
// A Compositor is not safe for concurrent use.
type Compositor struct {
	// BandsOnly disables the axis-aligned pre-fill, so that only the bands
	// themselves are painted.
	BandsOnly bool

	r    *raster.Rasterizer
	quad [4]vec.Vec2

	// state of the band currently being painted
	dst  *image.NRGBA
	col  color.NRGBA
	emit func(y, xMin int, coverage []float32)
}

// NewCompositor allocates a new Compositor.
func NewCompositor() *Compositor {
	c := &Compositor{
		r: raster.NewRasterizer(rect.Rect{}),
	}
	c.emit = c.paintRow
	return c
}

// Composite clears dst and paints the gradient described by g and t.
// The origin of dst must be at (0, 0). It returns the number of bands
// painted.
func (c *Compositor) Composite(dst *image.NRGBA, g Geometry, t *Table) int {
	clear(dst.Pix)
	if len(t.Transitions) == 0 {
		return 0
	}

	if !c.BandsOnly {
		c.prefill(dst, g, t)
	}

	b := dst.Bounds()
	c.r.Reset(rect.Rect{URx: float64(b.Max.X), URy: float64(b.Max.Y)})
	c.dst = dst
	defer func() { c.dst = nil }()

	count := 0
	for band := range Bands(g, t) {
		c.quad = band.Outline()
		c.r.CTM = band.CTM
		c.col = band.Color.NRGBA()
		c.r.FillNonZero(c.quad[:], c.emit)
		count++
	}
	return count
}

// paintRow replaces every pixel of one span for which the current band
// reaches the coverage threshold.
func (c *Compositor) paintRow(y, xMin int, coverage []float32) {
	off := c.dst.PixOffset(xMin, y)
	pix := c.dst.Pix[off : off+4*len(coverage)]
	for i, cov := range coverage {
		if cov < coverageThreshold {
			continue
		}
		p := pix[4*i : 4*i+4 : 4*i+4]
		p[0] = c.col.R
		p[1] = c.col.G
		p[2] = c.col.B
		p[3] = c.col.A
	}
}

// prefill paints the image in two axis-aligned halves: the start colour
// on the side where the scan begins and the final colour on the side
// where it ends, split at t.Split along the scan direction.
func (c *Compositor) prefill(dst *image.NRGBA, g Geometry, t *Table) {
	from := image.NewUniform(t.Transitions[0].From.NRGBA())
	to := image.NewUniform(t.Last().NRGBA())

	b := dst.Bounds()
	w, h := b.Dx(), b.Dy()
	m := float64(t.Split)

	var first, second image.Rectangle
	var firstSrc, secondSrc image.Image
	switch g.Direction {
	case Down:
		split := int(float64(h) * m)
		first, second = image.Rect(0, 0, w, split), image.Rect(0, split, w, h)
		firstSrc, secondSrc = from, to
	case Up:
		split := int(float64(h) * (1 - m))
		first, second = image.Rect(0, 0, w, split), image.Rect(0, split, w, h)
		firstSrc, secondSrc = to, from
	case Right:
		split := int(float64(w) * m)
		first, second = image.Rect(0, 0, split, h), image.Rect(split, 0, w, h)
		firstSrc, secondSrc = from, to
	case Left:
		split := int(float64(w) * (1 - m))
		first, second = image.Rect(0, 0, split, h), image.Rect(split, 0, w, h)
		firstSrc, secondSrc = to, from
	default:
		return
	}
	draw.Draw(dst, first, firstSrc, image.Point{}, draw.Src)
	draw.Draw(dst, second, secondSrc, image.Point{}, draw.Src)
}
