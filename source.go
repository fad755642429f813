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

	"golang.org/x/image/draw"
)

// VideoSource is the interface between a video host and one instance of
// a source. The host calls the methods from a single goroutine.
type VideoSource interface {
	// Update applies new settings. Sources may modify s, for example to
	// migrate old keys.
	Update(s *Settings)

	// Render draws the current frame onto dst.
	Render(dst draw.Image)

	// Width and Height give the size of the frame, in pixels.
	Width() int
	Height() int

	// Properties returns the user interface description for s.
	Properties(s *Settings) *Properties

	// Destroy releases all resources. The source must not be used
	// afterwards.
	Destroy()
}

// Source is a gradient video source. Every call to Update repaints the
// gradient into an off-screen surface, which Render then copies to the
// host.
type Source struct {
	// Locale translates property labels. If Locale is nil, message keys
	// are used as labels.
	Locale *Locale

	surface Surface
	comp    *Compositor

	cfg           Config
	width, height int
}

var _ VideoSource = (*Source)(nil)

// NewSource creates a gradient source and paints the first frame from s.
// The allocator is used for the drawing surface; nil selects
// DefaultAllocator.
func NewSource(s *Settings, alloc Allocator) *Source {
	src := &Source{
		surface: Surface{Alloc: alloc},
		comp:    NewCompositor(),
	}
	src.Update(s)
	return src
}

// Update reads the configuration from s and repaints the gradient. If the
// drawing surface cannot be allocated, the repaint is skipped and the
// previous frame stays visible.
func (src *Source) Update(s *Settings) {
	log := Logger()
	if MigrateLegacy(s) {
		log.Debug("migrated legacy gradient settings")
	}

	src.cfg = ConfigFromSettings(s)
	src.width, src.height = src.cfg.Width, src.cfg.Height

	g := src.cfg.Geometry()
	t := src.cfg.Table()

	dst, err := src.surface.Begin(src.width, src.height)
	if err != nil {
		log.Warn("gradient repaint skipped", "width", src.width, "height", src.height, "err", err)
		return
	}
	bands := src.comp.Composite(dst, g, &t)
	src.surface.Swap()

	log.Debug("gradient repainted",
		"width", src.width,
		"height", src.height,
		"rotation", g.Rotation,
		"axis", g.Axis,
		"direction", g.Direction,
		"steps", len(t.Transitions),
		"bands", bands)
}

// Render copies the current frame onto dst, composited over the existing
// content.
func (src *Source) Render(dst draw.Image) {
	front := src.surface.Front()
	if front == nil {
		return
	}
	draw.Copy(dst, dst.Bounds().Min, front, front.Bounds(), draw.Over, nil)
}

// Width returns the configured width.
func (src *Source) Width() int { return src.width }

// Height returns the configured height.
func (src *Source) Height() int { return src.height }

// Properties returns the property list for s.
func (src *Source) Properties(s *Settings) *Properties {
	return NewProperties(s, src.Locale)
}

// Config returns the configuration of the most recent update.
func (src *Source) Config() Config {
	return src.cfg
}

// Frame returns the most recently painted frame, or nil if no frame has
// been painted yet. The image is owned by the source and is overwritten
// by the next successful update but one.
func (src *Source) Frame() *image.NRGBA {
	return src.surface.Front()
}

// Destroy releases the drawing surface.
func (src *Source) Destroy() {
	src.surface.Release()
}
