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
	"errors"
	"fmt"
	"image"
)

// ErrAllocate is returned when a drawing surface cannot be allocated.
var ErrAllocate = errors.New("cannot allocate surface")

// An Allocator creates the pixel storage of a surface.
type Allocator func(width, height int) (*image.NRGBA, error)

// DefaultAllocator allocates in-memory NRGBA images of up to
// MaxSize×MaxSize pixels.
func DefaultAllocator(width, height int) (*image.NRGBA, error) {
	if width <= 0 || height <= 0 || width > MaxSize || height > MaxSize {
		return nil, fmt.Errorf("%w: %dx%d", ErrAllocate, width, height)
	}
	return image.NewNRGBA(image.Rect(0, 0, width, height)), nil
}

// Surface is a double-buffered render target. The source paints into the
// back buffer obtained from Begin and publishes it with Swap; the host
// samples the front buffer.
type Surface struct {
	// Alloc creates new buffers. If Alloc is nil, DefaultAllocator is used.
	Alloc Allocator

	front, back *image.NRGBA
}

// Begin returns the back buffer for a width×height frame. The buffer is
// reused if it already has the right size and recreated otherwise. On
// failure the surface is unchanged and the front buffer stays valid.
func (s *Surface) Begin(width, height int) (*image.NRGBA, error) {
	if s.back != nil && s.back.Rect.Dx() == width && s.back.Rect.Dy() == height {
		return s.back, nil
	}

	alloc := s.Alloc
	if alloc == nil {
		alloc = DefaultAllocator
	}
	img, err := alloc(width, height)
	if err != nil {
		return nil, err
	}
	if img == nil {
		return nil, fmt.Errorf("%w: %dx%d", ErrAllocate, width, height)
	}
	s.back = img
	return img, nil
}

// Swap publishes the back buffer. The previous front buffer becomes the
// new back buffer.
func (s *Surface) Swap() {
	s.front, s.back = s.back, s.front
}

// Front returns the most recently published buffer, or nil if nothing
// has been published yet.
func (s *Surface) Front() *image.NRGBA {
	return s.front
}

// Release drops both buffers.
func (s *Surface) Release() {
	s.front = nil
	s.back = nil
}
