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

package main

import (
	"errors"
	"image"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/draw"

	"seehuhn.de/go/gradient"
)

var errQuit = errors.New("quit")

// host plays the role of a video host for a single source. Settings
// reloads arrive on the watcher goroutine while frames are drawn on the
// ebiten goroutine, so every call into the source holds mu.
type host struct {
	mu       sync.Mutex
	src      gradient.VideoSource
	settings *gradient.Settings
	gen      int // incremented on every update

	// frame buffer of the last generation drawn
	drawnGen int
	canvas   *image.RGBA
	screen   *ebiten.Image
}

func newHost(src gradient.VideoSource, s *gradient.Settings) *host {
	return &host{src: src, settings: s, gen: 1}
}

// update applies new settings to the source.
func (h *host) update(s *gradient.Settings) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.settings = s
	h.src.Update(s)
	h.gen++
}

// size returns the frame size of the source, at least 1×1.
func (h *host) size() (int, int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return max(h.src.Width(), 1), max(h.src.Height(), 1)
}

// Update implements ebiten.Game.
func (h *host) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) || ebiten.IsKeyPressed(ebiten.KeyQ) {
		return errQuit
	}
	return nil
}

// Draw implements ebiten.Game.
func (h *host) Draw(screen *ebiten.Image) {
	h.mu.Lock()
	defer h.mu.Unlock()

	w, ht := max(h.src.Width(), 1), max(h.src.Height(), 1)
	if h.canvas == nil || h.canvas.Rect.Dx() != w || h.canvas.Rect.Dy() != ht {
		h.canvas = image.NewRGBA(image.Rect(0, 0, w, ht))
		if h.screen != nil {
			h.screen.Deallocate()
		}
		h.screen = ebiten.NewImage(w, ht)
		h.drawnGen = 0
	}

	if h.drawnGen != h.gen {
		checkerboard(h.canvas, 16)
		h.src.Render(h.canvas)
		h.screen.WritePixels(h.canvas.Pix)
		h.drawnGen = h.gen
	}
	screen.DrawImage(h.screen, nil)
}

// Layout implements ebiten.Game.
func (h *host) Layout(outsideWidth, outsideHeight int) (int, int) {
	return h.size()
}

// checkerboard fills img with a grey checkerboard pattern, so that
// transparent parts of the gradient are visible.
func checkerboard(img *image.RGBA, cell int) {
	light := image.NewUniform(color.RGBA{0xCC, 0xCC, 0xCC, 0xFF})
	dark := image.NewUniform(color.RGBA{0x99, 0x99, 0x99, 0xFF})
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y += cell {
		for x := b.Min.X; x < b.Max.X; x += cell {
			src := light
			if ((x-b.Min.X)/cell+(y-b.Min.Y)/cell)%2 == 1 {
				src = dark
			}
			draw.Draw(img, image.Rect(x, y, x+cell, y+cell).Intersect(b), src, image.Point{}, draw.Src)
		}
	}
}
