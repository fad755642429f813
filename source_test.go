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
	"bytes"
	"errors"
	"image"
	"image/color"
	"log/slog"
	"strings"
	"testing"
)

func smallSettings(w, h int) *Settings {
	s := NewSettings()
	Defaults(s)
	s.SetInt(KeyWidth, int64(w))
	s.SetInt(KeyHeight, int64(h))
	s.SetDouble(KeyRotation, 0)
	s.SetInt(KeyFromColor, 0xFFFFFFFF)
	return s
}

func TestSourceRender(t *testing.T) {
	src := NewSource(smallSettings(40, 30), nil)
	defer src.Destroy()

	if src.Width() != 40 || src.Height() != 30 {
		t.Fatalf("size %dx%d, want 40x30", src.Width(), src.Height())
	}

	dst := image.NewRGBA(image.Rect(0, 0, 40, 30))
	src.Render(dst)
	if got := dst.RGBAAt(3, 0); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("top row %v, want white", got)
	}
	if got := dst.RGBAAt(3, 29); got.R > 10 || got.A != 255 {
		t.Errorf("bottom row %v, want nearly black", got)
	}
}

func TestSourceSurfaceReuse(t *testing.T) {
	calls := 0
	alloc := func(w, h int) (*image.NRGBA, error) {
		calls++
		return DefaultAllocator(w, h)
	}
	s := smallSettings(16, 16)
	src := NewSource(s, alloc)

	s.SetDouble(KeyRotation, 45)
	src.Update(s)
	src.Update(s)
	if calls != 2 {
		t.Errorf("%d allocations for three frames of the same size, want 2", calls)
	}

	s.SetInt(KeyWidth, 17)
	src.Update(s)
	if calls != 3 {
		t.Errorf("%d allocations after resize, want 3", calls)
	}
	if b := src.Frame().Bounds(); b.Dx() != 17 {
		t.Errorf("frame width %d after resize, want 17", b.Dx())
	}
}

// TestSourceSoftFail checks that a failed allocation keeps the previous
// frame and is logged.
func TestSourceSoftFail(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	defer SetLogger(nil)

	fail := false
	alloc := func(w, h int) (*image.NRGBA, error) {
		if fail {
			return nil, ErrAllocate
		}
		return DefaultAllocator(w, h)
	}

	s := smallSettings(8, 8)
	src := NewSource(s, alloc)
	before := src.Frame()
	if before == nil {
		t.Fatal("no frame after creation")
	}
	pix := bytes.Clone(before.Pix)

	fail = true
	s.SetInt(KeyWidth, 9)
	src.Update(s)

	if src.Frame() != before || !bytes.Equal(src.Frame().Pix, pix) {
		t.Error("previous frame not kept after allocation failure")
	}
	if src.Width() != 9 {
		t.Errorf("width %d, want the configured 9", src.Width())
	}
	if !strings.Contains(buf.String(), "repaint skipped") || !strings.Contains(buf.String(), ErrAllocate.Error()) {
		t.Errorf("missing warning in log output %q", buf.String())
	}
}

func TestSourceZeroSize(t *testing.T) {
	src := NewSource(smallSettings(0, 10), nil)
	if src.Frame() != nil {
		t.Error("frame painted for zero width")
	}
	dst := image.NewRGBA(image.Rect(0, 0, 4, 4))
	src.Render(dst) // must not panic
	if src.Width() != 0 {
		t.Errorf("width %d, want 0", src.Width())
	}
}

func TestDefaultAllocator(t *testing.T) {
	for _, size := range [][2]int{{0, 1}, {1, 0}, {-1, 5}, {MaxSize + 1, 1}} {
		if _, err := DefaultAllocator(size[0], size[1]); !errors.Is(err, ErrAllocate) {
			t.Errorf("%dx%d: got %v, want ErrAllocate", size[0], size[1], err)
		}
	}
	img, err := DefaultAllocator(3, 2)
	if err != nil || img.Bounds() != image.Rect(0, 0, 3, 2) {
		t.Errorf("3x2: got %v, %v", img, err)
	}
}

func TestSurfaceSwap(t *testing.T) {
	var s Surface
	a, err := s.Begin(2, 2)
	if err != nil {
		t.Fatal(err)
	}
	if s.Front() != nil {
		t.Error("front buffer before first swap")
	}
	s.Swap()
	if s.Front() != a {
		t.Error("swap did not publish the back buffer")
	}
	b, _ := s.Begin(2, 2)
	if b == a {
		t.Error("back buffer aliases the front buffer")
	}
	s.Release()
	if s.Front() != nil {
		t.Error("front buffer after release")
	}
}
