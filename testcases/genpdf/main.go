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

// Command genpdf generates reference images for the gradient tests.
// It writes the band sequence of every test case as a vector PDF and,
// with -gs, renders the PDFs to PNGs using Ghostscript.
//
// Opacity is not represented in the PDF files; all bands are painted
// opaque.
package main

import (
	"flag"
	"fmt"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/gradient"
	"seehuhn.de/go/gradient/testcases"
)

const refDir = "testdata/reference"

func main() {
	useGS := flag.Bool("gs", false, "render the PDF files to PNG using Ghostscript")
	skipLarge := flag.Bool("short", false, "skip the large test cases")
	flag.Parse()

	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		if category == "large" && *skipLarge {
			continue
		}
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(refDir, name+".pdf")
			pngPath := filepath.Join(refDir, name+".png")

			if err := generatePDF(tc, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			if *useGS {
				if err := renderPNG(pdfPath, pngPath); err != nil {
					panic(fmt.Errorf("%s: %w", name, err))
				}
			}
		}
	}
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	s := tc.Settings()
	gradient.MigrateLegacy(s)
	cfg := gradient.ConfigFromSettings(s)
	g := cfg.Geometry()
	tab := cfg.Table()

	// Page size in points (1 point = 1 pixel at 72 DPI)
	w, h := float64(cfg.Width), float64(cfg.Height)
	paper := &pdf.Rectangle{URx: w, URy: h}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF origin is bottom-left; the gradient geometry assumes top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, h})

	// Backdrop in the start colour, in case a band misses a pixel.
	page.SetFillColor(rgb(tab.Transitions[0].From))
	page.Rectangle(0, 0, w, h)
	page.Fill()

	for band := range gradient.Bands(g, &tab) {
		page.PushGraphicsState()
		page.Transform(band.CTM)
		page.SetFillColor(rgb(band.Color))
		for cmd, pts := range band.Path() {
			switch cmd {
			case path.CmdMoveTo:
				page.MoveTo(pts[0].X, pts[0].Y)
			case path.CmdLineTo:
				page.LineTo(pts[0].X, pts[0].Y)
			case path.CmdClose:
				page.ClosePath()
			}
		}
		page.Fill()
		page.PopGraphicsState()
	}

	return page.Close()
}

func rgb(c gradient.RGBA) color.Color {
	return color.DeviceRGB(float64(c.R), float64(c.G), float64(c.B))
}

func renderPNG(pdfPath, pngPath string) error {
	// -sDEVICE=png16m: 24-bit RGB
	// -r72: 72 DPI (1 point = 1 pixel)
	// -dGraphicsAlphaBits=1: no anti-aliasing, so that each pixel shows
	// the last band covering its centre
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=png16m",
		"-r72",
		"-dGraphicsAlphaBits=1",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
