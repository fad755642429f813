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

// Command gradient-preview shows a gradient source in a window.
//
// The source settings are read from a JSON file, which is watched for
// changes: every time the file is saved the gradient is repainted. With
// -o the first frame is written to a PNG file instead of opening a
// window.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/text/language"

	"seehuhn.de/go/gradient"
)

func main() {
	os.Exit(run())
}

func run() int {
	settingsPath := flag.String("c", "", "JSON settings file")
	version := flag.Bool("v", false, "print version and exit")
	lang := flag.String("lang", "en-US", "language for labels")
	props := flag.Bool("props", false, "print the property list and exit")
	output := flag.String("o", "", "write the first frame to this PNG file and exit")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	if *version {
		fmt.Printf("gradient-preview version %s\n", gradient.Version)
		return 0
	}

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	gradient.SetLogger(logger)

	tag, err := language.Parse(*lang)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid language %q: %v\n", *lang, err)
		return 1
	}

	settings := gradient.NewSettings()
	if *settingsPath != "" {
		if err := loadSettings(*settingsPath, settings); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", *settingsPath, err)
			return 1
		}
	}

	reg := gradient.NewRegistry()
	reg.Locale = gradient.NewLocale(tag)
	if err := gradient.Load(reg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	src, err := reg.Create(gradient.SourceID, settings)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer src.Destroy()

	if *props {
		printProperties(os.Stdout, src.Properties(settings))
		return 0
	}

	if *output != "" {
		if err := writeFrame(*output, src); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		return 0
	}

	h := newHost(src, settings)

	if *settingsPath != "" {
		reload := func() error {
			s := gradient.NewSettings()
			gradient.Defaults(s)
			if err := loadSettings(*settingsPath, s); err != nil {
				return err
			}
			h.update(s)
			logger.Info("settings reloaded", "file", *settingsPath)
			return nil
		}
		onError := func(err error) {
			logger.Warn("cannot reload settings", "file", *settingsPath, "err", err)
		}
		w, err := newSettingsWatcher(*settingsPath, 0, reload, onError)
		if err != nil {
			fmt.Fprintf(os.Stderr, "cannot watch %s: %v\n", *settingsPath, err)
			return 1
		}
		w.Start()
		defer w.Stop()
	}

	width, height := h.size()
	ebiten.SetWindowSize(windowSize(width, height))
	ebiten.SetWindowTitle(reg.Locale.Text(gradient.MsgGradientSource))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(h); err != nil && !errors.Is(err, errQuit) {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

// loadSettings reads the user values of s from a JSON file.
func loadSettings(fname string, s *gradient.Settings) error {
	data, err := os.ReadFile(fname)
	if err != nil {
		return err
	}
	return s.UnmarshalJSON(data)
}

// windowSize scales large frames down to fit on a typical screen.
func windowSize(width, height int) (int, int) {
	const maxWindow = 1280
	for width > maxWindow || height > maxWindow {
		width, height = (width+1)/2, (height+1)/2
	}
	return width, height
}

func writeFrame(fname string, src gradient.VideoSource) error {
	w, h := src.Width(), src.Height()
	if w <= 0 || h <= 0 {
		return fmt.Errorf("empty frame (%dx%d)", w, h)
	}
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	src.Render(img)

	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func printProperties(w io.Writer, props *gradient.Properties) {
	for _, p := range props.List() {
		switch p.Kind {
		case gradient.PropInt, gradient.PropFloat:
			fmt.Fprintf(w, "%-14s %-6s %-14q [%g, %g] step %g %s\n",
				p.Name, p.Kind, p.Label, p.Min, p.Max, p.Step, p.Suffix)
		case gradient.PropText:
			fmt.Fprintf(w, "%-14s %-6s %s\n", p.Name, p.Kind, p.Text)
		default:
			fmt.Fprintf(w, "%-14s %-6s %q\n", p.Name, p.Kind, p.Label)
		}
	}
}
