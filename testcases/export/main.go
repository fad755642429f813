// Command export renders every test case to a PNG file and writes the
// case definitions, with their resolved scan geometry, to JSON.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"fmt"
	"image/png"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/gradient"
	"seehuhn.de/go/gradient/testcases"
)

const outDir = "testdata/export"

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	var out struct {
		Version   string         `json:"version"`
		TestCases []jsonTestCase `json:"testcases"`
	}
	out.Version = gradient.Version

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			jtc, err := export(name, tc)
			if err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			out.TestCases = append(out.TestCases, jtc)
		}
	}

	f, err := os.Create(filepath.Join(outDir, "testcases.json"))
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name     string          `json:"name"`
	Image    string          `json:"image"`
	Settings json.RawMessage `json:"settings"`
	Geometry jsonGeometry    `json:"geometry"`
	Bands    int             `json:"bands"`
}

type jsonGeometry struct {
	Axis      string     `json:"axis"`
	Direction string     `json:"direction"`
	Rotation  float64    `json:"rotation"`
	Scan      [2]float64 `json:"scan"`
	Start     [2]float64 `json:"start"`
	Diagonal  float64    `json:"diagonal"`
}

func export(name string, tc testcases.TestCase) (jsonTestCase, error) {
	s := tc.Settings()
	src := gradient.NewSource(s, nil)
	defer src.Destroy()

	frame := src.Frame()
	if frame == nil {
		return jsonTestCase{}, fmt.Errorf("no frame for %dx%d", tc.Width, tc.Height)
	}

	pngName := name + ".png"
	f, err := os.Create(filepath.Join(outDir, pngName))
	if err != nil {
		return jsonTestCase{}, err
	}
	if err := png.Encode(f, frame); err != nil {
		f.Close()
		return jsonTestCase{}, err
	}
	if err := f.Close(); err != nil {
		return jsonTestCase{}, err
	}

	// The settings are written after the source has seen them, so legacy
	// keys appear in their migrated form.
	settings, err := json.Marshal(s)
	if err != nil {
		return jsonTestCase{}, err
	}

	cfg := src.Config()
	g := cfg.Geometry()
	tab := cfg.Table()
	return jsonTestCase{
		Name:     name,
		Image:    pngName,
		Settings: settings,
		Geometry: jsonGeometry{
			Axis:      g.Axis.String(),
			Direction: g.Direction.String(),
			Rotation:  g.Rotation,
			Scan:      [2]float64{g.ScanX, g.ScanY},
			Start:     [2]float64{g.StartX, g.StartY},
			Diagonal:  g.Diagonal,
		},
		Bands: gradient.BandCount(g, &tab),
	}, nil
}
