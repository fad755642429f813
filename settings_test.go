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
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestDefaults(t *testing.T) {
	s := NewSettings()
	Defaults(s)

	if s.Int(KeyWidth) != 1920 || s.Int(KeyHeight) != 1080 {
		t.Errorf("size %dx%d, want 1920x1080", s.Int(KeyWidth), s.Int(KeyHeight))
	}
	if s.Double(KeyRotation) != 270 {
		t.Errorf("rotation %g, want 270", s.Double(KeyRotation))
	}
	if s.Int(KeyFromColor) != 0xFFD1D1D1 {
		t.Errorf("from_color %#x, want 0xFFD1D1D1", s.Int(KeyFromColor))
	}
	for i := 1; i <= MaxSteps; i++ {
		if got := s.Double(StopKey(KeyMidpoint, i)); got != 50 {
			t.Errorf("midpoint_%d = %g, want 50", i, got)
		}
		if got := s.Int(StopKey(KeyToColor, i)); got != 0xFF000000 {
			t.Errorf("to_color_%d = %#x, want 0xFF000000", i, got)
		}
		if got := s.Double(StopKey(KeyToOpacity, i)); got != 100 {
			t.Errorf("to_opacity_%d = %g, want 100", i, got)
		}
	}
	if s.HasUserValue(KeyWidth) {
		t.Error("defaults must not be user values")
	}
}

func TestUserValueOverridesDefault(t *testing.T) {
	s := NewSettings()
	s.SetDefaultInt(KeyWidth, 1920)
	s.SetInt(KeyWidth, 640)
	if got := s.Int(KeyWidth); got != 640 {
		t.Errorf("got %d, want 640", got)
	}
	s.Unset(KeyWidth)
	if got := s.Int(KeyWidth); got != 1920 {
		t.Errorf("after Unset got %d, want the default 1920", got)
	}

	s.SetDouble("x", 2.75)
	if s.Int("x") != 2 || s.Double("x") != 2.75 || !s.Bool("x") {
		t.Errorf("numeric conversions of 2.75: %d %g %t", s.Int("x"), s.Double("x"), s.Bool("x"))
	}
}

func TestMigrateLegacy(t *testing.T) {
	s := NewSettings()
	Defaults(s)
	s.SetDouble("midpoint", 25)
	s.SetDouble("to_color", 0xFF00FF00)
	s.SetDouble("to_opacity", 60)
	s.SetInt(KeyWidth, 320)

	if !MigrateLegacy(s) {
		t.Fatal("nothing migrated")
	}

	want := map[string]any{
		KeyWidth:       int64(320),
		"midpoint_1":   float64(25),
		"to_color_1":   float64(0xFF00FF00),
		"to_opacity_1": float64(60),
	}
	if d := cmp.Diff(want, s.user); d != "" {
		t.Errorf("user values after migration (-want +got):\n%s", d)
	}

	c := ConfigFromSettings(s)
	if c.Stops[0].Color.G != 1 || c.Stops[0].Color.A != 0.6 || c.Stops[0].Midpoint != 0.25 {
		t.Errorf("first stop after migration: %+v", c.Stops[0])
	}

	if MigrateLegacy(s) {
		t.Error("second migration reports changes")
	}
}

func TestSettingsJSON(t *testing.T) {
	s := NewSettings()
	Defaults(s)
	s.SetInt(KeySteps, 3)
	s.SetDouble(KeyRotation, 12.5)
	s.SetBool(KeySRGB, true)

	data, err := json.Marshal(s)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(data), `{"rotation":12.5,"srgb":true,"steps":3}`; got != want {
		t.Errorf("got %s, want %s", got, want)
	}

	s2 := NewSettings()
	Defaults(s2)
	if err := json.Unmarshal(data, s2); err != nil {
		t.Fatal(err)
	}
	opt := cmp.AllowUnexported(Settings{})
	if d := cmp.Diff(s, s2, opt); d != "" {
		t.Errorf("round trip (-want +got):\n%s", d)
	}
}

func TestSettingsJSONErrors(t *testing.T) {
	for _, in := range []string{`[1,2]`, `{"a":"text"}`, `{"a":[1]}`, `{`} {
		s := NewSettings()
		if err := json.Unmarshal([]byte(in), s); err == nil {
			t.Errorf("%s: no error", in)
		}
	}

	s := NewSettings()
	if err := json.Unmarshal([]byte(`{"a":null,"b":1e3}`), s); err != nil {
		t.Fatal(err)
	}
	if s.HasUserValue("a") || s.Int("b") != 1000 {
		t.Errorf("got %v", s.user)
	}
}

func TestConfigFromSettings(t *testing.T) {
	s := NewSettings()
	Defaults(s)
	s.SetInt(KeyWidth, 10000)
	s.SetInt(KeyHeight, -5)
	s.SetDouble(KeyRotation, -90)
	s.SetInt(KeySteps, 42)
	s.SetDouble(KeyFromOpacity, 150)
	s.SetDouble(StopKey(KeyMidpoint, 2), -3)

	c := ConfigFromSettings(s)
	want := Config{
		Width:    MaxSize,
		Height:   0,
		Rotation: 270,
		From:     RGBA{R: 0xD1 / 255., G: 0xD1 / 255., B: 0xD1 / 255., A: 1},
	}
	ignoreStops := cmpopts.IgnoreFields(Config{}, "Stops")
	if d := cmp.Diff(want, c, ignoreStops); d != "" {
		t.Errorf("config (-want +got):\n%s", d)
	}
	if len(c.Stops) != MaxSteps {
		t.Fatalf("%d stops, want %d", len(c.Stops), MaxSteps)
	}
	if c.Stops[1].Midpoint != 0 || c.Stops[0].Midpoint != 0.5 {
		t.Errorf("midpoints %g, %g", c.Stops[0].Midpoint, c.Stops[1].Midpoint)
	}

	s.SetInt(KeySteps, 0)
	if n := len(ConfigFromSettings(s).Stops); n != 1 {
		t.Errorf("steps=0 gives %d stops, want 1", n)
	}
}
