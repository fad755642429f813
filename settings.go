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
	"fmt"
	"math"
	"strconv"
)

// Setting keys used by the gradient source.
const (
	KeyWidth       = "width"
	KeyHeight      = "height"
	KeyRotation    = "rotation"
	KeySRGB        = "srgb"
	KeySteps       = "steps"
	KeyFromColor   = "from_color"
	KeyFromOpacity = "from_opacity"

	// per-stop keys, see StopKey
	KeyMidpoint  = "midpoint"
	KeyToColor   = "to_color"
	KeyToOpacity = "to_opacity"
)

// StopKey returns the settings key of a per-stop value for stop i,
// counting from 1. For example StopKey(KeyToColor, 2) is "to_color_2".
func StopKey(base string, i int) string {
	return base + "_" + strconv.Itoa(i)
}

// Settings is a flat key/value store in the style of a video host's
// settings object. Every key can have a user value and a default; the
// typed getters return the user value if present and the default
// otherwise.
//
// Values are int64, float64 or bool. Numeric getters convert between int64
// and float64, so that values read back from JSON work either way.
type Settings struct {
	user     map[string]any
	defaults map[string]any
}

// NewSettings returns an empty settings object.
func NewSettings() *Settings {
	return &Settings{
		user:     make(map[string]any),
		defaults: make(map[string]any),
	}
}

func (s *Settings) lookup(key string) any {
	if v, ok := s.user[key]; ok {
		return v
	}
	return s.defaults[key]
}

// Int returns the integer value of key, or 0 if the key is not set.
func (s *Settings) Int(key string) int64 {
	switch v := s.lookup(key).(type) {
	case int64:
		return v
	case float64:
		if math.IsNaN(v) {
			return 0
		}
		return int64(v)
	case bool:
		if v {
			return 1
		}
	}
	return 0
}

// Double returns the floating point value of key, or 0 if the key is not
// set.
func (s *Settings) Double(key string) float64 {
	switch v := s.lookup(key).(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	case bool:
		if v {
			return 1
		}
	}
	return 0
}

// Bool returns the boolean value of key, or false if the key is not set.
func (s *Settings) Bool(key string) bool {
	switch v := s.lookup(key).(type) {
	case bool:
		return v
	case int64:
		return v != 0
	case float64:
		return v != 0
	}
	return false
}

// HasUserValue reports whether key has a user value.
func (s *Settings) HasUserValue(key string) bool {
	_, ok := s.user[key]
	return ok
}

// Unset removes the user value of key. The default, if any, stays.
func (s *Settings) Unset(key string) {
	delete(s.user, key)
}

// SetInt, SetDouble and SetBool store a user value for key, replacing any
// earlier user value of any type.
func (s *Settings) SetInt(key string, v int64)      { s.user[key] = v }
func (s *Settings) SetDouble(key string, v float64) { s.user[key] = v }
func (s *Settings) SetBool(key string, v bool)      { s.user[key] = v }

// SetDefaultInt, SetDefaultDouble and SetDefaultBool store the value used
// when key has no user value. Defaults are not written by MarshalJSON.
func (s *Settings) SetDefaultInt(key string, v int64)      { s.defaults[key] = v }
func (s *Settings) SetDefaultDouble(key string, v float64) { s.defaults[key] = v }
func (s *Settings) SetDefaultBool(key string, v bool)      { s.defaults[key] = v }

// Clone returns a deep copy of s.
func (s *Settings) Clone() *Settings {
	c := NewSettings()
	for k, v := range s.user {
		c.user[k] = v
	}
	for k, v := range s.defaults {
		c.defaults[k] = v
	}
	return c
}

// MarshalJSON writes the user values as a JSON object. Defaults are not
// written, they are supplied again by Defaults when the settings are
// loaded.
func (s *Settings) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.user)
}

// UnmarshalJSON replaces the user values by the members of a JSON object.
// Defaults are kept. Integral numbers are stored as int64, all other
// numbers as float64.
func (s *Settings) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	user := make(map[string]any, len(raw))
	for key, msg := range raw {
		var v any
		if err := json.Unmarshal(msg, &v); err != nil {
			return fmt.Errorf("setting %q: %w", key, err)
		}
		switch v := v.(type) {
		case bool:
			user[key] = v
		case float64:
			if i, err := strconv.ParseInt(string(msg), 10, 64); err == nil {
				user[key] = i
			} else {
				user[key] = v
			}
		case nil:
			// null means "no user value"
		default:
			return fmt.Errorf("setting %q: unsupported value %s", key, msg)
		}
	}
	if s.defaults == nil {
		s.defaults = make(map[string]any)
	}
	s.user = user
	return nil
}

// legacyKeys lists the keys used by single-stop versions of the source,
// which are now the keys of the first stop.
var legacyKeys = []string{KeyMidpoint, KeyToColor, KeyToOpacity}

// MigrateLegacy moves the user values of the legacy single-stop keys
// "midpoint", "to_color" and "to_opacity" to the keys of the first stop
// and removes the legacy values. It reports whether anything was moved.
func MigrateLegacy(s *Settings) bool {
	changed := false
	for _, key := range legacyKeys {
		v, ok := s.user[key]
		if !ok {
			continue
		}
		s.user[StopKey(key, 1)] = v
		delete(s.user, key)
		changed = true
	}
	return changed
}

// Defaults installs the default values of the gradient source in s.
func Defaults(s *Settings) {
	s.SetDefaultInt(KeyWidth, 1920)
	s.SetDefaultInt(KeyHeight, 1080)
	s.SetDefaultDouble(KeyRotation, 270)
	s.SetDefaultInt(KeyFromColor, 0xFFD1D1D1)
	s.SetDefaultDouble(KeyFromOpacity, 100)
	s.SetDefaultInt(KeySteps, 1)
	for i := 1; i <= MaxSteps; i++ {
		s.SetDefaultDouble(StopKey(KeyMidpoint, i), 50)
		s.SetDefaultInt(StopKey(KeyToColor, i), 0xFF000000)
		s.SetDefaultDouble(StopKey(KeyToOpacity, i), 100)
	}
}
