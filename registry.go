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
)

// Version is the version of the gradient source, reported when the module
// is loaded.
var Version = "0.3.0"

// SourceID is the identifier under which Load registers the gradient
// source.
const SourceID = "gradient_source"

var (
	// ErrEmptyID is returned by Register for a SourceInfo without ID.
	ErrEmptyID = errors.New("empty source id")

	// ErrDuplicateSource is returned by Register if the ID is taken.
	ErrDuplicateSource = errors.New("duplicate source id")

	// ErrUnknownSource is returned by Create for unregistered IDs.
	ErrUnknownSource = errors.New("unknown source id")
)

// SourceKind classifies sources for the host.
type SourceKind int

const (
	// KindInput is a source which produces video without any input.
	KindInput SourceKind = iota
)

// SourceInfo describes a source type to the host.
type SourceInfo struct {
	ID   string
	Kind SourceKind
	Name string

	// Create makes a new instance which has been initialised from s.
	Create func(s *Settings) VideoSource

	// Defaults, if not nil, installs the default settings of the source.
	Defaults func(s *Settings)
}

// Registry holds the source types known to a host.
type Registry struct {
	// Locale is used for names and labels of the sources created by Load.
	Locale *Locale

	sources map[string]SourceInfo
	order   []string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{sources: make(map[string]SourceInfo)}
}

// Register adds a source type. It fails if the ID is empty or already
// registered.
func (r *Registry) Register(info SourceInfo) error {
	if info.ID == "" {
		return ErrEmptyID
	}
	if _, dup := r.sources[info.ID]; dup {
		return fmt.Errorf("%w: %q", ErrDuplicateSource, info.ID)
	}
	if r.sources == nil {
		r.sources = make(map[string]SourceInfo)
	}
	r.sources[info.ID] = info
	r.order = append(r.order, info.ID)
	return nil
}

// Lookup returns the source type with the given ID.
func (r *Registry) Lookup(id string) (SourceInfo, bool) {
	info, ok := r.sources[id]
	return info, ok
}

// IDs returns the IDs of all registered source types, in registration
// order.
func (r *Registry) IDs() []string {
	return append([]string(nil), r.order...)
}

// Create installs the defaults of the source type id in s and creates an
// instance. If s is nil, an empty settings object is used.
func (r *Registry) Create(id string, s *Settings) (VideoSource, error) {
	info, ok := r.sources[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, id)
	}
	if s == nil {
		s = NewSettings()
	}
	if info.Defaults != nil {
		info.Defaults(s)
	}
	return info.Create(s), nil
}

// Info returns the description of the gradient source type, with its
// name translated by loc.
func Info(loc *Locale) SourceInfo {
	return SourceInfo{
		ID:   SourceID,
		Kind: KindInput,
		Name: loc.Text(MsgGradient),
		Create: func(s *Settings) VideoSource {
			src := NewSource(s, nil)
			src.Locale = loc
			return src
		},
		Defaults: Defaults,
	}
}

// Load registers the gradient source with r.
func Load(r *Registry) error {
	Logger().Info("[Gradient Source] loaded", "version", Version)
	if err := r.Register(Info(r.Locale)); err != nil {
		return fmt.Errorf("gradient source: %w", err)
	}
	return nil
}
