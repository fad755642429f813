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

import "slices"

// PropertyKind is the type of control a host shows for a property.
type PropertyKind int

const (
	PropInt PropertyKind = iota
	PropFloat
	PropBool
	PropColor
	PropText
)

func (k PropertyKind) String() string {
	switch k {
	case PropInt:
		return "int"
	case PropFloat:
		return "float"
	case PropBool:
		return "bool"
	case PropColor:
		return "color"
	case PropText:
		return "text"
	default:
		return "invalid"
	}
}

// Property describes one user-editable setting.
type Property struct {
	Name  string
	Kind  PropertyKind
	Label string

	// Min, Max and Step describe the range of numeric properties.
	Min, Max, Step float64

	// Suffix is shown after the value of numeric properties.
	Suffix string

	// Text is the content of PropText properties.
	Text string
}

// PluginInfo is the name of the informational text property.
const PluginInfo = "plugin_info"

// Properties is the ordered list of properties of a gradient source.
type Properties struct {
	list []Property
	loc  *Locale
}

// NewProperties builds the property list for the given settings, with
// labels translated by loc. A nil locale leaves the message keys
// untranslated.
func NewProperties(s *Settings, loc *Locale) *Properties {
	p := &Properties{loc: loc}
	p.add(Property{Name: KeyWidth, Kind: PropInt, Label: loc.Text(MsgWidth), Max: MaxSize, Step: 1})
	p.add(Property{Name: KeyHeight, Kind: PropInt, Label: loc.Text(MsgHeight), Max: MaxSize, Step: 1})
	p.add(Property{
		Name:   KeyRotation,
		Kind:   PropFloat,
		Label:  loc.Text(MsgRotation),
		Max:    360,
		Step:   1,
		Suffix: loc.Text(MsgDegrees),
	})
	p.add(Property{Name: KeySRGB, Kind: PropBool, Label: loc.Text(MsgSRGB)})
	p.add(Property{Name: KeySteps, Kind: PropInt, Label: loc.Text(MsgSteps), Min: 1, Max: MaxSteps, Step: 1})
	p.add(Property{Name: KeyFromColor, Kind: PropColor, Label: loc.Text(MsgFromColor)})
	p.add(percentProperty(KeyFromOpacity, loc.Text(MsgOpacity)))

	p.StepsModified(s)
	return p
}

// StepsModified brings the per-stop property groups in line with the
// number of steps in s: missing groups up to the number of steps are
// appended, groups beyond it are removed. It reports whether groups were
// added, in which case the plugin information text is moved to the end
// of the list.
func (p *Properties) StepsModified(s *Settings) bool {
	steps := int(clampInt(s.Int(KeySteps), 1, MaxSteps))

	changed := false
	for i := 1; i <= steps; i++ {
		name := StopKey(KeyMidpoint, i)
		if p.Get(name) != nil {
			continue
		}
		changed = true
		p.remove(PluginInfo)

		p.add(percentProperty(name, p.loc.Text(MsgMidpoint)))
		p.add(Property{Name: StopKey(KeyToColor, i), Kind: PropColor, Label: p.loc.Text(MsgToColor)})
		p.add(percentProperty(StopKey(KeyToOpacity, i), p.loc.Text(MsgOpacity)))
	}

	for i := steps + 1; i <= MaxSteps; i++ {
		p.remove(StopKey(KeyMidpoint, i))
		p.remove(StopKey(KeyToColor, i))
		p.remove(StopKey(KeyToOpacity, i))
	}

	if changed {
		p.add(Property{
			Name: PluginInfo,
			Kind: PropText,
			Text: p.loc.Text(MsgGradientSource) + " (" + Version + ")",
		})
	}
	return changed
}

// Get returns the property with the given name, or nil if there is none.
// The returned pointer is valid until the list is next modified.
func (p *Properties) Get(name string) *Property {
	for i := range p.list {
		if p.list[i].Name == name {
			return &p.list[i]
		}
	}
	return nil
}

// List returns a copy of the properties in display order.
func (p *Properties) List() []Property {
	return slices.Clone(p.list)
}

// Names returns the property names in display order.
func (p *Properties) Names() []string {
	names := make([]string, len(p.list))
	for i := range p.list {
		names[i] = p.list[i].Name
	}
	return names
}

// Len returns the number of properties.
func (p *Properties) Len() int {
	return len(p.list)
}

func (p *Properties) add(prop Property) {
	p.list = append(p.list, prop)
}

func (p *Properties) remove(name string) {
	p.list = slices.DeleteFunc(p.list, func(prop Property) bool {
		return prop.Name == name
	})
}

func percentProperty(name, label string) Property {
	return Property{
		Name:   name,
		Kind:   PropFloat,
		Label:  label,
		Max:    100,
		Step:   1,
		Suffix: "%",
	}
}
