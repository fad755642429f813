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
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys for user-visible texts.
const (
	MsgGradient       = "Gradient"
	MsgGradientSource = "GradientSource"
	MsgDescription    = "Description"
	MsgWidth          = "Width"
	MsgHeight         = "Height"
	MsgRotation       = "Rotation"
	MsgDegrees        = "Degrees"
	MsgSRGB           = "sRGB"
	MsgSteps          = "Steps"
	MsgFromColor      = "FromColor"
	MsgToColor        = "ToColor"
	MsgOpacity        = "Opacity"
	MsgMidpoint       = "Midpoint"
)

var translations = map[language.Tag]map[string]string{
	language.AmericanEnglish: {
		MsgGradient:       "Gradient",
		MsgGradientSource: "Gradient Source",
		MsgDescription:    "Renders multi-step gradients at any angle.",
		MsgWidth:          "Width",
		MsgHeight:         "Height",
		MsgRotation:       "Rotation",
		MsgDegrees:        "°",
		MsgSRGB:           "sRGB",
		MsgSteps:          "Steps",
		MsgFromColor:      "From Color",
		MsgToColor:        "To Color",
		MsgOpacity:        "Opacity",
		MsgMidpoint:       "Midpoint",
	},
	language.German: {
		MsgGradient:       "Farbverlauf",
		MsgGradientSource: "Farbverlaufsquelle",
		MsgDescription:    "Erzeugt mehrstufige Farbverläufe in beliebigem Winkel.",
		MsgWidth:          "Breite",
		MsgHeight:         "Höhe",
		MsgRotation:       "Drehung",
		MsgDegrees:        "°",
		MsgSRGB:           "sRGB",
		MsgSteps:          "Stufen",
		MsgFromColor:      "Startfarbe",
		MsgToColor:        "Zielfarbe",
		MsgOpacity:        "Deckkraft",
		MsgMidpoint:       "Mittelpunkt",
	},
}

var (
	supported = []language.Tag{language.AmericanEnglish, language.German}
	matcher   = language.NewMatcher(supported)
	messages  = newCatalog()
)

func newCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.AmericanEnglish))
	for tag, msgs := range translations {
		for key, msg := range msgs {
			// The only possible error is an invalid message, which
			// cannot happen for plain strings.
			_ = b.SetString(tag, key, msg)
		}
	}
	return b
}

// Locale translates the user-visible texts of the gradient source.
// Tags without a translation fall back to American English.
type Locale struct {
	tag language.Tag
	p   *message.Printer
}

// NewLocale returns the best available locale for tag.
func NewLocale(tag language.Tag) *Locale {
	_, idx, _ := matcher.Match(tag)
	best := supported[idx]
	return &Locale{
		tag: best,
		p:   message.NewPrinter(best, message.Catalog(messages)),
	}
}

// Tag returns the language of the translations.
func (l *Locale) Tag() language.Tag {
	return l.tag
}

// Text returns the translation of the message key. Unknown keys are
// returned unchanged.
func (l *Locale) Text(key string) string {
	if l == nil {
		return key
	}
	return l.p.Sprintf(message.Key(key, key))
}
