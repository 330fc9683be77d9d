// seehuhn.de/go/vnglyph - Vietnamese glyph composition rules for OpenType fonts
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

package vnglyph

import (
	"encoding/json"
	"fmt"
	"io"

	"golang.org/x/text/unicode/norm"

	"seehuhn.de/go/vnglyph/variant"
)

// Options gives the glyph names used for the combining marks, and
// controls which variants are generated.  Empty fields are replaced by
// their default values, see [MergeOptions].
//
// The JSON field names follow the names used by existing glyph
// generation scripts, so that option files can be shared.
type Options struct {
	// CharacterStyle selects the rules used when the glyph list consists
	// of a single glyph.  The possible values are "A", "E", "I", "i",
	// "D,d", "O", "o", "Ư,Ơ", "Y", "U" and "u".
	CharacterStyle string `json:"characterStyle,omitempty"`

	Grave     string `json:"graveAccentGlyph,omitempty"`
	Acute     string `json:"acuteAccentGlyph,omitempty"`
	Tilde     string `json:"tildeGlyph,omitempty"`
	HookAbove string `json:"hookAboveGlyph,omitempty"`
	DotBelow  string `json:"dotBelowGlyph,omitempty"`

	Circumflex string `json:"circumflexGlyph,omitempty"`
	Breve      string `json:"breveGlyph,omitempty"`

	HornUppercase string `json:"hornGlyphUppercase,omitempty"`
	HornLowercase string `json:"hornGlyphLowercase,omitempty"`

	// The secondary tone marks are placed above a circumflex or a breve.
	// If unset, they default to the corresponding primary mark.
	SecondaryGrave     string `json:"secondaryGraveGlyph,omitempty"`
	SecondaryAcute     string `json:"secondaryAcuteGlyph,omitempty"`
	SecondaryTilde     string `json:"secondaryTildeGlyph,omitempty"`
	SecondaryHookAbove string `json:"secondaryHookAboveGlyph,omitempty"`

	DotlessI string `json:"dotlessIGlyph,omitempty"`

	// Feature is the OpenType feature tag used for the output glyph names
	// in single glyph mode.
	Feature string `json:"openTypeFeature,omitempty"`

	DStrokeUppercase string `json:"dStrokeUppercaseGlyph,omitempty"`
	DStrokeLowercase string `json:"dStrokeLowercaseGlyph,omitempty"`

	CreateDotlessI *bool `json:"shouldCreateDotlessI,omitempty"`
	CreateHorn     *bool `json:"shouldCreateHorn,omitempty"`
}

// Bool returns a pointer to b, for use in [Options].
func Bool(b bool) *bool {
	return &b
}

var defaultOptions = &Options{
	Grave:              "grave",
	Acute:              "acute",
	Tilde:              "tilde",
	HookAbove:          "hookabovecomb",
	DotBelow:           "dotbelowcomb",
	Circumflex:         "circumflex",
	Breve:              "breve",
	HornUppercase:      "horn",
	HornLowercase:      "horn",
	SecondaryGrave:     "grave",
	SecondaryAcute:     "acute",
	SecondaryTilde:     "tilde",
	SecondaryHookAbove: "hookabovecomb",
	DotlessI:           "dotlessi",
	Feature:            "ss01",
	DStrokeUppercase:   "hyphen.case",
	DStrokeLowercase:   "hyphen.case",
	CreateDotlessI:     Bool(true),
	CreateHorn:         Bool(true),
}

// DefaultOptions returns a copy of the default options.
func DefaultOptions() *Options {
	res := *defaultOptions
	res.CreateDotlessI = Bool(*defaultOptions.CreateDotlessI)
	res.CreateHorn = Bool(*defaultOptions.CreateHorn)
	return &res
}

// MergeOptions takes an options struct and a default values struct and
// returns a new options struct with all fields set to the values from
// opt, except for the fields which are unset in opt.  Unset secondary
// tone marks are taken from the primary tone marks in opt before falling
// back to the defaults.
// `opt` can be nil in which case the default values are returned.
// `defaultValues` must not be nil and must have all fields set.
//
// The character style of the result is in Unicode normalization form C.
func MergeOptions(opt, defaultValues *Options) *Options {
	if opt == nil {
		opt = &Options{}
	}

	res := &Options{
		CharacterStyle: norm.NFC.String(opt.CharacterStyle),

		Grave:     first(opt.Grave, defaultValues.Grave),
		Acute:     first(opt.Acute, defaultValues.Acute),
		Tilde:     first(opt.Tilde, defaultValues.Tilde),
		HookAbove: first(opt.HookAbove, defaultValues.HookAbove),
		DotBelow:  first(opt.DotBelow, defaultValues.DotBelow),

		Circumflex: first(opt.Circumflex, defaultValues.Circumflex),
		Breve:      first(opt.Breve, defaultValues.Breve),

		HornUppercase: first(opt.HornUppercase, defaultValues.HornUppercase),
		HornLowercase: first(opt.HornLowercase, defaultValues.HornLowercase),

		SecondaryGrave:     first(opt.SecondaryGrave, opt.Grave, defaultValues.SecondaryGrave),
		SecondaryAcute:     first(opt.SecondaryAcute, opt.Acute, defaultValues.SecondaryAcute),
		SecondaryTilde:     first(opt.SecondaryTilde, opt.Tilde, defaultValues.SecondaryTilde),
		SecondaryHookAbove: first(opt.SecondaryHookAbove, opt.HookAbove, defaultValues.SecondaryHookAbove),

		DotlessI: first(opt.DotlessI, defaultValues.DotlessI),
		Feature:  first(opt.Feature, defaultValues.Feature),

		DStrokeUppercase: first(opt.DStrokeUppercase, defaultValues.DStrokeUppercase),
		DStrokeLowercase: first(opt.DStrokeLowercase, defaultValues.DStrokeLowercase),
	}
	if opt.CreateDotlessI != nil {
		res.CreateDotlessI = Bool(*opt.CreateDotlessI)
	} else {
		res.CreateDotlessI = Bool(*defaultValues.CreateDotlessI)
	}
	if opt.CreateHorn != nil {
		res.CreateHorn = Bool(*opt.CreateHorn)
	} else {
		res.CreateHorn = Bool(*defaultValues.CreateHorn)
	}
	return res
}

// first returns the first non-empty string.
func first(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// LoadOptions reads options from a JSON object.
func LoadOptions(r io.Reader) (*Options, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	opt := &Options{}
	err := dec.Decode(opt)
	if err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	return opt, nil
}

// marks returns the mark glyph names.  The options must be merged with
// the defaults.
func (o *Options) marks() *variant.Marks {
	return &variant.Marks{
		Grave:              o.Grave,
		Acute:              o.Acute,
		Tilde:              o.Tilde,
		HookAbove:          o.HookAbove,
		DotBelow:           o.DotBelow,
		Circumflex:         o.Circumflex,
		Breve:              o.Breve,
		HornUppercase:      o.HornUppercase,
		HornLowercase:      o.HornLowercase,
		SecondaryGrave:     o.SecondaryGrave,
		SecondaryAcute:     o.SecondaryAcute,
		SecondaryTilde:     o.SecondaryTilde,
		SecondaryHookAbove: o.SecondaryHookAbove,
		DotlessI:           o.DotlessI,
		DStrokeUppercase:   o.DStrokeUppercase,
		DStrokeLowercase:   o.DStrokeLowercase,
	}
}
