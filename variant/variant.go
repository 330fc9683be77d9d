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

// Package variant expands Vietnamese base glyphs into the glyphs with
// diacritics which are built from them.
//
// Each base letter is assigned a set of [Rules].  A rule produces a
// family of output glyphs, for example the five tone marks, and records
// for each output glyph the "+"-separated input combination of base
// glyph and mark glyphs.
package variant

import (
	"strings"

	"seehuhn.de/go/vnglyph/glyphname"
	"seehuhn.de/go/vnglyph/result"
)

// Marks gives the glyph names of the combining marks.
type Marks struct {
	Grave     string
	Acute     string
	Tilde     string
	HookAbove string
	DotBelow  string

	Circumflex string
	Breve      string

	HornUppercase string // horn for O and U
	HornLowercase string // horn for o and u

	// Tone marks placed above a circumflex or a breve.
	SecondaryGrave     string
	SecondaryAcute     string
	SecondaryTilde     string
	SecondaryHookAbove string

	DotlessI string // base for the tone marks on i

	DStrokeUppercase string
	DStrokeLowercase string
}

// Rules is a set of composition rules.
type Rules uint16

// These are the available composition rules.  When more than one rule is
// selected, the rules are applied in the order listed here.
const (
	// DotlessPair maps dotlessi.F to the i glyph.
	DotlessPair Rules = 1 << iota

	// ToneMarks adds grave, acute, tilde, hook above and dot below.
	ToneMarks

	// Circumflex adds the circumflex, alone and combined with each tone
	// mark.
	Circumflex

	// Breve adds the breve, alone and combined with each tone mark.
	Breve

	// Horn adds the horn, alone and combined with each tone mark.
	Horn

	// HornBase adds the horn alone.
	HornBase

	// DotlessTones adds the tone marks for i.  All marks except for the
	// dot below are placed on the dotless i.
	DotlessTones

	// DStroke adds the stroke of Đ and đ.
	DStroke
)

var letterRules = map[string]Rules{
	"A":     ToneMarks | Circumflex | Breve,
	"a":     ToneMarks | Circumflex | Breve,
	"E":     ToneMarks | Circumflex,
	"e":     ToneMarks | Circumflex,
	"I":     ToneMarks,
	"i":     DotlessTones,
	"D":     DStroke,
	"d":     DStroke,
	"O":     ToneMarks | Circumflex | Horn,
	"o":     ToneMarks | Circumflex | Horn,
	"U":     ToneMarks | Horn,
	"u":     ToneMarks | Horn,
	"Y":     ToneMarks,
	"y":     ToneMarks,
	"Ohorn": ToneMarks,
	"ohorn": ToneMarks,
	"Uhorn": ToneMarks,
	"uhorn": ToneMarks,
}

// ForLetter returns the rules for a base letter name, like "A" or
// "uhorn".  The result is 0 for letters which have no variants.
func ForLetter(letter string) Rules {
	return letterRules[letter]
}

var styleRules = map[string]Rules{
	"A":   ToneMarks | Circumflex | Breve,
	"E":   ToneMarks | Circumflex,
	"I":   ToneMarks,
	"i":   DotlessTones,
	"D,d": DStroke,
	"O":   ToneMarks | Circumflex | Horn,
	"o":   ToneMarks | Circumflex | Horn,
	"U":   ToneMarks | Horn,
	"u":   ToneMarks | Horn,
	"Y":   ToneMarks,
	"Ư,Ơ": ToneMarks,
}

// ForStyle returns the rules for a character style, as used when a
// single glyph is expanded.  Styles name the letter class rather than
// the glyph, for example "D,d" or "Ư,Ơ".  The style string must be in
// Unicode normalization form C.
func ForStyle(style string) Rules {
	return styleRules[style]
}

// Styles returns the known character styles.
func Styles() []string {
	return []string{"A", "E", "I", "i", "D,d", "O", "o", "Ư,Ơ", "Y", "U", "u"}
}

// Generate applies the rules r to the glyph name token.  The generated
// output glyphs are tagged with the given OpenType feature.
//
// The output names consist of the letter part of token, a suffix for the
// marks, and the feature.  For example, with token "A.ss01", the rule
// [Circumflex] produces "Acircumflexgrave.ss01" from
// "A.ss01+circumflex+grave".
func Generate(token, feature string, r Rules, m *Marks) *result.Variants {
	b := &builder{
		res:     result.NewVariants(),
		token:   token,
		letter:  glyphname.Letter(token),
		feature: feature,
	}

	if r&DotlessPair != 0 {
		b.res.Add(glyphname.Make("dotlessi", feature), token)
	}
	if r&ToneMarks != 0 {
		b.add(token, "grave", m.Grave)
		b.add(token, "acute", m.Acute)
		b.add(token, "tilde", m.Tilde)
		b.add(token, "hoi", m.HookAbove)
		b.add(token, "dotbelow", m.DotBelow)
	}
	if r&Circumflex != 0 {
		b.addCombined("circumflex", m.Circumflex, m)
	}
	if r&Breve != 0 {
		b.addCombined("breve", m.Breve, m)
	}
	if r&(Horn|HornBase) != 0 {
		horn := hornGlyph(b.letter, m)
		b.add(token, "horn", horn)
		if r&Horn != 0 {
			b.add(token, "horngrave", horn, m.Grave)
			b.add(token, "hornacute", horn, m.Acute)
			b.add(token, "horntilde", horn, m.Tilde)
			b.add(token, "hornhoi", horn, m.HookAbove)
			b.add(token, "horndotbelow", horn, m.DotBelow)
		}
	}
	if r&DotlessTones != 0 {
		b.add(m.DotlessI, "grave", m.Grave)
		b.add(m.DotlessI, "acute", m.Acute)
		b.add(m.DotlessI, "tilde", m.Tilde)
		b.add(m.DotlessI, "hoi", m.HookAbove)
		// The dot below does not conflict with the dot of the i.
		b.add(token, "dotbelow", m.DotBelow)
	}
	if r&DStroke != 0 {
		b.add(token, "croat", strokeGlyph(b.letter, m))
	}

	return b.res
}

type builder struct {
	res     *result.Variants
	token   string
	letter  string
	feature string
}

// add records the output glyph <letter><suffix>.<feature>, built from
// base followed by the given marks.
func (b *builder) add(base, suffix string, marks ...string) {
	output := glyphname.Make(b.letter+suffix, b.feature)
	input := base
	if len(marks) > 0 {
		input += "+" + strings.Join(marks, "+")
	}
	b.res.Add(output, input)
}

// addCombined adds the mark alone, and the mark combined with each of the
// secondary tone marks.
func (b *builder) addCombined(name, mark string, m *Marks) {
	b.add(b.token, name, mark)
	b.add(b.token, name+"grave", mark, m.SecondaryGrave)
	b.add(b.token, name+"acute", mark, m.SecondaryAcute)
	b.add(b.token, name+"tilde", mark, m.SecondaryTilde)
	b.add(b.token, name+"hoi", mark, m.SecondaryHookAbove)
	b.add(b.token, name+"dotbelow", mark, m.DotBelow)
}

func hornGlyph(letter string, m *Marks) string {
	switch letter {
	case "O", "U":
		return m.HornUppercase
	case "o", "u":
		return m.HornLowercase
	}
	return ""
}

func strokeGlyph(letter string, m *Marks) string {
	switch letter {
	case "D":
		return m.DStrokeUppercase
	case "d":
		return m.DStrokeLowercase
	}
	return ""
}
