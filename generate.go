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

// Package vnglyph computes the glyph composition rules a font needs for
// Vietnamese.
//
// Given a list of base glyphs like "A.ss01/O.ss01/i.ss01", the package
// computes the names of all glyphs with Vietnamese tone marks, circumflex,
// breve, horn, dotless i and stroke, together with the combination of
// base glyph and mark glyphs each of them is built from.  In text form,
// one rule reads
//
//	A.ss01+circumflex+grave=Acircumflexgrave.ss01
//
// The package only computes names.  Binding the rules to glyph outlines
// is left to the font build pipeline.
//
// Malformed glyph names and unknown letters never cause errors; they
// are skipped and produce no rules.
package vnglyph

import (
	"strings"

	"github.com/npillmayer/schuko/tracing"

	"seehuhn.de/go/vnglyph/category"
	"seehuhn.de/go/vnglyph/glyphname"
	"seehuhn.de/go/vnglyph/result"
	"seehuhn.de/go/vnglyph/variant"
)

// tracer traces with key 'vnglyph'.
func tracer() tracing.Trace {
	return tracing.Select("vnglyph")
}

// Generate computes the composition rules for the glyphs in the
// slash-separated list.  If opt is nil, the default options are used.
//
// If the list contains more than one glyph, the rules for each glyph
// are chosen by the letter part of its name, and output glyph names use
// the feature of the input glyph.  If the list contains a single glyph,
// the rules are chosen by opt.CharacterStyle instead, and the output
// glyph names use opt.Feature.
//
// Generate is safe for concurrent use.
func Generate(list string, opt *Options) *result.Glyphs {
	opt = MergeOptions(opt, defaultOptions)
	res := result.New()

	names := glyphname.Split(list)
	switch len(names) {
	case 0:
		return res
	case 1:
		generateSingle(res, names[0], opt)
	default:
		generateBatch(res, names, opt)
	}
	tracer().Infof("generated rules for %d of %d glyphs", res.Len(), len(names))
	return res
}

// GenerateString is like [Generate], but returns the rules in text form.
func GenerateString(list string, opt *Options) string {
	return Generate(list, opt).String()
}

func generateSingle(res *result.Glyphs, name string, opt *Options) {
	if !glyphname.IsSimple(name) {
		return
	}

	rules := variant.ForStyle(opt.CharacterStyle)
	if rules == 0 {
		tracer().Debugf("no rules for character style %q", opt.CharacterStyle)
		return
	}
	if rules&variant.DotlessTones != 0 && *opt.CreateDotlessI {
		rules |= variant.DotlessPair
	}
	res.Add(name, variant.Generate(name, opt.Feature, rules, opt.marks()))
}

func generateBatch(res *result.Glyphs, names []string, opt *Options) {
	buckets := category.Categorize(names)
	marks := opt.marks()

	if *opt.CreateDotlessI {
		for _, name := range buckets.Get("i") {
			if !glyphname.IsSimple(name) {
				continue
			}
			feature := glyphname.Feature(name)
			res.Add(name, variant.Generate(name, feature, variant.DotlessPair, marks))
		}
	}

	for _, group := range buckets.Groups() {
		for _, name := range group {
			if !glyphname.IsSimple(name) {
				continue
			}
			letter := glyphname.Letter(name)
			feature := glyphname.Feature(name)

			rules := variant.ForLetter(letter)
			if !*opt.CreateHorn {
				rules &^= variant.Horn
			}

			m := *marks
			m.DotlessI = glyphname.Make("dotlessi", feature)
			res.Add(name, variant.Generate(name, feature, rules, &m))
		}
	}
}

// FilterI returns the rules which map each glyph i.F in the list to the
// dotless glyph dotlessi.F.  Each rule is followed by an empty line.
func FilterI(list string) string {
	b := &strings.Builder{}
	marks := &variant.Marks{}
	for _, name := range glyphname.Split(list) {
		if !glyphname.IsValid(name) || !glyphname.IsSimple(name) {
			continue
		}
		if glyphname.Letter(name) != "i" {
			continue
		}
		v := variant.Generate(name, glyphname.Feature(name), variant.DotlessPair, marks)
		writeBlock(b, v)
	}
	return b.String()
}

// FilterHorn returns rules for the glyphs O, o, U and u in the list,
// in this order.  If createHorn is set, each glyph is combined with
// the horn mark from opt.  Otherwise, the horn glyph is mapped to the
// plain base glyph.  Each rule is followed by an empty line.
func FilterHorn(list string, opt *Options, createHorn bool) string {
	opt = MergeOptions(opt, defaultOptions)
	marks := opt.marks()

	buckets := category.Categorize(glyphname.Split(list))
	b := &strings.Builder{}
	for _, letter := range []string{"O", "o", "U", "u"} {
		for _, name := range buckets.Get(letter) {
			if !glyphname.IsSimple(name) {
				continue
			}
			feature := glyphname.Feature(name)

			var v *result.Variants
			if createHorn {
				v = variant.Generate(name, feature, variant.HornBase, marks)
			} else {
				v = result.NewVariants()
				v.Add(glyphname.Make(letter+"horn", feature), name)
			}
			writeBlock(b, v)
		}
	}
	return b.String()
}

func writeBlock(b *strings.Builder, v *result.Variants) {
	b.WriteString(v.String())
	b.WriteString(result.Newline + result.Newline)
}
