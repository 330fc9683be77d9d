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

package result

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// Glyphs collects the rules for a number of base glyphs.
// Base glyphs are kept in the order they were first added.
//
// The zero value is an empty collection, ready to use.
type Glyphs struct {
	m *linkedhashmap.Map // base glyph -> *Variants
}

// New returns an empty collection.
func New() *Glyphs {
	return &Glyphs{m: linkedhashmap.New()}
}

func (g *Glyphs) variants(base string, create bool) *Variants {
	if g.m == nil {
		if !create {
			return nil
		}
		g.m = linkedhashmap.New()
	}
	if v, ok := g.m.Get(base); ok {
		return v.(*Variants)
	}
	if !create {
		return nil
	}
	v := NewVariants()
	g.m.Put(base, v)
	return v
}

// AddGlyph stores value under the key variant for the given base glyph.
// For generated rules, variant is the output glyph name and value is the
// input combination.
func (g *Glyphs) AddGlyph(base, variant, value string) {
	g.variants(base, true).Add(variant, value)
}

// Add merges the rules in v into the rules for the given base glyph.
// Nothing is recorded if v is empty.
func (g *Glyphs) Add(base string, v *Variants) {
	if v.Len() == 0 {
		return
	}
	g.variants(base, true).Merge(v)
}

// Len returns the number of base glyphs.
func (g *Glyphs) Len() int {
	if g == nil || g.m == nil {
		return 0
	}
	return g.m.Size()
}

// Bases returns all base glyph names.
func (g *Glyphs) Bases() []string {
	if g.Len() == 0 {
		return nil
	}
	res := make([]string, 0, g.m.Size())
	for _, key := range g.m.Keys() {
		res = append(res, key.(string))
	}
	return res
}

// Glyph returns the rules for a base glyph, or nil if the base glyph is
// not known.
func (g *Glyphs) Glyph(base string) *Variants {
	if g.Len() == 0 {
		return nil
	}
	return g.variants(base, false)
}

// Variants returns the output glyph names generated for a base glyph.
func (g *Glyphs) Variants(base string) []string {
	return g.Glyph(base).Outputs()
}

// InputPattern returns the input combination which builds output from
// the given base glyph.
func (g *Glyphs) InputPattern(base, output string) (string, bool) {
	return g.Glyph(base).InputPattern(output)
}

// String returns the text representation of the rules.  Rules for one
// base glyph are written one per line, groups for different base glyphs
// are separated by an empty line.  Base glyphs without rules are
// omitted.
func (g *Glyphs) String() string {
	if g.Len() == 0 {
		return ""
	}
	var blocks []string
	for _, v := range g.m.Values() {
		block := v.(*Variants).String()
		if block != "" {
			blocks = append(blocks, block)
		}
	}
	return strings.Join(blocks, Newline+Newline)
}

// MarshalJSON encodes the rules as a JSON object, mapping base glyphs to
// objects which map output glyphs to input combinations.  The order of
// the keys is preserved.
func (g *Glyphs) MarshalJSON() ([]byte, error) {
	buf := &bytes.Buffer{}
	buf.WriteByte('{')
	for i, base := range g.Bases() {
		if i > 0 {
			buf.WriteByte(',')
		}
		err := writeKey(buf, base)
		if err != nil {
			return nil, err
		}
		buf.WriteByte('{')
		v := g.Glyph(base)
		for j, output := range v.Outputs() {
			if j > 0 {
				buf.WriteByte(',')
			}
			input, _ := v.InputPattern(output)
			err = writeKey(buf, output)
			if err != nil {
				return nil, err
			}
			err = writeValue(buf, input)
			if err != nil {
				return nil, err
			}
		}
		buf.WriteByte('}')
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeKey(buf *bytes.Buffer, key string) error {
	err := writeValue(buf, key)
	if err != nil {
		return err
	}
	buf.WriteByte(':')
	return nil
}

func writeValue(buf *bytes.Buffer, s string) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	buf.Write(data)
	return nil
}

// JSON returns the rules as an indented JSON object.
func (g *Glyphs) JSON() string {
	data, err := g.MarshalJSON()
	if err != nil {
		// Only strings are encoded, so this cannot happen.
		panic(err)
	}
	out := &bytes.Buffer{}
	err = json.Indent(out, data, "", "  ")
	if err != nil {
		panic(err)
	}
	return out.String()
}

var (
	groupSep = regexp.MustCompile(`\r?\n\r?\n`)
	lineSep  = regexp.MustCompile(`\r?\n`)
)

// Parse reads rules in the text representation.
//
// Each line "left=right" is split at the first equals sign.  The base
// glyph is the part of the left hand side before the first plus sign,
// or the whole left hand side if there is no plus sign.  The complete
// left hand side is stored as the variant and the right hand side as the
// value.  Lines without an equals sign, or starting with one, are
// ignored.
//
// Parse is not the inverse of [Glyphs.String]: since the sides of each
// rule are stored in text order, writing a parsed collection swaps the
// two sides, and the grouping of rules is derived from the text instead
// of being recovered.
func Parse(s string) *Glyphs {
	res := New()
	if strings.TrimSpace(s) == "" {
		return res
	}

	for _, group := range groupSep.Split(s, -1) {
		if strings.TrimSpace(group) == "" {
			continue
		}
		for _, line := range lineSep.Split(group, -1) {
			if strings.TrimSpace(line) == "" {
				continue
			}
			left, right, ok := strings.Cut(line, "=")
			if !ok || left == "" {
				continue
			}
			base := left
			if idx := strings.IndexByte(left, '+'); idx > 0 {
				base = left[:idx]
			}
			res.AddGlyph(base, left, right)
		}
	}
	return res
}
