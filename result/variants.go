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

// Package result holds the glyph composition rules computed for a glyph
// list.
//
// Rules are stored as a mapping from output glyph names to the input
// combination which builds the glyph, for example "Agrave.ss01" maps to
// "A.ss01+grave".  Rules are grouped by the base glyph they were
// generated from.  The text form of a rule is "input=output".
package result

import (
	"strings"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// Newline separates rules in the text representation.
// Groups of rules are separated by an empty line.
const Newline = "\r\n"

// Variants maps output glyph names to input combinations.
// Iteration follows the order in which the outputs were first added.
//
// The zero value is an empty mapping, ready to use.
type Variants struct {
	m *linkedhashmap.Map
}

// NewVariants returns an empty mapping.
func NewVariants() *Variants {
	return &Variants{m: linkedhashmap.New()}
}

// Add records that the glyph output is built from the combination input.
// If output was added before, the input combination is replaced but the
// position of output is kept.
func (v *Variants) Add(output, input string) {
	if v.m == nil {
		v.m = linkedhashmap.New()
	}
	v.m.Put(output, input)
}

// Merge adds all rules from other to v.
func (v *Variants) Merge(other *Variants) {
	if other == nil || other.m == nil {
		return
	}
	it := other.m.Iterator()
	for it.Next() {
		v.Add(it.Key().(string), it.Value().(string))
	}
}

// Len returns the number of output glyphs.
func (v *Variants) Len() int {
	if v == nil || v.m == nil {
		return 0
	}
	return v.m.Size()
}

// Outputs returns the output glyph names in insertion order.
func (v *Variants) Outputs() []string {
	if v.Len() == 0 {
		return nil
	}
	res := make([]string, 0, v.m.Size())
	for _, key := range v.m.Keys() {
		res = append(res, key.(string))
	}
	return res
}

// InputPattern returns the input combination for the given output glyph.
func (v *Variants) InputPattern(output string) (string, bool) {
	if v.Len() == 0 {
		return "", false
	}
	input, ok := v.m.Get(output)
	if !ok {
		return "", false
	}
	return input.(string), true
}

// Lines returns the rules in the form "input=output".
func (v *Variants) Lines() []string {
	if v.Len() == 0 {
		return nil
	}
	lines := make([]string, 0, v.m.Size())
	it := v.m.Iterator()
	for it.Next() {
		lines = append(lines, it.Value().(string)+"="+it.Key().(string))
	}
	return lines
}

// String returns the rules one per line, in the form "input=output".
func (v *Variants) String() string {
	return strings.Join(v.Lines(), Newline)
}
