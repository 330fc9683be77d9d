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

// Package category sorts glyph names into buckets by base letter, and
// regroups the buckets so that each base glyph is followed by the horn,
// stroke and dotless forms which share its OpenType feature.
//
// There are 21 buckets, one for each of the letters
//
//	D d A E I O U Y a e i o u y Dcroat dcroat Ohorn Uhorn ohorn uhorn dotlessi
//
// Glyph names for other letters are discarded.
//
// [Buckets] values are created for a single glyph list and are not shared,
// so that glyph lists can be processed concurrently.
package category

import (
	"strings"

	"golang.org/x/exp/slices"

	"seehuhn.de/go/vnglyph/glyphname"
)

// letters lists the bucket letters in the order in which the buckets are
// rendered.
var letters = [numLetters]string{
	"D", "d", "A", "E", "I", "O", "U", "Y",
	"a", "e", "i", "o", "u", "y",
	"Dcroat", "dcroat", "Ohorn", "Uhorn", "ohorn", "uhorn", "dotlessi",
}

const numLetters = 21

var bucketIndex = map[string]int{
	"D": 0, "d": 1, "A": 2, "E": 3, "I": 4, "O": 5, "U": 6, "Y": 7,
	"a": 8, "e": 9, "i": 10, "o": 11, "u": 12, "y": 13,
	"Dcroat": 14, "dcroat": 15, "Ohorn": 16, "Uhorn": 17,
	"ohorn": 18, "uhorn": 19, "dotlessi": 20,
}

// companions maps a base letter to the letter whose glyphs are grouped
// with it.
var companions = map[string]string{
	"D": "Dcroat",
	"d": "dcroat",
	"O": "Ohorn",
	"U": "Uhorn",
	"o": "ohorn",
	"u": "uhorn",
	"i": "dotlessi",
}

// Letters returns the bucket letters, sorted alphabetically.
func Letters() []string {
	res := slices.Clone(letters[:])
	slices.Sort(res)
	return res
}

// IsLetter reports whether letter has a bucket.
func IsLetter(letter string) bool {
	_, ok := bucketIndex[letter]
	return ok
}

// Companion returns the letter whose glyphs are grouped with the glyphs
// for letter, or the empty string if there is none.
func Companion(letter string) string {
	return companions[letter]
}

// Buckets holds glyph names, sorted by base letter.
type Buckets struct {
	lists [numLetters][]string
}

// Categorize sorts the given glyph names into buckets.
// Names without a period in an interior position, and names
// with an unknown letter, are ignored.
func Categorize(names []string) *Buckets {
	b := &Buckets{}
	for _, name := range names {
		b.Add(name)
	}
	tracer().Debugf("categorized %d glyph names", b.Len())
	return b
}

// Add puts name into the bucket for its letter.
// The return value indicates whether name was stored.
func (b *Buckets) Add(name string) bool {
	if !glyphname.IsValid(name) {
		return false
	}
	idx, ok := bucketIndex[glyphname.Letter(name)]
	if !ok {
		tracer().Debugf("ignoring %q: unknown letter", name)
		return false
	}
	b.lists[idx] = append(b.lists[idx], name)
	return true
}

// Get returns the glyph names in the bucket for letter.
func (b *Buckets) Get(letter string) []string {
	idx, ok := bucketIndex[letter]
	if !ok {
		return nil
	}
	return b.lists[idx]
}

// Len returns the total number of glyph names in all buckets.
func (b *Buckets) Len() int {
	n := 0
	for _, list := range b.lists {
		n += len(list)
	}
	return n
}

// Groups regroups the glyph names.  Non-empty buckets are visited in the
// order D, d, A, E, I, O, U, Y, a, e, i, o, u, y, Dcroat, dcroat, Ohorn,
// Uhorn, ohorn, uhorn, dotlessi, and each bucket forms a group.  For
// buckets with a companion, every glyph name is directly followed by the
// companion glyph names with the same feature.
//
// Companion glyphs are also listed in their own group, so a companion
// glyph name may appear twice in the result.
func (b *Buckets) Groups() [][]string {
	var res [][]string
	for idx, letter := range letters {
		main := b.lists[idx]
		if len(main) == 0 {
			continue
		}

		var byFeature map[string][]string
		if comp, ok := companions[letter]; ok {
			byFeature = groupByFeature(b.Get(comp))
		}

		group := make([]string, 0, len(main))
		for _, name := range main {
			group = append(group, name)
			group = append(group, byFeature[glyphname.Feature(name)]...)
		}
		tracer().Debugf("group %s: %d glyph names", letter, len(group))
		res = append(res, group)
	}
	return res
}

func groupByFeature(names []string) map[string][]string {
	if len(names) == 0 {
		return nil
	}
	res := make(map[string][]string)
	for _, name := range names {
		feature := glyphname.Feature(name)
		res[feature] = append(res[feature], name)
	}
	return res
}

// Render returns the groups as text.  The glyph names in each group are
// joined by slashes and followed by a slash, and the groups are separated
// by line breaks.
func (b *Buckets) Render() string {
	groups := b.Groups()
	lines := make([]string, len(groups))
	for i, group := range groups {
		lines[i] = strings.Join(group, "/") + "/"
	}
	return strings.Join(lines, "\r\n")
}
