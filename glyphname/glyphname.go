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

// Package glyphname deals with the glyph names used as input for the
// Vietnamese composition rules.
//
// A glyph name has the form "letter.feature", for example "A.ss01" or
// "ohorn.ss02".  Glyph names are given as lists separated by slashes,
// in the format used by glyph editors for glyph sets.
package glyphname

import (
	"strings"
	"unicode"
)

// Clean normalizes a slash-separated glyph list.  All white space,
// including line breaks, is removed, runs of slashes are collapsed to a
// single slash, and leading and trailing slashes are removed.
//
// Clean is idempotent.
func Clean(s string) string {
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	parts := strings.FieldsFunc(s, isSlash)
	return strings.Join(parts, "/")
}

// Split cleans s and returns the glyph names in the list.
// The result is nil if the list is empty.
func Split(s string) []string {
	s = Clean(s)
	if s == "" {
		return nil
	}
	return strings.Split(s, "/")
}

func isSlash(r rune) bool {
	return r == '/'
}

// IsValid reports whether name contains a period which is neither the
// first nor the last character of the name.
func IsValid(name string) bool {
	idx := strings.IndexByte(name, '.')
	return idx > 0 && idx < len(name)-1
}

// IsSimple reports whether name contains exactly one period.
// Only simple names are expanded into variants.
func IsSimple(name string) bool {
	return strings.Count(name, ".") == 1
}

// Letter returns the part of name before the first period.
// If name contains no period, the whole name is returned.
func Letter(name string) string {
	letter, _, _ := strings.Cut(name, ".")
	return letter
}

// Feature returns the part of name after the first period.
// If name contains no period, the empty string is returned.
func Feature(name string) string {
	_, feature, _ := strings.Cut(name, ".")
	return feature
}

// Make joins a letter name and an OpenType feature tag.
func Make(letter, feature string) string {
	return letter + "." + feature
}
