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

// Package debug provides glyph lists and a font for use in unit tests.
package debug

import (
	"strings"

	"golang.org/x/image/font/gofont/goregular"

	"seehuhn.de/go/vnglyph/category"
)

// MakeGlyphList returns a slash-separated list which contains, for each
// of the given features, one glyph for every letter known to the
// category package.
func MakeGlyphList(features ...string) string {
	var names []string
	for _, feature := range features {
		for _, letter := range category.Letters() {
			names = append(names, letter+"."+feature)
		}
	}
	return strings.Join(names, "/")
}

// GoRegular returns the data of the Go Regular TrueType font.
func GoRegular() []byte {
	return goregular.TTF
}
