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

// Package compose finds the Unicode characters represented by generated
// glyph names.
//
// A generated name like "Acircumflexgrave.ss01" consists of a base
// letter, a sequence of mark names and an OpenType feature.  The base
// letter and the combining marks are composed using Unicode normalization
// form C.
package compose

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
	"seehuhn.de/go/postscript/type1/names"

	"seehuhn.de/go/vnglyph/glyphname"
)

// marks lists the mark names used in generated glyph names, with the
// corresponding combining characters.
var marks = []struct {
	name string
	r    rune
}{
	{"circumflex", '\u0302'},
	{"dotbelow", '\u0323'},
	{"breve", '\u0306'},
	{"grave", '\u0300'},
	{"acute", '\u0301'},
	{"tilde", '\u0303'},
	{"horn", '\u031B'},
	{"hoi", '\u0309'},
}

const baseLetters = "AEIOUYDaeiouyd"

// Rune returns the character represented by the glyph name.  The
// OpenType feature part of the name is ignored.  The second return value
// is false if the name does not describe a single Vietnamese character.
func Rune(name string) (rune, bool) {
	letter := glyphname.Letter(name)
	switch letter {
	case "dotlessi":
		return 'ı', true
	case "Dcroat":
		return 'Đ', true
	case "dcroat":
		return 'đ', true
	}

	if letter == "" || !strings.ContainsRune(baseLetters, rune(letter[0])) {
		return 0, false
	}

	buf := []rune{rune(letter[0])}
	rest := letter[1:]
markLoop:
	for rest != "" {
		for _, m := range marks {
			if strings.HasPrefix(rest, m.name) {
				buf = append(buf, m.r)
				rest = rest[len(m.name):]
				continue markLoop
			}
		}
		return 0, false
	}

	s := norm.NFC.String(string(buf))
	if utf8.RuneCountInString(s) != 1 {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, true
}

// Name returns the glyph name for r, as recommended by the Adobe Glyph
// List.
func Name(r rune) string {
	return names.FromUnicode(r)
}
