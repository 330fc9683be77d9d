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

// Package fontnames extracts base glyph lists from font files.
package fontnames

import (
	"fmt"
	"os"
	"strings"

	"github.com/flopp/go-findfont"
	"golang.org/x/image/font/sfnt"

	"seehuhn.de/go/vnglyph/category"
	"seehuhn.de/go/vnglyph/glyphname"
)

// Read returns the names of all glyphs in a TrueType or OpenType font,
// in glyph ID order.  Glyphs without a name are skipped.
func Read(data []byte) ([]string, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, err
	}

	buf := &sfnt.Buffer{}
	n := f.NumGlyphs()
	res := make([]string, 0, n)
	for gid := 0; gid < n; gid++ {
		name, err := f.GlyphName(buf, sfnt.GlyphIndex(gid))
		if err != nil {
			return nil, fmt.Errorf("glyph %d: %w", gid, err)
		}
		if name != "" {
			res = append(res, name)
		}
	}
	return res, nil
}

// ReadFile is like [Read], but reads the font from a file.
func ReadFile(fileName string) ([]string, error) {
	data, err := os.ReadFile(fileName)
	if err != nil {
		return nil, err
	}
	names, err := Read(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fileName, err)
	}
	return names, nil
}

// Locate returns the path of a font file.  If name is not the path of an
// existing file, the installed system fonts are searched for a file with
// this name.
func Locate(name string) (string, error) {
	if fi, err := os.Stat(name); err == nil && !fi.IsDir() {
		return name, nil
	}
	return findfont.Find(name)
}

// GlyphList returns the glyph names which can be used as base glyphs,
// joined by slashes.  A glyph name qualifies if it has the form
// "letter.feature" and the letter is one of the known base letters.
func GlyphList(names []string) string {
	var keep []string
	for _, name := range names {
		if !glyphname.IsValid(name) || !glyphname.IsSimple(name) {
			continue
		}
		if !category.IsLetter(glyphname.Letter(name)) {
			continue
		}
		keep = append(keep, name)
	}
	return strings.Join(keep, "/")
}
