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

package fontnames

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"seehuhn.de/go/vnglyph/internal/debug"
)

func TestRead(t *testing.T) {
	names, err := Read(debug.GoRegular())
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Contains(names, "A") {
		t.Errorf("glyph A not found in %d glyph names", len(names))
	}
}

func TestReadInvalid(t *testing.T) {
	_, err := Read([]byte("not a font"))
	if err == nil {
		t.Error("invalid font data accepted")
	}
}

func TestLocate(t *testing.T) {
	dir := t.TempDir()
	fileName := filepath.Join(dir, "test.ttf")
	err := os.WriteFile(fileName, debug.GoRegular(), 0o644)
	if err != nil {
		t.Fatal(err)
	}

	path, err := Locate(fileName)
	if err != nil {
		t.Fatal(err)
	}
	if path != fileName {
		t.Errorf("Locate(%q) = %q", fileName, path)
	}

	names, err := ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(names) == 0 {
		t.Error("no glyph names found")
	}
}

func TestGlyphList(t *testing.T) {
	names := []string{
		".notdef", "A", "A.ss01", "B.ss01", "ohorn.ss02", "a.sc.ss01", "dotlessi.ss01", "i.",
	}
	got := GlyphList(names)
	want := "A.ss01/ohorn.ss02/dotlessi.ss01"
	if got != want {
		t.Errorf("GlyphList() = %q, want %q", got, want)
	}
}
