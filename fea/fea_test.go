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

package fea

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/language"

	"seehuhn.de/go/vnglyph"
	"seehuhn.de/go/vnglyph/result"
)

func TestWrite(t *testing.T) {
	g := vnglyph.Generate("D.ss01/d.ss01", nil)

	buf := &bytes.Buffer{}
	err := Write(buf, g, nil)
	if err != nil {
		t.Fatal(err)
	}

	want := `languagesystem DFLT dflt;
languagesystem latn VIT;

feature ccmp {
	# D.ss01
	sub D.ss01 hyphen.case by Dcroat.ss01;

	# d.ss01
	sub d.ss01 hyphen.case by dcroat.ss01;
} ccmp;
`
	if d := cmp.Diff(want, buf.String()); d != "" {
		t.Errorf("unexpected output (-want +got):\n%s", d)
	}
}

func TestWriteSingle(t *testing.T) {
	g := result.New()
	g.AddGlyph("i.ss01", "dotlessi.ss01", "i.ss01")
	g.AddGlyph("i.ss01", "igrave.ss01", "dotlessi.ss01+grave")

	buf := &bytes.Buffer{}
	err := Write(buf, g, &Options{Feature: "ss01", Language: language.English})
	if err != nil {
		t.Fatal(err)
	}

	want := `languagesystem DFLT dflt;
languagesystem latn ENG;

feature ss01 {
	# i.ss01
	sub i.ss01 by dotlessi.ss01;
	sub dotlessi.ss01 grave by igrave.ss01;
} ss01;
`
	if d := cmp.Diff(want, buf.String()); d != "" {
		t.Errorf("unexpected output (-want +got):\n%s", d)
	}
}

func TestWriteErrors(t *testing.T) {
	g := result.New()
	g.AddGlyph("O.ss01", "Ohorn.ss01", "O.ss01+")

	err := Write(&bytes.Buffer{}, g, nil)
	if !errors.Is(err, errEmptyGlyph) {
		t.Errorf("unexpected error %v", err)
	}

	err = Write(&bytes.Buffer{}, result.New(), &Options{Feature: "toolong"})
	if err == nil {
		t.Error("invalid feature tag accepted")
	}
}
