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

package vnglyph

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMergeDefaults(t *testing.T) {
	got := MergeOptions(nil, defaultOptions)
	if d := cmp.Diff(DefaultOptions(), got); d != "" {
		t.Errorf("unexpected options (-want +got):\n%s", d)
	}
}

func TestSecondaryFallback(t *testing.T) {
	opt := &Options{
		Grave:          "gravecomb",
		Acute:          "acutecomb",
		SecondaryAcute: "acutecomb.cap",
	}
	got := MergeOptions(opt, defaultOptions)
	if got.SecondaryGrave != "gravecomb" {
		t.Errorf("SecondaryGrave = %q, want gravecomb", got.SecondaryGrave)
	}
	if got.SecondaryAcute != "acutecomb.cap" {
		t.Errorf("SecondaryAcute = %q, want acutecomb.cap", got.SecondaryAcute)
	}
	if got.SecondaryTilde != "tilde" {
		t.Errorf("SecondaryTilde = %q, want tilde", got.SecondaryTilde)
	}
	if opt.SecondaryGrave != "" {
		t.Error("MergeOptions modified its argument")
	}
}

func TestMergeSwitches(t *testing.T) {
	opt := &Options{CreateHorn: Bool(false)}
	got := MergeOptions(opt, defaultOptions)
	if *got.CreateHorn || !*got.CreateDotlessI {
		t.Errorf("CreateHorn=%t, CreateDotlessI=%t", *got.CreateHorn, *got.CreateDotlessI)
	}

	// the defaults must not be shared with the result
	*got.CreateDotlessI = false
	if !*defaultOptions.CreateDotlessI {
		t.Error("defaults were modified")
	}
}

func TestStyleNormalization(t *testing.T) {
	opt := &Options{CharacterStyle: "U\u031B,O\u031B"}
	got := MergeOptions(opt, defaultOptions)
	if got.CharacterStyle != "Ư,Ơ" {
		t.Errorf("CharacterStyle = %q, want %q", got.CharacterStyle, "Ư,Ơ")
	}
}

func TestLoadOptions(t *testing.T) {
	in := `{
		"characterStyle": "O",
		"hornGlyphUppercase": "horn.cap",
		"openTypeFeature": "ss03",
		"shouldCreateHorn": false
	}`
	opt, err := LoadOptions(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	want := &Options{
		CharacterStyle: "O",
		HornUppercase:  "horn.cap",
		Feature:        "ss03",
		CreateHorn:     Bool(false),
	}
	if d := cmp.Diff(want, opt); d != "" {
		t.Errorf("unexpected options (-want +got):\n%s", d)
	}

	_, err = LoadOptions(strings.NewReader(`{"colour": "red"}`))
	if err == nil {
		t.Error("unknown field was accepted")
	}
}
