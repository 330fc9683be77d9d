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

package category

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestCategorize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vnglyph")
	defer teardown()

	names := []string{
		"A.ss01", "B.ss01", ".ss01", "A.", "E", "Uhorn.ss02", "A.ss02",
	}
	b := Categorize(names)
	if b.Len() != 3 {
		t.Errorf("%d names stored, want 3", b.Len())
	}
	if d := cmp.Diff([]string{"A.ss01", "A.ss02"}, b.Get("A")); d != "" {
		t.Errorf("bucket A (-want +got):\n%s", d)
	}
	if d := cmp.Diff([]string{"Uhorn.ss02"}, b.Get("Uhorn")); d != "" {
		t.Errorf("bucket Uhorn (-want +got):\n%s", d)
	}
	if b.Get("B") != nil {
		t.Error("unexpected bucket B")
	}
}

func TestGroupOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vnglyph")
	defer teardown()

	b := Categorize([]string{"y.ss01", "a.ss01", "E.ss01", "A.ss01", "d.ss01", "D.ss01"})
	want := [][]string{
		{"D.ss01"},
		{"d.ss01"},
		{"A.ss01"},
		{"E.ss01"},
		{"a.ss01"},
		{"y.ss01"},
	}
	if d := cmp.Diff(want, b.Groups()); d != "" {
		t.Errorf("unexpected groups (-want +got):\n%s", d)
	}
}

// TestCompanions checks that companion glyphs are attached only to the
// base glyphs with the same feature.
func TestCompanions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vnglyph")
	defer teardown()

	b := Categorize([]string{
		"O.ss01", "O.ss02", "Ohorn.ss02", "Ohorn.ss03",
		"i.ss01", "dotlessi.ss01",
		"D.ss05", "Dcroat.ss05", "Dcroat.ss05",
	})
	want := [][]string{
		{"D.ss05", "Dcroat.ss05", "Dcroat.ss05"},
		{"O.ss01", "O.ss02", "Ohorn.ss02"},
		{"i.ss01", "dotlessi.ss01"},
		{"Dcroat.ss05", "Dcroat.ss05"},
		{"Ohorn.ss02", "Ohorn.ss03"},
		{"dotlessi.ss01"},
	}
	if d := cmp.Diff(want, b.Groups()); d != "" {
		t.Errorf("unexpected groups (-want +got):\n%s", d)
	}
}

func TestRender(t *testing.T) {
	b := Categorize([]string{"U.ss01", "Uhorn.ss01", "A.ss01", "A.ss02"})
	got := b.Render()
	want := "A.ss01/A.ss02/\r\nU.ss01/Uhorn.ss01/\r\nUhorn.ss01/"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}

	if got := Categorize(nil).Render(); got != "" {
		t.Errorf("Render() of empty buckets = %q", got)
	}
}

// TestIndependent checks that separate calls do not share state.
func TestIndependent(t *testing.T) {
	b1 := Categorize([]string{"A.ss01"})
	b2 := Categorize([]string{"E.ss01"})
	if len(b1.Get("E")) != 0 || len(b2.Get("A")) != 0 {
		t.Error("buckets are shared between calls")
	}
}

func TestLetters(t *testing.T) {
	ll := Letters()
	if len(ll) != numLetters {
		t.Fatalf("%d letters, want %d", len(ll), numLetters)
	}
	for _, l := range ll {
		if !IsLetter(l) {
			t.Errorf("IsLetter(%q) = false", l)
		}
		if letters[bucketIndex[l]] != l {
			t.Errorf("bucket index for %q is inconsistent", l)
		}
	}
	if Companion("o") != "ohorn" || Companion("A") != "" {
		t.Error("wrong companions")
	}
}
