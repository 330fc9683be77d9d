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

// Package fea writes composition rules in the OpenType feature file
// syntax, as read by makeotf and fontmake.
//
// A rule with input "A.ss01+circumflex+grave" and output
// "Acircumflexgrave.ss01" becomes the ligature substitution
//
//	sub A.ss01 circumflex grave by Acircumflexgrave.ss01;
//
// A rule without marks, like the one mapping i.ss01 to dotlessi.ss01,
// becomes a single substitution.
package fea

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/language"

	"seehuhn.de/go/vnglyph/result"
)

// Options controls the generated feature file.
type Options struct {
	// Feature is the OpenType feature tag of the generated feature block.
	// The default is "ccmp".
	Feature string

	// Language selects the language system for the rules, in addition to
	// the default language system.  The default is Vietnamese.
	Language language.Tag
}

var defaultOptions = &Options{
	Feature:  "ccmp",
	Language: language.Vietnamese,
}

// languageTags maps BCP 47 base languages to OpenType language system
// tags.
var languageTags = map[string]string{
	"vi": "VIT",
	"en": "ENG",
	"fr": "FRA",
	"de": "DEU",
	"es": "ESP",
	"it": "ITA",
	"pt": "PTG",
	"nl": "NLD",
}

// Write writes the rules in g as a single feature block.
// The rules must be in the form produced by the generator, mapping
// output glyphs to input combinations.
func Write(w io.Writer, g *result.Glyphs, opt *Options) error {
	if opt == nil {
		opt = defaultOptions
	}
	feature := opt.Feature
	if feature == "" {
		feature = defaultOptions.Feature
	}
	if len(feature) > 4 || strings.ContainsAny(feature, " \t;{}") {
		return fmt.Errorf("invalid feature tag %q", feature)
	}
	var zeroLang language.Tag
	lang := opt.Language
	if lang == zeroLang {
		lang = defaultOptions.Language
	}

	out := bufio.NewWriter(w)
	out.WriteString("languagesystem DFLT dflt;\n")
	script, lsys := languageSystem(lang)
	if script != "" {
		fmt.Fprintf(out, "languagesystem %s %s;\n", script, lsys)
	}
	out.WriteString("\n")

	fmt.Fprintf(out, "feature %s {\n", feature)
	for i, base := range g.Bases() {
		if i > 0 {
			out.WriteString("\n")
		}
		fmt.Fprintf(out, "\t# %s\n", base)
		v := g.Glyph(base)
		for _, output := range v.Outputs() {
			input, _ := v.InputPattern(output)
			rule, err := substitution(input, output)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "\t%s\n", rule)
		}
	}
	fmt.Fprintf(out, "} %s;\n", feature)

	return out.Flush()
}

var errEmptyGlyph = errors.New("empty glyph name")

func substitution(input, output string) (string, error) {
	if output == "" {
		return "", errEmptyGlyph
	}
	glyphs := strings.Split(input, "+")
	for _, name := range glyphs {
		if name == "" {
			return "", fmt.Errorf("rule for %q: %w", output, errEmptyGlyph)
		}
	}
	return "sub " + strings.Join(glyphs, " ") + " by " + output + ";", nil
}

// languageSystem returns the OpenType script and language tags for lang.
// The script tag is empty if the script of lang cannot be determined.
func languageSystem(lang language.Tag) (string, string) {
	script, conf := lang.Script()
	if conf == language.No {
		return "", ""
	}
	scriptTag := strings.ToLower(script.String())

	base, _ := lang.Base()
	langTag, ok := languageTags[base.String()]
	if !ok {
		langTag = "dflt"
	}
	return scriptTag, langTag
}
