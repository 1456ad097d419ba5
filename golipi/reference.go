package golipi

/**
 * golipi - Indian language script and legacy font converters
 * Copyright Subin Siby <mail at subinsb (.) com>, 2021
 * Licensed under AGPL-3.0-only. See LICENSE.txt
 */

import (
	"fmt"
	"strings"
	"sync"
	"unicode/utf16"

	"github.com/npillmayer/uax/grapheme"
	"golang.org/x/text/unicode/runenames"
)

// NumericCharRefs renders text for HTML sources. Every UTF-16 code unit
// above 127 becomes a decimal character reference.
func NumericCharRefs(text string) string {
	var out strings.Builder
	for _, unit := range utf16.Encode([]rune(text)) {
		if unit > 127 {
			fmt.Fprintf(&out, "&#%d;", unit)
		} else {
			out.WriteByte(byte(unit))
		}
	}
	return out.String()
}

// Example is one row of a keyboard reference table
type Example struct {
	Input  string
	Output string
}

// Each entry lists alternative spellings, the first one with a code wins
var vowelExampleKeys = [][]string{
	{"a"}, {"A", "aa"}, {"i"}, {"I", "ee"}, {"u"}, {"U", "oo"}, {"tR"},
	{"e"}, {"ai"}, {"o"}, {"au"}, {"AOM"}, {"M"}, {"H", ":"}, {"|"},
}

var consonantExampleKeys = []string{
	"k", "kh", "g", "gh", "G",
	"ch", "Ch", "j", "jh", "nY",
	"t", "T", "d", "D", "N",
	"th", "Th", "dh", "Dh", "n",
	"p", "ph", "b", "bh", "m",
	"y", "r", "l", "v",
	"sh", "Sh", "s", "h",
	"q", "qh", "gG", "z", "DdD",
	"RrR", "f", "Y", "NnN", "R", "LlL", "L",
}

// VowelExamples lists the isolated vowel letters of a scheme
func VowelExamples(config LanguageConfig) []Example {
	var examples []Example
	for _, keys := range vowelExampleKeys {
		output := ""
		for _, key := range keys {
			if code := config.LetterCodes[LIPI_ISOLATED_PREFIX+key]; code != "" {
				output = code
				break
			}
		}
		if output == "" {
			continue
		}
		examples = append(examples, Example{strings.Join(keys, ", "), output})
	}
	return examples
}

// ConsonantExamples lists the consonant letters of a scheme as the
// converter writes them. Consonants the scheme does not convert are left
// out.
func ConsonantExamples(conv *Converter, config LanguageConfig) []Example {
	inherent := config.LetterCodes["a"]

	var examples []Example
	for _, consonant := range consonantExampleKeys {
		output := conv.Convert(consonant + "a")
		if inherent != "" {
			output = strings.Replace(output, inherent, "", 1)
		}
		if output == "" || output == consonant {
			continue
		}
		examples = append(examples, Example{consonant, output})
	}
	return examples
}

// CodePoint is a code point with its Unicode character name
type CodePoint struct {
	Rune rune
	Name string
}

func (cp CodePoint) String() string {
	return fmt.Sprintf("U+%04X %s", cp.Rune, cp.Name)
}

// Describe lists the code points of text with their names
func Describe(text string) []CodePoint {
	points := make([]CodePoint, 0, len(text))
	for _, r := range text {
		points = append(points, CodePoint{r, runenames.Name(r)})
	}
	return points
}

var graphemeSetup sync.Once

// Aksharas splits text into user-perceived characters (extended grapheme
// clusters). A consonant with its vowel sign is one akshara.
func Aksharas(text string) []string {
	graphemeSetup.Do(grapheme.SetupGraphemeClasses)

	gstr := grapheme.StringFromString(text)
	aksharas := make([]string, 0, gstr.Len())
	for i := 0; i < gstr.Len(); i++ {
		aksharas = append(aksharas, gstr.Nth(i))
	}
	return aksharas
}
