/*
Package golipi converts text between Indian language scripts, Latin phonetic
input and the 8-bit legacy glyph fonts still used for Hindi and Nepali
documents.

There are two families of converters. The phonetic converter segments Latin
input into syllables and looks every syllable up in a per-language table:

	out, err := golipi.Transliterate("namaste", golipi.Hindi) // नमस्ते

The glyph-font converters (Kruti Dev, Chanakya, Preeti) rewrite text with
ordered substitution tables and then move pre-typed vowel signs and reph
marks to their logical Unicode position:

	golipi.KrutiDevToUnicode("fgUnh") // हिन्दी

Every converter is a pure function over immutable tables and may be called
from any number of goroutines.
*/
package golipi

/**
 * golipi - Indian language script and legacy font converters
 * Copyright Subin Siby <mail at subinsb (.) com>, 2021
 * Licensed under AGPL-3.0-only. See LICENSE.txt
 */

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'golipi'
func tracer() tracing.Trace {
	return tracing.Select("golipi")
}
