package golipi

/**
 * golipi - Indian language script and legacy font converters
 * Copyright Subin Siby <mail at subinsb (.) com>, 2021
 * Licensed under AGPL-3.0-only. See LICENSE.txt
 */

import (
	"strings"
)

// ChanakyaToUnicode converts text typed in the Chanakya font into
// Devanagari Unicode.
func ChanakyaToUnicode(text string) string {
	if text == "" {
		return ""
	}

	modified := chanakyaToUnicodeTable.Apply(text)

	// Z is reph and anusvara in one glyph
	modified = strings.ReplaceAll(modified, "Z", "üं")

	buf := placeChanakyaSignI(newGlyphBuffer(modified))

	tracer().Debugf("chanakya %q => %q", text, buf.String())

	return buf.String()
}

// Chanakya types the i sign before its consonant, and before the whole
// conjunct when the consonant is halant-joined to the ones after it.
func placeChanakyaSignI(buf glyphBuffer) glyphBuffer {
	signI := []rune(DEVANAGARI_SIGN_I)[0]
	virama := []rune(DEVANAGARI_VIRAMA)[0]

	pos := buf.index(CHANAKYA_SIGN_I)
	for pos != -1 {
		if pos+1 < len(buf) {
			buf[pos] = buf[pos+1]
			buf[pos+1] = signI
		} else {
			buf[pos] = signI
		}
		pos++

		for buf.hasAt(DEVANAGARI_VIRAMA, pos+1) {
			if pos+2 < len(buf) {
				buf[pos], buf[pos+1], buf[pos+2] = virama, buf[pos+2], signI
			} else {
				buf[pos], buf[pos+1] = virama, signI
			}
			pos += 2
		}

		pos = buf.indexFrom(CHANAKYA_SIGN_I, pos+1)
	}
	return buf
}

// UnicodeToChanakya converts Devanagari Unicode text into the Chanakya
// glyph encoding.
func UnicodeToChanakya(text string) string {
	if text == "" {
		return ""
	}

	buf := moveSignIBeforeCluster(newGlyphBuffer(text), CHANAKYA_SIGN_I)

	result := unicodeToChanakyaTable.Apply(buf.String())
	result = strings.ReplaceAll(result, CHANAKYA_SIGN_I, "d")

	tracer().Debugf("unicode %q => chanakya %q", text, result)

	return result
}
