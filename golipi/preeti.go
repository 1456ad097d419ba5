package golipi

/**
 * golipi - Indian language script and legacy font converters
 * Copyright Subin Siby <mail at subinsb (.) com>, 2021
 * Licensed under AGPL-3.0-only. See LICENSE.txt
 */

// PreetiToUnicode converts text typed in the Preeti Nepali font into
// Devanagari Unicode
func PreetiToUnicode(text string) string {
	if text == "" {
		return ""
	}
	return preetiToUnicodeTable.Apply(text)
}

// UnicodeToPreeti converts Devanagari Unicode text into the Preeti
// glyph encoding
func UnicodeToPreeti(text string) string {
	if text == "" {
		return ""
	}
	return unicodeToPreetiTable.Apply(text)
}
