package golipi

/**
 * golipi - Indian language script and legacy font converters
 * Copyright Subin Siby <mail at subinsb (.) com>, 2021
 * Licensed under AGPL-3.0-only. See LICENSE.txt
 */

import (
	"strings"
)

// KrutiDevToUnicode converts text typed in the Kruti Dev font family
// into Devanagari Unicode.
func KrutiDevToUnicode(text string) string {
	if text == "" {
		return ""
	}

	modified := krutiDevToUnicodeTable.Apply(text)

	// Glyphs that carry a reph or a pre-typed i sign inside them
	modified = strings.ReplaceAll(modified, "±", "Zं")
	modified = strings.ReplaceAll(modified, "Æ", "र्f")

	buf := placeKrutiDevSignI(newGlyphBuffer(modified))

	modified = strings.ReplaceAll(buf.String(), "Ç", "fa")
	modified = strings.ReplaceAll(modified, "É", "र्fa")

	buf = placeKrutiDevSignIAnusvara(newGlyphBuffer(modified))

	modified = strings.ReplaceAll(buf.String(), "Ê", "ीZ")

	buf = fixSignIBeforeVirama(newGlyphBuffer(modified))
	buf = placeKrutiDevReph(buf)

	tracer().Debugf("kruti dev %q => %q", text, buf.String())

	return buf.String()
}

// The i sign is typed before the consonant it follows. Swap it with the
// next code point.
func placeKrutiDevSignI(buf glyphBuffer) glyphBuffer {
	pos := buf.index(KRUTIDEV_SIGN_I)
	for pos != -1 {
		if pos+1 < len(buf) {
			buf[pos] = buf[pos+1]
			buf[pos+1] = []rune(DEVANAGARI_SIGN_I)[0]
		}
		pos = buf.indexFrom(KRUTIDEV_SIGN_I, pos+1)
	}
	return buf
}

// "fa" is the i sign followed by anusvara, both placed after the next
// code point.
func placeKrutiDevSignIAnusvara(buf glyphBuffer) glyphBuffer {
	pos := buf.index("fa")
	for pos != -1 {
		if pos+2 < len(buf) {
			next := string(buf[pos+2])
			buf = buf.splice(pos, pos+3, next+"िं")
		}
		pos = buf.indexFrom("fa", pos+2)
	}
	return buf
}

// An i sign that ended up in front of a virama belongs after the
// consonant the virama joins.
func fixSignIBeforeVirama(buf glyphBuffer) glyphBuffer {
	wrong := DEVANAGARI_SIGN_I + DEVANAGARI_VIRAMA

	pos := buf.index(wrong)
	for pos != -1 {
		if pos+2 < len(buf) {
			consonant := string(buf[pos+2])
			buf = buf.splice(pos, pos+3, DEVANAGARI_VIRAMA+consonant+DEVANAGARI_SIGN_I)
		}
		pos = buf.indexFrom(wrong, pos+2)
	}
	return buf
}

// Reph is typed after the syllable it precedes. Walk back over the vowel
// signs to the syllable start and put a half ra there.
func placeKrutiDevReph(buf glyphBuffer) glyphBuffer {
	posR := buf.index(KRUTIDEV_REPH)
	for posR > 0 {
		halfR := posR - 1
		for halfR >= 0 && strings.Contains(krutiDevMatras, buf.at(halfR)) {
			halfR--
		}

		if halfR >= 0 {
			syllable := string(buf[halfR:posR])
			buf = buf.splice(halfR, posR+1, DEVANAGARI_HALF_RA+syllable)
		}

		posR = buf.indexFrom(KRUTIDEV_REPH, posR+1)
	}
	return buf
}

// UnicodeToKrutiDev converts Devanagari Unicode text into the Kruti Dev
// glyph encoding.
func UnicodeToKrutiDev(text string) string {
	if text == "" {
		return ""
	}

	buf := newGlyphBuffer(text + KRUTIDEV_SCAN_PADDING)

	buf = moveSignIBeforeCluster(buf, KRUTIDEV_SIGN_I)
	buf = moveRephAfterSyllable(buf, krutiDevReverseMatras)

	buf = buf[:len(buf)-len([]rune(KRUTIDEV_SCAN_PADDING))]

	result := unicodeToKrutiDevTable.Apply(buf.String())

	tracer().Debugf("unicode %q => kruti dev %q", text, result)

	return result
}

// moveSignIBeforeCluster moves every i sign in front of the consonant it
// follows, and further in front of each halant-joined consonant before
// it, writing it as the font's sign glyph.
func moveSignIBeforeCluster(buf glyphBuffer, sign string) glyphBuffer {
	signRune := []rune(sign)[0]
	virama := []rune(DEVANAGARI_VIRAMA)[0]

	pos := buf.index(DEVANAGARI_SIGN_I)
	for pos != -1 {
		if pos == 0 {
			buf[pos] = signRune
		} else {
			buf[pos] = buf[pos-1]
			buf[pos-1] = signRune
		}
		pos--

		// Conjunct chain: consonant + halant + sign => sign + consonant + halant
		for pos > 0 && buf[pos-1] == virama {
			if pos >= 2 {
				buf[pos] = virama
				buf[pos-1] = buf[pos-2]
				buf[pos-2] = signRune
			} else {
				buf[pos] = virama
				buf[pos-1] = signRune
			}
			pos -= 2
		}

		pos = buf.indexFrom(DEVANAGARI_SIGN_I, pos+1)
	}
	return buf
}

// moveRephAfterSyllable rewrites every half ra as a reph glyph placed
// after the consonant it precedes and that consonant's vowel signs.
func moveRephAfterSyllable(buf glyphBuffer, matras string) glyphBuffer {
	// Each round removes one half ra. The bound only matters for
	// degenerate input where a new one forms from its neighbours.
	rounds := len(buf)

	pos := buf.index(DEVANAGARI_HALF_RA)
	for pos > 0 && rounds > 0 {
		end := pos + 2
		if end >= len(buf) {
			break
		}
		for next := buf.at(end + 1); next != "" && strings.Contains(matras, next); next = buf.at(end + 1) {
			end++
		}

		syllable := string(buf[pos+2 : end+1])
		buf = buf.splice(pos, end+1, syllable+KRUTIDEV_REPH)

		pos = buf.index(DEVANAGARI_HALF_RA)
		rounds--
	}
	return buf
}
