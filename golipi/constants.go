package golipi

/**
 * golipi - Indian language script and legacy font converters
 * Copyright Subin Siby <mail at subinsb (.) com>, 2021
 * Licensed under AGPL-3.0-only. See LICENSE.txt
 */

/* General */
const ZWJ = "\u200d"

/* Phonetic syllable tokens */

// LIPI_ISOLATED_PREFIX marks a vowel token that starts a syllable group and
// needs the independent (isolated) vowel letter instead of the vowel sign.
const LIPI_ISOLATED_PREFIX = "~"

// LIPI_VIRAMA_TOKEN is emitted after a consonant that is not followed by a
// vowel, suppressing its inherent vowel.
const LIPI_VIRAMA_TOKEN = "*"

// LIPI_PROTECT_MARK starts a word that is copied without conversion.
const LIPI_PROTECT_MARK = "`"

/* Devanagari code points used by the glyph-font passes */
const DEVANAGARI_VIRAMA = "्"
const DEVANAGARI_SIGN_I = "ि"
const DEVANAGARI_HALF_RA = "र्"

/* Glyph-font sentinels */

// Kruti Dev and Chanakya both type the short-i sign before its consonant.
const KRUTIDEV_SIGN_I = "f"
const CHANAKYA_SIGN_I = "ç"

// Kruti Dev stores reph after the syllable it belongs to.
const KRUTIDEV_REPH = "Z"

// Padding appended before the reverse Kruti Dev scans so lookahead never
// runs off the end of the buffer.
const KRUTIDEV_SCAN_PADDING = "  "

// krutiDevMatras is the stop set of the reph lookback. The separating
// spaces are part of the set.
const krutiDevMatras = "अ आ इ ई उ ऊ ए ऐ ओ औ ा ि ी ु ू ृ े ै ो ौ ं : ँ ॅ"

// krutiDevReverseMatras is the stop set of the reverse reph scan.
const krutiDevReverseMatras = "ािीुूृेैोौं:ँॅ"

// LIPI_NOT_IMPLEMENTED_FORMAT is the placeholder returned for font
// directions without conversion tables. Arguments: font name, input text.
const LIPI_NOT_IMPLEMENTED_FORMAT = "[%s conversion not yet implemented]\n%s"
