package golipi

/**
 * golipi - Indian language script and legacy font converters
 * Copyright Subin Siby <mail at subinsb (.) com>, 2021
 * Licensed under AGPL-3.0-only. See LICENSE.txt
 */

var punjabiConfig = LanguageConfig{
	Vowels:     `AOM|aa|ai|au|ee|oo|a|A|i|I|u|U|e|o|M|H|:|\|\||\|`,
	Consonants: `DdD|RrR|NnN|LlL|kh|gh|ch|Ch|jh|nY|th|Th|dh|Dh|ph|bh|sh|Sh|qh|gG|GY|k|g|G|j|t|T|d|D|N|n|p|b|m|y|r|l|v|w|s|h|q|z|f|Y|R|L|x`,
	LetterCodes: map[string]string{
		"~a": "ਅ", "a": "",
		"~aa": "ਆ", "aa": "ਾ", "~A": "ਆ", "A": "ਾ",
		"~i": "ਇ", "i": "ਿ",
		"~ee": "ਈ", "ee": "ੀ", "~I": "ਈ", "I": "ੀ",
		"~u": "ਉ", "u": "ੁ",
		"~oo": "ਊ", "oo": "ੂ", "~U": "ਊ", "U": "ੂ",
		"~e": "ਏ", "e": "ੇ",
		"~ai": "ਐ", "ai": "ੈ",
		"~o": "ਓ", "o": "ੋ",
		"~au": "ਔ", "au": "ੌ",
		"~AOM": "ਓਂ", "AOM": "ਓਂ",
		"~M": "ਂ", "M": "ਂ",
		"~H": "ਃ", "H": "ਃ", "~:": "ਃ", ":": "ਃ",
		"~|": "।", "|": "।",
		"~||": "॥", "||": "॥",

		"k": "ਕ", "kh": "ਖ", "g": "ਗ", "gh": "ਘ", "G": "ਙ",
		"ch": "ਚ", "Ch": "ਛ", "j": "ਜ", "jh": "ਝ", "nY": "ਞ",
		"T": "ਟ", "Th": "ਠ", "D": "ਡ", "Dh": "ਢ", "N": "ਣ",
		"t": "ਤ", "th": "ਥ", "d": "ਦ", "dh": "ਧ", "n": "ਨ",
		"p": "ਪ", "ph": "ਫ", "b": "ਬ", "bh": "ਭ", "m": "ਮ",
		"y": "ਯ", "r": "ਰ", "l": "ਲ", "v": "ਵ", "w": "ਵ",
		"sh": "ਸ਼", "Sh": "ਸ਼", "s": "ਸ", "h": "ਹ",
		"q": "ਕ਼", "qh": "ਖ਼", "gG": "ਗ਼", "z": "ਜ਼", "DdD": "ਡ਼", "RrR": "ਢ਼", "f": "ਫ਼", "Y": "ਯ਼",
		"NnN": "ਨ", "R": "ਰ", "LlL": "ਲ਼", "L": "ਲ਼",
		"x": "ਕ੍ਸ਼", "GY": "ਜ੍ਞ",

		"*": "੍",
	},
}
