package golipi

/**
 * golipi - Indian language script and legacy font converters
 * Copyright Subin Siby <mail at subinsb (.) com>, 2021
 * Licensed under AGPL-3.0-only. See LICENSE.txt
 */

var malayalamConfig = LanguageConfig{
	Vowels:     `AOM|aa|ai|au|ee|oo|tR|a|A|i|I|u|U|e|o|M|H|:|\|\||\|`,
	Consonants: `DdD|RrR|NnN|LlL|kh|gh|ch|Ch|jh|nY|th|Th|dh|Dh|ph|bh|sh|Sh|qh|gG|GY|k|g|G|j|t|T|d|D|N|n|p|b|m|y|r|l|v|w|s|h|q|z|f|Y|R|L|x`,
	LetterCodes: map[string]string{
		"~a": "അ", "a": "",
		"~aa": "ആ", "aa": "ാ", "~A": "ആ", "A": "ാ",
		"~i": "ഇ", "i": "ി",
		"~ee": "ഈ", "ee": "ീ", "~I": "ഈ", "I": "ീ",
		"~u": "ഉ", "u": "ു",
		"~oo": "ഊ", "oo": "ൂ", "~U": "ഊ", "U": "ൂ",
		"~tR": "ഋ", "tR": "ൃ",
		"~e": "ഏ", "e": "േ",
		"~ai": "ഐ", "ai": "ൈ",
		"~o": "ഓ", "o": "ോ",
		"~au": "ഔ", "au": "ൌ",
		"~AOM": "ഓം", "AOM": "ഓം",
		"~M": "ം", "M": "ം",
		"~H": "ഃ", "H": "ഃ", "~:": "ഃ", ":": "ഃ",
		"~|": "।", "|": "।",
		"~||": "॥", "||": "॥",

		"k": "ക", "kh": "ഖ", "g": "ഗ", "gh": "ഘ", "G": "ങ",
		"ch": "ച", "Ch": "ഛ", "j": "ജ", "jh": "ഝ", "nY": "ഞ",
		"T": "ട", "Th": "ഠ", "D": "ഡ", "Dh": "ഢ", "N": "ണ",
		"t": "ത", "th": "ഥ", "d": "ദ", "dh": "ധ", "n": "ന",
		"p": "പ", "ph": "ഫ", "b": "ബ", "bh": "ഭ", "m": "മ",
		"y": "യ", "r": "ര", "l": "ല", "v": "വ", "w": "വ",
		"sh": "ശ", "Sh": "ഷ", "s": "സ", "h": "ഹ",
		"q": "ക", "qh": "ഖ", "gG": "ഗ", "z": "ജ", "DdD": "ഡ", "RrR": "ഢ", "f": "ഫ", "Y": "യ",
		"NnN": "ഩ", "R": "റ", "LlL": "ഴ", "L": "ള",
		"x": "ക്ഷ", "GY": "ജ്ഞ",

		"*": "്",
	},
}
