package golipi

/**
 * golipi - Indian language script and legacy font converters
 * Copyright Subin Siby <mail at subinsb (.) com>, 2021
 * Licensed under AGPL-3.0-only. See LICENSE.txt
 */

var bengaliConfig = LanguageConfig{
	Vowels:     `AOM|aa|ai|au|ee|oo|tR|a|A|i|I|u|U|e|o|M|H|:|\|\||\|`,
	Consonants: `DdD|RrR|NnN|LlL|kh|gh|ch|Ch|jh|nY|th|Th|dh|Dh|ph|bh|sh|Sh|qh|gG|GY|k|g|G|j|t|T|d|D|N|n|p|b|m|y|r|l|v|w|s|h|q|z|f|Y|R|L|x`,
	LetterCodes: map[string]string{
		"~a": "অ", "a": "",
		"~aa": "আ", "aa": "া", "~A": "আ", "A": "া",
		"~i": "ই", "i": "ি",
		"~ee": "ঈ", "ee": "ী", "~I": "ঈ", "I": "ী",
		"~u": "উ", "u": "ু",
		"~oo": "ঊ", "oo": "ূ", "~U": "ঊ", "U": "ূ",
		"~tR": "ঋ", "tR": "ৃ",
		"~e": "এ", "e": "ে",
		"~ai": "ঐ", "ai": "ৈ",
		"~o": "ও", "o": "ো",
		"~au": "ঔ", "au": "ৌ",
		"~AOM": "ওং", "AOM": "ওং",
		"~M": "ং", "M": "ং",
		"~H": "ঃ", "H": "ঃ", "~:": "ঃ", ":": "ঃ",
		"~|": "।", "|": "।",
		"~||": "॥", "||": "॥",

		"k": "ক", "kh": "খ", "g": "গ", "gh": "ঘ", "G": "ঙ",
		"ch": "চ", "Ch": "ছ", "j": "জ", "jh": "ঝ", "nY": "ঞ",
		"T": "ট", "Th": "ঠ", "D": "ড", "Dh": "ঢ", "N": "ণ",
		"t": "ত", "th": "থ", "d": "দ", "dh": "ধ", "n": "ন",
		"p": "প", "ph": "ফ", "b": "ব", "bh": "ভ", "m": "ম",
		"y": "য", "r": "র", "l": "ল", "v": "ব", "w": "ব",
		"sh": "শ", "Sh": "ষ", "s": "স", "h": "হ",
		"q": "ক়", "qh": "খ়", "gG": "গ়", "z": "জ়", "DdD": "ড়", "RrR": "ঢ়", "f": "ফ়", "Y": "য়",
		"NnN": "ন", "R": "র", "LlL": "ল", "L": "ল",
		"x": "ক্ষ", "GY": "জ্ঞ",

		"*": "্",
	},
}
