package golipi

/**
 * golipi - Indian language script and legacy font converters
 * Copyright Subin Siby <mail at subinsb (.) com>, 2021
 * Licensed under AGPL-3.0-only. See LICENSE.txt
 */

var kannadaConfig = LanguageConfig{
	Vowels:     `AOM|aa|ai|au|ee|oo|tR|a|A|i|I|u|U|e|o|M|H|:|\|\||\|`,
	Consonants: `DdD|RrR|NnN|LlL|kh|gh|ch|Ch|jh|nY|th|Th|dh|Dh|ph|bh|sh|Sh|qh|gG|GY|k|g|G|j|t|T|d|D|N|n|p|b|m|y|r|l|v|w|s|h|q|z|f|Y|R|L|x`,
	LetterCodes: map[string]string{
		"~a": "ಅ", "a": "",
		"~aa": "ಆ", "aa": "ಾ", "~A": "ಆ", "A": "ಾ",
		"~i": "ಇ", "i": "ಿ",
		"~ee": "ಈ", "ee": "ೀ", "~I": "ಈ", "I": "ೀ",
		"~u": "ಉ", "u": "ು",
		"~oo": "ಊ", "oo": "ೂ", "~U": "ಊ", "U": "ೂ",
		"~tR": "ಋ", "tR": "ೃ",
		"~e": "ಏ", "e": "ೇ",
		"~ai": "ಐ", "ai": "ೈ",
		"~o": "ಓ", "o": "ೋ",
		"~au": "ಔ", "au": "ೌ",
		"~AOM": "ಓಂ", "AOM": "ಓಂ",
		"~M": "ಂ", "M": "ಂ",
		"~H": "ಃ", "H": "ಃ", "~:": "ಃ", ":": "ಃ",
		"~|": "।", "|": "।",
		"~||": "॥", "||": "॥",

		"k": "ಕ", "kh": "ಖ", "g": "ಗ", "gh": "ಘ", "G": "ಙ",
		"ch": "ಚ", "Ch": "ಛ", "j": "ಜ", "jh": "ಝ", "nY": "ಞ",
		"T": "ಟ", "Th": "ಠ", "D": "ಡ", "Dh": "ಢ", "N": "ಣ",
		"t": "ತ", "th": "ಥ", "d": "ದ", "dh": "ಧ", "n": "ನ",
		"p": "ಪ", "ph": "ಫ", "b": "ಬ", "bh": "ಭ", "m": "ಮ",
		"y": "ಯ", "r": "ರ", "l": "ಲ", "v": "ವ", "w": "ವ",
		"sh": "ಶ", "Sh": "ಷ", "s": "ಸ", "h": "ಹ",
		"q": "ಕ಼", "qh": "ಖ಼", "gG": "ಗ಼", "z": "ಜ಼", "DdD": "ಡ಼", "RrR": "ಢ಼", "f": "ಫ಼", "Y": "ಯ಼",
		"NnN": "ನ", "R": "ಱ", "LlL": "ಳ", "L": "ಳ",
		"x": "ಕ್ಷ", "GY": "ಜ್ಞ",

		"*": "್",
	},
}
