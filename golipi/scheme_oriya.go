package golipi

/**
 * golipi - Indian language script and legacy font converters
 * Copyright Subin Siby <mail at subinsb (.) com>, 2021
 * Licensed under AGPL-3.0-only. See LICENSE.txt
 */

var oriyaConfig = LanguageConfig{
	Vowels:     `AOM|aa|ai|au|ee|oo|tR|a|A|i|I|u|U|e|o|M|H|:|\|\||\|`,
	Consonants: `DdD|RrR|NnN|LlL|kh|gh|ch|Ch|jh|nY|th|Th|dh|Dh|ph|bh|sh|Sh|qh|gG|GY|k|g|G|j|t|T|d|D|N|n|p|b|m|y|r|l|v|w|s|h|q|z|f|Y|R|L|x`,
	LetterCodes: map[string]string{
		"~a": "ଅ", "a": "",
		"~aa": "ଆ", "aa": "ା", "~A": "ଆ", "A": "ା",
		"~i": "ଇ", "i": "ି",
		"~ee": "ଈ", "ee": "ୀ", "~I": "ଈ", "I": "ୀ",
		"~u": "ଉ", "u": "ୁ",
		"~oo": "ଊ", "oo": "ୂ", "~U": "ଊ", "U": "ୂ",
		"~tR": "ଋ", "tR": "ୃ",
		"~e": "ଏ", "e": "େ",
		"~ai": "ଐ", "ai": "ୈ",
		"~o": "ଓ", "o": "ୋ",
		"~au": "ଔ", "au": "ୌ",
		"~AOM": "ଓଂ", "AOM": "ଓଂ",
		"~M": "ଂ", "M": "ଂ",
		"~H": "ଃ", "H": "ଃ", "~:": "ଃ", ":": "ଃ",
		"~|": "।", "|": "।",
		"~||": "॥", "||": "॥",

		"k": "କ", "kh": "ଖ", "g": "ଗ", "gh": "ଘ", "G": "ଙ",
		"ch": "ଚ", "Ch": "ଛ", "j": "ଜ", "jh": "ଝ", "nY": "ଞ",
		"T": "ଟ", "Th": "ଠ", "D": "ଡ", "Dh": "ଢ", "N": "ଣ",
		"t": "ତ", "th": "ଥ", "d": "ଦ", "dh": "ଧ", "n": "ନ",
		"p": "ପ", "ph": "ଫ", "b": "ବ", "bh": "ଭ", "m": "ମ",
		"y": "ଯ", "r": "ର", "l": "ଲ", "v": "ଵ", "w": "ଵ",
		"sh": "ଶ", "Sh": "ଷ", "s": "ସ", "h": "ହ",
		"q": "କ଼", "qh": "ଖ଼", "gG": "ଗ଼", "z": "ଜ଼", "DdD": "ଡ଼", "RrR": "ଢ଼", "f": "ଫ଼", "Y": "ଯ଼",
		"NnN": "ନ", "R": "ର", "LlL": "ଳ", "L": "ଳ",
		"x": "କ୍ଷ", "GY": "ଜ୍ଞ",

		"*": "୍",
	},
}
