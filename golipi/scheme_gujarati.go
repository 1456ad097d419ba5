package golipi

/**
 * golipi - Indian language script and legacy font converters
 * Copyright Subin Siby <mail at subinsb (.) com>, 2021
 * Licensed under AGPL-3.0-only. See LICENSE.txt
 */

var gujaratiConfig = LanguageConfig{
	Vowels:     `AOM|aa|ai|au|ee|oo|tR|a|A|i|I|u|U|e|o|M|H|:|\|\||\|`,
	Consonants: `DdD|RrR|NnN|LlL|kh|gh|ch|Ch|jh|nY|th|Th|dh|Dh|ph|bh|sh|Sh|qh|gG|GY|k|g|G|j|t|T|d|D|N|n|p|b|m|y|r|l|v|w|s|h|q|z|f|Y|R|L|x`,
	LetterCodes: map[string]string{
		"~a": "અ", "a": "",
		"~aa": "આ", "aa": "ા", "~A": "આ", "A": "ા",
		"~i": "ઇ", "i": "િ",
		"~ee": "ઈ", "ee": "ી", "~I": "ઈ", "I": "ી",
		"~u": "ઉ", "u": "ુ",
		"~oo": "ઊ", "oo": "ૂ", "~U": "ઊ", "U": "ૂ",
		"~tR": "ઋ", "tR": "ૃ",
		"~e": "એ", "e": "ે",
		"~ai": "ઐ", "ai": "ૈ",
		"~o": "ઓ", "o": "ો",
		"~au": "ઔ", "au": "ૌ",
		"~AOM": "ૐ", "AOM": "ૐ",
		"~M": "ં", "M": "ં",
		"~H": "ઃ", "H": "ઃ", "~:": "ઃ", ":": "ઃ",
		"~|": "।", "|": "।",
		"~||": "॥", "||": "॥",

		"k": "ક", "kh": "ખ", "g": "ગ", "gh": "ઘ", "G": "ઙ",
		"ch": "ચ", "Ch": "છ", "j": "જ", "jh": "ઝ", "nY": "ઞ",
		"T": "ટ", "Th": "ઠ", "D": "ડ", "Dh": "ઢ", "N": "ણ",
		"t": "ત", "th": "થ", "d": "દ", "dh": "ધ", "n": "ન",
		"p": "પ", "ph": "ફ", "b": "બ", "bh": "ભ", "m": "મ",
		"y": "ય", "r": "ર", "l": "લ", "v": "વ", "w": "વ",
		"sh": "શ", "Sh": "ષ", "s": "સ", "h": "હ",
		"q": "ક઼", "qh": "ખ઼", "gG": "ગ઼", "z": "જ઼", "DdD": "ડ઼", "RrR": "ઢ઼", "f": "ફ઼", "Y": "ય઼",
		"NnN": "ન", "R": "ર", "LlL": "ળ", "L": "ળ",
		"x": "ક્ષ", "GY": "જ્ઞ",

		"*": "્",
	},
}
