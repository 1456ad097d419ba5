package golipi

/**
 * golipi - Indian language script and legacy font converters
 * Copyright Subin Siby <mail at subinsb (.) com>, 2021
 * Licensed under AGPL-3.0-only. See LICENSE.txt
 */

var tamilConfig = LanguageConfig{
	Vowels:     `AOM|aa|ai|au|ee|oo|a|A|i|I|u|U|e|o|M|H|:|\|\||\|`,
	Consonants: `DdD|RrR|NnN|LlL|kh|gh|ch|Ch|jh|nY|th|Th|dh|Dh|ph|bh|sh|Sh|qh|gG|GY|k|g|G|j|t|T|d|D|N|n|p|b|m|y|r|l|v|w|s|h|q|z|f|Y|R|L|x`,
	LetterCodes: map[string]string{
		"~a": "அ", "a": "",
		"~aa": "ஆ", "aa": "ா", "~A": "ஆ", "A": "ா",
		"~i": "இ", "i": "ி",
		"~ee": "ஈ", "ee": "ீ", "~I": "ஈ", "I": "ீ",
		"~u": "உ", "u": "ு",
		"~oo": "ஊ", "oo": "ூ", "~U": "ஊ", "U": "ூ",
		"~e": "ஏ", "e": "ே",
		"~ai": "ஐ", "ai": "ை",
		"~o": "ஓ", "o": "ோ",
		"~au": "ஔ", "au": "ௌ",
		"~AOM": "ௐ", "AOM": "ௐ",
		"~M": "ஂ", "M": "ஂ",
		"~H": "ஃ", "H": "ஃ", "~:": "ஃ", ":": "ஃ",
		"~|": "।", "|": "।",
		"~||": "॥", "||": "॥",

		"k": "க", "kh": "க", "g": "க", "gh": "க", "G": "ங",
		"ch": "ச", "Ch": "ச", "j": "ஜ", "jh": "ஜ", "nY": "ஞ",
		"T": "ட", "Th": "ட", "D": "ட", "Dh": "ட", "N": "ண",
		"t": "த", "th": "த", "d": "த", "dh": "த", "n": "ந",
		"p": "ப", "ph": "ப", "b": "ப", "bh": "ப", "m": "ம",
		"y": "ய", "r": "ர", "l": "ல", "v": "வ", "w": "வ",
		"sh": "ஶ", "Sh": "ஷ", "s": "ஸ", "h": "ஹ",
		"q": "க", "qh": "க", "gG": "க", "z": "ஜ", "DdD": "ட", "RrR": "ட", "f": "ப", "Y": "ய",
		"NnN": "ன", "R": "ற", "LlL": "ழ", "L": "ள",
		"x": "க்ஷ", "GY": "ஜ்ஞ",

		"*": "்",
	},
}
