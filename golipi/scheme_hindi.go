package golipi

/**
 * golipi - Indian language script and legacy font converters
 * Copyright Subin Siby <mail at subinsb (.) com>, 2021
 * Licensed under AGPL-3.0-only. See LICENSE.txt
 */

var hindiConfig = LanguageConfig{
	Vowels:     `AOM|aa|ai|au|ee|oo|tR|a|A|i|I|u|U|e|o|M|H|:|\|\||\|`,
	Consonants: `DdD|RrR|NnN|LlL|kh|gh|ch|Ch|jh|nY|th|Th|dh|Dh|ph|bh|sh|Sh|qh|gG|GY|k|g|G|j|t|T|d|D|N|n|p|b|m|y|r|l|v|w|s|h|q|z|f|Y|R|L|x`,
	LetterCodes: map[string]string{
		"~a": "अ", "a": "",
		"~aa": "आ", "aa": "ा", "~A": "आ", "A": "ा",
		"~i": "इ", "i": "ि",
		"~ee": "ई", "ee": "ी", "~I": "ई", "I": "ी",
		"~u": "उ", "u": "ु",
		"~oo": "ऊ", "oo": "ू", "~U": "ऊ", "U": "ू",
		"~tR": "ऋ", "tR": "ृ",
		"~e": "ए", "e": "े",
		"~ai": "ऐ", "ai": "ै",
		"~o": "ओ", "o": "ो",
		"~au": "औ", "au": "ौ",
		"~AOM": "ॐ", "AOM": "ॐ",
		"~M": "ं", "M": "ं",
		"~H": "ः", "H": "ः", "~:": "ः", ":": "ः",
		"~|": "।", "|": "।",
		"~||": "॥", "||": "॥",

		"k": "क", "kh": "ख", "g": "ग", "gh": "घ", "G": "ङ",
		"ch": "च", "Ch": "छ", "j": "ज", "jh": "झ", "nY": "ञ",
		"T": "ट", "Th": "ठ", "D": "ड", "Dh": "ढ", "N": "ण",
		"t": "त", "th": "थ", "d": "द", "dh": "ध", "n": "न",
		"p": "प", "ph": "फ", "b": "ब", "bh": "भ", "m": "म",
		"y": "य", "r": "र", "l": "ल", "v": "व", "w": "व",
		"sh": "श", "Sh": "ष", "s": "स", "h": "ह",
		"q": "क़", "qh": "ख़", "gG": "ग़", "z": "ज़", "DdD": "ड़", "RrR": "ढ़", "f": "फ़", "Y": "य़",
		"NnN": "ऩ", "R": "ऱ", "LlL": "ऴ", "L": "ळ",
		"x": "क्ष", "GY": "ज्ञ",

		"*": "्",
	},
}
