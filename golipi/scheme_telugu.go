package golipi

/**
 * golipi - Indian language script and legacy font converters
 * Copyright Subin Siby <mail at subinsb (.) com>, 2021
 * Licensed under AGPL-3.0-only. See LICENSE.txt
 */

var teluguConfig = LanguageConfig{
	Vowels:     `AOM|aa|ai|au|ee|oo|tR|a|A|i|I|u|U|e|o|M|H|:|\|\||\|`,
	Consonants: `DdD|RrR|NnN|LlL|kh|gh|ch|Ch|jh|nY|th|Th|dh|Dh|ph|bh|sh|Sh|qh|gG|GY|k|g|G|j|t|T|d|D|N|n|p|b|m|y|r|l|v|w|s|h|q|z|f|Y|R|L|x`,
	LetterCodes: map[string]string{
		"~a": "అ", "a": "",
		"~aa": "ఆ", "aa": "ా", "~A": "ఆ", "A": "ా",
		"~i": "ఇ", "i": "ి",
		"~ee": "ఈ", "ee": "ీ", "~I": "ఈ", "I": "ీ",
		"~u": "ఉ", "u": "ు",
		"~oo": "ఊ", "oo": "ూ", "~U": "ఊ", "U": "ూ",
		"~tR": "ఋ", "tR": "ృ",
		"~e": "ఏ", "e": "ే",
		"~ai": "ఐ", "ai": "ై",
		"~o": "ఓ", "o": "ో",
		"~au": "ఔ", "au": "ౌ",
		"~AOM": "ఓం", "AOM": "ఓం",
		"~M": "ం", "M": "ం",
		"~H": "ః", "H": "ః", "~:": "ః", ":": "ః",
		"~|": "।", "|": "।",
		"~||": "॥", "||": "॥",

		"k": "క", "kh": "ఖ", "g": "గ", "gh": "ఘ", "G": "ఙ",
		"ch": "చ", "Ch": "ఛ", "j": "జ", "jh": "ఝ", "nY": "ఞ",
		"T": "ట", "Th": "ఠ", "D": "డ", "Dh": "ఢ", "N": "ణ",
		"t": "త", "th": "థ", "d": "ద", "dh": "ధ", "n": "న",
		"p": "ప", "ph": "ఫ", "b": "బ", "bh": "భ", "m": "మ",
		"y": "య", "r": "ర", "l": "ల", "v": "వ", "w": "వ",
		"sh": "శ", "Sh": "ష", "s": "స", "h": "హ",
		"q": "క", "qh": "ఖ", "gG": "గ", "z": "జ", "DdD": "డ", "RrR": "ఢ", "f": "ఫ", "Y": "య",
		"NnN": "న", "R": "ఱ", "LlL": "ఴ", "L": "ళ",
		"x": "క్ష", "GY": "జ్ఞ",

		"*": "్",
	},
}
