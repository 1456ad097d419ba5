package golipi

/**
 * golipi - Indian language script and legacy font converters
 * Copyright Subin Siby <mail at subinsb (.) com>, 2021
 * Licensed under AGPL-3.0-only. See LICENSE.txt
 */

var preetiToUnicodeTable = newRuleTable(
	[]string{
		"!", "=", "#", "$", "%", "^", "&", "*", ")", "_",
		"+", "Q", "W", "E", "R", "T", "Y", "U", "I", "O",
		"P", "{", "}", "A", "S", "D", "F", "G", "H", "J",
		"K", "L", ":", "\"", "Z", "X", "C", "V", "B", "N",
		"M", "<", ">", "?", "q", "w", "e", "r", "t", "y",
		"u", "i", "o", "p", "[", "]", "a", "s", "d", "f",
		"g", "h", "j", "k", "l", ";", "'", "z", "x", "c",
		"v", "b", "n", "m", ",", ".", "/", "`", "~", "1",
		"2", "3", "4", "5", "6", "7", "8", "9", "0", "-",
	},
	[]string{
		"१", "ज्ञ", "घ", "ध", "भ", "छ", "ट", "ठ", "ड", "ढ",
		"ण", "त्त", "द्ध", "द्द", "र्\u200d", "ज्ञ्", "त्र", "ठ्ठ", "ड्ड", "ठ्ठ",
		"ड्ढ", "ङ्क", "ङ्ग", "ा", "ी", "ु", "ू", "े", "ै", "ो",
		"ौ", "ं", ":", "\"", "श्र", "क्ष", "त्र्", "ृ", "द्य", "ट्ट",
		"ड्ड", "र्\u200d", "॥", "?", "त्र", "ध्र", "घ्र", "थ्र", "द्र", "प्र",
		"ग्र", "रु", "रू", "फ", "ॐ", "र्\u200d", "क", "ख", "ग", "घ",
		"ङ", "च", "छ", "ज", "झ", "ञ", "ट", "ठ", "ड", "ढ",
		"ण", "त", "थ", "द", "ध", "न", "प", "फ", "ब", "भ",
		"म", "य", "र", "ल", "व", "श", "ष", "स", "ह", "क्ष",
		"त्र", "ज्ञ", "०", "१", "२", "३", "४", "५", "६", "७",
		"८", "९", "्",
	},
)

// unicodeToPreetiTable is shorter on the target side; the last three
// sources have no partner and are dropped by newRuleTable.
var unicodeToPreetiTable = newRuleTable(
	[]string{
		"१", "ज्ञ", "घ", "ध", "भ", "छ", "ट", "ठ", "ड", "ढ",
		"ण", "त्त", "द्ध", "द्द", "र्\u200d", "ज्ञ्", "त्र", "ठ्ठ", "ड्ड", "ङ्क",
		"ङ्ग", "ा", "ी", "ु", "ू", "े", "ै", "ो", "ौ", "ं",
		":", "श्र", "क्ष", "त्र्", "ृ", "द्य", "ट्ट", "ड्ड", "॥", "ध्र",
		"घ्र", "थ्र", "द्र", "प्र", "ग्र", "रु", "रू", "फ", "ॐ", "क",
		"ख", "ग", "घ", "ङ", "च", "छ", "ज", "झ", "ञ", "ठ",
		"ड", "ढ", "ण", "त", "थ", "द", "ध", "न", "प", "ब",
		"भ", "म", "य", "र", "ल", "व", "श", "ष", "स", "ह",
		"०", "२", "३", "४", "५", "६", "७", "८", "९", "्",
	},
	[]string{
		"!", "=", "#", "$", "%", "^", "&", "*", ")", "_",
		"+", "Q", "W", "E", "R", "T", "Y", "U", "I", "O",
		"P", "{", "A", "S", "D", "F", "G", "H", "J", "K",
		"L", ":", "Z", "X", "C", "V", "B", "N", "M", ">",
		"w", "e", "r", "t", "y", "g", "i", "o", "p", "[",
		"a", "s", "d", "f", "h", "j", "k", "l", ";", "*",
		")", "(", "%", "^", "&", "!", "b", "n", "m", "u",
		"z", "x", "c", "v", ",", ".", "/", "0", "2", "3",
		"4", "5", "6", "7", "8", "9", "-",
	},
)
