package golipi

/**
 * golipi - Indian language script and legacy font converters
 * Copyright Subin Siby <mail at subinsb (.) com>, 2021
 * Licensed under AGPL-3.0-only. See LICENSE.txt
 */

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/language"
)

// LanguageConfig is the phonetic scheme of one target script.
// Vowels and Consonants are regular expression alternations with longer
// spellings first. LetterCodes maps syllable tokens to script text.
type LanguageConfig struct {
	Vowels      string
	Consonants  string
	LetterCodes map[string]string
}

// Language is the identifier of a built-in phonetic scheme
type Language string

const (
	Hindi     Language = "hindi"
	Bengali   Language = "bengali"
	Tamil     Language = "tamil"
	Gujarati  Language = "gujarati"
	Kannada   Language = "kannada"
	Malayalam Language = "malayalam"
	Oriya     Language = "oriya"
	Punjabi   Language = "punjabi"
	Telugu    Language = "telugu"
)

// ErrUnknownLanguage is returned when a language key matches no scheme
var ErrUnknownLanguage = errors.New("unknown language")

// LanguageDetails is the registry entry of a built-in language
type LanguageDetails struct {
	ID          Language
	Name        string
	NativeName  string
	Tag         language.Tag
	Placeholder string
	Config      LanguageConfig
}

var languageList = []LanguageDetails{
	{Hindi, "Hindi", "हिन्दी", language.Hindi, "namaste bhaarath", hindiConfig},
	{Bengali, "Bengali", "বাংলা", language.Bengali, "namaste bangla", bengaliConfig},
	{Tamil, "Tamil", "தமிழ்", language.Tamil, "vanakkam tamil", tamilConfig},
	{Gujarati, "Gujarati", "ગુજરાતી", language.Gujarati, "namaste gujarath", gujaratiConfig},
	{Kannada, "Kannada", "ಕನ್ನಡ", language.Kannada, "namaskara kannada", kannadaConfig},
	{Malayalam, "Malayalam", "മലയാളം", language.Malayalam, "namaskaram malayalam", malayalamConfig},
	{Oriya, "Oriya", "ଓଡ଼ିଆ", language.MustParse("or"), "namaste oriya", oriyaConfig},
	{Punjabi, "Punjabi", "ਪੰਜਾਬੀ", language.Punjabi, "sat sri akaal punjabi", punjabiConfig},
	{Telugu, "Telugu", "తెలుగు", language.Telugu, "namaskaram telugu", teluguConfig},
}

var languageMatcher = func() language.Matcher {
	tags := make([]language.Tag, len(languageList))
	for i, lang := range languageList {
		tags[i] = lang.Tag
	}
	return language.NewMatcher(tags)
}()

// Languages lists the built-in languages in display order
func Languages() []LanguageDetails {
	langs := make([]LanguageDetails, len(languageList))
	copy(langs, languageList)
	return langs
}

// LookupLanguage finds a language by its identifier ("hindi") or by a
// BCP 47 tag ("hi", "ml-IN", "pa-Guru").
func LookupLanguage(id string) (LanguageDetails, error) {
	key := strings.ToLower(strings.TrimSpace(id))

	for _, lang := range languageList {
		if string(lang.ID) == key {
			return lang, nil
		}
	}

	tag, err := language.Parse(key)
	if err != nil {
		return LanguageDetails{}, fmt.Errorf("%w: %s", ErrUnknownLanguage, id)
	}

	_, index, confidence := languageMatcher.Match(tag)
	if confidence < language.High {
		return LanguageDetails{}, fmt.Errorf("%w: %s", ErrUnknownLanguage, id)
	}

	return languageList[index], nil
}

// UnicodeBlock returns the Unicode block of the language's script
func (lang LanguageDetails) UnicodeBlock() *unicode.RangeTable {
	switch lang.ID {
	case Hindi:
		return &unicode.RangeTable{R16: []unicode.Range16{{0x0900, 0x097F, 1}}}
	case Bengali:
		return &unicode.RangeTable{R16: []unicode.Range16{{0x0980, 0x09FF, 1}}}
	case Punjabi:
		return &unicode.RangeTable{R16: []unicode.Range16{{0x0A00, 0x0A7F, 1}}}
	case Gujarati:
		return &unicode.RangeTable{R16: []unicode.Range16{{0x0A80, 0x0AFF, 1}}}
	case Oriya:
		return &unicode.RangeTable{R16: []unicode.Range16{{0x0B00, 0x0B7F, 1}}}
	case Tamil:
		return &unicode.RangeTable{R16: []unicode.Range16{{0x0B80, 0x0BFF, 1}}}
	case Telugu:
		return &unicode.RangeTable{R16: []unicode.Range16{{0x0C00, 0x0C7F, 1}}}
	case Kannada:
		return &unicode.RangeTable{R16: []unicode.Range16{{0x0C80, 0x0CFF, 1}}}
	case Malayalam:
		return &unicode.RangeTable{R16: []unicode.Range16{{0x0D00, 0x0D7F, 1}}}
	default:
		return &unicode.RangeTable{}
	}
}

// spellings splits a pattern alternation back into its literal spellings
func spellings(pattern string) []string {
	var result []string
	for _, part := range strings.Split(strings.ReplaceAll(pattern, `\|`, "\x00"), "|") {
		part = strings.ReplaceAll(part, "\x00", `\|`)
		if part == "" {
			continue
		}
		result = append(result, unquoteMeta(part))
	}
	return result
}

var metaEscape = regexp.MustCompile(`\\(.)`)

func unquoteMeta(s string) string {
	return metaEscape.ReplaceAllString(s, "$1")
}

// Validate lists the vowel and consonant spellings that have no letter
// code. Such syllables pass through unconverted.
func (config LanguageConfig) Validate() []string {
	var missing []string

	for _, vowel := range spellings(config.Vowels) {
		if _, ok := config.LetterCodes[LIPI_ISOLATED_PREFIX+vowel]; !ok {
			missing = append(missing, LIPI_ISOLATED_PREFIX+vowel)
		}
		if _, ok := config.LetterCodes[vowel]; !ok {
			missing = append(missing, vowel)
		}
	}

	for _, consonant := range spellings(config.Consonants) {
		if _, ok := config.LetterCodes[consonant]; !ok {
			missing = append(missing, consonant)
		}
	}

	if len(config.Consonants) > 0 {
		if _, ok := config.LetterCodes[LIPI_VIRAMA_TOKEN]; !ok {
			missing = append(missing, LIPI_VIRAMA_TOKEN)
		}
	}

	return missing
}
