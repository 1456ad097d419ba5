package golipi

/**
 * golipi - Indian language script and legacy font converters
 * Copyright Subin Siby <mail at subinsb (.) com>, 2021
 * Licensed under AGPL-3.0-only. See LICENSE.txt
 */

import (
	"fmt"
	"regexp"
	"strings"
	"sync"
	"unicode/utf8"
)

// Converter turns Latin phonetic input into text of one script.
// It is immutable and can be shared between goroutines.
type Converter struct {
	config LanguageConfig

	vowel     *regexp.Regexp
	consonant *regexp.Regexp

	// A phonetic run, optionally led by one or two protect marks
	word      *regexp.Regexp
	protected *regexp.Regexp
	escaped   *regexp.Regexp
}

// NewConverter compiles the patterns of a scheme
func NewConverter(config LanguageConfig) (*Converter, error) {
	run := fmt.Sprintf("(?:(?:%s)|(?:%s))+", config.Vowels, config.Consonants)

	patterns := []string{
		"^(?:" + config.Vowels + ")",
		"^(?:" + config.Consonants + ")",
		"^" + run,
		"^" + regexp.QuoteMeta(LIPI_PROTECT_MARK) + run,
		"^" + regexp.QuoteMeta(LIPI_PROTECT_MARK+LIPI_PROTECT_MARK) + run,
	}

	compiled := make([]*regexp.Regexp, len(patterns))
	for i, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid scheme pattern %q: %w", pattern, err)
		}
		compiled[i] = re
	}

	return &Converter{
		config:    config,
		vowel:     compiled[0],
		consonant: compiled[1],
		word:      compiled[2],
		protected: compiled[3],
		escaped:   compiled[4],
	}, nil
}

// MustConverter is like NewConverter but panics on a bad pattern
func MustConverter(config LanguageConfig) *Converter {
	conv, err := NewConverter(config)
	if err != nil {
		panic(err)
	}
	return conv
}

// Config returns the scheme the converter was built from
func (conv *Converter) Config() LanguageConfig {
	return conv.config
}

// Convert transliterates a sentence. Phonetic runs are converted syllable
// by syllable, everything else is copied. A run prefixed with a single
// protect mark is copied without the mark; a doubled mark gives one
// literal mark followed by the converted run.
func (conv *Converter) Convert(sentence string) string {
	var out strings.Builder
	remaining := sentence

	for len(remaining) > 0 {
		if match := conv.escaped.FindString(remaining); match != "" {
			out.WriteString(LIPI_PROTECT_MARK)
			out.WriteString(conv.oneWord(match[2*len(LIPI_PROTECT_MARK):]))
			remaining = remaining[len(match):]
			continue
		}

		if match := conv.protected.FindString(remaining); match != "" {
			out.WriteString(match[len(LIPI_PROTECT_MARK):])
			remaining = remaining[len(match):]
			continue
		}

		if match := conv.word.FindString(remaining); match != "" {
			out.WriteString(conv.oneWord(match))
			remaining = remaining[len(match):]
			continue
		}

		_, size := utf8.DecodeRuneInString(remaining)
		out.WriteString(remaining[:size])
		remaining = remaining[size:]
	}

	return out.String()
}

func (conv *Converter) oneWord(word string) string {
	var out strings.Builder
	for _, syllable := range conv.Syllables(word) {
		out.WriteString(conv.matchCode(syllable))
	}
	return out.String()
}

// matchCode looks a token up. Unknown tokens stand for themselves.
func (conv *Converter) matchCode(token string) string {
	if code, ok := conv.config.LetterCodes[token]; ok {
		return code
	}
	return token
}

// Syllables splits a word into lookup tokens. A vowel that does not follow
// a consonant gets the isolated prefix, and a consonant not followed by a
// vowel is followed by a virama token.
func (conv *Converter) Syllables(word string) []string {
	var syllables []string
	vowelStart := true

	for len(word) > 0 {
		if vowel := conv.vowel.FindString(word); vowel != "" {
			if vowelStart {
				syllables = append(syllables, LIPI_ISOLATED_PREFIX+vowel)
			} else {
				syllables = append(syllables, vowel)
			}
			vowelStart = true
			word = word[len(vowel):]
			continue
		}

		if consonant := conv.consonant.FindString(word); consonant != "" {
			syllables = append(syllables, consonant)
			vowelStart = false
			word = word[len(consonant):]

			if len(word) == 0 || !conv.vowel.MatchString(word) {
				syllables = append(syllables, LIPI_VIRAMA_TOKEN)
			}
			continue
		}

		_, size := utf8.DecodeRuneInString(word)
		syllables = append(syllables, word[:size])
		word = word[size:]
	}

	return syllables
}

var (
	builtinConverters     map[Language]*Converter
	builtinConvertersOnce sync.Once
)

func builtinConverter(lang Language) (*Converter, error) {
	builtinConvertersOnce.Do(func() {
		builtinConverters = make(map[Language]*Converter, len(languageList))
		for _, details := range languageList {
			builtinConverters[details.ID] = MustConverter(details.Config)
		}
	})

	conv, ok := builtinConverters[lang]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownLanguage, lang)
	}
	return conv, nil
}

// Transliterate converts a sentence with a built-in language scheme
func Transliterate(sentence string, lang Language) (string, error) {
	conv, err := builtinConverter(lang)
	if err != nil {
		return "", err
	}

	result := conv.Convert(sentence)
	tracer().Debugf("%s: %q => %q", lang, sentence, result)

	return result, nil
}
