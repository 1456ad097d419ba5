package golipi

import (
	"sync"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransliterateHindi(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "golipi")
	defer teardown()

	cases := map[string]string{
		"namaste":          "नमस्ते",
		"namaste bhaarath": "नमस्ते भारथ्",
		"hindee":           "हिन्दी",
		"kShatriya":        "क्षत्रिय",
		"kyaa":             "क्या",
		"GYaan":            "ज्ञान्",
		"AOM":              "ॐ",
		"aap kaise hain?":  "आप् कैसे हैन्?",
		"123 raam!":        "123 राम्!",
		"":                 "",
	}

	for input, expected := range cases {
		out, err := Transliterate(input, Hindi)
		require.NoError(t, err)
		assert.Equal(t, expected, out, "input %q", input)
	}
}

func TestTransliterateAllLanguages(t *testing.T) {
	expected := map[Language]string{
		Hindi:     "नमस्ते",
		Bengali:   "নমস্তে",
		Tamil:     "நமஸ்தே",
		Gujarati:  "નમસ્તે",
		Kannada:   "ನಮಸ್ತೇ",
		Malayalam: "നമസ്തേ",
		Oriya:     "ନମସ୍ତେ",
		Punjabi:   "ਨਮਸ੍ਤੇ",
		Telugu:    "నమస్తే",
	}

	for _, lang := range Languages() {
		out, err := Transliterate("namaste", lang.ID)
		require.NoError(t, err)
		assert.Equal(t, expected[lang.ID], out, "language %s", lang.ID)
	}

	out, err := Transliterate("vanakkam tamil", Tamil)
	require.NoError(t, err)
	assert.Equal(t, "வநக்கம் தமில்", out)
}

func TestTransliterateUnknownLanguage(t *testing.T) {
	_, err := Transliterate("namaste", Language("klingon"))
	assert.ErrorIs(t, err, ErrUnknownLanguage)
}

func TestProtectedWord(t *testing.T) {
	conv := MustConverter(hindiConfig)

	// A single mark copies the word and drops the mark
	assert.Equal(t, "namaste हिन्दि", conv.Convert("`namaste hindi"))
	// A doubled mark keeps one mark and converts the word
	assert.Equal(t, "`नमस्ते", conv.Convert("``namaste"))
	// A mark with no word after it is an ordinary character
	assert.Equal(t, "`", conv.Convert("`"))
	assert.Equal(t, "` 1", conv.Convert("` 1"))
}

func TestSyllables(t *testing.T) {
	conv := MustConverter(hindiConfig)

	assert.Equal(t, []string{"n", "a", "m", "a", "s", "*", "t", "e"}, conv.Syllables("namaste"))
	assert.Equal(t, []string{"~aa", "~i"}, conv.Syllables("aai"))
	assert.Equal(t, []string{"k", "*"}, conv.Syllables("k"))
	assert.Equal(t, []string{"k", "*", "Sh", "a", "t", "*", "r", "i", "y", "a"}, conv.Syllables("kShatriya"))
	// A raw character keeps the next vowel isolated
	assert.Equal(t, []string{"1", "~a"}, conv.Syllables("1a"))
	assert.Equal(t, []string{"~AOM"}, conv.Syllables("AOM"))
	assert.Empty(t, conv.Syllables(""))
}

func TestIdentityFallback(t *testing.T) {
	conv := MustConverter(LanguageConfig{
		Vowels:      `aa|a|i`,
		Consonants:  `k|z`,
		LetterCodes: map[string]string{"k": "K", "a": "", "*": "+"},
	})

	// "z" and "~i" have no code and come out as they went in
	assert.Equal(t, []string{"z", "*", "k", "a", "~i"}, conv.Syllables("zkai"))
	assert.Equal(t, "z+K~i", conv.Convert("zkai"))
}

func TestNewConverterBadPattern(t *testing.T) {
	_, err := NewConverter(LanguageConfig{Vowels: "a(", Consonants: "k"})
	assert.Error(t, err)

	assert.Panics(t, func() {
		MustConverter(LanguageConfig{Vowels: "a", Consonants: "[k"})
	})
}

func TestConverterConcurrent(t *testing.T) {
	conv := MustConverter(hindiConfig)

	var wg sync.WaitGroup
	results := make([]string, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = conv.Convert("namaste bhaarath")
		}(i)
	}
	wg.Wait()

	for _, result := range results {
		assert.Equal(t, "नमस्ते भारथ्", result)
	}
}
