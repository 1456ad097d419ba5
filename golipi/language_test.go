package golipi

import (
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLanguages(t *testing.T) {
	langs := Languages()
	require.Len(t, langs, 9)

	ids := make([]Language, len(langs))
	for i, lang := range langs {
		ids[i] = lang.ID
	}
	assert.Equal(t, []Language{Hindi, Bengali, Tamil, Gujarati, Kannada, Malayalam, Oriya, Punjabi, Telugu}, ids)
	assert.Equal(t, "हिन्दी", langs[0].NativeName)
	assert.Equal(t, "namaste bhaarath", langs[0].Placeholder)
}

func TestLookupLanguage(t *testing.T) {
	cases := map[string]Language{
		"hindi":     Hindi,
		"Malayalam": Malayalam,
		" tamil ":   Tamil,
		"hi":        Hindi,
		"ml-IN":     Malayalam,
		"pa-Guru":   Punjabi,
		"or":        Oriya,
		"te":        Telugu,
	}

	for key, expected := range cases {
		lang, err := LookupLanguage(key)
		require.NoError(t, err, "key %q", key)
		assert.Equal(t, expected, lang.ID, "key %q", key)
	}
}

func TestLookupLanguageUnknown(t *testing.T) {
	for _, key := range []string{"klingon", "en", "", "fr-FR"} {
		_, err := LookupLanguage(key)
		assert.ErrorIs(t, err, ErrUnknownLanguage, "key %q", key)
	}
}

func TestUnicodeBlock(t *testing.T) {
	for _, lang := range Languages() {
		block := lang.UnicodeBlock()
		for _, r := range lang.NativeName {
			if r == 0x200C || r == 0x200D {
				continue
			}
			assert.True(t, unicode.Is(block, r), "%s: %q outside its block", lang.ID, r)
		}

		out, err := Transliterate("ka", lang.ID)
		require.NoError(t, err)
		for _, r := range out {
			assert.True(t, unicode.Is(block, r), "%s: %q outside its block", lang.ID, r)
		}
	}

	assert.False(t, unicode.Is(LanguageDetails{}.UnicodeBlock(), 'क'))
}

func TestValidate(t *testing.T) {
	for _, lang := range Languages() {
		assert.Empty(t, lang.Config.Validate(), "%s", lang.ID)
	}

	config := LanguageConfig{
		Vowels:      `aa|a|\|`,
		Consonants:  `k|kh`,
		LetterCodes: map[string]string{"~a": "A", "a": "", "k": "K", "~|": "|", "|": "|"},
	}
	assert.Equal(t, []string{"~aa", "aa", "kh", "*"}, config.Validate())
}
