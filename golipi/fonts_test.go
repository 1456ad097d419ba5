package golipi

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertNepaliFont(t *testing.T) {
	assert.Equal(t, "", ConvertNepaliFont("", FontUnicode, FontPreeti))

	assert.Equal(t, "nFm{,", ConvertNepaliFont("नेपाल", FontUnicode, FontPreeti))
	assert.Equal(t, "कतढ", ConvertNepaliFont("abc", FontPreeti, FontUnicode))
}

func TestConvertNepaliFontPlaceholder(t *testing.T) {
	assert.Equal(t,
		"[cv-nepali-fancy conversion not yet implemented]\nनेपाल",
		ConvertNepaliFont("नेपाल", FontUnicode, FontCVNepaliFancy))

	assert.Equal(t,
		"[anuradha conversion not yet implemented]\nabc",
		ConvertNepaliFont("abc", FontAnuradha, FontUnicode))

	// Unicode to Unicode has no converter either
	assert.Equal(t,
		"[unicode conversion not yet implemented]\nनेपाल",
		ConvertNepaliFont("नेपाल", FontUnicode, FontUnicode))
}

func TestConvertNepaliFontTwoHops(t *testing.T) {
	assert.Equal(t,
		"[bahun conversion not yet implemented]\nङर्\u200dजघथ",
		ConvertNepaliFont("g]kfn", FontPreeti, FontBahun))

	// The placeholder of the first hop goes through the second one
	assert.Equal(t,
		"[bahun conversion not yet implemented]\nabc",
		ConvertNepaliFont("abc", FontBahun, FontPreeti))

	assert.Equal(t, UnicodeToPreeti(PreetiToUnicode("abc")), ConvertNepaliFont("abc", FontPreeti, FontPreeti))
}

func TestConvertFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "golipi")
	defer teardown()

	out, err := ConvertFont("fgUnh", FontKrutiDev, FontUnicode)
	require.NoError(t, err)
	assert.Equal(t, "हिन्दी", out)

	out, err = ConvertFont("हिन्दी", FontUnicode, FontKrutiDev)
	require.NoError(t, err)
	assert.Equal(t, "fgUnh", out)

	// Kruti Dev to Chanakya through Unicode
	out, err = ConvertFont("fLr", FontKrutiDev, FontChanakya)
	require.NoError(t, err)
	assert.Equal(t, "dèÌ", out)

	out, err = ConvertFont("çâ÷Ì", FontChanakya, FontKrutiDev)
	require.NoError(t, err)
	assert.Equal(t, "fLr", out)

	out, err = ConvertFont("anything", FontChanakya, FontChanakya)
	require.NoError(t, err)
	assert.Equal(t, "anything", out)
}

func TestConvertFontErrors(t *testing.T) {
	out, err := ConvertFont("abc", FontBahun, FontUnicode)
	assert.True(t, errors.Is(err, ErrFontNotImplemented))
	assert.Equal(t, "[bahun conversion not yet implemented]\nabc", out)

	out, err = ConvertFont("fgUnh", FontKrutiDev, FontCVNepaliFancy)
	assert.ErrorIs(t, err, ErrFontNotImplemented)
	assert.Equal(t, "[cv-nepali-fancy conversion not yet implemented]\nहिन्दी", out)

	_, err = ConvertFont("abc", Font("wingdings"), FontUnicode)
	assert.ErrorIs(t, err, ErrUnknownFont)
}

func TestFonts(t *testing.T) {
	fonts := Fonts()
	require.NotEmpty(t, fonts)
	assert.Equal(t, FontUnicode, fonts[0].ID)

	implemented := map[Font]bool{}
	for _, font := range fonts {
		if font.Implemented {
			implemented[font.ID] = true
		}
		if font.Implemented && font.ID != FontUnicode {
			_, ok := LookupFont(font.ID)
			assert.True(t, ok, "no converter for %s", font.ID)
		}
	}
	assert.Equal(t, map[Font]bool{FontUnicode: true, FontKrutiDev: true, FontChanakya: true, FontPreeti: true}, implemented)

	// Callers get a copy
	fonts[0].Label = "changed"
	assert.NotEqual(t, "changed", Fonts()[0].Label)
}

func TestLookupFont(t *testing.T) {
	conv, ok := LookupFont(FontKrutiDev)
	require.True(t, ok)
	assert.Equal(t, "हिन्दी", conv.ToUnicode("fgUnh"))
	assert.Equal(t, "fgUnh", conv.FromUnicode("हिन्दी"))

	_, ok = LookupFont(FontAnuradha)
	assert.False(t, ok)
	_, ok = LookupFont(FontUnicode)
	assert.False(t, ok)
}
