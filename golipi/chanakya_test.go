package golipi

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestChanakyaToUnicode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "golipi")
	defer teardown()

	assert.Equal(t, "", ChanakyaToUnicode(""))
	assert.Equal(t, "कि", ChanakyaToUnicode("ç·¤"))
	assert.Equal(t, "नि", ChanakyaToUnicode("çÙ"))
	assert.Equal(t, "मीर", ChanakyaToUnicode("×èÚ"))
	assert.Equal(t, "कित कोत", ChanakyaToUnicode("ç·¤Ì ·¤ôÌ"))
}

func TestChanakyaSignIChain(t *testing.T) {
	// The i sign moves past every halant joined consonant
	assert.Equal(t, "स्ति", ChanakyaToUnicode("çâ÷Ì"))
	assert.Equal(t, "स्त्मि", ChanakyaToUnicode("çâ÷Ì÷×"))

	// Trailing halant with nothing after it
	assert.Equal(t, "स्ि", ChanakyaToUnicode("çâ÷"))
	// Sign at the end of the text
	assert.Equal(t, "ि", ChanakyaToUnicode("ç"))
}

func TestChanakyaRephAnusvara(t *testing.T) {
	assert.Equal(t, "üं", ChanakyaToUnicode("Z"))
	assert.Equal(t, "कüं", ChanakyaToUnicode("·¤Z"))
}

func TestUnicodeToChanakya(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "golipi")
	defer teardown()

	assert.Equal(t, "", UnicodeToChanakya(""))
	assert.Equal(t, "·¤×Ü", UnicodeToChanakya("कमल"))
	assert.Equal(t, "d·¤", UnicodeToChanakya("कि"))
	assert.Equal(t, "d", UnicodeToChanakya("ि"))
	assert.Equal(t, "dèÌ", UnicodeToChanakya("स्ति"))
	assert.Equal(t, "dèˆ×", UnicodeToChanakya("स्त्मि"))
}

func TestUnicodeToChanakyaUnpairedDigits(t *testing.T) {
	// Digits without a partner glyph are left alone
	for _, digit := range []string{"2", "3", "9"} {
		assert.Equal(t, digit, UnicodeToChanakya(digit))
	}
	assert.Equal(t, "}", UnicodeToChanakya("0"))
}
