package golipi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumericCharRefs(t *testing.T) {
	assert.Equal(t, "&#2344;&#2350;&#2360;&#2381;&#2340;&#2375;", NumericCharRefs("नमस्ते"))
	assert.Equal(t, "a &#2325; b", NumericCharRefs("a क b"))
	// Outside the BMP every surrogate is written out
	assert.Equal(t, "&#55349;&#56632;", NumericCharRefs("\U0001D538"))
	assert.Equal(t, "", NumericCharRefs(""))
}

func TestVowelExamples(t *testing.T) {
	examples := VowelExamples(hindiConfig)
	require.Len(t, examples, 15)
	assert.Equal(t, Example{"a", "अ"}, examples[0])
	assert.Equal(t, Example{"A, aa", "आ"}, examples[1])
	assert.Equal(t, Example{"H, :", "ः"}, examples[13])
	assert.Equal(t, Example{"|", "।"}, examples[14])

	// Tamil has no vocalic R
	tamil := VowelExamples(tamilConfig)
	assert.Len(t, tamil, 14)
	for _, example := range tamil {
		assert.NotEqual(t, "tR", example.Input)
	}

	assert.Empty(t, VowelExamples(LanguageConfig{}))
}

func TestConsonantExamples(t *testing.T) {
	examples := ConsonantExamples(MustConverter(hindiConfig), hindiConfig)
	require.Len(t, examples, 45)
	assert.Equal(t, Example{"k", "क"}, examples[0])
	assert.Equal(t, Example{"G", "ङ"}, examples[4])
	assert.Equal(t, Example{"L", "ळ"}, examples[44])

	// Tamil writes unaspirated letters for the aspirated spellings
	tamil := ConsonantExamples(MustConverter(tamilConfig), tamilConfig)
	assert.Equal(t, Example{"kh", "க"}, tamil[1])

	// Consonants the scheme does not know are dropped
	bare := LanguageConfig{Vowels: "a", Consonants: "k", LetterCodes: map[string]string{"k": "K", "a": ""}}
	assert.Equal(t, []Example{{"k", "K"}}, ConsonantExamples(MustConverter(bare), bare))
}

func TestDescribe(t *testing.T) {
	points := Describe("कि")
	require.Len(t, points, 2)
	assert.Equal(t, CodePoint{'क', "DEVANAGARI LETTER KA"}, points[0])
	assert.Equal(t, "U+093F DEVANAGARI VOWEL SIGN I", points[1].String())

	assert.Empty(t, Describe(""))
}

func TestAksharas(t *testing.T) {
	assert.Equal(t, []string{"कि", "ता", "ब"}, Aksharas("किताब"))
	assert.Equal(t, []string{"न", "म", "स"}, Aksharas("नमस"))
	assert.Empty(t, Aksharas(""))
}
