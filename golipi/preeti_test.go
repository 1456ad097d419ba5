package golipi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPreetiToUnicode(t *testing.T) {
	assert.Equal(t, "", PreetiToUnicode(""))
	assert.Equal(t, "१", PreetiToUnicode("!"))
	assert.Equal(t, "ज्ञ", PreetiToUnicode("="))
	assert.Equal(t, "कतढ", PreetiToUnicode("abc"))
	assert.Equal(t, "ङर्"+ZWJ+"जघथ", PreetiToUnicode("g]kfn"))
}

func TestUnicodeToPreeti(t *testing.T) {
	assert.Equal(t, "", UnicodeToPreeti(""))
	assert.Equal(t, "[", UnicodeToPreeti("क"))
	assert.Equal(t, "=", UnicodeToPreeti("ज्ञ"))
	assert.Equal(t, "Y", UnicodeToPreeti("त्र"))
	assert.Equal(t, "nFm{,", UnicodeToPreeti("नेपाल"))
}

func TestUnicodeToPreetiUnpaired(t *testing.T) {
	for _, text := range []string{"८", "९", "्"} {
		assert.Equal(t, text, UnicodeToPreeti(text))
	}
}
