package golipi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRuleTableOrder(t *testing.T) {
	// The conjunct must be rewritten before its parts
	table := newRuleTable([]string{"kS", "k", "S"}, []string{"क्ष", "क", "स"})
	assert.Equal(t, "क्षक्ष क स", table.Apply("kSkS k S"))

	reversed := newRuleTable([]string{"k", "S", "kS"}, []string{"क", "स", "क्ष"})
	assert.Equal(t, "कस", reversed.Apply("kS"))
}

func TestNewRuleTableDropsUnpaired(t *testing.T) {
	table := newRuleTable([]string{"a", "b", "c"}, []string{"A"})
	assert.Equal(t, RuleTable{{"a", "A"}}, table)
	assert.Equal(t, "Abc", table.Apply("abc"))
}

func TestRuleTableSkipsEmptyMatch(t *testing.T) {
	table := RuleTable{{"", "X"}, {"a", "b"}}
	assert.Equal(t, "bbc", table.Apply("abc"))
}

func TestGlyphBuffer(t *testing.T) {
	buf := newGlyphBuffer("कि्क")

	assert.Equal(t, 1, buf.index("ि"))
	assert.Equal(t, -1, buf.indexFrom("ि", 2))
	assert.Equal(t, 1, buf.index("ि्"))
	assert.Equal(t, -1, buf.index(""))
	assert.True(t, buf.hasAt("्क", 2))
	assert.False(t, buf.hasAt("्क", 3))

	assert.Equal(t, "क", buf.at(0))
	assert.Equal(t, "", buf.at(-1))
	assert.Equal(t, "", buf.at(4))

	assert.Equal(t, "कXYक", buf.splice(1, 3, "XY").String())
	// splice copies
	assert.Equal(t, "कि्क", buf.String())
}
