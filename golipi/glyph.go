package golipi

/**
 * golipi - Indian language script and legacy font converters
 * Copyright Subin Siby <mail at subinsb (.) com>, 2021
 * Licensed under AGPL-3.0-only. See LICENSE.txt
 */

import (
	"strings"
)

// Rule replaces every occurrence of Match with Replacement
type Rule struct {
	Match       string
	Replacement string
}

// RuleTable is an ordered list of rewrite rules. Order is significant:
// a rule may rely on an earlier rule having already rewritten a longer
// glyph sequence that contains its Match.
type RuleTable []Rule

// newRuleTable pairs two authored glyph sequences index by index.
// A source glyph without a partner in the target sequence is dropped.
func newRuleTable(from []string, to []string) RuleTable {
	n := len(from)
	if len(to) < n {
		n = len(to)
	}

	table := make(RuleTable, n)
	for i := 0; i < n; i++ {
		table[i] = Rule{from[i], to[i]}
	}
	return table
}

// Apply runs every rule over the whole text, one rule after the other
func (table RuleTable) Apply(text string) string {
	for _, rule := range table {
		if rule.Match == "" {
			continue
		}
		text = strings.ReplaceAll(text, rule.Match, rule.Replacement)
	}
	return text
}

// glyphBuffer is an editable sequence of code points used by the
// positional passes that move vowel signs and reph marks around.
type glyphBuffer []rune

func newGlyphBuffer(text string) glyphBuffer {
	return glyphBuffer(text)
}

func (buf glyphBuffer) String() string {
	return string(buf)
}

// at returns the code point at i as a string, empty when out of range
func (buf glyphBuffer) at(i int) string {
	if i < 0 || i >= len(buf) {
		return ""
	}
	return string(buf[i])
}

// indexFrom finds needle at or after position from. Returns -1 if not found.
func (buf glyphBuffer) indexFrom(needle string, from int) int {
	if from < 0 {
		from = 0
	}
	n := []rune(needle)
	if len(n) == 0 {
		return -1
	}

	for i := from; i+len(n) <= len(buf); i++ {
		match := true
		for j := range n {
			if buf[i+j] != n[j] {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}

func (buf glyphBuffer) index(needle string) int {
	return buf.indexFrom(needle, 0)
}

// hasAt tells whether needle starts at position i
func (buf glyphBuffer) hasAt(needle string, i int) bool {
	n := []rune(needle)
	if i < 0 || i+len(n) > len(buf) {
		return false
	}
	for j := range n {
		if buf[i+j] != n[j] {
			return false
		}
	}
	return true
}

// splice replaces buf[start:end] with text and returns the new buffer
func (buf glyphBuffer) splice(start int, end int, text string) glyphBuffer {
	replacement := []rune(text)

	result := make(glyphBuffer, 0, len(buf)-(end-start)+len(replacement))
	result = append(result, buf[:start]...)
	result = append(result, replacement...)
	result = append(result, buf[end:]...)
	return result
}
