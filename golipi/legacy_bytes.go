package golipi

/**
 * golipi - Indian language script and legacy font converters
 * Copyright Subin Siby <mail at subinsb (.) com>, 2021
 * Licensed under AGPL-3.0-only. See LICENSE.txt
 */

import (
	"fmt"

	"golang.org/x/text/encoding/charmap"
)

// Glyph tables are written as the Windows-1252 characters of the font's
// byte values, which is how these documents show up in editors.

// DecodeLegacy reads the bytes of a legacy font document
func DecodeLegacy(data []byte) (string, error) {
	text, err := charmap.Windows1252.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("decoding legacy bytes: %w", err)
	}
	return string(text), nil
}

// EncodeLegacy writes glyph font text back as bytes. Text containing
// characters outside Windows-1252, like Devanagari, fails.
func EncodeLegacy(text string) ([]byte, error) {
	data, err := charmap.Windows1252.NewEncoder().Bytes([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("encoding legacy bytes: %w", err)
	}
	return data, nil
}
