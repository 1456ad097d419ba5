package golipi

/**
 * golipi - Indian language script and legacy font converters
 * Copyright Subin Siby <mail at subinsb (.) com>, 2021
 * Licensed under AGPL-3.0-only. See LICENSE.txt
 */

import (
	"errors"
	"fmt"
)

// Font identifies a text encoding: Unicode or one of the legacy glyph fonts
type Font string

const (
	FontUnicode       Font = "unicode"
	FontPreeti        Font = "preeti"
	FontKrutiDev      Font = "krutidev"
	FontChanakya      Font = "chanakya"
	FontCVNepaliFancy Font = "cv-nepali-fancy"
	FontAnuradha      Font = "anuradha"
	FontBahun         Font = "bahun"
)

// ErrFontNotImplemented is returned for fonts that are known but have no
// conversion tables
var ErrFontNotImplemented = errors.New("font conversion not implemented")

// ErrUnknownFont is returned for fonts golipi has never heard of
var ErrUnknownFont = errors.New("unknown font")

// FontConverter converts between a legacy glyph font and Unicode
type FontConverter interface {
	ToUnicode(text string) string
	FromUnicode(text string) string
}

type glyphFont struct {
	toUnicode   func(string) string
	fromUnicode func(string) string
}

func (f glyphFont) ToUnicode(text string) string {
	return f.toUnicode(text)
}

func (f glyphFont) FromUnicode(text string) string {
	return f.fromUnicode(text)
}

var glyphFonts = map[Font]FontConverter{
	FontKrutiDev: glyphFont{KrutiDevToUnicode, UnicodeToKrutiDev},
	FontChanakya: glyphFont{ChanakyaToUnicode, UnicodeToChanakya},
	FontPreeti:   glyphFont{PreetiToUnicode, UnicodeToPreeti},
}

// LookupFont returns the converter of an implemented legacy font
func LookupFont(font Font) (FontConverter, bool) {
	conv, ok := glyphFonts[font]
	return conv, ok
}

// FontDetails describes a font for display
type FontDetails struct {
	ID          Font
	Label       string
	Nepali      bool
	Implemented bool
}

var fontList = []FontDetails{
	{FontUnicode, "Unicode (Mangal, Nirmala UI)", true, true},
	{FontKrutiDev, "Kruti Dev", false, true},
	{FontChanakya, "Chanakya", false, true},
	{FontAnuradha, "Anuradha", true, false},
	{FontBahun, "Bahun", true, false},
	{"bahunbad", "Bahunbad", true, false},
	{"chandrodaya", "Chandrodaya", true, false},
	{"cv-maya", "CV Maya", true, false},
	{FontCVNepaliFancy, "CV Nepali Fancy", true, false},
	{"dev", "Dev", true, false},
	{"gadha", "Gadha", true, false},
	{"himal", "Himal", true, false},
	{"himali", "Himali", true, false},
	{"jagahimali", "Jagahimali", true, false},
	{"maiya", "Maiya", true, false},
	{"narayan", "Narayan", true, false},
	{"navjeevan", "Navjeevan", true, false},
	{"nepali", "Nepali", true, false},
	{"neptimes", "Neptimes", true, false},
	{"pagal", "Pagal", true, false},
	{"pagali", "Pagali", true, false},
	{"pari", "Pari", true, false},
	{FontPreeti, "Preeti", true, true},
	{"priyatam", "Priyatam", true, false},
	{"punmaya", "Punmaya", true, false},
	{"ramsham", "Ramsham", true, false},
	{"ritu", "Ritu", true, false},
	{"rukmini", "Rukmini", true, false},
	{"sarashoti", "Sarashoti", true, false},
	{"shangrila-hybrid", "Shangrila Hybrid", true, false},
	{"shangrila-numeric", "Shangrila Numeric", true, false},
	{"suryodaya", "Suryodaya", true, false},
}

// Fonts lists every known font, Unicode first
func Fonts() []FontDetails {
	fonts := make([]FontDetails, len(fontList))
	copy(fonts, fontList)
	return fonts
}

func knownFont(font Font) bool {
	for _, details := range fontList {
		if details.ID == font {
			return true
		}
	}
	return false
}

func notImplemented(font Font, text string) string {
	return fmt.Sprintf(LIPI_NOT_IMPLEMENTED_FORMAT, font, text)
}

// ConvertNepaliFont converts between Unicode and the Nepali legacy fonts.
// Only Preeti has conversion tables. Any other font gives back the input
// under a "not yet implemented" line instead of an error. Conversion
// between two legacy fonts goes through Unicode.
func ConvertNepaliFont(text string, from Font, to Font) string {
	if text == "" {
		return ""
	}

	if from == FontUnicode {
		if to == FontPreeti {
			return UnicodeToPreeti(text)
		}
		return notImplemented(to, text)
	}

	if to == FontUnicode {
		if from == FontPreeti {
			return PreetiToUnicode(text)
		}
		return notImplemented(from, text)
	}

	unicodeText := ConvertNepaliFont(text, from, FontUnicode)
	return ConvertNepaliFont(unicodeText, FontUnicode, to)
}

// ConvertFont converts text between any two fonts with Unicode as the hub.
// For a font without tables the error wraps ErrFontNotImplemented and the
// returned string is the placeholder ConvertNepaliFont would show.
func ConvertFont(text string, from Font, to Font) (string, error) {
	for _, font := range []Font{from, to} {
		if !knownFont(font) {
			return "", fmt.Errorf("%w: %s", ErrUnknownFont, font)
		}
	}

	if from == to || text == "" {
		return text, nil
	}

	unicodeText := text
	if from != FontUnicode {
		conv, ok := LookupFont(from)
		if !ok {
			return notImplemented(from, text), fmt.Errorf("%w: %s", ErrFontNotImplemented, from)
		}
		unicodeText = conv.ToUnicode(text)
	}

	if to == FontUnicode {
		return unicodeText, nil
	}

	conv, ok := LookupFont(to)
	if !ok {
		return notImplemented(to, unicodeText), fmt.Errorf("%w: %s", ErrFontNotImplemented, to)
	}

	tracer().Debugf("font %s => %s via unicode", from, to)

	return conv.FromUnicode(unicodeText), nil
}
