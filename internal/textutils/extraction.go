// Package textutils provides the text helpers used to clean statement lines:
// Unicode normalization, title-casing and separator tokenization.
package textutils

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// NormalizeText composes the text to NFC and drops control characters, so
// that "Saúde" typed with a combining accent matches the precomposed form.
// Surrounding whitespace is left untouched.
func NormalizeText(text string) string {
	normed := norm.NFC.String(text)
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\t' && r != '\n' {
			return -1
		}
		return r
	}, normed)
}

// TitleCase upper-cases the first letter of every word and lower-cases the
// rest, using Portuguese casing rules. Runs of whitespace collapse to one
// space and the result is trimmed.
func TitleCase(text string) string {
	// A Caser keeps state between calls and must not be shared across
	// goroutines.
	caser := cases.Title(language.BrazilianPortuguese)
	return caser.String(CollapseSpaces(text))
}

// Capitalize upper-cases the first letter and lower-cases the rest of text.
func Capitalize(text string) string {
	if text == "" {
		return ""
	}
	first, size := utf8.DecodeRuneInString(text)
	return string(unicode.ToUpper(first)) + strings.ToLower(text[size:])
}

// CollapseSpaces trims text and replaces inner whitespace runs by one space.
func CollapseSpaces(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// RuneLen returns the number of characters in text.
func RuneLen(text string) int {
	return utf8.RuneCountInString(text)
}

// IsSeparator reports whether r splits merchant tokens in a statement line.
func IsSeparator(r rune) bool {
	return r == '*' || r == '-' || r == ' '
}

// SplitSeparators splits text on '*', '-' and ' ', dropping empty tokens.
func SplitSeparators(text string) []string {
	return strings.FieldsFunc(text, IsSeparator)
}
