// Package tokenizer turns raw file text into normalized word tokens.
package tokenizer

import (
	"regexp"
	"strings"
)

var (
	// Everything except ASCII letters, digits, whitespace, apostrophes and
	// closing parentheses is a separator.
	separatorPattern = regexp.MustCompile(`[^a-zA-Z\d\s'\)]`)

	// Same as separatorPattern, but ')' is a separator like every other bracket.
	uniformSeparatorPattern = regexp.MustCompile(`[^a-zA-Z\d\s']`)
)

// Tokenize normalizes text and splits it on runs of whitespace.
// Tokens keep their left-to-right order and are never empty.
func Tokenize(text string) []string {
	return strings.Fields(separatorPattern.ReplaceAllString(text, " "))
}

// TokenizeUniform is Tokenize with all bracket characters treated as separators.
func TokenizeUniform(text string) []string {
	return strings.Fields(uniformSeparatorPattern.ReplaceAllString(text, " "))
}
