/*
File    : hydrogen/lexer/lexer_utils.go
Package : lexer
*/
package lexer

import "unicode"

// isWhitespace reports whether c is whitespace as unicode.IsSpace defines
// it (space, tab, newline, carriage return, and the like).
func isWhitespace(c byte) bool {
	return unicode.IsSpace(rune(c))
}

// isDigit reports whether c is an ASCII decimal digit.
func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isAlpha reports whether c is an ASCII letter.
func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// isIdentStart reports whether c may begin an identifier or keyword.
func isIdentStart(c byte) bool {
	return isAlpha(c) || c == '_'
}

// isAccumulatorChar reports whether c continues the current accumulator
// run: letters, digits, and underscores all belong to a single lexeme
// under the spec's accumulator scheme, regardless of whether that lexeme
// turns out to be a keyword, identifier, or integer literal once flushed.
func isAccumulatorChar(c byte) bool {
	return isAlpha(c) || isDigit(c) || c == '_'
}

// isAllDigits reports whether every byte in s is an ASCII decimal digit.
// A non-empty accumulator that starts with a digit must satisfy this, or
// the lexeme is a malformed integer (spec.md §4.1, §7 category 1).
func isAllDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return len(s) > 0
}
