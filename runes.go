// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package ctok

import "unicode"

const (
	// CR and LF are control characters, respectively coded 0x0D (13 decimal) and 0x0A (10 decimal).
	// Windows uses CR + LF, Unix/Mac uses LF, Classic Mac uses CR.
	// This package doesn't support Classic Mac; the lexer normalizes CR + LF
	// into a single LF rune.

	// CR is 0x0D or '\r'
	CR rune = rune(13)

	// LF is 0x0A or '\n'
	LF rune = rune(10)

	// EOF is a sentinel for end of input
	EOF rune = rune(-1)
)

// isIdentStart reports whether ch can begin an identifier run.
// Identifier runs start on alphabetic characters only; underscore may
// continue a run but not start one.
func isIdentStart(ch rune) bool {
	return unicode.IsLetter(ch)
}

// isIdentCont reports whether ch can continue an identifier run.
func isIdentCont(ch rune) bool {
	return unicode.IsLetter(ch) || unicode.IsDigit(ch) || ch == '_'
}

// isNumberStart reports whether ch can begin a numeric literal run.
func isNumberStart(ch rune) bool {
	return unicode.IsDigit(ch)
}

// isNumberCont reports whether ch can continue a numeric literal run.
// Dots are accepted into the run; the scanner decides afterwards whether
// the run is an integer, a float, or malformed.
func isNumberCont(ch rune) bool {
	return unicode.IsDigit(ch) || ch == '.'
}

func isspace(ch rune) bool {
	return unicode.IsSpace(ch)
}

// openDelim maps an opening bracket rune to its delimiter kind.
func openDelim(ch rune) (Delim, bool) {
	switch ch {
	case '(':
		return Paren, true
	case '{':
		return Brace, true
	case '[':
		return Bracket, true
	}
	return Paren, false
}

// closeDelim maps a closing bracket rune to its delimiter kind.
func closeDelim(ch rune) (Delim, bool) {
	switch ch {
	case ')':
		return Paren, true
	case '}':
		return Brace, true
	case ']':
		return Bracket, true
	}
	return Paren, false
}
