// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package ctok

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"unicode/utf8"
)

// Diagnostic represents a lexer or parser error/warning with a span in
// the original source.
type Diagnostic struct {
	Severity slog.Level // Error, Warning, Info
	Message  string     // "mismatched delimiter: expected ')', got ']'"
	Span     Span       // where in the file it occurred
	Notes    []string   // optional additional help messages
}

// DiagnosticFromError builds an error-severity diagnostic from a lex or
// parse error. Chained parent errors become notes, outermost first.
func DiagnosticFromError(err *Error) Diagnostic {
	diag := Diagnostic{
		Severity: slog.LevelError,
		Message:  err.Message(),
	}
	if pos := err.Position(); pos != nil {
		diag.Span = spanFromPosition(*pos)
	}
	for cause := err.Unwrap(); cause != nil; {
		diag.Notes = append(diag.Notes, cause.Error())
		parent, ok := cause.(interface{ Unwrap() error })
		if !ok {
			break
		}
		cause = parent.Unwrap()
	}
	return diag
}

// PrintDiagnostic writes the diagnostic with the offending source line
// and a caret underline.
func PrintDiagnostic(w io.Writer, diag Diagnostic, filename string, src []byte) {
	// Header: file:line:column: error: message
	span := diag.Span
	_, _ = fmt.Fprintf(w, "%s:%d:%d: %s: %s\n",
		filename, span.Line, span.Column,
		diag.Severity.String(), diag.Message)

	line := findLine(src, span.Start, span.End)
	_, _ = fmt.Fprintf(w, "    %s\n", line)

	// caret underline
	caretCount := runeColumnOffset(span.Column-1, line)
	_, _ = fmt.Fprintf(w, "    %s^\n", strings.Repeat(" ", caretCount))

	for _, note := range diag.Notes {
		_, _ = fmt.Fprintf(w, "    note: %s\n", note)
	}
}

// findLine returns the line containing the start byte.
// It searches backwards from start to find the start of the line,
// then forward until it hits end of line or end of input.
// The returned line does not include the new-line.
func findLine(src []byte, start, end int) []byte {
	if start >= len(src) {
		return []byte{}
	}
	if end > len(src) {
		end = len(src)
	}
	if end < start {
		end = start
	}

	lineStart := 0
	for i := start; i >= 0 && i < len(src); i-- {
		if src[i] == '\n' {
			lineStart = i + 1
			break
		}
	}

	lineEnd := len(src)
	for i := lineStart; i < len(src); i++ {
		if src[i] == '\n' {
			lineEnd = i
			break
		}
	}

	return src[lineStart:lineEnd]
}

// runeColumnOffset converts a 0-based rune column into a byte offset
// within the line, so the caret lines up under multi-byte runes.
func runeColumnOffset(column int, b []byte) (offset int) {
	for column > 0 && len(b) != 0 {
		// b is not empty, so DecodeRune will always return a width of 1 or more
		_, w := utf8.DecodeRune(b)
		offset += w
		b = b[w:]
		column--
	}
	return offset
}
