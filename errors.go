// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package ctok

import "fmt"

// Error is the error type for both lexing and parsing failures. It
// carries the position of the offending token and an optional parent
// error for context layering. Failures are always returned, never
// raised as panics; a failed Tokenize or Parse yields no partial result.
type Error struct {
	msg    string
	parent error
	pos    *Position
}

// NewError creates an error with an optional parent and position.
func NewError(msg string, parent error, pos *Position) *Error {
	return &Error{msg: msg, parent: parent, pos: pos}
}

func (e *Error) Error() string {
	if e.pos != nil {
		return fmt.Sprintf("%d:%d: %s", e.pos.Line, e.pos.Column, e.msg)
	}
	return e.msg
}

// Message returns the message without the position prefix.
func (e *Error) Message() string {
	return e.msg
}

// Position returns the position of the offending token, or nil when the
// error refers to end of input on a synthesized stream.
func (e *Error) Position() *Position {
	return e.pos
}

// Unwrap returns the chained parent error, if any.
func (e *Error) Unwrap() error {
	return e.parent
}

// Wrap layers a new message over err at pos, keeping err reachable
// through errors.Is and errors.As.
func Wrap(msg string, err error, pos *Position) *Error {
	return &Error{msg: msg, parent: err, pos: pos}
}
