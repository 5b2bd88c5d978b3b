// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package ctok

import "fmt"

// Token is the terminal-marker capability shared by the keyword,
// punctuator, and delimiter families: a non-consuming test against a
// cursor plus a display form for diagnostics. Grammar rules match
// terminals through this interface instead of naming variants directly.
type Token interface {
	Peek(c Cursor) bool
	Display() string
}

// Parser is the parse contract: inspect the stream and either consume
// what the rule needs or fail without consuming. Client syntax types
// implement Parser on a pointer receiver and fill themselves in.
type Parser interface {
	Parse(ps *ParseStream) error
}

// ParseStream is the mutable scan state threaded through parse rules.
// All consumption funnels through Skip and Step; everything else is
// read-only, which is what makes alternation safe to express as "try
// one rule, then the other".
type ParseStream struct {
	cur Cursor
}

// Cursor returns the current scan position.
func (ps *ParseStream) Cursor() Cursor {
	return ps.cur
}

// Skip advances past the current node.
func (ps *ParseStream) Skip() {
	ps.cur = ps.cur.Next()
}

// Step runs f as an atomic speculative advance. f inspects the given
// cursor and returns the position to commit to; if f fails, the stream
// is left exactly as it was, with no partial consumption.
func (ps *ParseStream) Step(f func(c Cursor) (Cursor, error)) error {
	next, err := f(ps.cur)
	if err != nil {
		return err
	}
	ps.cur = next
	return nil
}

// Error builds a parse error at the current position.
func (ps *ParseStream) Error(msg string) *Error {
	return NewError(msg, nil, ps.cur.Pos())
}

// WrapError layers msg over err at the current position, for grammar
// rules that want to add context while keeping the cause chained.
func (ps *ParseStream) WrapError(msg string, err error) *Error {
	return Wrap(msg, err, ps.cur.Pos())
}

// parseToken consumes a single terminal marker or fails without
// consuming, with the canonical expected/got diagnostic.
func parseToken(ps *ParseStream, tok Token) error {
	if tok.Peek(ps.Cursor()) {
		ps.Skip()
		return nil
	}
	got := "end of buffer"
	if tt, ok := ps.Cursor().TokenTree(); ok {
		got = tt.String()
	}
	return ps.Error(fmt.Sprintf("expected token '%s', got '%s'", tok.Display(), got))
}

// Peek reports whether the current node satisfies the marker without
// consuming anything.
func (ps *ParseStream) Peek(tok Token) bool {
	return tok.Peek(ps.cur)
}
