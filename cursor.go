// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package ctok

// Cursor is a read-only scan position over a token stream. Cursors are
// cheap, copyable values: every accessor returns a new cursor instead
// of mutating the receiver, and the underlying stream is never changed.
//
// Invariants:
//   - peek-style accessors (TokenTree, Ident, ...) never advance; the
//     cursor they return alongside the value is the position *after*
//     the inspected node, for the caller to adopt or discard.
//   - Done() reports end of this stream level; a cursor never walks out
//     of the group it was created in.
type Cursor struct {
	stream *TokenStream
	index  int
}

// Done reports whether the cursor is past the last node of its stream.
func (c Cursor) Done() bool {
	return c.stream.Len() <= c.index
}

// Next returns the cursor advanced past the current node.
func (c Cursor) Next() Cursor {
	if c.Done() {
		return c
	}
	return Cursor{stream: c.stream, index: c.index + 1}
}

// Pos returns the source position of the current node, or nil at end of
// stream or on synthesized nodes.
func (c Cursor) Pos() *Position {
	cell, ok := c.stream.At(c.index)
	if !ok {
		return nil
	}
	return cell.Pos
}

// TokenTree returns the current node without advancing.
func (c Cursor) TokenTree() (TokenTree, bool) {
	cell, ok := c.stream.At(c.index)
	if !ok {
		return TokenTree{}, false
	}
	return cell.Tree, true
}

// Ident returns the current node's identifier text and the cursor past
// it, when the node is an identifier.
func (c Cursor) Ident() (string, Cursor, bool) {
	tt, ok := c.TokenTree()
	if !ok || tt.Kind != KindIdent {
		return "", c, false
	}
	return tt.Ident, c.Next(), true
}

// Lit returns the current node's literal value and the cursor past it,
// when the node is a literal.
func (c Cursor) Lit() (Literal, Cursor, bool) {
	tt, ok := c.TokenTree()
	if !ok || tt.Kind != KindLit {
		return Literal{}, c, false
	}
	return tt.Lit, c.Next(), true
}

// Punct returns the current node's punctuator and the cursor past it,
// when the node is a punctuator.
func (c Cursor) Punct() (Punct, Cursor, bool) {
	tt, ok := c.TokenTree()
	if !ok || tt.Kind != KindPunct {
		return 0, c, false
	}
	return tt.Punct, c.Next(), true
}

// Delim returns the current node's delimiter kind and the cursor past
// it, when the node is a group.
func (c Cursor) Delim() (Delim, Cursor, bool) {
	tt, ok := c.TokenTree()
	if !ok || tt.Kind != KindGroup {
		return 0, c, false
	}
	return tt.Delim, c.Next(), true
}

// Group returns the nested stream of the current node and the cursor
// past it, when the node is a group of the given delimiter kind.
func (c Cursor) Group(d Delim) (*TokenStream, Cursor, bool) {
	tt, ok := c.TokenTree()
	if !ok || tt.Kind != KindGroup || tt.Delim != d {
		return nil, c, false
	}
	return tt.Group, c.Next(), true
}
