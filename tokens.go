package ctok

import (
	"math/big"
	"strconv"
	"strings"
)

// Position represents a position in the original source code.
// Line and Column are 1-based; Start is the byte offset into the input.
type Position struct {
	Line   int // 1-based
	Column int // 1-based, character column
	Start  int // byte index into input (0-based)
}

// Span represents a range in the source: [Start, End).
type Span struct {
	// Byte offsets into the original input slice.
	// End is exclusive: input[Start:End] is the lexeme.
	Start int
	End   int

	// 1-based line and column of the *start* of the span.
	Line   int
	Column int
}

// Text is a helper to return the original text of the span.
func (s Span) Text(input []byte) []byte {
	return input[s.Start:s.End]
}

// spanFromPosition creates a zero-width Span at a position.
func spanFromPosition(pos Position) Span {
	return Span{
		Start:  pos.Start,
		End:    pos.Start,
		Line:   pos.Line,
		Column: pos.Column,
	}
}

// Literal is the tagged value of a literal token.
// Int stores a signed value range-checked to 128 bits by the lexer.
type Literal struct {
	Kind  LitKind
	Int   *big.Int
	Float float64
	Str   string
}

func IntLiteral(v *big.Int) Literal  { return Literal{Kind: LitInt, Int: v} }
func FloatLiteral(v float64) Literal { return Literal{Kind: LitFloat, Float: v} }
func StrLiteral(v string) Literal    { return Literal{Kind: LitStr, Str: v} }

func (l Literal) String() string {
	switch l.Kind {
	case LitInt:
		if l.Int == nil {
			return "0"
		}
		return l.Int.String()
	case LitFloat:
		return strconv.FormatFloat(l.Float, 'g', -1, 64)
	case LitStr:
		return l.Str
	}
	return ""
}

// TokenTree is one node of the token tree: an identifier, a literal, a
// punctuator, or a delimited group owning a nested stream.
//
// Only the fields selected by Kind are meaningful. Groups are acyclic by
// construction: a group's stream is built from the tokens lexically between
// its own open and close markers.
type TokenTree struct {
	Kind  Kind
	Ident string       // KindIdent
	Lit   Literal      // KindLit
	Punct Punct        // KindPunct
	Delim Delim        // KindGroup
	Group *TokenStream // KindGroup
}

func IdentTree(name string) TokenTree { return TokenTree{Kind: KindIdent, Ident: name} }
func LitTree(lit Literal) TokenTree   { return TokenTree{Kind: KindLit, Lit: lit} }
func PunctTree(p Punct) TokenTree     { return TokenTree{Kind: KindPunct, Punct: p} }

func GroupTree(delim Delim, stream *TokenStream) TokenTree {
	if stream == nil {
		stream = NewTokenStream()
	}
	return TokenTree{Kind: KindGroup, Delim: delim, Group: stream}
}

// String renders the canonical textual form of the node. It is lossy with
// respect to the original spacing: groups render with a single space after
// the open delimiter and before the close delimiter.
func (tt TokenTree) String() string {
	switch tt.Kind {
	case KindIdent:
		return tt.Ident
	case KindLit:
		return tt.Lit.String()
	case KindPunct:
		return tt.Punct.String()
	case KindGroup:
		inner := strings.TrimSpace(tt.Group.String())
		if inner == "" {
			return tt.Delim.String() + " " + tt.Delim.Close()
		}
		return tt.Delim.String() + " " + inner + " " + tt.Delim.Close()
	}
	return ""
}

// TokenCell pairs a token-tree node with an optional source position.
// Pos is nil for synthesized tokens (quasi-quotation output); it is
// assigned at creation time and never mutated afterwards.
type TokenCell struct {
	Pos  *Position
	Tree TokenTree
}

// TokenStream is an owned, ordered sequence of positioned token cells.
// The tree is immutable once built; cursors are cheap read-only views
// over it, so multiple cursors may coexist without coordination.
type TokenStream struct {
	cells []TokenCell
}

// NewTokenStream returns an empty stream, ready for emission.
func NewTokenStream() *TokenStream {
	return &TokenStream{}
}

// Len is the number of cells at this level of the tree.
func (ts *TokenStream) Len() int {
	if ts == nil {
		return 0
	}
	return len(ts.cells)
}

// At returns the i'th cell, or false when out of range.
func (ts *TokenStream) At(i int) (TokenCell, bool) {
	if ts == nil || i < 0 || i >= len(ts.cells) {
		return TokenCell{}, false
	}
	return ts.cells[i], true
}

// ExtendOne appends a single synthesized node to the stream.
func (ts *TokenStream) ExtendOne(tt TokenTree) {
	ts.cells = append(ts.cells, TokenCell{Tree: tt})
}

// Extend appends every cell of other to the stream.
func (ts *TokenStream) Extend(other *TokenStream) {
	if other == nil {
		return
	}
	ts.cells = append(ts.cells, other.cells...)
}

// Cursor returns a read-only scan position at the start of the stream.
func (ts *TokenStream) Cursor() Cursor {
	return Cursor{stream: ts}
}

// Parse runs v's parse rule over the stream from the beginning.
func (ts *TokenStream) Parse(v Parser) error {
	p := &ParseStream{cur: ts.Cursor()}
	return v.Parse(p)
}

// String renders the canonical textual form of the stream: the cells'
// renderings joined by single spaces.
func (ts *TokenStream) String() string {
	if ts == nil {
		return ""
	}
	var sb strings.Builder
	for i, cell := range ts.cells {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(cell.Tree.String())
	}
	return sb.String()
}
