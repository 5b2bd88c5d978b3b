// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package ctok

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Lexer invariants and coordinate system
//
// The lexer treats input as an immutable UTF-8 byte slice.
//
// Fields:
//   input       - the original []byte
//   length      - len(input)
//
//   r           - the current rune, or EOF when we have read past the end.
//                 Line endings are normalized so that:
//                   * "\n"   (LF) stays "\n"
//                   * "\r\n" (CRLF) is seen as a single "\n" rune
//
//   posCurrRune - index into input of the first byte of r,
//                 or length when r == EOF.
//   posNextRune - index into input of the first byte of the *next* rune,
//                 or length when r == EOF.
//
// Invariants (must always hold):
//   0 <= posCurrRune <= posNextRune <= length
//
//   r == EOF  <=> posCurrRune == posNextRune == length
//
//   r != EOF  => posCurrRune < length && posNextRune > posCurrRune
//                and input[posCurrRune:posNextRune] encodes exactly r.
//
// Anchors and unit positions:
//
//   - setAnchor records (posCurrRune, line, column). It MUST be called
//     when r is the first rune of the unit, because a multi-rune unit
//     reports the position of its first rune, not its last.
//   - Scanners that produce a unit should:
//       1. Check that the current rune is a valid start for that unit.
//       2. Call setAnchor().
//       3. Repeatedly call advance() while r belongs to the unit. When
//          the loop stops, r is the first rune after the unit and
//          posCurrRune points at its first byte.
//       4. Slice the unit's text as input[anchorPos:posCurrRune].
//   - Whitespace is consumed and discarded; it produces no unit but
//     moves the anchor forward.

type lexer struct {
	name        string // name of the input source
	r           rune   // current rune
	line        int    // line number of current rune
	column      int    // column number of current rune
	posCurrRune int    // position of current rune
	posNextRune int    // position of next rune
	length      int    // length of input buffer
	input       []byte

	anchorPos    int
	anchorLine   int
	anchorColumn int

	floats bool

	// logging
	ctx        context.Context
	logger     *slog.Logger
	errorCount int
	unitCount  int
}

// unitKind classifies the flat, position-tagged units of the first lex
// phase. Group open/close markers exist only at this level; the tree
// builder folds them into nested Group nodes.
type unitKind int

const (
	unitIdent unitKind = iota
	unitLit
	unitPunct
	unitOpen
	unitClose
)

type unit struct {
	pos   Position
	kind  unitKind
	ident string
	lit   Literal
	punct Punct
	delim Delim
}

// Tokenize converts source text into a token tree: a flat scan over the
// characters followed by a fold of delimiter pairs into nested groups.
// A failed call yields no partial tree.
func Tokenize(input []byte, opts ...Option) (*TokenStream, error) {
	cfg := &config{
		ctx:    context.Background(),
		floats: true,
	}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	l := newLexer(cfg, input)
	units, err := l.scanAll()
	if err != nil {
		return nil, err
	}
	return buildTree(units)
}

func newLexer(cfg *config, input []byte) *lexer {
	l := &lexer{
		name:   cfg.name,
		input:  input,
		length: len(input),
		line:   1,
		column: 1,
		floats: cfg.floats,
		ctx:    cfg.ctx,
		logger: cfg.logger,
	}
	// read the first rune to initialize the lexer.
	l.loadRune(0)
	return l
}

// scanAll consumes the whole input, producing the flat unit sequence.
// Classification precedence: identifier run, numeric run, group open,
// group close, string literal, whitespace, punctuator.
func (l *lexer) scanAll() ([]unit, error) {
	var units []unit
	for !l.iseof() {
		if isspace(l.peekChar()) {
			for isspace(l.peekChar()) {
				l.advance()
			}
			continue
		}

		l.setAnchor()
		ch := l.peekChar()

		switch {
		case isIdentStart(ch):
			for isIdentCont(l.peekChar()) {
				l.advance()
			}
			units = append(units, unit{
				pos:   l.anchor(),
				kind:  unitIdent,
				ident: string(l.input[l.anchorPos:l.posCurrRune]),
			})

		case isNumberStart(ch):
			for isNumberCont(l.peekChar()) {
				l.advance()
			}
			lit, err := l.scanNumber(string(l.input[l.anchorPos:l.posCurrRune]))
			if err != nil {
				return nil, err
			}
			units = append(units, unit{pos: l.anchor(), kind: unitLit, lit: lit})

		default:
			u, err := l.scanMarkOrPunct(ch)
			if err != nil {
				return nil, err
			}
			units = append(units, u)
		}
		l.unitCount++
	}
	l.debug("scanned %d units", l.unitCount)
	return units, nil
}

// scanMarkOrPunct handles the single-rune group markers, string
// literals, and the maximal-munch punctuator fallback. The anchor is
// already set to the current rune.
func (l *lexer) scanMarkOrPunct(ch rune) (unit, error) {
	if delim, ok := openDelim(ch); ok {
		l.advance()
		return unit{pos: l.anchor(), kind: unitOpen, delim: delim}, nil
	}
	if delim, ok := closeDelim(ch); ok {
		l.advance()
		return unit{pos: l.anchor(), kind: unitClose, delim: delim}, nil
	}
	if ch == '"' {
		return l.scanString()
	}
	return l.scanPunct()
}

// scanNumber classifies a maximal digits-and-dots run. Runs without a
// dot are 128-bit signed integers; runs with exactly one dot are floats
// (unless disabled). Anything else is a recoverable lexing error, never
// an abort.
func (l *lexer) scanNumber(text string) (Literal, error) {
	dots := strings.Count(text, ".")
	if dots == 0 {
		v, ok := new(big.Int).SetString(text, 10)
		if !ok {
			return Literal{}, l.errorf("invalid integer literal '%s'", text)
		}
		if v.BitLen() > 127 {
			return Literal{}, l.errorf("integer literal '%s' out of range", text)
		}
		return IntLiteral(v), nil
	}
	if dots == 1 && l.floats {
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return Literal{}, l.errorf("invalid numeric literal '%s'", text)
		}
		return FloatLiteral(v), nil
	}
	return Literal{}, l.errorf("invalid numeric literal '%s'", text)
}

// scanString consumes a string literal. There is no escape handling:
// the literal runs to the next '"', so embedded quotes cannot be
// represented.
func (l *lexer) scanString() (unit, error) {
	l.advance() // opening quote
	var sb strings.Builder
	for {
		if l.iseof() {
			return unit{}, l.errorf("missing closing '\"' for string literal")
		}
		ch := l.peekChar()
		l.advance()
		if ch == '"' {
			return unit{pos: l.anchor(), kind: unitLit, lit: StrLiteral(sb.String())}, nil
		}
		sb.WriteRune(ch)
	}
}

// scanPunct runs the maximal-munch loop against the punctuator table.
// The candidate grows by peeking, not consuming, so that falling back
// to a shorter match never steals runes from the next unit: only the
// runes of the committed match are consumed.
func (l *lexer) scanPunct() (unit, error) {
	var cand []rune
	var best Punct
	bestLen, matched := 0, false
	for n := 0; ; n++ {
		ch := l.peekCharN(n)
		if ch == EOF {
			break
		}
		cand = append(cand, ch)
		p, m := matchPunct(string(cand))
		if m == punctMatched {
			best, bestLen, matched = p, n+1, true
		} else if m == punctNone {
			break
		}
		// partial: a longer punctuator may still match, keep extending
	}
	if !matched {
		return unit{}, l.errorf("expected punctuator, got '%s'", string(cand))
	}
	for i := 0; i < bestLen; i++ {
		l.advance()
	}
	return unit{pos: l.anchor(), kind: unitPunct, punct: best}, nil
}

// peekChar returns the current rune without advancing the input.
func (l *lexer) peekChar() rune {
	return l.r
}

// peekCharN returns the nth rune without advancing the input.
// peekCharN(0) is the same as peekChar().
func (l *lexer) peekCharN(numberOfChars int) rune {
	if numberOfChars < 0 {
		panic("assert(numberOfChars >= 0)")
	}
	ch := l.r

	posPeekRune := l.posNextRune
	for numberOfChars > 0 && posPeekRune < l.length {
		r, w := rune(l.input[posPeekRune]), 1
		if r == CR && posPeekRune+1 < l.length && rune(l.input[posPeekRune+1]) == LF {
			r, w = LF, 2
		} else if r >= utf8.RuneSelf {
			// the rune is not ASCII, so we have to decode it properly.
			r, w = utf8.DecodeRune(l.input[posPeekRune:])
		}
		ch = r
		posPeekRune += w
		numberOfChars--
	}

	if numberOfChars > 0 {
		// we reached end of input before peeking the requested number of runes
		ch = EOF
	}

	return ch
}

// setAnchor marks the start of the current unit.
func (l *lexer) setAnchor() {
	l.anchorPos = l.posCurrRune
	l.anchorLine = l.line
	l.anchorColumn = l.column
}

// anchor returns the position recorded by setAnchor.
func (l *lexer) anchor() Position {
	return Position{
		Line:   l.anchorLine,
		Column: l.anchorColumn,
		Start:  l.anchorPos,
	}
}

// advance moves to the next rune and updates line/col. On end of input
// it sets r == EOF and both positions to length.
func (l *lexer) advance() {
	if l.r == EOF {
		return
	}
	// update line/col wrt the *current* rune before stepping
	if l.r == LF {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	l.loadRune(l.posNextRune)
}

// loadRune decodes the rune at pos, optimizing for ASCII grammars.
// It normalizes "\r\n" into a single LF rune, consuming both bytes.
func (l *lexer) loadRune(pos int) {
	if pos >= l.length {
		l.posCurrRune, l.posNextRune = l.length, l.length
		l.r = EOF
		return
	}
	r, w := rune(l.input[pos]), 1
	if r == CR && pos+1 < l.length && rune(l.input[pos+1]) == LF {
		// merge CR+LF into a single LF rune, but consume both bytes
		r, w = LF, 2
	} else if r >= utf8.RuneSelf {
		// the current rune must be decoded
		r, w = utf8.DecodeRune(l.input[pos:])
	}
	l.posCurrRune, l.posNextRune = pos, pos+w
	l.r = r
}

func (l *lexer) iseof() bool {
	return l.r == EOF
}

// errorf builds a lexing error at the current anchor and logs it.
func (l *lexer) errorf(format string, args ...any) *Error {
	pos := l.anchor()
	err := NewError(fmt.Sprintf(format, args...), nil, &pos)
	l.error("%v", err)
	return err
}

func (l *lexer) debug(format string, args ...any) {
	if l.logger == nil {
		return
	}
	l.logger.Debug(fmt.Sprintf("%s:%d:%d %s", l.name, l.line, l.column, fmt.Sprintf(format, args...)))
}

func (l *lexer) error(format string, args ...any) {
	l.errorCount++
	if l.logger == nil {
		return
	}
	l.logger.Error(fmt.Sprintf("%s:%d:%d %s", l.name, l.line, l.column, fmt.Sprintf(format, args...)))
}
