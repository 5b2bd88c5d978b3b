// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package ctok_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/mdhender/ctok"
)

// punctsOf collects the punctuator variants at the top level of the tree.
func punctsOf(t *testing.T, ts *ctok.TokenStream) []ctok.Punct {
	t.Helper()
	var puncts []ctok.Punct
	for i := 0; ; i++ {
		cell, ok := ts.At(i)
		if !ok {
			break
		}
		if cell.Tree.Kind != ctok.KindPunct {
			t.Fatalf("cell %d: kind = %v, want Punct", i, cell.Tree.Kind)
		}
		puncts = append(puncts, cell.Tree.Punct)
	}
	return puncts
}

func TestMaximalMunch(t *testing.T) {
	for _, tc := range []struct {
		input string
		want  []ctok.Punct
	}{
		{"<<=", []ctok.Punct{ctok.ShlEq}},
		{">>=", []ctok.Punct{ctok.ShrEq}},
		{"%:%:", []ctok.Punct{ctok.DoublePercentColon}},
		{"<=", []ctok.Punct{ctok.Le}},
		{"<<", []ctok.Punct{ctok.Shl}},
		{"...", []ctok.Punct{ctok.Ellipsis}},
		{"< =", []ctok.Punct{ctok.Lt, ctok.Eq}},
		{"<<<", []ctok.Punct{ctok.Shl, ctok.Lt}},
		{"->-", []ctok.Punct{ctok.Arrow, ctok.Minus}},
	} {
		ts, err := ctok.Tokenize([]byte(tc.input))
		if err != nil {
			t.Fatalf("%q: unexpected error %v", tc.input, err)
		}
		got := punctsOf(t, ts)
		if len(got) != len(tc.want) {
			t.Fatalf("%q: got %v, want %v", tc.input, got, tc.want)
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Fatalf("%q: punct %d = %q, want %q", tc.input, i, got[i], tc.want[i])
			}
		}
	}
}

// A partial match must fall back to the longest exact match and resume
// scanning right after it, not swallow the runes it peeked at.
func TestMaximalMunchFallback(t *testing.T) {
	// "%:%" extends towards "%:%:" but never completes it
	ts, err := ctok.Tokenize([]byte("%:%"))
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	got := punctsOf(t, ts)
	want := []ctok.Punct{ctok.PercentColon, ctok.Percent}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestUnrecognizedPunctuator(t *testing.T) {
	_, err := ctok.Tokenize([]byte("int $x ;"))
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "expected punctuator") {
		t.Fatalf("error = %q, want punctuator diagnostic", err)
	}
	var lexErr *ctok.Error
	if !errors.As(err, &lexErr) {
		t.Fatalf("error type = %T, want *ctok.Error", err)
	}
	if pos := lexErr.Position(); pos == nil || pos.Line != 1 || pos.Column != 5 {
		t.Fatalf("position = %v, want 1:5", pos)
	}
}

func TestIdentifierKeywordBoundary(t *testing.T) {
	ts, err := ctok.Tokenize([]byte("intx"))
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if got, want := ts.Len(), 1; got != want {
		t.Fatalf("len = %d, want %d", got, want)
	}
	cell, _ := ts.At(0)
	if cell.Tree.Kind != ctok.KindIdent {
		t.Fatalf("kind = %v, want Ident", cell.Tree.Kind)
	}
	if got, want := cell.Tree.Ident, "intx"; got != want {
		t.Fatalf("ident = %q, want %q", got, want)
	}
}

func TestPositions(t *testing.T) {
	ts, err := ctok.Tokenize([]byte("a\nbb"))
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	a, _ := ts.At(0)
	if a.Pos == nil || a.Pos.Line != 1 || a.Pos.Column != 1 {
		t.Fatalf("a position = %v, want 1:1", a.Pos)
	}
	bb, _ := ts.At(1)
	if bb.Pos == nil || bb.Pos.Line != 2 || bb.Pos.Column != 1 {
		t.Fatalf("bb position = %v, want 2:1", bb.Pos)
	}
}

func TestPositionsCRLF(t *testing.T) {
	ts, err := ctok.Tokenize([]byte("a\r\nbb"))
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	bb, _ := ts.At(1)
	if bb.Pos == nil || bb.Pos.Line != 2 || bb.Pos.Column != 1 {
		t.Fatalf("bb position = %v, want 2:1", bb.Pos)
	}
}

func TestMultiCharTokenPosition(t *testing.T) {
	// a multi-rune token reports the position of its first rune
	ts, err := ctok.Tokenize([]byte("  hello"))
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	cell, _ := ts.At(0)
	if cell.Pos == nil || cell.Pos.Line != 1 || cell.Pos.Column != 3 {
		t.Fatalf("position = %v, want 1:3", cell.Pos)
	}
}

func TestUnterminatedString(t *testing.T) {
	_, err := ctok.Tokenize([]byte(`x = "abc`))
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "missing closing") {
		t.Fatalf("error = %q, want missing closing quote diagnostic", err)
	}
	var lexErr *ctok.Error
	if !errors.As(err, &lexErr) {
		t.Fatalf("error type = %T, want *ctok.Error", err)
	}
	// positioned at the opening quote
	if pos := lexErr.Position(); pos == nil || pos.Line != 1 || pos.Column != 5 {
		t.Fatalf("position = %v, want 1:5", pos)
	}
}

func TestStringLiteral(t *testing.T) {
	ts, err := ctok.Tokenize([]byte(`"hello world"`))
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	cell, _ := ts.At(0)
	if cell.Tree.Kind != ctok.KindLit || cell.Tree.Lit.Kind != ctok.LitStr {
		t.Fatalf("kind = %v/%v, want Lit/Str", cell.Tree.Kind, cell.Tree.Lit.Kind)
	}
	if got, want := cell.Tree.Lit.Str, "hello world"; got != want {
		t.Fatalf("value = %q, want %q", got, want)
	}
}

func TestIntegerLiteral(t *testing.T) {
	ts, err := ctok.Tokenize([]byte("42"))
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	cell, _ := ts.At(0)
	if cell.Tree.Lit.Kind != ctok.LitInt {
		t.Fatalf("lit kind = %v, want Int", cell.Tree.Lit.Kind)
	}
	if got, want := cell.Tree.Lit.Int.Int64(), int64(42); got != want {
		t.Fatalf("value = %d, want %d", got, want)
	}
}

func TestIntegerLiteralRange(t *testing.T) {
	// 2^127-1 is the largest 128-bit signed value
	max := "170141183460469231731687303715884105727"
	if _, err := ctok.Tokenize([]byte(max)); err != nil {
		t.Fatalf("max value: unexpected error %v", err)
	}
	// 2^127 overflows; this must be a returned error, never an abort
	over := "170141183460469231731687303715884105728"
	_, err := ctok.Tokenize([]byte(over))
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "out of range") {
		t.Fatalf("error = %q, want out of range diagnostic", err)
	}
}

func TestFloatLiteral(t *testing.T) {
	ts, err := ctok.Tokenize([]byte("3.5"))
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	cell, _ := ts.At(0)
	if cell.Tree.Lit.Kind != ctok.LitFloat {
		t.Fatalf("lit kind = %v, want Float", cell.Tree.Lit.Kind)
	}
	if got, want := cell.Tree.Lit.Float, 3.5; got != want {
		t.Fatalf("value = %v, want %v", got, want)
	}
}

func TestMalformedNumericLiteral(t *testing.T) {
	_, err := ctok.Tokenize([]byte("1.2.3"))
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "invalid numeric literal") {
		t.Fatalf("error = %q, want invalid numeric diagnostic", err)
	}
}

func TestFloatLiteralsDisabled(t *testing.T) {
	_, err := ctok.Tokenize([]byte("3.5"), ctok.WithFloatLiterals(false))
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "invalid numeric literal") {
		t.Fatalf("error = %q, want invalid numeric diagnostic", err)
	}
}

