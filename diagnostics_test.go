// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package ctok_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/mdhender/ctok"
)

func TestPrintDiagnostic(t *testing.T) {
	src := []byte("int x ;\nint $y ;\n")
	_, err := ctok.Tokenize(src)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	var lexErr *ctok.Error
	if !errors.As(err, &lexErr) {
		t.Fatalf("error is %T, want *ctok.Error", err)
	}

	var buf bytes.Buffer
	ctok.PrintDiagnostic(&buf, ctok.DiagnosticFromError(lexErr), "sample.c", src)

	want := "sample.c:2:5: ERROR: expected punctuator, got '$'\n" +
		"    int $y ;\n" +
		"        ^\n"
	if got := buf.String(); got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
}

func TestDiagnosticNotes(t *testing.T) {
	inner := ctok.NewError("missing operand", nil, nil)
	outer := ctok.Wrap("while parsing expression", inner, &ctok.Position{Line: 3, Column: 7, Start: 20})

	diag := ctok.DiagnosticFromError(outer)
	if got, want := diag.Message, "while parsing expression"; got != want {
		t.Fatalf("message = %q, want %q", got, want)
	}
	if got, want := len(diag.Notes), 1; got != want {
		t.Fatalf("notes = %d, want %d", got, want)
	}
	if got, want := diag.Notes[0], "missing operand"; got != want {
		t.Fatalf("note = %q, want %q", got, want)
	}
	if got, want := diag.Span.Line, 3; got != want {
		t.Fatalf("line = %d, want %d", got, want)
	}
}
