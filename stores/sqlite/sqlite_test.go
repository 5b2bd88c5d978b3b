// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package store_test

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	store "github.com/mdhender/ctok/stores/sqlite"
	"github.com/spf13/afero"
)

func sha256Hex(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

// newLoader returns a loader over an in-memory store and filesystem,
// with the given path -> contents files created.
func newLoader(t *testing.T, files map[string]string) (*store.Store, *store.Loader) {
	t.Helper()
	s, err := store.New()
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })

	fs := afero.NewMemMapFs()
	for path, contents := range files {
		if err := afero.WriteFile(fs, path, []byte(contents), 0o644); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
	}

	l := store.NewLoader(s)
	l.SetFS(fs)
	return s, l
}

func TestLoadDir(t *testing.T) {
	ctx := context.Background()
	s, l := newLoader(t, map[string]string{
		"/corpus/good.c":   "int main ( ) { return 0 ; }",
		"/corpus/bad.c":    "int $x ;",
		"/corpus/notes.md": "not a source file",
	})

	if err := l.LoadDir(ctx, "/corpus"); err != nil {
		t.Fatalf("load dir: %v", err)
	}

	sum, err := s.Summarize(ctx)
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	// the markdown file is ignored, the bad file is recorded as failed
	if got, want := sum.Files, 2; got != want {
		t.Fatalf("files = %d, want %d", got, want)
	}
	if got, want := sum.Failed, 1; got != want {
		t.Fatalf("failed = %d, want %d", got, want)
	}
	if sum.Tokens == 0 || sum.Groups == 0 {
		t.Fatalf("summary = %+v, want nonzero tokens and groups", sum)
	}
}

func TestLoadFileUnchanged(t *testing.T) {
	ctx := context.Background()
	_, l := newLoader(t, map[string]string{
		"/src/again.h": "int x ;",
	})

	status, err := l.LoadFile(ctx, "/src/again.h")
	if err != nil {
		t.Fatalf("first load: %v", err)
	}
	if got, want := status, store.LoadOK; got != want {
		t.Fatalf("status = %v, want %v", got, want)
	}

	status, err = l.LoadFile(ctx, "/src/again.h")
	if err != nil {
		t.Fatalf("second load: %v", err)
	}
	if got, want := status, store.LoadSkipped; got != want {
		t.Fatalf("status = %v, want %v", got, want)
	}
}

func TestLoadFileRecordsFailure(t *testing.T) {
	ctx := context.Background()
	s, l := newLoader(t, map[string]string{
		"/src/oops.c": "a = \"unterminated",
	})

	status, err := l.LoadFile(ctx, "/src/oops.c")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got, want := status, store.LoadFailed; got != want {
		t.Fatalf("status = %v, want %v", got, want)
	}

	seen, err := s.HasScan(ctx, "oops.c", sha256Hex("a = \"unterminated"))
	if err != nil {
		t.Fatalf("has scan: %v", err)
	}
	if !seen {
		t.Fatal("failed scan was not recorded")
	}
}
