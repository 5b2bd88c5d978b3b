// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package store

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/mdhender/ctok"
	"github.com/spf13/afero"
)

// Loader tokenizes source files and records the results. The
// filesystem is abstracted so tests can run against an in-memory fs.
type Loader struct {
	store *Store
	fs    afero.Fs
}

// NewLoader creates a loader backed by the OS filesystem.
func NewLoader(s *Store) *Loader {
	return &Loader{store: s, fs: afero.NewOsFs()}
}

// SetFS sets the filesystem for testing.
func (l *Loader) SetFS(fs afero.Fs) {
	l.fs = fs
}

// LoadDir tokenizes every .c and .h file under dir and records one
// scan row per file. Files whose name and hash are already recorded
// are skipped. Lexing failures are recorded, not fatal.
func (l *Loader) LoadDir(ctx context.Context, dir string) error {
	entries, err := afero.ReadDir(l.fs, dir)
	if err != nil {
		return fmt.Errorf("read dir: %w", err)
	}

	var loaded, skipped, failed int
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if ext != ".c" && ext != ".h" {
			continue
		}

		status, err := l.LoadFile(ctx, filepath.Join(dir, name))
		if err != nil {
			return err
		}
		switch status {
		case LoadSkipped:
			skipped++
		case LoadFailed:
			failed++
		default:
			loaded++
		}
	}

	log.Printf("store: loaded %d files (%d failed, %d unchanged) from %s", loaded, failed, skipped, dir)
	return nil
}

type LoadStatus int

const (
	LoadOK LoadStatus = iota
	LoadSkipped
	LoadFailed
)

// LoadFile tokenizes a single file and records the scan. The returned
// status distinguishes a clean load, an unchanged skip, and a recorded
// lexing failure; only store and filesystem problems are errors.
func (l *Loader) LoadFile(ctx context.Context, path string) (LoadStatus, error) {
	name := filepath.Base(path)

	data, err := afero.ReadFile(l.fs, path)
	if err != nil {
		return LoadFailed, fmt.Errorf("read file: %w", err)
	}
	hash := sha256.Sum256(data)
	hexHash := hex.EncodeToString(hash[:])

	if seen, err := l.store.HasScan(ctx, name, hexHash); err != nil {
		return LoadFailed, err
	} else if seen {
		return LoadSkipped, nil
	}

	scan := &Scan{
		Name:   name,
		SHA256: hexHash,
		Bytes:  len(data),
	}

	status := LoadOK
	ts, err := ctok.Tokenize(data, ctok.WithName(name))
	if err != nil {
		status = LoadFailed
		scan.Error = err.Error()
		var lexErr *ctok.Error
		if errors.As(err, &lexErr) && lexErr.Position() != nil {
			scan.ErrorLine = lexErr.Position().Line
			scan.ErrorCol = lexErr.Position().Column
		}
	} else {
		scan.Tokens, scan.Groups, scan.Depth = measure(ts)
	}

	if err := l.store.AddScan(ctx, scan); err != nil {
		return LoadFailed, err
	}
	return status, nil
}

// measure walks the tree iteratively and returns the node count, group
// count, and maximum nesting depth.
func measure(ts *ctok.TokenStream) (tokens, groups, depth int) {
	type level struct {
		ts    *ctok.TokenStream
		index int
	}
	stack := []level{{ts: ts}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		cell, ok := top.ts.At(top.index)
		if !ok {
			stack = stack[:len(stack)-1]
			continue
		}
		top.index++
		tokens++
		if cell.Tree.Kind == ctok.KindGroup {
			groups++
			stack = append(stack, level{ts: cell.Tree.Group})
			if d := len(stack) - 1; d > depth {
				depth = d
			}
		}
	}
	return tokens, groups, depth
}
