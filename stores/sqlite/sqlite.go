// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package store persists corpus scan results: one row per tokenized
// source file, with token counts and the first lexing error, if any.
package store

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"time"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// Store is a SQLite-backed store for corpus scan results.
type Store struct {
	db *sql.DB
}

// Config holds configuration for creating a Store.
type Config struct {
	// Path is the file path for file-based SQLite.
	// If empty, an in-memory database is used.
	Path string

	// InitSchema controls whether to run schema initialization.
	InitSchema bool
}

// New creates a new in-memory store with schema loaded.
func New() (*Store, error) {
	return NewWithConfig(Config{InitSchema: true})
}

// NewWithConfig creates a store based on the provided configuration.
// For file-based mode (Path is set), the database file MUST already
// exist; use InitDatabase to create one.
func NewWithConfig(cfg Config) (*Store, error) {
	var dsn string

	if cfg.Path == "" {
		dsn = "file::memory:?cache=shared&_pragma=foreign_keys(1)"
	} else {
		// SQLite will create a missing file automatically, which we don't want
		if _, err := os.Stat(cfg.Path); os.IsNotExist(err) {
			return nil, fmt.Errorf("database file does not exist: %s (run init-db to create it)", cfg.Path)
		}

		// Apply PRAGMA's per-connection via DSN so the pool always has them.
		// modernc.org/sqlite supports repeated _pragma=... parameters.
		dsn = fmt.Sprintf(
			"file:%s?_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)&_pragma=foreign_keys(ON)&_pragma=busy_timeout(5000)",
			cfg.Path,
		)
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if cfg.InitSchema || cfg.Path == "" {
		if _, err := db.Exec(schemaSQL); err != nil {
			db.Close()
			return nil, fmt.Errorf("exec schema: %w", err)
		}
	}

	return &Store{db: db}, nil
}

// InitDatabase creates a new SQLite database file and initializes the
// schema. Returns an error if the file already exists.
func InitDatabase(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("database file already exists: %s", path)
	}

	dsn := fmt.Sprintf(
		"file:%s?_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)&_pragma=foreign_keys(ON)&_pragma=busy_timeout(5000)",
		path,
	)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("exec schema: %w", err)
	}

	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Scan is one recorded tokenize run over a source file.
type Scan struct {
	ID        int64
	Name      string
	SHA256    string
	Bytes     int
	Tokens    int // total token-tree nodes, groups included
	Groups    int
	Depth     int // maximum group nesting depth
	Error     string
	ErrorLine int
	ErrorCol  int
	CreatedAt time.Time
}

// AddScan inserts a scan row and fills in its ID.
func (s *Store) AddScan(ctx context.Context, scan *Scan) error {
	if scan.CreatedAt.IsZero() {
		scan.CreatedAt = time.Now().UTC()
	}
	const query = `
		INSERT INTO scans (name, sha256, bytes, tokens, groups, depth, error, error_line, error_col, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := s.db.ExecContext(ctx, query,
		scan.Name, scan.SHA256, scan.Bytes, scan.Tokens, scan.Groups, scan.Depth,
		nullString(scan.Error), scan.ErrorLine, scan.ErrorCol,
		scan.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("insert scan: %w", err)
	}
	scan.ID, err = res.LastInsertId()
	return err
}

// HasScan reports whether a file with this name and hash was already
// recorded, so unchanged corpora can be skipped.
func (s *Store) HasScan(ctx context.Context, name, sha256 string) (bool, error) {
	const query = `SELECT COUNT(*) FROM scans WHERE name = ? AND sha256 = ?`
	var count int
	if err := s.db.QueryRowContext(ctx, query, name, sha256).Scan(&count); err != nil {
		return false, fmt.Errorf("query scan: %w", err)
	}
	return count > 0, nil
}

// Summary aggregates the recorded scans.
type Summary struct {
	Files  int
	Failed int
	Tokens int
	Groups int
}

// Summarize returns totals over every recorded scan.
func (s *Store) Summarize(ctx context.Context) (Summary, error) {
	const query = `
		SELECT COUNT(*),
		       COALESCE(SUM(CASE WHEN error IS NOT NULL THEN 1 ELSE 0 END), 0),
		       COALESCE(SUM(tokens), 0),
		       COALESCE(SUM(groups), 0)
		FROM scans`
	var sum Summary
	if err := s.db.QueryRowContext(ctx, query).Scan(&sum.Files, &sum.Failed, &sum.Tokens, &sum.Groups); err != nil {
		return Summary{}, fmt.Errorf("query summary: %w", err)
	}
	return sum, nil
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
