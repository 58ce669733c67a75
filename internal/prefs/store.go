// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package prefs persists the page preference flags in a small SQLite
// database. The only flags are the dark/light theme keys, stored under
// the same names the pages use: color-theme and theme.
package prefs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/calckit/pkg/types"
)

const (
	KeyColorTheme = "color-theme"
	KeyTheme      = "theme"
)

const upsertSQL = `INSERT INTO prefs (key, value, updated_at) VALUES (?, ?, ?)
	ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`

// ErrInvalidTheme is returned by SetTheme for values other than light or dark.
var ErrInvalidTheme = errors.New("theme must be light or dark")

// Store manages the preferences SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the preferences database at path, creating the
// parent directory and schema if needed.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating preferences directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS prefs (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`)
	return err
}

// Get returns the stored value for key and whether it exists.
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM prefs WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading %s: %w", key, err)
	}
	return value, true, nil
}

// Set stores value under key, replacing any previous value.
func (s *Store) Set(ctx context.Context, key, value string) error {
	ts := time.Now().UTC().Format(time.RFC3339Nano)
	_, err := s.db.ExecContext(ctx, upsertSQL, key, value, ts)
	if err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}
	return nil
}

// Theme returns the stored theme. The color-theme key wins over the
// legacy theme key; unknown values are ignored and fallback is returned
// when neither key holds a valid theme.
func (s *Store) Theme(ctx context.Context, fallback types.Theme) (types.Theme, error) {
	for _, key := range []string{KeyColorTheme, KeyTheme} {
		v, ok, err := s.Get(ctx, key)
		if err != nil {
			return "", err
		}
		if t := types.Theme(v); ok && t.Valid() {
			return t, nil
		}
	}
	return fallback, nil
}

// SetTheme stores t under both theme keys.
func (s *Store) SetTheme(ctx context.Context, t types.Theme) error {
	if !t.Valid() {
		return fmt.Errorf("theme %q: %w", t, ErrInvalidTheme)
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	ts := time.Now().UTC().Format(time.RFC3339Nano)
	for _, key := range []string{KeyColorTheme, KeyTheme} {
		if _, err := tx.ExecContext(ctx, upsertSQL, key, string(t), ts); err != nil {
			return fmt.Errorf("writing %s: %w", key, err)
		}
	}
	return tx.Commit()
}

// Toggle flips the stored theme and returns the new value.
func (s *Store) Toggle(ctx context.Context, fallback types.Theme) (types.Theme, error) {
	cur, err := s.Theme(ctx, fallback)
	if err != nil {
		return "", err
	}
	next := cur.Opposite()
	if err := s.SetTheme(ctx, next); err != nil {
		return "", err
	}
	return next, nil
}
