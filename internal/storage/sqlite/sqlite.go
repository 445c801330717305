// Package sqlite provides a SQLite-backed implementation of the storage.Store
// interface. Each collection is stored as a single JSON document in one row,
// so replacing a collection is one UPSERT and therefore atomic.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/hare1111/dahood/internal/storage"
)

// Ensure SQLiteStore implements storage.Store
var _ storage.Store = (*SQLiteStore)(nil)

// SQLiteStore implements storage.Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New creates a new SQLiteStore with the given database path.
// It creates the parent directories and runs migrations automatically.
func New(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// readDoc unmarshals the named collection into out. A missing row leaves out
// untouched and returns false.
func (s *SQLiteStore) readDoc(ctx context.Context, name string, out any) (bool, error) {
	var data string
	err := s.db.QueryRowContext(ctx,
		"SELECT data FROM collections WHERE name = ?",
		name,
	).Scan(&data)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read collection %s: %w", name, err)
	}

	if err := json.Unmarshal([]byte(data), out); err != nil {
		return false, fmt.Errorf("failed to decode collection %s: %w", name, err)
	}
	return true, nil
}

// writeDoc replaces the named collection with the JSON encoding of v.
func (s *SQLiteStore) writeDoc(ctx context.Context, name string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode collection %s: %w", name, err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO collections (name, data, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		name, string(data), time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to write collection %s: %w", name, err)
	}
	return nil
}

// deleteDoc removes the named collection. Deleting an absent collection is
// not an error.
func (s *SQLiteStore) deleteDoc(ctx context.Context, name string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM collections WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("failed to delete collection %s: %w", name, err)
	}
	return nil
}
