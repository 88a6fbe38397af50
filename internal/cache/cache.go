// Copyright (c) 2025 LearnHub
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package cache persists the last successful response payloads in a local
// SQLite database so read-only commands can degrade gracefully when the
// backend is unreachable. Snapshots are a convenience copy of server data,
// never the source of truth, and are dropped on logout.
package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"learnhub/cli/internal/xdg"
)

// Keys for well-known snapshots.
const (
	KeyEnrollments = "enrollments"
	KeyProfile     = "profile"
)

const schema = `
CREATE TABLE IF NOT EXISTS snapshots (
	key        TEXT PRIMARY KEY,
	value      BLOB NOT NULL,
	updated_at INTEGER NOT NULL
);
`

// Cache is a snapshot store over a local SQLite file.
type Cache struct {
	db *sql.DB
}

// Open creates or opens the snapshot database at the given path.
func Open(path string) (*Cache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open cache db: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping cache db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("initialize cache db: %w", err)
	}
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		return nil, fmt.Errorf("set busy timeout: %w", err)
	}
	return &Cache{db: db}, nil
}

// OpenDefault opens the snapshot database under the XDG state dir.
func OpenDefault() (*Cache, error) {
	dir, err := xdg.StateDir()
	if err != nil {
		return nil, err
	}
	return Open(filepath.Join(dir, "snapshots.db"))
}

// Close releases the database handle.
func (c *Cache) Close() error { return c.db.Close() }

// Put stores a snapshot, replacing any previous value for the key.
func (c *Cache) Put(ctx context.Context, key string, value []byte) error {
	_, err := c.db.ExecContext(ctx, `
		INSERT INTO snapshots (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, value, time.Now().Unix())
	if err != nil {
		return fmt.Errorf("failed to store snapshot[%s]: %w", key, err)
	}
	return nil
}

// Get returns a snapshot and its age. A missing key yields (nil, 0, nil).
func (c *Cache) Get(ctx context.Context, key string) ([]byte, time.Duration, error) {
	var value []byte
	var updatedAt int64
	err := c.db.QueryRowContext(ctx, `SELECT value, updated_at FROM snapshots WHERE key = ?`, key).Scan(&value, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, 0, nil
	}
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get snapshot[%s]: %w", key, err)
	}
	return value, time.Since(time.Unix(updatedAt, 0)), nil
}

// Delete removes one snapshot. Missing keys are not an error.
func (c *Cache) Delete(ctx context.Context, key string) error {
	_, err := c.db.ExecContext(ctx, `DELETE FROM snapshots WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to delete snapshot[%s]: %w", key, err)
	}
	return nil
}

// Clear drops all snapshots. Called on logout so no per-user data survives
// the credential.
func (c *Cache) Clear(ctx context.Context) error {
	_, err := c.db.ExecContext(ctx, `DELETE FROM snapshots`)
	if err != nil {
		return fmt.Errorf("failed to clear snapshots: %w", err)
	}
	return nil
}
