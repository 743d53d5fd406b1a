package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

type SQLite struct {
	path    string
	readDB  *sql.DB
	writeDB *sql.DB
	expiry  time.Duration
	now     func() time.Time
}

func OpenSQLite(dbPath string, expiry time.Duration) (*SQLite, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating cache dir: %w", err)
	}

	writeDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening write db: %w", err)
	}
	writeDB.SetMaxOpenConns(1)

	readDB, err := sql.Open("sqlite", dbPath+"?mode=ro")
	if err != nil {
		writeDB.Close()
		return nil, fmt.Errorf("opening read db: %w", err)
	}

	c := &SQLite{path: dbPath, readDB: readDB, writeDB: writeDB, expiry: expiry, now: time.Now}
	if err := c.init(); err != nil {
		c.Close()
		return nil, err
	}
	return c, nil
}

func (c *SQLite) init() error {
	_, err := c.writeDB.Exec(`
		CREATE TABLE IF NOT EXISTS document (
			slot      INTEGER PRIMARY KEY CHECK (slot = 1),
			body      TEXT NOT NULL,
			stored_at TEXT NOT NULL
		);
	`)
	if err != nil {
		return fmt.Errorf("initializing schema: %w", err)
	}
	return nil
}

func (c *SQLite) Close() error {
	var errs []error
	if c.readDB != nil {
		errs = append(errs, c.readDB.Close())
	}
	if c.writeDB != nil {
		errs = append(errs, c.writeDB.Close())
	}
	return errors.Join(errs...)
}

func (c *SQLite) Load(ctx context.Context) (string, error) {
	var body, storedAt string
	err := c.readDB.QueryRowContext(ctx, "SELECT body, stored_at FROM document WHERE slot = 1").Scan(&body, &storedAt)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMiss, err)
	}
	t, err := time.Parse(time.RFC3339Nano, storedAt)
	if err != nil {
		return "", fmt.Errorf("%w: bad stored_at %q", ErrMiss, storedAt)
	}
	if expired(t, c.now(), c.expiry) {
		return "", fmt.Errorf("%w: stored %s ago", ErrMiss, c.now().Sub(t).Round(time.Second))
	}
	if body == "" {
		return "", fmt.Errorf("%w: empty document", ErrMiss)
	}
	return body, nil
}

func (c *SQLite) Save(ctx context.Context, doc string) error {
	_, err := c.writeDB.ExecContext(ctx, `
		INSERT INTO document (slot, body, stored_at) VALUES (1, ?, ?)
		ON CONFLICT(slot) DO UPDATE SET
			body = excluded.body,
			stored_at = excluded.stored_at
	`, doc, c.now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("storing document: %w", err)
	}
	return nil
}

func (c *SQLite) Info(ctx context.Context) (Info, error) {
	var (
		size     int64
		storedAt string
	)
	err := c.readDB.QueryRowContext(ctx,
		"SELECT length(CAST(body AS BLOB)), stored_at FROM document WHERE slot = 1",
	).Scan(&size, &storedAt)
	if err != nil {
		return Info{}, fmt.Errorf("%w: %v", ErrMiss, err)
	}
	t, err := time.Parse(time.RFC3339Nano, storedAt)
	if err != nil {
		return Info{}, fmt.Errorf("%w: bad stored_at %q", ErrMiss, storedAt)
	}
	return Info{
		Backend:  BackendSQLite,
		Location: c.path,
		StoredAt: t.Local(),
		Size:     size,
		Expired:  expired(t, c.now(), c.expiry),
	}, nil
}

func (c *SQLite) Clear(ctx context.Context) error {
	if _, err := c.writeDB.ExecContext(ctx, "DELETE FROM document"); err != nil {
		return fmt.Errorf("clearing document: %w", err)
	}
	return nil
}
