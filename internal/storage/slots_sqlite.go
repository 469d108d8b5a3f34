package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

const (
	pingTimeout  = 1 * time.Second
	queryTimeout = 3 * time.Second
)

// SQLiteSlots keeps all slots in one embedded database table. Same contract
// as FileSlots; the database lives next to the process, not on a server.
type SQLiteSlots struct {
	db *sql.DB
}

func NewSQLiteSlots(path string) (*SQLiteSlots, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	err = withTimeout(context.Background(), queryTimeout, func(ctx context.Context) error {
		_, err := db.ExecContext(ctx, `
			CREATE TABLE IF NOT EXISTS slots (
				key   TEXT PRIMARY KEY,
				value TEXT NOT NULL
			)
		`)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &SQLiteSlots{db: db}, nil
}

func (s *SQLiteSlots) Close() error { return s.db.Close() }

func (s *SQLiteSlots) Load(key string, v any) (bool, error) {
	var raw string

	err := withTimeout(context.Background(), queryTimeout, func(ctx context.Context) error {
		return s.db.QueryRowContext(ctx, `
			SELECT value FROM slots WHERE key = ?
		`, key).Scan(&raw)
	})

	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return false, fmt.Errorf("%w: slot %q: %v", ErrCorrupt, key, err)
	}
	return true, nil
}

func (s *SQLiteSlots) Save(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}

	return withTimeout(context.Background(), queryTimeout, func(ctx context.Context) error {
		_, err := s.db.ExecContext(ctx, `
			INSERT INTO slots (key, value) VALUES (?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value
		`, key, string(raw))
		return err
	})
}

func (s *SQLiteSlots) Clear(key string) error {
	return withTimeout(context.Background(), queryTimeout, func(ctx context.Context) error {
		_, err := s.db.ExecContext(ctx, `DELETE FROM slots WHERE key = ?`, key)
		return err
	})
}

func (s *SQLiteSlots) Ping(ctx context.Context) error {
	return withTimeout(ctx, pingTimeout, func(ctx context.Context) error {
		return s.db.PingContext(ctx)
	})
}

func withTimeout(parent context.Context, d time.Duration, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(parent, d)
	defer cancel()
	return fn(ctx)
}
