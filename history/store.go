// Package history persists evaluated results so interactive sessions
// can recall earlier answers by index.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS entries (
	seq INTEGER PRIMARY KEY,
	id TEXT NOT NULL UNIQUE,
	input TEXT NOT NULL,
	value TEXT NOT NULL,
	approx TEXT,
	created_at TEXT NOT NULL
);`

// Entry is one stored evaluation. Seq is the answer index used by
// ans references; Value is the exact result's canonical string.
type Entry struct {
	ID        string
	Seq       int
	Input     string
	Value     string
	Approx    string
	CreatedAt time.Time
}

// Store persists entries in SQLite.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the history database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("history: open: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("history: set WAL mode: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("history: create schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Append stores an entry at the next free answer index and returns it
// with ID, Seq, and CreatedAt filled in.
func (s *Store) Append(ctx context.Context, e Entry) (Entry, error) {
	next, err := s.NextSeq(ctx)
	if err != nil {
		return Entry{}, err
	}
	e.Seq = next
	e.ID = uuid.NewString()
	e.CreatedAt = time.Now().UTC()

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO entries (seq, id, input, value, approx, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.Seq, e.ID, e.Input, e.Value, e.Approx,
		e.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return Entry{}, fmt.Errorf("history: append: %w", err)
	}
	return e, nil
}

// List returns entries in answer-index order. A positive limit keeps
// only the most recent entries.
func (s *Store) List(ctx context.Context, limit int) ([]Entry, error) {
	query := `SELECT seq, id, input, value, approx, created_at FROM entries ORDER BY seq ASC`
	var args []any
	if limit > 0 {
		query = `SELECT seq, id, input, value, approx, created_at FROM
		         (SELECT * FROM entries ORDER BY seq DESC LIMIT ?) ORDER BY seq ASC`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("history: list: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		var created string
		if err := rows.Scan(&e.Seq, &e.ID, &e.Input, &e.Value, &e.Approx, &created); err != nil {
			return nil, fmt.Errorf("history: scan entry: %w", err)
		}
		e.CreatedAt, _ = time.Parse(time.RFC3339Nano, created)
		out = append(out, e)
	}
	return out, rows.Err()
}

// Get fetches one entry by answer index.
func (s *Store) Get(ctx context.Context, seq int) (Entry, error) {
	var e Entry
	var created string
	err := s.db.QueryRowContext(ctx,
		`SELECT seq, id, input, value, approx, created_at FROM entries WHERE seq = ?`, seq,
	).Scan(&e.Seq, &e.ID, &e.Input, &e.Value, &e.Approx, &created)
	if err != nil {
		return Entry{}, fmt.Errorf("history: get %d: %w", seq, err)
	}
	e.CreatedAt, _ = time.Parse(time.RFC3339Nano, created)
	return e, nil
}

// NextSeq returns the answer index the next Append will use.
func (s *Store) NextSeq(ctx context.Context) (int, error) {
	var max sql.NullInt64
	err := s.db.QueryRowContext(ctx, `SELECT MAX(seq) FROM entries`).Scan(&max)
	if err != nil {
		return 0, fmt.Errorf("history: next seq: %w", err)
	}
	if !max.Valid {
		return 0, nil
	}
	return int(max.Int64) + 1, nil
}

// Clear removes every entry.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM entries`); err != nil {
		return fmt.Errorf("history: clear: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error { return s.db.Close() }
