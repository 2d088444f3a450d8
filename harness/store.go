// File: harness/store.go
// Author: momentics <momentics@gmail.com>
//
// SQLite persistence of run reports.

package harness

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	label       TEXT    NOT NULL,
	kind        TEXT    NOT NULL DEFAULT '',
	cpu         INTEGER NOT NULL,
	started_at  INTEGER NOT NULL,
	elapsed_ns  INTEGER NOT NULL,
	samples     INTEGER NOT NULL,
	timeouts    INTEGER NOT NULL,
	min_ns      INTEGER NOT NULL,
	max_ns      INTEGER NOT NULL,
	mean_ns     INTEGER NOT NULL,
	p50_ns      INTEGER NOT NULL,
	p90_ns      INTEGER NOT NULL,
	p99_ns      INTEGER NOT NULL,
	p999_ns     INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS runs_label_idx ON runs(label);
`

var pragmas = []string{
	"PRAGMA journal_mode = WAL",
	"PRAGMA synchronous = NORMAL",
	"PRAGMA busy_timeout = 5000",
}

// Store keeps run summaries. The window statistics are not persisted.
type Store struct {
	db *sql.DB
}

// OpenStore opens or creates the database at path and applies the schema.
func OpenStore(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("harness: open store %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			db.Close()
			return nil, fmt.Errorf("harness: %s: %w", p, err)
		}
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("harness: apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Save inserts r and sets r.ID.
func (s *Store) Save(ctx context.Context, r *Report) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (label, kind, cpu, started_at, elapsed_ns, samples, timeouts,
			min_ns, max_ns, mean_ns, p50_ns, p90_ns, p99_ns, p999_ns)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Label, r.Kind, r.CPU, r.StartedAt.UnixNano(), int64(r.Elapsed), r.Stats.Count, r.Timeouts,
		int64(r.Stats.Min), int64(r.Stats.Max), int64(r.Stats.Mean),
		int64(r.Stats.P50), int64(r.Stats.P90), int64(r.Stats.P99), int64(r.Stats.P999))
	if err != nil {
		return 0, fmt.Errorf("harness: save run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("harness: save run: %w", err)
	}
	r.ID = id
	return id, nil
}

// Recent returns up to limit runs, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Report, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, label, kind, cpu, started_at, elapsed_ns, samples, timeouts,
			min_ns, max_ns, mean_ns, p50_ns, p90_ns, p99_ns, p999_ns
		FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("harness: query runs: %w", err)
	}
	defer rows.Close()

	var out []Report
	for rows.Next() {
		var (
			r                           Report
			started, elapsed            int64
			minNs, maxNs, meanNs        int64
			p50Ns, p90Ns, p99Ns, p999Ns int64
		)
		if err := rows.Scan(&r.ID, &r.Label, &r.Kind, &r.CPU, &started, &elapsed, &r.Stats.Count, &r.Timeouts,
			&minNs, &maxNs, &meanNs, &p50Ns, &p90Ns, &p99Ns, &p999Ns); err != nil {
			return nil, fmt.Errorf("harness: scan run: %w", err)
		}
		r.StartedAt = time.Unix(0, started).UTC()
		r.Elapsed = time.Duration(elapsed)
		r.Stats.Min = time.Duration(minNs)
		r.Stats.Max = time.Duration(maxNs)
		r.Stats.Mean = time.Duration(meanNs)
		r.Stats.P50 = time.Duration(p50Ns)
		r.Stats.P90 = time.Duration(p90Ns)
		r.Stats.P99 = time.Duration(p99Ns)
		r.Stats.P999 = time.Duration(p999Ns)
		out = append(out, r)
	}
	return out, rows.Err()
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}
