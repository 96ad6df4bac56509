// internal/store/sqlite.go
package store

import (
	"context"
	"database/sql"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS generations (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    kind TEXT NOT NULL,
    topic TEXT NOT NULL,
    status TEXT NOT NULL,
    items INTEGER NOT NULL,
    error TEXT NOT NULL DEFAULT '',
    latency_ms INTEGER NOT NULL,
    created_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_generations_kind ON generations(kind);
`

const defaultListLimit = 50

type SQLiteStore struct {
	db *sql.DB
}

// Compile-time check: *SQLiteStore satisfies the Journal interface.
var _ Journal = (*SQLiteStore)(nil)

func NewSQLite(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	// modernc's driver serializes writers anyway; one connection avoids
	// SQLITE_BUSY under concurrent fetch completions.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// ============================================================================
// Generations
// ============================================================================

func (s *SQLiteStore) RecordGeneration(ctx context.Context, g Generation) error {
	if g.CreatedAt.IsZero() {
		g.CreatedAt = time.Now()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO generations (kind, topic, status, items, error, latency_ms, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		g.Kind, g.Topic, string(g.Status), g.Items, g.Error, g.Latency.Milliseconds(), g.CreatedAt.UnixMilli(),
	)
	return err
}

func (s *SQLiteStore) GetGeneration(ctx context.Context, id int64) (*Generation, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, kind, topic, status, items, error, latency_ms, created_at
		 FROM generations WHERE id = ?`, id)

	g, err := scanGeneration(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

// ListGenerations returns the most recent entries first.
func (s *SQLiteStore) ListGenerations(ctx context.Context, limit int) ([]Generation, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, kind, topic, status, items, error, latency_ms, created_at
		 FROM generations ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var generations []Generation
	for rows.Next() {
		g, err := scanGeneration(rows)
		if err != nil {
			return nil, err
		}
		generations = append(generations, g)
	}
	return generations, rows.Err()
}

func (s *SQLiteStore) GenerationStats(ctx context.Context) ([]KindStats, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT kind,
		       COUNT(*),
		       SUM(CASE WHEN status = 'ok' THEN 1 ELSE 0 END),
		       SUM(CASE WHEN status = 'empty' THEN 1 ELSE 0 END),
		       SUM(CASE WHEN status = 'failed' THEN 1 ELSE 0 END),
		       SUM(CASE WHEN status = 'invalid' THEN 1 ELSE 0 END),
		       SUM(CASE WHEN status = 'cancelled' THEN 1 ELSE 0 END),
		       CAST(AVG(latency_ms) AS INTEGER)
		FROM generations
		GROUP BY kind
		ORDER BY kind`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []KindStats
	for rows.Next() {
		var ks KindStats
		if err := rows.Scan(&ks.Kind, &ks.Total, &ks.OK, &ks.Empty, &ks.Failed, &ks.Invalid, &ks.Cancelled, &ks.AvgLatencyMS); err != nil {
			return nil, err
		}
		stats = append(stats, ks)
	}
	return stats, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanGeneration(row scanner) (Generation, error) {
	var (
		g         Generation
		status    string
		latencyMS int64
		createdAt int64
	)
	if err := row.Scan(&g.ID, &g.Kind, &g.Topic, &status, &g.Items, &g.Error, &latencyMS, &createdAt); err != nil {
		return Generation{}, err
	}
	g.Status = Status(status)
	g.Latency = time.Duration(latencyMS) * time.Millisecond
	g.CreatedAt = time.UnixMilli(createdAt)
	return g, nil
}
