package store

import (
	"context"
	"errors"
	"time"
)

var (
	ErrNotFound = errors.New("not found")
)

// Status is the outcome of one Content Provider call.
type Status string

const (
	StatusOK        Status = "ok"
	StatusEmpty     Status = "empty"
	StatusFailed    Status = "failed"
	StatusInvalid   Status = "invalid"
	StatusCancelled Status = "cancelled"
)

// Generation is one journal entry: which material was requested and how
// the provider answered. Scores and session progress are never recorded.
type Generation struct {
	ID        int64
	Kind      string // definitions, quiz, show_question, hangman_word
	Topic     string
	Status    Status
	Items     int
	Error     string
	Latency   time.Duration
	CreatedAt time.Time
}

// KindStats aggregates journal entries per material kind.
type KindStats struct {
	Kind         string
	Total        int
	OK           int
	Empty        int
	Failed       int
	Invalid      int
	Cancelled    int
	AvgLatencyMS int64
}

// Journal is the persistence contract for generation records.
type Journal interface {
	RecordGeneration(ctx context.Context, g Generation) error
	GetGeneration(ctx context.Context, id int64) (*Generation, error)
	ListGenerations(ctx context.Context, limit int) ([]Generation, error)
	GenerationStats(ctx context.Context) ([]KindStats, error)
}
