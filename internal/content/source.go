package content

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/origenlab/backend/internal/domain/material"
	"github.com/origenlab/backend/internal/domain/topic"
	"github.com/origenlab/backend/internal/store"
)

// Journal records provider calls. *store.SQLiteStore satisfies it.
type Journal interface {
	RecordGeneration(ctx context.Context, g store.Generation) error
}

const (
	KindDefinitions  = "definitions"
	KindQuiz         = "quiz"
	KindShowQuestion = "show_question"
	KindHangmanWord  = "hangman_word"
)

// Source is the engine-facing side of a Provider. None of its methods fail:
// provider errors, malformed data and out-of-range indices all degrade to
// an empty result or a fixed fallback, and the outcome is journaled.
type Source struct {
	provider Provider
	journal  Journal // may be nil
	logger   *slog.Logger
}

func NewSource(p Provider, j Journal, logger *slog.Logger) *Source {
	return &Source{provider: p, journal: j, logger: logger}
}

func (s *Source) Definitions(ctx context.Context, t topic.ID) []material.Item {
	start := time.Now()
	items, err := s.provider.Definitions(ctx, t)
	if err != nil {
		s.record(ctx, KindDefinitions, string(t), start, 0, err)
		return []material.Item{}
	}

	items = material.NormalizeItems(items)
	if len(items) > DefinitionCount {
		items = items[:DefinitionCount]
	}
	s.record(ctx, KindDefinitions, string(t), start, len(items), nil)
	return items
}

// Quiz discards the whole batch when any question is malformed.
func (s *Source) Quiz(ctx context.Context, t topic.ID, count int) []material.Question {
	start := time.Now()
	qs, err := s.provider.Quiz(ctx, t, count)
	if err == nil {
		err = material.ValidateQuestions(qs)
		if err != nil {
			err = &invalidError{err}
		}
	}
	if err != nil {
		s.record(ctx, KindQuiz, string(t), start, 0, err)
		return []material.Question{}
	}

	if count > 0 && len(qs) > count {
		qs = qs[:count]
	}
	s.record(ctx, KindQuiz, string(t), start, len(qs), nil)
	return qs
}

func (s *Source) ShowQuestion(ctx context.Context, topicText string) material.ShowQuestion {
	start := time.Now()
	q, err := s.provider.ShowQuestion(ctx, topicText)
	if err == nil {
		err = validateShowQuestion(q)
	}
	if err != nil {
		s.record(ctx, KindShowQuestion, topicText, start, 0, err)
		return material.FallbackShowQuestion.Hidden()
	}

	s.record(ctx, KindShowQuestion, topicText, start, len(q.Answers), nil)
	return q.Hidden()
}

func (s *Source) HangmanWord(ctx context.Context, t topic.ID) material.Word {
	start := time.Now()
	w, err := s.provider.HangmanWord(ctx, t)
	if err == nil {
		w, err = material.NormalizeWord(w)
		if err != nil {
			err = &invalidError{err}
		}
	}
	if err != nil {
		s.record(ctx, KindHangmanWord, string(t), start, 0, err)
		return material.FallbackWord
	}

	s.record(ctx, KindHangmanWord, string(t), start, 1, nil)
	return w
}

// invalidError marks provider output that arrived but could not be used.
type invalidError struct{ err error }

func (e *invalidError) Error() string { return "invalid material: " + e.err.Error() }
func (e *invalidError) Unwrap() error { return e.err }

var errNoAnswers = errors.New("show question has no answers")

func validateShowQuestion(q material.ShowQuestion) error {
	if strings.TrimSpace(q.Prompt) == "" {
		return &invalidError{material.ErrEmptyPrompt}
	}
	if len(q.Answers) == 0 {
		return &invalidError{errNoAnswers}
	}
	for _, a := range q.Answers {
		if strings.TrimSpace(a.Text) == "" || a.Points < 0 {
			return &invalidError{errors.New("show answer needs text and non-negative points")}
		}
	}
	return nil
}

func (s *Source) record(ctx context.Context, kind, subject string, start time.Time, items int, err error) {
	g := store.Generation{
		Kind:      kind,
		Topic:     subject,
		Items:     items,
		Latency:   time.Since(start),
		CreatedAt: start,
	}

	var invalid *invalidError
	switch {
	case err == nil && items == 0:
		g.Status = store.StatusEmpty
	case err == nil:
		g.Status = store.StatusOK
	case errors.Is(err, context.Canceled):
		g.Status = store.StatusCancelled
		g.Error = err.Error()
	case errors.As(err, &invalid):
		g.Status = store.StatusInvalid
		g.Error = err.Error()
	default:
		g.Status = store.StatusFailed
		g.Error = err.Error()
	}

	switch g.Status {
	case store.StatusFailed, store.StatusInvalid:
		s.logger.Warn("content fetch failed", "kind", kind, "topic", subject, "status", g.Status, "error", err)
	case store.StatusCancelled:
		s.logger.Debug("content fetch cancelled", "kind", kind, "topic", subject)
	default:
		s.logger.Info("content fetched", "kind", kind, "topic", subject, "items", items, "latency", g.Latency)
	}

	if s.journal == nil {
		return
	}
	// Superseded fetches are cancelled; their journal entry is still written.
	if jerr := s.journal.RecordGeneration(context.WithoutCancel(ctx), g); jerr != nil {
		s.logger.Error("failed to record generation", "kind", kind, "error", jerr)
	}
}
