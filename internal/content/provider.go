// Package content produces study material for the session engine.
//
// A Provider may fail in any way it likes. Source wraps a Provider and is
// the only thing the engine talks to: it never returns an error, turning
// every failure into an empty collection or a fixed fallback.
package content

import (
	"context"

	"github.com/origenlab/backend/internal/domain/material"
	"github.com/origenlab/backend/internal/domain/topic"
)

const (
	DefinitionCount = 10
	QuizLength      = 20
)

// Provider generates study material. Implementations may call an LLM,
// serve canned content, or return fixtures (for tests).
type Provider interface {
	Definitions(ctx context.Context, t topic.ID) ([]material.Item, error)
	Quiz(ctx context.Context, t topic.ID, count int) ([]material.Question, error)
	ShowQuestion(ctx context.Context, topicText string) (material.ShowQuestion, error)
	HangmanWord(ctx context.Context, t topic.ID) (material.Word, error)
}
