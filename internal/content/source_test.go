package content_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/origenlab/backend/internal/content"
	"github.com/origenlab/backend/internal/domain/material"
	"github.com/origenlab/backend/internal/domain/topic"
	"github.com/origenlab/backend/internal/store"
)

type stubProvider struct {
	items []material.Item
	qs    []material.Question
	show  material.ShowQuestion
	word  material.Word
	err   error
}

func (p stubProvider) Definitions(context.Context, topic.ID) ([]material.Item, error) {
	return p.items, p.err
}

func (p stubProvider) Quiz(context.Context, topic.ID, int) ([]material.Question, error) {
	return p.qs, p.err
}

func (p stubProvider) ShowQuestion(context.Context, string) (material.ShowQuestion, error) {
	return p.show, p.err
}

func (p stubProvider) HangmanWord(context.Context, topic.ID) (material.Word, error) {
	return p.word, p.err
}

type memJournal struct {
	mu      sync.Mutex
	entries []store.Generation
}

func (j *memJournal) RecordGeneration(_ context.Context, g store.Generation) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.entries = append(j.entries, g)
	return nil
}

func (j *memJournal) last(t *testing.T) store.Generation {
	t.Helper()
	j.mu.Lock()
	defer j.mu.Unlock()
	if len(j.entries) == 0 {
		t.Fatal("expected a journal entry")
	}
	return j.entries[len(j.entries)-1]
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSource_ProviderErrorDegrades(t *testing.T) {
	j := &memJournal{}
	src := content.NewSource(stubProvider{err: errors.New("API key missing")}, j, discardLogger())
	ctx := context.Background()

	if items := src.Definitions(ctx, topic.Evolucion); items == nil || len(items) != 0 {
		t.Errorf("expected empty non-nil definitions, got %v", items)
	}
	if j.last(t).Status != store.StatusFailed {
		t.Errorf("expected failed status, got %q", j.last(t).Status)
	}

	if qs := src.Quiz(ctx, topic.Evolucion, 20); len(qs) != 0 {
		t.Errorf("expected empty quiz, got %d", len(qs))
	}

	if w := src.HangmanWord(ctx, topic.Evolucion); w != material.FallbackWord {
		t.Errorf("expected fallback word, got %+v", w)
	}

	q := src.ShowQuestion(ctx, "Cientificos famosos")
	if q.Prompt != material.FallbackShowQuestion.Prompt || len(q.Answers) != 0 {
		t.Errorf("expected fallback show question, got %+v", q)
	}
}

func TestSource_QuizOutOfBoundsDiscardsBatch(t *testing.T) {
	j := &memJournal{}
	src := content.NewSource(stubProvider{qs: []material.Question{
		{Prompt: "ok", Options: []string{"a", "b"}, CorrectIndex: 1},
		{Prompt: "bad", Options: []string{"a", "b"}, CorrectIndex: 5},
	}}, j, discardLogger())

	qs := src.Quiz(context.Background(), topic.Pasteur, 20)

	if len(qs) != 0 {
		t.Errorf("expected batch discarded, got %d questions", len(qs))
	}
	if j.last(t).Status != store.StatusInvalid {
		t.Errorf("expected invalid status, got %q", j.last(t).Status)
	}
}

func TestSource_QuizTruncatesToCount(t *testing.T) {
	qs := make([]material.Question, 5)
	for i := range qs {
		qs[i] = material.Question{Prompt: "p", Options: []string{"a", "b"}}
	}
	src := content.NewSource(stubProvider{qs: qs}, nil, discardLogger())

	if got := src.Quiz(context.Background(), topic.Pasteur, 3); len(got) != 3 {
		t.Errorf("expected 3 questions, got %d", len(got))
	}
}

func TestSource_DefinitionsNormalized(t *testing.T) {
	items := make([]material.Item, 12)
	for i := range items {
		items[i] = material.Item{ID: "same", Prompt: "t", Answer: "d"}
	}
	j := &memJournal{}
	src := content.NewSource(stubProvider{items: items}, j, discardLogger())

	got := src.Definitions(context.Background(), topic.Abiogenesis)

	if len(got) != content.DefinitionCount {
		t.Fatalf("expected %d items, got %d", content.DefinitionCount, len(got))
	}
	if got[0].ID == got[1].ID {
		t.Error("expected duplicate ids to be replaced")
	}
	if e := j.last(t); e.Status != store.StatusOK || e.Items != content.DefinitionCount {
		t.Errorf("unexpected journal entry %+v", e)
	}
}

func TestSource_EmptyResult(t *testing.T) {
	j := &memJournal{}
	src := content.NewSource(stubProvider{}, j, discardLogger())

	src.Definitions(context.Background(), topic.Abiogenesis)

	if j.last(t).Status != store.StatusEmpty {
		t.Errorf("expected empty status, got %q", j.last(t).Status)
	}
}

func TestSource_InvalidWordFallsBack(t *testing.T) {
	j := &memJournal{}
	src := content.NewSource(stubProvider{word: material.Word{Word: "SOPA PRIMITIVA"}}, j, discardLogger())

	if w := src.HangmanWord(context.Background(), topic.Abiogenesis); w != material.FallbackWord {
		t.Errorf("expected fallback word, got %+v", w)
	}
	if j.last(t).Status != store.StatusInvalid {
		t.Errorf("expected invalid status, got %q", j.last(t).Status)
	}
}

func TestSource_WordNormalized(t *testing.T) {
	src := content.NewSource(stubProvider{word: material.Word{Word: "cometa", Hint: "helado"}}, nil, discardLogger())

	if w := src.HangmanWord(context.Background(), topic.Panspermia); w.Word != "COMETA" {
		t.Errorf("expected COMETA, got %q", w.Word)
	}
}

func TestSource_ShowQuestionHidden(t *testing.T) {
	src := content.NewSource(stubProvider{show: material.ShowQuestion{
		Prompt:  "Nombra un planeta",
		Answers: []material.Answer{{Text: "Marte", Points: 70, Revealed: true}, {Text: "Venus", Points: 30}},
	}}, nil, discardLogger())

	q := src.ShowQuestion(context.Background(), "espacio")
	for _, a := range q.Answers {
		if a.Revealed {
			t.Errorf("expected %q hidden", a.Text)
		}
	}
}

func TestSource_ShowQuestionWithoutAnswers(t *testing.T) {
	j := &memJournal{}
	src := content.NewSource(stubProvider{show: material.ShowQuestion{Prompt: "Nombra algo"}}, j, discardLogger())

	q := src.ShowQuestion(context.Background(), "x")
	if q.Prompt != material.FallbackShowQuestion.Prompt {
		t.Errorf("expected fallback, got %q", q.Prompt)
	}
	if j.last(t).Status != store.StatusInvalid {
		t.Errorf("expected invalid status, got %q", j.last(t).Status)
	}
}

func TestSource_CancelledFetch(t *testing.T) {
	j := &memJournal{}
	src := content.NewSource(stubProvider{err: context.Canceled}, j, discardLogger())

	src.Definitions(context.Background(), topic.Evolucion)

	if j.last(t).Status != store.StatusCancelled {
		t.Errorf("expected cancelled status, got %q", j.last(t).Status)
	}
}
