package content_test

import (
	"context"
	"testing"

	"github.com/origenlab/backend/internal/content"
	"github.com/origenlab/backend/internal/domain/material"
	"github.com/origenlab/backend/internal/domain/topic"
)

func TestStatic_CoversEveryTopic(t *testing.T) {
	ctx := context.Background()
	p := content.Static{}

	for _, tp := range topic.Catalog() {
		items, err := p.Definitions(ctx, tp.ID)
		if err != nil || len(items) == 0 {
			t.Errorf("%s: expected definitions, got %d (%v)", tp.ID, len(items), err)
		}

		qs, err := p.Quiz(ctx, tp.ID, content.QuizLength)
		if err != nil || len(qs) == 0 {
			t.Errorf("%s: expected quiz, got %d (%v)", tp.ID, len(qs), err)
		}
		if err := material.ValidateQuestions(qs); err != nil {
			t.Errorf("%s: invalid static quiz: %v", tp.ID, err)
		}

		w, err := p.HangmanWord(ctx, tp.ID)
		if err != nil {
			t.Errorf("%s: hangman word error: %v", tp.ID, err)
		}
		if _, err := material.NormalizeWord(w); err != nil {
			t.Errorf("%s: unplayable word %q", tp.ID, w.Word)
		}
	}
}

func TestStatic_QuizAnswersPointAtTerm(t *testing.T) {
	p := content.Static{}
	items, _ := p.Definitions(context.Background(), topic.Pasteur)
	qs, _ := p.Quiz(context.Background(), topic.Pasteur, 3)

	if len(qs) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(qs))
	}
	for i, q := range qs {
		if q.Options[q.CorrectIndex] != items[i].Prompt {
			t.Errorf("question %d: expected correct option %q, got %q", i, items[i].Prompt, q.Options[q.CorrectIndex])
		}
	}
}

func TestStatic_ShowQuestionStablePerText(t *testing.T) {
	p := content.Static{}
	a, _ := p.ShowQuestion(context.Background(), "Cientificos famosos")
	b, _ := p.ShowQuestion(context.Background(), "Cientificos famosos")

	if a.Prompt != b.Prompt {
		t.Error("expected the same question for the same text")
	}
	if a.PointTotal() != 100 {
		t.Errorf("expected 100 points, got %d", a.PointTotal())
	}

	a.Answers[0].Text = "changed"
	c, _ := p.ShowQuestion(context.Background(), "Cientificos famosos")
	if c.Answers[0].Text == "changed" {
		t.Error("expected canned answers to be copied")
	}
}

func TestStatic_UnknownTopic(t *testing.T) {
	if _, err := (content.Static{}).Definitions(context.Background(), "lamarck"); err == nil {
		t.Error("expected error for unknown topic")
	}
}
