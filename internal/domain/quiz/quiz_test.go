package quiz_test

import (
	"testing"

	"github.com/origenlab/backend/internal/domain/material"
	"github.com/origenlab/backend/internal/domain/quiz"
)

func questions(correct ...int) []material.Question {
	qs := make([]material.Question, len(correct))
	for i, c := range correct {
		qs[i] = material.Question{
			Prompt:       "Pregunta",
			Options:      []string{"A", "B", "C"},
			CorrectIndex: c,
		}
	}
	return qs
}

func TestTwoQuestionScenario(t *testing.T) {
	s := quiz.New(questions(1, 0))

	s, ok := quiz.Submit(s, 1)
	if !ok {
		t.Fatal("expected first answer to be accepted")
	}
	if s.Score != 1 {
		t.Errorf("expected score 1, got %d", s.Score)
	}
	if s.Feedback == nil || !s.Feedback.Correct {
		t.Error("expected correct feedback")
	}

	s, _ = quiz.Advance(s)
	if s.Position != 1 {
		t.Errorf("expected position 1, got %d", s.Position)
	}

	s, _ = quiz.Submit(s, 1)
	if s.Score != 1 {
		t.Errorf("expected score to stay 1, got %d", s.Score)
	}
	if s.Feedback.Correct {
		t.Error("expected incorrect feedback")
	}

	s, _ = quiz.Advance(s)
	if !s.Finished {
		t.Fatal("expected quiz to be finished")
	}
	if s.Score != 1 || len(s.Questions) != 2 {
		t.Errorf("expected final 1/2, got %d/%d", s.Score, len(s.Questions))
	}
}

func TestSubmit_RejectedDuringFeedback(t *testing.T) {
	s := quiz.New(questions(0, 0))
	s, _ = quiz.Submit(s, 0)

	next, ok := quiz.Submit(s, 0)
	if ok {
		t.Error("expected second submit to be rejected while feedback is shown")
	}
	if next.Score != 1 {
		t.Errorf("expected score 1, got %d", next.Score)
	}
}

func TestSubmit_RejectedWhenFinishedOrEmpty(t *testing.T) {
	if _, ok := quiz.Submit(quiz.New(nil), 0); ok {
		t.Error("expected submit on empty quiz to be rejected")
	}

	s := quiz.New(questions(0))
	s, _ = quiz.Submit(s, 0)
	s, _ = quiz.Advance(s)
	if _, ok := quiz.Submit(s, 0); ok {
		t.Error("expected submit after finish to be rejected")
	}
}

func TestSubmit_OptionOutOfRange(t *testing.T) {
	s := quiz.New(questions(0))

	for _, opt := range []int{-1, 3} {
		if _, ok := quiz.Submit(s, opt); ok {
			t.Errorf("expected option %d to be rejected", opt)
		}
	}
}

func TestAdvance_WithoutFeedback(t *testing.T) {
	s := quiz.New(questions(0, 1))
	if _, ok := quiz.Advance(s); ok {
		t.Error("expected advance without feedback to be ignored")
	}
}

func TestScoreNeverExceedsPositionPlusOne(t *testing.T) {
	s := quiz.New(questions(0, 1, 2, 0, 1))
	answers := []int{0, 1, 0, 0, 1}

	for _, a := range answers {
		s, _ = quiz.Submit(s, a)
		if s.Score > s.Position+1 {
			t.Fatalf("score %d exceeds position %d + 1", s.Score, s.Position)
		}
		s, _ = quiz.Advance(s)
		if !s.Finished && s.Position >= len(s.Questions) {
			t.Fatalf("position %d out of range while running", s.Position)
		}
	}

	if s.Score != 4 {
		t.Errorf("expected score 4, got %d", s.Score)
	}
}
