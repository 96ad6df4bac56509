package gameshow_test

import (
	"testing"

	"github.com/origenlab/backend/internal/domain/gameshow"
	"github.com/origenlab/backend/internal/domain/material"
)

func question() material.ShowQuestion {
	return material.ShowQuestion{
		Prompt: "Nombra un científico famoso",
		Answers: []material.Answer{
			{Text: "Darwin", Points: 40},
			{Text: "Pasteur", Points: 30},
			{Text: "Oparin", Points: 20},
			{Text: "Miller", Points: 10},
		},
	}
}

func TestReveal_Idempotent(t *testing.T) {
	s := gameshow.StartRound(gameshow.New(), question())

	s, ok := gameshow.Reveal(s, 0)
	if !ok {
		t.Fatal("expected reveal to apply")
	}
	s, ok = gameshow.Reveal(s, 0)
	if ok {
		t.Error("expected second reveal to be ignored")
	}

	if s.Scores[gameshow.TeamA] != 40 {
		t.Errorf("expected team A 40, got %d", s.Scores[gameshow.TeamA])
	}
}

func TestReveal_CreditsActiveTeam(t *testing.T) {
	s := gameshow.StartRound(gameshow.New(), question())
	s, _ = gameshow.SetTeam(s, gameshow.TeamB)

	s, _ = gameshow.Reveal(s, 1)

	if s.Scores[gameshow.TeamB] != 30 || s.Scores[gameshow.TeamA] != 0 {
		t.Errorf("unexpected scores %v", s.Scores)
	}
}

func TestReveal_OutOfRangeAndNoQuestion(t *testing.T) {
	if _, ok := gameshow.Reveal(gameshow.New(), 0); ok {
		t.Error("expected reveal without question to be ignored")
	}

	s := gameshow.StartRound(gameshow.New(), question())
	for _, i := range []int{-1, 4} {
		if _, ok := gameshow.Reveal(s, i); ok {
			t.Errorf("expected index %d to be ignored", i)
		}
	}
}

func TestReveal_DoesNotMutatePreviousSnapshot(t *testing.T) {
	before := gameshow.StartRound(gameshow.New(), question())

	after, _ := gameshow.Reveal(before, 2)

	if before.Question.Answers[2].Revealed {
		t.Error("expected previous snapshot to stay hidden")
	}
	if !after.Question.Answers[2].Revealed {
		t.Error("expected new snapshot to be revealed")
	}
}

func TestAddStrike_ThirdStrikeFlipsTurn(t *testing.T) {
	s := gameshow.New()

	s = gameshow.AddStrike(s)
	s = gameshow.AddStrike(s)
	if s.Strikes != 2 || s.Active != gameshow.TeamA {
		t.Fatalf("expected 2 strikes for A, got %d for %s", s.Strikes, s.Active)
	}

	s = gameshow.AddStrike(s)
	if s.Strikes != 0 {
		t.Errorf("expected strikes reset to 0, got %d", s.Strikes)
	}
	if s.Active != gameshow.TeamB {
		t.Errorf("expected team B, got %s", s.Active)
	}
}

func TestAddStrike_NeverStoresThree(t *testing.T) {
	s := gameshow.New()
	flips := 0

	for i := 0; i < 9; i++ {
		prev := s.Active
		s = gameshow.AddStrike(s)
		if s.Strikes >= gameshow.MaxStrikes {
			t.Fatalf("stored %d strikes", s.Strikes)
		}
		if s.Active != prev {
			flips++
		}
	}

	if flips != 3 {
		t.Errorf("expected 3 turn flips, got %d", flips)
	}
}

func TestStartRound_KeepsScoresResetsStrikes(t *testing.T) {
	s := gameshow.StartRound(gameshow.New(), question())
	s, _ = gameshow.Reveal(s, 0)
	s = gameshow.AddStrike(s)

	s = gameshow.StartRound(s, question())

	if s.Strikes != 0 {
		t.Errorf("expected strikes 0, got %d", s.Strikes)
	}
	if s.Scores[gameshow.TeamA] != 40 {
		t.Errorf("expected score kept, got %d", s.Scores[gameshow.TeamA])
	}
	if s.Question.Answers[0].Revealed {
		t.Error("expected new round to start hidden")
	}
}

func TestSetTeam(t *testing.T) {
	s := gameshow.New()

	if _, ok := gameshow.SetTeam(s, gameshow.TeamA); ok {
		t.Error("expected setting the active team to be a no-op")
	}
	if _, ok := gameshow.SetTeam(s, gameshow.Team(7)); ok {
		t.Error("expected invalid team to be ignored")
	}
}
