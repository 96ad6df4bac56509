package matching_test

import (
	"math/rand/v2"
	"testing"

	"github.com/origenlab/backend/internal/domain/matching"
	"github.com/origenlab/backend/internal/domain/material"
)

func items(n int) []material.Item {
	out := make([]material.Item, n)
	for i := range out {
		key := string(rune('a' + i))
		out[i] = material.Item{ID: key, Prompt: "term " + key, Answer: "def " + key}
	}
	return out
}

func TestNew_UsesAtMostFivePairs(t *testing.T) {
	s := matching.New(items(10))

	if s.Pairs() != 5 {
		t.Errorf("expected 5 pairs, got %d", s.Pairs())
	}
	if len(s.Halves) != 10 {
		t.Errorf("expected 10 halves, got %d", len(s.Halves))
	}
}

func TestNew_Shuffles(t *testing.T) {
	first := matching.NewWithRand(items(5), rand.New(rand.NewPCG(1, 2)))

	foundDifferentOrder := false
	for seed := uint64(3); seed < 20; seed++ {
		other := matching.NewWithRand(items(5), rand.New(rand.NewPCG(seed, seed)))
		for i := range other.Halves {
			if other.Halves[i].ID != first.Halves[i].ID {
				foundDifferentOrder = true
			}
		}
	}

	if !foundDifferentOrder {
		t.Error("expected halves to be shuffled")
	}
}

func TestSelect_MatchScenario(t *testing.T) {
	s := matching.New(items(2))

	s, _ = matching.Select(s, "a-q")
	s, _ = matching.Select(s, "a-a")
	if !s.Matched["a"] {
		t.Fatal("expected pair a to be matched")
	}
	if s.Selected != "" {
		t.Error("expected selection to be cleared")
	}

	s, _ = matching.Select(s, "b-q")
	s, _ = matching.Select(s, "a-q")
	if len(s.Matched) != 1 {
		t.Errorf("expected unrelated selection not to re-match, got %d matched", len(s.Matched))
	}
}

func TestSelect_SameIDTogglesOff(t *testing.T) {
	s := matching.New(items(2))

	s, _ = matching.Select(s, "b-a")
	s, _ = matching.Select(s, "b-a")

	if s.Selected != "" {
		t.Errorf("expected no selection, got %q", s.Selected)
	}
	if len(s.Matched) != 0 {
		t.Error("expected matched set untouched")
	}
}

func TestSelect_MismatchClearsSelection(t *testing.T) {
	s := matching.New(items(3))

	s, _ = matching.Select(s, "a-q")
	s, _ = matching.Select(s, "c-a")

	if s.Selected != "" {
		t.Error("expected selection cleared after mismatch")
	}
	if len(s.Matched) != 0 {
		t.Error("expected no match")
	}
}

func TestSelect_IgnoresUnknownAndMatched(t *testing.T) {
	s := matching.New(items(2))

	if _, ok := matching.Select(s, "zz"); ok {
		t.Error("expected unknown half to be ignored")
	}

	s, _ = matching.Select(s, "a-q")
	s, _ = matching.Select(s, "a-a")
	if _, ok := matching.Select(s, "a-q"); ok {
		t.Error("expected matched half to be ignored")
	}
}

func TestComplete(t *testing.T) {
	s := matching.New(items(2))
	if s.Complete() {
		t.Fatal("expected fresh board not to be complete")
	}

	for _, id := range []string{"a-q", "a-a", "b-a", "b-q"} {
		s, _ = matching.Select(s, id)
	}

	if !s.Complete() {
		t.Error("expected board to be complete")
	}
	if len(s.Matched) > s.Pairs() {
		t.Error("matched pairs exceed total pairs")
	}

	if matching.New(nil).Complete() {
		t.Error("expected empty board not to be complete")
	}
}

func TestSelect_DoesNotMutatePreviousState(t *testing.T) {
	s := matching.New(items(2))
	s, _ = matching.Select(s, "a-q")
	before := s

	after, _ := matching.Select(s, "a-a")

	if len(before.Matched) != 0 {
		t.Error("expected previous snapshot to keep its matched set")
	}
	if len(after.Matched) != 1 {
		t.Error("expected new snapshot to have one match")
	}
}
