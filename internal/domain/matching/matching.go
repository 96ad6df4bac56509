package matching

import (
	"math/rand/v2"

	"github.com/origenlab/backend/internal/domain/material"
)

// PairLimit is how many term/definition pairs one game uses.
const PairLimit = 5

type Side string

const (
	Term       Side = "Q"
	Definition Side = "A"
)

// Half is one card on the board. Two halves belong together when they share
// a PairKey.
type Half struct {
	ID      string
	Text    string
	Side    Side
	PairKey string
}

type State struct {
	Halves   []Half
	Selected string          // id of the selected half, "" when none
	Matched  map[string]bool // pair keys
}

// New builds a board from the first PairLimit items, shuffled with a
// freshly seeded source.
func New(items []material.Item) State {
	return NewWithRand(items, rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
}

// NewWithRand is New with a caller-supplied source.
func NewWithRand(items []material.Item, rng *rand.Rand) State {
	if len(items) > PairLimit {
		items = items[:PairLimit]
	}

	halves := make([]Half, 0, len(items)*2)
	for _, it := range items {
		halves = append(halves,
			Half{ID: it.ID + "-q", Text: it.Prompt, Side: Term, PairKey: it.ID},
			Half{ID: it.ID + "-a", Text: it.Answer, Side: Definition, PairKey: it.ID},
		)
	}

	rng.Shuffle(len(halves), func(i, j int) {
		halves[i], halves[j] = halves[j], halves[i]
	})

	return State{Halves: halves, Matched: map[string]bool{}}
}

func (s State) Pairs() int {
	return len(s.Halves) / 2
}

func (s State) Complete() bool {
	return s.Pairs() > 0 && len(s.Matched) == s.Pairs()
}

func (s State) half(id string) (Half, bool) {
	for _, h := range s.Halves {
		if h.ID == id {
			return h, true
		}
	}
	return Half{}, false
}

// Select applies a click on a half. Clicking the selected half deselects
// it; a second half completes an attempt, which matches when both halves
// share a pair key, and always clears the selection.
func Select(s State, id string) (State, bool) {
	h, ok := s.half(id)
	if !ok || s.Matched[h.PairKey] {
		return s, false
	}

	if s.Selected == id {
		s.Selected = ""
		return s, true
	}
	if s.Selected == "" {
		s.Selected = id
		return s, true
	}

	prev, _ := s.half(s.Selected)
	if prev.PairKey == h.PairKey && prev.ID != h.ID {
		matched := make(map[string]bool, len(s.Matched)+1)
		for k := range s.Matched {
			matched[k] = true
		}
		matched[h.PairKey] = true
		s.Matched = matched
	}
	s.Selected = ""
	return s, true
}
