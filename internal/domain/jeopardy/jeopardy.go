package jeopardy

import (
	"fmt"
	"slices"
)

var (
	Categories = []string{"Evolución", "Células", "Historia", "Espacio"}
	Values     = []int{100, 200, 300, 400, 500}
)

type Clue struct {
	Category string `json:"category"`
	Points   int    `json:"points"`
}

func (c Clue) key() string {
	return fmt.Sprintf("%s-%d", c.Category, c.Points)
}

func (c Clue) Valid() bool {
	return slices.Contains(Categories, c.Category) && slices.Contains(Values, c.Points)
}

type State struct {
	Active    *Clue
	Completed map[string]bool
	Score     int
}

func New() State {
	return State{Completed: map[string]bool{}}
}

func (s State) IsCompleted(c Clue) bool {
	return s.Completed[c.key()]
}

func (s State) Finished() bool {
	return len(s.Completed) == len(Categories)*len(Values)
}

// Select opens a clue. Completed clues stay closed; opening another clue
// replaces the active one.
func Select(s State, c Clue) (State, bool) {
	if !c.Valid() || s.IsCompleted(c) {
		return s, false
	}
	s.Active = &c
	return s, true
}

// Answer closes the active clue, crediting its value when correct.
func Answer(s State, correct bool) (State, bool) {
	if s.Active == nil {
		return s, false
	}
	completed := make(map[string]bool, len(s.Completed)+1)
	for k := range s.Completed {
		completed[k] = true
	}
	completed[s.Active.key()] = true
	s.Completed = completed

	if correct {
		s.Score += s.Active.Points
	}
	s.Active = nil
	return s, true
}
