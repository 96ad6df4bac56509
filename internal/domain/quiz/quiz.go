package quiz

import "github.com/origenlab/backend/internal/domain/material"

// Feedback is shown after an answer until the session advances.
type Feedback struct {
	Selected int
	Correct  bool
}

// State is one run through a list of multiple-choice questions.
// Score never exceeds Position+1 and Position stays below the number of
// questions until the run is finished.
type State struct {
	Questions []material.Question
	Position  int
	Score     int
	Feedback  *Feedback
	Finished  bool
}

func New(questions []material.Question) State {
	return State{Questions: questions}
}

func (s State) Empty() bool {
	return len(s.Questions) == 0
}

// Current returns the question at the current position.
func (s State) Current() (material.Question, bool) {
	if s.Finished || s.Position >= len(s.Questions) {
		return material.Question{}, false
	}
	return s.Questions[s.Position], true
}

// Submit records an answer for the current question. It is rejected while
// feedback is displayed, after the run finished, or for an option that does
// not exist.
func Submit(s State, option int) (State, bool) {
	if s.Feedback != nil {
		return s, false
	}
	q, ok := s.Current()
	if !ok {
		return s, false
	}
	if option < 0 || option >= len(q.Options) {
		return s, false
	}

	correct := option == q.CorrectIndex
	if correct {
		s.Score++
	}
	s.Feedback = &Feedback{Selected: option, Correct: correct}
	return s, true
}

// Advance ends the feedback display and moves on, finishing the run after
// the last question.
func Advance(s State) (State, bool) {
	if s.Feedback == nil {
		return s, false
	}
	s.Feedback = nil
	if s.Position < len(s.Questions)-1 {
		s.Position++
	} else {
		s.Finished = true
	}
	return s, true
}
