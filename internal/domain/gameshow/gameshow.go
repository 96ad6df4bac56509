package gameshow

import "github.com/origenlab/backend/internal/domain/material"

// MaxStrikes is the strike count that hands the turn to the other team.
const MaxStrikes = 3

type Team int

const (
	TeamA Team = iota
	TeamB
)

func (t Team) Other() Team {
	if t == TeamA {
		return TeamB
	}
	return TeamA
}

func (t Team) String() string {
	if t == TeamB {
		return "B"
	}
	return "A"
}

func (t Team) Valid() bool {
	return t == TeamA || t == TeamB
}

type State struct {
	Scores   [2]int
	Strikes  int
	Active   Team
	Question *material.ShowQuestion
}

func New() State {
	return State{}
}

// StartRound installs a new question with every answer hidden. Scores carry
// over between rounds; strikes do not.
func StartRound(s State, q material.ShowQuestion) State {
	hidden := q.Hidden()
	s.Question = &hidden
	s.Strikes = 0
	return s
}

// Reveal shows answer i and credits its points to the active team. An
// answer is credited at most once.
func Reveal(s State, i int) (State, bool) {
	if s.Question == nil || i < 0 || i >= len(s.Question.Answers) {
		return s, false
	}
	if s.Question.Answers[i].Revealed {
		return s, false
	}

	answers := make([]material.Answer, len(s.Question.Answers))
	copy(answers, s.Question.Answers)
	answers[i].Revealed = true
	s.Question = &material.ShowQuestion{Prompt: s.Question.Prompt, Answers: answers}

	s.Scores[s.Active] += answers[i].Points
	return s, true
}

// AddStrike counts a wrong answer. The third strike resets the count and
// passes the turn in the same step.
func AddStrike(s State) State {
	s.Strikes++
	if s.Strikes >= MaxStrikes {
		s.Strikes = 0
		s.Active = s.Active.Other()
	}
	return s
}

// SetTeam overrides whose turn it is.
func SetTeam(s State, t Team) (State, bool) {
	if !t.Valid() || t == s.Active {
		return s, false
	}
	s.Active = t
	return s, true
}
