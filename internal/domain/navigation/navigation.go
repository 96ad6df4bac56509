// Package navigation is the screen-level state machine of a study session.
// Every transition is a pure function returning the next state and whether
// the action applied; actions that do not fit the current state are ignored.
package navigation

import "github.com/origenlab/backend/internal/domain/topic"

type Mode string

const (
	Home       Mode = "home"
	Learn      Mode = "learn"
	Activities Mode = "activities"
	Quiz       Mode = "quiz"
	Arcade     Mode = "arcade"
	GameShow   Mode = "gameshow"
)

// ArcadeGame names a game inside the arcade hub.
type ArcadeGame string

const (
	NoGame    ArcadeGame = ""
	Hangman   ArcadeGame = "hangman"
	TicTacToe ArcadeGame = "tictactoe"
	Jeopardy  ArcadeGame = "jeopardy"
)

func (g ArcadeGame) Valid() bool {
	return g == Hangman || g == TicTacToe || g == Jeopardy
}

// ActivityCount is the number of activities listed in the activities hub.
const ActivityCount = 10

type ActivityKind string

const (
	Flashcards ActivityKind = "flashcards"
	Matching   ActivityKind = "matching"
)

// KindOf returns the exercise behind activity n (1-based): odd numbers are
// flashcards, even numbers matching.
func KindOf(n int) ActivityKind {
	if n%2 == 1 {
		return Flashcards
	}
	return Matching
}

type State struct {
	Mode  Mode
	Topic topic.ID // set in Learn, Activities and Quiz

	Activity   int        // open activity in Activities, 0 = hub
	ArcadeGame ArcadeGame // open game in Arcade, NoGame = menu
}

func HomeState() State {
	return State{Mode: Home}
}

// InTopic reports whether a topic context is active.
func (s State) InTopic() bool {
	return s.Mode == Learn || s.Mode == Activities || s.Mode == Quiz
}

func SelectTopic(s State, id topic.ID) (State, bool) {
	if s.Mode != Home {
		return s, false
	}
	if _, ok := topic.Lookup(id); !ok {
		return s, false
	}
	return State{Mode: Learn, Topic: id}, true
}

// SwitchTab moves among Learn, Activities and Quiz inside the current topic.
func SwitchTab(s State, tab Mode) (State, bool) {
	if !s.InTopic() {
		return s, false
	}
	if tab != Learn && tab != Activities && tab != Quiz {
		return s, false
	}
	if tab == s.Mode {
		return s, false
	}
	return State{Mode: tab, Topic: s.Topic}, true
}

func OpenArcade(s State) (State, bool) {
	if s.Mode != Home {
		return s, false
	}
	return State{Mode: Arcade}, true
}

func OpenGameShow(s State) (State, bool) {
	if s.Mode != Home {
		return s, false
	}
	return State{Mode: GameShow}, true
}

// Exit returns to Home from anywhere else.
func Exit(s State) (State, bool) {
	if s.Mode == Home {
		return s, false
	}
	return HomeState(), true
}

func OpenActivity(s State, n int) (State, bool) {
	if s.Mode != Activities || s.Activity != 0 {
		return s, false
	}
	if n < 1 || n > ActivityCount {
		return s, false
	}
	s.Activity = n
	return s, true
}

func CloseActivity(s State) (State, bool) {
	if s.Mode != Activities || s.Activity == 0 {
		return s, false
	}
	s.Activity = 0
	return s, true
}

func OpenArcadeGame(s State, g ArcadeGame) (State, bool) {
	if s.Mode != Arcade || s.ArcadeGame != NoGame || !g.Valid() {
		return s, false
	}
	s.ArcadeGame = g
	return s, true
}

func CloseArcadeGame(s State) (State, bool) {
	if s.Mode != Arcade || s.ArcadeGame == NoGame {
		return s, false
	}
	s.ArcadeGame = NoGame
	return s, true
}
