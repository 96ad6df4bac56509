package service

import (
	"slices"

	"github.com/origenlab/backend/internal/domain/gameshow"
	"github.com/origenlab/backend/internal/domain/hangman"
	"github.com/origenlab/backend/internal/domain/jeopardy"
	"github.com/origenlab/backend/internal/domain/material"
	"github.com/origenlab/backend/internal/domain/navigation"
	"github.com/origenlab/backend/internal/domain/tictactoe"
	"github.com/origenlab/backend/internal/domain/topic"
)

// Snapshot is a read-only copy of a session for rendering. It shares no
// memory with the live session.
type Snapshot struct {
	ID           string                  `json:"id"`
	Mode         navigation.Mode         `json:"mode"`
	Topic        *topic.Topic            `json:"topic,omitempty"`
	Activity     int                     `json:"activity,omitempty"`
	ActivityKind navigation.ActivityKind `json:"activityKind,omitempty"`
	ArcadeGame   navigation.ArcadeGame   `json:"arcadeGame,omitempty"`
	Views        map[View]ViewStatus     `json:"views"`

	Learn      []material.Item `json:"learn,omitempty"`
	Quiz       *QuizView       `json:"quiz,omitempty"`
	Flashcards *FlashcardView  `json:"flashcards,omitempty"`
	Matching   *MatchingView   `json:"matching,omitempty"`
	Hangman    *HangmanView    `json:"hangman,omitempty"`
	TicTacToe  *TicTacToeView  `json:"tictactoe,omitempty"`
	Jeopardy   *JeopardyView   `json:"jeopardy,omitempty"`
	GameShow   *GameShowView   `json:"gameshow,omitempty"`
}

// ViewStatus is the fetch lifecycle of one view. Ready with empty material
// means the provider gave nothing and the client should offer a retry.
type ViewStatus struct {
	Generation uint64 `json:"generation"`
	Loading    bool   `json:"loading"`
	Ready      bool   `json:"ready"`
}

type QuizView struct {
	Total    int           `json:"total"`
	Position int           `json:"position"`
	Score    int           `json:"score"`
	Finished bool          `json:"finished"`
	Question *QuestionView `json:"question,omitempty"`
	Feedback *FeedbackView `json:"feedback,omitempty"`
}

type QuestionView struct {
	Prompt  string   `json:"question"`
	Options []string `json:"options"`
}

type FeedbackView struct {
	Selected     int    `json:"selected"`
	Correct      bool   `json:"correct"`
	CorrectIndex int    `json:"correctIndex"`
	Explanation  string `json:"explanation"`
}

type FlashcardView struct {
	Total   int            `json:"total"`
	Index   int            `json:"index"`
	Flipped bool           `json:"flipped"`
	Card    *material.Item `json:"card,omitempty"`
}

type MatchingView struct {
	Halves   []HalfView `json:"halves"`
	Selected string     `json:"selected,omitempty"`
	Matched  int        `json:"matched"`
	Pairs    int        `json:"pairs"`
	Complete bool       `json:"complete"`
}

type HalfView struct {
	ID      string `json:"id"`
	Text    string `json:"text"`
	Side    string `json:"side"`
	Matched bool   `json:"matched"`
}

type HangmanView struct {
	Masked      string   `json:"masked"`
	Hint        string   `json:"hint"`
	Guessed     []string `json:"guessed"`
	Mistakes    int      `json:"mistakes"`
	MaxMistakes int      `json:"maxMistakes"`
	Won         bool     `json:"won"`
	Lost        bool     `json:"lost"`
	Word        string   `json:"word,omitempty"` // only once the game is over
}

type TicTacToeView struct {
	Board  [9]tictactoe.Mark `json:"board"`
	Next   tictactoe.Mark    `json:"next,omitempty"`
	Winner tictactoe.Mark    `json:"winner,omitempty"`
	Draw   bool              `json:"draw"`
}

type JeopardyView struct {
	Board    []ClueView     `json:"board"`
	Active   *jeopardy.Clue `json:"active,omitempty"`
	Score    int            `json:"score"`
	Finished bool           `json:"finished"`
}

type ClueView struct {
	Category  string `json:"category"`
	Points    int    `json:"points"`
	Completed bool   `json:"completed"`
}

type GameShowView struct {
	Scores     [2]int                 `json:"scores"`
	Strikes    int                    `json:"strikes"`
	Active     gameshow.Team          `json:"active"`
	ActiveName string                 `json:"activeName"`
	Question   *material.ShowQuestion `json:"question,omitempty"`
}

// snapshot must be called with s.mu held.
func (s *session) snapshot() Snapshot {
	snap := Snapshot{
		ID:         s.id,
		Mode:       s.nav.Mode,
		Activity:   s.nav.Activity,
		ArcadeGame: s.nav.ArcadeGame,
		Views:      make(map[View]ViewStatus, len(s.fetches)),
	}
	if t, ok := topic.Lookup(s.nav.Topic); ok {
		snap.Topic = &t
	}
	if s.nav.Activity != 0 {
		snap.ActivityKind = navigation.KindOf(s.nav.Activity)
	}
	for v, f := range s.fetches {
		snap.Views[v] = ViewStatus{Generation: f.generation, Loading: f.loading, Ready: f.ready}
	}

	switch s.nav.Mode {
	case navigation.Learn:
		if s.fetches[ViewLearn].ready {
			snap.Learn = slices.Clone(s.learn)
		}
	case navigation.Quiz:
		if s.fetches[ViewQuiz].ready {
			snap.Quiz = s.quizView()
		}
	case navigation.Activities:
		if f := s.fetches[ViewFlashcards]; f.ready {
			snap.Flashcards = s.flashcardView()
		}
		if f := s.fetches[ViewMatching]; f.ready {
			snap.Matching = s.matchingView()
		}
	case navigation.Arcade:
		switch s.nav.ArcadeGame {
		case navigation.Hangman:
			if s.fetches[ViewHangman].ready {
				snap.Hangman = hangmanView(s.hangman)
			}
		case navigation.TicTacToe:
			snap.TicTacToe = &TicTacToeView{
				Board:  s.tictactoe.Board,
				Next:   s.tictactoe.Next(),
				Winner: s.tictactoe.Winner(),
				Draw:   s.tictactoe.Draw(),
			}
		case navigation.Jeopardy:
			snap.Jeopardy = jeopardyView(s.jeopardy)
		}
	case navigation.GameShow:
		snap.GameShow = s.gameShowView()
	}
	return snap
}

func (s *session) quizView() *QuizView {
	q := s.quiz
	v := &QuizView{
		Total:    len(q.Questions),
		Position: q.Position,
		Score:    q.Score,
		Finished: q.Finished,
	}
	cur, ok := q.Current()
	if !ok {
		return v
	}
	v.Question = &QuestionView{Prompt: cur.Prompt, Options: slices.Clone(cur.Options)}
	if q.Feedback != nil {
		v.Feedback = &FeedbackView{
			Selected:     q.Feedback.Selected,
			Correct:      q.Feedback.Correct,
			CorrectIndex: cur.CorrectIndex,
			Explanation:  cur.Explanation,
		}
	}
	return v
}

func (s *session) flashcardView() *FlashcardView {
	v := &FlashcardView{Total: len(s.deck.Cards), Index: s.deck.Index, Flipped: s.deck.Flipped}
	if card, ok := s.deck.Current(); ok {
		v.Card = &card
	}
	return v
}

func (s *session) matchingView() *MatchingView {
	m := s.matching
	v := &MatchingView{
		Halves:   make([]HalfView, len(m.Halves)),
		Selected: m.Selected,
		Matched:  len(m.Matched),
		Pairs:    m.Pairs(),
		Complete: m.Complete(),
	}
	for i, h := range m.Halves {
		v.Halves[i] = HalfView{ID: h.ID, Text: h.Text, Side: string(h.Side), Matched: m.Matched[h.PairKey]}
	}
	return v
}

func hangmanView(h hangman.State) *HangmanView {
	v := &HangmanView{
		Masked:      h.Masked(),
		Hint:        h.Hint,
		Guessed:     h.Letters(),
		Mistakes:    h.Mistakes,
		MaxMistakes: hangman.MaxMistakes,
		Won:         h.Won(),
		Lost:        h.Lost(),
	}
	if h.Over() {
		v.Word = h.Word
	}
	return v
}

func jeopardyView(j jeopardy.State) *JeopardyView {
	v := &JeopardyView{
		Board:    make([]ClueView, 0, len(jeopardy.Categories)*len(jeopardy.Values)),
		Score:    j.Score,
		Finished: j.Finished(),
	}
	for _, cat := range jeopardy.Categories {
		for _, pts := range jeopardy.Values {
			c := jeopardy.Clue{Category: cat, Points: pts}
			v.Board = append(v.Board, ClueView{Category: cat, Points: pts, Completed: j.IsCompleted(c)})
		}
	}
	if j.Active != nil {
		active := *j.Active
		v.Active = &active
	}
	return v
}

func (s *session) gameShowView() *GameShowView {
	g := s.gameshow
	v := &GameShowView{
		Scores:     g.Scores,
		Strikes:    g.Strikes,
		Active:     g.Active,
		ActiveName: g.Active.String(),
	}
	if g.Question != nil {
		q := material.ShowQuestion{Prompt: g.Question.Prompt, Answers: slices.Clone(g.Question.Answers)}
		v.Question = &q
	}
	return v
}
