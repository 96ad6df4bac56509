package service

import (
	"sync"
	"time"

	"github.com/origenlab/backend/internal/domain/flashcard"
	"github.com/origenlab/backend/internal/domain/gameshow"
	"github.com/origenlab/backend/internal/domain/hangman"
	"github.com/origenlab/backend/internal/domain/jeopardy"
	"github.com/origenlab/backend/internal/domain/matching"
	"github.com/origenlab/backend/internal/domain/material"
	"github.com/origenlab/backend/internal/domain/navigation"
	"github.com/origenlab/backend/internal/domain/quiz"
	"github.com/origenlab/backend/internal/domain/tictactoe"
	"github.com/origenlab/backend/internal/domain/topic"
)

// ArcadeTopic is the topic arcade games draw their material from.
const ArcadeTopic = topic.Evolucion

type session struct {
	id string

	mu       sync.Mutex
	closed   bool
	lastSeen time.Time

	nav navigation.State

	learn     []material.Item
	quiz      quiz.State
	deck      flashcard.Deck
	matching  matching.State
	hangman   hangman.State
	tictactoe tictactoe.State
	jeopardy  jeopardy.State
	gameshow  gameshow.State

	fetches        map[View]fetchState
	nextGeneration uint64 // never reset, so stale generations stay stale
	queued         []job

	feedbackTimer Timer
	feedbackToken uint64

	// pending counts fetches in flight and scheduled feedback expiries.
	pending sync.WaitGroup
}

func newSession(id string, now time.Time) *session {
	return &session{
		id:       id,
		lastSeen: now,
		nav:      navigation.HomeState(),
		fetches:  make(map[View]fetchState),
	}
}

// reduce applies one action. Must be called with s.mu held.
func (e *Engine) reduce(s *session, a Action) bool {
	to := func(next navigation.State, ok bool) bool { return e.navigate(s, next, ok) }

	switch a := a.(type) {
	case SelectTopic:
		return to(navigation.SelectTopic(s.nav, a.Topic))
	case SwitchTab:
		return to(navigation.SwitchTab(s.nav, a.Tab))
	case OpenArcade:
		return to(navigation.OpenArcade(s.nav))
	case OpenGameShow:
		return to(navigation.OpenGameShow(s.nav))
	case Exit:
		return to(navigation.Exit(s.nav))
	case OpenActivity:
		return to(navigation.OpenActivity(s.nav, a.N))
	case CloseActivity:
		return to(navigation.CloseActivity(s.nav))
	case OpenArcadeGame:
		return to(navigation.OpenArcadeGame(s.nav, a.Game))
	case CloseArcadeGame:
		return to(navigation.CloseArcadeGame(s.nav))
	case Retry:
		return e.retry(s)

	case SubmitAnswer:
		if s.nav.Mode != navigation.Quiz || !s.fetches[ViewQuiz].ready {
			return false
		}
		next, ok := quiz.Submit(s.quiz, a.Option)
		if !ok {
			return false
		}
		s.quiz = next
		e.scheduleFeedback(s)
		return true

	case FlipCard:
		return e.onDeck(s, flashcard.Flip)
	case NextCard:
		return e.onDeck(s, flashcard.Next)
	case PrevCard:
		return e.onDeck(s, flashcard.Prev)

	case SelectHalf:
		if e.activeView(s) != ViewMatching || !s.fetches[ViewMatching].ready {
			return false
		}
		next, ok := matching.Select(s.matching, a.HalfID)
		s.matching = next
		return ok

	case Guess:
		if e.activeView(s) != ViewHangman || !s.fetches[ViewHangman].ready {
			return false
		}
		next, ok := hangman.Guess(s.hangman, a.Letter)
		s.hangman = next
		return ok
	case NewWord:
		if e.activeView(s) != ViewHangman {
			return false
		}
		e.fetchHangman(s, ArcadeTopic)
		return true

	case PlayCell:
		if !s.inArcadeGame(navigation.TicTacToe) {
			return false
		}
		next, ok := tictactoe.Play(s.tictactoe, a.Cell)
		s.tictactoe = next
		return ok
	case ResetBoard:
		if !s.inArcadeGame(navigation.TicTacToe) {
			return false
		}
		s.tictactoe = tictactoe.Reset(s.tictactoe)
		return true

	case SelectClue:
		if !s.inArcadeGame(navigation.Jeopardy) {
			return false
		}
		next, ok := jeopardy.Select(s.jeopardy, jeopardy.Clue{Category: a.Category, Points: a.Points})
		s.jeopardy = next
		return ok
	case AnswerClue:
		if !s.inArcadeGame(navigation.Jeopardy) {
			return false
		}
		next, ok := jeopardy.Answer(s.jeopardy, a.Correct)
		s.jeopardy = next
		return ok

	case StartRound:
		if s.nav.Mode != navigation.GameShow {
			return false
		}
		text := a.TopicText
		if text == "" {
			text = DefaultShowTopic
		}
		e.fetchShowQuestion(s, text)
		return true
	case Reveal:
		if s.nav.Mode != navigation.GameShow {
			return false
		}
		next, ok := gameshow.Reveal(s.gameshow, a.Index)
		s.gameshow = next
		return ok
	case AddStrike:
		if s.nav.Mode != navigation.GameShow {
			return false
		}
		s.gameshow = gameshow.AddStrike(s.gameshow)
		return true
	case SetTeam:
		if s.nav.Mode != navigation.GameShow {
			return false
		}
		next, ok := gameshow.SetTeam(s.gameshow, a.Team)
		s.gameshow = next
		return ok
	}
	return false
}

// navigate installs a navigation result and runs the side effects of
// leaving and entering views.
func (e *Engine) navigate(s *session, next navigation.State, ok bool) bool {
	if !ok {
		return false
	}
	prev := s.nav

	if next.Mode == navigation.Home {
		e.reset(s)
		return true
	}
	s.nav = next

	if prev.Activity != 0 && next.Activity != prev.Activity {
		e.cancelFetch(s, ViewFlashcards)
		e.cancelFetch(s, ViewMatching)
		s.deck = flashcard.Deck{}
		s.matching = matching.State{}
	}
	if prev.ArcadeGame != navigation.NoGame && next.ArcadeGame != prev.ArcadeGame {
		e.cancelFetch(s, ViewHangman)
		s.hangman = hangman.State{}
		s.tictactoe = tictactoe.State{}
		s.jeopardy = jeopardy.State{}
	}

	switch next.Mode {
	case navigation.Learn:
		if !s.fetches[ViewLearn].started() {
			e.fetchLearn(s, next.Topic)
		}
	case navigation.Quiz:
		if !s.fetches[ViewQuiz].started() {
			e.fetchQuiz(s, next.Topic)
		}
	case navigation.Activities:
		if next.Activity != 0 && next.Activity != prev.Activity {
			if navigation.KindOf(next.Activity) == navigation.Flashcards {
				e.fetchFlashcards(s, next.Topic)
			} else {
				e.fetchMatching(s, next.Topic)
			}
		}
	case navigation.Arcade:
		if next.ArcadeGame != prev.ArcadeGame {
			switch next.ArcadeGame {
			case navigation.Hangman:
				e.fetchHangman(s, ArcadeTopic)
			case navigation.TicTacToe:
				s.tictactoe = tictactoe.New()
			case navigation.Jeopardy:
				s.jeopardy = jeopardy.New()
			}
		}
	case navigation.GameShow:
		if prev.Mode != navigation.GameShow {
			s.gameshow = gameshow.New()
			e.fetchShowQuestion(s, DefaultShowTopic)
		}
	}
	return true
}

// reset discards all sub-state: fetches in flight are cancelled and the
// feedback timer is stopped. Must be called with s.mu held.
func (e *Engine) reset(s *session) {
	for _, v := range views {
		e.cancelFetch(s, v)
	}
	e.stopFeedback(s)

	s.nav = navigation.HomeState()
	s.learn = nil
	s.quiz = quiz.State{}
	s.deck = flashcard.Deck{}
	s.matching = matching.State{}
	s.hangman = hangman.State{}
	s.tictactoe = tictactoe.State{}
	s.jeopardy = jeopardy.State{}
	s.gameshow = gameshow.State{}
}

func (e *Engine) retry(s *session) bool {
	switch e.activeView(s) {
	case ViewLearn:
		e.fetchLearn(s, s.nav.Topic)
	case ViewQuiz:
		e.fetchQuiz(s, s.nav.Topic)
	case ViewFlashcards:
		e.fetchFlashcards(s, s.nav.Topic)
	case ViewMatching:
		e.fetchMatching(s, s.nav.Topic)
	case ViewHangman:
		e.fetchHangman(s, ArcadeTopic)
	case ViewGameShow:
		e.fetchShowQuestion(s, DefaultShowTopic)
	default:
		return false
	}
	return true
}

// activeView returns the view currently on screen, or "" when the screen
// has no fetched material.
func (e *Engine) activeView(s *session) View {
	switch s.nav.Mode {
	case navigation.Learn:
		return ViewLearn
	case navigation.Quiz:
		return ViewQuiz
	case navigation.Activities:
		if s.nav.Activity == 0 {
			return ""
		}
		if navigation.KindOf(s.nav.Activity) == navigation.Flashcards {
			return ViewFlashcards
		}
		return ViewMatching
	case navigation.Arcade:
		if s.nav.ArcadeGame == navigation.Hangman {
			return ViewHangman
		}
	case navigation.GameShow:
		return ViewGameShow
	}
	return ""
}

func (e *Engine) onDeck(s *session, step func(flashcard.Deck) (flashcard.Deck, bool)) bool {
	if e.activeView(s) != ViewFlashcards || !s.fetches[ViewFlashcards].ready {
		return false
	}
	next, ok := step(s.deck)
	s.deck = next
	return ok
}

func (s *session) inArcadeGame(g navigation.ArcadeGame) bool {
	return s.nav.Mode == navigation.Arcade && s.nav.ArcadeGame == g
}

// scheduleFeedback arms the timer that clears quiz feedback. The token
// ties the callback to this arming; a stopped or superseded timer that
// still fires does nothing.
func (e *Engine) scheduleFeedback(s *session) {
	e.stopFeedback(s)

	s.feedbackToken++
	token := s.feedbackToken
	s.pending.Add(1)
	s.feedbackTimer = e.opts.Scheduler.AfterFunc(e.opts.FeedbackDelay, func() {
		defer s.pending.Done()
		e.expireFeedback(s, token)
	})
}

func (e *Engine) stopFeedback(s *session) {
	s.feedbackToken++
	if s.feedbackTimer == nil {
		return
	}
	if s.feedbackTimer.Stop() {
		s.pending.Done()
	}
	s.feedbackTimer = nil
}

func (e *Engine) expireFeedback(s *session, token uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || token != s.feedbackToken {
		e.logger.Debug("discarding stale quiz feedback timer", "session_id", s.id)
		return
	}
	s.feedbackTimer = nil
	if next, ok := quiz.Advance(s.quiz); ok {
		s.quiz = next
	}
}
