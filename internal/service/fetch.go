package service

import (
	"context"
	"fmt"

	"github.com/origenlab/backend/internal/content"
	"github.com/origenlab/backend/internal/domain/flashcard"
	"github.com/origenlab/backend/internal/domain/gameshow"
	"github.com/origenlab/backend/internal/domain/hangman"
	"github.com/origenlab/backend/internal/domain/matching"
	"github.com/origenlab/backend/internal/domain/quiz"
	"github.com/origenlab/backend/internal/domain/topic"
)

// View is a part of the session that owns its own fetch lifecycle.
type View string

const (
	ViewLearn      View = "learn"
	ViewQuiz       View = "quiz"
	ViewFlashcards View = "flashcards"
	ViewMatching   View = "matching"
	ViewHangman    View = "hangman"
	ViewGameShow   View = "gameshow"
)

var views = []View{ViewLearn, ViewQuiz, ViewFlashcards, ViewMatching, ViewHangman, ViewGameShow}

// fetchState tracks the latest fetch of one view. Only a result carrying
// the current generation is applied.
type fetchState struct {
	generation uint64
	loading    bool
	ready      bool
	cancel     context.CancelFunc
}

func (f fetchState) started() bool {
	return f.loading || f.ready
}

// job is a fetch prepared under the session lock and submitted after it is
// released.
type job struct {
	sess       *session
	view       View
	generation uint64
	ctx        context.Context
	cancel     context.CancelFunc
	load       func(ctx context.Context) func(*session)
}

type fetchResult struct {
	sess       *session
	view       View
	generation uint64
	cancel     context.CancelFunc
	apply      func(*session)
}

// startFetch supersedes any fetch in flight for v and queues a new one.
// Must be called with s.mu held.
func (e *Engine) startFetch(s *session, v View, load func(ctx context.Context) func(*session)) {
	e.cancelFetch(s, v)

	s.nextGeneration++
	ctx, cancel := context.WithTimeout(e.ctx, e.opts.FetchTimeout)
	s.fetches[v] = fetchState{generation: s.nextGeneration, loading: true, cancel: cancel}
	s.pending.Add(1)
	s.queued = append(s.queued, job{
		sess:       s,
		view:       v,
		generation: s.nextGeneration,
		ctx:        ctx,
		cancel:     cancel,
		load:       load,
	})
}

// cancelFetch drops v's fetch state. A result still in flight will no
// longer match and is discarded.
func (e *Engine) cancelFetch(s *session, v View) {
	if f := s.fetches[v]; f.cancel != nil {
		f.cancel()
	}
	delete(s.fetches, v)
}

func (e *Engine) submit(j job) {
	id := fmt.Sprintf("%s/%s/%d", j.sess.id, j.view, j.generation)
	err := e.pool.Submit(id, func() fetchResult {
		return fetchResult{
			sess:       j.sess,
			view:       j.view,
			generation: j.generation,
			cancel:     j.cancel,
			apply:      j.load(j.ctx),
		}
	})
	if err != nil {
		j.cancel()
		j.sess.pending.Done()
		e.logger.Warn("fetch not submitted", "session_id", j.sess.id, "view", j.view, "error", err)
	}
}

// drain applies fetch results as workers finish them.
func (e *Engine) drain() {
	defer close(e.drained)
	for r := range e.pool.Results() {
		e.apply(r.Output)
	}
}

func (e *Engine) apply(r fetchResult) {
	s := r.sess
	defer s.pending.Done()
	defer r.cancel()

	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.fetches[r.view]
	if s.closed || !ok || !f.loading || f.generation != r.generation {
		e.logger.Debug("discarding stale fetch result", "session_id", s.id, "view", r.view, "generation", r.generation)
		return
	}

	r.apply(s)
	s.fetches[r.view] = fetchState{generation: f.generation, ready: true}
}

func (e *Engine) fetchLearn(s *session, t topic.ID) {
	e.startFetch(s, ViewLearn, func(ctx context.Context) func(*session) {
		items := e.content.Definitions(ctx, t)
		return func(s *session) { s.learn = items }
	})
}

func (e *Engine) fetchQuiz(s *session, t topic.ID) {
	e.stopFeedback(s)
	s.quiz = quiz.State{}
	e.startFetch(s, ViewQuiz, func(ctx context.Context) func(*session) {
		qs := e.content.Quiz(ctx, t, content.QuizLength)
		return func(s *session) { s.quiz = quiz.New(qs) }
	})
}

func (e *Engine) fetchFlashcards(s *session, t topic.ID) {
	s.deck = flashcard.Deck{}
	e.startFetch(s, ViewFlashcards, func(ctx context.Context) func(*session) {
		items := e.content.Definitions(ctx, t)
		return func(s *session) { s.deck = flashcard.New(items) }
	})
}

func (e *Engine) fetchMatching(s *session, t topic.ID) {
	s.matching = matching.State{}
	e.startFetch(s, ViewMatching, func(ctx context.Context) func(*session) {
		items := e.content.Definitions(ctx, t)
		return func(s *session) { s.matching = matching.New(items) }
	})
}

func (e *Engine) fetchHangman(s *session, t topic.ID) {
	s.hangman = hangman.State{}
	e.startFetch(s, ViewHangman, func(ctx context.Context) func(*session) {
		w := e.content.HangmanWord(ctx, t)
		return func(s *session) { s.hangman = hangman.New(w) }
	})
}

func (e *Engine) fetchShowQuestion(s *session, topicText string) {
	e.startFetch(s, ViewGameShow, func(ctx context.Context) func(*session) {
		q := e.content.ShowQuestion(ctx, topicText)
		return func(s *session) { s.gameshow = gameshow.StartRound(s.gameshow, q) }
	})
}
