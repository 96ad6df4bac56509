package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/origenlab/backend/internal/domain/material"
	"github.com/origenlab/backend/internal/domain/topic"
	"github.com/origenlab/backend/internal/worker"
)

var ErrSessionNotFound = errors.New("session not found")

// Content is the never-failing side of the Content Provider.
// *content.Source satisfies it.
type Content interface {
	Definitions(ctx context.Context, t topic.ID) []material.Item
	Quiz(ctx context.Context, t topic.ID, count int) []material.Question
	ShowQuestion(ctx context.Context, topicText string) material.ShowQuestion
	HangmanWord(ctx context.Context, t topic.ID) material.Word
}

// DefaultShowTopic is the theme of the first game show round.
const DefaultShowTopic = "Cientificos famosos"

type Options struct {
	FeedbackDelay time.Duration // default 1500ms
	FetchTimeout  time.Duration // default 90s
	IdleTTL       time.Duration // 0 disables eviction
	Workers       int           // default 4
	Scheduler     Scheduler     // default time.AfterFunc
	Now           func() time.Time
}

func (o Options) withDefaults() Options {
	if o.FeedbackDelay <= 0 {
		o.FeedbackDelay = 1500 * time.Millisecond
	}
	if o.FetchTimeout <= 0 {
		o.FetchTimeout = 90 * time.Second
	}
	if o.Workers <= 0 {
		o.Workers = 4
	}
	if o.Scheduler == nil {
		o.Scheduler = realScheduler{}
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

// Engine owns the live study sessions. Events for one session are
// serialized under that session's lock; Content Provider fetches run on a
// worker pool and are applied only if their view has not moved on.
type Engine struct {
	content Content
	opts    Options
	logger  *slog.Logger

	pool    *worker.Pool[fetchResult]
	drained chan struct{}

	ctx    context.Context
	cancel context.CancelFunc

	mu       sync.RWMutex
	sessions map[string]*session
}

func NewEngine(c Content, opts Options, logger *slog.Logger) *Engine {
	opts = opts.withDefaults()
	ctx, cancel := context.WithCancel(context.Background())

	e := &Engine{
		content:  c,
		opts:     opts,
		logger:   logger,
		pool:     worker.NewPool[fetchResult](opts.Workers, opts.Workers*4),
		drained:  make(chan struct{}),
		ctx:      ctx,
		cancel:   cancel,
		sessions: make(map[string]*session),
	}

	go e.drain()
	if opts.IdleTTL > 0 {
		go e.janitor()
	}
	return e
}

// Close cancels every in-flight fetch and timer and stops the workers.
func (e *Engine) Close() {
	e.cancel()

	e.mu.Lock()
	sessions := make([]*session, 0, len(e.sessions))
	for id, s := range e.sessions {
		sessions = append(sessions, s)
		delete(e.sessions, id)
	}
	e.mu.Unlock()

	for _, s := range sessions {
		e.closeSession(s)
	}

	e.pool.Close()
	<-e.drained
}

func (e *Engine) Create() Snapshot {
	s := newSession(uuid.NewString(), e.opts.Now())

	e.mu.Lock()
	e.sessions[s.id] = s
	e.mu.Unlock()

	e.logger.Info("session created", "session_id", s.id)

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (e *Engine) Get(id string) (Snapshot, error) {
	s, err := e.lookup(id)
	if err != nil {
		return Snapshot{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return Snapshot{}, ErrSessionNotFound
	}
	s.lastSeen = e.opts.Now()
	return s.snapshot(), nil
}

func (e *Engine) Delete(id string) error {
	e.mu.Lock()
	s, ok := e.sessions[id]
	delete(e.sessions, id)
	e.mu.Unlock()

	if !ok {
		return ErrSessionNotFound
	}
	e.closeSession(s)
	e.logger.Info("session deleted", "session_id", id)
	return nil
}

// Count returns the number of live sessions.
func (e *Engine) Count() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.sessions)
}

// Dispatch applies a to the session and returns the resulting snapshot and
// whether the action changed anything.
func (e *Engine) Dispatch(id string, a Action) (Snapshot, bool, error) {
	s, err := e.lookup(id)
	if err != nil {
		return Snapshot{}, false, err
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return Snapshot{}, false, ErrSessionNotFound
	}
	s.lastSeen = e.opts.Now()
	applied := e.reduce(s, a)
	jobs := s.queued
	s.queued = nil
	snap := s.snapshot()
	s.mu.Unlock()

	if !applied {
		e.logger.Debug("action ignored", "session_id", id, "action", a.ActionType(), "mode", snap.Mode)
	}

	// Submitting may block on a full queue, so it happens outside the lock.
	for _, j := range jobs {
		e.submit(j)
	}
	return snap, applied, nil
}

// WaitForSession blocks until the session has no fetch in flight and no
// pending quiz feedback, or ctx is done.
func (e *Engine) WaitForSession(ctx context.Context, id string) error {
	s, err := e.lookup(id)
	if err != nil {
		return err
	}

	done := make(chan struct{})
	go func() {
		s.pending.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// EvictIdle removes sessions not touched since now-IdleTTL and returns how
// many were removed.
func (e *Engine) EvictIdle(now time.Time) int {
	if e.opts.IdleTTL <= 0 {
		return 0
	}
	cutoff := now.Add(-e.opts.IdleTTL)

	var idle []*session
	e.mu.Lock()
	for id, s := range e.sessions {
		s.mu.Lock()
		stale := s.lastSeen.Before(cutoff)
		s.mu.Unlock()
		if stale {
			idle = append(idle, s)
			delete(e.sessions, id)
		}
	}
	e.mu.Unlock()

	for _, s := range idle {
		e.closeSession(s)
		e.logger.Info("session evicted", "session_id", s.id)
	}
	return len(idle)
}

func (e *Engine) janitor() {
	interval := e.opts.IdleTTL / 4
	if interval < time.Second {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-e.ctx.Done():
			return
		case <-ticker.C:
			e.EvictIdle(e.opts.Now())
		}
	}
}

func (e *Engine) lookup(id string) (*session, error) {
	e.mu.RLock()
	s, ok := e.sessions[id]
	e.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

func (e *Engine) closeSession(s *session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	e.reset(s)
}
