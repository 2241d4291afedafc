// SPDX-License-Identifier: MIT
//
// File: session.go
// Role: Session construction, getters and the shared bookkeeping every
// handler relies on.
// Concurrency:
//   - One sync.Mutex serializes every mutation; getters take it too.
//   - Events are collected under the lock and emitted after it is released.

package game

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/katalvlaran/konigsberg/core"
	"github.com/katalvlaran/konigsberg/euler"
)

// Session owns one puzzle being played: the live graph with its used flags,
// the player's position, the move history and any running solver playback.
// All methods are safe for concurrent use.
type Session struct {
	id      string
	cfg     config
	log     *slog.Logger
	metrics *Metrics
	events  *emitter

	mu         sync.Mutex
	graph      *core.Graph
	cls        euler.Classification
	state      State
	start      string
	startUnit  string
	position   string
	unit       string
	outcome    Outcome
	message    string
	history    *history
	playback   *Playback
	generation uint64
}

// NewSession starts a session on a private copy of g with every bridge
// unused.
//
// Errors: ErrNilGraph; classification errors are wrapped.
func NewSession(g *core.Graph, opts ...Option) (*Session, error) {
	if g == nil {
		return nil, fmt.Errorf("NewSession: %w", ErrNilGraph)
	}
	cfg := newConfig(opts...)
	id := uuid.New().String()

	s := &Session{
		id:      id,
		cfg:     cfg,
		log:     cfg.logger.With("session", id, "traversal", cfg.traversal.Name()),
		metrics: cfg.metrics,
		events:  newEmitter(),
		history: newHistory(),
	}
	if err := s.loadGraph(g); err != nil {
		return nil, fmt.Errorf("NewSession: %w", err)
	}
	s.log.Info("session created",
		"nodes", s.graph.NodeCount(),
		"edges", s.graph.EdgeCount(),
		"kind", s.cls.Kind.String(),
		"odd", s.cls.OddNodes,
	)

	return s, nil
}

// loadGraph installs a reset copy of g and classifies it. Caller holds mu
// (or owns s exclusively).
func (s *Session) loadGraph(g *core.Graph) error {
	live := g.Clone()
	live.ResetUsage()
	cls, err := euler.Classify(s.cfg.traversal.View(live))
	if err != nil {
		return err
	}
	s.graph = live
	s.cls = cls
	s.clearProgress()

	return nil
}

// clearProgress returns to NotStarted with every bridge unused. Caller holds mu.
func (s *Session) clearProgress() {
	s.graph.ResetUsage()
	s.history.clear()
	s.state = NotStarted
	s.start, s.startUnit = "", ""
	s.position, s.unit = "", ""
	s.outcome = OutcomeNone
}

// stopPlayback supersedes any running playback. Caller holds mu.
func (s *Session) stopPlayback() *Playback {
	s.generation++
	p := s.playback
	s.playback = nil
	if p != nil {
		p.halt()
	}

	return p
}

// ID returns the session's UUID.
func (s *Session) ID() string {
	return s.id
}

// Traversal returns the movement rule the session was created with.
func (s *Session) Traversal() Traversal {
	return s.cfg.traversal
}

// OnStateChanged registers fn for every event and returns its unsubscribe
// function. fn runs after the session lock is released.
func (s *Session) OnStateChanged(fn func(Event)) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}

	return s.events.subscribe(fn)
}

// GraphSnapshot returns a deep copy of the live graph, used flags included.
func (s *Session) GraphSnapshot() *core.Graph {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.graph.Clone()
}

// PlayerState returns a snapshot of the player's progress.
func (s *Session) PlayerState() PlayerState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshot()
}

// History returns the crossings made so far, oldest first.
func (s *Session) History() []Move {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.history.moves()
}

// Classification returns the unit-level classification of the puzzle.
func (s *Session) Classification() euler.Classification {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cls
	c.OddNodes = append([]string(nil), s.cls.OddNodes...)

	return c
}

// snapshot builds a PlayerState. Caller holds mu.
func (s *Session) snapshot() PlayerState {
	return PlayerState{
		State:      s.state,
		Start:      s.start,
		Position:   s.position,
		Unit:       s.unit,
		Outcome:    s.outcome,
		Message:    s.message,
		Moves:      s.history.len(),
		UsedEdges:  s.graph.UsedCount(),
		TotalEdges: s.graph.EdgeCount(),
		Playing:    s.playback != nil,
	}
}

// event stamps an event with the current snapshot. Caller holds mu.
func (s *Session) event(kind EventKind) Event {
	return Event{
		Kind:      kind,
		SessionID: s.id,
		Timestamp: s.cfg.clock(),
		State:     s.snapshot(),
	}
}

// unitOf returns the traversal unit of a node. Caller holds mu.
func (s *Session) unitOf(id string) (string, bool) {
	n, ok := s.graph.Node(id)
	if !ok {
		return "", false
	}

	return s.cfg.traversal.Unit(n), true
}

// reject records a refused action. Caller holds mu.
func (s *Session) reject(msg string, err error, attrs ...any) (Event, error) {
	s.message = msg
	s.metrics.move("rejected")
	s.log.Warn("move rejected", append(attrs, "reason", err)...)

	return s.event(EventRejected), err
}
