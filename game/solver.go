// SPDX-License-Identifier: MIT
package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/konigsberg/euler"
)

// Hint is the next bridge of a solver walk that the player has not crossed.
type Hint struct {
	EdgeID string
	A      string
	B      string
}

// unsolvable describes why the puzzle has no walk. Caller holds mu.
func (s *Session) unsolvable(method string) error {
	if s.cls.Kind == euler.Impossible {
		s.message = "Unsolvable: odd-degree nodes: " + strings.Join(s.cls.OddNodes, ", ")
	} else {
		s.message = "Unsolvable: the bridges form separate islands"
	}

	return fmt.Errorf("%s: %w", method, ErrUnsolvable)
}

// solve runs Hierholzer on a reset unit view of the live graph. Caller holds mu.
func (s *Session) solve() (*euler.Path, error) {
	view := s.cfg.traversal.View(s.graph)
	view.ResetUsage()

	return euler.Solve(view)
}

// HandleAISolve resets the board, computes one Eulerian walk and returns a
// Playback that crosses its bridges one by one. The player is placed on the
// walk's first node right away; nothing else moves until the playback steps.
//
// Any earlier playback is superseded.
//
// Errors: ErrUnsolvable (message lists the odd nodes), ErrNoUnusedEdges when
// the puzzle has no bridges at all.
func (s *Session) HandleAISolve() (*Playback, error) {
	s.mu.Lock()
	p, evs, err := s.startSolve()
	s.mu.Unlock()

	s.events.emit(evs...)

	return p, err
}

func (s *Session) startSolve() (*Playback, []Event, error) {
	if !s.cls.Solvable() {
		err := s.unsolvable("HandleAISolve")
		s.metrics.solve("unsolvable")
		s.log.Info("solve refused", "kind", s.cls.Kind.String(), "odd", s.cls.OddNodes, "connected", s.cls.Connected)
		return nil, []Event{s.event(EventRejected)}, err
	}

	s.stopPlayback()
	s.clearProgress()

	path, err := s.solve()
	if err != nil {
		if errors.Is(err, euler.ErrNoEdges) {
			s.message = "No unused edges left"
			return nil, []Event{s.event(EventRejected)}, fmt.Errorf("HandleAISolve: %w", ErrNoUnusedEdges)
		}
		s.log.Error("solver failed on a solvable puzzle", "error", err)
		return nil, nil, fmt.Errorf("HandleAISolve: %w", err)
	}

	startUnit := path.Start()
	startNode := s.cfg.traversal.Representative(s.graph, startUnit)
	s.state = Positioned
	s.start, s.startUnit = startNode, startUnit
	s.position, s.unit = startNode, startUnit
	s.message = "Solver starting at " + startNode

	p := newPlayback(s, s.generation, path)
	s.playback = p
	s.metrics.solve("started")
	s.log.Info("solve started", "node", startNode, "steps", len(path.Edges))

	return p, []Event{s.event(EventSolveStarted)}, nil
}

// HandleHint names the first bridge of a solver walk that is still unused on
// the live board. The board is not changed.
//
// The walk is computed from a reset board, so the hinted bridge does not
// necessarily touch the player's current position.
//
// Errors: ErrUnsolvable, ErrNoUnusedEdges.
func (s *Session) HandleHint() (Hint, error) {
	s.mu.Lock()
	h, ev, err := s.hint()
	s.mu.Unlock()

	s.events.emit(ev)

	return h, err
}

func (s *Session) hint() (Hint, Event, error) {
	if !s.cls.Solvable() {
		err := s.unsolvable("HandleHint")
		return Hint{}, s.event(EventRejected), err
	}
	if s.graph.UnusedCount() == 0 {
		s.message = "No unused edges left"
		return Hint{}, s.event(EventRejected), fmt.Errorf("HandleHint: %w", ErrNoUnusedEdges)
	}

	path, err := s.solve()
	if err != nil {
		s.log.Error("solver failed on a solvable puzzle", "error", err)
		return Hint{}, s.event(EventRejected), fmt.Errorf("HandleHint: %w", err)
	}
	for _, id := range path.Edges {
		e, ok := s.graph.Edge(id)
		if !ok || e.Used {
			continue
		}
		h := Hint{EdgeID: e.ID, A: e.A, B: e.B}
		s.message = fmt.Sprintf("Hint: cross bridge between %s and %s", e.A, e.B)
		s.metrics.hint()
		s.log.Debug("hint given", "edge", e.ID)
		return h, s.event(EventHint), nil
	}

	// unreachable: the walk covers every edge and at least one is unused
	s.message = "No unused edges left"
	return Hint{}, s.event(EventRejected), fmt.Errorf("HandleHint: %w", ErrNoUnusedEdges)
}

// HandleSuggestFix explains how to make the puzzle solvable: either it
// already is, or which odd nodes need new bridges.
func (s *Session) HandleSuggestFix() (euler.Fix, error) {
	s.mu.Lock()
	fix, err := euler.SuggestFix(s.cfg.traversal.View(s.graph))
	if err != nil {
		s.mu.Unlock()
		return euler.Fix{}, fmt.Errorf("HandleSuggestFix: %w", err)
	}
	s.message = fix.Message()
	ev := s.event(EventHint)
	s.mu.Unlock()

	s.events.emit(ev)

	return fix, nil
}
