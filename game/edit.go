// SPDX-License-Identifier: MIT
package game

import (
	"fmt"

	"github.com/katalvlaran/konigsberg/core"
	"github.com/katalvlaran/konigsberg/euler"
)

// AddBridge adds a bridge between nodes a and b and reclassifies the puzzle.
// Only allowed before the first selection.
//
// Errors: ErrPlaybackActive, ErrGameInProgress, or the core topology error
// (unknown node, self-loop) wrapped.
func (s *Session) AddBridge(a, b string) (string, error) {
	s.mu.Lock()
	id, ev, err := s.addBridge(a, b)
	s.mu.Unlock()

	s.events.emit(ev)

	return id, err
}

func (s *Session) addBridge(a, b string) (string, Event, error) {
	if s.playback != nil {
		s.message = "Solver playback in progress"
		return "", s.event(EventRejected), fmt.Errorf("AddBridge(%s-%s): %w", a, b, ErrPlaybackActive)
	}
	if s.state != NotStarted {
		s.message = "Reset the game before adding bridges"
		return "", s.event(EventRejected), fmt.Errorf("AddBridge(%s-%s): %w", a, b, ErrGameInProgress)
	}
	id, err := s.graph.AddEdge(a, b)
	if err != nil {
		s.message = fmt.Sprintf("Cannot add bridge between %s and %s", a, b)
		return "", s.event(EventRejected), fmt.Errorf("AddBridge(%s-%s): %w", a, b, err)
	}
	cls, err := euler.Classify(s.cfg.traversal.View(s.graph))
	if err != nil {
		return "", s.event(EventRejected), fmt.Errorf("AddBridge(%s-%s): %w", a, b, err)
	}
	s.cls = cls
	s.message = fmt.Sprintf("Added bridge %s between %s and %s (%s)", id, a, b, cls.Kind)
	s.log.Info("bridge added", "edge", id, "a", a, "b", b, "kind", cls.Kind.String())

	return id, s.event(EventBridgeAdded), nil
}

// NewPuzzle replaces the board with a reset copy of g: any playback is
// canceled and progress is cleared. The traversal rule is kept.
//
// Errors: ErrNilGraph.
func (s *Session) NewPuzzle(g *core.Graph) error {
	if g == nil {
		return fmt.Errorf("NewPuzzle: %w", ErrNilGraph)
	}

	s.mu.Lock()
	s.stopPlayback()
	if err := s.loadGraph(g); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("NewPuzzle: %w", err)
	}
	s.message = fmt.Sprintf("New puzzle: %d nodes, %d bridges", s.graph.NodeCount(), s.graph.EdgeCount())
	s.log.Info("puzzle changed",
		"nodes", s.graph.NodeCount(),
		"edges", s.graph.EdgeCount(),
		"kind", s.cls.Kind.String(),
	)
	ev := s.event(EventPuzzleChanged)
	s.mu.Unlock()

	s.events.emit(ev)

	return nil
}
