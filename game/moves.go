// SPDX-License-Identifier: MIT
package game

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/konigsberg/core"
)

// HandleNodeSelected is the single entry point for a player clicking node id.
//
// Before the start it places the player on id. Afterwards it crosses the
// first unused bridge (in edge order) between the current unit and the unit
// of id. In single-node mode the player lands on id; in grouped-land mode on
// the representative of id's land.
//
// Errors (state and usage unchanged):
//   - ErrPlaybackActive     a solver playback owns the session
//   - ErrUnknownNode        id is not in the graph
//   - ErrAlreadyCompleted   every bridge is already used
//   - ErrStranded           no bridge leaves the current land
//   - ErrNoBridgeAvailable  no unused bridge joins the two units
func (s *Session) HandleNodeSelected(id string) error {
	s.mu.Lock()
	evs, err := s.selectNode(id)
	s.mu.Unlock()

	s.events.emit(evs...)

	return err
}

func (s *Session) selectNode(id string) ([]Event, error) {
	if s.playback != nil {
		ev, err := s.reject("Solver playback in progress", fmt.Errorf("HandleNodeSelected(%s): %w", id, ErrPlaybackActive), "node", id)
		return []Event{ev}, err
	}
	target, ok := s.unitOf(id)
	if !ok {
		ev, err := s.reject("Unknown node "+id, fmt.Errorf("HandleNodeSelected(%s): %w", id, ErrUnknownNode), "node", id)
		return []Event{ev}, err
	}

	switch s.state {
	case NotStarted:
		return s.selectStart(id, target), nil
	case Completed:
		ev, err := s.reject(s.outcome.Message()+" Undo or reset to play again.",
			fmt.Errorf("HandleNodeSelected(%s): %w", id, ErrAlreadyCompleted), "node", id)
		return []Event{ev}, err
	case Stranded:
		ev, err := s.reject(fmt.Sprintf("Stranded at %s: undo or reset", s.unit),
			fmt.Errorf("HandleNodeSelected(%s): %w", id, ErrStranded), "node", id)
		return []Event{ev}, err
	}

	// Positioned: look for the first unused bridge between the two units.
	var bridge core.Edge
	found := false
	for _, e := range s.graph.Edges() {
		if e.Used {
			continue
		}
		ua, _ := s.unitOf(e.A)
		ub, _ := s.unitOf(e.B)
		if (ua == s.unit && ub == target) || (ub == s.unit && ua == target) {
			bridge, found = e, true
			break
		}
	}
	if !found {
		ev, err := s.reject(fmt.Sprintf("No available bridge from %s to %s", s.unit, target),
			fmt.Errorf("HandleNodeSelected(%s): from %s: %w", id, s.unit, ErrNoBridgeAvailable),
			"node", id, "unit", s.unit)
		return []Event{ev}, err
	}

	// Single-node traversal lands on id itself; grouped land snaps to the representative.
	evs, err := s.cross(bridge, s.cfg.traversal.Representative(s.graph, target), target)
	if err != nil {
		return evs, fmt.Errorf("HandleNodeSelected(%s): %w", id, err)
	}
	s.metrics.move("accepted")

	return evs, nil
}

// selectStart places the player. Caller holds mu.
func (s *Session) selectStart(id, unit string) []Event {
	s.state = Positioned
	s.start, s.startUnit = id, unit
	s.position, s.unit = id, unit
	s.message = "Started at " + id
	s.metrics.move("start")
	s.log.Info("traversal started", "node", id, "unit", unit)

	return []Event{s.event(EventStarted)}
}

// cross consumes bridge, moves the player to node `to` in unit `toUnit`,
// records the move and settles the resulting state. Caller holds mu.
func (s *Session) cross(bridge core.Edge, to, toUnit string) ([]Event, error) {
	if err := s.graph.MarkEdgeUsed(bridge.ID); err != nil {
		// The bridge was chosen among unused edges, so this is a bookkeeping bug.
		s.log.Error("mark edge failed", "edge", bridge.ID, "error", err)
		return nil, fmt.Errorf("cross(%s): %w", bridge.ID, err)
	}
	mv := Move{EdgeID: bridge.ID, From: s.position, FromUnit: s.unit, To: to, ToUnit: toUnit}
	s.history.push(mv)
	s.position, s.unit = to, toUnit
	s.message = fmt.Sprintf("Crossed bridge %s → arrived at %s", bridgeName(bridge), toUnit)
	s.log.Debug("bridge crossed", "edge", bridge.ID, "node", to, "unit", toUnit)

	evs := []Event{s.event(EventMoved)}
	if ev, ok := s.settle(); ok {
		evs = append(evs, ev)
	}

	return evs, nil
}

// settle checks for completion and, when enabled, stranding after a move.
// Caller holds mu.
func (s *Session) settle() (Event, bool) {
	if s.graph.AllUsed() {
		s.state = Completed
		s.outcome = judge(s.cls, s.startUnit, s.unit)
		s.message = s.outcome.Message()
		s.metrics.completion(s.outcome)
		s.log.Info("traversal completed", "outcome", s.outcome.String(), "unit", s.unit)
		return s.event(EventCompleted), true
	}
	if s.cfg.strand && !s.hasExit(s.unit) {
		s.state = Stranded
		s.message = fmt.Sprintf("Stranded at %s: no unused bridge leaves it. Undo or reset.", s.unit)
		s.log.Info("player stranded", "unit", s.unit, "remaining", s.graph.UnusedCount())
		return s.event(EventStranded), true
	}

	return Event{}, false
}

// hasExit reports whether an unused bridge touches unit. Caller holds mu.
func (s *Session) hasExit(unit string) bool {
	for _, e := range s.graph.Edges() {
		if e.Used {
			continue
		}
		ua, _ := s.unitOf(e.A)
		ub, _ := s.unitOf(e.B)
		if ua == unit || ub == unit {
			return true
		}
	}

	return false
}

// HandleUndo takes back the last crossing: the bridge becomes unused and the
// player returns to where they stood. Completed and Stranded fall back to
// Positioned.
//
// Errors: ErrPlaybackActive, ErrNothingToUndo (no-op, message set; also
// matches ErrNotStarted before the first selection).
func (s *Session) HandleUndo() error {
	s.mu.Lock()
	evs, err := s.undo()
	s.mu.Unlock()

	s.events.emit(evs...)

	return err
}

func (s *Session) undo() ([]Event, error) {
	if s.playback != nil {
		s.message = "Solver playback in progress"
		return []Event{s.event(EventRejected)}, fmt.Errorf("HandleUndo: %w", ErrPlaybackActive)
	}
	mv, ok := s.history.pop()
	if !ok {
		s.message = "Nothing to undo"
		if s.state == NotStarted {
			return []Event{s.event(EventRejected)}, fmt.Errorf("HandleUndo: %w: %w", ErrNothingToUndo, ErrNotStarted)
		}
		return []Event{s.event(EventRejected)}, fmt.Errorf("HandleUndo: %w", ErrNothingToUndo)
	}
	if err := s.graph.UnmarkEdgeUsed(mv.EdgeID); err != nil {
		s.history.push(mv)
		s.log.Error("unmark edge failed", "edge", mv.EdgeID, "error", err)
		return nil, fmt.Errorf("HandleUndo(%s): %w", mv.EdgeID, err)
	}

	s.position, s.unit = mv.From, mv.FromUnit
	s.state = Positioned
	s.outcome = OutcomeNone
	s.message = fmt.Sprintf("Undid bridge %s, back at %s", mv.EdgeID, mv.FromUnit)
	s.metrics.undo()
	s.log.Debug("move undone", "edge", mv.EdgeID, "node", mv.From, "unit", mv.FromUnit)

	return []Event{s.event(EventUndone)}, nil
}

// HandleReset cancels any playback, clears the history and marks every
// bridge unused. It never fails.
func (s *Session) HandleReset() {
	s.mu.Lock()
	s.stopPlayback()
	s.clearProgress()
	s.message = "Game reset."
	s.metrics.reset()
	s.log.Info("game reset")
	ev := s.event(EventReset)
	s.mu.Unlock()

	s.events.emit(ev)
}

// bridgeName prefers the bridge number players see.
func bridgeName(e core.Edge) string {
	if e.Label > 0 {
		return "#" + strconv.Itoa(e.Label)
	}

	return e.ID
}
