// SPDX-License-Identifier: MIT
package game

import (
	"github.com/katalvlaran/konigsberg/euler"
)

// State is the phase of a traversal.
//
//	NotStarted ──select──▶ Positioned ──all used──▶ Completed
//	                           │  ▲
//	                    strand │  │ undo
//	                           ▼  │
//	                         Stranded
//
// Reset returns every state to NotStarted; undo leaves Completed and Stranded.
type State int

const (
	// NotStarted: no start node chosen yet.
	NotStarted State = iota
	// Positioned: the player stands on a node with bridges left to cross.
	Positioned
	// Stranded: bridges remain but none leaves the current land.
	Stranded
	// Completed: every bridge is used.
	Completed
)

// String returns the lower-case state name.
func (s State) String() string {
	switch s {
	case NotStarted:
		return "not_started"
	case Positioned:
		return "positioned"
	case Stranded:
		return "stranded"
	case Completed:
		return "completed"
	default:
		return "unknown"
	}
}

// Outcome judges a completed traversal.
type Outcome int

const (
	// OutcomeNone: the traversal has not completed.
	OutcomeNone Outcome = iota
	// OutcomeCircuit: no odd lands and the walk closed at its start.
	OutcomeCircuit
	// OutcomeTrail: two odd lands and the walk ended on one of them.
	OutcomeTrail
	// OutcomeInvalidEnd: every bridge used, but the walk ended somewhere a
	// valid Eulerian walk cannot end.
	OutcomeInvalidEnd
	// OutcomeNoEulerian: every bridge used on a graph with more than two odd lands.
	OutcomeNoEulerian
)

// String returns the short outcome name used in logs and metric labels.
func (o Outcome) String() string {
	switch o {
	case OutcomeCircuit:
		return "circuit"
	case OutcomeTrail:
		return "trail"
	case OutcomeInvalidEnd:
		return "invalid_end"
	case OutcomeNoEulerian:
		return "no_eulerian"
	default:
		return "none"
	}
}

// Success reports whether the outcome is a valid Eulerian walk.
func (o Outcome) Success() bool {
	return o == OutcomeCircuit || o == OutcomeTrail
}

// Message is the player-facing completion text.
func (o Outcome) Message() string {
	switch o {
	case OutcomeCircuit:
		return "Eulerian circuit completed! You returned to your starting point!"
	case OutcomeTrail:
		return "Eulerian path completed successfully!"
	case OutcomeInvalidEnd:
		return "All bridges used, but you ended at an invalid node!"
	case OutcomeNoEulerian:
		return "All bridges used, but this graph doesn't have a valid Eulerian path!"
	default:
		return ""
	}
}

// judge decides the outcome of a traversal that used every bridge.
// Units are the traversal units (nodes or lands) the walk started and ended on.
//
// An even graph must close at its start; a two-odd graph must end on an odd
// unit. Anything else is reported as OutcomeInvalidEnd rather than a success.
func judge(cls euler.Classification, startUnit, endUnit string) Outcome {
	switch cls.Kind {
	case euler.Circuit:
		if endUnit == startUnit {
			return OutcomeCircuit
		}
		return OutcomeInvalidEnd
	case euler.Trail:
		if cls.IsOdd(endUnit) {
			return OutcomeTrail
		}
		return OutcomeInvalidEnd
	default:
		return OutcomeNoEulerian
	}
}

// PlayerState is a read-only snapshot of a session's progress.
type PlayerState struct {
	// State is the current phase.
	State State
	// Start is the node the traversal started from ("" before the start).
	Start string
	// Position is the node the player stands on ("" before the start).
	Position string
	// Unit is the traversal unit of Position: the node itself or its land.
	Unit string
	// Outcome is set once State is Completed.
	Outcome Outcome
	// Message is the latest player-facing status line.
	Message string
	// Moves is the number of crossings in the history.
	Moves int
	// UsedEdges and TotalEdges describe bridge usage.
	UsedEdges  int
	TotalEdges int
	// Playing reports whether a solver playback owns the session.
	Playing bool
}
