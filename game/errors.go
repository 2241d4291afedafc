// SPDX-License-Identifier: MIT
package game

import "errors"

// Sentinel errors returned by Session handlers. Every one of them leaves the
// session playable; PlayerState().Message carries the player-facing text.
var (
	// ErrNilGraph is returned when a session or puzzle is created from a nil graph.
	ErrNilGraph = errors.New("game: graph is nil")

	// ErrUnknownNode indicates the selected node is not in the graph.
	ErrUnknownNode = errors.New("game: unknown node")

	// ErrNoBridgeAvailable indicates no unused bridge joins the current
	// position and the selected node. Position and usage are unchanged.
	ErrNoBridgeAvailable = errors.New("game: no unused bridge connects those nodes")

	// ErrStranded indicates the player stands on a land with no unused bridge
	// while other bridges remain. Only undo or reset make progress.
	ErrStranded = errors.New("game: stranded")

	// ErrAlreadyCompleted indicates every bridge is used; undo or reset first.
	ErrAlreadyCompleted = errors.New("game: traversal already completed")

	// ErrNotStarted indicates the operation needs a chosen start node.
	ErrNotStarted = errors.New("game: no start node selected")

	// ErrGameInProgress indicates the operation is only allowed before the
	// first selection (e.g. adding bridges).
	ErrGameInProgress = errors.New("game: traversal in progress")

	// ErrNothingToUndo indicates an undo with an empty move history.
	ErrNothingToUndo = errors.New("game: nothing to undo")

	// ErrUnsolvable indicates no Eulerian walk exists for the current puzzle.
	ErrUnsolvable = errors.New("game: puzzle has no Eulerian trail or circuit")

	// ErrNoUnusedEdges indicates every bridge has already been crossed.
	ErrNoUnusedEdges = errors.New("game: no unused edges left")

	// ErrPlaybackActive indicates a solver playback owns the session.
	ErrPlaybackActive = errors.New("game: solver playback in progress")

	// ErrPlaybackCanceled indicates a playback step arrived after the playback
	// was canceled or superseded (reset, new puzzle, new solve).
	ErrPlaybackCanceled = errors.New("game: playback canceled")

	// ErrPlaybackStarted indicates Start was called twice on one playback.
	ErrPlaybackStarted = errors.New("game: playback already started")
)
