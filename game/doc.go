// Package game runs a bridge-crossing puzzle for one player.
//
// A Session owns a private copy of the puzzle graph and every piece of
// mutable game state: the player's position, the move history (an undo
// stack), the running solver playback and the event subscribers. There are
// no package-level globals; callers hold the *Session and route every UI
// action into one of its handlers:
//
//	HandleNodeSelected(id)  start, then cross bridges
//	HandleUndo()            take back the last crossing
//	HandleReset()           clear everything, cancel playback
//	HandleAISolve()         reset and play a solved walk step by step
//	HandleHint()            name the next bridge of a solved walk
//	HandleSuggestFix()      explain which bridges would make it solvable
//	AddBridge(a, b)         edit the puzzle before starting
//	NewPuzzle(g)            swap in another graph
//
// Traversal:
//
//	SingleNode() moves between nodes. GroupedLand(rule) moves between land
//	groups: any landing point of the current land may be left, and the
//	player arrives at rule(members). Classification always happens at the
//	chosen granularity, so the seven-bridge topology is judged by its four
//	lands.
//
// Completion:
//
//	When the last bridge is crossed the session judges the walk: a closed
//	walk on an even graph is OutcomeCircuit, a walk ending on an odd land of
//	a two-odd graph is OutcomeTrail; any other ending is reported as
//	OutcomeInvalidEnd or OutcomeNoEulerian instead of success.
//
// Observability:
//
//	Logs go to a *slog.Logger (WithLogger, default slog.Default()) with the
//	session ID attached. WithMetrics reports to Prometheus counters.
//	OnStateChanged callbacks receive an Event after every change; they run
//	after the session lock is released and may call back into the session.
package game
