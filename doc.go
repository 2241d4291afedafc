// Package konigsberg is a bridge-crossing puzzle engine built around
// Euler's seven bridges: walk every bridge exactly once, or prove it cannot
// be done.
//
// 🌉 What is inside?
//
//	A thread-safe, UI-agnostic engine that brings together:
//		• Graph store: ordered nodes and bridges, land groups, used flags
//		• Degree analysis: per-node degree and odd-node parity
//		• Eulerian classification: circuit, trail or impossible
//		• Hierholzer solver: one complete walk over every unused bridge
//		• Game sessions: move validation, undo, hints, solver playback
//
// Under the hood, everything is organized into small packages:
//
//	core/    - Graph, Node, Edge; usage flags; contraction to land groups
//	degree/  - degree counts and odd-degree nodes
//	dfs/     - depth-first reachability and connectivity checks
//	euler/   - Classify, Solve (Hierholzer), SuggestFix
//	builder/ - cycles, paths and random puzzles with difficulty presets
//	puzzle/  - YAML puzzle definitions and the built-in Königsberg map
//	game/    - Session: the command surface a UI drives
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    D───C
//
//	every node has two bridges, so any start yields a closed walk.
//
// A typical UI loads a puzzle, opens a session and forwards clicks:
//
//	d, _ := puzzle.Builtin("konigsberg")
//	s, _ := d.Session()
//	s.OnStateChanged(render)
//	_ = s.HandleNodeSelected("A1")
package konigsberg
