// Package puzzle loads fixed bridge topologies from YAML.
//
// A definition names its nodes (optionally grouped into lands), its bridges
// and how the puzzle is meant to be played:
//
//	name: square
//	traversal: node          # or "land"
//	representative: first    # landing point used in land mode: first | last
//	strand_detection: false
//	nodes:
//	  - {id: A, x: 250, y: 150}
//	  - {id: B, x: 550, y: 150}
//	bridges:
//	  - {id: ab, from: A, to: B, label: 1}
//
// Three puzzles ship with the package: konigsberg (the seven bridges, played
// by land), square and envelope. Builtin returns a fresh copy each call.
package puzzle
