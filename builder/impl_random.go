// SPDX-License-Identifier: MIT
// Package: konigsberg/builder
//
// impl_random.go - random connected bridge graphs and difficulty presets.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices); m ≥ n-1 (else ErrTooFewEdges).
//   • cfg.rng must be set (else ErrNeedRandSource).
//   • Nodes are placed uniformly inside the canvas margins.
//   • Edges 1..n-1 form a random spanning tree: node i links to a uniformly
//     chosen earlier node. The remaining m-(n-1) edges join random distinct
//     pairs; parallel bridges are allowed, self-loops never are.
//
// Determinism:
//   • Draw order is fixed: all positions (x then y per node), tree parents,
//     then extra pairs. The same seed yields the same graph.
//
// Complexity:
//   • Time: O(n + m) expected (a loop draw is retried, probability 1/n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/konigsberg/core"
)

// Random returns a Constructor for a connected, loop-free multigraph with
// n nodes and m bridges.
func Random(n, m int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinRandomNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodRandom, n, MinRandomNodes, ErrTooFewVertices)
		}
		if m < n-1 {
			return fmt.Errorf("%s: m=%d < n-1=%d: %w", MethodRandom, m, n-1, ErrTooFewEdges)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", MethodRandom, ErrNeedRandSource)
		}

		ids, err := addNodes(g, cfg, MethodRandom, n, atRandom)
		if err != nil {
			return err
		}

		// 1) spanning tree keeps every node reachable
		for i := 1; i < n; i++ {
			if err = addEdge(g, MethodRandom, ids[i], ids[cfg.rng.Intn(i)]); err != nil {
				return err
			}
		}

		// 2) extra bridges between distinct nodes
		for added := n - 1; added < m; {
			a, b := cfg.rng.Intn(n), cfg.rng.Intn(n)
			if a == b {
				continue
			}
			if err = addEdge(g, MethodRandom, ids[a], ids[b]); err != nil {
				return err
			}
			added++
		}

		return nil
	}
}

// Difficulty sizes a random puzzle.
type Difficulty int

const (
	// Easy: 4 nodes, 5 bridges.
	Easy Difficulty = iota
	// Medium: 6 nodes, 8 bridges.
	Medium
	// Hard: 8 nodes, 12 bridges.
	Hard
)

// String returns "easy", "medium" or "hard".
func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return fmt.Sprintf("Difficulty(%d)", int(d))
	}
}

// Size returns the node and bridge counts of d.
func (d Difficulty) Size() (nodes, edges int, err error) {
	switch d {
	case Easy:
		return 4, 5, nil
	case Medium:
		return 6, 8, nil
	case Hard:
		return 8, 12, nil
	default:
		return 0, 0, fmt.Errorf("%s: %d: %w", MethodPreset, int(d), ErrUnknownDifficulty)
	}
}

// ParseDifficulty maps "easy", "medium" and "hard" to a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	for _, d := range []Difficulty{Easy, Medium, Hard} {
		if d.String() == s {
			return d, nil
		}
	}

	return 0, fmt.Errorf("ParseDifficulty(%q): %w", s, ErrUnknownDifficulty)
}

// Preset returns Random sized by d.
func Preset(d Difficulty) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		n, m, err := d.Size()
		if err != nil {
			return err
		}

		return Random(n, m)(g, cfg)
	}
}
