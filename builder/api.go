// SPDX-License-Identifier: MIT
// Package: konigsberg/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - All public factories are declared here, implemented in impl_*.go.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic at runtime; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/konigsberg/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Add nodes through cfg.idFn and place them on cfg's canvas.
//   - Preserve determinism for the same config and call order.
//
// Complexity (this type): O(1) to pass; actual cost is in the closure body.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately; the partial graph is discarded.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
//
// Errors:
//   - Wraps constructor errors via %w; callers branch with errors.Is
//     against builder sentinels (ErrTooFewVertices, ErrTooFewEdges, ...).
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.New(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// =============================================================================
// Topology factories (declarations) - implemented in impl_*.go
// =============================================================================
//
// Each factory returns a Constructor closure. The closure MUST:
//   - Add nodes via cfg.idFn in ascending index order.
//   - Emit edges in a stable, documented order (IDs come from core's e<N> scheme).
//   - Return only sentinel errors; NEVER panic at runtime.

// Cycle builds an n-node ring C_n (n ≥ 3); every degree is 2.
// Complexity: O(n) nodes + O(n) edges.
//func Cycle(n int) Constructor

// Path builds a chain P_n (n ≥ 2); the two ends are the only odd nodes.
// Complexity: O(n) nodes + O(n-1) edges.
//func Path(n int) Constructor

// Random builds a connected multigraph with n nodes and m bridges
// (n ≥ 2, m ≥ n-1). Requires cfg.rng.
// Complexity: O(n + m) expected.
//func Random(n, m int) Constructor

// Preset is Random sized by a Difficulty.
//func Preset(d Difficulty) Constructor
