// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for konigsberg/core.
//
// Purpose:
//   - Provide small, deterministic fixtures shared by the core tests.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/konigsberg/core"
)

// Common node IDs used across core tests.
const (
	NodeA = "A"
	NodeB = "B"
	NodeC = "C"
	NodeD = "D"
)

// nodesOf builds plain nodes (no group, zero position) from IDs.
func nodesOf(ids ...string) []core.Node {
	out := make([]core.Node, len(ids))
	for i, id := range ids {
		out[i] = core.Node{ID: id}
	}

	return out
}

// edge builds an unused edge literal.
func edge(id, a, b string) core.Edge {
	return core.Edge{ID: id, A: a, B: b}
}

// mustSquare returns the 4-cycle A-B-C-D-A with edges ab, bc, cd, da.
func mustSquare(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(
		nodesOf(NodeA, NodeB, NodeC, NodeD),
		[]core.Edge{
			edge("ab", NodeA, NodeB),
			edge("bc", NodeB, NodeC),
			edge("cd", NodeC, NodeD),
			edge("da", NodeD, NodeA),
		},
	)
	require.NoError(t, err)

	return g
}

// edgeIDs extracts IDs in order.
func edgeIDs(es []core.Edge) []string {
	out := make([]string, len(es))
	for i := range es {
		out[i] = es[i].ID
	}

	return out
}
