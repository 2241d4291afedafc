// SPDX-License-Identifier: MIT
package game_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/konigsberg/core"
	"github.com/katalvlaran/konigsberg/game"
)

// quiet keeps test output clean.
var quiet = game.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

func newSession(t *testing.T, g *core.Graph, opts ...game.Option) *game.Session {
	t.Helper()
	s, err := game.NewSession(g, append([]game.Option{quiet}, opts...)...)
	require.NoError(t, err)

	return s
}

func graphOf(t *testing.T, ids []string, edges [][3]string) *core.Graph {
	t.Helper()
	nodes := make([]core.Node, len(ids))
	for i, id := range ids {
		nodes[i] = core.Node{ID: id}
	}
	es := make([]core.Edge, len(edges))
	for i, e := range edges {
		es[i] = core.Edge{ID: e[0], A: e[1], B: e[2]}
	}
	g, err := core.NewGraph(nodes, es)
	require.NoError(t, err)

	return g
}

// square is the 4-cycle A-B-C-D-A.
func square(t *testing.T) *core.Graph {
	return graphOf(t, []string{"A", "B", "C", "D"}, [][3]string{
		{"ab", "A", "B"}, {"bc", "B", "C"}, {"cd", "C", "D"}, {"da", "D", "A"},
	})
}

// line is the path A-B-C.
func line(t *testing.T) *core.Graph {
	return graphOf(t, []string{"A", "B", "C"}, [][3]string{{"ab", "A", "B"}, {"bc", "B", "C"}})
}

// fork is A-B with two branches B-C and B-D: starting at A strands at C.
func fork(t *testing.T) *core.Graph {
	return graphOf(t, []string{"A", "B", "C", "D"}, [][3]string{
		{"ab", "A", "B"}, {"bc", "B", "C"}, {"bd", "B", "D"},
	})
}

// classicBridges is the seven-bridge city: landing points grouped into lands
// A, B, C, D; bridges numbered 1..7.
func classicBridges(t *testing.T) *core.Graph {
	t.Helper()
	landings := []struct{ id, land string }{
		{"A1", "A"}, {"A2", "A"}, {"A4", "A"},
		{"B5", "B"}, {"B6", "B"}, {"B7", "B"},
		{"C3", "C"}, {"C4", "C"}, {"C7", "C"},
		{"D1", "D"}, {"D2", "D"}, {"D3", "D"}, {"D5", "D"}, {"D6", "D"},
	}
	nodes := make([]core.Node, len(landings))
	for i, l := range landings {
		nodes[i] = core.Node{ID: l.id, Group: l.land}
	}
	bridges := []core.Edge{
		{ID: "b1", A: "A1", B: "D1", Label: 1},
		{ID: "b2", A: "A2", B: "D2", Label: 2},
		{ID: "b3", A: "C3", B: "D3", Label: 3},
		{ID: "b4", A: "A4", B: "C4", Label: 4},
		{ID: "b5", A: "B5", B: "D5", Label: 5},
		{ID: "b6", A: "B6", B: "D6", Label: 6},
		{ID: "b7", A: "B7", B: "C7", Label: 7},
	}
	g, err := core.NewGraph(nodes, bridges)
	require.NoError(t, err)

	return g
}

// walk selects every node in order and fails on the first error.
func walk(t *testing.T, s *game.Session, ids ...string) {
	t.Helper()
	for _, id := range ids {
		require.NoError(t, s.HandleNodeSelected(id), "select %s", id)
	}
}
