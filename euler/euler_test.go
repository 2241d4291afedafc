// SPDX-License-Identifier: MIT
// Package euler_test validates classification, fix suggestions and the
// Hierholzer walk.
// Scope:
//  1. Parity rule on small named graphs (square, path, classic bridges).
//  2. Connectivity guard: parity-valid graphs split into islands.
//  3. Walk structure: permutation of edges, consecutive adjacency,
//     start at an odd node, parallel edges and loops.
//  4. Randomized: random connected graphs repaired with SuggestFix are
//     always solvable and the walk covers every edge once.
package euler_test

import (
	"math/rand"
	"sort"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/konigsberg/core"
	"github.com/katalvlaran/konigsberg/euler"
)

// build creates a graph from node IDs and (id, a, b) triples.
func build(t *testing.T, ids []string, edges [][3]string, opts ...core.GraphOption) *core.Graph {
	t.Helper()
	nodes := make([]core.Node, len(ids))
	for i, id := range ids {
		nodes[i] = core.Node{ID: id}
	}
	es := make([]core.Edge, len(edges))
	for i, e := range edges {
		es[i] = core.Edge{ID: e[0], A: e[1], B: e[2]}
	}
	g, err := core.NewGraph(nodes, es, opts...)
	require.NoError(t, err)

	return g
}

func square(t *testing.T) *core.Graph {
	return build(t, []string{"A", "B", "C", "D"}, [][3]string{
		{"ab", "A", "B"}, {"bc", "B", "C"}, {"cd", "C", "D"}, {"da", "D", "A"},
	})
}

// classicLands is the seven-bridge topology at land level.
func classicLands(t *testing.T) *core.Graph {
	return build(t, []string{"A", "B", "C", "D"}, [][3]string{
		{"1", "A", "D"}, {"2", "A", "D"}, {"3", "C", "D"}, {"4", "A", "C"},
		{"5", "B", "D"}, {"6", "B", "D"}, {"7", "B", "C"},
	})
}

// checkWalk asserts the structural properties every solved walk must have.
func checkWalk(t *testing.T, g *core.Graph, p *euler.Path) {
	t.Helper()
	require.NotNil(t, p)
	require.Len(t, p.Nodes, len(p.Edges)+1)

	// every unused edge exactly once
	var want []string
	for _, e := range g.Edges() {
		if !e.Used {
			want = append(want, e.ID)
		}
	}
	got := append([]string(nil), p.Edges...)
	sort.Strings(want)
	sort.Strings(got)
	assert.Equal(t, want, got, "walk must be a permutation of the unused edges")

	// consecutive nodes are joined by the recorded edge
	for i, id := range p.Edges {
		e, ok := g.Edge(id)
		require.True(t, ok, "edge %s", id)
		assert.True(t, e.Connects(p.Nodes[i], p.Nodes[i+1]),
			"edge %s does not join %s and %s", id, p.Nodes[i], p.Nodes[i+1])
	}
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "circuit", euler.Circuit.String())
	assert.Equal(t, "trail", euler.Trail.String())
	assert.Equal(t, "none", euler.Impossible.String())
}

func TestClassify_NilGraph(t *testing.T) {
	_, err := euler.Classify(nil)
	assert.ErrorIs(t, err, euler.ErrGraphNil)
}

func TestClassify_Square(t *testing.T) {
	c, err := euler.Classify(square(t))
	require.NoError(t, err)
	assert.Equal(t, euler.Circuit, c.Kind)
	assert.Empty(t, c.OddNodes)
	assert.True(t, c.Connected)
	assert.True(t, c.Solvable())
}

func TestClassify_Path(t *testing.T) {
	g := build(t, []string{"A", "B", "C"}, [][3]string{{"ab", "A", "B"}, {"bc", "B", "C"}})
	c, err := euler.Classify(g)
	require.NoError(t, err)
	assert.Equal(t, euler.Trail, c.Kind)
	assert.Equal(t, []string{"A", "C"}, c.OddNodes)
	assert.True(t, c.IsOdd("A"))
	assert.False(t, c.IsOdd("B"))
}

func TestClassify_ClassicBridges(t *testing.T) {
	c, err := euler.Classify(classicLands(t))
	require.NoError(t, err)
	assert.Equal(t, euler.Impossible, c.Kind)
	assert.Len(t, c.OddNodes, 4)
	assert.True(t, c.Connected)
	assert.False(t, c.Solvable())
}

func TestClassify_IgnoresUsage(t *testing.T) {
	g := square(t)
	require.NoError(t, g.MarkEdgeUsed("ab"))
	c, err := euler.Classify(g)
	require.NoError(t, err)
	assert.Equal(t, euler.Circuit, c.Kind, "degrees are taken over the full edge set")
}

func TestClassify_Disconnected(t *testing.T) {
	// two triangles: every degree even, but two islands
	g := build(t, []string{"A", "B", "C", "X", "Y", "Z"}, [][3]string{
		{"ab", "A", "B"}, {"bc", "B", "C"}, {"ca", "C", "A"},
		{"xy", "X", "Y"}, {"yz", "Y", "Z"}, {"zx", "Z", "X"},
	})
	c, err := euler.Classify(g)
	require.NoError(t, err)
	assert.Equal(t, euler.Circuit, c.Kind)
	assert.False(t, c.Connected)
	assert.False(t, c.Solvable())

	_, err = euler.Solve(g)
	assert.ErrorIs(t, err, euler.ErrDisconnected)

	fix, err := euler.SuggestFix(g)
	require.NoError(t, err)
	assert.Empty(t, fix.Pairs)
	assert.Equal(t, "Connect the separate islands of bridges (parity allows a circuit)", fix.Message())
}

func TestClassify_IsolatedNodeStillConnected(t *testing.T) {
	g := build(t, []string{"A", "B", "Z"}, [][3]string{{"ab1", "A", "B"}, {"ab2", "A", "B"}})
	c, err := euler.Classify(g)
	require.NoError(t, err)
	assert.True(t, c.Solvable())
}

func TestSolve_Errors(t *testing.T) {
	_, err := euler.Solve(nil)
	assert.ErrorIs(t, err, euler.ErrGraphNil)

	_, err = euler.Solve(build(t, []string{"A"}, nil))
	assert.ErrorIs(t, err, euler.ErrNoEdges)

	_, err = euler.Solve(classicLands(t))
	assert.ErrorIs(t, err, euler.ErrNotEulerian)

	g := square(t)
	for _, id := range []string{"ab", "bc", "cd", "da"} {
		require.NoError(t, g.MarkEdgeUsed(id))
	}
	_, err = euler.Solve(g)
	assert.ErrorIs(t, err, euler.ErrNoEdges)
}

func TestSolve_SquareCircuit(t *testing.T) {
	g := square(t)
	p, err := euler.Solve(g)
	require.NoError(t, err)
	checkWalk(t, g, p)

	assert.Equal(t, []string{"A", "B", "C", "D", "A"}, p.Nodes)
	assert.Equal(t, []string{"ab", "bc", "cd", "da"}, p.Edges)
	assert.True(t, p.Closed())
	assert.Equal(t, "A", p.Start())
	assert.Equal(t, "A", p.End())
}

func TestSolve_PathStartsAtOddNode(t *testing.T) {
	g := build(t, []string{"A", "B", "C"}, [][3]string{{"ab", "A", "B"}, {"bc", "B", "C"}})
	p, err := euler.Solve(g)
	require.NoError(t, err)
	checkWalk(t, g, p)

	assert.Equal(t, []string{"A", "B", "C"}, p.Nodes)
	assert.Equal(t, []string{"ab", "bc"}, p.Edges)
	assert.False(t, p.Closed())
}

func TestSolve_StartsAtFirstOddEvenIfNotFirstNode(t *testing.T) {
	// B and C are odd; A sits in the middle of a detour.
	g := build(t, []string{"A", "B", "C"}, [][3]string{
		{"ab", "A", "B"}, {"ca", "C", "A"}, {"bc", "B", "C"}, {"bc2", "B", "C"},
	})
	p, err := euler.Solve(g)
	require.NoError(t, err)
	checkWalk(t, g, p)
	assert.Equal(t, "B", p.Start())
	assert.Equal(t, "C", p.End())
}

func TestSolve_ParallelEdges(t *testing.T) {
	g := build(t, []string{"A", "B"}, [][3]string{
		{"x", "A", "B"}, {"y", "A", "B"}, {"z", "A", "B"}, {"w", "A", "B"},
	})
	p, err := euler.Solve(g)
	require.NoError(t, err)
	checkWalk(t, g, p)
	assert.Equal(t, []string{"A", "B", "A", "B", "A"}, p.Nodes)
}

func TestSolve_SelfLoop(t *testing.T) {
	g := build(t, []string{"A", "B"}, [][3]string{
		{"ab", "A", "B"}, {"bb", "B", "B"},
	}, core.WithLoops())
	p, err := euler.Solve(g)
	require.NoError(t, err)
	checkWalk(t, g, p)
	assert.Equal(t, []string{"A", "B", "B"}, p.Nodes)
	assert.Equal(t, []string{"ab", "bb"}, p.Edges)
}

func TestSolve_SplicesSubCycles(t *testing.T) {
	// Figure eight around A: the greedy walk closes the first loop early.
	g := build(t, []string{"A", "B", "C", "D", "E"}, [][3]string{
		{"ab", "A", "B"}, {"bc", "B", "C"}, {"ca", "C", "A"},
		{"ad", "A", "D"}, {"de", "D", "E"}, {"ea", "E", "A"},
	})
	p, err := euler.Solve(g)
	require.NoError(t, err)
	checkWalk(t, g, p)
	assert.True(t, p.Closed())
}

func TestSolve_DoesNotMutate(t *testing.T) {
	g := square(t)
	_, err := euler.Solve(g)
	require.NoError(t, err)
	assert.Equal(t, 0, g.UsedCount())
}

// The start comes from full-graph parity, so a partly used board must be
// reset before solving.
func TestSolve_PartlyUsedNeedsReset(t *testing.T) {
	g := build(t, []string{"A", "B", "C"}, [][3]string{{"ab", "A", "B"}, {"bc", "B", "C"}})
	require.NoError(t, g.MarkEdgeUsed("ab"))

	_, err := euler.Solve(g)
	assert.ErrorIs(t, err, euler.ErrDisconnected)

	g.ResetUsage()
	p, err := euler.Solve(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"ab", "bc"}, p.Edges)
}

func TestSuggestFix(t *testing.T) {
	fix, err := euler.SuggestFix(square(t))
	require.NoError(t, err)
	assert.False(t, fix.Needed())
	assert.Empty(t, fix.Pairs)
	assert.Equal(t, "Already solvable (circuit)", fix.Message())

	g := classicLands(t)
	fix, err = euler.SuggestFix(g)
	require.NoError(t, err)
	require.True(t, fix.Needed())
	assert.Equal(t, []euler.Pair{{A: "A", B: "B"}, {A: "C", B: "D"}}, fix.Pairs)
	assert.Equal(t, "Add bridges between odd nodes: A - B - C - D", fix.Message())

	// all but the last pair leaves a trail
	_, err = g.AddEdge(fix.Pairs[0].A, fix.Pairs[0].B)
	require.NoError(t, err)
	c, err := euler.Classify(g)
	require.NoError(t, err)
	assert.Equal(t, euler.Trail, c.Kind)

	// all pairs give a circuit
	_, err = g.AddEdge(fix.Pairs[1].A, fix.Pairs[1].B)
	require.NoError(t, err)
	c, err = euler.Classify(g)
	require.NoError(t, err)
	assert.Equal(t, euler.Circuit, c.Kind)

	_, err = euler.SuggestFix(nil)
	assert.ErrorIs(t, err, euler.ErrGraphNil)
}

func TestSolve_RandomRepairedGraphs(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for round := 0; round < 40; round++ {
		n := 2 + rng.Intn(9)
		g := core.New()
		ids := make([]string, n)
		for i := range ids {
			ids[i] = "N" + strconv.Itoa(i)
			require.NoError(t, g.AddNode(core.Node{ID: ids[i]}))
		}
		// spanning tree keeps it connected
		for i := 1; i < n; i++ {
			_, err := g.AddEdge(ids[i], ids[rng.Intn(i)])
			require.NoError(t, err)
		}
		extra := rng.Intn(2 * n)
		for k := 0; k < extra; k++ {
			a, b := rng.Intn(n), rng.Intn(n)
			if a == b {
				continue
			}
			_, err := g.AddEdge(ids[a], ids[b])
			require.NoError(t, err)
		}

		fix, err := euler.SuggestFix(g)
		require.NoError(t, err)
		// leave one pair out when possible, so trails are exercised too
		pairs := fix.Pairs
		if len(pairs) > 0 && round%2 == 0 {
			pairs = pairs[:len(pairs)-1]
		}
		for _, p := range pairs {
			_, err = g.AddEdge(p.A, p.B)
			require.NoError(t, err)
		}

		c, err := euler.Classify(g)
		require.NoError(t, err)
		require.True(t, c.Solvable(), "round %d", round)

		path, err := euler.Solve(g)
		require.NoError(t, err, "round %d", round)
		checkWalk(t, g, path)
		if c.Kind == euler.Trail {
			assert.True(t, c.IsOdd(path.Start()))
			assert.True(t, c.IsOdd(path.End()))
			assert.NotEqual(t, path.Start(), path.End())
		} else {
			assert.True(t, path.Closed())
		}
	}
}
