// SPDX-License-Identifier: MIT
package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/konigsberg/core"
)

func TestMarkEdgeUsed(t *testing.T) {
	g := mustSquare(t)

	require.NoError(t, g.MarkEdgeUsed("ab"))
	assert.Equal(t, 1, g.UsedCount())
	assert.Equal(t, 3, g.UnusedCount())

	assert.ErrorIs(t, g.MarkEdgeUsed("ab"), core.ErrEdgeAlreadyUsed)
	assert.ErrorIs(t, g.MarkEdgeUsed("zz"), core.ErrUnknownEdge)
	assert.Equal(t, 1, g.UsedCount(), "failed marks must not change state")
}

func TestUnmarkEdgeUsed(t *testing.T) {
	g := mustSquare(t)

	assert.ErrorIs(t, g.UnmarkEdgeUsed("ab"), core.ErrEdgeNotUsed)
	assert.ErrorIs(t, g.UnmarkEdgeUsed("zz"), core.ErrUnknownEdge)

	require.NoError(t, g.MarkEdgeUsed("ab"))
	require.NoError(t, g.UnmarkEdgeUsed("ab"))
	assert.Equal(t, 0, g.UsedCount())
}

func TestResetUsage(t *testing.T) {
	g := mustSquare(t)
	before := g.Nodes()
	for _, id := range []string{"ab", "bc", "cd", "da"} {
		require.NoError(t, g.MarkEdgeUsed(id))
	}
	assert.True(t, g.AllUsed())

	g.ResetUsage()
	assert.Equal(t, 0, g.UsedCount())
	assert.False(t, g.AllUsed())
	assert.Equal(t, before, g.Nodes())
	assert.Equal(t, []string{"ab", "bc", "cd", "da"}, edgeIDs(g.Edges()))
}

func TestAllUsed_NoEdges(t *testing.T) {
	g, err := core.NewGraph(nodesOf(NodeA), nil)
	require.NoError(t, err)
	assert.False(t, g.AllUsed())
}

func TestIncidentEdges(t *testing.T) {
	g := mustSquare(t)
	require.NoError(t, g.MarkEdgeUsed("ab"))

	all, err := g.IncidentEdges(NodeA, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"ab", "da"}, edgeIDs(all))

	unused, err := g.IncidentEdges(NodeA, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"da"}, edgeIDs(unused))

	_, err = g.IncidentEdges("Z", false)
	assert.ErrorIs(t, err, core.ErrUnknownNode)
}

func TestNeighborIDs_ParallelEdgesCollapse(t *testing.T) {
	g, err := core.NewGraph(
		nodesOf(NodeA, NodeB, NodeC),
		[]core.Edge{edge("1", NodeA, NodeB), edge("2", NodeB, NodeA), edge("3", NodeA, NodeC)},
	)
	require.NoError(t, err)

	nbs, err := g.NeighborIDs(NodeA, false)
	require.NoError(t, err)
	assert.Equal(t, []string{NodeB, NodeC}, nbs)
}

func TestAdjacency(t *testing.T) {
	g, err := core.NewGraph(
		nodesOf(NodeA, NodeB, NodeC),
		[]core.Edge{edge("ab", NodeA, NodeB), edge("aa", NodeA, NodeA)},
		core.WithLoops(),
	)
	require.NoError(t, err)

	adj := g.Adjacency(false)
	assert.Equal(t, []core.Adjacent{
		{To: NodeB, EdgeID: "ab"},
		{To: NodeA, EdgeID: "aa"},
		{To: NodeA, EdgeID: "aa"},
	}, adj[NodeA])
	assert.Equal(t, []core.Adjacent{{To: NodeA, EdgeID: "ab"}}, adj[NodeB])
	assert.NotNil(t, adj[NodeC])
	assert.Empty(t, adj[NodeC])

	require.NoError(t, g.MarkEdgeUsed("ab"))
	adj = g.Adjacency(true)
	assert.Empty(t, adj[NodeB])
}

func TestGroups(t *testing.T) {
	g, err := core.NewGraph([]core.Node{
		{ID: "A1", Group: "A"},
		{ID: "B1", Group: "B"},
		{ID: "A2", Group: "A"},
		{ID: "X"},
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "X"}, g.Groups())
	assert.Equal(t, []string{"A1", "A2"}, g.GroupMembers("A"))
	assert.Equal(t, []string{"X"}, g.GroupMembers("X"))
	assert.Empty(t, g.GroupMembers("nope"))
}

// An ungrouped node named like another node's land would silently join it.
func TestAddNode_GroupClash(t *testing.T) {
	_, err := core.NewGraph([]core.Node{{ID: "A1", Group: "A"}, {ID: "A"}}, nil)
	assert.ErrorIs(t, err, core.ErrInvalidTopology)
	assert.ErrorIs(t, err, core.ErrGroupClash)

	_, err = core.NewGraph([]core.Node{{ID: "A"}, {ID: "A1", Group: "A"}}, nil)
	assert.ErrorIs(t, err, core.ErrGroupClash)

	// a node may name its own land explicitly
	g, err := core.NewGraph([]core.Node{{ID: "A", Group: "A"}, {ID: "A1", Group: "A"}}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "A1"}, g.GroupMembers("A"))
}

func TestContractGroups(t *testing.T) {
	g, err := core.NewGraph([]core.Node{
		{ID: "A1", Group: "A", Pos: core.Position{X: 1, Y: 2}},
		{ID: "A2", Group: "A"},
		{ID: "B1", Group: "B"},
	}, []core.Edge{
		{ID: "1", A: "A1", B: "B1", Label: 1},
		{ID: "2", A: "A1", B: "A2", Used: true},
	})
	require.NoError(t, err)

	land := core.ContractGroups(g)
	assert.True(t, land.Looped())
	assert.Equal(t, []string{"A", "B"}, land.NodeIDs())
	a, _ := land.Node("A")
	assert.Equal(t, core.Position{X: 1, Y: 2}, a.Pos)

	e1, _ := land.Edge("1")
	assert.Equal(t, core.Edge{ID: "1", A: "A", B: "B", Label: 1}, e1)
	e2, _ := land.Edge("2")
	assert.True(t, e2.IsLoop())
	assert.True(t, e2.Used)

	// The source is untouched.
	src, _ := g.Edge("1")
	assert.Equal(t, "A1", src.A)
}

// TestConcurrentMarkAndClone verifies that marking and cloning can interleave safely.
func TestConcurrentMarkAndClone(t *testing.T) {
	g := mustSquare(t)
	ids := []string{"ab", "bc", "cd", "da"}

	var wg sync.WaitGroup
	errs := make(chan error, len(ids))
	for _, id := range ids {
		wg.Add(2)
		go func(id string) {
			defer wg.Done()
			errs <- g.MarkEdgeUsed(id)
		}(id)
		go func() {
			defer wg.Done()
			_ = g.Clone().UsedCount()
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
	assert.True(t, g.AllUsed())
}
