// SPDX-License-Identifier: MIT
package euler

import (
	"fmt"

	"github.com/katalvlaran/konigsberg/core"
)

// Solve computes an Eulerian walk over the unused edges of g with
// Hierholzer's algorithm.
//
// g is expected to have every edge unused: the start node comes from the
// odd nodes of the full edge set, so on a partly used graph the walk may
// miss edges and report ErrDisconnected. Callers solve a reset copy.
//
// Steps:
//  1. Build the adjacency of unused edges, both endpoints, in edge order.
//  2. Start at the first odd-degree node (full edge set); on an even graph
//     start at the first node that still has an unused incident edge.
//  3. Walk with an explicit stack. Each node keeps a cursor into its
//     adjacency list; consumed edges in front of the cursor are skipped
//     lazily. A node with nothing left is popped onto the path together
//     with the edge that led to it.
//  4. Reverse both sequences so they read from the start node.
//
// Every edge is recorded at the moment it is consumed, so parallel edges
// between the same pair of nodes each appear exactly once.
//
// Errors:
//   - ErrGraphNil      g is nil
//   - ErrNoEdges       no unused edge remains
//   - ErrNotEulerian   more than two odd-degree nodes
//   - ErrDisconnected  the walk could not reach every unused edge
//
// Complexity: Time O(V+E), Memory O(V+E).
func Solve(g *core.Graph) (*Path, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	unused := g.UnusedCount()
	if unused == 0 {
		return nil, ErrNoEdges
	}

	cls, err := Classify(g)
	if err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}
	if cls.Kind == Impossible {
		return nil, fmt.Errorf("Solve: %d odd nodes %v: %w", len(cls.OddNodes), cls.OddNodes, ErrNotEulerian)
	}

	// 1) adjacency of unused edges
	adj := g.Adjacency(true)

	// 2) pick the start node
	start := ""
	if cls.Kind == Trail {
		start = cls.OddNodes[0]
	} else {
		for _, id := range g.NodeIDs() {
			if len(adj[id]) > 0 {
				start = id
				break
			}
		}
	}

	// 3) Hierholzer with an explicit stack
	consumed := make(map[string]bool, unused)
	cursor := make(map[string]int, len(adj))
	nodeStack := []string{start}
	edgeStack := []string{""} // edge that led to nodeStack[i]; none for start
	nodes := make([]string, 0, unused+1)
	edges := make([]string, 0, unused)

	for len(nodeStack) > 0 {
		top := len(nodeStack) - 1
		u := nodeStack[top]

		list := adj[u]
		i := cursor[u]
		for i < len(list) && consumed[list[i].EdgeID] {
			i++
		}
		cursor[u] = i

		if i == len(list) {
			// dead end: emit and backtrack
			nodes = append(nodes, u)
			if edgeStack[top] != "" {
				edges = append(edges, edgeStack[top])
			}
			nodeStack = nodeStack[:top]
			edgeStack = edgeStack[:top]
			continue
		}

		next := list[i]
		consumed[next.EdgeID] = true
		nodeStack = append(nodeStack, next.To)
		edgeStack = append(edgeStack, next.EdgeID)
	}

	if len(edges) != unused {
		return nil, fmt.Errorf("Solve: covered %d of %d edges: %w", len(edges), unused, ErrDisconnected)
	}

	// 4) reverse into walk order
	reverse(nodes)
	reverse(edges)

	return &Path{Nodes: nodes, Edges: edges}, nil
}

func reverse(s []string) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
