// SPDX-License-Identifier: MIT
//
// File: adjacency_list.go
// Role: Ordered adjacency snapshots for traversal algorithms.

package core

// Adjacent is one entry of an adjacency list: the neighbor reached and the
// edge used to reach it.
type Adjacent struct {
	To     string
	EdgeID string
}

// Adjacency returns, for every node, the ordered list of (neighbor, edge)
// pairs. Each edge is recorded under both endpoints, so a self-loop appears
// twice in its node's list. Nodes without edges map to an empty (non-nil) list.
//
// With unusedOnly, used edges are left out.
// The returned map and slices are fresh copies; callers may consume them.
//
// Complexity: O(V + E).
func (g *Graph) Adjacency(unusedOnly bool) map[string][]Adjacent {
	g.mu.RLock()
	defer g.mu.RUnlock()

	adj := make(map[string][]Adjacent, len(g.nodes))
	for i := range g.nodes {
		adj[g.nodes[i].ID] = []Adjacent{}
	}
	var e Edge
	for i := range g.edges {
		e = g.edges[i]
		if unusedOnly && e.Used {
			continue
		}
		adj[e.A] = append(adj[e.A], Adjacent{To: e.B, EdgeID: e.ID})
		adj[e.B] = append(adj[e.B], Adjacent{To: e.A, EdgeID: e.ID})
	}

	return adj
}

// NeighborIDs returns the distinct neighbors of id in first-seen edge order.
// With unusedOnly, only unused edges are considered.
//
// Errors: ErrUnknownNode.
// Complexity: O(E).
func (g *Graph) NeighborIDs(id string, unusedOnly bool) ([]string, error) {
	edges, err := g.IncidentEdges(id, unusedOnly)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(edges))
	out := make([]string, 0, len(edges))
	var nb string
	for _, e := range edges {
		nb = e.Other(id)
		if _, ok := seen[nb]; ok {
			continue
		}
		seen[nb] = struct{}{}
		out = append(out, nb)
	}

	return out, nil
}
