// File: view.go
// Role: Non-mutating graph views (new graphs derived from an existing topology).
// Determinism:
//   - Preserves edge IDs, labels and used flags; node order follows first appearance.
// Concurrency:
//   - Read lock on source; result is a fresh graph instance.
// AI-HINT (file):
//   - Views do NOT mutate the input Graph.
//   - ContractGroups merges every land group into one node; bridges inside a group become loops.

package core

// Contract returns a new Graph in which every node of g is replaced by the
// unit that unitOf assigns to it. Units appear in the order of their first
// member; each unit node takes the position of that first member.
//
// Every edge is carried over with its ID, label and used flag, endpoints
// mapped to units. An edge whose endpoints share a unit becomes a self-loop,
// so the result always allows loops.
//
// Complexity: O(V + E).
func Contract(g *Graph, unitOf func(Node) string) *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := New(WithLoops())
	out.edgeSeq = g.edgeSeq

	// Map nodes to units, materializing units on first sight.
	unit := make(map[string]string, len(g.nodes))
	var u string
	for i := range g.nodes {
		u = unitOf(g.nodes[i])
		unit[g.nodes[i].ID] = u
		if _, ok := out.nodeIdx[u]; ok {
			continue
		}
		out.nodeIdx[u] = len(out.nodes)
		out.nodes = append(out.nodes, Node{ID: u, Pos: g.nodes[i].Pos})
	}

	// Carry edges over with identical IDs.
	var e Edge
	for i := range g.edges {
		e = g.edges[i]
		e.A, e.B = unit[e.A], unit[e.B]
		out.edgeIdx[e.ID] = len(out.edges)
		out.edges = append(out.edges, e)
	}

	return out
}

// ContractGroups is Contract keyed by Node.GroupID: the land-level view of a
// fixed topology whose landing points are grouped into land masses.
//
// Complexity: O(V + E).
func ContractGroups(g *Graph) *Graph {
	return Contract(g, Node.GroupID)
}
