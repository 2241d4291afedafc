// File: methods_clone.go
// Role: Deep snapshots of graph instances.
// Determinism:
//   - Clone carries over edgeSeq to keep generated edge IDs monotonic on the clone.
// Concurrency:
//   - Read lock for snapshotting; no mutation of the source graph.

package core

// Clone returns a deep copy of the Graph: configuration, nodes, edges and
// their used flags. Node and Edge are plain values, so no mutable state is
// shared: marking an edge on the clone never affects the source.
//
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph{
		allowLoops: g.allowLoops,
		edgeSeq:    g.edgeSeq,
		nodes:      make([]Node, len(g.nodes)),
		edges:      make([]Edge, len(g.edges)),
		nodeIdx:    make(map[string]int, len(g.nodeIdx)),
		edgeIdx:    make(map[string]int, len(g.edgeIdx)),
	}
	copy(clone.nodes, g.nodes)
	copy(clone.edges, g.edges)
	for id, i := range g.nodeIdx {
		clone.nodeIdx[id] = i
	}
	for id, i := range g.edgeIdx {
		clone.edgeIdx[id] = i
	}

	return clone
}
