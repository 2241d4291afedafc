// SPDX-License-Identifier: MIT
//
// File: methods_nodes.go
// Role: Node lifecycle & queries, plus land-group listings.
// Determinism:
//   - Nodes(), Groups() and GroupMembers() follow node insertion order.
// Concurrency:
//   - Mutations under mu write lock; queries under mu read lock.

package core

// AddNode inserts n at the end of the node order.
//
// Errors: ErrInvalidTopology wrapping ErrEmptyNodeID, ErrDuplicateNode or
// ErrGroupClash (an ungrouped node named like another node's land).
// Unlike the edge catalog, re-adding an existing ID is an error: node identity
// is fixed for the lifetime of the graph.
//
// Complexity: O(V) for the group check.
func (g *Graph) AddNode(n Node) error {
	if n.ID == "" {
		return invalid(ErrEmptyNodeID, "AddNode")
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.nodeIdx[n.ID]; exists {
		return invalid(ErrDuplicateNode, "AddNode(%s)", n.ID)
	}
	for i := range g.nodes {
		m := &g.nodes[i]
		if (n.Group == "" && m.Group == n.ID) || (m.Group == "" && n.Group == m.ID) {
			return invalid(ErrGroupClash, "AddNode(%s): group %q of node %s", n.ID, n.GroupID(), m.ID)
		}
	}
	g.nodeIdx[n.ID] = len(g.nodes)
	g.nodes = append(g.nodes, n)

	return nil
}

// HasNode reports whether a node with the given ID exists in the graph.
// Complexity: O(1).
func (g *Graph) HasNode(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.nodeIdx[id]

	return ok
}

// Node returns a copy of the node with the given ID.
// The second result is false if the node does not exist.
// Complexity: O(1).
func (g *Graph) Node(id string) (Node, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	i, ok := g.nodeIdx[id]
	if !ok {
		return Node{}, false
	}

	return g.nodes[i], true
}

// Nodes returns a copy of all nodes in insertion order.
// Complexity: O(V).
func (g *Graph) Nodes() []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Node, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// NodeIDs returns all node IDs in insertion order.
// Complexity: O(V).
func (g *Graph) NodeIDs() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, len(g.nodes))
	for i := range g.nodes {
		out[i] = g.nodes[i].ID
	}

	return out
}

// NodeCount returns the number of nodes.
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// Groups returns the distinct land-group IDs, ordered by the first node
// that belongs to each group.
// Complexity: O(V).
func (g *Graph) Groups() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	seen := make(map[string]struct{}, len(g.nodes))
	out := make([]string, 0, len(g.nodes))
	var gid string
	for i := range g.nodes {
		gid = g.nodes[i].GroupID()
		if _, ok := seen[gid]; ok {
			continue
		}
		seen[gid] = struct{}{}
		out = append(out, gid)
	}

	return out
}

// GroupMembers returns the IDs of nodes whose effective group is group,
// in insertion order. An unknown group yields an empty slice.
// Complexity: O(V).
func (g *Graph) GroupMembers(group string) []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []string
	for i := range g.nodes {
		if g.nodes[i].GroupID() == group {
			out = append(out, g.nodes[i].ID)
		}
	}

	return out
}
