// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries, and the "used" flag mutations.
// Determinism:
//   - Edges() and every filtered listing follow edge insertion order.
//   - nextEdgeID() is monotonic and stable ("e" + decimal) and skips IDs already taken.
// Concurrency:
//   - Mutations under mu write lock; queries under mu read lock.
// AI-HINT (file):
//   - MarkEdgeUsed is NOT idempotent: a second mark is ErrEdgeAlreadyUsed.
//   - ResetUsage keeps every identity and position, only flags change.

package core

import "strconv"

// edgeIDPrefix is a private textual prefix for generated edge identifiers.
const edgeIDPrefix = 'e'

// AddEdge appends a new unused edge between a and b and returns its ID.
//
// Steps:
//  1. Build the Edge and apply opts (WithEdgeID, WithLabel).
//  2. Validate endpoints exist and loop policy.
//  3. Generate an ID when none was given; reject duplicate IDs.
//
// Errors: ErrInvalidTopology wrapping ErrUnknownNode, ErrLoopNotAllowed or ErrDuplicateEdge.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(a, b string, opts ...EdgeOption) (string, error) {
	e := Edge{A: a, B: b}
	for _, opt := range opts {
		opt(&e)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// 1) Endpoints must already exist: no silent auto-creation.
	if _, ok := g.nodeIdx[a]; !ok {
		return "", invalid(ErrUnknownNode, "AddEdge(%s-%s): endpoint %q", a, b, a)
	}
	if _, ok := g.nodeIdx[b]; !ok {
		return "", invalid(ErrUnknownNode, "AddEdge(%s-%s): endpoint %q", a, b, b)
	}
	// 2) Loop constraint
	if a == b && !g.allowLoops {
		return "", invalid(ErrLoopNotAllowed, "AddEdge(%s-%s)", a, b)
	}
	// 3) Identity
	if e.ID == "" {
		e.ID = g.nextEdgeID()
	} else if _, dup := g.edgeIdx[e.ID]; dup {
		return "", invalid(ErrDuplicateEdge, "AddEdge(%s)", e.ID)
	}

	g.edgeIdx[e.ID] = len(g.edges)
	g.edges = append(g.edges, e)

	return e.ID, nil
}

// nextEdgeID returns the next free "e<N>" identifier. Caller holds mu.
func (g *Graph) nextEdgeID() string {
	buf := make([]byte, 0, 8)
	for {
		g.edgeSeq++
		buf = append(buf[:0], edgeIDPrefix)
		buf = strconv.AppendUint(buf, g.edgeSeq, 10)
		if _, taken := g.edgeIdx[string(buf)]; !taken {
			return string(buf)
		}
	}
}

// Edge returns a copy of the edge with the given ID.
// Complexity: O(1).
func (g *Graph) Edge(id string) (Edge, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	i, ok := g.edgeIdx[id]
	if !ok {
		return Edge{}, false
	}

	return g.edges[i], true
}

// Edges returns a copy of all edges in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns the number of edges, used or not.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// UsedCount returns the number of edges marked used.
// Complexity: O(E).
func (g *Graph) UsedCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := 0
	for i := range g.edges {
		if g.edges[i].Used {
			n++
		}
	}

	return n
}

// UnusedCount returns the number of edges not yet crossed.
// Complexity: O(E).
func (g *Graph) UnusedCount() int {
	return g.EdgeCount() - g.UsedCount()
}

// AllUsed reports whether every edge is used. A graph with no edges reports false.
// Complexity: O(E).
func (g *Graph) AllUsed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if len(g.edges) == 0 {
		return false
	}
	for i := range g.edges {
		if !g.edges[i].Used {
			return false
		}
	}

	return true
}

// IncidentEdges returns the edges touching node id, in edge order.
// With unusedOnly, used edges are skipped. A self-loop appears once.
//
// Errors: ErrUnknownNode.
// Complexity: O(E).
func (g *Graph) IncidentEdges(id string, unusedOnly bool) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.nodeIdx[id]; !ok {
		return nil, ErrUnknownNode
	}
	var out []Edge
	for i := range g.edges {
		if unusedOnly && g.edges[i].Used {
			continue
		}
		if g.edges[i].Touches(id) {
			out = append(out, g.edges[i])
		}
	}

	return out, nil
}

// MarkEdgeUsed flags the edge as crossed.
//
// Errors:
//   - ErrUnknownEdge if the ID is absent.
//   - ErrEdgeAlreadyUsed if the edge is already used; re-marking signals a
//     caller bug and is never silently accepted.
//
// Complexity: O(1).
func (g *Graph) MarkEdgeUsed(id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	i, ok := g.edgeIdx[id]
	if !ok {
		return ErrUnknownEdge
	}
	if g.edges[i].Used {
		return ErrEdgeAlreadyUsed
	}
	g.edges[i].Used = true

	return nil
}

// UnmarkEdgeUsed clears the used flag of one edge (the inverse of MarkEdgeUsed).
//
// Errors: ErrUnknownEdge, ErrEdgeNotUsed.
// Complexity: O(1).
func (g *Graph) UnmarkEdgeUsed(id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	i, ok := g.edgeIdx[id]
	if !ok {
		return ErrUnknownEdge
	}
	if !g.edges[i].Used {
		return ErrEdgeNotUsed
	}
	g.edges[i].Used = false

	return nil
}

// ResetUsage clears every used flag, preserving node and edge identities.
// Complexity: O(E).
func (g *Graph) ResetUsage() {
	g.mu.Lock()
	defer g.mu.Unlock()

	for i := range g.edges {
		g.edges[i].Used = false
	}
}
