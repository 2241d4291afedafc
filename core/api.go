// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Constructors and the whole-graph validation entry point.
// Policy:
//   - NewGraph validates everything before returning; a graph that exists is well-formed.
//   - Every rejection wraps ErrInvalidTopology together with the concrete reason.

package core

import "fmt"

// New creates an empty Graph with the given options.
// By default self-loops are rejected.
// Complexity: O(1)
func New(opts ...GraphOption) *Graph {
	g := &Graph{
		nodeIdx: make(map[string]int),
		edgeIdx: make(map[string]int),
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// NewGraph builds a Graph from a literal list of nodes and edges.
//
// Implementation:
//   - Stage 1: Insert every node in order (empty or duplicate IDs are rejected).
//   - Stage 2: Insert every edge in order; edges with an empty ID receive a generated one.
//     Endpoints must reference inserted nodes; duplicate edge IDs are rejected.
//
// Edge.Used on the input is preserved, so a snapshot can be rebuilt verbatim.
//
// Errors:
//   - ErrInvalidTopology wrapping ErrEmptyNodeID, ErrDuplicateNode, ErrDuplicateEdge,
//     ErrUnknownNode or ErrLoopNotAllowed.
//
// Complexity: O(V + E).
func NewGraph(nodes []Node, edges []Edge, opts ...GraphOption) (*Graph, error) {
	g := New(opts...)

	var (
		i   int
		err error
	)
	for i = range nodes {
		if err = g.AddNode(nodes[i]); err != nil {
			return nil, fmt.Errorf("NewGraph: node #%d: %w", i, err)
		}
	}
	for i = range edges {
		e := edges[i]
		edgeOpts := []EdgeOption{WithLabel(e.Label)}
		if e.ID != "" {
			edgeOpts = append(edgeOpts, WithEdgeID(e.ID))
		}
		var eid string
		if eid, err = g.AddEdge(e.A, e.B, edgeOpts...); err != nil {
			return nil, fmt.Errorf("NewGraph: edge #%d: %w", i, err)
		}
		if e.Used {
			g.edges[g.edgeIdx[eid]].Used = true
		}
	}

	return g, nil
}

// Looped reports whether self-loops are permitted by policy.
// Complexity: O(1).
func (g *Graph) Looped() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowLoops
}

// invalid wraps a detail sentinel so that both it and ErrInvalidTopology match errors.Is.
func invalid(detail error, format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s: %w", ErrInvalidTopology, fmt.Sprintf(format, args...), detail)
}
