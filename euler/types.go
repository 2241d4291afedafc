// SPDX-License-Identifier: MIT
package euler

import "errors"

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed in.
	ErrGraphNil = errors.New("euler: graph is nil")

	// ErrNoEdges signals that there is nothing to solve: no unused edge remains.
	ErrNoEdges = errors.New("euler: no edges to traverse")

	// ErrNotEulerian indicates the odd-degree count rules out any Eulerian walk.
	ErrNotEulerian = errors.New("euler: graph has no Eulerian trail or circuit")

	// ErrDisconnected indicates the unused edges are split over several components.
	ErrDisconnected = errors.New("euler: edges are not connected")
)

// Kind is the Eulerian type of a graph.
type Kind int

const (
	// Impossible: more than two odd-degree nodes; no walk covers every edge once.
	Impossible Kind = iota
	// Circuit: every degree is even; a closed walk covers every edge once.
	Circuit
	// Trail: exactly two odd-degree nodes; an open walk between them covers every edge once.
	Trail
)

// String returns the short name shown to players: "circuit", "trail" or "none".
func (k Kind) String() string {
	switch k {
	case Circuit:
		return "circuit"
	case Trail:
		return "trail"
	default:
		return "none"
	}
}

// Classification is the result of Classify.
type Classification struct {
	// Kind is derived from the odd-degree count alone.
	Kind Kind

	// OddNodes lists the odd-degree nodes in graph insertion order.
	OddNodes []string

	// Connected reports whether all edge-bearing nodes lie in one component.
	Connected bool
}

// Solvable reports whether an Eulerian walk really exists: the parity rule
// holds and the edges form a single component.
func (c Classification) Solvable() bool {
	return c.Kind != Impossible && c.Connected
}

// IsOdd reports whether id is one of the odd-degree nodes.
func (c Classification) IsOdd(id string) bool {
	for _, o := range c.OddNodes {
		if o == id {
			return true
		}
	}

	return false
}

// Path is one full traversal produced by Solve.
//
// Nodes is the visitation order; Edges[i] joins Nodes[i] and Nodes[i+1],
// so len(Nodes) == len(Edges)+1.
type Path struct {
	Nodes []string
	Edges []string
}

// Start returns the first node of the walk.
func (p *Path) Start() string {
	if p == nil || len(p.Nodes) == 0 {
		return ""
	}

	return p.Nodes[0]
}

// End returns the last node of the walk.
func (p *Path) End() string {
	if p == nil || len(p.Nodes) == 0 {
		return ""
	}

	return p.Nodes[len(p.Nodes)-1]
}

// Closed reports whether the walk returns to its start.
func (p *Path) Closed() bool {
	return p != nil && len(p.Edges) > 0 && p.Start() == p.End()
}
