// SPDX-License-Identifier: MIT
// Package core defines the central Graph, Node, and Edge types of the bridge
// puzzle, and provides thread-safe primitives for building, querying, cloning
// and marking graphs.
//
// The Graph keeps nodes and edges in insertion order: every listing and every
// derived structure (degree maps, adjacency, land groups) iterates in that
// order, which keeps classification and tie-breaks deterministic.
//
// Errors:
//
//	ErrInvalidTopology  - malformed graph at construction (wraps a detail error).
//	ErrEmptyNodeID      - node ID is the empty string.
//	ErrDuplicateNode    - node ID already present.
//	ErrDuplicateEdge    - edge ID already present.
//	ErrUnknownNode      - edge endpoint references a missing node.
//	ErrLoopNotAllowed   - self-loop when loops are disabled.
//	ErrGroupClash       - an ungrouped node's ID names another node's land.
//	ErrUnknownEdge      - requested edge does not exist.
//	ErrEdgeAlreadyUsed  - edge is already marked used.
//	ErrEdgeNotUsed      - edge is not marked used (cannot be unmarked).
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidTopology indicates that a graph definition was rejected at
	// construction time. The concrete reason is wrapped alongside it.
	ErrInvalidTopology = errors.New("core: invalid topology")

	// ErrEmptyNodeID indicates that the provided Node has an empty ID.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrDuplicateNode indicates that a node ID is already present.
	ErrDuplicateNode = errors.New("core: duplicate node ID")

	// ErrDuplicateEdge indicates that an edge ID is already present.
	ErrDuplicateEdge = errors.New("core: duplicate edge ID")

	// ErrUnknownNode indicates an edge endpoint or query referenced a missing node.
	ErrUnknownNode = errors.New("core: unknown node")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrGroupClash indicates that an ungrouped node's ID equals the land
	// group of another node. Node IDs and group IDs share one namespace.
	ErrGroupClash = errors.New("core: node ID clashes with a land group")

	// ErrUnknownEdge indicates an operation referenced a non-existent edge.
	ErrUnknownEdge = errors.New("core: unknown edge")

	// ErrEdgeAlreadyUsed indicates an attempt to mark an edge that is already used.
	ErrEdgeAlreadyUsed = errors.New("core: edge already used")

	// ErrEdgeNotUsed indicates an attempt to unmark an edge that is not used.
	ErrEdgeNotUsed = errors.New("core: edge not used")
)

// Position is display-only data owned by the presentation layer.
// The core stores and copies it but never reads it.
type Position struct {
	X float64
	Y float64
}

// Node represents a land mass (or a landing point on one) in the puzzle.
//
// ID uniquely identifies this Node within its Graph.
// Group names the land group the node belongs to; an empty Group means the
// node forms a group of its own, named by its ID. Node IDs and group IDs
// therefore share one namespace: an ungrouped node may not carry the name of
// another node's land.
type Node struct {
	// ID is the unique identifier for this Node.
	ID string

	// Group is the land-group identifier. Empty means "the node itself".
	Group string

	// Pos is pass-through display data.
	Pos Position
}

// GroupID returns the effective land group of n.
func (n Node) GroupID() string {
	if n.Group == "" {
		return n.ID
	}

	return n.Group
}

// Edge represents a bridge between two nodes.
//
// Endpoints are unordered: an edge between A and B is traversable from either
// side. Only Used ever changes after creation.
type Edge struct {
	// ID uniquely identifies this edge in the Graph.
	ID string

	// A and B are the endpoint node IDs.
	A string
	B string

	// Label is the bridge number of fixed topologies (0 when unlabelled).
	Label int

	// Used reports whether the bridge has been crossed.
	Used bool
}

// Touches reports whether id is one of the edge's endpoints.
func (e Edge) Touches(id string) bool {
	return e.A == id || e.B == id
}

// Other returns the endpoint opposite to id. For a self-loop it returns id.
func (e Edge) Other(id string) string {
	if e.A == id {
		return e.B
	}

	return e.A
}

// Connects reports whether the edge joins u and v (in either orientation).
func (e Edge) Connects(u, v string) bool {
	return (e.A == u && e.B == v) || (e.A == v && e.B == u)
}

// IsLoop reports whether both endpoints are the same node.
func (e Edge) IsLoop() bool {
	return e.A == e.B
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithLoops permits self-loops (edges from a node to itself).
// A loop contributes 2 to its node's degree.
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// EdgeOption configures properties of individual edges when added.
type EdgeOption func(*Edge)

// WithEdgeID assigns an explicit edge ID instead of a generated "e<N>" one.
func WithEdgeID(id string) EdgeOption {
	return func(e *Edge) { e.ID = id }
}

// WithLabel sets the bridge number of the edge.
func WithLabel(label int) EdgeOption {
	return func(e *Edge) { e.Label = label }
}

// Graph is the in-memory bridge graph.
//
// nodes and edges are kept as ordered slices; nodeIdx and edgeIdx map an ID
// to its slice position. mu guards every field.
// edgeSeq is the counter behind generated edge IDs ("e1", "e2", ...).
type Graph struct {
	mu sync.RWMutex

	// Configuration flags
	allowLoops bool

	// Storage
	edgeSeq uint64
	nodes   []Node
	edges   []Edge
	nodeIdx map[string]int
	edgeIdx map[string]int
}
