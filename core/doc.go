// Package core provides the thread-safe, in-memory bridge graph of the
// puzzle: an ordered set of nodes (land masses or landing points) and an
// ordered set of undirected edges (bridges), each with a "used" flag.
//
// The Graph G = (V,E) supports:
//
//   - Insertion-ordered nodes and edges - every listing is deterministic.
//   - Unordered edge endpoints - a bridge A–B is crossed from either side.
//   - Parallel edges - several bridges between the same two lands are distinct.
//   - Optional self-loops (WithLoops); rejected by default.
//   - Land groups - Node.Group clusters landing points into one land mass.
//   - Collision-free generated Edge.ID values ("e1", "e2", …) for unnamed bridges.
//   - A single sync.RWMutex guarding all state.
//
// Construction:
//
//	NewGraph(nodes, edges, opts...) (*Graph, error) // validate a literal topology
//	New(opts...) *Graph                             // empty graph
//	AddNode(n Node) error                           // O(V)
//	AddEdge(a, b string, opts ...EdgeOption) (id string, err error) // O(1)
//
// Usage state:
//
//	MarkEdgeUsed(id) error   // ErrUnknownEdge / ErrEdgeAlreadyUsed
//	UnmarkEdgeUsed(id) error // ErrUnknownEdge / ErrEdgeNotUsed
//	ResetUsage()             // all flags cleared
//
// Queries:
//
//	Nodes(), NodeIDs(), Node(id), HasNode(id), NodeCount()
//	Edges(), Edge(id), EdgeCount(), UsedCount(), UnusedCount(), AllUsed()
//	IncidentEdges(id, unusedOnly), NeighborIDs(id, unusedOnly), Adjacency(unusedOnly)
//	Groups(), GroupMembers(group)
//
// Snapshots and views:
//
//	Clone() *Graph            // deep, independent copy
//	Contract(g, unitOf) *Graph // one node per unit, edges preserved
//	ContractGroups(g) *Graph   // land-level view
//
// Errors:
//
//	ErrInvalidTopology – construction rejected; wraps one of
//	                     ErrEmptyNodeID, ErrDuplicateNode, ErrDuplicateEdge,
//	                     ErrUnknownNode, ErrLoopNotAllowed
//	ErrUnknownEdge     – missing edge
//	ErrEdgeAlreadyUsed – edge marked twice
//	ErrEdgeNotUsed     – unmark on an unused edge
package core
