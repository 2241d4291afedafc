// Package dfs implements depth-first search traversal and connectivity
// queries on a core.Graph.
//
// What:
//
//   - DFS (Depth-First Search): explores as far as possible along each
//     branch before backtracking. Supports:
//   - Pre-order and post-order hooks
//   - Cancellation via context.Context
//   - Depth limiting
//   - Edge filtering (e.g. only bridges not yet crossed)
//   - Components: connected components in deterministic order.
//   - EdgeConnected: whether all edge-bearing nodes form one component,
//     the guard that turns a parity-only Eulerian check into a sound one.
//
// Why:
//   - A graph with zero or two odd nodes still has no Eulerian walk when its
//     bridges are split over separate islands.
//   - Stranding analysis needs reachability over unused bridges only.
//
// Complexity:
//
//   - DFS:           Time O(V·E) (incident edges read from the ordered catalog), Memory O(V)
//   - Components:    as DFS
//   - EdgeConnected: as DFS plus O(E)
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartVertexNotFound  start node ID not in graph
//   - context.Canceled        DFS canceled via context
//   - hook errors             propagated from OnVisit or OnExit
package dfs
