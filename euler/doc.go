// Package euler classifies bridge graphs and solves them.
//
// What:
//
//   - Classify: Circuit (0 odd nodes), Trail (2 odd nodes) or Impossible,
//     plus a separate connectivity flag over edge-bearing nodes.
//   - Solve: Hierholzer's algorithm over the unused edges, producing the
//     node sequence and the matching edge sequence.
//   - SuggestFix: pairs of odd nodes whose new bridges make the graph solvable.
//
// Determinism:
//
//	Odd nodes follow graph insertion order; Solve always starts at the first
//	odd node (or the first node with an unused edge) and tries edges in
//	insertion order, so the same graph yields the same walk.
//
// Complexity:
//
//   - Classify:   O(V·E) (connectivity DFS)
//   - Solve:      O(V·E) classification + O(V+E) walk
//   - SuggestFix: as Classify
//
// Errors:
//
//   - ErrGraphNil      graph pointer is nil
//   - ErrNoEdges       nothing left to traverse
//   - ErrNotEulerian   parity rule fails
//   - ErrDisconnected  unused edges are split into islands
package euler
