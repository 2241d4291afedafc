// Package dfs implements depth-first search (single-source and forest) on core.Graph.
// It supports cancellation, pre- and post-order hooks, depth limits, edge filtering,
// full-graph traversal, and diagnostics.
//
// Key features:
//   - DFS(g, startID, opts...): traverse from a root or full forest via WithFullTraversal
//   - Edge filter: WithUnusedOnly follows only bridges not yet crossed
//   - Hooks: OnVisit (pre-order) & OnExit (post-order) with error aborts
//   - Cancellation via context.Context
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartVertexNotFound    if startID is missing.
//   - context.Canceled          if ctx is done.
//   - any error returned by OnVisit or OnExit.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/konigsberg/core"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph *core.Graph // underlying graph
	opts  DFSOptions  // traversal options
	res   *DFSResult  // result collector
}

// DFS performs depth-first search on graph g. If opts include WithFullTraversal,
// it covers all disconnected components in node order; otherwise, it starts only
// from startID. Returns DFSResult or error if aborted by context or hook.
func DFS(g *core.Graph, startID string, opts ...Option) (*DFSResult, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&dopts)
	}

	// 3. Single-source mode: verify startID
	if !dopts.FullTraversal && !g.HasNode(startID) {
		return nil, ErrStartVertexNotFound
	}

	// 4. Initialize result with capacity hint
	nodes := g.NodeIDs()
	res := &DFSResult{
		Order:   make([]string, 0, len(nodes)),
		Depth:   make(map[string]int, len(nodes)),
		Parent:  make(map[string]string, len(nodes)),
		Visited: make(map[string]bool, len(nodes)),
	}

	walker := &dfsWalker{graph: g, opts: dopts, res: res}

	// 5. Traverse: forest or single tree
	if dopts.FullTraversal {
		for _, v := range nodes {
			if !res.Visited[v] {
				res.Roots = append(res.Roots, v)
				if err := walker.traverse(v, 0); err != nil {
					return res, err
				}
			}
		}
	} else {
		res.Roots = append(res.Roots, startID)
		if err := walker.traverse(startID, 0); err != nil {
			return res, err
		}
	}

	// 6. Expose diagnostics
	res.SkippedEdges = walker.opts.SkippedEdges

	return res, nil
}

// traverse visits node id at given depth, recursing to neighbors.
// It honors context cancellation, depth limit, hooks and filtering.
func (w *dfsWalker) traverse(id string, depth int) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Depth limit: stop if exceeded
	if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
		return nil
	}

	// 3. Mark visited and record depth
	w.res.Visited[id] = true
	w.res.Depth[id] = depth

	// 4. Pre-order hook
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnVisit hook for %q: %w", id, err)
		}
	}

	// 5. Fetch incident edges once
	edges, err := w.graph.IncidentEdges(id, false)
	if err != nil {
		w.res.Order = nil

		return fmt.Errorf("dfs: IncidentEdges(%q): %w", id, err)
	}

	// 6. Explore each neighbor
	var nid string
	for _, e := range edges {
		// Self-loops never lead anywhere new
		if e.IsLoop() {
			continue
		}

		if w.opts.FilterEdge != nil && !w.opts.FilterEdge(e) {
			w.opts.SkippedEdges++
			continue
		}

		nid = e.Other(id)
		if !w.res.Visited[nid] {
			w.res.Parent[nid] = id
			if err = w.traverse(nid, depth+1); err != nil {
				return err
			}
		}
	}

	// 7. Post-order hook
	if w.opts.OnExit != nil {
		if err = w.opts.OnExit(id); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnExit hook for %q: %w", id, err)
		}
	}

	// 8. Record finish order
	w.res.Order = append(w.res.Order, id)

	return nil
}
