package dfs

import (
	"github.com/katalvlaran/konigsberg/core"
)

// Components partitions the nodes of g into connected components using a
// full-forest DFS. Components are listed in the order of their root (first
// node in graph order); members appear in discovery (pre-order) order.
//
// Options are forwarded to DFS (e.g. WithUnusedOnly); WithFullTraversal is
// always applied.
//
// Complexity: as DFS.
func Components(g *core.Graph, opts ...Option) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	var preorder []string
	all := append([]Option{}, opts...)
	all = append(all,
		WithOnVisit(func(id string) error {
			preorder = append(preorder, id)
			return nil
		}),
		WithFullTraversal(),
	)

	res, err := DFS(g, "", all...)
	if err != nil {
		return nil, err
	}

	// Pre-order visits of one tree are contiguous, and each tree starts at its root.
	isRoot := make(map[string]bool, len(res.Roots))
	for _, r := range res.Roots {
		isRoot[r] = true
	}
	comps := make([][]string, 0, len(res.Roots))
	for _, id := range preorder {
		if isRoot[id] {
			comps = append(comps, nil)
		}
		comps[len(comps)-1] = append(comps[len(comps)-1], id)
	}

	return comps, nil
}

// EdgeConnected reports whether every node that carries at least one edge
// accepted by the options lies in a single component. Graphs without such
// edges are trivially connected; isolated nodes are ignored.
//
// This is the connectivity half of the Eulerian criterion: parity alone
// cannot rule out two separate islands of bridges.
func EdgeConnected(g *core.Graph, opts ...Option) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	bearing := make(map[string]bool)
	for _, e := range g.Edges() {
		if dopts.FilterEdge != nil && !dopts.FilterEdge(e) {
			continue
		}
		bearing[e.A] = true
		bearing[e.B] = true
	}
	if len(bearing) == 0 {
		return true, nil
	}

	comps, err := Components(g, opts...)
	if err != nil {
		return false, err
	}
	withEdges := 0
	for _, c := range comps {
		for _, id := range c {
			if bearing[id] {
				withEdges++
				break
			}
		}
	}

	return withEdges == 1, nil
}
