// SPDX-License-Identifier: MIT
package euler

import (
	"fmt"

	"github.com/katalvlaran/konigsberg/core"
	"github.com/katalvlaran/konigsberg/degree"
	"github.com/katalvlaran/konigsberg/dfs"
)

// Classify derives the Eulerian type of g from its odd-degree count:
//
//	0 odd nodes  → Circuit
//	2 odd nodes  → Trail
//	otherwise    → Impossible
//
// Degrees are taken over the full edge set, used or not. Kind follows the
// parity rule only; Connected carries the separate connectivity check over
// edge-bearing nodes, so callers that need a sound answer use Solvable().
//
// Complexity: O(V·E) dominated by the connectivity DFS.
func Classify(g *core.Graph) (Classification, error) {
	if g == nil {
		return Classification{}, ErrGraphNil
	}

	odd := degree.OddNodes(g)
	c := Classification{OddNodes: odd}
	switch len(odd) {
	case 0:
		c.Kind = Circuit
	case 2:
		c.Kind = Trail
	default:
		c.Kind = Impossible
	}

	connected, err := dfs.EdgeConnected(g)
	if err != nil {
		return Classification{}, fmt.Errorf("Classify: %w", err)
	}
	c.Connected = connected

	return c, nil
}
