// SPDX-License-Identifier: MIT
package game

import (
	"github.com/katalvlaran/konigsberg/core"
)

// Traversal decides what a player moves between.
//
// With SingleNode every node is its own unit: a move crosses a bridge that
// touches the exact node the player stands on. With GroupedLand, nodes that
// share a land group form one unit: any landing point of the current land may
// be left, and the player arrives at the land's representative node.
//
// Classification and solving always happen on View, the graph contracted to
// units, so odd-degree analysis counts lands, not landing points.
type Traversal interface {
	// Unit maps a node to its traversal unit.
	Unit(n core.Node) string
	// Representative is the node a player stands on after arriving at unit.
	Representative(g *core.Graph, unit string) string
	// View returns the graph contracted to units. Edge IDs are preserved.
	View(g *core.Graph) *core.Graph
	// Name is a short label for logs.
	Name() string
}

// RepresentativeRule picks the node a player lands on among a land's members
// (insertion order, never empty).
type RepresentativeRule func(members []string) string

// FirstMember picks the first node of the land.
func FirstMember(members []string) string {
	return members[0]
}

// SingleNode is the default traversal: nodes are units.
func SingleNode() Traversal {
	return singleNode{}
}

// GroupedLand treats every land group as one unit and places arriving
// players on rule(members). Panics on a nil rule.
func GroupedLand(rule RepresentativeRule) Traversal {
	if rule == nil {
		panic("game: GroupedLand(nil)")
	}

	return groupedLand{rule: rule}
}

type singleNode struct{}

func (singleNode) Unit(n core.Node) string                       { return n.ID }
func (singleNode) Representative(_ *core.Graph, u string) string { return u }
func (singleNode) Name() string                                  { return "single_node" }

func (singleNode) View(g *core.Graph) *core.Graph {
	return core.Contract(g, func(n core.Node) string { return n.ID })
}

type groupedLand struct {
	rule RepresentativeRule
}

func (groupedLand) Unit(n core.Node) string { return n.GroupID() }
func (groupedLand) Name() string            { return "grouped_land" }

func (t groupedLand) Representative(g *core.Graph, unit string) string {
	members := g.GroupMembers(unit)
	if len(members) == 0 {
		return unit
	}

	return t.rule(members)
}

func (groupedLand) View(g *core.Graph) *core.Graph {
	return core.ContractGroups(g)
}
