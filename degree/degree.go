// SPDX-License-Identifier: MIT
// Package degree computes per-node degrees and odd-degree node sets of a
// core.Graph.
//
// Degrees are always derived from the full edge set, used or not: Eulerian
// feasibility is a property of the whole topology, independent of how far a
// player has progressed.
//
// Complexity:
//
//   - Counts:   Time O(V + E), Memory O(V)
//   - OddNodes: Time O(V + E), Memory O(V)
package degree

import (
	"github.com/emirpasic/gods/maps/linkedhashmap"

	"github.com/katalvlaran/konigsberg/core"
)

// Map is a node ID → degree mapping that iterates in graph insertion order.
// The zero value is not usable; obtain a Map from Counts or NewMap.
type Map struct {
	m *linkedhashmap.Map
}

// NewMap returns an empty Map.
func NewMap() *Map {
	return &Map{m: linkedhashmap.New()}
}

// Set assigns the degree of id, appending id to the order on first use.
func (d *Map) Set(id string, deg int) {
	d.m.Put(id, deg)
}

// Add increments the degree of id by delta.
func (d *Map) Add(id string, delta int) {
	d.m.Put(id, d.Get(id)+delta)
}

// Get returns the degree of id (0 if absent).
func (d *Map) Get(id string) int {
	v, ok := d.m.Get(id)
	if !ok {
		return 0
	}

	return v.(int)
}

// Has reports whether id is present.
func (d *Map) Has(id string) bool {
	_, ok := d.m.Get(id)
	return ok
}

// Len returns the number of entries.
func (d *Map) Len() int {
	return d.m.Size()
}

// Keys returns the node IDs in insertion order.
func (d *Map) Keys() []string {
	keys := d.m.Keys()
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = k.(string)
	}

	return out
}

// Each calls fn for every entry in insertion order.
func (d *Map) Each(fn func(id string, deg int)) {
	it := d.m.Iterator()
	for it.Next() {
		fn(it.Key().(string), it.Value().(int))
	}
}

// Sum returns the total of all degrees. For any graph this equals twice the
// edge count (handshake lemma).
func (d *Map) Sum() int {
	total := 0
	d.Each(func(_ string, deg int) { total += deg })

	return total
}

// Odd returns the IDs with odd degree, in insertion order.
func (d *Map) Odd() []string {
	var out []string
	d.Each(func(id string, deg int) {
		if deg%2 != 0 {
			out = append(out, id)
		}
	})

	return out
}

// Counts returns the degree of every node of g over the full edge set.
// Isolated nodes are present with degree 0. A self-loop counts twice.
func Counts(g *core.Graph) *Map {
	d := NewMap()
	for _, id := range g.NodeIDs() {
		d.Set(id, 0)
	}
	for _, e := range g.Edges() {
		d.Add(e.A, 1)
		d.Add(e.B, 1)
	}

	return d
}

// OddNodes returns the odd-degree nodes of g in node insertion order.
func OddNodes(g *core.Graph) []string {
	return Counts(g).Odd()
}
