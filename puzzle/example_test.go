// SPDX-License-Identifier: MIT
package puzzle_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/konigsberg/euler"
	"github.com/katalvlaran/konigsberg/puzzle"
)

func ExampleBuiltin() {
	d, _ := puzzle.Builtin("konigsberg")
	g, _ := d.Graph()
	fix, _ := euler.SuggestFix(g)

	fmt.Println(d.Title)
	fmt.Println(g.Groups(), g.EdgeCount())
	fmt.Println(len(fix.OddNodes), "odd landing points")

	// Output:
	// The Seven Bridges of Königsberg
	// [A B C D] 7
	// 14 odd landing points
}

func ExampleLoad() {
	d, _ := puzzle.Load(strings.NewReader(`
name: bowtie
nodes: [{id: A}, {id: B}, {id: C}, {id: D}, {id: E}]
bridges:
  - {from: A, to: B}
  - {from: B, to: C}
  - {from: C, to: A}
  - {from: C, to: D}
  - {from: D, to: E}
  - {from: E, to: C}
`))
	g, _ := d.Graph()
	c, _ := euler.Classify(g)
	p, _ := euler.Solve(g)

	fmt.Println(d.Name, c.Kind)
	fmt.Println(p.Nodes)

	// Output:
	// bowtie circuit
	// [A B C D E C A]
}
