package builder_test

import (
	"fmt"

	"github.com/katalvlaran/konigsberg/builder"
	"github.com/katalvlaran/konigsberg/euler"
)

// ExampleBuildGraph composes a ring and reports its Eulerian type.
func ExampleBuildGraph() {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSymbolIDs()},
		builder.Cycle(4),
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	c, _ := euler.Classify(g)
	fmt.Println(g.NodeIDs(), g.EdgeCount(), c.Kind)
	// Output: [A B C D] 4 circuit
}

// ExamplePreset draws a seeded medium-sized puzzle.
func ExamplePreset() {
	g, _ := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(2024)},
		builder.Preset(builder.Medium),
	)
	fmt.Println(g.NodeCount(), g.EdgeCount())
	// Output: 6 8
}
