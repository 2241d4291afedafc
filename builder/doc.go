// Package builder assembles bridge graphs from reusable constructors.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph(gopts, bopts, cons...): new core.Graph, resolved config,
//     constructors applied in order.
//     – Constructor: func(*core.Graph, builderConfig) error.
//   - Topologies:
//     – Cycle(n):          ring with every degree 2 (always a circuit).
//     – Path(n):           chain with two odd ends (always a trail).
//     – Random(n, m):      random spanning tree plus extra non-loop bridges.
//     – Preset(d):         Random sized by a Difficulty (Easy, Medium, Hard).
//   - Configuration primitives:
//     – BuilderOption:     WithSeed, WithRand, WithIDScheme, WithCanvas.
//   - Node-ID schemes (IDFn implementations):
//     – DefaultIDFn:       decimal strings ("0","1",…).
//     – SymbolIDFn:        single letters ("A","B",…).
//     – ExcelColumnIDFn:   Excel-style columns ("A","Z","AA",…).
//     – SymbolNumberIDFn:  prefix + decimal ("n0","n1",…).
//
// Positions:
//
//	Every node receives a display position on the configured canvas
//	(default 800×500, margin 80). Cycle lays nodes on an ellipse, Path on a
//	horizontal line, Random draws uniformly inside the margins. Positions are
//	pass-through data; no algorithm reads them.
//
// Guarantees:
//
//   - Deterministic: same inputs, options and seed ⇒ identical graphs,
//     including generated edge IDs and positions.
//   - Fast-fail on meaningless option parameters via panics in option
//     constructors; constructors themselves only return sentinel errors.
//   - Random graphs are connected and loop-free, so Classify decides their
//     fate by parity alone.
package builder
