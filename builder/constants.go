// Package builder defines shared constants used by graph builders, ensuring
// consistent defaults and validation across all topology constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodCycle is the canonical name for the Cycle constructor.
	MethodCycle = "Cycle"
	// MethodPath is the canonical name for the Path constructor.
	MethodPath = "Path"
	// MethodRandom is the canonical name for the Random constructor.
	MethodRandom = "Random"
	// MethodPreset is the canonical name for the Preset constructor.
	MethodPreset = "Preset"
)

//-----------------------------------------------------------------------------
// Minimum Node Counts
//-----------------------------------------------------------------------------

// MinCycleNodes is the smallest ring without loops or parallel edges.
const MinCycleNodes = 3

// MinPathNodes is the smallest chain with at least one bridge.
const MinPathNodes = 2

// MinRandomNodes is the smallest random graph that can avoid self-loops.
const MinRandomNodes = 2

//-----------------------------------------------------------------------------
// Canvas Defaults
//-----------------------------------------------------------------------------

// DefaultCanvasWidth and DefaultCanvasHeight describe the drawing area that
// positions are generated for.
const (
	DefaultCanvasWidth  = 800.0
	DefaultCanvasHeight = 500.0
)

// DefaultCanvasMargin keeps nodes away from the canvas border.
const DefaultCanvasMargin = 80.0
