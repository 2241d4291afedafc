// SPDX-License-Identifier: MIT
// Package: konigsberg/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   • idFn    = DefaultIDFn          ("0","1","2",...)
//   • rng     = nil                  (pure/deterministic unless seeded)
//   • canvas  = 800×500, margin 80

package builder

import (
	"math/rand"

	"github.com/katalvlaran/konigsberg/core"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Node ID strategy: index -> ID (deterministic).
	idFn IDFn
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand

	// Canvas bounds used only for node positions.
	width  float64
	height float64
	margin float64
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:   DefaultIDFn,
		rng:    nil,
		width:  DefaultCanvasWidth,
		height: DefaultCanvasHeight,
		margin: DefaultCanvasMargin,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// inner returns the drawable rectangle: origin and extent inside the margins.
func (c builderConfig) inner() (x0, y0, w, h float64) {
	return c.margin, c.margin, c.width - 2*c.margin, c.height - 2*c.margin
}

// randomPos draws a uniform position inside the margins.
func (c builderConfig) randomPos() core.Position {
	x0, y0, w, h := c.inner()

	return core.Position{X: x0 + c.rng.Float64()*w, Y: y0 + c.rng.Float64()*h}
}
