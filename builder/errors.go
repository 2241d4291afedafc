// SPDX-License-Identifier: MIT
// Package: konigsberg/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with %w: "Random: m=2 < n-1=3: <sentinel>".
//   • Validation panics are confined to option constructors (WithX...).

package builder

import "errors"

// ErrTooFewVertices indicates that a node count is smaller than the allowed
// minimum for the requested constructor (Cycle n<3, Path n<2, Random n<2).
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrTooFewEdges indicates that Random was asked for fewer bridges than a
// spanning tree needs (m < n-1).
var ErrTooFewEdges = errors.New("builder: too few edges to connect all nodes")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrUnknownDifficulty indicates a Difficulty outside Easy/Medium/Hard.
var ErrUnknownDifficulty = errors.New("builder: unknown difficulty")

// ErrConstructFailed indicates that a constructor could not be applied at all,
// e.g. a nil Constructor handed to BuildGraph or a core insertion failure.
var ErrConstructFailed = errors.New("builder: construction failed")
