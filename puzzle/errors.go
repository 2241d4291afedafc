// SPDX-License-Identifier: MIT
package puzzle

import "errors"

var (
	// ErrUnknownPuzzle indicates Builtin was asked for a name it does not ship.
	ErrUnknownPuzzle = errors.New("puzzle: unknown built-in puzzle")

	// ErrInvalidDefinition indicates a definition that cannot become a graph.
	ErrInvalidDefinition = errors.New("puzzle: invalid definition")

	// ErrUnknownTraversal indicates an unsupported traversal or representative value.
	ErrUnknownTraversal = errors.New("puzzle: unknown traversal")
)
