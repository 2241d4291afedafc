// SPDX-License-Identifier: MIT
package euler

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/konigsberg/core"
)

// Pair is a proposed new bridge between two odd-degree nodes.
type Pair struct {
	A string
	B string
}

// Fix describes how to make an unsolvable graph solvable.
//
// Pairs joins consecutive odd nodes: (odd[0],odd[1]), (odd[2],odd[3]), ...
// Adding all of them evens every degree (Circuit); leaving the last pair out
// keeps exactly two odd nodes (Trail).
type Fix struct {
	Classification
	Pairs []Pair
}

// Needed reports whether any bridge has to be added.
func (f Fix) Needed() bool {
	return f.Kind == Impossible
}

// Message renders the fix the way players see it:
//
//	"Already solvable (circuit)"
//	"Add bridges between odd nodes: A - B - C - D"
//	"Connect the separate islands of bridges (parity allows a trail)"
func (f Fix) Message() string {
	if !f.Needed() {
		if !f.Connected {
			return fmt.Sprintf("Connect the separate islands of bridges (parity allows a %s)", f.Kind)
		}
		return fmt.Sprintf("Already solvable (%s)", f.Kind)
	}

	return "Add bridges between odd nodes: " + strings.Join(f.OddNodes, " - ")
}

// SuggestFix classifies g and, when the parity rule fails, proposes bridge
// pairs among the odd nodes. A solvable graph yields a Fix without pairs.
//
// Complexity: as Classify.
func SuggestFix(g *core.Graph) (Fix, error) {
	cls, err := Classify(g)
	if err != nil {
		return Fix{}, err
	}
	fix := Fix{Classification: cls}
	if !fix.Needed() {
		return fix, nil
	}

	// odd count is always even (handshake lemma), so pairs never dangle
	fix.Pairs = make([]Pair, 0, len(cls.OddNodes)/2)
	for i := 0; i+1 < len(cls.OddNodes); i += 2 {
		fix.Pairs = append(fix.Pairs, Pair{A: cls.OddNodes[i], B: cls.OddNodes[i+1]})
	}

	return fix, nil
}
