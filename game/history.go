// SPDX-License-Identifier: MIT
package game

import (
	"github.com/emirpasic/gods/stacks/arraystack"
)

// Move is one bridge crossing.
type Move struct {
	// EdgeID is the bridge crossed.
	EdgeID string
	// From and FromUnit are where the player stood before the crossing.
	From     string
	FromUnit string
	// To and ToUnit are where the player stood after it.
	To     string
	ToUnit string
}

// history is the undo stack of moves.
type history struct {
	stack *arraystack.Stack
}

func newHistory() *history {
	return &history{stack: arraystack.New()}
}

func (h *history) push(m Move) {
	h.stack.Push(m)
}

func (h *history) pop() (Move, bool) {
	v, ok := h.stack.Pop()
	if !ok {
		return Move{}, false
	}

	return v.(Move), true
}

func (h *history) len() int {
	return h.stack.Size()
}

func (h *history) clear() {
	h.stack.Clear()
}

// moves returns the crossings oldest first.
func (h *history) moves() []Move {
	vals := h.stack.Values() // top of stack first
	out := make([]Move, len(vals))
	for i, v := range vals {
		out[len(vals)-1-i] = v.(Move)
	}

	return out
}
