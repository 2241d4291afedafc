// SPDX-License-Identifier: MIT
package game

import (
	"sync"
	"time"
)

// EventKind discriminates session events.
type EventKind string

const (
	// EventStarted: the player chose a start node.
	EventStarted EventKind = "started"
	// EventMoved: the player crossed a bridge.
	EventMoved EventKind = "moved"
	// EventRejected: an action was refused; State.Message says why.
	EventRejected EventKind = "rejected"
	// EventStranded: no unused bridge leaves the player's land.
	EventStranded EventKind = "stranded"
	// EventCompleted: every bridge is used; State.Outcome holds the verdict.
	EventCompleted EventKind = "completed"
	// EventUndone: the last crossing was taken back.
	EventUndone EventKind = "undone"
	// EventReset: the board was cleared.
	EventReset EventKind = "reset"
	// EventHint: a hint or fix suggestion was written to State.Message.
	EventHint EventKind = "hint"
	// EventSolveStarted: a solver playback was created.
	EventSolveStarted EventKind = "solve_started"
	// EventSolveStep: the playback crossed one bridge.
	EventSolveStep EventKind = "solve_step"
	// EventSolveFinished: the playback ended or was canceled.
	EventSolveFinished EventKind = "solve_finished"
	// EventPuzzleChanged: NewPuzzle swapped the graph.
	EventPuzzleChanged EventKind = "puzzle_changed"
	// EventBridgeAdded: AddBridge extended the graph.
	EventBridgeAdded EventKind = "bridge_added"
)

// Event tells observers that the session changed. State is the snapshot
// taken right after the change.
type Event struct {
	Kind      EventKind
	SessionID string
	Timestamp time.Time
	State     PlayerState
}

// emitter fans events out to callbacks. Callbacks run synchronously on the
// goroutine that caused the change, after the session lock is released, so
// they may call back into the session.
type emitter struct {
	mu     sync.RWMutex
	nextID int
	subs   map[int]func(Event)
	order  []int
}

func newEmitter() *emitter {
	return &emitter{subs: make(map[int]func(Event))}
}

func (e *emitter) subscribe(fn func(Event)) func() {
	e.mu.Lock()
	defer e.mu.Unlock()

	id := e.nextID
	e.nextID++
	e.subs[id] = fn
	e.order = append(e.order, id)

	var once sync.Once
	return func() {
		once.Do(func() {
			e.mu.Lock()
			defer e.mu.Unlock()
			delete(e.subs, id)
			for i, v := range e.order {
				if v == id {
					e.order = append(e.order[:i], e.order[i+1:]...)
					break
				}
			}
		})
	}
}

// emit delivers events in order to every subscriber, in subscription order.
func (e *emitter) emit(events ...Event) {
	if len(events) == 0 {
		return
	}
	e.mu.RLock()
	fns := make([]func(Event), 0, len(e.order))
	for _, id := range e.order {
		fns = append(fns, e.subs[id])
	}
	e.mu.RUnlock()

	for _, ev := range events {
		for _, fn := range fns {
			fn(ev)
		}
	}
}
