// SPDX-License-Identifier: MIT
package game

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/katalvlaran/konigsberg/core"
	"github.com/katalvlaran/konigsberg/euler"
)

// Playback crosses the bridges of a solved walk one at a time.
//
// It is a cancellable task owned by its Session: Step applies exactly one
// crossing, Start drives Step from a ticker, Cancel stops it. A reset, a new
// puzzle or a new solve supersedes the playback; from then on Step returns
// ErrPlaybackCanceled and never touches the board.
type Playback struct {
	s          *Session
	generation uint64
	path       *euler.Path
	next       int // guarded by s.mu

	once    sync.Once
	stop    chan struct{}
	done    chan struct{}
	started bool // guarded by s.mu
}

func newPlayback(s *Session, generation uint64, path *euler.Path) *Playback {
	return &Playback{
		s:          s,
		generation: generation,
		path:       path,
		stop:       make(chan struct{}),
		done:       make(chan struct{}),
	}
}

// Path returns the solved walk being played (unit IDs and edge IDs).
func (p *Playback) Path() euler.Path {
	return euler.Path{
		Nodes: append([]string(nil), p.path.Nodes...),
		Edges: append([]string(nil), p.path.Edges...),
	}
}

// Remaining returns how many crossings are left.
func (p *Playback) Remaining() int {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()

	return len(p.path.Edges) - p.next
}

// Done is closed when the playback finishes or is canceled.
func (p *Playback) Done() <-chan struct{} {
	return p.done
}

// Step crosses the next bridge of the walk and reports whether more remain.
// The last step completes the traversal.
//
// Errors: ErrPlaybackCanceled once the playback was canceled or superseded.
func (p *Playback) Step() (more bool, err error) {
	s := p.s
	s.mu.Lock()
	more, evs, err := p.step()
	s.mu.Unlock()

	s.events.emit(evs...)

	return more, err
}

func (p *Playback) step() (bool, []Event, error) {
	s := p.s
	if s.generation != p.generation || s.playback != p {
		return false, nil, fmt.Errorf("Step: %w", ErrPlaybackCanceled)
	}

	id := p.path.Edges[p.next]
	toUnit := p.path.Nodes[p.next+1]
	bridge, ok := s.graph.Edge(id)
	if !ok {
		s.log.Error("playback edge vanished", "edge", id)
		return false, nil, fmt.Errorf("Step(%s): %w", id, core.ErrUnknownEdge)
	}
	evs, err := s.cross(bridge, s.cfg.traversal.Representative(s.graph, toUnit), toUnit)
	if err != nil {
		return false, nil, fmt.Errorf("Step: %w", err)
	}
	p.next++
	s.log.Debug("solver step", "edge", id, "unit", toUnit, "remaining", len(p.path.Edges)-p.next)

	// cross emitted "moved" (+ "completed" on the last bridge); re-tag the move.
	evs[0].Kind = EventSolveStep
	if p.next < len(p.path.Edges) {
		return true, evs, nil
	}

	s.playback = nil
	s.message = "AI finished traversal. " + s.outcome.Message()
	s.metrics.solve("finished")
	s.log.Info("solve finished", "outcome", s.outcome.String())
	p.halt()

	return false, append(evs, s.event(EventSolveFinished)), nil
}

// Start runs the playback in a goroutine, one step per interval, until the
// walk ends, ctx is done or the playback is canceled.
//
// Errors: ErrPlaybackStarted on a second call, ErrPlaybackCanceled if the
// playback is already over.
func (p *Playback) Start(ctx context.Context) error {
	s := p.s
	s.mu.Lock()
	if p.started {
		s.mu.Unlock()
		return fmt.Errorf("Start: %w", ErrPlaybackStarted)
	}
	if s.playback != p {
		s.mu.Unlock()
		return fmt.Errorf("Start: %w", ErrPlaybackCanceled)
	}
	p.started = true
	interval := s.cfg.interval
	s.mu.Unlock()

	go p.run(ctx, interval)

	return nil
}

func (p *Playback) run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.Cancel()
			return
		case <-p.stop:
			return
		case <-ticker.C:
			more, err := p.Step()
			if err != nil || !more {
				return
			}
		}
	}
}

// Cancel stops the playback. Bridges already crossed stay crossed and the
// player may continue by hand. Canceling twice, or after the end, is a no-op.
func (p *Playback) Cancel() {
	s := p.s
	s.mu.Lock()
	if s.playback != p {
		s.mu.Unlock()
		p.halt()
		return
	}
	s.stopPlayback()
	s.message = "Solver playback canceled"
	s.metrics.solve("canceled")
	s.log.Info("solve canceled", "remaining", len(p.path.Edges)-p.next)
	ev := s.event(EventSolveFinished)
	s.mu.Unlock()

	s.events.emit(ev)
}

// halt releases Start's goroutine and closes Done.
func (p *Playback) halt() {
	p.once.Do(func() {
		close(p.stop)
		close(p.done)
	})
}
