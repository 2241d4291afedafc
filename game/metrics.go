// SPDX-License-Identifier: MIT
package game

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors a session reports to.
// One Metrics value may be shared by many sessions.
type Metrics struct {
	// Moves counts player selections, labeled by result: start, accepted, rejected.
	Moves *prometheus.CounterVec
	// Undos counts successful undos.
	Undos prometheus.Counter
	// Resets counts resets.
	Resets prometheus.Counter
	// Solves counts solver runs, labeled by result: started, unsolvable, finished, canceled.
	Solves *prometheus.CounterVec
	// Hints counts hints handed out.
	Hints prometheus.Counter
	// Completions counts finished traversals, labeled by outcome.
	Completions *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them on reg.
// Collectors already registered on reg (e.g. by an earlier NewMetrics call)
// are reused, so several Metrics values may point at the same series.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		return nil, errors.New("game: NewMetrics(nil registerer)")
	}

	m := &Metrics{
		Moves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "konigsberg_moves_total",
			Help: "Player node selections by result",
		}, []string{"result"}),
		Undos: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "konigsberg_undos_total",
			Help: "Moves taken back",
		}),
		Resets: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "konigsberg_resets_total",
			Help: "Game resets",
		}),
		Solves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "konigsberg_solves_total",
			Help: "Solver runs by result",
		}, []string{"result"}),
		Hints: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "konigsberg_hints_total",
			Help: "Hints handed out",
		}),
		Completions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "konigsberg_completions_total",
			Help: "Traversals that used every bridge, by outcome",
		}, []string{"outcome"}),
	}

	var err error
	if m.Moves, err = register(reg, m.Moves); err != nil {
		return nil, err
	}
	if m.Undos, err = register(reg, m.Undos); err != nil {
		return nil, err
	}
	if m.Resets, err = register(reg, m.Resets); err != nil {
		return nil, err
	}
	if m.Solves, err = register(reg, m.Solves); err != nil {
		return nil, err
	}
	if m.Hints, err = register(reg, m.Hints); err != nil {
		return nil, err
	}
	if m.Completions, err = register(reg, m.Completions); err != nil {
		return nil, err
	}

	return m, nil
}

// register adds c to reg, returning the already registered collector when an
// identical one exists.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}

	return c, nil
}

// The record helpers are nil-safe so sessions without metrics skip them.

func (m *Metrics) move(result string) {
	if m != nil {
		m.Moves.WithLabelValues(result).Inc()
	}
}

func (m *Metrics) undo() {
	if m != nil {
		m.Undos.Inc()
	}
}

func (m *Metrics) reset() {
	if m != nil {
		m.Resets.Inc()
	}
}

func (m *Metrics) solve(result string) {
	if m != nil {
		m.Solves.WithLabelValues(result).Inc()
	}
}

func (m *Metrics) hint() {
	if m != nil {
		m.Hints.Inc()
	}
}

func (m *Metrics) completion(o Outcome) {
	if m != nil {
		m.Completions.WithLabelValues(o.String()).Inc()
	}
}
