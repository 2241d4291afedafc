// SPDX-License-Identifier: MIT
package game

import (
	"log/slog"
	"time"
)

// DefaultPlaybackInterval is the delay between two solver steps.
const DefaultPlaybackInterval = 600 * time.Millisecond

// Option configures a Session. Constructors panic on meaningless input.
type Option func(*config)

type config struct {
	traversal Traversal
	strand    bool
	interval  time.Duration
	logger    *slog.Logger
	metrics   *Metrics
	clock     func() time.Time
}

func newConfig(opts ...Option) config {
	cfg := config{
		traversal: SingleNode(),
		interval:  DefaultPlaybackInterval,
		logger:    slog.Default(),
		clock:     time.Now,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithTraversal selects node-level or land-level movement. Panics on nil.
func WithTraversal(t Traversal) Option {
	if t == nil {
		panic("game: WithTraversal(nil)")
	}
	return func(c *config) {
		c.traversal = t
	}
}

// WithStrandDetection moves the session to Stranded as soon as the player
// reaches a land with no unused bridge while others remain.
func WithStrandDetection() Option {
	return func(c *config) {
		c.strand = true
	}
}

// WithPlaybackInterval sets the delay between solver steps. Panics if d <= 0.
func WithPlaybackInterval(d time.Duration) Option {
	if d <= 0 {
		panic("game: WithPlaybackInterval(d<=0)")
	}
	return func(c *config) {
		c.interval = d
	}
}

// WithLogger routes session logs to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("game: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}

// WithMetrics records session activity on m. Panics on nil.
func WithMetrics(m *Metrics) Option {
	if m == nil {
		panic("game: WithMetrics(nil)")
	}
	return func(c *config) {
		c.metrics = m
	}
}

// WithClock overrides the event timestamp source. Panics on nil.
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("game: WithClock(nil)")
	}
	return func(c *config) {
		c.clock = now
	}
}
