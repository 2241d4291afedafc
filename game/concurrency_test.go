// SPDX-License-Identifier: MIT
package game_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/konigsberg/game"
)

// Readers and writers hammer one session; run with -race.
func TestSession_ConcurrentHandlers(t *testing.T) {
	s := newSession(t, square(t))
	var events sync.Map
	s.OnStateChanged(func(ev game.Event) {
		events.Store(ev.Kind, true)
	})

	var wg sync.WaitGroup
	ids := []string{"A", "B", "C", "D"}
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				switch (w + i) % 5 {
				case 0:
					_ = s.HandleNodeSelected(ids[(w+i)%len(ids)])
				case 1:
					_ = s.HandleUndo()
				case 2:
					_, _ = s.HandleHint()
				case 3:
					st := s.PlayerState()
					assert.Equal(t, st.Moves, st.UsedEdges)
				default:
					_ = s.GraphSnapshot()
					_ = s.History()
				}
			}
		}(w)
	}
	wg.Wait()

	st := s.PlayerState()
	assert.Equal(t, len(s.History()), st.UsedEdges)
	_, sawStart := events.Load(game.EventStarted)
	assert.True(t, sawStart)
}
