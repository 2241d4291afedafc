// SPDX-License-Identifier: MIT
package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/konigsberg/euler"
)

// Every bridge used, but the walk did not end where a valid one must.
// Normal play cannot reach these on a connected board, so judge is checked
// directly.
func TestJudge(t *testing.T) {
	circuit := euler.Classification{Kind: euler.Circuit, Connected: true}
	trail := euler.Classification{Kind: euler.Trail, OddNodes: []string{"A", "C"}, Connected: true}
	none := euler.Classification{Kind: euler.Impossible, OddNodes: []string{"A", "B", "C", "D"}, Connected: true}

	cases := []struct {
		name       string
		cls        euler.Classification
		start, end string
		want       Outcome
	}{
		{"circuit closed", circuit, "A", "A", OutcomeCircuit},
		{"circuit open", circuit, "A", "B", OutcomeInvalidEnd},
		{"trail on odd", trail, "A", "C", OutcomeTrail},
		{"trail ends even", trail, "A", "B", OutcomeInvalidEnd},
		{"no eulerian", none, "A", "D", OutcomeNoEulerian},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := judge(tc.cls, tc.start, tc.end)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.want == OutcomeCircuit || tc.want == OutcomeTrail, got.Success())
		})
	}

	assert.Equal(t, "All bridges used, but you ended at an invalid node!", OutcomeInvalidEnd.Message())
	assert.Equal(t, "All bridges used, but this graph doesn't have a valid Eulerian path!", OutcomeNoEulerian.Message())
	assert.Empty(t, OutcomeNone.Message())
}

func TestStateStrings(t *testing.T) {
	assert.Equal(t, "not_started", NotStarted.String())
	assert.Equal(t, "positioned", Positioned.String())
	assert.Equal(t, "stranded", Stranded.String())
	assert.Equal(t, "completed", Completed.String())
	assert.Equal(t, "invalid_end", OutcomeInvalidEnd.String())
	assert.Equal(t, "none", OutcomeNone.String())
}

func TestHistory(t *testing.T) {
	h := newHistory()
	_, ok := h.pop()
	assert.False(t, ok)

	h.push(Move{EdgeID: "ab"})
	h.push(Move{EdgeID: "bc"})
	assert.Equal(t, 2, h.len())
	assert.Equal(t, []Move{{EdgeID: "ab"}, {EdgeID: "bc"}}, h.moves())

	mv, ok := h.pop()
	assert.True(t, ok)
	assert.Equal(t, "bc", mv.EdgeID)

	h.clear()
	assert.Equal(t, 0, h.len())
	assert.Empty(t, h.moves())
}
