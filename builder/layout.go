// SPDX-License-Identifier: MIT
// Package: konigsberg/builder
//
// layout.go - node insertion with display positions.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/konigsberg/core"
)

// placeFn returns the position of node i out of n.
type placeFn func(cfg builderConfig, i, n int) core.Position

// onEllipse spreads n nodes evenly on the largest ellipse inside the margins,
// starting at the top and going clockwise.
func onEllipse(cfg builderConfig, i, n int) core.Position {
	x0, y0, w, h := cfg.inner()
	angle := 2*math.Pi*float64(i)/float64(n) - math.Pi/2

	return core.Position{
		X: x0 + w/2 + w/2*math.Cos(angle),
		Y: y0 + h/2 + h/2*math.Sin(angle),
	}
}

// onLine spreads n nodes evenly left to right at mid height.
func onLine(cfg builderConfig, i, n int) core.Position {
	x0, y0, w, h := cfg.inner()
	step := 0.0
	if n > 1 {
		step = w / float64(n-1)
	}

	return core.Position{X: x0 + float64(i)*step, Y: y0 + h/2}
}

// atRandom ignores the index and draws from cfg.rng.
func atRandom(cfg builderConfig, _, _ int) core.Position {
	return cfg.randomPos()
}

// addNodes inserts n nodes named by cfg.idFn and placed by place.
// It returns the IDs in index order.
func addNodes(g *core.Graph, cfg builderConfig, method string, n int, place placeFn) ([]string, error) {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = cfg.idFn(i)
		if err := g.AddNode(core.Node{ID: ids[i], Pos: place(cfg, i, n)}); err != nil {
			return nil, fmt.Errorf("%s: AddNode(%s): %w", method, ids[i], err)
		}
	}

	return ids, nil
}

// addEdge joins u and v, tagging errors with the method.
func addEdge(g *core.Graph, method, u, v string) error {
	if _, err := g.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%s-%s): %w", method, u, v, err)
	}

	return nil
}
