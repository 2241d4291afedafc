// SPDX-License-Identifier: MIT
//
// File: definition.go
// Role: YAML puzzle schema and its translation into a core.Graph plus the
// game options the puzzle asks for.

package puzzle

import (
	"fmt"

	"github.com/katalvlaran/konigsberg/core"
	"github.com/katalvlaran/konigsberg/game"
)

// Traversal values accepted in a definition.
const (
	TraversalNode = "node"
	TraversalLand = "land"
)

// Representative values accepted in a definition.
const (
	RepresentativeFirst = "first"
	RepresentativeLast  = "last"
)

// Definition is one puzzle as stored in YAML.
type Definition struct {
	Name        string `yaml:"name"`
	Title       string `yaml:"title,omitempty"`
	Description string `yaml:"description,omitempty"`

	// Traversal is "node" (default) or "land".
	Traversal string `yaml:"traversal,omitempty"`
	// Representative picks the landing point of a land: "first" (default) or "last".
	Representative string `yaml:"representative,omitempty"`
	// StrandDetection ends play early when the player is cut off.
	StrandDetection bool `yaml:"strand_detection,omitempty"`
	// AllowLoops admits bridges whose two ends are the same node.
	AllowLoops bool `yaml:"allow_loops,omitempty"`

	Nodes   []NodeDef   `yaml:"nodes"`
	Bridges []BridgeDef `yaml:"bridges"`
}

// NodeDef is a node entry. Land is optional; nodes sharing a land form one
// traversal unit in "land" mode.
type NodeDef struct {
	ID   string  `yaml:"id"`
	Land string  `yaml:"land,omitempty"`
	X    float64 `yaml:"x,omitempty"`
	Y    float64 `yaml:"y,omitempty"`
}

// BridgeDef is a bridge entry. An empty ID is generated by the graph.
type BridgeDef struct {
	ID    string `yaml:"id,omitempty"`
	From  string `yaml:"from"`
	To    string `yaml:"to"`
	Label int    `yaml:"label,omitempty"`
}

// Validate checks the fields the graph cannot check itself.
func (d *Definition) Validate() error {
	if len(d.Nodes) == 0 {
		return fmt.Errorf("%s: no nodes: %w", d.label(), ErrInvalidDefinition)
	}
	switch d.Traversal {
	case "", TraversalNode, TraversalLand:
	default:
		return fmt.Errorf("%s: traversal %q: %w", d.label(), d.Traversal, ErrUnknownTraversal)
	}
	switch d.Representative {
	case "", RepresentativeFirst, RepresentativeLast:
	default:
		return fmt.Errorf("%s: representative %q: %w", d.label(), d.Representative, ErrUnknownTraversal)
	}
	for i, b := range d.Bridges {
		if b.Label < 0 {
			return fmt.Errorf("%s: bridge #%d: negative label: %w", d.label(), i, ErrInvalidDefinition)
		}
	}

	return nil
}

// Graph builds a fresh graph with every bridge unused.
//
// Errors: ErrInvalidDefinition wrapping core.ErrInvalidTopology for unknown
// endpoints, duplicate IDs or loops without allow_loops.
func (d *Definition) Graph() (*core.Graph, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	nodes := make([]core.Node, len(d.Nodes))
	for i, n := range d.Nodes {
		nodes[i] = core.Node{ID: n.ID, Group: n.Land, Pos: core.Position{X: n.X, Y: n.Y}}
	}
	edges := make([]core.Edge, len(d.Bridges))
	for i, b := range d.Bridges {
		edges[i] = core.Edge{ID: b.ID, A: b.From, B: b.To, Label: b.Label}
	}

	var gopts []core.GraphOption
	if d.AllowLoops {
		gopts = append(gopts, core.WithLoops())
	}
	g, err := core.NewGraph(nodes, edges, gopts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", d.label(), ErrInvalidDefinition, err)
	}

	return g, nil
}

// Options returns the session options the puzzle asks for.
func (d *Definition) Options() ([]game.Option, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	var opts []game.Option
	if d.Traversal == TraversalLand {
		rule := game.FirstMember
		if d.Representative == RepresentativeLast {
			rule = lastMember
		}
		opts = append(opts, game.WithTraversal(game.GroupedLand(rule)))
	}
	if d.StrandDetection {
		opts = append(opts, game.WithStrandDetection())
	}

	return opts, nil
}

// Session is shorthand for NewSession(Graph(), Options()..., extra...).
func (d *Definition) Session(extra ...game.Option) (*game.Session, error) {
	g, err := d.Graph()
	if err != nil {
		return nil, err
	}
	opts, err := d.Options()
	if err != nil {
		return nil, err
	}

	return game.NewSession(g, append(opts, extra...)...)
}

func (d *Definition) label() string {
	if d.Name == "" {
		return "puzzle"
	}

	return "puzzle " + d.Name
}

func lastMember(members []string) string {
	return members[len(members)-1]
}
