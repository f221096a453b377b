// Package graph holds the weighted, undirected graph the graph algorithms run on.
//
// Nodes carry dense 0-based ids and display coordinates. Edges are stored
// once, From/To as written, and are traversed in both directions.
package graph

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

type Node struct {
	ID    int     `json:"id" yaml:"id"`
	Label string  `json:"label" yaml:"label"`
	X     float64 `json:"x" yaml:"x"`
	Y     float64 `json:"y" yaml:"y"`
}

type Edge struct {
	From   int     `json:"from" yaml:"from"`
	To     int     `json:"to" yaml:"to"`
	Weight float64 `json:"weight" yaml:"weight"`
}

// Connects reports whether e joins a and b in either direction.
func (e Edge) Connects(a, b int) bool {
	return (e.From == a && e.To == b) || (e.From == b && e.To == a)
}

// Other returns the endpoint of e opposite to id.
func (e Edge) Other(id int) int {
	if e.From == id {
		return e.To
	}
	return e.From
}

type Graph struct {
	Nodes []Node `json:"nodes" yaml:"nodes"`
	Edges []Edge `json:"edges" yaml:"edges"`
}

// Neighbor is one adjacency entry: the node reached and the edge weight.
type Neighbor struct {
	Node   int
	Weight float64
}

func (g Graph) Clone() Graph {
	c := Graph{
		Nodes: make([]Node, len(g.Nodes)),
		Edges: make([]Edge, len(g.Edges)),
	}
	copy(c.Nodes, g.Nodes)
	copy(c.Edges, g.Edges)
	return c
}

func (g Graph) Order() int { return len(g.Nodes) }

func (g Graph) Label(id int) string {
	if id < 0 || id >= len(g.Nodes) {
		return "?"
	}
	return g.Nodes[id].Label
}

// Labels maps a list of node ids to their labels.
func (g Graph) Labels(ids []int) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = g.Label(id)
	}
	return out
}

// Path renders ids as "A → B → C".
func (g Graph) Path(ids []int) string {
	return strings.Join(g.Labels(ids), " → ")
}

// IndexOf finds a node by label (case-insensitive).
func (g Graph) IndexOf(label string) (int, bool) {
	for _, n := range g.Nodes {
		if strings.EqualFold(n.Label, label) {
			return n.ID, true
		}
	}
	return -1, false
}

// Resolve accepts either a node label or a numeric id.
func (g Graph) Resolve(ref string) (int, error) {
	if id, ok := g.IndexOf(ref); ok {
		return id, nil
	}
	if id, err := strconv.Atoi(ref); err == nil {
		if err := g.CheckNode(id); err != nil {
			return -1, err
		}
		return id, nil
	}
	return -1, fmt.Errorf("%w: %q", ErrNodeNotFound, ref)
}

// Adjacency lists, per node, the neighbors reached through each edge in
// edge order. Every edge appears in both endpoint lists.
func (g Graph) Adjacency() [][]Neighbor {
	adj := make([][]Neighbor, len(g.Nodes))
	for _, e := range g.Edges {
		adj[e.From] = append(adj[e.From], Neighbor{Node: e.To, Weight: e.Weight})
		if e.From != e.To {
			adj[e.To] = append(adj[e.To], Neighbor{Node: e.From, Weight: e.Weight})
		}
	}
	return adj
}

// WithWeight returns a copy of g with every edge joining from and to
// reweighted.
func (g Graph) WithWeight(from, to int, weight float64) (Graph, error) {
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return Graph{}, &ValidationError{Element: "weight", Index: -1, Wrapped: ErrInvalidGraph}
	}
	c := g.Clone()
	found := false
	for i := range c.Edges {
		if c.Edges[i].Connects(from, to) {
			c.Edges[i].Weight = weight
			found = true
		}
	}
	if !found {
		return Graph{}, fmt.Errorf("%w: %s-%s", ErrEdgeNotFound, g.Label(from), g.Label(to))
	}
	return c, nil
}

func (g Graph) TotalWeight(edges []Edge) float64 {
	total := 0.0
	for _, e := range edges {
		total += e.Weight
	}
	return total
}
