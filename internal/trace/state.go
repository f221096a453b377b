package trace

import (
	"slices"

	"github.com/san-kum/algoviz/internal/graph"
)

// None marks an unset index field (pivot, low, high, mid, found, current).
const None = -1

// Range is an inclusive index interval.
type Range struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

type ArrayState struct {
	Values    []float64 `json:"values"`
	Compare   []int     `json:"compare"`
	Swap      []int     `json:"swap"`
	Sorted    []int     `json:"sorted"`
	Highlight []int     `json:"highlight"`
	Range     *Range    `json:"range,omitempty"`

	Pivot  int      `json:"pivot"`
	Low    int      `json:"low"`
	High   int      `json:"high"`
	Mid    int      `json:"mid"`
	Found  int      `json:"found"`
	Target *float64 `json:"target,omitempty"`
}

// NewArrayState returns a state over values with every scalar index unset.
func NewArrayState(values []float64) ArrayState {
	return ArrayState{Values: values, Pivot: None, Low: None, High: None, Mid: None, Found: None}
}

func (a ArrayState) Clone() ArrayState {
	c := a
	c.Values = slices.Clone(a.Values)
	c.Compare = slices.Clone(a.Compare)
	c.Swap = slices.Clone(a.Swap)
	c.Sorted = slices.Clone(a.Sorted)
	c.Highlight = slices.Clone(a.Highlight)
	if a.Range != nil {
		r := *a.Range
		c.Range = &r
	}
	if a.Target != nil {
		v := *a.Target
		c.Target = &v
	}
	return c
}

// IsSorted reports whether index i is in the sorted set.
func (a ArrayState) IsSorted(i int) bool { return slices.Contains(a.Sorted, i) }

// EdgeRef is an ordered pair of node ids used for highlighting.
type EdgeRef struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// Triplet is the (k, i, j) cell under consideration in Floyd-Warshall.
type Triplet struct {
	K int `json:"k"`
	I int `json:"i"`
	J int `json:"j"`
}

type GraphState struct {
	Graph   graph.Graph `json:"graph"`
	Current int         `json:"current"`

	Visited        []int `json:"visited"`
	DiscoveryOrder []int `json:"discoveryOrder"`
	Queue          []int `json:"queue,omitempty"`
	Stack          []int `json:"stack,omitempty"`

	Distances    Distances `json:"distances,omitempty"`
	Previous     []int     `json:"previous,omitempty"`
	ShortestPath []int     `json:"shortestPath,omitempty"`
	PathWeight   Distance  `json:"pathWeight"`

	Matrix        Matrix   `json:"matrix,omitempty"`
	ActiveTriplet *Triplet `json:"activeTriplet,omitempty"`

	Parent      []int        `json:"parent,omitempty"`
	Key         Distances    `json:"key,omitempty"`
	MSTSet      []int        `json:"mstSet,omitempty"`
	MSTEdges    []graph.Edge `json:"mstEdges,omitempty"`
	TotalWeight Distance     `json:"totalWeight"`

	VisitedEdges   []EdgeRef `json:"visitedEdges,omitempty"`
	Highlight      []int     `json:"highlight"`
	EdgesHighlight []EdgeRef `json:"edgesHighlight"`

	NegativeCycle bool `json:"negativeCycle,omitempty"`
	Disconnected  bool `json:"disconnected,omitempty"`
	Unreachable   bool `json:"unreachable,omitempty"`
}

// NewGraphState returns a state over g with no current node.
func NewGraphState(g graph.Graph) GraphState {
	return GraphState{Graph: g, Current: None}
}

func (s GraphState) Clone() GraphState {
	c := s
	c.Graph = s.Graph.Clone()
	c.Visited = slices.Clone(s.Visited)
	c.DiscoveryOrder = slices.Clone(s.DiscoveryOrder)
	c.Queue = slices.Clone(s.Queue)
	c.Stack = slices.Clone(s.Stack)
	c.Distances = slices.Clone(s.Distances)
	c.Previous = slices.Clone(s.Previous)
	c.ShortestPath = slices.Clone(s.ShortestPath)
	if s.Matrix != nil {
		c.Matrix = make(Matrix, len(s.Matrix))
		for i, row := range s.Matrix {
			c.Matrix[i] = slices.Clone(row)
		}
	}
	if s.ActiveTriplet != nil {
		t := *s.ActiveTriplet
		c.ActiveTriplet = &t
	}
	c.Parent = slices.Clone(s.Parent)
	c.Key = slices.Clone(s.Key)
	c.MSTSet = slices.Clone(s.MSTSet)
	c.MSTEdges = slices.Clone(s.MSTEdges)
	c.VisitedEdges = slices.Clone(s.VisitedEdges)
	c.Highlight = slices.Clone(s.Highlight)
	c.EdgesHighlight = slices.Clone(s.EdgesHighlight)
	return c
}

func (s GraphState) IsVisited(id int) bool { return slices.Contains(s.Visited, id) }

func (s GraphState) InMST(id int) bool { return slices.Contains(s.MSTSet, id) }

// EdgeHighlighted reports whether the undirected edge a-b is highlighted.
func (s GraphState) EdgeHighlighted(a, b int) bool {
	for _, r := range s.EdgesHighlight {
		if (r.From == a && r.To == b) || (r.From == b && r.To == a) {
			return true
		}
	}
	return false
}
