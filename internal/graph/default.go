package graph

const (
	DefaultStart = 0
	DefaultEnd   = 5
)

// Default returns the six-node demo topology. A fresh copy is built on every
// call so callers may edit weights freely.
func Default() Graph {
	return Graph{
		Nodes: []Node{
			{ID: 0, Label: "A", X: 100, Y: 200},
			{ID: 1, Label: "B", X: 250, Y: 100},
			{ID: 2, Label: "C", X: 250, Y: 300},
			{ID: 3, Label: "D", X: 400, Y: 100},
			{ID: 4, Label: "E", X: 400, Y: 300},
			{ID: 5, Label: "F", X: 550, Y: 200},
		},
		Edges: []Edge{
			{From: 0, To: 1, Weight: 4},
			{From: 0, To: 2, Weight: 2},
			{From: 1, To: 3, Weight: 3},
			{From: 1, To: 2, Weight: 1},
			{From: 2, To: 4, Weight: 5},
			{From: 3, To: 5, Weight: 6},
			{From: 4, To: 5, Weight: 2},
		},
	}
}
