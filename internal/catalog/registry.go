// Package catalog maps algorithm names to their trace generators and
// pseudocode listings, and produces identified runs.
package catalog

import (
	"errors"
	"fmt"
	"slices"

	"github.com/san-kum/algoviz/internal/graph"
	"github.com/san-kum/algoviz/internal/mst"
	"github.com/san-kum/algoviz/internal/search"
	"github.com/san-kum/algoviz/internal/shortestpath"
	"github.com/san-kum/algoviz/internal/sorting"
	"github.com/san-kum/algoviz/internal/trace"
	"github.com/san-kum/algoviz/internal/traversal"
)

var (
	ErrUnknownAlgorithm = errors.New("catalog: unknown algorithm")

	// ErrMissingInput indicates a request without the input its algorithm needs.
	ErrMissingInput = errors.New("catalog: missing input")
)

// Request selects an algorithm and its input. Graph defaults to the demo
// topology when nil.
type Request struct {
	Algorithm string       `json:"algorithm" yaml:"algorithm"`
	Values    []float64    `json:"values,omitempty" yaml:"values,omitempty"`
	Target    *float64     `json:"target,omitempty" yaml:"target,omitempty"`
	Graph     *graph.Graph `json:"graph,omitempty" yaml:"graph,omitempty"`
	Start     int          `json:"start" yaml:"start"`
	End       int          `json:"end" yaml:"end"`
}

// Info describes one registered algorithm.
type Info struct {
	Name       string     `json:"name"`
	Title      string     `json:"title"`
	Kind       trace.Kind `json:"kind"`
	Pseudocode []string   `json:"pseudocode"`
	UsesStart  bool       `json:"usesStart"`
	UsesEnd    bool       `json:"usesEnd"`
	UsesTarget bool       `json:"usesTarget"`
}

type Generator func(Request) (trace.Trace, error)

type entry struct {
	info Info
	gen  Generator
}

type Registry struct {
	order      []string
	algorithms map[string]entry
}

func NewRegistry() *Registry {
	r := &Registry{algorithms: make(map[string]entry)}

	arrayGen := func(fn func([]float64) trace.Trace) Generator {
		return func(req Request) (trace.Trace, error) {
			return fn(req.Values), nil
		}
	}

	r.Register(Info{Name: "bubble", Title: "Bubble Sort", Kind: trace.KindSorting, Pseudocode: sorting.BubblePseudocode},
		arrayGen(sorting.Bubble))
	r.Register(Info{Name: "merge", Title: "Merge Sort", Kind: trace.KindSorting, Pseudocode: sorting.MergePseudocode},
		arrayGen(sorting.Merge))
	r.Register(Info{Name: "quick", Title: "Quick Sort", Kind: trace.KindSorting, Pseudocode: sorting.QuickPseudocode},
		arrayGen(sorting.Quick))
	r.Register(Info{Name: "binary", Title: "Binary Search", Kind: trace.KindSearching, Pseudocode: search.BinaryPseudocode, UsesTarget: true},
		func(req Request) (trace.Trace, error) {
			if req.Target == nil {
				return trace.Trace{}, fmt.Errorf("%w: binary search needs a target", ErrMissingInput)
			}
			return search.Binary(req.Values, *req.Target), nil
		})

	r.Register(Info{Name: "bfs", Title: "Breadth-First Search", Kind: trace.KindTraversal, Pseudocode: traversal.BFSPseudocode, UsesStart: true},
		func(req Request) (trace.Trace, error) { return traversal.BFS(req.graph(), req.Start) })
	r.Register(Info{Name: "dfs", Title: "Depth-First Search", Kind: trace.KindTraversal, Pseudocode: traversal.DFSPseudocode, UsesStart: true},
		func(req Request) (trace.Trace, error) { return traversal.DFS(req.graph(), req.Start) })
	r.Register(Info{Name: "dijkstra", Title: "Dijkstra", Kind: trace.KindShortestPath, Pseudocode: shortestpath.DijkstraPseudocode, UsesStart: true, UsesEnd: true},
		func(req Request) (trace.Trace, error) { return shortestpath.Dijkstra(req.graph(), req.Start, req.End) })
	r.Register(Info{Name: "bellman-ford", Title: "Bellman-Ford", Kind: trace.KindShortestPath, Pseudocode: shortestpath.BellmanFordPseudocode, UsesStart: true},
		func(req Request) (trace.Trace, error) { return shortestpath.BellmanFord(req.graph(), req.Start) })
	r.Register(Info{Name: "floyd-warshall", Title: "Floyd-Warshall", Kind: trace.KindAllPairs, Pseudocode: shortestpath.FloydWarshallPseudocode},
		func(req Request) (trace.Trace, error) { return shortestpath.FloydWarshall(req.graph()) })
	r.Register(Info{Name: "prim", Title: "Prim's MST", Kind: trace.KindSpanningTree, Pseudocode: mst.PrimPseudocode},
		func(req Request) (trace.Trace, error) { return mst.Prim(req.graph()) })
	r.Register(Info{Name: "kruskal", Title: "Kruskal's MST", Kind: trace.KindSpanningTree, Pseudocode: mst.KruskalPseudocode},
		func(req Request) (trace.Trace, error) { return mst.Kruskal(req.graph()) })

	return r
}

// Register adds or replaces an algorithm.
func (r *Registry) Register(info Info, gen Generator) {
	if _, ok := r.algorithms[info.Name]; !ok {
		r.order = append(r.order, info.Name)
	}
	info.Pseudocode = slices.Clone(info.Pseudocode)
	r.algorithms[info.Name] = entry{info: info, gen: gen}
}

func (r *Registry) Get(name string) (Info, error) {
	e, ok := r.algorithms[name]
	if !ok {
		return Info{}, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, name)
	}
	info := e.info
	info.Pseudocode = slices.Clone(info.Pseudocode)
	return info, nil
}

// List returns every algorithm in registration order.
func (r *Registry) List() []Info {
	out := make([]Info, 0, len(r.order))
	for _, name := range r.order {
		info, _ := r.Get(name)
		out = append(out, info)
	}
	return out
}

func (r *Registry) Names() []string {
	return slices.Clone(r.order)
}

// Pseudocode returns the listing for name, or nil if unknown.
func (r *Registry) Pseudocode(name string) []string {
	info, err := r.Get(name)
	if err != nil {
		return nil
	}
	return info.Pseudocode
}

func (req Request) graph() graph.Graph {
	if req.Graph == nil {
		return graph.Default()
	}
	return req.Graph.Clone()
}
