package config

import "sort"

func target(v float64) *float64 { return &v }

// Presets holds named inputs per algorithm.
var Presets = map[string]map[string]*Config{
	"bubble": {
		"reversed": {Algorithm: "bubble", Array: []float64{9, 8, 7, 6, 5, 4, 3, 2, 1}},
		"sorted":   {Algorithm: "bubble", Array: []float64{1, 2, 3, 4, 5, 6, 7, 8}},
		"small":    {Algorithm: "bubble", Array: []float64{5, 3, 8, 1}},
	},
	"merge": {
		"reversed":   {Algorithm: "merge", Array: []float64{8, 7, 6, 5, 4, 3, 2, 1}},
		"duplicates": {Algorithm: "merge", Array: []float64{3, 1, 3, 2, 1, 2}},
	},
	"quick": {
		"sorted":   {Algorithm: "quick", Array: []float64{1, 2, 3, 4, 5, 6, 7, 8}},
		"shuffled": {Algorithm: "quick", Array: []float64{38, 27, 43, 3, 9, 82, 10}},
	},
	"binary": {
		"found":   {Algorithm: "binary", Array: []float64{2, 5, 8, 12, 16, 23, 38, 56, 72, 91}, Target: target(23)},
		"missing": {Algorithm: "binary", Array: []float64{2, 5, 8, 12, 16, 23, 38, 56, 72, 91}, Target: target(40)},
	},
	"bfs": {
		"from-d": {Algorithm: "bfs", Start: "D"},
	},
	"dfs": {
		"from-f": {Algorithm: "dfs", Start: "F"},
	},
	"dijkstra": {
		"long": {Algorithm: "dijkstra", Start: "A", End: "F",
			Weights: []WeightOverride{{From: "C", To: "E", Weight: 20}}},
		"reverse": {Algorithm: "dijkstra", Start: "F", End: "A"},
	},
	"bellman-ford": {
		"default": {Algorithm: "bellman-ford", Start: "A"},
		"negative-cycle": {Algorithm: "bellman-ford", Start: "A",
			Weights: []WeightOverride{{From: "B", To: "C", Weight: -3}}},
	},
	"floyd-warshall": {
		"cheap-bridge": {Algorithm: "floyd-warshall",
			Weights: []WeightOverride{{From: "D", To: "F", Weight: 1}}},
	},
	"prim": {
		"heavy-ef": {Algorithm: "prim", Weights: []WeightOverride{{From: "E", To: "F", Weight: 9}}},
	},
	"kruskal": {
		"ties": {Algorithm: "kruskal", Weights: []WeightOverride{
			{From: "A", To: "C", Weight: 1}, {From: "E", To: "F", Weight: 1}}},
	},
}

// GetPreset returns a copy of the preset merged over the defaults, or nil.
func GetPreset(algorithm, preset string) *Config {
	algPresets, ok := Presets[algorithm]
	if !ok {
		return nil
	}
	p, ok := algPresets[preset]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Algorithm = p.Algorithm
	if len(p.Array) > 0 {
		cfg.Array = append([]float64(nil), p.Array...)
	}
	if p.Target != nil {
		cfg.Target = target(*p.Target)
	}
	if p.Start != "" {
		cfg.Start = p.Start
	}
	if p.End != "" {
		cfg.End = p.End
	}
	cfg.Weights = append([]WeightOverride(nil), p.Weights...)
	return cfg
}

func ListPresets(algorithm string) []string {
	algPresets, ok := Presets[algorithm]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(algPresets))
	for name := range algPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
