package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/algoviz/internal/catalog"
	"github.com/san-kum/algoviz/internal/graph"
	"github.com/san-kum/algoviz/internal/shortestpath"
	"github.com/san-kum/algoviz/internal/trace"
)

func generate(t *testing.T, req catalog.Request) *catalog.Run {
	t.Helper()
	run, err := catalog.NewRegistry().Generate(context.Background(), req)
	require.NoError(t, err)
	return run
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("SVG")
	require.NoError(t, err)
	assert.Equal(t, FormatSVG, f)

	_, err = ParseFormat("png")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestJSON_RoundTrip(t *testing.T) {
	for _, compress := range []bool{false, true} {
		run := generate(t, catalog.Request{Algorithm: "dijkstra", Start: 0, End: 5})

		var buf bytes.Buffer
		require.NoError(t, Write(context.Background(), &buf, run, Options{Format: FormatJSON, Compress: compress}))
		assert.Equal(t, compress, bytes.HasPrefix(buf.Bytes(), zstdMagic))

		env, err := ReadJSON(&buf)
		require.NoError(t, err)
		assert.Equal(t, run.ID, env.ID)
		assert.Equal(t, run.Trace.Len(), env.Steps)
		assert.NotEmpty(t, env.Metrics)

		// unvisited distances travel as null and come back infinite
		first := env.Trace().Snapshots[0].Graph
		assert.True(t, trace.Distance(first.Distances[5]).IsInf())
		assert.Equal(t, run.Trace.Final().Graph.ShortestPath, env.Trace().Final().Graph.ShortestPath)
	}
}

func TestCSV_Array(t *testing.T) {
	run := generate(t, catalog.Request{Algorithm: "bubble", Values: []float64{2, 1}})

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, run.Trace))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, run.Trace.Len()+1)
	assert.Equal(t, []string{"step", "event", "line", "description", "values", "compare", "swap", "sorted"}, rows[0])
	assert.Equal(t, "2 1", rows[1][4])
	assert.Equal(t, "compare", rows[2][1])
	assert.Equal(t, "0 1", rows[2][5])
	assert.Equal(t, "1 2", rows[len(rows)-1][4])
}

func TestCSV_Graph(t *testing.T) {
	run := generate(t, catalog.Request{Algorithm: "bfs", Start: 0})

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, run.Trace))
	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)

	assert.Equal(t, "current", rows[0][4])
	assert.Equal(t, "A B C D E F", rows[len(rows)-1][5])
}

func TestToDOT(t *testing.T) {
	tr, err := shortestpath.Dijkstra(graph.Default(), 0, 5)
	require.NoError(t, err)
	dot := ToDOT(*tr.Final().Graph)

	assert.True(t, strings.HasPrefix(dot, "graph G {"))
	assert.Contains(t, dot, `"A" -- "B"`)
	assert.Contains(t, dot, `"E" -- "F" [label="2", color="`+colorPath+`"`)
	assert.Contains(t, dot, `"F" [label="F\n9", fillcolor="`+colorPath+`"]`)
	assert.Equal(t, 7, strings.Count(dot, " -- "))
}

func TestWrite_DOTNeedsGraph(t *testing.T) {
	run := generate(t, catalog.Request{Algorithm: "bubble", Values: []float64{1}})
	err := Write(context.Background(), &bytes.Buffer{}, run, Options{Format: FormatDOT, Step: -1})
	assert.ErrorIs(t, err, ErrNoGraph)

	err = Write(context.Background(), &bytes.Buffer{}, run, Options{Format: FormatDOT, Step: 99})
	assert.ErrorIs(t, err, ErrStepOutOfRange)
}

func TestWrite_ArraySVG(t *testing.T) {
	run := generate(t, catalog.Request{Algorithm: "bubble", Values: []float64{5, 3, 8, 1}})

	var buf bytes.Buffer
	require.NoError(t, Write(context.Background(), &buf, run, Options{Format: FormatSVG, Step: 1}))
	svg := buf.String()
	assert.Contains(t, svg, "<svg")
	assert.Equal(t, 4+1, strings.Count(svg, "<rect"))
	assert.Equal(t, 2, strings.Count(svg, barCompare))
}

func TestArraySVG_Empty(t *testing.T) {
	svg := ArraySVG(trace.NewArrayState(nil), 100, 50)
	assert.True(t, strings.HasSuffix(svg, "</svg>"))
	assert.Equal(t, 1, strings.Count(svg, "<rect"))
}

func TestRenderSVG(t *testing.T) {
	st := trace.NewGraphState(graph.Default())
	svg, err := RenderSVG(context.Background(), ToDOT(st))
	require.NoError(t, err)
	assert.Contains(t, string(svg), "<svg")

	_, err = RenderSVG(context.Background(), "graph {")
	assert.Error(t, err)
}
