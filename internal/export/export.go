// Package export writes runs as JSON envelopes, CSV step tables, Graphviz
// DOT and SVG.
package export

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/san-kum/algoviz/internal/catalog"
	"github.com/san-kum/algoviz/internal/trace"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatDOT  Format = "dot"
	FormatSVG  Format = "svg"
)

var (
	ErrUnsupportedFormat = errors.New("export: unsupported format")
	ErrNoGraph           = errors.New("export: snapshot has no graph")
	ErrStepOutOfRange    = errors.New("export: step out of range")
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatJSON, FormatCSV, FormatDOT, FormatSVG:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Options selects what Write produces. Step picks the snapshot for DOT and
// SVG output; a negative step means the final one.
type Options struct {
	Format   Format
	Compress bool
	Step     int
}

// Write renders run to w in the requested format.
func Write(ctx context.Context, w io.Writer, run *catalog.Run, opts Options) error {
	switch opts.Format {
	case FormatJSON, "":
		return WriteJSON(w, NewEnvelope(run), opts.Compress)
	case FormatCSV:
		return WriteCSV(w, run.Trace)
	case FormatDOT, FormatSVG:
		snap, err := pick(run.Trace, opts.Step)
		if err != nil {
			return err
		}
		if opts.Format == FormatSVG && snap.Array != nil {
			_, err := io.WriteString(w, ArraySVG(*snap.Array, 800, 400))
			return err
		}
		if snap.Graph == nil {
			return ErrNoGraph
		}
		dot := ToDOT(*snap.Graph)
		if opts.Format == FormatDOT {
			_, err := io.WriteString(w, dot)
			return err
		}
		svg, err := RenderSVG(ctx, dot)
		if err != nil {
			return err
		}
		_, err = w.Write(svg)
		return err
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedFormat, opts.Format)
}

func pick(t trace.Trace, step int) (trace.Snapshot, error) {
	if t.Len() == 0 {
		return trace.Snapshot{}, trace.ErrEmptyTrace
	}
	if step < 0 {
		return t.Final(), nil
	}
	s, ok := t.At(step)
	if !ok {
		return trace.Snapshot{}, fmt.Errorf("%w: %d not in [0, %d)", ErrStepOutOfRange, step, t.Len())
	}
	return s, nil
}
