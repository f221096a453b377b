package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/san-kum/algoviz/internal/logging"
	"github.com/san-kum/algoviz/internal/trace"
)

// Run is one generated trace with its identity. The id changes on every
// generation, so a player can tell a regenerated trace from the one it
// already shows.
type Run struct {
	ID          string      `json:"id"`
	Algorithm   string      `json:"algorithm"`
	Request     Request     `json:"request"`
	Trace       trace.Trace `json:"trace"`
	GeneratedAt time.Time   `json:"generatedAt"`
}

// Generate runs the requested generator to completion.
func (r *Registry) Generate(ctx context.Context, req Request) (*Run, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	e, ok := r.algorithms[req.Algorithm]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, req.Algorithm)
	}

	start := time.Now()
	tr, err := e.gen(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", req.Algorithm, err)
	}

	run := &Run{
		ID:          uuid.New().String(),
		Algorithm:   req.Algorithm,
		Request:     req,
		Trace:       tr,
		GeneratedAt: time.Now(),
	}
	logging.FromContext(ctx).Debug("trace generated",
		"algorithm", req.Algorithm, "id", run.ID, "steps", tr.Len(), "took", time.Since(start))
	return run, nil
}
