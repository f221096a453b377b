package lesson

import (
	"context"
	"fmt"
	"sync"

	"github.com/san-kum/algoviz/internal/catalog"
	"github.com/san-kum/algoviz/internal/config"
	"github.com/san-kum/algoviz/internal/metrics"
)

// Sweep runs one array algorithm over increasing input sizes to show how
// its work grows.
type Sweep struct {
	Algorithm string
	Sizes     []int
	Seed      uint64
}

type SweepResult struct {
	Size        int
	Steps       int
	Comparisons float64
	Writes      float64
}

// RunSweep generates every size concurrently; results keep the order of
// s.Sizes.
func RunSweep(ctx context.Context, s Sweep, reg *catalog.Registry) ([]SweepResult, error) {
	info, err := reg.Get(s.Algorithm)
	if err != nil {
		return nil, err
	}
	if !info.Kind.IsArray() {
		return nil, fmt.Errorf("sweep: %s does not take an array", s.Algorithm)
	}

	results := make([]SweepResult, len(s.Sizes))
	errs := make([]error, len(s.Sizes))

	var wg sync.WaitGroup
	for i, n := range s.Sizes {
		wg.Add(1)
		go func(idx, n int) {
			defer wg.Done()
			results[idx], errs[idx] = sweepOne(ctx, reg, s, n)
		}(i, n)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("size %d: %w", s.Sizes[i], err)
		}
	}
	return results, nil
}

func sweepOne(ctx context.Context, reg *catalog.Registry, s Sweep, n int) (SweepResult, error) {
	cfg := config.DefaultConfig()
	cfg.Algorithm, cfg.Size, cfg.Seed = s.Algorithm, n, s.Seed
	req, err := cfg.Request()
	if err != nil {
		return SweepResult{}, err
	}
	run, err := reg.Generate(ctx, req)
	if err != nil {
		return SweepResult{}, err
	}
	got := metrics.Collect(run.Trace, metrics.Comparisons(), metrics.Writes())
	return SweepResult{
		Size:        n,
		Steps:       run.Trace.Len(),
		Comparisons: got[0].Value,
		Writes:      got[1].Value,
	}, nil
}
