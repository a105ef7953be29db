package sim

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// BatchOptions controls a batch of independent runs.
type BatchOptions struct {
	Runs     int
	Workers  int    // 0 = GOMAXPROCS
	BaseSeed uint64 // run i uses BaseSeed+i
}

// Batch plays opts.Runs independent games in parallel and aggregates them.
// Each game owns its state and random source, so outcomes depend only on
// the seeds, not on scheduling. The first error cancels the remaining runs.
func Batch(ctx context.Context, r *Runner, opts BatchOptions) (Summary, error) {
	if opts.Runs < 1 {
		return Summary{}, fmt.Errorf("batch: runs must be positive, got %d", opts.Runs)
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	outcomes := make([]Outcome, opts.Runs)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range opts.Runs {
		g.Go(func() error {
			o, err := r.RunOne(ctx, opts.BaseSeed+uint64(i))
			if err != nil {
				return err
			}
			outcomes[i] = o
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Summary{}, fmt.Errorf("batch: %w", err)
	}

	s := NewSummary()
	for _, o := range outcomes {
		s.Add(o)
	}
	return s, nil
}
