package sim

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// RunBatch steps every world ticks times, each on its own goroutine. Worlds
// share nothing, so they need no coordination. The first failure cancels
// the rest.
func RunBatch(ctx context.Context, worlds []*World, ticks int) ([]Report, error) {
	g, ctx := errgroup.WithContext(ctx)
	reports := make([]Report, len(worlds))
	for i, w := range worlds {
		g.Go(func() error {
			if err := w.Run(ctx, ticks); err != nil {
				return fmt.Errorf("world %s: %w", w.ID, err)
			}
			reports[i] = w.Report()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}
