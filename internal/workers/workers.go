package workers

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Workers runs a set of workers concurrently.
type Workers struct {
	workers []Worker
}

func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Run starts every worker in its own goroutine and waits for all of them.
// The first worker error cancels the context passed to the others and is
// returned.
func (w *Workers) Run(ctx context.Context) error {
	g, gCtx := errgroup.WithContext(ctx)

	for _, worker := range w.workers {
		g.Go(func() error {
			return worker.Run(gCtx)
		})
	}

	return g.Wait()
}
