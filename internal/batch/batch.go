// Package batch runs independent jobs with bounded parallelism.
package batch

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/scenarigo/textkit/errors"
)

// Run calls fn for each index in [0, n) using at most parallel goroutines.
// A non-positive parallel means the number of logical CPUs.
// Every job runs even if another one fails; the errors are combined.
func Run(ctx context.Context, n, parallel int, fn func(ctx context.Context, i int) error) error {
	if parallel <= 0 {
		parallel = runtime.NumCPU()
	}
	errs := make([]error, n)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)
	for i := range n {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return nil
			}
			errs[i] = fn(ctx, i)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return errors.Errors(errs...)
}
