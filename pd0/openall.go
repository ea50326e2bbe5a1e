package pd0

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// OpenAll opens several files concurrently with at most limit in flight.
// Results are in the order of paths. The first failure cancels files not
// yet started and is returned.
func OpenAll(ctx context.Context, paths []string, limit int, opts ...Option) ([]*Dataset, error) {
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	out := make([]*Dataset, len(paths))
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			d, err := Open(path, opts...)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			out[i] = d
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
