package collection

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// LoadAll materializes every loader concurrently, running at most limit
// scans at once (no limit when limit <= 0). It returns the first error.
// Loaders not yet started when ctx is cancelled are skipped.
//
// Loading eagerly is how a collection is prepared before being handed to
// readers that should never pay for the scan:
//
//	a := collection.NewDirectory("/srv/a")
//	b := collection.NewDirectory("/srv/b")
//	if err := collection.LoadAll(ctx, 0, a, b); err != nil {
//	    return err
//	}
func LoadAll(ctx context.Context, limit int, loaders ...Loader) error {
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for _, l := range loaders {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return l.Load()
		})
	}
	return g.Wait()
}
