package contraption

import (
	"cmp"
	"context"
	"slices"

	"golang.org/x/sync/errgroup"
)

// Result is the number of cells one entry beam energizes.
type Result struct {
	Entry     Beam
	Energized int
}

// Sweep traces every entry beam using at most workers goroutines and returns
// the results in Entries order.
func (c *Contraption) Sweep(ctx context.Context, workers int) ([]Result, error) {
	entries := c.Entries()
	if len(entries) == 0 {
		return nil, ErrEmptyGrid
	}
	if workers <= 0 {
		workers = 1
	}
	results := make([]Result, len(entries))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, e := range entries {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = Result{Entry: e, Energized: c.Energize(e)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Best returns the entry that energizes the most cells. Ties go to the entry
// listed first by Entries.
func (c *Contraption) Best(ctx context.Context, workers int) (Result, error) {
	results, err := c.Sweep(ctx, workers)
	if err != nil {
		return Result{}, err
	}
	best := results[0]
	for _, r := range results[1:] {
		if r.Energized > best.Energized {
			best = r
		}
	}
	return best, nil
}

// Rank returns the top results ordered by energized cells, highest first.
// A top of zero or less returns every result.
func (c *Contraption) Rank(ctx context.Context, workers, top int) ([]Result, error) {
	results, err := c.Sweep(ctx, workers)
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(results, func(a, b Result) int {
		return cmp.Compare(b.Energized, a.Energized)
	})
	if top > 0 && top < len(results) {
		results = results[:top]
	}
	return results, nil
}
