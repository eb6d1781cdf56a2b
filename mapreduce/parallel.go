package mapreduce

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/tessella-dev/tessella/frame"
	"github.com/tessella-dev/tessella/grid"
)

// MapParallel runs op over the grid's tiles on a bounded worker pool.
// Tiles read only their own core+halo region and write only their own
// result, so the fan-out needs no extra synchronization; results are
// ordered by tile index regardless of completion order, matching Map.
//
// Tiles are always cloned here — views of shared storage must not be
// handed to concurrent operations — so op may freely mutate its inputs,
// but must itself be safe to call from multiple goroutines.
//
// workers bounds the pool; values < 1 mean GOMAXPROCS. The first failure
// cancels ctx for the remaining tiles and is returned wrapped with its
// tile index.
func MapParallel(ctx context.Context, img *frame.Frame, g *grid.Grid, op TileOp, workers int, extra Extras) ([]TileResult, error) {
	if err := validateMapArgs(img, g, op); err != nil {
		return nil, err
	}
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]TileResult, g.Len())
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i := range g.Core {
		i := i
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := mapTile(img, g, op, i, true, extra)
			if err != nil {
				return err
			}
			results[i] = res

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
