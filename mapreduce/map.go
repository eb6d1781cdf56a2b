package mapreduce

import (
	"fmt"

	"github.com/tessella-dev/tessella/frame"
	"github.com/tessella-dev/tessella/grid"
)

// Map runs op over every (core, halo) tile pair of g, in grid order, and
// returns one TileResult per tile. The result count and order always equal
// the grid's tile count.
//
// When cloneTiles is false the sub-frames are write-through views of img:
// the operation may mutate the original image through them, and must honor
// the aliasing contract (write only pixels it owns). When cloneTiles is
// true both sub-frames are deep copies and the original is never touched.
//
// The first TileOp failure aborts the map and is returned wrapped with its
// tile index.
// Complexity: O(T) sub-frame extractions (+ O(tile area) per clone).
func Map(img *frame.Frame, g *grid.Grid, op TileOp, cloneTiles bool, extra Extras) ([]TileResult, error) {
	if err := validateMapArgs(img, g, op); err != nil {
		return nil, err
	}

	results := make([]TileResult, 0, g.Len())
	for i := range g.Core {
		res, err := mapTile(img, g, op, i, cloneTiles, extra)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}

	return results, nil
}

// mapTile extracts the view pair for tile i and invokes op.
func mapTile(img *frame.Frame, g *grid.Grid, op TileOp, i int, cloneTiles bool, extra Extras) (TileResult, error) {
	coreView, err := img.SubFrame(g.Core[i])
	if err != nil {
		return TileResult{}, fmt.Errorf("mapreduce: tile %d core: %w", i, err)
	}
	haloView, err := img.SubFrame(g.Halo[i])
	if err != nil {
		return TileResult{}, fmt.Errorf("mapreduce: tile %d halo: %w", i, err)
	}
	if cloneTiles {
		coreView = coreView.Clone()
		haloView = haloView.Clone()
	}

	res, err := op(coreView, haloView, img.Bounds(), extra)
	if err != nil {
		return TileResult{}, fmt.Errorf("mapreduce: tile %d: %w", i, err)
	}

	return res, nil
}

// validateMapArgs checks the shared map-stage preconditions.
func validateMapArgs(img *frame.Frame, g *grid.Grid, op TileOp) error {
	if img == nil {
		return ErrNilFrame
	}
	if g == nil {
		return ErrNilGrid
	}
	if op == nil {
		return ErrNilTileOp
	}
	if len(g.Core) != len(g.Halo) {
		return ErrGridMismatch
	}

	return nil
}
