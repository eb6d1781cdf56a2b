package mapreduce_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tessella-dev/tessella/frame"
	"github.com/tessella-dev/tessella/geom"
	"github.com/tessella-dev/tessella/mapreduce"
)

func TestMapCountAndOrder(t *testing.T) {
	img := newRampFrame(t, 10, 10)
	g := nonOverlapGrid(t, img.Bounds(), 5)

	boundsOp := func(core, _ *frame.Frame, _ geom.Box, _ mapreduce.Extras) (mapreduce.TileResult, error) {
		return mapreduce.ValueResult(core.Bounds()), nil
	}

	tiles, err := mapreduce.Map(img, g, boundsOp, false, nil)
	require.NoError(t, err)
	require.Len(t, tiles, g.Len())
	for i, res := range tiles {
		require.Equal(t, g.Core[i], res.Value(), "tile %d out of order", i)
	}
}

func TestMapHaloContainsCore(t *testing.T) {
	img := newRampFrame(t, 10, 10)
	g := nonOverlapGrid(t, img.Bounds(), 5)

	op := func(core, halo *frame.Frame, imageBounds geom.Box, _ mapreduce.Extras) (mapreduce.TileResult, error) {
		require.True(t, halo.Bounds().Contains(core.Bounds()))
		require.True(t, imageBounds.Contains(halo.Bounds()))
		return mapreduce.ValueResult(nil), nil
	}

	_, err := mapreduce.Map(img, g, op, false, nil)
	require.NoError(t, err)
}

// Without cloning the tile views alias the image: mutations show through.
func TestMapViewsWriteThrough(t *testing.T) {
	img := newRampFrame(t, 10, 10)
	g := nonOverlapGrid(t, img.Bounds(), 5)

	fill := func(core, _ *frame.Frame, _ geom.Box, _ mapreduce.Extras) (mapreduce.TileResult, error) {
		core.Value().Fill(7)
		return mapreduce.FrameResult(core), nil
	}

	_, err := mapreduce.Map(img, g, fill, false, nil)
	require.NoError(t, err)
	requirePlaneConst(t, img.Value(), img.Bounds(), img.Bounds(), 7)
}

// With cloning the original image stays pristine.
func TestMapCloneIsolation(t *testing.T) {
	img := newRampFrame(t, 10, 10)
	g := nonOverlapGrid(t, img.Bounds(), 5)

	fill := func(core, _ *frame.Frame, _ geom.Box, _ mapreduce.Extras) (mapreduce.TileResult, error) {
		core.Value().Fill(7)
		return mapreduce.FrameResult(core), nil
	}

	_, err := mapreduce.Map(img, g, fill, true, nil)
	require.NoError(t, err)
	got, err := img.Value().At(3, 2)
	require.NoError(t, err)
	require.Equal(t, float64(2*10+3), got)
}

func TestMapErrorCarriesTileIndex(t *testing.T) {
	img := newRampFrame(t, 10, 10)
	g := nonOverlapGrid(t, img.Bounds(), 5)

	boom := errors.New("saturated tile")
	n := 0
	op := func(core, _ *frame.Frame, _ geom.Box, _ mapreduce.Extras) (mapreduce.TileResult, error) {
		n++
		if n == 3 {
			return mapreduce.TileResult{}, boom
		}
		return mapreduce.ValueResult(nil), nil
	}

	_, err := mapreduce.Map(img, g, op, false, nil)
	require.ErrorIs(t, err, boom)
	require.Contains(t, err.Error(), "tile 2")
	require.Equal(t, 3, n, "map must abort on first failure")
}

func TestMapExtrasPassthrough(t *testing.T) {
	img := newRampFrame(t, 10, 10)
	g := nonOverlapGrid(t, img.Bounds(), 5)

	extra := mapreduce.Extras{"threshold": 0.5}
	op := func(core, _ *frame.Frame, _ geom.Box, got mapreduce.Extras) (mapreduce.TileResult, error) {
		require.Equal(t, 0.5, got["threshold"])
		return mapreduce.ValueResult(nil), nil
	}

	_, err := mapreduce.Map(img, g, op, false, extra)
	require.NoError(t, err)
}

func TestMapValidation(t *testing.T) {
	img := newRampFrame(t, 10, 10)
	g := nonOverlapGrid(t, img.Bounds(), 5)

	_, err := mapreduce.Map(nil, g, identityOp, false, nil)
	require.ErrorIs(t, err, mapreduce.ErrNilFrame)
	_, err = mapreduce.Map(img, nil, identityOp, false, nil)
	require.ErrorIs(t, err, mapreduce.ErrNilGrid)
	_, err = mapreduce.Map(img, g, nil, false, nil)
	require.ErrorIs(t, err, mapreduce.ErrNilTileOp)
}

// A pure tile operation must produce identical results under the
// sequential and the parallel map.
func TestMapParallelMatchesMap(t *testing.T) {
	img := newRampFrame(t, 20, 20)
	g := nonOverlapGrid(t, img.Bounds(), 5)

	sumOp := func(core, _ *frame.Frame, _ geom.Box, _ mapreduce.Extras) (mapreduce.TileResult, error) {
		total := 0.0
		for y := 0; y < core.Bounds().H; y++ {
			for _, v := range core.Value().Row(y) {
				total += v
			}
		}
		return mapreduce.ValueResult(total), nil
	}

	seq, err := mapreduce.Map(img, g, sumOp, false, nil)
	require.NoError(t, err)
	par, err := mapreduce.MapParallel(context.Background(), img, g, sumOp, 4, nil)
	require.NoError(t, err)

	require.Len(t, par, len(seq))
	for i := range seq {
		require.Equalf(t, seq[i].Value(), par[i].Value(), "tile %d", i)
	}
}

func TestMapParallelError(t *testing.T) {
	img := newRampFrame(t, 10, 10)
	g := nonOverlapGrid(t, img.Bounds(), 5)

	boom := errors.New("bad pixel column")
	op := func(core, _ *frame.Frame, _ geom.Box, _ mapreduce.Extras) (mapreduce.TileResult, error) {
		if core.Bounds().X0 == 5 && core.Bounds().Y0 == 0 {
			return mapreduce.TileResult{}, boom
		}
		return mapreduce.ValueResult(nil), nil
	}

	_, err := mapreduce.MapParallel(context.Background(), img, g, op, 2, nil)
	require.ErrorIs(t, err, boom)
}

func TestMapParallelCancelled(t *testing.T) {
	img := newRampFrame(t, 10, 10)
	g := nonOverlapGrid(t, img.Bounds(), 5)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := mapreduce.MapParallel(ctx, img, g, identityOp, 2, nil)
	require.ErrorIs(t, err, context.Canceled)
}
