package mapreduce_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tessella-dev/tessella/frame"
	"github.com/tessella-dev/tessella/geom"
	"github.com/tessella-dev/tessella/grid"
	"github.com/tessella-dev/tessella/mapreduce"
)

func pixelConfig(size, step float64) grid.Config {
	return grid.Config{
		SizeX: size, SizeY: size,
		StepX: step, StepY: step,
		BorderX: 1, BorderY: 1,
		Adjust: grid.AdjustNone,
	}
}

func TestNewRunnerValidation(t *testing.T) {
	cfg := pixelConfig(5, 5)

	_, err := mapreduce.NewRunner(nil, cfg, mapreduce.DefaultOptions())
	require.ErrorIs(t, err, mapreduce.ErrNilTileOp)

	_, err = mapreduce.NewRunner(identityOp, grid.Config{}, mapreduce.DefaultOptions())
	require.ErrorIs(t, err, grid.ErrNonPositiveConfig)

	_, err = mapreduce.NewRunner(identityOp, cfg, mapreduce.Options{Reduce: mapreduce.ReduceOp(99)})
	require.ErrorIs(t, err, mapreduce.ErrUnknownReduceOp)
}

func TestRunnerGridCache(t *testing.T) {
	r, err := mapreduce.NewRunner(identityOp, pixelConfig(5, 5), mapreduce.DefaultOptions())
	require.NoError(t, err)

	img := newRampFrame(t, 10, 10)
	g1, err := r.Grid(img)
	require.NoError(t, err)
	g2, err := r.Grid(img)
	require.NoError(t, err)
	require.Same(t, g1, g2, "same image must reuse the cached grid")

	r.Invalidate()
	g3, err := r.Grid(img)
	require.NoError(t, err)
	require.NotSame(t, g1, g3, "Invalidate must force a replan")

	wider := newRampFrame(t, 20, 10)
	g4, err := r.Grid(wider)
	require.NoError(t, err)
	require.NotSame(t, g3, g4, "bounds change must force a replan")
	require.Equal(t, wider.Bounds(), g4.Bounds())
}

// With FWHM scaling on, the cache key includes the PSF width: a frame with
// the same bounds but a different PSF replans.
func TestRunnerGridCacheFWHM(t *testing.T) {
	cfg := grid.Config{
		SizeX: 2, SizeY: 2,
		StepX: 2, StepY: 2,
		BorderX: 1, BorderY: 1,
		Adjust:      grid.AdjustNone,
		ScaleByFWHM: true,
	}
	r, err := mapreduce.NewRunner(identityOp, cfg, mapreduce.DefaultOptions())
	require.NoError(t, err)

	bounds := geom.NewBox(0, 0, 40, 40)
	narrow, err := frame.New(bounds, frame.WithPSFSigma(2))
	require.NoError(t, err)
	wide, err := frame.New(bounds, frame.WithPSFSigma(3))
	require.NoError(t, err)

	g1, err := r.Grid(narrow)
	require.NoError(t, err)
	g2, err := r.Grid(wide)
	require.NoError(t, err)
	require.NotSame(t, g1, g2)
	require.Greater(t, g2.Core[0].W, g1.Core[0].W, "wider PSF must give larger tiles")
}

// End-to-end: identity tiles averaged back together reproduce the input.
func TestRunnerRunIdentity(t *testing.T) {
	r, err := mapreduce.NewRunner(identityOp, pixelConfig(4, 3), mapreduce.DefaultOptions())
	require.NoError(t, err)

	img := newRampFrame(t, 10, 10)
	res, err := r.Run(img, nil)
	require.NoError(t, err)
	require.NotNil(t, res.Frame)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			got, err := res.Frame.Value().At(x, y)
			require.NoError(t, err)
			require.InDeltaf(t, float64(y*10+x), got, 1e-12, "pixel (%d,%d)", x, y)
		}
	}
}

func TestRunnerRunParallelMatchesSequential(t *testing.T) {
	img := newRampFrame(t, 16, 16)

	seqR, err := mapreduce.NewRunner(constOp(2), pixelConfig(4, 3),
		mapreduce.Options{Reduce: mapreduce.ReduceSum, Workers: 1})
	require.NoError(t, err)
	parR, err := mapreduce.NewRunner(constOp(2), pixelConfig(4, 3),
		mapreduce.Options{Reduce: mapreduce.ReduceSum, Workers: 4})
	require.NoError(t, err)

	seq, err := seqR.Run(img, nil)
	require.NoError(t, err)
	par, err := parR.Run(img, nil)
	require.NoError(t, err)

	for y := 0; y < 16; y++ {
		a := seq.Frame.Value().Row(y)
		b := par.Frame.Value().Row(y)
		require.Equalf(t, a, b, "row %d", y)
	}
}

func TestRunnerRunReduceNone(t *testing.T) {
	statOp := constOp(1)
	r, err := mapreduce.NewRunner(statOp, pixelConfig(5, 5),
		mapreduce.Options{Reduce: mapreduce.ReduceNone, Workers: 1})
	require.NoError(t, err)

	img := newRampFrame(t, 10, 10)
	res, err := r.Run(img, nil)
	require.NoError(t, err)
	require.Nil(t, res.Frame)
	require.Len(t, res.Tiles, 4)
}
