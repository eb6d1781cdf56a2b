package mapreduce_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tessella-dev/tessella/frame"
	"github.com/tessella-dev/tessella/geom"
	"github.com/tessella-dev/tessella/grid"
	"github.com/tessella-dev/tessella/mapreduce"
)

// newRampFrame builds a w×h frame at origin whose value plane holds
// v(x,y) = y*w + x and whose variance plane holds 1 everywhere, so pixel
// drift and plane mix-ups are both detectable.
func newRampFrame(t *testing.T, w, h int) *frame.Frame {
	t.Helper()
	img, err := frame.New(geom.NewBox(0, 0, w, h))
	require.NoError(t, err)
	for y := 0; y < h; y++ {
		row := img.Value().Row(y)
		for x := range row {
			row[x] = float64(y*w + x)
		}
		vrow := img.Variance().Row(y)
		for x := range vrow {
			vrow[x] = 1
		}
	}
	return img
}

// nonOverlapGrid plans a step==size grid (no overlap) with minimal halos.
func nonOverlapGrid(t *testing.T, bounds geom.Box, cell int) *grid.Grid {
	t.Helper()
	cfg := grid.Config{
		SizeX: float64(cell), SizeY: float64(cell),
		StepX: float64(cell), StepY: float64(cell),
		BorderX: 1, BorderY: 1,
		Adjust: grid.AdjustNone,
	}
	g, err := grid.Plan(bounds, 0, cfg)
	require.NoError(t, err)
	return g
}

// columnGrid builds a two-tile overlap layout: tiles spanning columns
// [0,split+overlap) and [split,w) over the full row range.
func columnGrid(t *testing.T, w, h, split, overlap int) *grid.Grid {
	t.Helper()
	bounds := geom.NewBox(0, 0, w, h)
	core := []geom.Box{
		geom.NewBox(0, 0, split+overlap, h),
		geom.NewBox(split, 0, w-split, h),
	}
	g, err := grid.FromBoxes(bounds, core, core)
	require.NoError(t, err)
	return g
}

// identityOp clones the core sub-frame unchanged.
func identityOp(core, _ *frame.Frame, _ geom.Box, _ mapreduce.Extras) (mapreduce.TileResult, error) {
	return mapreduce.FrameResult(core.Clone()), nil
}

// constOp returns a tile op producing a core-aligned frame with constant
// value v and zero variance.
func constOp(v float64) mapreduce.TileOp {
	return func(core, _ *frame.Frame, _ geom.Box, _ mapreduce.Extras) (mapreduce.TileResult, error) {
		out := core.Clone()
		out.Value().Fill(v)
		out.Variance().Fill(0)
		return mapreduce.FrameResult(out), nil
	}
}

// requirePlaneConst asserts every pixel of the region equals want.
func requirePlaneConst(t *testing.T, p *frame.Plane, region geom.Box, frameBounds geom.Box, want float64) {
	t.Helper()
	for y := region.Y0; y < region.Y1(); y++ {
		for x := region.X0; x < region.X1(); x++ {
			got, err := p.At(x-frameBounds.X0, y-frameBounds.Y0)
			require.NoError(t, err)
			require.Equalf(t, want, got, "pixel (%d,%d)", x, y)
		}
	}
}
