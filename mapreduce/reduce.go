package mapreduce

import (
	"fmt"
	"math"

	"github.com/tessella-dev/tessella/frame"
)

// mergeTile stitches one tile's planes into the destination views; wgt is
// the tile-aligned weight view under ReduceAverage, nil otherwise.
type mergeTile func(dst, src *frame.Frame, wgt *frame.Plane)

// merges is the closed dispatch table: one merge function and one
// destination fill value per strategy. ReduceNone never reaches it.
var merges = map[ReduceOp]struct {
	fill  float64
	merge mergeTile
}{
	ReduceCopy:    {fill: math.NaN(), merge: mergeCopy},
	ReduceSum:     {fill: 0, merge: mergeAdd},
	ReduceAverage: {fill: 0, merge: mergeAdd},
}

// Reduce merges the ordered tile results into a single full-size image
// according to op.
//
// ReduceNone returns the results unchanged in Result.Tiles. The merging
// strategies clone original's shape and metadata — mask plane and PSF width
// are carried over verbatim from the original, a deliberate simplification —
// then stitch every frame-typed result over its own bounds in grid order.
// An opaque result under a merging strategy fails with ErrNonFrameTile.
//
// Complexity: O(Σ tile area) plus O(W·H) for the destination pass.
func Reduce(tiles []TileResult, original *frame.Frame, op ReduceOp) (Result, error) {
	if op == ReduceNone {
		return Result{Tiles: tiles}, nil
	}
	if original == nil {
		return Result{}, ErrNilFrame
	}
	m, ok := merges[op]
	if !ok {
		return Result{}, fmt.Errorf("mapreduce: %v: %w", op, ErrUnknownReduceOp)
	}

	dest := original.Clone()
	dest.Value().Fill(m.fill)
	dest.Variance().Fill(m.fill)

	var weights *frame.Plane
	if op == ReduceAverage {
		// Per-pixel count of contributing tiles, divided out at the end.
		weights, _ = frame.NewPlane(dest.Bounds().W, dest.Bounds().H)
	}

	for i, t := range tiles {
		if !t.IsFrame() {
			return Result{}, fmt.Errorf("mapreduce: tile %d is %T: %w", i, t.Value(), ErrNonFrameTile)
		}
		src := t.Frame()
		dstView, err := dest.SubFrame(src.Bounds())
		if err != nil {
			return Result{}, fmt.Errorf("mapreduce: tile %d: %w", i, err)
		}
		var wgtView *frame.Plane
		if weights != nil {
			b := src.Bounds()
			wgtView, err = weights.View(b.X0-dest.Bounds().X0, b.Y0-dest.Bounds().Y0, b.W, b.H)
			if err != nil {
				return Result{}, fmt.Errorf("mapreduce: tile %d weights: %w", i, err)
			}
		}
		m.merge(dstView, src, wgtView)
	}

	if op == ReduceAverage {
		for y := 0; y < dest.Bounds().H; y++ {
			ewDivRow(dest.Value().Row(y), dest.Variance().Row(y), weights.Row(y))
		}
	}

	return Result{Frame: dest}, nil
}

// mergeCopy overwrites destination pixels with valid source pixels;
// iteration order makes overlaps last-writer-wins.
func mergeCopy(dst, src *frame.Frame, _ *frame.Plane) {
	for y := 0; y < src.Bounds().H; y++ {
		ewCopyRow(dst.Value().Row(y), dst.Variance().Row(y), src.Value().Row(y), src.Variance().Row(y))
	}
}

// mergeAdd accumulates valid source pixels, tracking per-pixel weights when
// averaging.
func mergeAdd(dst, src *frame.Frame, wgt *frame.Plane) {
	for y := 0; y < src.Bounds().H; y++ {
		var wrow []float64
		if wgt != nil {
			wrow = wgt.Row(y)
		}
		ewAddRow(dst.Value().Row(y), dst.Variance().Row(y), src.Value().Row(y), src.Variance().Row(y), wrow)
	}
}
