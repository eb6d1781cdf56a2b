package grid

import (
	"fmt"
	"math"

	"github.com/tessella-dev/tessella/geom"
)

// fwhmPerSigma converts a Gaussian sigma into a full width at half maximum:
// FWHM = 2·sqrt(2·ln 2)·sigma.
const fwhmPerSigma = 2.3548200450309493

// Plan computes a Grid over bounds.
//
// psfSigma is the image's point-spread characteristic width (Gaussian sigma,
// pixels); it is only read when cfg.ScaleByFWHM is set, in which case every
// size/step/border parameter is multiplied by psfSigma·2·sqrt(2·ln 2) before
// rounding to the nearest integer. Sizes and steps are clamped to the image
// extent. Explicit centroids, when configured, override the regular walk and
// skip the adjustment rule.
//
// Returns ErrNonPositiveConfig, ErrCentroidMismatch, ErrEmptyBounds,
// ErrStepTooSmall, or ErrNoTiles.
// Complexity: O(T) in emitted tiles plus index construction.
func Plan(bounds geom.Box, psfSigma float64, cfg Config) (*Grid, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if bounds.Empty() {
		return nil, ErrEmptyBounds
	}

	scale := 1.0
	if cfg.ScaleByFWHM {
		scale = psfSigma * fwhmPerSigma
	}
	rescale := func(v float64) int {
		return int(math.RoundToEven(v * scale))
	}

	sizeX := minInt(rescale(cfg.SizeX), bounds.W)
	sizeY := minInt(rescale(cfg.SizeY), bounds.H)
	stepX := float64(minInt(rescale(cfg.StepX), bounds.W))
	stepY := float64(minInt(rescale(cfg.StepY), bounds.H))
	borderX := rescale(cfg.BorderX)
	borderY := rescale(cfg.BorderY)

	if len(cfg.CentroidsX) > 0 {
		return planCentroids(bounds, sizeX, sizeY, borderX, borderY, cfg)
	}

	// Rounding (e.g. a sub-pixel FWHM) can drive a step to zero, which
	// would stall the walk below.
	if stepX < 1 {
		return nil, fmt.Errorf("grid: step x = %g: %w", stepX, ErrStepTooSmall)
	}
	if stepY < 1 {
		return nil, fmt.Errorf("grid: step y = %g: %w", stepY, ErrStepTooSmall)
	}

	switch cfg.Adjust {
	case AdjustSpacing:
		// Redistribute spacing so tiles exactly tile the image, allowing
		// overlaps: nX origins across the width, the last flush with the
		// far edge.
		nX := float64(bounds.W) / stepX
		stepX = float64(bounds.W-sizeX) / nX
		if stepX < 1 {
			return nil, fmt.Errorf("grid: adjusted step x = %g: %w", stepX, ErrStepTooSmall)
		}
		nY := float64(bounds.H) / stepY
		stepY = float64(bounds.H-sizeY) / nY
		if stepY < 1 {
			return nil, fmt.Errorf("grid: adjusted step y = %g: %w", stepY, ErrStepTooSmall)
		}
	case AdjustSize:
		// Tiles exactly equal to the step: no overlap, no remainder except
		// at the clipped far edge.
		sizeX = int(stepX)
		sizeY = int(stepY)
	case AdjustNone:
		// Leave sizes and steps as configured.
	}

	var core, halo []geom.Box
	for xoff := 0.0; xoff <= float64(bounds.W); xoff += stepX {
		xi := bounds.X0 + int(math.Floor(xoff))
		for yoff := 0.0; yoff <= float64(bounds.H); yoff += stepY {
			yi := bounds.Y0 + int(math.Floor(yoff))
			bb0 := geom.NewBox(xi, yi, sizeX, sizeY).Clipped(bounds)
			bb1 := geom.NewBox(xi, yi, sizeX, sizeY).Grown(borderX, borderY).Clipped(bounds)
			if cfg.ForceEvenSized {
				bb0 = evenSized(bb0, bounds)
				bb1 = evenSized(bb1, bounds)
			}
			if bb0.Area() > 0 && bb1.Area() > 0 {
				core = append(core, bb0)
				halo = append(halo, bb1)
			}
		}
	}
	if len(core) == 0 {
		return nil, ErrNoTiles
	}

	return newGrid(bounds, core, halo), nil
}

// planCentroids places one tile centered at each configured centroid
// (absolute parent-frame coordinates): the core box origin is the integer
// floor of the centroid minus half the cell size. Adjustment rules do not
// apply; empty clipped boxes are discarded.
func planCentroids(bounds geom.Box, sizeX, sizeY, borderX, borderY int, cfg Config) (*Grid, error) {
	core := make([]geom.Box, 0, len(cfg.CentroidsX))
	halo := make([]geom.Box, 0, len(cfg.CentroidsX))
	for i, cx := range cfg.CentroidsX {
		cy := cfg.CentroidsY[i]
		x0 := int(math.Floor(cx)) - sizeX/2
		y0 := int(math.Floor(cy)) - sizeY/2
		bb0 := geom.NewBox(x0, y0, sizeX, sizeY).Clipped(bounds)
		bb1 := geom.NewBox(x0, y0, sizeX, sizeY).Grown(borderX, borderY).Clipped(bounds)
		if bb0.Area() > 0 && bb1.Area() > 0 {
			core = append(core, bb0)
			halo = append(halo, bb1)
		}
	}
	if len(core) == 0 {
		return nil, ErrNoTiles
	}

	return newGrid(bounds, core, halo), nil
}

// evenSized extends a box with an odd width or height by one pixel on the
// far edge, then translates it back inside bounds where possible and clips
// as a last resort (a tile flush against an odd-extent image edge may stay
// odd).
func evenSized(b, bounds geom.Box) geom.Box {
	if b.Empty() {
		return b
	}
	b = geom.NewBox(b.X0, b.Y0, b.W+b.W%2, b.H+b.H%2)
	dx, dy := 0, 0
	if b.X0 < bounds.X0 {
		dx = bounds.X0 - b.X0
	} else if b.X1() > bounds.X1() {
		dx = bounds.X1() - b.X1()
	}
	if b.Y0 < bounds.Y0 {
		dy = bounds.Y0 - b.Y0
	} else if b.Y1() > bounds.Y1() {
		dy = bounds.Y1() - b.Y1()
	}

	return b.Shifted(dx, dy).Clipped(bounds)
}

// minInt returns the smaller of two ints.
func minInt(a, b int) int {
	if a < b {
		return a
	}

	return b
}
