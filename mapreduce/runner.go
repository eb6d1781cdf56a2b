package mapreduce

import (
	"context"
	"fmt"

	"github.com/tessella-dev/tessella/frame"
	"github.com/tessella-dev/tessella/geom"
	"github.com/tessella-dev/tessella/grid"
)

// Options configures a Runner.
type Options struct {
	// Reduce selects the stitching strategy. Never mutated mid-run.
	Reduce ReduceOp

	// CloneTiles hands the tile operation deep copies instead of
	// write-through views (sequential map only; the parallel map always
	// clones).
	CloneTiles bool

	// Workers > 1 maps tiles on a bounded parallel pool of that size;
	// 1 (the default) keeps the strictly sequential path.
	Workers int
}

// DefaultOptions returns the Runner defaults: average stitching, view-based
// tiles, sequential execution.
func DefaultOptions() Options {
	return Options{Reduce: ReduceAverage, Workers: 1}
}

// Runner owns a tile operation, a grid configuration, and one cached Grid
// per image. It drives the map stage then the reduce stage.
//
// The grid is planned on first use and reused while the image's bounds (and
// PSF width, when FWHM scaling is on) stay the same; Invalidate drops it
// explicitly. A Runner is not synchronized: drive it from one goroutine
// (the parallel map fans out internally).
type Runner struct {
	op   TileOp
	cfg  grid.Config
	opts Options

	cached       *grid.Grid
	cachedBounds geom.Box
	cachedSigma  float64
}

// NewRunner builds a Runner.
// Returns ErrNilTileOp, ErrUnknownReduceOp, or a grid configuration error.
func NewRunner(op TileOp, cfg grid.Config, opts Options) (*Runner, error) {
	if op == nil {
		return nil, ErrNilTileOp
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if !opts.Reduce.valid() {
		return nil, fmt.Errorf("mapreduce: %v: %w", opts.Reduce, ErrUnknownReduceOp)
	}

	return &Runner{op: op, cfg: cfg, opts: opts}, nil
}

// Grid returns the tile grid for img, planning it on first use and caching
// it until the image identity (bounds, and PSF width under FWHM scaling)
// changes or Invalidate is called.
func (r *Runner) Grid(img *frame.Frame) (*grid.Grid, error) {
	if img == nil {
		return nil, ErrNilFrame
	}
	if r.cached != nil && r.cachedBounds == img.Bounds() &&
		(!r.cfg.ScaleByFWHM || r.cachedSigma == img.PSFSigma()) {
		return r.cached, nil
	}

	g, err := grid.Plan(img.Bounds(), img.PSFSigma(), r.cfg)
	if err != nil {
		return nil, err
	}
	r.cached = g
	r.cachedBounds = img.Bounds()
	r.cachedSigma = img.PSFSigma()

	return g, nil
}

// Invalidate drops the cached grid; the next Run replans.
func (r *Runner) Invalidate() {
	r.cached = nil
	r.cachedBounds = geom.Box{}
	r.cachedSigma = 0
}

// Run performs the map-reduce over img: plan (or reuse) the grid, run the
// tile operation over every tile, stitch per the configured strategy.
// extra is passed to every tile invocation untouched.
func (r *Runner) Run(img *frame.Frame, extra Extras) (Result, error) {
	return r.RunContext(context.Background(), img, extra)
}

// RunContext is Run with a context; ctx bounds the parallel map when
// Options.Workers > 1 and is ignored by the sequential path, which cannot
// suspend.
func (r *Runner) RunContext(ctx context.Context, img *frame.Frame, extra Extras) (Result, error) {
	g, err := r.Grid(img)
	if err != nil {
		return Result{}, err
	}

	var tiles []TileResult
	if r.opts.Workers > 1 {
		tiles, err = MapParallel(ctx, img, g, r.op, r.opts.Workers, extra)
	} else {
		tiles, err = Map(img, g, r.op, r.opts.CloneTiles, extra)
	}
	if err != nil {
		return Result{}, err
	}

	return Reduce(tiles, img, r.opts.Reduce)
}
