package mapreduce

import (
	"fmt"

	"github.com/tessella-dev/tessella/frame"
	"github.com/tessella-dev/tessella/geom"
)

// Extras carries opaque keyword arguments from the orchestrator down to the
// per-tile operation, untouched by the map and reduce stages.
type Extras map[string]any

// TileOp is the caller-supplied per-tile operation.
//
// core is the sub-frame the operation is responsible for producing output
// for; halo contains core plus surrounding context pixels (use it for
// convolution-like reads so the result carries no edge artifacts);
// imageBounds is the full image's bounding box. When the map stage was asked
// not to clone, core and halo are write-through views of the original image
// and the operation must not mutate pixels it does not own.
//
// A frame-typed result must be aligned to the core box (same bounds) for
// the merging strategies to stitch it; any other result type requires
// ReduceNone.
type TileOp func(core, halo *frame.Frame, imageBounds geom.Box, extra Extras) (TileResult, error)

// TileResult is the tagged output of one TileOp invocation: either a
// processed sub-frame or an opaque value.
type TileResult struct {
	frame *frame.Frame
	value any
}

// FrameResult wraps a processed sub-frame as a tile result.
func FrameResult(f *frame.Frame) TileResult {
	return TileResult{frame: f}
}

// ValueResult wraps an opaque per-tile value (statistics, fitted
// coefficients, …) as a tile result. Only ReduceNone accepts these.
func ValueResult(v any) TileResult {
	return TileResult{value: v}
}

// IsFrame reports whether the result carries a frame.
func (r TileResult) IsFrame() bool { return r.frame != nil }

// Frame returns the frame payload, or nil for an opaque result.
func (r TileResult) Frame() *frame.Frame { return r.frame }

// Value returns the opaque payload, or nil for a frame result.
func (r TileResult) Value() any { return r.value }

// ReduceOp selects the overlap-resolution policy used to stitch tile
// results into a single image. Fixed at configuration time.
type ReduceOp uint8

const (
	// ReduceNone returns the tile results unchanged; no image is built.
	ReduceNone ReduceOp = iota

	// ReduceCopy writes tile pixels over the destination; the last tile in
	// grid order wins on overlap, and NaN source pixels leave the
	// destination untouched.
	ReduceCopy

	// ReduceSum adds tile pixels into the destination, skipping NaNs.
	ReduceSum

	// ReduceAverage sums like ReduceSum and divides by the per-pixel count
	// of contributing (non-NaN) tiles.
	ReduceAverage
)

// String returns the operation's configuration name.
func (op ReduceOp) String() string {
	switch op {
	case ReduceNone:
		return "none"
	case ReduceCopy:
		return "copy"
	case ReduceSum:
		return "sum"
	case ReduceAverage:
		return "average"
	default:
		return fmt.Sprintf("ReduceOp(%d)", uint8(op))
	}
}

// ParseReduceOp maps a configuration name onto its ReduceOp.
// Returns ErrUnknownReduceOp for anything outside {none, copy, sum, average}.
func ParseReduceOp(name string) (ReduceOp, error) {
	switch name {
	case "none":
		return ReduceNone, nil
	case "copy":
		return ReduceCopy, nil
	case "sum":
		return ReduceSum, nil
	case "average":
		return ReduceAverage, nil
	default:
		return 0, fmt.Errorf("mapreduce: %q: %w", name, ErrUnknownReduceOp)
	}
}

// valid reports whether op belongs to the closed set.
func (op ReduceOp) valid() bool { return op <= ReduceAverage }

// Result is the outcome of a reduce: a merged image under the merging
// strategies, or the unmodified tile results under ReduceNone.
type Result struct {
	// Frame is the merged full-size image; nil under ReduceNone.
	Frame *frame.Frame

	// Tiles is the passthrough result list; nil under merging strategies.
	Tiles []TileResult
}
