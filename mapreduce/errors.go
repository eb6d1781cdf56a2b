package mapreduce

import "errors"

// Sentinel errors for the map/reduce stages. Callers match with errors.Is;
// stages wrap them with tile-index context via fmt.Errorf("...: %w", ErrX).
var (
	// ErrNilFrame indicates a nil image frame argument.
	ErrNilFrame = errors.New("mapreduce: image frame must be non-nil")

	// ErrNilGrid indicates a nil grid argument.
	ErrNilGrid = errors.New("mapreduce: grid must be non-nil")

	// ErrNilTileOp indicates a nil per-tile operation.
	ErrNilTileOp = errors.New("mapreduce: tile operation must be non-nil")

	// ErrGridMismatch indicates core and halo box sequences of differing
	// lengths. This is a planner invariant violation, not a user error.
	ErrGridMismatch = errors.New("mapreduce: core and halo box sequences differ in length")

	// ErrNonFrameTile indicates an opaque (non-frame) tile result under a
	// merging strategy.
	ErrNonFrameTile = errors.New("mapreduce: expected a frame tile result; use ReduceNone for opaque results")

	// ErrUnknownReduceOp indicates a ReduceOp outside the closed set.
	ErrUnknownReduceOp = errors.New("mapreduce: unknown reduce operation")
)
