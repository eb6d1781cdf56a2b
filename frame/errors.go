package frame

import "errors"

// Sentinel errors for frame operations. All public entry points return these
// (possibly wrapped with %w for context); callers match with errors.Is.
var (
	// ErrBadPlaneShape indicates a requested plane extent is non-positive.
	ErrBadPlaneShape = errors.New("frame: plane extent must be positive")

	// ErrOutOfRange indicates a plane index (x or y) outside valid bounds.
	ErrOutOfRange = errors.New("frame: index out of range")

	// ErrEmptyBounds indicates an attempt to build a Frame over an empty box.
	ErrEmptyBounds = errors.New("frame: bounds must be non-empty")

	// ErrBoxOutsideFrame indicates a sub-frame box that is empty or not
	// fully contained in the frame's bounds.
	ErrBoxOutsideFrame = errors.New("frame: box is empty or not contained in frame bounds")
)
