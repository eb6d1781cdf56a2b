package grid

import "errors"

// Sentinel errors for grid planning. Callers match with errors.Is; Plan may
// wrap them with axis/value context via fmt.Errorf("...: %w", ErrX).
var (
	// ErrNonPositiveConfig indicates a configured size, step, or border
	// parameter that is not strictly positive. Rejected before any grid
	// computation.
	ErrNonPositiveConfig = errors.New("grid: size, step, and border parameters must be positive")

	// ErrStepTooSmall indicates an effective grid step below one pixel —
	// either spacing adjustment degenerated or FWHM scaling rounded a step
	// down to zero.
	ErrStepTooSmall = errors.New("grid: effective grid step is smaller than one pixel")

	// ErrCentroidMismatch indicates explicit centroid coordinate lists of
	// differing lengths.
	ErrCentroidMismatch = errors.New("grid: centroid coordinate lists must have equal length")

	// ErrEmptyBounds indicates image bounds with zero area.
	ErrEmptyBounds = errors.New("grid: image bounds must be non-empty")

	// ErrNoTiles indicates a configuration whose candidate tiles all clipped
	// to empty boxes.
	ErrNoTiles = errors.New("grid: configuration produced no tiles")

	// ErrBoxMismatch indicates an externally supplied tiling whose core and
	// halo sequences disagree (length, containment, or bounds).
	ErrBoxMismatch = errors.New("grid: core and halo box sequences are inconsistent")
)
