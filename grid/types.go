package grid

import "fmt"

// AdjustOption selects whether and how the planner adjusts the configured
// grid so tiles evenly cover the image.
type AdjustOption uint8

const (
	// AdjustSpacing recomputes the step between tile origins so the grid
	// exactly tiles the image, allowing overlaps. The default.
	AdjustSpacing AdjustOption = iota

	// AdjustSize sets each tile's size equal to the step, disallowing
	// overlaps (tiles abut exactly).
	AdjustSize

	// AdjustNone leaves sizes and steps as configured; a ragged remainder at
	// the far image edge is covered by clipped tiles.
	AdjustNone
)

// String returns the option's configuration name.
func (a AdjustOption) String() string {
	switch a {
	case AdjustSpacing:
		return "spacing"
	case AdjustSize:
		return "size"
	case AdjustNone:
		return "none"
	default:
		return fmt.Sprintf("AdjustOption(%d)", uint8(a))
	}
}

// Config holds the tunable parameters for grid planning.
//
// Sizes, steps, and borders are pixel counts unless ScaleByFWHM is set, in
// which case each is multiplied by the image's PSF full width at half
// maximum before rounding to the nearest integer. All six must be > 0.
type Config struct {
	// SizeX, SizeY are the dimensions of each grid cell.
	SizeX, SizeY float64

	// StepX, StepY are the spacings between subsequent cell origins. A step
	// equal to the size in some direction means no overlap in that direction.
	StepX, StepY float64

	// BorderX, BorderY are the halo margins added on every side of a core
	// box to form its expanded box.
	BorderX, BorderY float64

	// Adjust selects the grid adjustment rule (spacing, size, or none).
	Adjust AdjustOption

	// ScaleByFWHM interprets sizes/steps/borders in units of the PSF FWHM
	// rather than pixels.
	ScaleByFWHM bool

	// ForceEvenSized grows any odd tile dimension by one pixel so both come
	// out even, useful when per-tile operations Fourier-transform their input.
	ForceEvenSized bool

	// CentroidsX, CentroidsY, when non-empty, place one tile centered at
	// each (CentroidsX[i], CentroidsY[i]) instead of walking a regular
	// grid. Both lists must have equal length; the adjustment rule is not
	// applied.
	CentroidsX, CentroidsY []float64
}

// DefaultConfig returns the planner defaults: 10×10 cells on a 10-pixel
// step (no overlap), 5-pixel halo borders, spacing adjustment, FWHM scaling
// enabled.
func DefaultConfig() Config {
	return Config{
		SizeX:       10,
		SizeY:       10,
		StepX:       10,
		StepY:       10,
		BorderX:     5,
		BorderY:     5,
		Adjust:      AdjustSpacing,
		ScaleByFWHM: true,
	}
}

// Validate checks the configuration before any grid computation.
// Returns ErrNonPositiveConfig or ErrCentroidMismatch.
// Complexity: O(1).
func (c Config) Validate() error {
	for _, v := range [...]float64{c.SizeX, c.SizeY, c.StepX, c.StepY, c.BorderX, c.BorderY} {
		if !(v > 0) { // rejects zero, negatives, and NaN
			return ErrNonPositiveConfig
		}
	}
	if len(c.CentroidsX) != len(c.CentroidsY) {
		return ErrCentroidMismatch
	}

	return nil
}
