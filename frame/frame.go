package frame

import (
	"fmt"

	"github.com/tessella-dev/tessella/geom"
)

// Frame is a rectangular image buffer: a value plane and a variance plane,
// an optional mask plane, a point-spread characteristic width (sigma, in
// pixels), and a bounding box locating the buffer within a parent
// coordinate frame.
type Frame struct {
	bounds   geom.Box
	value    *Plane
	variance *Plane
	mask     *MaskPlane // nil unless built WithMask or inherited from a parent
	psfSigma float64
}

// Option configures New.
type Option func(*Frame)

// WithMask allocates a zeroed mask plane alongside value and variance.
func WithMask() Option {
	return func(f *Frame) {
		f.mask, _ = NewMaskPlane(f.bounds.W, f.bounds.H)
	}
}

// WithPSFSigma records the point-spread characteristic width (sigma, pixels).
func WithPSFSigma(sigma float64) Option {
	return func(f *Frame) {
		f.psfSigma = sigma
	}
}

// New creates a Frame over bounds with zeroed value and variance planes.
// Returns ErrEmptyBounds if bounds has zero area.
// Complexity: O(W·H) time and memory.
func New(bounds geom.Box, opts ...Option) (*Frame, error) {
	if bounds.Empty() {
		return nil, ErrEmptyBounds
	}
	value, err := NewPlane(bounds.W, bounds.H)
	if err != nil {
		return nil, err
	}
	variance, err := NewPlane(bounds.W, bounds.H)
	if err != nil {
		return nil, err
	}
	f := &Frame{bounds: bounds, value: value, variance: variance}
	for _, opt := range opts {
		opt(f)
	}

	return f, nil
}

// Bounds returns the frame's bounding box in the parent coordinate frame.
// Complexity: O(1).
func (f *Frame) Bounds() geom.Box { return f.bounds }

// Value returns the value plane. Local plane coordinates map to parent
// coordinates by adding Bounds().X0/Y0.
func (f *Frame) Value() *Plane { return f.value }

// Variance returns the variance plane.
func (f *Frame) Variance() *Plane { return f.variance }

// Mask returns the mask plane, or nil if the frame carries none.
func (f *Frame) Mask() *MaskPlane { return f.mask }

// PSFSigma returns the point-spread characteristic width (sigma, pixels).
func (f *Frame) PSFSigma() float64 { return f.psfSigma }

// SetPSFSigma records a new point-spread characteristic width.
func (f *Frame) SetPSFSigma(sigma float64) { f.psfSigma = sigma }

// SubFrame returns a view of the region addressed by box (parent
// coordinates). The view shares storage: writes through the view reach f.
// The view keeps box as its bounds and inherits f's PSF sigma.
// Returns ErrBoxOutsideFrame if box is empty or not contained in Bounds().
// Complexity: O(1).
func (f *Frame) SubFrame(box geom.Box) (*Frame, error) {
	if box.Empty() || !f.bounds.Contains(box) {
		return nil, fmt.Errorf("frame: sub-frame %+v of %+v: %w", box, f.bounds, ErrBoxOutsideFrame)
	}
	x0, y0 := box.X0-f.bounds.X0, box.Y0-f.bounds.Y0
	sub := &Frame{
		bounds:   box,
		value:    f.value.view(x0, y0, box.W, box.H),
		variance: f.variance.view(x0, y0, box.W, box.H),
		psfSigma: f.psfSigma,
	}
	if f.mask != nil {
		sub.mask = f.mask.view(x0, y0, box.W, box.H)
	}

	return sub, nil
}

// SubFrameClone returns an independent deep copy of the region addressed by
// box (parent coordinates). Mutations do not reach f.
// Complexity: O(box.Area()).
func (f *Frame) SubFrameClone(box geom.Box) (*Frame, error) {
	sub, err := f.SubFrame(box)
	if err != nil {
		return nil, err
	}

	return sub.Clone(), nil
}

// Clone returns an independent deep copy of the whole frame, including the
// mask plane (when present) and the PSF sigma.
// Complexity: O(W·H).
func (f *Frame) Clone() *Frame {
	out := &Frame{
		bounds:   f.bounds,
		value:    f.value.Clone(),
		variance: f.variance.Clone(),
		psfSigma: f.psfSigma,
	}
	if f.mask != nil {
		out.mask = f.mask.Clone()
	}

	return out
}
