package frame

import "fmt"

// Plane is a row-major float64 buffer of w×h pixels. stride is the distance
// (in elements) between the starts of consecutive rows; a freshly allocated
// Plane has stride == w, while a view into a larger plane keeps the parent's
// stride and shares the parent's storage.
type Plane struct {
	w, h   int       // extent in pixels
	stride int       // row-to-row distance in data, >= w
	data   []float64 // shared with the parent for views
}

// planeErrorf wraps an underlying error with Plane method context.
func planeErrorf(method string, x, y int, err error) error {
	return fmt.Errorf("Plane.%s(%d,%d): %w", method, x, y, err)
}

// NewPlane creates a w×h Plane initialized to zeros.
// Returns ErrBadPlaneShape if either extent is non-positive.
// Complexity: O(w·h) time and memory.
func NewPlane(w, h int) (*Plane, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrBadPlaneShape
	}

	return &Plane{w: w, h: h, stride: w, data: make([]float64, w*h)}, nil
}

// Width returns the plane extent in x.
// Complexity: O(1).
func (p *Plane) Width() int { return p.w }

// Height returns the plane extent in y.
// Complexity: O(1).
func (p *Plane) Height() int { return p.h }

// At retrieves the pixel at local coordinates (x, y).
// Complexity: O(1).
func (p *Plane) At(x, y int) (float64, error) {
	if x < 0 || x >= p.w || y < 0 || y >= p.h {
		return 0, planeErrorf("At", x, y, ErrOutOfRange)
	}

	return p.data[y*p.stride+x], nil
}

// Set writes the pixel at local coordinates (x, y). For a view this writes
// through to the parent's storage.
// Complexity: O(1).
func (p *Plane) Set(x, y int, v float64) error {
	if x < 0 || x >= p.w || y < 0 || y >= p.h {
		return planeErrorf("Set", x, y, ErrOutOfRange)
	}
	p.data[y*p.stride+x] = v

	return nil
}

// Row returns the y-th row as a slice of length Width() aliasing the plane's
// storage. Mutating the slice mutates the plane (and its parent, for views).
// y must be in [0, Height()); Row is the hot-path accessor for elementwise
// kernels, so it trades a bounds error for direct slice access.
// Complexity: O(1).
func (p *Plane) Row(y int) []float64 {
	base := y * p.stride

	return p.data[base : base+p.w : base+p.w]
}

// Fill sets every pixel to v.
// Complexity: O(w·h).
func (p *Plane) Fill(v float64) {
	for y := 0; y < p.h; y++ {
		row := p.Row(y)
		for x := range row {
			row[x] = v
		}
	}
}

// Clone returns a compact deep copy (stride == Width()) that shares no
// storage with p.
// Complexity: O(w·h).
func (p *Plane) Clone() *Plane {
	out := &Plane{w: p.w, h: p.h, stride: p.w, data: make([]float64, p.w*p.h)}
	for y := 0; y < p.h; y++ {
		copy(out.Row(y), p.Row(y))
	}

	return out
}

// View returns a w×h sub-plane anchored at local (x0, y0), sharing storage
// with p (write-through). Returns ErrBadPlaneShape for a non-positive extent
// or ErrOutOfRange when the region overhangs the plane.
// Complexity: O(1).
func (p *Plane) View(x0, y0, w, h int) (*Plane, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrBadPlaneShape
	}
	if x0 < 0 || y0 < 0 || x0+w > p.w || y0+h > p.h {
		return nil, planeErrorf("View", x0, y0, ErrOutOfRange)
	}

	return p.view(x0, y0, w, h), nil
}

// view returns a w×h sub-plane anchored at local (x0, y0), sharing storage.
// Callers must have validated the region; this is a private helper.
func (p *Plane) view(x0, y0, w, h int) *Plane {
	base := y0*p.stride + x0

	return &Plane{w: w, h: h, stride: p.stride, data: p.data[base:]}
}
