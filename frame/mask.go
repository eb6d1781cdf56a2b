package frame

// MaskPlane is a row-major uint32 bitmask buffer with the same view/clone
// storage scheme as Plane. Merge strategies carry the mask of the original
// image verbatim; tessella never merges per-tile masks.
type MaskPlane struct {
	w, h   int
	stride int
	data   []uint32
}

// NewMaskPlane creates a w×h MaskPlane initialized to zeros.
// Returns ErrBadPlaneShape if either extent is non-positive.
// Complexity: O(w·h) time and memory.
func NewMaskPlane(w, h int) (*MaskPlane, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrBadPlaneShape
	}

	return &MaskPlane{w: w, h: h, stride: w, data: make([]uint32, w*h)}, nil
}

// Width returns the mask extent in x.
func (m *MaskPlane) Width() int { return m.w }

// Height returns the mask extent in y.
func (m *MaskPlane) Height() int { return m.h }

// At retrieves the mask bits at local coordinates (x, y).
// Complexity: O(1).
func (m *MaskPlane) At(x, y int) (uint32, error) {
	if x < 0 || x >= m.w || y < 0 || y >= m.h {
		return 0, planeErrorf("At", x, y, ErrOutOfRange)
	}

	return m.data[y*m.stride+x], nil
}

// Set writes the mask bits at local coordinates (x, y). For a view this
// writes through to the parent's storage.
// Complexity: O(1).
func (m *MaskPlane) Set(x, y int, bits uint32) error {
	if x < 0 || x >= m.w || y < 0 || y >= m.h {
		return planeErrorf("Set", x, y, ErrOutOfRange)
	}
	m.data[y*m.stride+x] = bits

	return nil
}

// Clone returns a compact deep copy sharing no storage with m.
// Complexity: O(w·h).
func (m *MaskPlane) Clone() *MaskPlane {
	out := &MaskPlane{w: m.w, h: m.h, stride: m.w, data: make([]uint32, m.w*m.h)}
	for y := 0; y < m.h; y++ {
		src := m.data[y*m.stride : y*m.stride+m.w]
		copy(out.data[y*m.w:(y+1)*m.w], src)
	}

	return out
}

// view returns a w×h sub-mask anchored at local (x0, y0), sharing storage.
func (m *MaskPlane) view(x0, y0, w, h int) *MaskPlane {
	base := y0*m.stride + x0

	return &MaskPlane{w: w, h: h, stride: m.stride, data: m.data[base:]}
}
