package geom

// Box is an axis-aligned integer rectangle: origin (X0, Y0) plus extent W×H.
// The far edge is exclusive: the box covers [X0, X0+W) × [Y0, Y0+H).
// A Box with W <= 0 or H <= 0 is empty.
type Box struct {
	X0, Y0 int // origin (inclusive)
	W, H   int // extent; non-positive means empty
}

// NewBox returns a Box with origin (x0, y0) and extent w×h.
// Negative extents are normalized to zero so Area stays well-defined.
// Complexity: O(1).
func NewBox(x0, y0, w, h int) Box {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}

	return Box{X0: x0, Y0: y0, W: w, H: h}
}

// X1 returns the exclusive right edge (X0 + W).
// Complexity: O(1).
func (b Box) X1() int { return b.X0 + b.W }

// Y1 returns the exclusive top edge (Y0 + H).
// Complexity: O(1).
func (b Box) Y1() int { return b.Y0 + b.H }

// Area returns W×H, or 0 for an empty box.
// Complexity: O(1).
func (b Box) Area() int {
	if b.Empty() {
		return 0
	}

	return b.W * b.H
}

// Empty reports whether the box covers no pixels.
// Complexity: O(1).
func (b Box) Empty() bool {
	return b.W <= 0 || b.H <= 0
}

// Shifted returns the box translated by (dx, dy).
// Complexity: O(1).
func (b Box) Shifted(dx, dy int) Box {
	return Box{X0: b.X0 + dx, Y0: b.Y0 + dy, W: b.W, H: b.H}
}

// Grown returns the box expanded symmetrically: bx pixels on the left and
// right, by pixels on the bottom and top. Negative margins shrink; a box
// shrunk past its center becomes empty.
// Complexity: O(1).
func (b Box) Grown(bx, by int) Box {
	return NewBox(b.X0-bx, b.Y0-by, b.W+2*bx, b.H+2*by)
}

// Clipped returns the intersection of b with bounds. Extents of the result
// are never negative; a disjoint pair yields an empty box.
// Complexity: O(1).
func (b Box) Clipped(bounds Box) Box {
	x0 := maxInt(b.X0, bounds.X0)
	y0 := maxInt(b.Y0, bounds.Y0)
	x1 := minInt(b.X1(), bounds.X1())
	y1 := minInt(b.Y1(), bounds.Y1())

	return NewBox(x0, y0, x1-x0, y1-y0)
}

// Contains reports whether o lies entirely within b.
// An empty o is contained by any box.
// Complexity: O(1).
func (b Box) Contains(o Box) bool {
	if o.Empty() {
		return true
	}

	return o.X0 >= b.X0 && o.Y0 >= b.Y0 && o.X1() <= b.X1() && o.Y1() <= b.Y1()
}

// ContainsPoint reports whether pixel (x, y) lies within b.
// Complexity: O(1).
func (b Box) ContainsPoint(x, y int) bool {
	return x >= b.X0 && x < b.X1() && y >= b.Y0 && y < b.Y1()
}

// Intersects reports whether b and o share at least one pixel.
// Complexity: O(1).
func (b Box) Intersects(o Box) bool {
	return !b.Clipped(o).Empty()
}

// maxInt returns the larger of two ints.
func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}

// minInt returns the smaller of two ints.
func minInt(a, b int) int {
	if a < b {
		return a
	}

	return b
}
