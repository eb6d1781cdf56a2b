package grid

import (
	"fmt"
	"sort"

	flatbush "github.com/bmharper/flatbush-go"

	"github.com/tessella-dev/tessella/geom"
)

// Grid is a planned tiling: two same-length ordered sequences of boxes,
// clipped to the planned bounds. Core[i] is the region tile i is responsible
// for; Halo[i] contains Core[i] plus border context.
//
// Core and Halo are exported for iteration but must be treated as read-only;
// the spatial index is built once at construction.
type Grid struct {
	bounds geom.Box
	index  *flatbush.Flatbush64

	// Core holds the primary tile boxes in planning order.
	Core []geom.Box
	// Halo holds the matching border-expanded boxes.
	Halo []geom.Box
}

// newGrid wraps validated box sequences and builds the core-box index.
// Boxes are indexed by inclusive pixel coordinates ([X0, X1-1]) so that
// point and box queries against half-open geom.Box values stay exact.
func newGrid(bounds geom.Box, core, halo []geom.Box) *Grid {
	fb := flatbush.NewFlatbush64()
	fb.Reserve(len(core))
	for _, b := range core {
		fb.Add(float64(b.X0), float64(b.Y0), float64(b.X1()-1), float64(b.Y1()-1))
	}
	fb.Finish()

	return &Grid{bounds: bounds, index: fb, Core: core, Halo: halo}
}

// FromBoxes wraps an externally produced tiling in a Grid, validating the
// pairing: equal lengths, no empty core box, every core box inside its halo
// box, every halo box inside bounds.
// Returns ErrBoxMismatch (wrapped with the offending index), ErrEmptyBounds,
// or ErrNoTiles for an empty sequence.
// Complexity: O(n) validation plus O(n·log n) index construction.
func FromBoxes(bounds geom.Box, core, halo []geom.Box) (*Grid, error) {
	if bounds.Empty() {
		return nil, ErrEmptyBounds
	}
	if len(core) != len(halo) {
		return nil, fmt.Errorf("grid: %d core vs %d halo boxes: %w", len(core), len(halo), ErrBoxMismatch)
	}
	if len(core) == 0 {
		return nil, ErrNoTiles
	}
	for i := range core {
		if core[i].Empty() {
			return nil, fmt.Errorf("grid: core box %d is empty: %w", i, ErrBoxMismatch)
		}
		if !halo[i].Contains(core[i]) {
			return nil, fmt.Errorf("grid: halo box %d does not contain its core box: %w", i, ErrBoxMismatch)
		}
		if !bounds.Contains(halo[i]) {
			return nil, fmt.Errorf("grid: halo box %d outside bounds: %w", i, ErrBoxMismatch)
		}
	}

	// Defensive copies: the Grid owns its sequences.
	c := make([]geom.Box, len(core))
	h := make([]geom.Box, len(halo))
	copy(c, core)
	copy(h, halo)

	return newGrid(bounds, c, h), nil
}

// Len returns the number of tiles.
// Complexity: O(1).
func (g *Grid) Len() int { return len(g.Core) }

// Bounds returns the image bounds the grid was planned over.
// Complexity: O(1).
func (g *Grid) Bounds() geom.Box { return g.bounds }

// CoveringTiles returns the indices of all core boxes containing pixel
// (x, y), in ascending order.
// Complexity: O(log n + k).
func (g *Grid) CoveringTiles(x, y int) []int {
	fx, fy := float64(x), float64(y)
	hits := g.index.SearchFast(fx, fy, fx, fy, nil)
	sort.Ints(hits)

	return hits
}

// OverlappingTiles returns the indices of all core boxes sharing at least
// one pixel with b, in ascending order. buf, when non-nil, is reused for the
// result to avoid allocation in loops.
// Complexity: O(log n + k).
func (g *Grid) OverlappingTiles(b geom.Box, buf []int) []int {
	if b.Empty() {
		return buf[:0]
	}
	hits := g.index.SearchFast(
		float64(b.X0), float64(b.Y0),
		float64(b.X1()-1), float64(b.Y1()-1),
		buf,
	)
	sort.Ints(hits)

	return hits
}
