// Package geom provides the integer 2-D rectangle primitive used across
// tessella: an axis-aligned Box described by an origin and an extent.
//
// What:
//
//   - Box{X0, Y0, W, H}: origin (X0, Y0) plus width/height, half-open on the
//     far edge ([X0, X0+W) × [Y0, Y0+H)).
//   - Clipped: intersection with another box (never negative extents).
//   - Shifted: translation by an integer offset.
//   - Grown: symmetric growth by a border margin on every side.
//   - Area, Empty, Contains, ContainsPoint, Intersects queries.
//
// Why:
//
//   - Tile grids: core and halo tile rectangles over an image's bounds.
//   - Sub-image extraction: a Box addresses a rectangular region of a Frame.
//   - Overlap resolution: intersection queries drive stitching policies.
//
// All operations are O(1), allocation-free, and return new values; a Box is
// never mutated in place. An empty Box (zero area) is a valid value — callers
// discard empties rather than treating them as errors.
package geom
