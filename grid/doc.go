// Package grid plans tile grids over an image's bounding box: two parallel
// ordered sequences of boxes — core tiles and halo-expanded tiles — that a
// map stage can turn into sub-image pairs.
//
// What:
//
//   - Config: grid cell size, step, halo border, adjustment rule, FWHM
//     scaling, optional explicit centroids.
//   - Plan(bounds, psfSigma, cfg): computes a Grid. Core boxes follow a
//     regular walk (or the given centroids); halo boxes are the core boxes
//     grown by the border margins. Both are clipped to the bounds.
//   - Grid: the planned tiling, with a packed R-tree over core boxes for
//     CoveringTiles / OverlappingTiles queries.
//   - FromBoxes: wrap an externally produced tiling in a Grid.
//
// Why:
//
//   - Context-dependent per-tile operations (convolution, kernel fitting)
//     need halo pixels so results at the core border carry no edge artifacts.
//   - Overlapping tiles let a reduce stage average out per-tile seams.
//
// Invariants:
//
//   - len(Core) == len(Halo); Halo[i] contains Core[i]; both are clipped to
//     the planned bounds; no box is empty.
//   - Tiles are ordered by the planning walk: outer loop over x offsets,
//     inner loop over y (y varies fastest). Order is significant for
//     last-writer-wins stitching.
//
// Errors:
//
//   - ErrNonPositiveConfig: a configured size/step/border is not > 0.
//   - ErrStepTooSmall: an effective step came out below one pixel.
//   - ErrCentroidMismatch: centroid coordinate lists differ in length.
//   - ErrEmptyBounds: the image bounds have zero area.
//   - ErrNoTiles: every candidate tile clipped to nothing.
//   - ErrBoxMismatch: FromBoxes pairing/containment violation.
//
// Complexity: Plan is O(T) in the number of emitted tiles plus O(T·log T)
// for the spatial index; queries are O(log T + k).
package grid
