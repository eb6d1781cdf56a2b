// Package frame provides tessella's image abstraction: a rectangular buffer
// with a value plane and a variance plane (both float64), an optional mask
// plane, a point-spread characteristic width, and a bounding box locating the
// buffer within a parent coordinate frame.
//
// What:
//
//   - Plane: a row-major float64 buffer with stride support, so a sub-plane
//     can be a *view* that shares storage with its parent (write-through).
//   - MaskPlane: the same storage scheme over uint32 bitmasks.
//   - Frame: value + variance planes, optional mask, PSF sigma, bounds.
//   - SubFrame: a view of a rectangular region (writes reach the parent).
//   - SubFrameClone / Clone: independent deep copies.
//
// Why:
//
//   - Tile extraction: the map stage hands each per-tile operation a core
//     view and a halo view of the same backing image.
//   - Stitching: the reduce stage writes merged pixels through destination
//     views, region by region.
//
// Coordinates: Frame methods that take a geom.Box interpret it in the parent
// coordinate frame (the same frame as Bounds()); Plane indices are local,
// zero-based. A view's Bounds() records where it came from.
//
// Errors:
//
//   - ErrBadPlaneShape: requested plane extent is non-positive.
//   - ErrOutOfRange: plane index outside valid bounds.
//   - ErrEmptyBounds: a Frame cannot be built over an empty box.
//   - ErrBoxOutsideFrame: sub-frame box is empty or not contained in bounds.
//
// Concurrency: a Frame is not synchronized. Distinct views over disjoint
// regions may be read in parallel; concurrent writes through overlapping
// views are the caller's responsibility.
package frame
