// Package tessella splits a large 2-D image into a regular (optionally
// overlapping) grid of tiles, applies an arbitrary per-tile operation to
// each tile, and stitches the per-tile outputs back into a full-size image.
//
// 🚀 What is tessella?
//
//	A small, deterministic library for gridded image processing:
//		• Geometry: integer bounding boxes with clip/shift/grow primitives
//		• Frames: value + variance (+ optional mask) planes, views & clones
//		• Planning: regular or centroid-driven tile grids, FWHM-aware sizing,
//		  halo (border) expansion for context-hungry operations
//		• Map: run any per-tile operation over core/halo sub-frames
//		• Reduce: stitch tile outputs back — copy, sum, or NaN-aware average
//
// ✨ Why choose tessella?
//
//   - Deterministic – fixed tile order, sequential reduce, no hidden state
//   - NaN-aware – invalid pixels never poison overlap accumulation
//   - Halo-correct – expanded sub-frames give convolutions real context
//     instead of edge artifacts, without leaking out-of-bounds pixels
//   - Extensible – per-tile behavior is a plain function value, no subclassing
//
// Everything is organized under four subpackages:
//
//	geom/      — Box: integer 2-D rectangle primitive
//	frame/     — Frame & Plane: the image abstraction (views vs clones)
//	grid/      — Plan: core + halo tile sequences over an image's bounds
//	mapreduce/ — Map, Reduce, Runner: drive an operation across a grid
//
// Quick ASCII example:
//
//	┌────┬────┬────┐     core tiles (may overlap)
//	│ t0 │ t1 │ t2 │     each carries a halo box ⊇ its core box,
//	├────┼────┼────┤     clipped to the image bounds
//	│ t3 │ t4 │ t5 │
//	└────┴────┴────┘
//
// The per-tile scientific algorithm itself (kernel fitting, PSF matching,
// convolution …) is supplied by the caller as a mapreduce.TileOp.
//
//	go get github.com/tessella-dev/tessella
package tessella
