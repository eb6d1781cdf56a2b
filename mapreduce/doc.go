// Package mapreduce drives a per-tile operation across a planned grid and
// stitches the per-tile outputs back into a full-size image.
//
// What:
//
//   - TileOp: the caller-supplied per-tile operation. It receives a core
//     sub-frame (the region it must produce output for), a halo sub-frame
//     (the same region grown by the border margins, for edge-safe context
//     reads), the full image bounds, and opaque extra arguments.
//   - Map: extracts the (core, halo) view pair for every tile, in grid
//     order, and collects TileOp results. MapParallel does the same over a
//     bounded worker pool.
//   - Reduce: merges frame-typed tile results into a clone of the original
//     image under a closed set of strategies — ReduceNone (passthrough),
//     ReduceCopy, ReduceSum, ReduceAverage — with NaN-aware per-pixel
//     accumulation.
//   - Runner: owns the tile operation, the grid configuration, and one
//     cached Grid per image; Run = plan (or reuse), map, reduce.
//
// Why:
//
//   - Context-dependent operations (convolution, kernel fitting) read from
//     the halo and write only valid pixels into a result aligned to the
//     core box, so stitched output shows no tile-edge artifacts.
//   - NaN marks "no contribution": a NaN pixel in a tile result never
//     overwrites, sums into, or weights the destination.
//
// Determinism:
//
//   - Map results are ordered by tile index, under MapParallel too.
//   - Reduce is a single sequential pass in grid order; ReduceCopy is
//     last-writer-wins in exactly that order.
//
// Errors:
//
//   - ErrNilFrame / ErrNilGrid / ErrNilTileOp: missing required arguments.
//   - ErrGridMismatch: core/halo sequence lengths differ (planner bug).
//   - ErrNonFrameTile: an opaque tile result under a merging strategy;
//     use ReduceNone for non-frame results.
//   - ErrUnknownReduceOp: a ReduceOp outside the closed set.
//
// A TileOp error aborts the map immediately and is returned wrapped with
// the tile index; errors.Is still matches the cause. No retries exist at
// this layer.
package mapreduce
