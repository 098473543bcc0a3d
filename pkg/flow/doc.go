// Package flow implements a wrapping, row-based layout of rectangular items
// into a constrained width, analogous to inline text wrapping.
//
// Given a [geometry.Proposal] (each axis independently finite or
// unconstrained) and a [Source] of item sizes, the [Engine] groups items into
// rows whose total width (items plus inter-item gaps) never exceeds the
// available width, with one deliberate exception: an item wider than the
// container still gets a row of its own rather than being dropped. Rows are
// then stacked vertically with per-pair gaps resolved between the tallest
// items of consecutive rows, and each item receives an absolute offset.
//
// # Entry points
//
// A host layout pass uses two calls:
//
//	min, fit := engine.Measure(proposal, source)
//	placements := engine.Arrange(bounds, proposal, source)
//
// Measure reports the minimum size (every item probed with a zero proposal,
// componentwise maximum) and the best-fit content size under the proposal.
// Arrange produces one [Placement] per item with its final top-left position.
//
// # Caching
//
// Packing and stacking results are cached on the engine under a fingerprint
// of the normalized proposal and every measured item size, so a pass with
// unchanged inputs skips the packer entirely. Alignment is applied at
// placement time, never during packing, which keeps the cached rows valid
// across alignment changes. The cache holds exactly one entry; each pass has
// one proposal, so overwrite is the only eviction needed.
//
// # Concurrency
//
// Engine passes are synchronous, pure computations over their inputs. The
// single-entry cache is mutable state scoped to one Engine instance: the host
// must not run concurrent passes on the same instance. Distinct instances are
// independent.
package flow
