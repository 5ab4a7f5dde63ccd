// Package surf implements the combinatorial half-edge surface underlying
// the triangulation engine: oriented half-edges, the face and vertex
// permutations, and the two structural mutations — Flip and Collapse.
//
// # Data model
//
// A half-edge is a nonzero signed integer; -e is the opposite orientation
// of the same physical edge. A surface over n edges uses half-edges
// ±1..±n and maintains two permutations:
//
//	NextInFace   — 3-cycles, one per triangular face; a face may
//	               degenerate to the folded pair NextInFace(e) == -e
//	               after a collapse
//	NextAtVertex — cycles of the outgoing half-edges around each vertex
//
// The permutations determine each other: PreviousInFace(e) equals
// -NextAtVertex(e) and PreviousAtVertex(e) equals -NextInFace(e), so both
// inverses are O(1).
//
// # Mutations
//
// Flip replaces the diagonal of two adjacent triangles. Collapse removes
// an edge and merges its endpoints: the two adjacent faces lose the edge,
// and each resulting two-sided face is eliminated by identifying its two
// sides into a single edge — unless the two sides are opposite
// orientations of one edge, in which case the folded pair remains as a
// degenerate face. Erased edges free their integer names by swapping with
// the top index, so half-edge identities change across a Collapse.
//
// # Notifications
//
// Observers attach through a fixed, ordered, synchronous dispatch:
// OnAfterFlip, OnBeforeCollapse, OnBeforeSwap, OnBeforeErase. Handlers
// run on the mutating goroutine, in registration order, and must not
// re-enter the surface's mutators. Package tracked builds its
// incremental per-edge storage on these hooks.
package surf
