// Package collapsed degenerates flat triangulations along a vertical
// direction.
//
// Given a flat.Triangulation and a direction, a Surface collapses every
// edge parallel to that direction: the edge's endpoints merge and the
// edge itself survives only as a hidden saddle connection remembered on
// the half-edges that used to be its neighbours. What remains is a
// smaller triangulation whose half-edges carry saddle connections of the
// original surface rather than plain vectors, and whose Cross query
// recovers the vertical connections a half-edge sweeps over.
//
// Flips keep working on the collapsed picture: flipping an edge whose
// new diagonal turns out vertical immediately collapses it, so a Surface
// never exposes a vertical non-collapsed edge.
//
// Surfaces self-verify after every mutation while SelfCheck is enabled;
// a failed invariant is a bug and panics with ErrInconsistent.
//
// # Related Packages
//
//   - flat: the uncollapsed triangulations this package degenerates.
//   - tracked: the mutation-following storage for vectors and hidden
//     connection lists.
package collapsed
