// Package geom provides exact planar vectors and the orientation
// predicates the triangulation engine is built on.
//
// Coordinates are arbitrary-precision rationals (math/big.Rat), so every
// predicate — collinearity, counter-clockwise orientation, perpendicular
// and parallel components with respect to a direction — is decided
// exactly, never by an epsilon. This is what makes the collapse logic in
// package collapsed sound: an edge either is parallel to the vertical
// direction or it is not.
//
// The two central types are:
//
//	Vec      — an immutable exact 2D vector (Add/Sub/Neg/Cross/Dot/…)
//	Vertical — a fixed nonzero direction, classifying vectors by their
//	           perpendicular and parallel components relative to it
//
// All Vec methods return fresh values; a Vec is never mutated after
// construction, so vectors may be shared freely.
package geom
