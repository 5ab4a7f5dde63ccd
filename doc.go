// Package trisurf is a toolkit for half-edge triangulations of
// translation surfaces — from plain combinatorics to flat geometry to
// degenerating a surface along a chosen vertical direction.
//
// 🚀 What is trisurf?
//
//	A library for exact computations on triangulated flat surfaces:
//		• Half-edge combinatorics: faces, vertex cycles, flips, collapses
//		• Tracked storage: per-half-edge data that survives every mutation
//		• Flat geometry: exact rational vectors, areas, orientation tests
//		• Saddle connections: oriented segments between singularities
//		• Collapsed surfaces: contract all edges parallel to a vertical
//
// ✨ Why choose trisurf?
//
//   - Exact – all coordinates are rationals, no floating-point drift
//   - Self-verifying – collapsed surfaces re-check their invariants
//     after every mutation and refuse to limp along broken
//   - Composable – each layer is usable on its own, from bare
//     permutations up to fully decorated surfaces
//
// Under the hood, everything is organized under five subpackages:
//
//	geom/      — exact planar vectors, CCW predicates, vertical directions
//	surf/      — combinatorial half-edge surfaces with flip & collapse
//	tracked/   — per-half-edge storage following surface mutations
//	flat/      — flat triangulations and saddle connections
//	collapsed/ — surfaces with all vertical edges collapsed away
//
// Quick ASCII example:
//
//	    ┌──3──┐
//	    1  ╱  1      the square torus: two triangles glued along
//	    │ 2   │      the diagonal 2, opposite sides identified.
//	    └──3──┘
//
//	Collapsing along the diagonal's direction leaves a single folded
//	edge that hides the diagonal as a saddle connection.
//
// Dive into README.md for full examples and the data model behind
// collapsed surfaces.
//
//	go get github.com/katalvlaran/trisurf
package trisurf
