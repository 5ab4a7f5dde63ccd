// Package flat equips combinatorial surfaces with flat geometry.
//
// A Triangulation pairs a surf.Surface with one geom.Vec per half-edge,
// assigned so that the vectors of every face cycle sum to zero. All
// coordinates are exact rationals, so areas and orientation predicates
// never suffer rounding.
//
// A SaddleConnection is an oriented straight segment between two
// singularities of such a surface, remembered by its vector together
// with the half-edges bounding the angular sectors it leaves and enters.
//
// # Related Packages
//
//   - surf: the underlying combinatorial structure.
//   - geom: exact vectors and orientation predicates.
//   - collapsed: degenerates these triangulations along a vertical
//     direction.
package flat
