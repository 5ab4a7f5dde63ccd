// Package tracked provides per-half-edge storage that follows a surface
// through its mutations.
//
// A Map[V] holds one value of type V for every half-edge of a
// surf.Surface. On construction it registers itself with the surface's
// notification hooks and from then on keeps itself consistent:
//
//   - after a flip, a caller-supplied updater recomputes the values
//     around the flipped diagonal;
//   - before a collapse, a caller-supplied updater reshuffles the values
//     of the surrounding edges;
//   - swaps and erasures of edge names are handled internally, so the
//     value stored for a half-edge survives any renaming.
//
// Values live in a dense slice indexed by surf.HalfEdge.Index, which
// makes Get and Set O(1) and keeps iteration allocation-free.
//
// # Related Packages
//
//   - surf: the combinatorial surfaces whose mutations a Map tracks.
//   - collapsed: builds its vector and connection storage on Map.
package tracked
