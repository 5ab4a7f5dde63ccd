// File: mutate.go
// Role: the two structural mutations (Flip, Collapse) and the edge
//       erasure machinery that keeps half-edge names dense.
// Determinism:
//   - Collapse keeps the lower-numbered edge of every merged pair and
//     erases doomed edges from the highest name down, so the resulting
//     renames are reproducible.

package surf

import (
	"github.com/pkg/errors"
)

// Flip replaces e, the shared diagonal of two adjacent triangles, by the
// opposite diagonal: the faces (a b e)(c d -e) become (a -e d)(c e b).
// Both adjacent faces must be genuine triangles (ErrDegenerateFace
// otherwise). Registered after-flip handlers run once the new cycles are
// in place.
// Complexity: O(1) plus handler work.
func (s *Surface) Flip(e HalfEdge) error {
	if !s.Known(e) {
		return errors.Wrapf(ErrUnknownHalfEdge, "cannot flip %v", e)
	}
	if s.Degenerate(e) || s.Degenerate(-e) {
		return errors.Wrapf(ErrDegenerateFace, "cannot flip %v: a collapsed face has no opposite diagonal", e)
	}

	// Pre-flip cycles (e a b)(-e c d).
	a := s.faces[e.Index()]
	b := s.faces[a.Index()]
	c := s.faces[(-e).Index()]
	d := s.faces[c.Index()]

	// Post-flip cycles (e b c)(-e d a).
	s.faces[e.Index()] = b
	s.faces[b.Index()] = c
	s.faces[c.Index()] = e
	s.faces[(-e).Index()] = d
	s.faces[d.Index()] = a
	s.faces[a.Index()] = -e

	// Repair the six affected vertex entries via
	// NextAtVertex(-NextInFace(x)) == x.
	s.vertices[(-b).Index()] = e
	s.vertices[(-c).Index()] = b
	s.vertices[(-e).Index()] = c
	s.vertices[(-d).Index()] = -e
	s.vertices[(-a).Index()] = d
	s.vertices[e.Index()] = a

	for _, h := range s.afterFlip {
		h(e)
	}
	return nil
}

// Collapse removes the edge of e and merges its two endpoints. The two
// adjacent faces, which must be genuine triangles, lose e and become
// two-sided; each two-sided face is then eliminated by identifying its
// two sides into one edge, except that a folded pair (x, -x) remains as a
// degenerate face. Erased edges free their names by swapping with the top
// index, so half-edge identities change across a Collapse.
//
// Before-collapse handlers run first, against the untouched structure.
// Swap and erase handlers fire as names are recycled.
//
// Returns the rename of the collapsed slot: the half-edge now answering
// to |e| and the name it had before, or zero values when no live edge
// moved into that slot.
// Complexity: O(n) (vertex re-derivation and relabeling scans).
func (s *Surface) Collapse(e HalfEdge) (HalfEdge, HalfEdge, error) {
	if !s.Known(e) {
		return 0, 0, errors.Wrapf(ErrUnknownHalfEdge, "cannot collapse %v", e)
	}
	if s.Degenerate(e) || s.Degenerate(-e) {
		return 0, 0, errors.Wrapf(ErrDegenerateFace, "cannot collapse %v: adjacent face already collapsed", e)
	}

	for _, h := range s.beforeCollapse {
		h(e.Edge())
	}

	// The gadget: faces (c e b)(a -e d).
	b := s.NextInFace(e)
	c := s.PreviousInFace(e)
	d := s.NextInFace(-e)
	a := s.PreviousInFace(-e)

	// Splice e out of both face cycles, leaving bigons (b c) and (d a).
	s.faces[c.Index()] = b
	s.faces[a.Index()] = d

	dead := []Edge{e.Edge()}
	rename := map[HalfEdge]HalfEdge{}
	dead = s.resolveBigon(b, dead, rename)
	second := d
	if r, ok := rename[second]; ok {
		second = r
	}
	if !containsEdge(dead, second.Edge()) {
		dead = s.resolveBigon(second, dead, rename)
	}

	// Rebuild the vertex permutation over the surviving edges; the merge
	// of the two endpoint cycles falls out of the face permutation.
	for i := range s.faces {
		x := halfEdgeAt(i)
		if containsEdge(dead, x.Edge()) {
			continue
		}
		s.vertices[(-s.faces[i]).Index()] = x
	}

	now, was := s.eraseEdges(dead, e.Edge())
	return now, was, nil
}

// resolveBigon eliminates the two-sided face containing x, created by
// splicing the collapsed edge out. The sides (x, y) merge into a single
// edge: the lower-numbered one survives and its free orientation takes
// over the erased edge's outer slot. A folded bigon (x, -x) is left in
// place as a degenerate face.
func (s *Surface) resolveBigon(x HalfEdge, dead []Edge, rename map[HalfEdge]HalfEdge) []Edge {
	y := s.faces[x.Index()]
	if y == -x {
		return dead
	}
	keep, drop := x, y
	if keep.Edge() > drop.Edge() {
		keep, drop = drop, keep
	}

	s.faces[keep.Index()] = s.faces[(-drop).Index()]
	s.faces[s.facePredecessor(-drop).Index()] = keep
	rename[-drop] = keep
	rename[drop] = -keep
	return append(dead, drop.Edge())
}

// facePredecessor walks the face cycle of e; usable while the vertex
// permutation is stale mid-collapse.
func (s *Surface) facePredecessor(e HalfEdge) HalfEdge {
	p := e
	for s.faces[p.Index()] != e {
		p = s.faces[p.Index()]
	}
	return p
}

// eraseEdges recycles the names of the dead edges, highest first: each
// doomed edge swaps with the current top index (handlers see every swap),
// then the dead tail is dropped after a single before-erase notification.
// Returns the rename of collapsedSlot, if a live edge ended there.
func (s *Surface) eraseEdges(dead []Edge, collapsedSlot Edge) (HalfEdge, HalfEdge) {
	sortEdgesDescending(dead)

	// original[d] remembers, for a slot d that received a live edge, the
	// name that edge had before this Collapse started.
	original := make(map[Edge]Edge, len(dead))

	top := Edge(s.edges)
	doomed := make([]Edge, 0, len(dead))
	for _, k := range dead {
		if k != top {
			s.swapEdges(k, top)
			from := top
			if o, ok := original[from]; ok {
				from = o
				delete(original, top)
			}
			original[k] = from
		}
		doomed = append(doomed, top)
		top--
	}

	for _, h := range s.beforeErase {
		h(doomed)
	}
	s.edges = int(top)
	s.faces = s.faces[:2*s.edges]
	s.vertices = s.vertices[:2*s.edges]

	if from, ok := original[collapsedSlot]; ok && int(collapsedSlot) <= s.edges {
		return collapsedSlot.Positive(), from.Positive()
	}
	return 0, 0
}

// swapEdges exchanges the names of edges k and n in both permutations,
// notifying swap handlers for each orientation pair first.
func (s *Surface) swapEdges(k, n Edge) {
	if k == n {
		return
	}
	for _, h := range s.beforeSwap {
		h(k.Positive(), n.Positive())
		h(k.Negative(), n.Negative())
	}

	swapSlots := func(p []HalfEdge, a, b HalfEdge) {
		p[a.Index()], p[b.Index()] = p[b.Index()], p[a.Index()]
	}
	swapSlots(s.faces, k.Positive(), n.Positive())
	swapSlots(s.faces, k.Negative(), n.Negative())
	swapSlots(s.vertices, k.Positive(), n.Positive())
	swapSlots(s.vertices, k.Negative(), n.Negative())

	relabel := func(h HalfEdge) HalfEdge {
		switch h {
		case k.Positive():
			return n.Positive()
		case k.Negative():
			return n.Negative()
		case n.Positive():
			return k.Positive()
		case n.Negative():
			return k.Negative()
		}
		return h
	}
	for i := range s.faces {
		s.faces[i] = relabel(s.faces[i])
		s.vertices[i] = relabel(s.vertices[i])
	}
}

func containsEdge(edges []Edge, d Edge) bool {
	for _, x := range edges {
		if x == d {
			return true
		}
	}
	return false
}
