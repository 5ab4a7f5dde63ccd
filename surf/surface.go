// File: surface.go
// Role: Surface type, constructors (from face triples or vertex cycles),
//       read accessors, cloning, validation, rendering, and the ordered
//       notification pipeline.
// Concurrency:
//   - None. A Surface is single-goroutine; see package doc.

package surf

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// Sentinel errors for combinatorial surface operations.
var (
	// ErrUnknownHalfEdge indicates a half-edge outside ±1..±n (or zero).
	ErrUnknownHalfEdge = errors.New("surf: unknown half edge")

	// ErrNotTriangulated indicates a constructor input whose faces are not
	// all 3-cycles.
	ErrNotTriangulated = errors.New("surf: surface is not triangulated")

	// ErrBadPermutation indicates constructor input that is not a
	// permutation of ±1..±n (a half-edge missing or repeated).
	ErrBadPermutation = errors.New("surf: half edges do not form a permutation")

	// ErrDegenerateFace indicates a mutation on an edge whose adjacent
	// face is not a genuine triangle.
	ErrDegenerateFace = errors.New("surf: face is degenerate")
)

// Surface is the combinatorial half-edge surface. See the package doc for
// the data model. The zero value is unusable; build one with FromFaces or
// FromVertexCycles.
type Surface struct {
	// edges is the number of physical edges; half-edges are ±1..±edges.
	edges int

	// faces and vertices hold the two permutations, indexed by
	// HalfEdge.Index.
	faces    []HalfEdge
	vertices []HalfEdge

	// Ordered notification pipelines, invoked synchronously in
	// registration order.
	afterFlip      []func(HalfEdge)
	beforeCollapse []func(Edge)
	beforeSwap     []func(HalfEdge, HalfEdge)
	beforeErase    []func([]Edge)
}

// FromFaces builds a triangulated surface from its face triples. Every
// half-edge ±1..±n must appear in exactly one triple.
// Complexity: O(n).
func FromFaces(faces [][3]HalfEdge) (*Surface, error) {
	n := 0
	for _, f := range faces {
		for _, e := range f {
			if e == 0 {
				return nil, errors.Wrap(ErrUnknownHalfEdge, "face contains the zero half edge")
			}
			if int(e.Edge()) > n {
				n = int(e.Edge())
			}
		}
	}
	s := &Surface{
		edges:    n,
		faces:    make([]HalfEdge, 2*n),
		vertices: make([]HalfEdge, 2*n),
	}
	seen := make([]bool, 2*n)
	for _, f := range faces {
		for i, e := range f {
			if seen[e.Index()] {
				return nil, errors.Wrapf(ErrBadPermutation, "half edge %v appears twice", e)
			}
			seen[e.Index()] = true
			s.faces[e.Index()] = f[(i+1)%3]
		}
	}
	for i := range seen {
		if !seen[i] {
			return nil, errors.Wrapf(ErrBadPermutation, "half edge with index %d missing from faces", i)
		}
	}
	s.deriveVertices()
	return s, nil
}

// FromVertexCycles builds a surface from the cyclic order of outgoing
// half-edges around each vertex, the way flat surfaces are usually
// written down, e.g. the one-vertex torus {{1, -3, 2, -1, 3, -2}}.
// The derived faces must all be triangles.
// Complexity: O(n).
func FromVertexCycles(cycles [][]HalfEdge) (*Surface, error) {
	n := 0
	for _, cycle := range cycles {
		for _, e := range cycle {
			if e == 0 {
				return nil, errors.Wrap(ErrUnknownHalfEdge, "vertex cycle contains the zero half edge")
			}
			if int(e.Edge()) > n {
				n = int(e.Edge())
			}
		}
	}
	s := &Surface{
		edges:    n,
		faces:    make([]HalfEdge, 2*n),
		vertices: make([]HalfEdge, 2*n),
	}
	seen := make([]bool, 2*n)
	for _, cycle := range cycles {
		for i, e := range cycle {
			if seen[e.Index()] {
				return nil, errors.Wrapf(ErrBadPermutation, "half edge %v appears twice", e)
			}
			seen[e.Index()] = true
			s.vertices[e.Index()] = cycle[(i+1)%len(cycle)]
		}
	}
	for i := range seen {
		if !seen[i] {
			return nil, errors.Wrapf(ErrBadPermutation, "half edge with index %d missing from vertex cycles", i)
		}
	}
	// NextInFace(e) = -PreviousAtVertex(e); invert the vertex permutation.
	for i := range s.vertices {
		s.faces[s.vertices[i].Index()] = -halfEdgeAt(i)
	}
	for e := HalfEdge(1); int(e) <= n; e++ {
		for _, h := range []HalfEdge{e, -e} {
			if s.NextInFace(s.NextInFace(s.NextInFace(h))) != h || s.NextInFace(h) == h {
				return nil, errors.Wrapf(ErrNotTriangulated, "face of %v is not a triangle", h)
			}
		}
	}
	return s, nil
}

// halfEdgeAt inverts HalfEdge.Index.
func halfEdgeAt(index int) HalfEdge {
	e := HalfEdge(index/2 + 1)
	if index%2 == 1 {
		return -e
	}
	return e
}

// deriveVertices rebuilds the vertex permutation from the face
// permutation via NextAtVertex(-NextInFace(e)) == e.
func (s *Surface) deriveVertices() {
	for i := range s.faces {
		s.vertices[(-s.faces[i]).Index()] = halfEdgeAt(i)
	}
}

// Known reports whether e names a half-edge of this surface.
func (s *Surface) Known(e HalfEdge) bool {
	return e != 0 && int(e.Edge()) >= 1 && int(e.Edge()) <= s.edges
}

// EdgeCount returns the number of physical edges.
func (s *Surface) EdgeCount() int { return s.edges }

// HalfEdges returns all half-edges in the order 1, -1, 2, -2, …
// The slice is fresh; callers may keep it, but a Collapse invalidates
// half-edge names.
func (s *Surface) HalfEdges() []HalfEdge {
	all := make([]HalfEdge, 0, 2*s.edges)
	for e := HalfEdge(1); int(e) <= s.edges; e++ {
		all = append(all, e, -e)
	}
	return all
}

// Edges returns all edges 1..n.
func (s *Surface) Edges() []Edge {
	all := make([]Edge, s.edges)
	for i := range all {
		all[i] = Edge(i + 1)
	}
	return all
}

// NextInFace returns the successor of e around its face.
func (s *Surface) NextInFace(e HalfEdge) HalfEdge { return s.faces[e.Index()] }

// PreviousInFace returns the predecessor of e around its face, via
// NextAtVertex(-NextInFace(x)) == x.
func (s *Surface) PreviousInFace(e HalfEdge) HalfEdge { return s.vertices[(-e).Index()] }

// NextAtVertex returns the successor of e in the cyclic order of outgoing
// half-edges around its source vertex.
func (s *Surface) NextAtVertex(e HalfEdge) HalfEdge { return s.vertices[e.Index()] }

// PreviousAtVertex returns the predecessor of e around its source vertex.
func (s *Surface) PreviousAtVertex(e HalfEdge) HalfEdge { return -s.faces[e.Index()] }

// Boundary reports whether e has no face attached. Surfaces built by this
// package are closed, so this is false for every known half-edge; the
// predicate is part of the surface contract consumed by the geometry
// layers.
func (s *Surface) Boundary(e HalfEdge) bool { return s.faces[e.Index()] == e }

// AtSameVertex reports whether a and b start at the same vertex, by
// walking a's vertex cycle.
// Complexity: O(vertex degree).
func (s *Surface) AtSameVertex(a, b HalfEdge) bool {
	e := a
	for {
		if e == b {
			return true
		}
		e = s.NextAtVertex(e)
		if e == a {
			return false
		}
	}
}

// Degenerate reports whether e sits in a collapsed face, i.e. its face is
// not a genuine triangle.
func (s *Surface) Degenerate(e HalfEdge) bool {
	return s.NextInFace(s.NextInFace(s.NextInFace(e))) != e
}

// Clone returns an independent copy of the combinatorics. Notification
// handlers are not copied.
func (s *Surface) Clone() *Surface {
	c := &Surface{
		edges:    s.edges,
		faces:    append([]HalfEdge(nil), s.faces...),
		vertices: append([]HalfEdge(nil), s.vertices...),
	}
	return c
}

// OnAfterFlip registers a handler invoked after every Flip, once the new
// face cycles are in place. Handlers run in registration order.
func (s *Surface) OnAfterFlip(h func(HalfEdge)) { s.afterFlip = append(s.afterFlip, h) }

// OnBeforeCollapse registers a handler invoked at the start of every
// Collapse, before any structural change.
func (s *Surface) OnBeforeCollapse(h func(Edge)) { s.beforeCollapse = append(s.beforeCollapse, h) }

// OnBeforeSwap registers a handler invoked before two half-edges exchange
// names during edge erasure.
func (s *Surface) OnBeforeSwap(h func(HalfEdge, HalfEdge)) { s.beforeSwap = append(s.beforeSwap, h) }

// OnBeforeErase registers a handler invoked with the doomed top-index
// edges just before they are dropped.
func (s *Surface) OnBeforeErase(h func([]Edge)) { s.beforeErase = append(s.beforeErase, h) }

// Validate checks the structural invariants: both permutations range over
// ±1..±n and determine each other. Intended for tests and debugging.
func (s *Surface) Validate() error {
	for i := range s.faces {
		if !s.Known(s.faces[i]) || !s.Known(s.vertices[i]) {
			return errors.Wrapf(ErrBadPermutation, "entry for %v out of range", halfEdgeAt(i))
		}
	}
	for i := range s.faces {
		e := halfEdgeAt(i)
		if s.vertices[(-s.faces[i]).Index()] != e {
			return errors.Wrapf(ErrBadPermutation, "face and vertex permutations disagree at %v", e)
		}
	}
	return nil
}

// String renders the face cycles in deterministic order, e.g.
// "(1 2 3)(-1 -2 -3)".
func (s *Surface) String() string {
	var sb strings.Builder
	done := make(map[HalfEdge]bool, 2*s.edges)
	for _, start := range s.HalfEdges() {
		if done[start] {
			continue
		}
		cycle := []HalfEdge{}
		for e := start; !done[e]; e = s.NextInFace(e) {
			done[e] = true
			cycle = append(cycle, e)
		}
		// Canonical rotation: begin each cycle at its smallest slot.
		first := 0
		for i := range cycle {
			if cycle[i].Index() < cycle[first].Index() {
				first = i
			}
		}
		parts := make([]string, 0, len(cycle))
		for i := range cycle {
			parts = append(parts, cycle[(first+i)%len(cycle)].String())
		}
		fmt.Fprintf(&sb, "(%s)", strings.Join(parts, " "))
	}
	return sb.String()
}

// sortEdgesDescending orders edges from the highest name down; erasure
// processes them in this order so earlier swaps never rename a doomed
// edge.
func sortEdgesDescending(edges []Edge) {
	sort.Slice(edges, func(i, j int) bool { return edges[i] > edges[j] })
}
