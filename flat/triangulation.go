// File: triangulation.go
// Role: Triangulation, a combinatorial surface whose half-edges carry
//       exact planar vectors closing up around every face.

package flat

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/trisurf/geom"
	"github.com/katalvlaran/trisurf/surf"
)

// ErrOpenFace reports a face whose half-edge vectors do not sum to zero.
var ErrOpenFace = errors.New("flat: face vectors do not close up")

// ErrVectorCount reports a vector assignment whose length does not match
// the surface's edge count.
var ErrVectorCount = errors.New("flat: one vector required per edge")

// Triangulation is a translation surface: a triangulated combinatorial
// surface together with a vector for each half-edge, satisfying
// vector(-e) == -vector(e) and, around every face, a zero sum.
type Triangulation struct {
	surface *surf.Surface
	vectors []geom.Vec
}

// New builds a triangulation over surface, assigning vectors[i] to the
// positive half-edge i+1 and its negation to -(i+1). The surface is
// cloned, so later mutations of the argument do not leak in. Fails with
// ErrVectorCount or ErrOpenFace when the assignment is unusable.
// Complexity: O(n).
func New(surface *surf.Surface, vectors []geom.Vec) (*Triangulation, error) {
	if len(vectors) != surface.EdgeCount() {
		return nil, errors.Wrapf(ErrVectorCount, "%d vectors for %d edges", len(vectors), surface.EdgeCount())
	}

	t := &Triangulation{
		surface: surface.Clone(),
		vectors: make([]geom.Vec, 2*surface.EdgeCount()),
	}
	for i, v := range vectors {
		e := surf.Edge(i + 1)
		t.vectors[e.Positive().Index()] = v
		t.vectors[e.Negative().Index()] = v.Neg()
	}

	for _, e := range t.surface.HalfEdges() {
		if t.surface.Boundary(e) {
			continue
		}
		sum := t.FromEdge(e).Add(t.FromEdge(t.surface.NextInFace(e))).Add(t.FromEdge(t.surface.PreviousInFace(e)))
		if !sum.IsZero() {
			return nil, errors.Wrapf(ErrOpenFace, "face of %v sums to %v", e, sum)
		}
	}
	return t, nil
}

// Combinatorial exposes the underlying surface. Mutating it without
// updating the vectors breaks the triangulation; prefer the accessors.
func (t *Triangulation) Combinatorial() *surf.Surface {
	return t.surface
}

// FromEdge returns the vector of the half-edge e.
func (t *Triangulation) FromEdge(e surf.HalfEdge) geom.Vec {
	return t.vectors[e.Index()]
}

// Area returns six times the signed area enclosed by the triangulation,
// as an exact rational.
func (t *Triangulation) Area() *big.Rat {
	area := new(big.Rat)
	for _, e := range t.surface.HalfEdges() {
		area.Add(area, t.FromEdge(e).Cross(t.FromEdge(t.surface.NextInFace(e))))
	}
	return area
}

// Clone returns an independent copy; notification handlers on the
// underlying surface are not carried over.
func (t *Triangulation) Clone() *Triangulation {
	vectors := make([]geom.Vec, len(t.vectors))
	copy(vectors, t.vectors)
	return &Triangulation{surface: t.surface.Clone(), vectors: vectors}
}

// String renders the face cycles with their vectors, deterministically.
func (t *Triangulation) String() string {
	var b strings.Builder
	b.WriteString(t.surface.String())
	b.WriteString(" with vectors {")
	for i, e := range t.surface.Edges() {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v: %v", e, t.FromEdge(e.Positive()))
	}
	b.WriteString("}")
	return b.String()
}
