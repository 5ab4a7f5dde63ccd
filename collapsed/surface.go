// File: surface.go
// Role: Surface construction and queries. The mutation rules live in
//       flip.go and collapse.go, the invariant checks in check.go.

package collapsed

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/sets/hashset"
	"github.com/emirpasic/gods/utils"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/trisurf/flat"
	"github.com/katalvlaran/trisurf/geom"
	"github.com/katalvlaran/trisurf/surf"
	"github.com/katalvlaran/trisurf/tracked"
)

// Surface is a flat triangulation with all edges parallel to a fixed
// vertical direction collapsed away.
//
// Half-edges carry saddle connections of the uncollapsed surface instead
// of plain vectors; after collapses the connection of -e need not be the
// negation of the connection of e. Each half-edge additionally remembers
// the ordered list of vertical connections it swept over, exposed by
// Cross.
type Surface struct {
	shadow   *surf.Surface
	original *flat.Triangulation
	vertical geom.Vertical

	vectors *tracked.Map[flat.SaddleConnection]
	hidden  *tracked.Map[[]flat.SaddleConnection]

	selfCheck bool
}

// Option adjusts a Surface at construction time.
type Option func(*Surface)

// WithSelfCheck overrides the package-level SelfCheck default for one
// surface.
func WithSelfCheck(enabled bool) Option {
	return func(s *Surface) { s.selfCheck = enabled }
}

// New collapses every edge of t parallel to direction and returns the
// resulting surface. t is cloned, never mutated. Fails with
// ErrInvalidArgument for a zero direction or a surface with boundary.
// Complexity: O(h²) in the number of half-edges, since the scan restarts
// after every collapse.
func New(t *flat.Triangulation, direction geom.Vec, opts ...Option) (*Surface, error) {
	vertical, err := geom.NewVertical(direction)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidArgument, err.Error())
	}
	for _, e := range t.Combinatorial().HalfEdges() {
		if t.Combinatorial().Boundary(e) {
			return nil, errors.Wrapf(ErrInvalidArgument, "cannot collapse surface with boundary at %v", e)
		}
	}

	original := t.Clone()
	s := &Surface{
		shadow:    t.Combinatorial().Clone(),
		original:  original,
		vertical:  vertical,
		selfCheck: SelfCheck,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.hidden = tracked.New(s.shadow, func(surf.HalfEdge) []flat.SaddleConnection {
		return nil
	}, nil, nil)
	s.vectors = tracked.New(s.shadow, func(e surf.HalfEdge) flat.SaddleConnection {
		return flat.ConnectionFromEdge(original, e)
	}, nil, nil)
	s.shadow.OnAfterFlip(s.updateAfterFlip)
	s.shadow.OnBeforeCollapse(s.updateBeforeCollapse)

	for {
		collapsed := false
		for _, e := range s.shadow.HalfEdges() {
			if s.shadow.Degenerate(e) || s.shadow.Degenerate(-e) {
				continue
			}
			if !s.vertical.IsParallel(s.connection(e).Vector()) {
				continue
			}
			if _, _, err := s.Collapse(e); err != nil {
				return nil, err
			}
			collapsed = true
			break
		}
		if !collapsed {
			break
		}
	}

	s.check()
	return s, nil
}

// Vertical returns the direction all collapsed edges were parallel to.
func (s *Surface) Vertical() geom.Vertical {
	return s.vertical
}

// Uncollapsed returns the flat triangulation the surface was built from.
func (s *Surface) Uncollapsed() *flat.Triangulation {
	return s.original
}

// Combinatorial exposes the collapsed combinatorial structure. Mutate it
// only through Flip and Collapse on the Surface itself.
func (s *Surface) Combinatorial() *surf.Surface {
	return s.shadow
}

// EdgeCount returns the number of surviving edges.
func (s *Surface) EdgeCount() int {
	return s.shadow.EdgeCount()
}

// FromEdge returns the translation realized by the half-edge e. After
// collapses this need not be the negation of FromEdge(-e).
func (s *Surface) FromEdge(e surf.HalfEdge) (geom.Vec, error) {
	if !s.shadow.Known(e) {
		return geom.Vec{}, errors.Wrapf(ErrNotFound, "from edge %v", e)
	}
	return s.connection(e).Vector(), nil
}

// Connection returns the saddle connection of the uncollapsed surface
// that the half-edge e realizes.
func (s *Surface) Connection(e surf.HalfEdge) (flat.SaddleConnection, error) {
	if !s.shadow.Known(e) {
		return flat.SaddleConnection{}, errors.Wrapf(ErrNotFound, "connection of %v", e)
	}
	return s.connection(e), nil
}

// Cross returns the vertical connections the half-edge e sweeps over,
// ordered from the start of e to its end. The slice is a copy.
func (s *Surface) Cross(e surf.HalfEdge) ([]flat.SaddleConnection, error) {
	if !s.shadow.Known(e) {
		return nil, errors.Wrapf(ErrNotFound, "cross of %v", e)
	}
	return append([]flat.SaddleConnection(nil), s.hiddenOf(e)...), nil
}

// Turn returns the vertical connections crossed when turning
// counterclockwise from the sector of from to the sector of to around
// their shared start vertex. Fails with ErrInvalidArgument when the two
// half-edges do not start at the same vertex.
func (s *Surface) Turn(from, to surf.HalfEdge) ([]flat.SaddleConnection, error) {
	if !s.shadow.Known(from) || !s.shadow.Known(to) {
		return nil, errors.Wrapf(ErrNotFound, "turn from %v to %v", from, to)
	}
	if !s.shadow.AtSameVertex(from, to) {
		return nil, errors.Wrapf(ErrInvalidArgument, "%v and %v do not start at the same vertex", from, to)
	}

	var connections []flat.SaddleConnection
	seen := hashset.New()
	for h := from; h != to; h = s.shadow.PreviousAtVertex(h) {
		for _, c := range s.hiddenOf(h) {
			if s.selfCheck {
				if seen.Contains(c.Key()) {
					klog.Errorf("connection %v crossed twice turning from %v to %v", c, from, to)
					panic(errors.Wrapf(ErrInconsistent, "connection %v crossed twice", c))
				}
				seen.Add(c.Key())
			}
			connections = append(connections, c)
		}
	}
	return connections, nil
}

// InSector reports whether v points into the angular sector
// counterclockwise from the half-edge sector, inclusive at sector and
// exclusive at the sector's counterclockwise boundary.
func (s *Surface) InSector(sector surf.HalfEdge, v geom.Vec) (bool, error) {
	if !s.shadow.Known(sector) {
		return false, errors.Wrapf(ErrNotFound, "sector %v", sector)
	}
	from := s.connection(sector).Vector()
	to := s.connection(s.shadow.PreviousInFace(sector)).Vector().Neg()
	return from.CCW(v) != geom.Clockwise && to.CCW(v) == geom.Clockwise, nil
}

// String renders the surviving edges with their connections and crossed
// verticals, ordered by edge number.
func (s *Surface) String() string {
	ordered := treemap.NewWith(utils.IntComparator)
	for _, e := range s.shadow.Edges() {
		var b strings.Builder
		fmt.Fprintf(&b, "%v: %v", e, s.connection(e.Positive()))
		if hidden := s.hiddenOf(e.Positive()); len(hidden) > 0 {
			fmt.Fprintf(&b, " hiding %d", len(hidden))
		}
		ordered.Put(int(e), b.String())
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%v collapsed along %v {", s.shadow, s.vertical)
	first := true
	ordered.Each(func(_ interface{}, value interface{}) {
		if !first {
			b.WriteString(", ")
		}
		first = false
		b.WriteString(value.(string))
	})
	b.WriteString("}")
	return b.String()
}

// connection is the unchecked accessor for vector storage; half-edges
// reaching it are always live.
func (s *Surface) connection(e surf.HalfEdge) flat.SaddleConnection {
	c, err := s.vectors.Get(e)
	if err != nil {
		panic(errors.Wrapf(ErrInconsistent, "no connection stored for %v", e))
	}
	return c
}

func (s *Surface) setConnection(e surf.HalfEdge, c flat.SaddleConnection) {
	if err := s.vectors.Set(e, c); err != nil {
		panic(errors.Wrapf(ErrInconsistent, "cannot store connection for %v", e))
	}
}

func (s *Surface) hiddenOf(e surf.HalfEdge) []flat.SaddleConnection {
	h, err := s.hidden.Get(e)
	if err != nil {
		panic(errors.Wrapf(ErrInconsistent, "no hidden connections stored for %v", e))
	}
	return h
}

func (s *Surface) setHidden(e surf.HalfEdge, h []flat.SaddleConnection) {
	if err := s.hidden.Set(e, h); err != nil {
		panic(errors.Wrapf(ErrInconsistent, "cannot store hidden connections for %v", e))
	}
}

// copySlot copies both the connection and the hidden list of src onto
// dst, detaching the list from src's backing storage.
func (s *Surface) copySlot(dst, src surf.HalfEdge) {
	s.setConnection(dst, s.connection(src))
	s.setHidden(dst, append([]flat.SaddleConnection(nil), s.hiddenOf(src)...))
}
