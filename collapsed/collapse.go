// File: collapse.go
// Role: Collapse on a collapsed surface, and the storage update that
//       runs before the combinatorial collapse.
//
// The update distinguishes how the four outer half-edges of the
// collapsed gadget pair up; the cases are dispatched in a fixed order
// from most to least degenerate, and each writes its slots explicitly.

package collapsed

import (
	"github.com/emirpasic/gods/sets/hashset"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/trisurf/flat"
	"github.com/katalvlaran/trisurf/surf"
)

// Collapse removes the vertical edge of e, merging its endpoints. The
// edge must be parallel to the vertical direction (ErrInvalidArgument
// otherwise) and its two faces must be genuine triangles. Edge names are
// recycled; the returned pair is the half-edge now answering to |e| and
// its former name, or zero values when the slot simply vanished.
func (s *Surface) Collapse(e surf.HalfEdge) (surf.HalfEdge, surf.HalfEdge, error) {
	if !s.shadow.Known(e) {
		return 0, 0, errors.Wrapf(ErrNotFound, "collapse %v", e)
	}
	if !s.vertical.IsParallel(s.connection(e).Vector()) {
		return 0, 0, errors.Wrapf(ErrInvalidArgument, "cannot collapse non-vertical edge %v", e)
	}
	if s.shadow.Degenerate(e) || s.shadow.Degenerate(-e) {
		return 0, 0, errors.Wrapf(ErrInvalidArgument, "cannot collapse %v next to a collapsed face", e)
	}
	klog.V(2).Infof("collapsing %v in %v", e, s.shadow)

	now, was, err := s.shadow.Collapse(e)
	if err != nil {
		return 0, 0, err
	}
	s.check()
	return now, was, nil
}

// updateBeforeCollapse rewrites the stored connections before the shadow
// collapses the vertical edge; it runs against the untouched face cycles
// (c e b)(a -e d) with e the upward orientation of the collapsing edge.
// The edge itself becomes a hidden connection on b and d, and the outer
// half-edges that the collapse identifies exchange their data. How they
// are identified depends on which of a, b, c, d already coincide.
func (s *Surface) updateBeforeCollapse(edge surf.Edge) {
	e := edge.Positive()
	if s.vertical.Parallel(s.connection(e).Vector()).Sign() < 0 {
		e = -e
	}
	conn := s.connection(e)
	back := s.connection(-e)
	if s.selfCheck && !back.Vector().Equal(conn.Vector().Neg()) {
		klog.Errorf("collapsing edge %v with asymmetric vectors %v and %v", edge, conn.Vector(), back.Vector())
		panic(errors.Wrapf(ErrInconsistent, "collapsing edge %v with asymmetric vectors", edge))
	}

	a := s.shadow.PreviousInFace(-e)
	b := s.shadow.NextInFace(e)
	c := s.shadow.PreviousInFace(e)
	d := s.shadow.NextInFace(-e)

	// The collapsing edge goes into hiding: b and d start sweeping over
	// it, at the very start of their lists.
	s.setHidden(b, append([]flat.SaddleConnection{conn}, s.hiddenOf(b)...))
	s.setHidden(d, append([]flat.SaddleConnection{back}, s.hiddenOf(d)...))

	switch {
	case a == -c && b == -d:
		// Both sides fold onto themselves.
		s.setConnection(-a, s.connection(a).Neg())
		s.setHidden(a, append(s.hiddenSnapshot(a), s.hiddenOf(b)...))
		s.setHidden(-a, append(s.hiddenSnapshot(-b), s.hiddenOf(-a)...))
		s.copySlot(b, a)
		s.copySlot(-b, -a)

	case a == -c:
		// The left side folds; b pairs with c and d pairs with a.
		s.setHidden(-b, append(s.hiddenSnapshot(-b), s.hiddenOf(c)...))
		s.setHidden(-b, append(s.hiddenSnapshot(-b), s.hiddenOf(d)...))
		s.setHidden(-d, append(s.hiddenSnapshot(-d), s.hiddenOf(a)...))
		s.setHidden(-d, append(s.hiddenSnapshot(-d), s.hiddenOf(b)...))
		s.copySlot(a, -d)
		s.copySlot(b, -d)
		s.copySlot(c, -b)
		s.copySlot(d, -b)

	case b == -d:
		// The right side folds; mirror image of the previous case.
		s.setHidden(-a, append(s.hiddenSnapshot(-a), s.hiddenOf(d)...))
		s.setHidden(-a, append(s.hiddenSnapshot(-a), s.hiddenOf(c)...))
		s.setHidden(-c, append(s.hiddenSnapshot(-c), s.hiddenOf(b)...))
		s.setHidden(-c, append(s.hiddenSnapshot(-c), s.hiddenOf(a)...))
		s.copySlot(a, -c)
		s.copySlot(b, -c)
		s.copySlot(c, -a)
		s.copySlot(d, -a)

	case a == -d || b == -c:
		// One or both of the outer pairs already coincide; each side is
		// handled on its own.
		if a == -d {
			s.setConnection(-a, s.connection(a).Neg())
		} else {
			s.setHidden(-a, append(s.hiddenSnapshot(-a), s.hiddenOf(d)...))
			s.setHidden(-d, append(s.hiddenSnapshot(-d), s.hiddenOf(a)...))
			s.copySlot(a, -d)
			s.copySlot(d, -a)
		}
		if b == -c {
			s.setConnection(-b, s.connection(b).Neg())
		} else {
			s.setHidden(-b, append(s.hiddenSnapshot(-b), s.hiddenOf(c)...))
			s.setHidden(-c, append(s.hiddenSnapshot(-c), s.hiddenOf(b)...))
			s.copySlot(b, -c)
			s.copySlot(c, -b)
		}

	default:
		if s.selfCheck {
			distinct := hashset.New(a, -a, b, -b, c, -c, d, -d)
			if distinct.Size() != 8 {
				klog.Errorf("unpaired gadget around %v is not generic: a=%v b=%v c=%v d=%v", edge, a, b, c, d)
				panic(errors.Wrapf(ErrInconsistent, "collapse of %v hit an unclassified gadget", edge))
			}
		}
		s.setHidden(-a, append(s.hiddenSnapshot(-a), s.hiddenOf(d)...))
		s.setHidden(-b, append(s.hiddenSnapshot(-b), s.hiddenOf(c)...))
		s.setHidden(-c, append(s.hiddenSnapshot(-c), s.hiddenOf(b)...))
		s.setHidden(-d, append(s.hiddenSnapshot(-d), s.hiddenOf(a)...))
		s.copySlot(a, -d)
		s.copySlot(b, -c)
		s.copySlot(c, -b)
		s.copySlot(d, -a)
	}

	if s.selfCheck {
		for _, h := range []surf.HalfEdge{-a, b, -c, d} {
			if len(s.hiddenOf(h)) == 0 {
				klog.Errorf("half-edge %v hides nothing after collapse of %v", h, edge)
				panic(errors.Wrapf(ErrInconsistent, "half-edge %v hides nothing after collapse of %v", h, edge))
			}
		}
	}
}
