// File: flip.go
// Role: Flip on a collapsed surface, and the storage update that runs
//       after the combinatorial flip.

package collapsed

import (
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/trisurf/flat"
	"github.com/katalvlaran/trisurf/surf"
)

// Flip replaces e by the opposite diagonal of its two adjacent
// triangles. A vertical edge cannot be flipped (ErrInvalidArgument), and
// neither can an edge of a collapsed face. When the new diagonal turns
// out vertical it is collapsed right away, so the surface never carries
// a vertical non-collapsed edge; e's edge may therefore no longer exist
// when Flip returns.
func (s *Surface) Flip(e surf.HalfEdge) error {
	if !s.shadow.Known(e) {
		return errors.Wrapf(ErrNotFound, "flip %v", e)
	}
	if s.vertical.IsParallel(s.connection(e).Vector()) {
		return errors.Wrapf(ErrInvalidArgument, "cannot flip vertical edge %v", e)
	}
	if s.shadow.Degenerate(e) || s.shadow.Degenerate(-e) {
		return errors.Wrapf(ErrInvalidArgument, "cannot flip %v next to a collapsed face", e)
	}

	// Orient the flip so the edge points rightward of the vertical; the
	// storage update below relies on this normalization.
	if s.vertical.Perpendicular(s.connection(e).Vector()).Sign() < 0 {
		e = -e
	}
	klog.V(2).Infof("flipping %v in %v", e, s.shadow)

	if err := s.shadow.Flip(e); err != nil {
		return err
	}

	if s.vertical.IsParallel(s.connection(e).Vector()) {
		if _, _, err := s.Collapse(e); err != nil {
			return err
		}
		return nil
	}
	s.check()
	return nil
}

// updateAfterFlip rewrites the stored connections after the shadow
// flipped e; it runs with the new face cycles (e b c)(-e d a) already in
// place. The verticals hidden behind the old diagonal move to the
// half-edges now sweeping over them, and the new diagonal's connection
// is the chain along either side of the quadrilateral.
func (s *Surface) updateAfterFlip(e surf.HalfEdge) {
	a := s.shadow.PreviousInFace(-e)
	b := s.shadow.NextInFace(e)
	c := s.shadow.PreviousInFace(e)
	d := s.shadow.NextInFace(-e)

	for _, conn := range s.hiddenOf(e) {
		s.setConnection(b, s.connection(b).Chain(conn))
	}
	for _, conn := range s.hiddenOf(-e) {
		s.setConnection(d, s.connection(d).Chain(conn))
	}
	s.setHidden(-b, append(s.hiddenSnapshot(-b), s.hiddenOf(e)...))
	s.setHidden(-d, append(s.hiddenSnapshot(-d), s.hiddenOf(-e)...))
	s.setHidden(e, nil)
	s.setHidden(-e, nil)

	diagonal := s.connection(d).Chain(s.connection(a))
	s.setConnection(e, diagonal)
	s.setConnection(-e, diagonal.Neg())

	if s.selfCheck {
		other := s.connection(b).Vector().Add(s.connection(c).Vector())
		if !diagonal.Vector().Neg().Equal(other) {
			klog.Errorf("flip of %v left an open quadrilateral: %v vs %v", e, diagonal.Vector().Neg(), other)
			panic(errors.Wrapf(ErrInconsistent, "flip of %v left an open quadrilateral", e))
		}
	}
}

// hiddenSnapshot returns a fresh slice holding e's hidden connections,
// so appends cannot grow into another slot's backing array.
func (s *Surface) hiddenSnapshot(e surf.HalfEdge) []flat.SaddleConnection {
	return append([]flat.SaddleConnection(nil), s.hiddenOf(e)...)
}
