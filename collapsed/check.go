// File: check.go
// Role: post-mutation invariant verification. Violations are bugs, so
//       they panic with ErrInconsistent rather than being returned.

package collapsed

import (
	"math/big"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/trisurf/flat"
	"github.com/katalvlaran/trisurf/surf"
)

// SelfCheck is the construction-time default for full invariant
// verification after every mutation. It is on by default; long-running
// pipelines that have earned trust in their inputs may turn it off, or
// override it per surface with WithSelfCheck.
var SelfCheck = true

// check verifies the surface's invariants: every surviving triangle
// closes up, the hidden connections account for exactly the area lost to
// collapsing, and every stored connection names sectors of the original
// surface. A violation panics with ErrInconsistent.
func (s *Surface) check() {
	if !s.selfCheck {
		return
	}

	for _, e := range s.shadow.HalfEdges() {
		if s.shadow.Degenerate(e) {
			continue
		}
		sum := s.connection(e).Vector().
			Add(s.connection(s.shadow.NextInFace(e)).Vector()).
			Add(s.connection(s.shadow.PreviousInFace(e)).Vector())
		if !sum.IsZero() {
			klog.Errorf("face of %v does not close up: %v", e, sum)
			panic(errors.Wrapf(ErrInconsistent, "face of %v does not close up", e))
		}
	}

	// The triangles plus the hidden connections must account for the
	// full area of the uncollapsed surface.
	area := new(big.Rat)
	three := new(big.Rat).SetInt64(3)
	for _, e := range s.shadow.HalfEdges() {
		area.Add(area, s.connection(e).Vector().Cross(s.connection(s.shadow.NextInFace(e)).Vector()))
		for _, conn := range s.hiddenOf(e) {
			contribution := new(big.Rat).Mul(three, conn.Vector().Cross(s.connection(e).Vector()))
			area.Add(area, contribution)
		}
	}
	if area.Cmp(s.original.Area()) != 0 {
		klog.Errorf("surface area drifted: %v collapsed vs %v originally", area, s.original.Area())
		panic(errors.Wrap(ErrInconsistent, "surface area drifted"))
	}

	for _, e := range s.shadow.HalfEdges() {
		s.checkConnection(e, s.connection(e))
		for _, conn := range s.hiddenOf(e) {
			s.checkConnection(e, conn)
			if !s.vertical.IsParallel(conn.Vector()) {
				klog.Errorf("half-edge %v hides non-vertical connection %v", e, conn)
				panic(errors.Wrapf(ErrInconsistent, "half-edge %v hides non-vertical connection", e))
			}
		}
	}
}

// checkConnection verifies that conn's sectors name half-edges of the
// original, uncollapsed surface; renames never touch stored sectors.
func (s *Surface) checkConnection(e surf.HalfEdge, conn flat.SaddleConnection) {
	uncollapsed := s.original.Combinatorial()
	if !uncollapsed.Known(conn.Source()) || !uncollapsed.Known(conn.Target()) {
		klog.Errorf("connection %v stored at %v names unknown sectors", conn, e)
		panic(errors.Wrapf(ErrInconsistent, "connection stored at %v names unknown sectors", e))
	}
	if conn.Vector().IsZero() {
		klog.Errorf("connection %v stored at %v has zero length", conn, e)
		panic(errors.Wrapf(ErrInconsistent, "connection stored at %v has zero length", e))
	}
}
