// File: map.go
// Role: Map[V], a per-half-edge value store that stays consistent across
//       flips, collapses, swaps and erasures of its surface.
// Storage: a dense slice indexed by surf.HalfEdge.Index — O(1) access,
//          no hashing, truncation is a reslice.

package tracked

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/trisurf/surf"
)

// ErrNotFound is returned by Get when the half-edge is not (or no
// longer) part of the tracked surface.
var ErrNotFound = errors.New("tracked: half-edge not stored")

// FlipFunc updates a Map after its surface flipped the diagonal e. It
// runs with the new combinatorics already in place.
type FlipFunc[V any] func(m *Map[V], e surf.HalfEdge)

// CollapseFunc updates a Map right before its surface collapses the
// vertical edge of e. It runs against the untouched combinatorics; the
// renames and erasures that follow are handled by the Map itself.
type CollapseFunc[V any] func(m *Map[V], e surf.Edge)

// Map stores one V per half-edge of a surface and follows the surface
// through its mutations.
type Map[V any] struct {
	surface *surf.Surface
	values  []V

	onFlip     FlipFunc[V]
	onCollapse CollapseFunc[V]
}

// New builds a Map over surface, initializing every half-edge with
// init, and registers it with the surface's mutation hooks. onFlip and
// onCollapse supply the domain-specific updates; either may be nil when
// the caller updates the Map by hand around mutations.
// Complexity: O(n) in the number of half-edges.
func New[V any](surface *surf.Surface, init func(surf.HalfEdge) V, onFlip FlipFunc[V], onCollapse CollapseFunc[V]) *Map[V] {
	m := &Map[V]{
		surface:    surface,
		values:     make([]V, 2*surface.EdgeCount()),
		onFlip:     onFlip,
		onCollapse: onCollapse,
	}
	for _, h := range surface.HalfEdges() {
		m.values[h.Index()] = init(h)
	}

	surface.OnAfterFlip(func(e surf.HalfEdge) {
		if m.onFlip != nil {
			m.onFlip(m, e)
		}
	})
	surface.OnBeforeCollapse(func(e surf.Edge) {
		if m.onCollapse != nil {
			m.onCollapse(m, e)
		}
	})
	surface.OnBeforeSwap(func(a, b surf.HalfEdge) {
		m.values[a.Index()], m.values[b.Index()] = m.values[b.Index()], m.values[a.Index()]
	})
	surface.OnBeforeErase(func(doomed []surf.Edge) {
		m.values = m.values[:len(m.values)-2*len(doomed)]
	})
	return m
}

// Get returns the value stored for e.
func (m *Map[V]) Get(e surf.HalfEdge) (V, error) {
	if !m.surface.Known(e) {
		var zero V
		return zero, errors.Wrapf(ErrNotFound, "get %v", e)
	}
	return m.values[e.Index()], nil
}

// Set stores v for e.
func (m *Map[V]) Set(e surf.HalfEdge, v V) error {
	if !m.surface.Known(e) {
		return errors.Wrapf(ErrNotFound, "set %v", e)
	}
	m.values[e.Index()] = v
	return nil
}

// Swap exchanges the values stored for a and b.
func (m *Map[V]) Swap(a, b surf.HalfEdge) error {
	if !m.surface.Known(a) || !m.surface.Known(b) {
		return errors.Wrapf(ErrNotFound, "swap %v and %v", a, b)
	}
	m.values[a.Index()], m.values[b.Index()] = m.values[b.Index()], m.values[a.Index()]
	return nil
}

// Rekey moves values between half-edges in one atomic step: for every
// half-edge h with translate(h) = (t, true), the value previously stored
// at h is afterwards found at t. Half-edges reported false keep their
// value.
func (m *Map[V]) Rekey(translate func(surf.HalfEdge) (surf.HalfEdge, bool)) {
	moved := make([]V, len(m.values))
	copy(moved, m.values)
	for _, h := range m.surface.HalfEdges() {
		if t, ok := translate(h); ok {
			moved[t.Index()] = m.values[h.Index()]
		}
	}
	m.values = moved
}

// Equal reports whether m and o store equal values for the same
// half-edges, compared by eq. Intended for tests.
func (m *Map[V]) Equal(o *Map[V], eq func(a, b V) bool) bool {
	if len(m.values) != len(o.values) {
		return false
	}
	for i := range m.values {
		if !eq(m.values[i], o.values[i]) {
			return false
		}
	}
	return true
}

// Keys lists the tracked half-edges in the surface's canonical order.
func (m *Map[V]) Keys() []surf.HalfEdge {
	return m.surface.HalfEdges()
}

// Surface returns the surface whose mutations this Map follows.
func (m *Map[V]) Surface() *surf.Surface {
	return m.surface
}
