// File: connection.go
// Role: SaddleConnection, an oriented straight segment between
//       singularities, remembered by its vector and its boundary
//       sectors on the uncollapsed surface.

package flat

import (
	"fmt"

	"github.com/katalvlaran/trisurf/geom"
	"github.com/katalvlaran/trisurf/surf"
)

// SaddleConnection is an oriented segment between two singularities of a
// translation surface. Source and Target name half-edges of the original
// surface: the segment leaves its start vertex in the angular sector
// counterclockwise from Source and arrives in the sector of Target.
// Sector names always refer to the uncollapsed surface, so they stay
// meaningful after the surface they decorate has renamed its edges.
type SaddleConnection struct {
	source surf.HalfEdge
	target surf.HalfEdge
	vector geom.Vec
}

// NewConnection assembles a connection from its parts.
func NewConnection(source, target surf.HalfEdge, vector geom.Vec) SaddleConnection {
	return SaddleConnection{source: source, target: target, vector: vector}
}

// ConnectionFromEdge is the connection traced by the half-edge e of t
// itself: it leaves in the sector of e and arrives in the sector of -e.
func ConnectionFromEdge(t *Triangulation, e surf.HalfEdge) SaddleConnection {
	return SaddleConnection{source: e, target: -e, vector: t.FromEdge(e)}
}

// Source returns the half-edge naming the outgoing sector.
func (c SaddleConnection) Source() surf.HalfEdge { return c.source }

// Target returns the half-edge naming the incoming sector.
func (c SaddleConnection) Target() surf.HalfEdge { return c.target }

// Vector returns the translation realized by the connection.
func (c SaddleConnection) Vector() geom.Vec { return c.vector }

// Neg is the same segment traversed backwards.
func (c SaddleConnection) Neg() SaddleConnection {
	return SaddleConnection{source: c.target, target: c.source, vector: c.vector.Neg()}
}

// Chain concatenates c with next, a connection starting where c ends.
// The result runs from c's source sector to next's target sector and
// translates by the sum of the two vectors.
func (c SaddleConnection) Chain(next SaddleConnection) SaddleConnection {
	return SaddleConnection{
		source: c.source,
		target: next.target,
		vector: c.vector.Add(next.vector),
	}
}

// Equal reports whether the two connections agree in sectors and vector.
func (c SaddleConnection) Equal(o SaddleConnection) bool {
	return c.source == o.source && c.target == o.target && c.vector.Equal(o.vector)
}

// Key is a collision-free rendering usable as a hash or map key; the
// struct itself is not comparable because exact vectors are not.
func (c SaddleConnection) Key() string {
	return fmt.Sprintf("%v|%v|%v", c.source, c.target, c.vector)
}

// String renders the connection for diagnostics.
func (c SaddleConnection) String() string {
	return fmt.Sprintf("%v from %v to %v", c.vector, c.source, c.target)
}
