// File: vertical.go
// Role: the fixed "vertical" direction and the component predicates the
//       collapse logic is phrased in.
// Conventions:
//   - Perpendicular(u) > 0 when u points to the right of the direction
//     (for direction (0,1) that is the positive x half-plane).
//   - Parallel(u) > 0 when u points along the direction.

package geom

import (
	"math/big"

	"github.com/pkg/errors"
)

// ErrZeroDirection is returned when a Vertical is built from the zero vector.
var ErrZeroDirection = errors.New("geom: zero direction vector")

// Vertical is a fixed nonzero direction in the plane. It decomposes any
// vector into a component along the direction and one perpendicular to
// it, and decides exact parallelism.
type Vertical struct {
	direction Vec
}

// NewVertical fixes a direction. The zero vector is rejected with
// ErrZeroDirection: a degenerate direction cannot classify anything.
func NewVertical(direction Vec) (Vertical, error) {
	if direction.IsZero() {
		return Vertical{}, ErrZeroDirection
	}
	return Vertical{direction: NewVec(direction.xr(), direction.yr())}, nil
}

// Direction returns the underlying direction vector.
func (t Vertical) Direction() Vec { return t.direction }

// Perpendicular returns the (scaled) perpendicular component of u:
// the cross product of u with the direction. Zero iff u is parallel.
func (t Vertical) Perpendicular(u Vec) *big.Rat {
	return u.Cross(t.direction)
}

// Parallel returns the (scaled) component of u along the direction:
// the dot product of u with the direction.
func (t Vertical) Parallel(u Vec) *big.Rat {
	return u.Dot(t.direction)
}

// IsParallel reports whether u is exactly parallel to the direction.
// The zero vector counts as parallel.
func (t Vertical) IsParallel(u Vec) bool {
	return t.Perpendicular(u).Sign() == 0
}

// String renders the vertical by its direction.
func (t Vertical) String() string { return "vertical " + t.direction.String() }
