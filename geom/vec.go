// File: vec.go
// Role: exact 2D vector type and orientation predicates.
// Determinism:
//   - All arithmetic is exact (big.Rat); predicates never consult an epsilon.
//   - String() renders coordinates in lowest terms, "(x, y)".

package geom

import (
	"fmt"
	"math/big"
)

// Orientation is the result of the counter-clockwise predicate CCW.
type Orientation int

// Orientation values, ordered so that -o flips the orientation.
const (
	// Clockwise means the second vector lies clockwise of the first.
	Clockwise Orientation = -1
	// Collinear means the two vectors span a line (or one is zero).
	Collinear Orientation = 0
	// CounterClockwise means the second vector lies counter-clockwise of the first.
	CounterClockwise Orientation = 1
)

// Vec is an exact vector in the plane. The zero value is the zero vector.
//
// Vec is immutable: every method returns a fresh value and never aliases
// the operands' coordinates into the result.
type Vec struct {
	x, y *big.Rat
}

// NewVec builds a vector from two rationals. nil coordinates are treated
// as zero. The inputs are copied, never retained.
func NewVec(x, y *big.Rat) Vec {
	v := Vec{x: new(big.Rat), y: new(big.Rat)}
	if x != nil {
		v.x.Set(x)
	}
	if y != nil {
		v.y.Set(y)
	}
	return v
}

// VecInt builds a vector with integer coordinates.
// Convenience for tests and for surfaces defined over the integers.
func VecInt(x, y int64) Vec {
	return Vec{x: new(big.Rat).SetInt64(x), y: new(big.Rat).SetInt64(y)}
}

// X returns a copy of the first coordinate.
func (v Vec) X() *big.Rat { return new(big.Rat).Set(v.xr()) }

// Y returns a copy of the second coordinate.
func (v Vec) Y() *big.Rat { return new(big.Rat).Set(v.yr()) }

// xr and yr tolerate the zero value of Vec.
func (v Vec) xr() *big.Rat {
	if v.x == nil {
		return new(big.Rat)
	}
	return v.x
}

func (v Vec) yr() *big.Rat {
	if v.y == nil {
		return new(big.Rat)
	}
	return v.y
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{
		x: new(big.Rat).Add(v.xr(), o.xr()),
		y: new(big.Rat).Add(v.yr(), o.yr()),
	}
}

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{
		x: new(big.Rat).Sub(v.xr(), o.xr()),
		y: new(big.Rat).Sub(v.yr(), o.yr()),
	}
}

// Neg returns -v.
func (v Vec) Neg() Vec {
	return Vec{
		x: new(big.Rat).Neg(v.xr()),
		y: new(big.Rat).Neg(v.yr()),
	}
}

// Cross returns the exact cross product v.x*o.y - v.y*o.x.
// Its sign is the CCW orientation from v to o.
func (v Vec) Cross(o Vec) *big.Rat {
	lhs := new(big.Rat).Mul(v.xr(), o.yr())
	rhs := new(big.Rat).Mul(v.yr(), o.xr())
	return lhs.Sub(lhs, rhs)
}

// Dot returns the exact dot product v.x*o.x + v.y*o.y.
func (v Vec) Dot(o Vec) *big.Rat {
	lhs := new(big.Rat).Mul(v.xr(), o.xr())
	rhs := new(big.Rat).Mul(v.yr(), o.yr())
	return lhs.Add(lhs, rhs)
}

// IsZero reports whether v is the zero vector.
func (v Vec) IsZero() bool {
	return v.xr().Sign() == 0 && v.yr().Sign() == 0
}

// Equal reports exact coordinate-wise equality.
func (v Vec) Equal(o Vec) bool {
	return v.xr().Cmp(o.xr()) == 0 && v.yr().Cmp(o.yr()) == 0
}

// CCW classifies the turn from v to o:
// CounterClockwise, Collinear, or Clockwise.
func (v Vec) CCW(o Vec) Orientation {
	return Orientation(v.Cross(o).Sign())
}

// String renders the vector as "(x, y)" with coordinates in lowest terms.
func (v Vec) String() string {
	return fmt.Sprintf("(%s, %s)", v.xr().RatString(), v.yr().RatString())
}
