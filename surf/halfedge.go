// File: halfedge.go
// Role: HalfEdge and Edge identifiers and their dense-index mapping.
// Determinism:
//   - Index() is a bijection onto 0..2n-1: positive orientations take the
//     even slots, negative the odd ones.

package surf

import "strconv"

// HalfEdge identifies an oriented edge. It is a nonzero signed integer;
// -e is the opposite orientation of the same physical edge. The zero
// value is not a valid half-edge.
type HalfEdge int

// Edge returns the unordered edge this half-edge belongs to.
func (e HalfEdge) Edge() Edge {
	if e < 0 {
		return Edge(-e)
	}
	return Edge(e)
}

// Index returns the dense storage slot of this half-edge:
// 2(|e|-1) for positive e, 2(|e|-1)+1 for negative e.
func (e HalfEdge) Index() int {
	if e > 0 {
		return 2 * (int(e) - 1)
	}
	return 2*(-int(e)-1) + 1
}

// String renders the half-edge as its signed integer.
func (e HalfEdge) String() string { return strconv.Itoa(int(e)) }

// Edge identifies an unoriented edge by its canonical positive name.
type Edge int

// Positive returns the canonical positive orientation.
func (d Edge) Positive() HalfEdge { return HalfEdge(d) }

// Negative returns the reversed orientation.
func (d Edge) Negative() HalfEdge { return HalfEdge(-d) }

// Index returns the dense storage slot of this edge: |d|-1.
func (d Edge) Index() int { return int(d) - 1 }

// String renders the edge as its positive name.
func (d Edge) String() string { return strconv.Itoa(int(d)) }
