package surf_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trisurf/surf"
)

// torus is the one-vertex square torus triangulated along a diagonal:
// faces (1 2 3)(-1 -2 -3), vertex cycle (1 -3 2 -1 3 -2).
func torus(t *testing.T) *surf.Surface {
	t.Helper()
	s, err := surf.FromFaces([][3]surf.HalfEdge{{1, 2, 3}, {-1, -2, -3}})
	require.NoError(t, err)
	return s
}

// doubleTorus glues two unit squares side by side, each cut along a
// diagonal: faces (1 2 -3)(3 -1 -5)(4 5 -6)(6 -4 -2).
func doubleTorus(t *testing.T) *surf.Surface {
	t.Helper()
	s, err := surf.FromFaces([][3]surf.HalfEdge{
		{1, 2, -3}, {3, -1, -5}, {4, 5, -6}, {6, -4, -2},
	})
	require.NoError(t, err)
	return s
}

func TestFromFaces_Torus(t *testing.T) {
	s := torus(t)

	require.Equal(t, 3, s.EdgeCount())
	require.NoError(t, s.Validate())

	require.Equal(t, surf.HalfEdge(2), s.NextInFace(1))
	require.Equal(t, surf.HalfEdge(3), s.NextInFace(2))
	require.Equal(t, surf.HalfEdge(1), s.NextInFace(3))
	require.Equal(t, surf.HalfEdge(3), s.PreviousInFace(1))
	require.Equal(t, surf.HalfEdge(-2), s.NextInFace(-1))

	// The torus has a single vertex with cycle (1 -3 2 -1 3 -2).
	require.Equal(t, surf.HalfEdge(-3), s.NextAtVertex(1))
	require.Equal(t, surf.HalfEdge(2), s.NextAtVertex(-3))
	require.Equal(t, surf.HalfEdge(-1), s.NextAtVertex(2))
	require.Equal(t, surf.HalfEdge(3), s.NextAtVertex(-1))
	require.Equal(t, surf.HalfEdge(-2), s.NextAtVertex(3))
	require.Equal(t, surf.HalfEdge(1), s.NextAtVertex(-2))
	require.Equal(t, surf.HalfEdge(-2), s.PreviousAtVertex(1))
}

func TestSurface_PreviousInvertsNext(t *testing.T) {
	// The double torus has no mirror symmetry, so the inverses cannot be
	// read off the forward permutations entry-wise.
	s := doubleTorus(t)

	for _, e := range s.HalfEdges() {
		require.Equal(t, e, s.NextInFace(s.PreviousInFace(e)), "face inverse at %v", e)
		require.Equal(t, e, s.PreviousInFace(s.NextInFace(e)), "face inverse at %v", e)
		require.Equal(t, e, s.NextAtVertex(s.PreviousAtVertex(e)), "vertex inverse at %v", e)
		require.Equal(t, e, s.PreviousAtVertex(s.NextAtVertex(e)), "vertex inverse at %v", e)
	}

	// Spot values from the face cycles (1 2 -3)(3 -1 -5)(4 5 -6)(6 -4 -2).
	require.Equal(t, surf.HalfEdge(1), s.PreviousInFace(2))
	require.Equal(t, surf.HalfEdge(-4), s.PreviousInFace(-2))
	require.Equal(t, surf.HalfEdge(-5), s.PreviousInFace(3))
}

func TestFromVertexCycles_AgreesWithFromFaces(t *testing.T) {
	fromCycles, err := surf.FromVertexCycles([][]surf.HalfEdge{{1, -3, 2, -1, 3, -2}})
	require.NoError(t, err)

	fromFaces := torus(t)
	for _, e := range fromFaces.HalfEdges() {
		require.Equal(t, fromFaces.NextInFace(e), fromCycles.NextInFace(e))
		require.Equal(t, fromFaces.NextAtVertex(e), fromCycles.NextAtVertex(e))
	}
}

func TestFromFaces_RejectsBadInput(t *testing.T) {
	_, err := surf.FromFaces([][3]surf.HalfEdge{{1, 2, 3}, {-1, -2, 3}})
	require.ErrorIs(t, err, surf.ErrBadPermutation)

	_, err = surf.FromFaces([][3]surf.HalfEdge{{1, 2, 3}})
	require.ErrorIs(t, err, surf.ErrBadPermutation)

	_, err = surf.FromFaces([][3]surf.HalfEdge{{1, 0, -1}})
	require.ErrorIs(t, err, surf.ErrUnknownHalfEdge)
}

func TestFromVertexCycles_RejectsNonTriangles(t *testing.T) {
	// The square torus without a diagonal: its single face is a
	// 4-cycle.
	_, err := surf.FromVertexCycles([][]surf.HalfEdge{{1, 2, -1, -2}})
	require.ErrorIs(t, err, surf.ErrNotTriangulated)
}

func TestSurface_AtSameVertex(t *testing.T) {
	s := doubleTorus(t)

	// The double torus has two vertices:
	// (1 3 2 -4 -6 -2) and (-1 -3 -5 4 6 5).
	require.True(t, s.AtSameVertex(1, 2))
	require.True(t, s.AtSameVertex(1, -6))
	require.True(t, s.AtSameVertex(-1, 4))
	require.False(t, s.AtSameVertex(1, -1))
	require.False(t, s.AtSameVertex(2, 5))
}

func TestSurface_HalfEdgeOrder(t *testing.T) {
	s := torus(t)
	require.Equal(t,
		[]surf.HalfEdge{1, -1, 2, -2, 3, -3},
		s.HalfEdges())
	require.Equal(t, []surf.Edge{1, 2, 3}, s.Edges())
}

func TestSurface_Known(t *testing.T) {
	s := torus(t)
	require.True(t, s.Known(3))
	require.True(t, s.Known(-3))
	require.False(t, s.Known(4))
	require.False(t, s.Known(0))
}

func TestSurface_CloneIsIndependent(t *testing.T) {
	s := torus(t)
	c := s.Clone()

	require.NoError(t, s.Flip(3))
	require.Equal(t, surf.HalfEdge(1), c.NextInFace(3))
	require.NoError(t, c.Validate())
}

func TestSurface_String(t *testing.T) {
	require.Equal(t, "(1 2 3)(-1 -2 -3)", torus(t).String())
}
