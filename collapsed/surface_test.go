package collapsed_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trisurf/collapsed"
	"github.com/katalvlaran/trisurf/flat"
	"github.com/katalvlaran/trisurf/geom"
	"github.com/katalvlaran/trisurf/surf"
)

// squareTorus is the unit square torus cut along the diagonal
// 3 = (-1, -1).
func squareTorus(t *testing.T) *flat.Triangulation {
	t.Helper()
	s, err := surf.FromFaces([][3]surf.HalfEdge{{1, 2, 3}, {-1, -2, -3}})
	require.NoError(t, err)
	f, err := flat.New(s, []geom.Vec{
		geom.VecInt(1, 0), geom.VecInt(0, 1), geom.VecInt(-1, -1),
	})
	require.NoError(t, err)
	return f
}

// twoSquares glues two unit squares side by side, each cut along its
// diagonal.
func twoSquares(t *testing.T) *flat.Triangulation {
	t.Helper()
	s, err := surf.FromFaces([][3]surf.HalfEdge{
		{1, 2, -3}, {3, -1, -5}, {4, 5, -6}, {6, -4, -2},
	})
	require.NoError(t, err)
	f, err := flat.New(s, []geom.Vec{
		geom.VecInt(1, 0), geom.VecInt(0, 1), geom.VecInt(1, 1),
		geom.VecInt(1, 0), geom.VecInt(0, 1), geom.VecInt(1, 1),
	})
	require.NoError(t, err)
	return f
}

func TestNew_RejectsZeroDirection(t *testing.T) {
	_, err := collapsed.New(squareTorus(t), geom.VecInt(0, 0))
	require.ErrorIs(t, err, collapsed.ErrInvalidArgument)
}

func TestNew_NothingVerticalIsIdempotent(t *testing.T) {
	original := twoSquares(t)
	s, err := collapsed.New(original, geom.VecInt(1, 2))
	require.NoError(t, err)

	require.Equal(t, 6, s.EdgeCount())
	for _, e := range s.Combinatorial().HalfEdges() {
		v, err := s.FromEdge(e)
		require.NoError(t, err)
		require.True(t, v.Equal(original.FromEdge(e)))

		crossed, err := s.Cross(e)
		require.NoError(t, err)
		require.Empty(t, crossed)
	}
}

func TestNew_SquareTorusCollapsesToFoldedEdge(t *testing.T) {
	s, err := collapsed.New(squareTorus(t), geom.VecInt(1, 1))
	require.NoError(t, err)

	// Only the diagonal is parallel to (1, 1); collapsing it merges the
	// two side edges into a single folded one.
	require.Equal(t, 1, s.EdgeCount())
	require.True(t, s.Combinatorial().Degenerate(1))

	v, err := s.FromEdge(1)
	require.NoError(t, err)
	require.True(t, v.Equal(geom.VecInt(0, -1)))
	v, err = s.FromEdge(-1)
	require.NoError(t, err)
	require.True(t, v.Equal(geom.VecInt(0, 1)))

	// Each orientation sweeps over one copy of the collapsed diagonal;
	// the hidden connections keep their sectors on the original surface.
	crossed, err := s.Cross(1)
	require.NoError(t, err)
	require.Len(t, crossed, 1)
	require.Equal(t, surf.HalfEdge(3), crossed[0].Source())
	require.Equal(t, surf.HalfEdge(-3), crossed[0].Target())
	require.True(t, crossed[0].Vector().Equal(geom.VecInt(-1, -1)))

	crossed, err = s.Cross(-1)
	require.NoError(t, err)
	require.Len(t, crossed, 1)
	require.Equal(t, surf.HalfEdge(-3), crossed[0].Source())
	require.True(t, crossed[0].Vector().Equal(geom.VecInt(1, 1)))
}

func TestNew_TwoVerticalEdgesCollapse(t *testing.T) {
	s, err := collapsed.New(twoSquares(t), geom.VecInt(0, 1))
	require.NoError(t, err)

	// Both upward sides collapse; what remains are two folded edges.
	require.Equal(t, 2, s.EdgeCount())
	for _, e := range s.Combinatorial().HalfEdges() {
		require.True(t, s.Combinatorial().Degenerate(e))

		crossed, err := s.Cross(e)
		require.NoError(t, err)
		require.NotEmpty(t, crossed)
		for _, c := range crossed {
			require.True(t, geom.VecInt(0, 1).Cross(c.Vector()).Sign() == 0,
				"hidden connection %v is not vertical", c)
		}
	}
}

func TestSurface_UncollapsedIsUntouched(t *testing.T) {
	s, err := collapsed.New(squareTorus(t), geom.VecInt(1, 1))
	require.NoError(t, err)

	require.Equal(t, 3, s.Uncollapsed().Combinatorial().EdgeCount())
	require.True(t, s.Uncollapsed().FromEdge(3).Equal(geom.VecInt(-1, -1)))
	require.True(t, s.Vertical().Direction().Equal(geom.VecInt(1, 1)))
}

func TestSurface_QueriesRejectUnknownHalfEdges(t *testing.T) {
	s, err := collapsed.New(squareTorus(t), geom.VecInt(1, 1))
	require.NoError(t, err)

	_, err = s.FromEdge(3)
	require.ErrorIs(t, err, collapsed.ErrNotFound)
	_, err = s.Cross(0)
	require.ErrorIs(t, err, collapsed.ErrNotFound)
	_, err = s.Connection(-2)
	require.ErrorIs(t, err, collapsed.ErrNotFound)
}

func TestCollapse_RejectsNonVerticalEdge(t *testing.T) {
	s, err := collapsed.New(twoSquares(t), geom.VecInt(1, 2))
	require.NoError(t, err)

	_, _, err = s.Collapse(1)
	require.ErrorIs(t, err, collapsed.ErrInvalidArgument)
}

func TestTurn_EmptyBetweenAdjacentSectors(t *testing.T) {
	s, err := collapsed.New(twoSquares(t), geom.VecInt(1, 2))
	require.NoError(t, err)

	// 1 and 2 start at the same vertex; nothing vertical lies between.
	conns, err := s.Turn(1, 2)
	require.NoError(t, err)
	require.Empty(t, conns)
}

func TestTurn_RequiresSharedVertex(t *testing.T) {
	s, err := collapsed.New(twoSquares(t), geom.VecInt(1, 2))
	require.NoError(t, err)

	_, err = s.Turn(1, -1)
	require.ErrorIs(t, err, collapsed.ErrInvalidArgument)
}

func TestInSector(t *testing.T) {
	s, err := collapsed.New(twoSquares(t), geom.VecInt(1, 2))
	require.NoError(t, err)

	// The sector of 1 spans from (1, 0) inclusive to (1, 1) exclusive.
	in, err := s.InSector(1, geom.VecInt(2, 1))
	require.NoError(t, err)
	require.True(t, in)

	in, err = s.InSector(1, geom.VecInt(1, 0))
	require.NoError(t, err)
	require.True(t, in)

	in, err = s.InSector(1, geom.VecInt(1, 1))
	require.NoError(t, err)
	require.False(t, in)

	in, err = s.InSector(1, geom.VecInt(1, 2))
	require.NoError(t, err)
	require.False(t, in)

	in, err = s.InSector(1, geom.VecInt(-1, 0))
	require.NoError(t, err)
	require.False(t, in)
}

func TestSurface_String(t *testing.T) {
	s, err := collapsed.New(squareTorus(t), geom.VecInt(1, 1))
	require.NoError(t, err)

	rendered := s.String()
	require.Contains(t, rendered, "collapsed along vertical (1, 1)")
	require.Contains(t, rendered, "hiding 1")
}

func TestNew_WithSelfCheckDisabled(t *testing.T) {
	s, err := collapsed.New(squareTorus(t), geom.VecInt(1, 1), collapsed.WithSelfCheck(false))
	require.NoError(t, err)
	require.Equal(t, 1, s.EdgeCount())

	// The surface is the same one the checked construction produces.
	checked, err := collapsed.New(squareTorus(t), geom.VecInt(1, 1), collapsed.WithSelfCheck(true))
	require.NoError(t, err)
	got, err := s.FromEdge(1)
	require.NoError(t, err)
	want, err := checked.FromEdge(1)
	require.NoError(t, err)
	require.True(t, got.Equal(want))
}

func TestTurn_WithSelfCheckDisabled(t *testing.T) {
	s, err := collapsed.New(twoSquares(t), geom.VecInt(-1, 1), collapsed.WithSelfCheck(false))
	require.NoError(t, err)
	require.NoError(t, s.Flip(3))

	// Without self-checks the duplicate accounting is skipped but the
	// collected connections are the same.
	conns, err := s.Turn(1, -3)
	require.NoError(t, err)
	require.Len(t, conns, 2)
}
