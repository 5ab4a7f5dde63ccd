package collapsed_test

import (
	"fmt"

	"github.com/katalvlaran/trisurf/collapsed"
	"github.com/katalvlaran/trisurf/flat"
	"github.com/katalvlaran/trisurf/geom"
	"github.com/katalvlaran/trisurf/surf"
)

// ExampleNew collapses the square torus along its diagonal direction.
// Surface: the unit square with opposite sides identified, cut along the
// diagonal 3 = (-1, -1).
func ExampleNew() {
	s, _ := surf.FromFaces([][3]surf.HalfEdge{{1, 2, 3}, {-1, -2, -3}})
	torus, _ := flat.New(s, []geom.Vec{
		geom.VecInt(1, 0), geom.VecInt(0, 1), geom.VecInt(-1, -1),
	})

	c, _ := collapsed.New(torus, geom.VecInt(1, 1))

	fmt.Println(c.EdgeCount())
	crossed, _ := c.Cross(1)
	for _, conn := range crossed {
		fmt.Println(conn)
	}
	// Output:
	// 1
	// (-1, -1) from 3 to -3
}

// ExampleSurface_Flip flips an edge whose new diagonal is vertical; the
// cascade collapses it immediately.
func ExampleSurface_Flip() {
	s, _ := surf.FromFaces([][3]surf.HalfEdge{
		{1, 2, -3}, {3, -1, -5}, {4, 5, -6}, {6, -4, -2},
	})
	squares, _ := flat.New(s, []geom.Vec{
		geom.VecInt(1, 0), geom.VecInt(0, 1), geom.VecInt(1, 1),
		geom.VecInt(1, 0), geom.VecInt(0, 1), geom.VecInt(1, 1),
	})

	c, _ := collapsed.New(squares, geom.VecInt(-1, 1))
	fmt.Println(c.EdgeCount())

	_ = c.Flip(3)
	fmt.Println(c.EdgeCount())
	// Output:
	// 6
	// 3
}
