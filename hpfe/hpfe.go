package hpfe

import (
	"fmt"

	"github.com/hpfem/hpbasis/HP1D"
	"github.com/hpfem/hpbasis/HP2D"
	"github.com/hpfem/hpbasis/refel"
	"github.com/hpfem/hpbasis/utils"
)

/*
ScalarShapeFunctions is the common contract of the hierarchic scalar bases
on all reference elements. Evaluation takes reference coordinates as a
Dimension x Npts matrix, one point per column, and returns one row per
shape function. Gradients return 2*Npts columns for the 2D kinds, the x
and y derivatives of point i in columns 2i and 2i+1.

Implementations panic with errors wrapping ErrInvalidArgument,
ErrUnsupportedOperation or ErrNumericalDegeneracy from the refel package;
they never return garbage on bad input.
*/
type ScalarShapeFunctions interface {
	RefEl() refel.RefEl
	Degree() int
	NumShapeFunctions() int
	NumShapeFunctionsOnSubEntity(codim int) int
	EvalShapeFunctions(refcoords utils.Matrix) utils.Matrix
	GradShapeFunctions(refcoords utils.Matrix) utils.Matrix
	EvaluationNodes() utils.Matrix
	NumEvaluationNodes() int
	NodalValuesToDofs(nodevals utils.Vector) utils.Vector
}

// New builds the hierarchic basis of the given degree on a reference
// element. The orientation slice carries the relative orientation of each
// edge and must have exactly refEl.NumEdges() entries, so Point and
// Segment take an empty slice.
func New(re refel.RefEl, degree int, orient []refel.Orientation) ScalarShapeFunctions {
	if degree < 1 {
		panic(fmt.Errorf("polynomial degree must be at least 1, have %d: %w",
			degree, refel.ErrInvalidArgument))
	}
	if len(orient) != re.NumEdges() {
		panic(fmt.Errorf("%v needs %d edge orientations, have %d: %w",
			re, re.NumEdges(), len(orient), refel.ErrInvalidArgument))
	}
	switch re {
	case refel.Point:
		return HP1D.NewPointBasis(degree)
	case refel.Segment:
		return HP1D.NewSegmentBasis(degree)
	case refel.Triangle:
		var o [3]refel.Orientation
		copy(o[:], orient)
		return HP2D.NewTriangleBasis(degree, o)
	case refel.Quad:
		var o [4]refel.Orientation
		copy(o[:], orient)
		return HP2D.NewQuadBasis(degree, o)
	}
	panic(fmt.Errorf("unknown reference element kind %d: %w",
		uint8(re), refel.ErrInvalidArgument))
}

// DofCounts describes how many degrees of freedom a basis attaches to each
// single sub-entity of its reference element. A dof handler multiplies
// these by the entity counts of the mesh; no global numbering happens here.
type DofCounts struct {
	PerNode  int // dofs on each vertex
	PerEdge  int // dofs on each edge, zero for the 0D and 1D kinds
	Interior int // dofs on the cell itself
	Total    int
}

// DofLayout reports the dof counts of the hierarchic basis of the given
// degree without constructing it. The single dof of the point element
// counts as interior.
func DofLayout(re refel.RefEl, degree int) (dc DofCounts) {
	if degree < 1 {
		panic(fmt.Errorf("polynomial degree must be at least 1, have %d: %w",
			degree, refel.ErrInvalidArgument))
	}
	switch re {
	case refel.Point:
		dc = DofCounts{Interior: 1, Total: 1}
	case refel.Segment:
		dc = DofCounts{PerNode: 1, Interior: degree - 1, Total: degree + 1}
	case refel.Triangle:
		interior := 0
		if degree > 2 {
			interior = (degree - 2) * (degree - 1) / 2
		}
		dc = DofCounts{
			PerNode:  1,
			PerEdge:  degree - 1,
			Interior: interior,
			Total:    (degree + 1) * (degree + 2) / 2,
		}
	case refel.Quad:
		dc = DofCounts{
			PerNode:  1,
			PerEdge:  degree - 1,
			Interior: (degree - 1) * (degree - 1),
			Total:    (degree + 1) * (degree + 1),
		}
	default:
		panic(fmt.Errorf("unknown reference element kind %d: %w",
			uint8(re), refel.ErrInvalidArgument))
	}
	return
}
