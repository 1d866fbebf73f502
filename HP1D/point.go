package HP1D

import (
	"fmt"

	"github.com/hpfem/hpbasis/refel"
	"github.com/hpfem/hpbasis/utils"
)

// PointBasis is the basis on the zero dimensional reference element: a
// single constant shape function. It closes the recursion over sub-entities
// for the higher dimensional bases.
type PointBasis struct {
	P int // Nominal degree, a point carries no polynomial structure
}

func NewPointBasis(P int) *PointBasis {
	return &PointBasis{P: P}
}

func (pb *PointBasis) RefEl() refel.RefEl { return refel.Point }

func (pb *PointBasis) Degree() int { return pb.P }

func (pb *PointBasis) NumShapeFunctions() int { return 1 }

func (pb *PointBasis) NumShapeFunctionsOnSubEntity(codim int) int {
	if codim != 0 {
		panic(fmt.Errorf("codim %d out of range for point: %w",
			codim, refel.ErrInvalidArgument))
	}
	return 1
}

// EvalShapeFunctions returns the constant shape function. A point has no
// coordinates, so only the empty refcoords matrix is accepted and it stands
// for the single evaluation site.
func (pb *PointBasis) EvalShapeFunctions(refcoords utils.Matrix) (R utils.Matrix) {
	if !refcoords.IsEmpty() {
		panic(fmt.Errorf("point refcoords must be empty: %w", refel.ErrInvalidArgument))
	}
	R = utils.NewMatrix(1, 1)
	R.Set(0, 0, 1)
	return
}

func (pb *PointBasis) GradShapeFunctions(refcoords utils.Matrix) utils.Matrix {
	panic(fmt.Errorf("gradients are not defined on a point: %w",
		refel.ErrUnsupportedOperation))
}

// EvaluationNodes returns the empty coordinate matrix, the point itself is
// the single evaluation node.
func (pb *PointBasis) EvaluationNodes() utils.Matrix { return utils.Matrix{} }

func (pb *PointBasis) NumEvaluationNodes() int { return 1 }

// NodalValuesToDofs is the identity on a point, the single dof equals the
// value at the point.
func (pb *PointBasis) NodalValuesToDofs(nodevals utils.Vector) utils.Vector {
	if nodevals.Len() != 1 {
		panic(fmt.Errorf("expected 1 nodal value, have %d: %w",
			nodevals.Len(), refel.ErrInvalidArgument))
	}
	return nodevals.Copy()
}
