package HP1D

import (
	"fmt"

	"github.com/hpfem/hpbasis/refel"
	"github.com/hpfem/hpbasis/utils"
)

/*
SegmentBasis holds the hierarchic shape functions of degree P on the unit
segment [0,1], following the construction in
https://arxiv.org/pdf/1504.03025.pdf

The first two shape functions are the hat functions attached to the
endpoints, the remaining P-1 interior functions are integrated Legendre
polynomials, which vanish at both endpoints. Raising the degree appends
shape functions without altering the existing ones, so coefficient vectors
for degree P embed into degree P+1.
*/
type SegmentBasis struct {
	P         int          // Polynomial degree
	Np        int          // Total number of shape functions, P+1
	EvalNodes utils.Matrix // 1 x Np interpolation nodes
	V         utils.Matrix // Np x Np shape function values at EvalNodes
}

func NewSegmentBasis(P int) (sb *SegmentBasis) {
	if P < 1 {
		panic(fmt.Errorf("polynomial degree must be at least 1, have %d: %w",
			P, refel.ErrInvalidArgument))
	}
	sb = &SegmentBasis{
		P:  P,
		Np: P + 1,
	}
	sb.EvalNodes = sb.computeEvaluationNodes()
	sb.V = sb.EvalShapeFunctions(sb.EvalNodes)
	sb.EvalNodes.SetReadOnly("EvalNodes")
	sb.V.SetReadOnly("V")
	return
}

func (sb *SegmentBasis) RefEl() refel.RefEl { return refel.Segment }

func (sb *SegmentBasis) Degree() int { return sb.P }

func (sb *SegmentBasis) NumShapeFunctions() int { return sb.Np }

// NumShapeFunctionsOnSubEntity returns P-1 for the interior of the segment
// (codim 0) and one shape function per endpoint (codim 1).
func (sb *SegmentBasis) NumShapeFunctionsOnSubEntity(codim int) int {
	switch codim {
	case 0:
		return sb.P - 1
	case 1:
		return 1
	}
	panic(fmt.Errorf("codim %d out of range for segment: %w",
		codim, refel.ErrInvalidArgument))
}

// EvalShapeFunctions evaluates all shape functions at the point coordinates
// in refcoords, one column per point. Row i of the result holds shape
// function i at every point.
func (sb *SegmentBasis) EvalShapeFunctions(refcoords utils.Matrix) (R utils.Matrix) {
	var (
		nr, Npts = refcoords.Dims()
	)
	if nr != 1 {
		panic(fmt.Errorf("segment refcoords must be a single row, have %d rows: %w",
			nr, refel.ErrInvalidArgument))
	}
	R = utils.NewMatrix(sb.Np, Npts)
	for j := 0; j < Npts; j++ {
		x := refcoords.At(0, j)
		// Vertex shape functions
		R.Set(0, j, 1-x)
		R.Set(1, j, x)
		// Interior shape functions
		for i := 0; i < sb.P-1; i++ {
			R.Set(i+2, j, LegendreIntegral(i+2, x))
		}
	}
	return
}

// GradShapeFunctions evaluates the first derivative of every shape function
// at the point coordinates in refcoords. The derivative of the integrated
// Legendre polynomial of degree n is the Legendre polynomial of degree n-1.
func (sb *SegmentBasis) GradShapeFunctions(refcoords utils.Matrix) (R utils.Matrix) {
	var (
		nr, Npts = refcoords.Dims()
	)
	if nr != 1 {
		panic(fmt.Errorf("segment refcoords must be a single row, have %d rows: %w",
			nr, refel.ErrInvalidArgument))
	}
	R = utils.NewMatrix(sb.Np, Npts)
	for j := 0; j < Npts; j++ {
		x := refcoords.At(0, j)
		R.Set(0, j, -1)
		R.Set(1, j, 1)
		for i := 0; i < sb.P-1; i++ {
			R.Set(i+2, j, LegendreEval(i+1, x))
		}
	}
	return
}

func (sb *SegmentBasis) EvaluationNodes() utils.Matrix { return sb.EvalNodes }

func (sb *SegmentBasis) NumEvaluationNodes() int { return sb.Np }

// NodalValuesToDofs computes the coefficient vector whose interpolant takes
// the given values at the evaluation nodes by solving V^T c = nodevals.
func (sb *SegmentBasis) NodalValuesToDofs(nodevals utils.Vector) (C utils.Vector) {
	if nodevals.Len() != sb.Np {
		panic(fmt.Errorf("expected %d nodal values, have %d: %w",
			sb.Np, nodevals.Len(), refel.ErrInvalidArgument))
	}
	var err error
	if C, err = sb.V.Transpose().QRSolve(nodevals); err != nil {
		panic(fmt.Errorf("segment degree %d interpolation: %v: %w",
			sb.P, err, refel.ErrNumericalDegeneracy))
	}
	return
}

// computeEvaluationNodes places the segment endpoints first, followed by the
// Chebyshev nodes of degree P-1 in the interior.
func (sb *SegmentBasis) computeEvaluationNodes() (R utils.Matrix) {
	R = utils.NewMatrix(1, sb.Np)
	R.Set(0, 0, 0)
	R.Set(0, 1, 1)
	if sb.P > 1 {
		cheb := ChebyshevNodes(sb.P - 1)
		for i := 0; i < sb.P-1; i++ {
			R.Set(0, i+2, cheb.AtVec(i))
		}
	}
	return
}
