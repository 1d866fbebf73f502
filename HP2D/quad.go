package HP2D

import (
	"fmt"

	"github.com/hpfem/hpbasis/HP1D"
	"github.com/hpfem/hpbasis/refel"
	"github.com/hpfem/hpbasis/utils"
)

/*
QuadBasis holds the hierarchic shape functions of degree P on the unit
square [0,1]^2 as tensor products of the 1D hierarchic segment basis in x
and y.

Edge functions on the four edges are products of a 1D edge interior
function in the coordinate running along the edge and a 1D vertex function
in the transverse coordinate. For a negatively oriented edge the running
coordinate is flipped to 1-x or 1-y, which reverses the enumeration and
mirrors each function, so that neighboring elements agree on the shared
edge. Note that on edges two and three the reference edge direction
already runs against the coordinate axes, so there the positively oriented
functions use the flipped coordinate.
*/
type QuadBasis struct {
	P         int                  // Polynomial degree
	Np        int                  // Total number of shape functions, (P+1)^2
	Orient    [4]refel.Orientation // Relative orientation of the four edges
	EvalNodes utils.Matrix         // 2 x Np interpolation nodes
	V         utils.Matrix         // Np x Np shape function values at EvalNodes
	fe1d      *HP1D.SegmentBasis   // 1D factor basis of the tensor product
}

func NewQuadBasis(P int, orient [4]refel.Orientation) (qb *QuadBasis) {
	if P < 1 {
		panic(fmt.Errorf("polynomial degree must be at least 1, have %d: %w",
			P, refel.ErrInvalidArgument))
	}
	qb = &QuadBasis{
		P:      P,
		Np:     (P + 1) * (P + 1),
		Orient: orient,
		fe1d:   HP1D.NewSegmentBasis(P),
	}
	qb.EvalNodes = qb.computeEvaluationNodes()
	qb.V = qb.EvalShapeFunctions(qb.EvalNodes)
	qb.EvalNodes.SetReadOnly("EvalNodes")
	qb.V.SetReadOnly("V")
	return
}

func (qb *QuadBasis) RefEl() refel.RefEl { return refel.Quad }

func (qb *QuadBasis) Degree() int { return qb.P }

func (qb *QuadBasis) NumShapeFunctions() int { return qb.Np }

// NumShapeFunctionsOnSubEntity returns the number of shape functions
// attached to the interior of a single sub-entity: (P-1)^2 for the cell,
// P-1 per edge and one per vertex.
func (qb *QuadBasis) NumShapeFunctionsOnSubEntity(codim int) int {
	switch codim {
	case 0:
		return (qb.P - 1) * (qb.P - 1)
	case 1:
		return qb.P - 1
	case 2:
		return 1
	}
	panic(fmt.Errorf("codim %d out of range for quad: %w",
		codim, refel.ErrInvalidArgument))
}

// EvalShapeFunctions evaluates all shape functions at the points in
// refcoords, a 2 x Npts matrix of reference coordinates. Row i of the
// result holds shape function i at every point.
func (qb *QuadBasis) EvalShapeFunctions(refcoords utils.Matrix) (R utils.Matrix) {
	var (
		nr, Npts = refcoords.Dims()
		p        = qb.P
	)
	if nr != 2 {
		panic(fmt.Errorf("quad refcoords must have two rows, have %d: %w",
			nr, refel.ErrInvalidArgument))
	}
	rx, ry, rxf, ryf := coordRows(refcoords)
	// 1D factor values at x, y and the flipped coordinates 1-x, 1-y
	var (
		sfx  = qb.fe1d.EvalShapeFunctions(rx)
		sfy  = qb.fe1d.EvalShapeFunctions(ry)
		sfxf = qb.fe1d.EvalShapeFunctions(rxf)
		sfyf = qb.fe1d.EvalShapeFunctions(ryf)
	)
	R = utils.NewMatrix(qb.Np, Npts)
	for i := 0; i < Npts; i++ {
		// Vertex shape functions
		R.Set(0, i, sfx.At(0, i)*sfy.At(0, i))
		R.Set(1, i, sfx.At(1, i)*sfy.At(0, i))
		R.Set(2, i, sfx.At(1, i)*sfy.At(1, i))
		R.Set(3, i, sfx.At(0, i)*sfy.At(1, i))
		// Edge shape functions, enumerated along the edge orientation
		for j := 0; j < p-1; j++ {
			if qb.Orient[0] == refel.Positive {
				R.Set(4+j, i, sfx.At(2+j, i)*sfy.At(0, i))
			} else {
				R.Set(2+p-j, i, sfxf.At(2+j, i)*sfy.At(0, i))
			}
		}
		for j := 0; j < p-1; j++ {
			if qb.Orient[1] == refel.Positive {
				R.Set(3+p+j, i, sfx.At(1, i)*sfy.At(2+j, i))
			} else {
				R.Set(1+2*p-j, i, sfx.At(1, i)*sfyf.At(2+j, i))
			}
		}
		for j := 0; j < p-1; j++ {
			if qb.Orient[2] == refel.Positive {
				R.Set(2+2*p+j, i, sfxf.At(2+j, i)*sfy.At(1, i))
			} else {
				R.Set(3*p-j, i, sfx.At(2+j, i)*sfy.At(1, i))
			}
		}
		for j := 0; j < p-1; j++ {
			if qb.Orient[3] == refel.Positive {
				R.Set(1+3*p+j, i, sfx.At(0, i)*sfyf.At(2+j, i))
			} else {
				R.Set(4*p-1-j, i, sfx.At(0, i)*sfy.At(2+j, i))
			}
		}
		// Interior tensor product functions
		for j := 0; j < p-1; j++ {
			for k := 0; k < p-1; k++ {
				R.Set(4*p+(p-1)*j+k, i, sfx.At(k+2, i)*sfy.At(j+2, i))
			}
		}
	}
	return
}

// GradShapeFunctions evaluates the gradients of all shape functions at the
// points in refcoords. The result has 2*Npts columns, the x and y
// derivatives at point i sit in columns 2i and 2i+1. Derivatives of factors
// in a flipped coordinate pick up a sign by the chain rule.
func (qb *QuadBasis) GradShapeFunctions(refcoords utils.Matrix) (R utils.Matrix) {
	var (
		nr, Npts = refcoords.Dims()
		p        = qb.P
	)
	if nr != 2 {
		panic(fmt.Errorf("quad refcoords must have two rows, have %d: %w",
			nr, refel.ErrInvalidArgument))
	}
	rx, ry, rxf, ryf := coordRows(refcoords)
	var (
		sfx   = qb.fe1d.EvalShapeFunctions(rx)
		sfy   = qb.fe1d.EvalShapeFunctions(ry)
		sfdx  = qb.fe1d.GradShapeFunctions(rx)
		sfdy  = qb.fe1d.GradShapeFunctions(ry)
		sfxf  = qb.fe1d.EvalShapeFunctions(rxf)
		sfyf  = qb.fe1d.EvalShapeFunctions(ryf)
		sfdxf = qb.fe1d.GradShapeFunctions(rxf)
		sfdyf = qb.fe1d.GradShapeFunctions(ryf)
	)
	R = utils.NewMatrix(qb.Np, 2*Npts)
	for i := 0; i < Npts; i++ {
		// Vertex gradients
		R.Set(0, 2*i, sfdx.At(0, i)*sfy.At(0, i))
		R.Set(0, 2*i+1, sfx.At(0, i)*sfdy.At(0, i))
		R.Set(1, 2*i, sfdx.At(1, i)*sfy.At(0, i))
		R.Set(1, 2*i+1, sfx.At(1, i)*sfdy.At(0, i))
		R.Set(2, 2*i, sfdx.At(1, i)*sfy.At(1, i))
		R.Set(2, 2*i+1, sfx.At(1, i)*sfdy.At(1, i))
		R.Set(3, 2*i, sfdx.At(0, i)*sfy.At(1, i))
		R.Set(3, 2*i+1, sfx.At(0, i)*sfdy.At(1, i))
		// Edge gradients
		for j := 0; j < p-1; j++ {
			if qb.Orient[0] == refel.Positive {
				R.Set(4+j, 2*i, sfdx.At(2+j, i)*sfy.At(0, i))
				R.Set(4+j, 2*i+1, sfx.At(2+j, i)*sfdy.At(0, i))
			} else {
				R.Set(2+p-j, 2*i, -sfdxf.At(2+j, i)*sfy.At(0, i))
				R.Set(2+p-j, 2*i+1, sfxf.At(2+j, i)*sfdy.At(0, i))
			}
		}
		for j := 0; j < p-1; j++ {
			if qb.Orient[1] == refel.Positive {
				R.Set(3+p+j, 2*i, sfdx.At(1, i)*sfy.At(2+j, i))
				R.Set(3+p+j, 2*i+1, sfx.At(1, i)*sfdy.At(2+j, i))
			} else {
				R.Set(1+2*p-j, 2*i, sfdx.At(1, i)*sfyf.At(2+j, i))
				R.Set(1+2*p-j, 2*i+1, -sfx.At(1, i)*sfdyf.At(2+j, i))
			}
		}
		for j := 0; j < p-1; j++ {
			if qb.Orient[2] == refel.Positive {
				R.Set(2+2*p+j, 2*i, -sfdxf.At(2+j, i)*sfy.At(1, i))
				R.Set(2+2*p+j, 2*i+1, sfxf.At(2+j, i)*sfdy.At(1, i))
			} else {
				R.Set(3*p-j, 2*i, sfdx.At(2+j, i)*sfy.At(1, i))
				R.Set(3*p-j, 2*i+1, sfx.At(2+j, i)*sfdy.At(1, i))
			}
		}
		for j := 0; j < p-1; j++ {
			if qb.Orient[3] == refel.Positive {
				R.Set(1+3*p+j, 2*i, sfdx.At(0, i)*sfyf.At(2+j, i))
				R.Set(1+3*p+j, 2*i+1, -sfx.At(0, i)*sfdyf.At(2+j, i))
			} else {
				R.Set(4*p-1-j, 2*i, sfdx.At(0, i)*sfy.At(2+j, i))
				R.Set(4*p-1-j, 2*i+1, sfx.At(0, i)*sfdy.At(2+j, i))
			}
		}
		// Interior gradients
		for j := 0; j < p-1; j++ {
			for k := 0; k < p-1; k++ {
				R.Set(4*p+(p-1)*j+k, 2*i, sfdx.At(k+2, i)*sfy.At(j+2, i))
				R.Set(4*p+(p-1)*j+k, 2*i+1, sfx.At(k+2, i)*sfdy.At(j+2, i))
			}
		}
	}
	return
}

func (qb *QuadBasis) EvaluationNodes() utils.Matrix { return qb.EvalNodes }

func (qb *QuadBasis) NumEvaluationNodes() int { return qb.Np }

// NodalValuesToDofs computes the coefficient vector whose interpolant takes
// the given values at the evaluation nodes by solving V^T c = nodevals.
func (qb *QuadBasis) NodalValuesToDofs(nodevals utils.Vector) (C utils.Vector) {
	if nodevals.Len() != qb.Np {
		panic(fmt.Errorf("expected %d nodal values, have %d: %w",
			qb.Np, nodevals.Len(), refel.ErrInvalidArgument))
	}
	var err error
	if C, err = qb.V.Transpose().QRSolve(nodevals); err != nil {
		panic(fmt.Errorf("quad degree %d interpolation: %v: %w",
			qb.P, err, refel.ErrNumericalDegeneracy))
	}
	return
}

// computeEvaluationNodes places the vertices first, then the Chebyshev
// nodes of degree P-1 mapped onto each edge in edge order, then the tensor
// Chebyshev nodes in the interior. Edge nodes always sit at the slots of
// the positively oriented edge functions.
func (qb *QuadBasis) computeEvaluationNodes() (R utils.Matrix) {
	var (
		p    = qb.P
		cheb = HP1D.ChebyshevNodes(p - 1)
	)
	R = utils.NewMatrix(2, qb.Np)
	R.Set(0, 0, 0)
	R.Set(1, 0, 0)
	R.Set(0, 1, 1)
	R.Set(1, 1, 0)
	R.Set(0, 2, 1)
	R.Set(1, 2, 1)
	R.Set(0, 3, 0)
	R.Set(1, 3, 1)
	for i := 0; i < p-1; i++ {
		R.Set(0, 4+i, cheb.AtVec(i))
		R.Set(1, 4+i, 0)
	}
	for i := 0; i < p-1; i++ {
		R.Set(0, 3+p+i, 1)
		R.Set(1, 3+p+i, cheb.AtVec(i))
	}
	for i := 0; i < p-1; i++ {
		R.Set(0, 2+2*p+i, 1-cheb.AtVec(i))
		R.Set(1, 2+2*p+i, 1)
	}
	for i := 0; i < p-1; i++ {
		R.Set(0, 1+3*p+i, 0)
		R.Set(1, 1+3*p+i, 1-cheb.AtVec(i))
	}
	for i := 0; i < p-1; i++ {
		for j := 0; j < p-1; j++ {
			R.Set(0, 4*p+(p-1)*i+j, cheb.AtVec(j))
			R.Set(1, 4*p+(p-1)*i+j, cheb.AtVec(i))
		}
	}
	return
}

// coordRows splits 2D reference coordinates into single row matrices of
// the x coordinates, the y coordinates and the flipped coordinates 1-x
// and 1-y, ready for evaluation by the 1D factor basis.
func coordRows(refcoords utils.Matrix) (rx, ry, rxf, ryf utils.Matrix) {
	var (
		_, Npts = refcoords.Dims()
	)
	rx, ry = utils.NewMatrix(1, Npts), utils.NewMatrix(1, Npts)
	rxf, ryf = utils.NewMatrix(1, Npts), utils.NewMatrix(1, Npts)
	for i := 0; i < Npts; i++ {
		x, y := refcoords.At(0, i), refcoords.At(1, i)
		rx.Set(0, i, x)
		ry.Set(0, i, y)
		rxf.Set(0, i, 1-x)
		ryf.Set(0, i, 1-y)
	}
	return
}
