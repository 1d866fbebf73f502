package HP2D

import (
	"fmt"
	"math"

	"github.com/hpfem/hpbasis/HP1D"
	"github.com/hpfem/hpbasis/refel"
	"github.com/hpfem/hpbasis/utils"
)

/*
TriangleBasis holds the hierarchic shape functions of degree P on the unit
triangle with vertices (0,0), (1,0), (0,1), following the construction in
https://arxiv.org/pdf/1504.03025.pdf

Shape functions split into three groups: the barycentric coordinate
functions attached to the vertices, P-1 functions per edge built from
integrated Legendre polynomials of the scaled barycentric ratio along that
edge, and (P-2)(P-1)/2 interior bubbles built from an edge function times an
integrated Jacobi polynomial in the third barycentric coordinate.

Edge functions are enumerated from the start vertex of each edge when the
edge orientation is positive and from the end vertex when it is negative,
so that two elements sharing an edge agree on the order and sign of the
shared functions.
*/
type TriangleBasis struct {
	P         int                  // Polynomial degree
	Np        int                  // Total number of shape functions
	Orient    [3]refel.Orientation // Relative orientation of the three edges
	EvalNodes utils.Matrix         // 2 x Np interpolation nodes
	V         utils.Matrix         // Np x Np shape function values at EvalNodes
}

func NewTriangleBasis(P int, orient [3]refel.Orientation) (tb *TriangleBasis) {
	if P < 1 {
		panic(fmt.Errorf("polynomial degree must be at least 1, have %d: %w",
			P, refel.ErrInvalidArgument))
	}
	tb = &TriangleBasis{
		P:      P,
		Np:     (P + 1) * (P + 2) / 2,
		Orient: orient,
	}
	tb.EvalNodes = tb.computeEvaluationNodes()
	tb.V = tb.EvalShapeFunctions(tb.EvalNodes)
	tb.EvalNodes.SetReadOnly("EvalNodes")
	tb.V.SetReadOnly("V")
	return
}

func (tb *TriangleBasis) RefEl() refel.RefEl { return refel.Triangle }

func (tb *TriangleBasis) Degree() int { return tb.P }

func (tb *TriangleBasis) NumShapeFunctions() int { return tb.Np }

// NumShapeFunctionsOnSubEntity returns the number of shape functions
// attached to the interior of a single sub-entity: (P-2)(P-1)/2 for the
// cell, P-1 per edge and one per vertex.
func (tb *TriangleBasis) NumShapeFunctionsOnSubEntity(codim int) int {
	switch codim {
	case 0:
		if tb.P <= 2 {
			return 0
		}
		return (tb.P - 2) * (tb.P - 1) / 2
	case 1:
		return tb.P - 1
	case 2:
		return 1
	}
	panic(fmt.Errorf("codim %d out of range for triangle: %w",
		codim, refel.ErrInvalidArgument))
}

// EvalShapeFunctions evaluates all shape functions at the points in
// refcoords, a 2 x Npts matrix of reference coordinates. Row i of the
// result holds shape function i at every point.
func (tb *TriangleBasis) EvalShapeFunctions(refcoords utils.Matrix) (R utils.Matrix) {
	var (
		nr, Npts = refcoords.Dims()
		p        = tb.P
	)
	if nr != 2 {
		panic(fmt.Errorf("triangle refcoords must have two rows, have %d: %w",
			nr, refel.ErrInvalidArgument))
	}
	R = utils.NewMatrix(tb.Np, Npts)
	for i := 0; i < Npts; i++ {
		// Barycentric coordinates and their pairwise sums
		var (
			x, y             = refcoords.At(0, i), refcoords.At(1, i)
			l1, l2, l3       = 1 - x - y, x, y
			l1p2, l2p3, l3p1 = l1 + l2, l2 + l3, l3 + l1
		)
		// Scaled ratios along the edges, zero at the degenerate opposite
		// vertex where the pairwise sum vanishes
		var l121n, l122n, l232n, l233n, l313n, l311n float64
		if l1p2 != 0 {
			l121n, l122n = l1/l1p2, l2/l1p2
		}
		if l2p3 != 0 {
			l232n, l233n = l2/l2p3, l3/l2p3
		}
		if l3p1 != 0 {
			l313n, l311n = l3/l3p1, l1/l3p1
		}
		// Vertex shape functions
		R.Set(0, i, l1)
		R.Set(1, i, l2)
		R.Set(2, i, l3)
		// Edge shape functions, enumerated along the edge orientation
		for j := 0; j < p-1; j++ {
			pw := math.Pow(l1p2, float64(j+2))
			if tb.Orient[0] == refel.Positive {
				R.Set(3+j, i, pw*HP1D.LegendreIntegral(j+2, l122n))
			} else {
				R.Set(p+1-j, i, pw*HP1D.LegendreIntegral(j+2, l121n))
			}
		}
		for j := 0; j < p-1; j++ {
			pw := math.Pow(l2p3, float64(j+2))
			if tb.Orient[1] == refel.Positive {
				R.Set(p+2+j, i, pw*HP1D.LegendreIntegral(j+2, l233n))
			} else {
				R.Set(2*p-j, i, pw*HP1D.LegendreIntegral(j+2, l232n))
			}
		}
		for j := 0; j < p-1; j++ {
			pw := math.Pow(l3p1, float64(j+2))
			if tb.Orient[2] == refel.Positive {
				R.Set(2*p+1+j, i, pw*HP1D.LegendreIntegral(j+2, l311n))
			} else {
				R.Set(3*p-1-j, i, pw*HP1D.LegendreIntegral(j+2, l313n))
			}
		}
		// Interior bubbles, an edge function along the second edge times an
		// integrated Jacobi polynomial in l1
		if p > 2 {
			idx := 3 * p
			for j := 0; j < p-2; j++ {
				edgeRow := p + 2 + j
				if tb.Orient[1] == refel.Negative {
					edgeRow = 2*p - j
				}
				for k := 0; k < p-j-2; k++ {
					R.Set(idx, i, R.At(edgeRow, i)*
						HP1D.JacobiIntegral(k+1, float64(2*j+4), l1))
					idx++
				}
			}
		}
	}
	return
}

// GradShapeFunctions evaluates the gradients of all shape functions at the
// points in refcoords. The result has 2*Npts columns, the x and y
// derivatives at point i sit in columns 2i and 2i+1.
func (tb *TriangleBasis) GradShapeFunctions(refcoords utils.Matrix) (R utils.Matrix) {
	var (
		nr, Npts = refcoords.Dims()
		p        = tb.P
	)
	if nr != 2 {
		panic(fmt.Errorf("triangle refcoords must have two rows, have %d: %w",
			nr, refel.ErrInvalidArgument))
	}
	R = utils.NewMatrix(tb.Np, 2*Npts)
	for i := 0; i < Npts; i++ {
		var (
			x, y             = refcoords.At(0, i), refcoords.At(1, i)
			l1, l2, l3       = 1 - x - y, x, y
			l1p2, l2p3, l3p1 = l1 + l2, l2 + l3, l3 + l1
		)
		// Gradients of the barycentric coordinates are constant:
		// grad l1 = (-1,-1), grad l2 = (1,0), grad l3 = (0,1), hence
		// grad(l1+l2) = (0,-1), grad(l2+l3) = (1,1), grad(l3+l1) = (-1,0)
		r122 := newEdgeRatio(l2, 1, 0, l1p2, 0, -1)
		r121 := newEdgeRatio(l1, -1, -1, l1p2, 0, -1)
		r233 := newEdgeRatio(l3, 0, 1, l2p3, 1, 1)
		r232 := newEdgeRatio(l2, 1, 0, l2p3, 1, 1)
		r311 := newEdgeRatio(l1, -1, -1, l3p1, -1, 0)
		r313 := newEdgeRatio(l3, 0, 1, l3p1, -1, 0)
		// Vertex gradients
		R.Set(0, 2*i, -1)
		R.Set(0, 2*i+1, -1)
		R.Set(1, 2*i, 1)
		R.Set(1, 2*i+1, 0)
		R.Set(2, 2*i, 0)
		R.Set(2, 2*i+1, 1)
		// Edge gradients by the product rule on pow(sum, j+2) * IL(ratio)
		for j := 0; j < p-1; j++ {
			if tb.Orient[0] == refel.Positive {
				dx, dy := edgeFnGrad(j, l1p2, 0, -1, r122)
				R.Set(3+j, 2*i, dx)
				R.Set(3+j, 2*i+1, dy)
			} else {
				dx, dy := edgeFnGrad(j, l1p2, 0, -1, r121)
				R.Set(p+1-j, 2*i, dx)
				R.Set(p+1-j, 2*i+1, dy)
			}
		}
		for j := 0; j < p-1; j++ {
			if tb.Orient[1] == refel.Positive {
				dx, dy := edgeFnGrad(j, l2p3, 1, 1, r233)
				R.Set(p+2+j, 2*i, dx)
				R.Set(p+2+j, 2*i+1, dy)
			} else {
				dx, dy := edgeFnGrad(j, l2p3, 1, 1, r232)
				R.Set(2*p-j, 2*i, dx)
				R.Set(2*p-j, 2*i+1, dy)
			}
		}
		for j := 0; j < p-1; j++ {
			if tb.Orient[2] == refel.Positive {
				dx, dy := edgeFnGrad(j, l3p1, -1, 0, r311)
				R.Set(2*p+1+j, 2*i, dx)
				R.Set(2*p+1+j, 2*i+1, dy)
			} else {
				dx, dy := edgeFnGrad(j, l3p1, -1, 0, r313)
				R.Set(3*p-1-j, 2*i, dx)
				R.Set(3*p-1-j, 2*i+1, dy)
			}
		}
		// Interior bubble gradients by the product rule on the edge function
		// times the integrated Jacobi polynomial in l1, grad l1 = (-1,-1)
		if p > 2 {
			idx := 3 * p
			for j := 0; j < p-2; j++ {
				var edgeEval float64
				edgeRow := p + 2 + j
				if tb.Orient[1] == refel.Positive {
					edgeEval = math.Pow(l2p3, float64(j+2)) *
						HP1D.LegendreIntegral(j+2, r233.val)
				} else {
					edgeRow = 2*p - j
					edgeEval = math.Pow(l2p3, float64(j+2)) *
						HP1D.LegendreIntegral(j+2, r232.val)
				}
				edgeDx, edgeDy := R.At(edgeRow, 2*i), R.At(edgeRow, 2*i+1)
				for k := 0; k < p-j-2; k++ {
					jacInte := HP1D.JacobiIntegral(k+1, float64(2*j+4), l1)
					jacEval := HP1D.JacobiEval(k, float64(2*j+4), l1)
					R.Set(idx, 2*i, jacInte*edgeDx-edgeEval*jacEval)
					R.Set(idx, 2*i+1, jacInte*edgeDy-edgeEval*jacEval)
					idx++
				}
			}
		}
	}
	return
}

func (tb *TriangleBasis) EvaluationNodes() utils.Matrix { return tb.EvalNodes }

func (tb *TriangleBasis) NumEvaluationNodes() int { return tb.Np }

// NodalValuesToDofs computes the coefficient vector whose interpolant takes
// the given values at the evaluation nodes by solving V^T c = nodevals.
func (tb *TriangleBasis) NodalValuesToDofs(nodevals utils.Vector) (C utils.Vector) {
	if nodevals.Len() != tb.Np {
		panic(fmt.Errorf("expected %d nodal values, have %d: %w",
			tb.Np, nodevals.Len(), refel.ErrInvalidArgument))
	}
	var err error
	if C, err = tb.V.Transpose().QRSolve(nodevals); err != nil {
		panic(fmt.Errorf("triangle degree %d interpolation: %v: %w",
			tb.P, err, refel.ErrNumericalDegeneracy))
	}
	return
}

// computeEvaluationNodes places the vertices first, then the Chebyshev
// nodes of degree P-1 mapped onto each edge in edge order, then the tensor
// Chebyshev nodes in the interior. Edge nodes always sit at the slots of
// the positively oriented edge functions.
func (tb *TriangleBasis) computeEvaluationNodes() (R utils.Matrix) {
	var (
		p    = tb.P
		cheb = HP1D.ChebyshevNodes(p - 1)
	)
	R = utils.NewMatrix(2, tb.Np)
	R.Set(0, 0, 0)
	R.Set(1, 0, 0)
	R.Set(0, 1, 1)
	R.Set(1, 1, 0)
	R.Set(0, 2, 0)
	R.Set(1, 2, 1)
	for i := 0; i < p-1; i++ {
		R.Set(0, 3+i, cheb.AtVec(i))
		R.Set(1, 3+i, 0)
	}
	for i := 0; i < p-1; i++ {
		R.Set(0, 2+p+i, 1-cheb.AtVec(i))
		R.Set(1, 2+p+i, cheb.AtVec(i))
	}
	for i := 0; i < p-1; i++ {
		R.Set(0, 1+2*p+i, 0)
		R.Set(1, 1+2*p+i, 1-cheb.AtVec(i))
	}
	if p > 2 {
		idx := 3 * p
		for i := 0; i < p-2; i++ {
			for j := 0; j < p-2-i; j++ {
				R.Set(0, idx, cheb.AtVec(j))
				R.Set(1, idx, cheb.AtVec(i))
				idx++
			}
		}
	}
	return
}

// edgeRatio holds a scaled barycentric ratio la/(la+lb) together with its
// cartesian derivatives. At the degenerate opposite vertex, where the sum
// vanishes, the ratio and its derivatives are defined as zero.
type edgeRatio struct {
	val, dx, dy float64
}

func newEdgeRatio(la, ladx, lady, sum, sumdx, sumdy float64) (r edgeRatio) {
	if sum == 0 {
		return
	}
	r.val = la / sum
	r.dx = (ladx*sum - la*sumdx) / (sum * sum)
	r.dy = (lady*sum - la*sumdy) / (sum * sum)
	return
}

// edgeFnGrad evaluates the gradient of the edge shape function
// pow(sum, j+2) * LegendreIntegral(j+2, ratio) by the product rule, using
// that the derivative of the integrated Legendre polynomial of degree j+2
// is the Legendre polynomial of degree j+1.
func edgeFnGrad(j int, sum, sumdx, sumdy float64, r edgeRatio) (dx, dy float64) {
	var (
		inte  = HP1D.LegendreIntegral(j+2, r.val)
		eval  = HP1D.LegendreEval(j+1, r.val)
		powj1 = math.Pow(sum, float64(j+1))
		powj2 = powj1 * sum
	)
	dx = sumdx*float64(j+2)*powj1*inte + powj2*r.dx*eval
	dy = sumdy*float64(j+2)*powj1*inte + powj2*r.dy*eval
	return
}
