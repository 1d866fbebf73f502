package HP2D

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hpfem/hpbasis/refel"
	"github.com/hpfem/hpbasis/utils"
)

func TestQuadBasis(t *testing.T) {
	{ // Test degree 1 reproduces the bilinear corner functions
		qb := NewQuadBasis(1, [4]refel.Orientation{})
		assert.Equal(t, refel.Quad, qb.RefEl())
		assert.Equal(t, 4, qb.NumShapeFunctions())
		r := utils.NewMatrix(2, 2, []float64{0.25, 0.6, 0.5, 0.3})
		B := qb.EvalShapeFunctions(r)
		for j := 0; j < 2; j++ {
			x, y := r.At(0, j), r.At(1, j)
			assert.True(t, near(B.At(0, j), (1-x)*(1-y)))
			assert.True(t, near(B.At(1, j), x*(1-y)))
			assert.True(t, near(B.At(2, j), x*y))
			assert.True(t, near(B.At(3, j), (1-x)*y))
		}
	}
	{ // Test shape function counts split over vertices, edges and interior
		for p := 1; p <= 5; p++ {
			qb := NewQuadBasis(p, [4]refel.Orientation{})
			assert.Equal(t, (p+1)*(p+1), qb.NumShapeFunctions())
			total := 4*qb.NumShapeFunctionsOnSubEntity(2) +
				4*qb.NumShapeFunctionsOnSubEntity(1) +
				qb.NumShapeFunctionsOnSubEntity(0)
			assert.Equal(t, qb.NumShapeFunctions(), total)
		}
		qb := NewQuadBasis(3, [4]refel.Orientation{})
		assert.Equal(t, 4, qb.NumShapeFunctionsOnSubEntity(0))
		assert.Equal(t, 2, qb.NumShapeFunctionsOnSubEntity(1))
		assert.Equal(t, 1, qb.NumShapeFunctionsOnSubEntity(2))
		panicsWith(t, refel.ErrInvalidArgument, func() {
			qb.NumShapeFunctionsOnSubEntity(3)
		})
	}
	{ // Test degree 2 values at the center of the square
		qb := NewQuadBasis(2, [4]refel.Orientation{})
		B := qb.EvalShapeFunctions(utils.NewMatrix(2, 1, []float64{0.5, 0.5}))
		for i := 0; i < 4; i++ {
			assert.True(t, near(B.At(i, 0), 0.25))
		}
		for i := 4; i < 8; i++ {
			assert.True(t, near(B.At(i, 0), -0.125))
		}
		assert.True(t, near(B.At(8, 0), 0.0625))
	}
	{ // Test vertex values: edge and interior functions vanish at vertices
		qb := NewQuadBasis(3, [4]refel.Orientation{refel.Negative, refel.Positive, refel.Negative, refel.Positive})
		verts := utils.NewMatrix(2, 4, []float64{0, 1, 1, 0, 0, 0, 1, 1})
		B := qb.EvalShapeFunctions(verts)
		for j := 0; j < 4; j++ {
			for i := 0; i < 4; i++ {
				want := 0.
				if i == j {
					want = 1
				}
				assert.True(t, near(B.At(i, j), want))
			}
			for i := 4; i < qb.Np; i++ {
				assert.True(t, near(B.At(i, j), 0))
			}
		}
	}
	{ // Test vertex rows are identical across degrees
		r := utils.NewMatrix(2, 2, []float64{0.25, 0.6, 0.5, 0.3})
		B2 := NewQuadBasis(2, [4]refel.Orientation{}).EvalShapeFunctions(r)
		B5 := NewQuadBasis(5, [4]refel.Orientation{}).EvalShapeFunctions(r)
		for i := 0; i < 4; i++ {
			assert.True(t, nearVec(B2.Row(i).DataP, B5.Row(i).DataP, 1.e-10))
		}
	}
	{ // Test that flipping an edge reverses the enumeration along that edge
		P := 4
		pos := NewQuadBasis(P, [4]refel.Orientation{})
		posBase := [4]int{4, 3 + P, 2 + 2*P, 1 + 3*P}
		negBase := [4]int{2 + P, 1 + 2*P, 3 * P, 4*P - 1}
		coords := refel.Quad.NodeCoords()
		for e := 0; e < 4; e++ {
			var orient [4]refel.Orientation
			orient[e] = refel.Negative
			neg := NewQuadBasis(P, orient)
			// Walk edge e from its first to its second vertex
			a := refel.Quad.MapSubSubEntity(1, e, 1, 0)
			b := refel.Quad.MapSubSubEntity(1, e, 1, 1)
			edgePt := func(t float64) utils.Matrix {
				return utils.NewMatrix(2, 1, []float64{
					(1-t)*coords.At(0, a) + t*coords.At(0, b),
					(1-t)*coords.At(1, a) + t*coords.At(1, b),
				})
			}
			for _, tt := range []float64{0.2, 0.45, 0.7} {
				Bp := pos.EvalShapeFunctions(edgePt(tt))
				Bm := neg.EvalShapeFunctions(edgePt(1 - tt))
				for j := 0; j < P-1; j++ {
					assert.True(t, near(Bp.At(posBase[e]+j, 0), Bm.At(negBase[e]-j, 0)))
				}
			}
		}
	}
	{ // Test gradients against central differences with mixed orientations
		qb := NewQuadBasis(3, [4]refel.Orientation{refel.Negative, refel.Negative, refel.Positive, refel.Negative})
		h := 1.e-6
		pts := [][2]float64{{0.2, 0.3}, {0.5, 0.5}, {0.8, 0.15}, {0.35, 0.7}}
		for _, pt := range pts {
			x, y := pt[0], pt[1]
			G := qb.GradShapeFunctions(utils.NewMatrix(2, 1, []float64{x, y}))
			Bxp := qb.EvalShapeFunctions(utils.NewMatrix(2, 1, []float64{x + h, y}))
			Bxm := qb.EvalShapeFunctions(utils.NewMatrix(2, 1, []float64{x - h, y}))
			Byp := qb.EvalShapeFunctions(utils.NewMatrix(2, 1, []float64{x, y + h}))
			Bym := qb.EvalShapeFunctions(utils.NewMatrix(2, 1, []float64{x, y - h}))
			for i := 0; i < qb.Np; i++ {
				fdx := (Bxp.At(i, 0) - Bxm.At(i, 0)) / (2 * h)
				fdy := (Byp.At(i, 0) - Bym.At(i, 0)) / (2 * h)
				assert.True(t, near(G.At(i, 0), fdx, 1.e-5))
				assert.True(t, near(G.At(i, 1), fdy, 1.e-5))
			}
		}
	}
	{ // Test evaluation node layout for degree 2
		qb := NewQuadBasis(2, [4]refel.Orientation{})
		assert.Equal(t, 9, qb.NumEvaluationNodes())
		nodes := qb.EvaluationNodes()
		assert.True(t, nearVec(
			[]float64{0, 1, 1, 0, 0.5, 1, 0.5, 0, 0.5},
			nodes.Row(0).DataP, 1.e-8))
		assert.True(t, nearVec(
			[]float64{0, 0, 1, 1, 0, 0.5, 1, 0.5, 0.5},
			nodes.Row(1).DataP, 1.e-8))
	}
	{ // Test nodal interpolation round trip with mixed orientations
		qb := NewQuadBasis(3, [4]refel.Orientation{refel.Positive, refel.Negative, refel.Negative, refel.Positive})
		c := utils.NewVector(qb.Np)
		for i := range c.DataP {
			c.DataP[i] = float64(i%7)/2 - 1
		}
		vals := qb.V.Transpose().Mul(c.ToMatrix()).Col(0)
		got := qb.NodalValuesToDofs(vals)
		assert.True(t, nearVec(c.DataP, got.DataP, 1.e-7))
	}
	{ // Test interpolation reproduces a biquadratic exactly
		f := func(x, y float64) float64 {
			return 1 + x - 2*x*x + y*y - x*y + 3*x*x*y*y
		}
		qb := NewQuadBasis(2, [4]refel.Orientation{refel.Negative, refel.Positive, refel.Negative, refel.Negative})
		nodes := qb.EvaluationNodes()
		vals := utils.NewVector(qb.Np)
		for i := 0; i < qb.Np; i++ {
			vals.DataP[i] = f(nodes.At(0, i), nodes.At(1, i))
		}
		dofs := qb.NodalValuesToDofs(vals)
		pts := utils.NewMatrix(2, 3, []float64{0.2, 0.7, 0.4, 0.3, 0.55, 0.9})
		B := qb.EvalShapeFunctions(pts)
		for j := 0; j < 3; j++ {
			var got float64
			for i := 0; i < qb.Np; i++ {
				got += dofs.AtVec(i) * B.At(i, j)
			}
			assert.True(t, near(got, f(pts.At(0, j), pts.At(1, j)), 1.e-7))
		}
	}
	{ // Test malformed inputs are rejected
		panicsWith(t, refel.ErrInvalidArgument, func() {
			NewQuadBasis(-1, [4]refel.Orientation{})
		})
		qb := NewQuadBasis(2, [4]refel.Orientation{})
		panicsWith(t, refel.ErrInvalidArgument, func() {
			qb.EvalShapeFunctions(utils.NewMatrix(1, 2, []float64{0, 1}))
		})
		panicsWith(t, refel.ErrInvalidArgument, func() {
			qb.NodalValuesToDofs(utils.NewVector(3, []float64{0, 1, 2}))
		})
	}
}
