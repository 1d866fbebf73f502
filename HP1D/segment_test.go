package HP1D

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hpfem/hpbasis/refel"
	"github.com/hpfem/hpbasis/utils"
)

func TestSegmentBasis(t *testing.T) {
	{ // Test degree 3 values at the endpoints and midpoint
		sb := NewSegmentBasis(3)
		assert.Equal(t, refel.Segment, sb.RefEl())
		assert.Equal(t, 3, sb.Degree())
		assert.Equal(t, 4, sb.NumShapeFunctions())
		r := utils.NewMatrix(1, 3, []float64{0, 1, 0.5})
		B := sb.EvalShapeFunctions(r)
		nr, nc := B.Dims()
		assert.Equal(t, 4, nr)
		assert.Equal(t, 3, nc)
		assert.True(t, nearVec([]float64{1, 0, 0.5}, B.Row(0).DataP, 1.e-8))
		assert.True(t, nearVec([]float64{0, 1, 0.5}, B.Row(1).DataP, 1.e-8))
		assert.True(t, nearVec([]float64{0, 0, -0.25}, B.Row(2).DataP, 1.e-8))
		assert.True(t, nearVec([]float64{0, 0, 0}, B.Row(3).DataP, 1.e-8))
	}
	{ // Test sub-entity dof counts
		sb := NewSegmentBasis(5)
		assert.Equal(t, 4, sb.NumShapeFunctionsOnSubEntity(0))
		assert.Equal(t, 1, sb.NumShapeFunctionsOnSubEntity(1))
		panicsWith(t, refel.ErrInvalidArgument, func() {
			sb.NumShapeFunctionsOnSubEntity(2)
		})
	}
	{ // Test raising the degree preserves the lower order shape functions
		r := utils.NewMatrix(1, 4, []float64{0.15, 0.4, 0.6, 0.85})
		B3 := NewSegmentBasis(3).EvalShapeFunctions(r)
		B6 := NewSegmentBasis(6).EvalShapeFunctions(r)
		for i := 0; i < 4; i++ {
			assert.True(t, nearVec(B3.Row(i).DataP, B6.Row(i).DataP, 1.e-10))
		}
	}
	{ // Test gradients against central differences
		sb := NewSegmentBasis(5)
		h := 1.e-6
		for _, x := range []float64{0.1, 0.35, 0.5, 0.8} {
			Bp := sb.EvalShapeFunctions(utils.NewMatrix(1, 1, []float64{x + h}))
			Bm := sb.EvalShapeFunctions(utils.NewMatrix(1, 1, []float64{x - h}))
			G := sb.GradShapeFunctions(utils.NewMatrix(1, 1, []float64{x}))
			for i := 0; i < sb.Np; i++ {
				fd := (Bp.At(i, 0) - Bm.At(i, 0)) / (2 * h)
				assert.True(t, near(G.At(i, 0), fd, 1.e-5))
			}
		}
	}
	{ // Test evaluation nodes, endpoints first then interior Chebyshev nodes
		sb := NewSegmentBasis(3)
		assert.Equal(t, 4, sb.NumEvaluationNodes())
		assert.True(t, nearVec([]float64{0, 1, 0.25, 0.75},
			sb.EvaluationNodes().Row(0).DataP, 1.e-8))
	}
	{ // Test nodal interpolation round trip
		sb := NewSegmentBasis(5)
		c := utils.NewVector(sb.Np, []float64{1, -1, 2, 0.5, -0.25, 3})
		vals := sb.V.Transpose().Mul(c.ToMatrix()).Col(0)
		got := sb.NodalValuesToDofs(vals)
		assert.True(t, nearVec(c.DataP, got.DataP, 1.e-8))
	}
	{ // Test degree below one is rejected
		panicsWith(t, refel.ErrInvalidArgument, func() { NewSegmentBasis(0) })
		panicsWith(t, refel.ErrInvalidArgument, func() { NewSegmentBasis(-2) })
	}
	{ // Test malformed inputs are rejected
		sb := NewSegmentBasis(2)
		panicsWith(t, refel.ErrInvalidArgument, func() {
			sb.EvalShapeFunctions(utils.NewMatrix(2, 2, []float64{0, 0, 1, 1}))
		})
		panicsWith(t, refel.ErrInvalidArgument, func() {
			sb.NodalValuesToDofs(utils.NewVector(2, []float64{0, 1}))
		})
	}
}

func TestPointBasis(t *testing.T) {
	pb := NewPointBasis(2)
	assert.Equal(t, refel.Point, pb.RefEl())
	assert.Equal(t, 2, pb.Degree())
	assert.Equal(t, 1, pb.NumShapeFunctions())
	assert.Equal(t, 1, pb.NumShapeFunctionsOnSubEntity(0))
	assert.Equal(t, 1, pb.NumEvaluationNodes())
	assert.True(t, pb.EvaluationNodes().IsEmpty())
	B := pb.EvalShapeFunctions(utils.Matrix{})
	nr, nc := B.Dims()
	assert.Equal(t, 1, nr)
	assert.Equal(t, 1, nc)
	assert.True(t, near(B.At(0, 0), 1))
	dofs := pb.NodalValuesToDofs(utils.NewVector(1, []float64{3.5}))
	assert.True(t, near(dofs.AtVec(0), 3.5))
	panicsWith(t, refel.ErrUnsupportedOperation, func() {
		pb.GradShapeFunctions(utils.Matrix{})
	})
	panicsWith(t, refel.ErrInvalidArgument, func() {
		pb.EvalShapeFunctions(utils.NewMatrix(1, 1, []float64{0}))
	})
	panicsWith(t, refel.ErrInvalidArgument, func() {
		pb.NumShapeFunctionsOnSubEntity(1)
	})
}

// panicsWith runs f and checks that it panics with an error wrapping the
// given sentinel.
func panicsWith(t *testing.T, want error, f func()) {
	t.Helper()
	defer func() {
		r := recover()
		assert.NotNil(t, r)
		err, ok := r.(error)
		assert.True(t, ok)
		assert.True(t, errors.Is(err, want))
	}()
	f()
}
