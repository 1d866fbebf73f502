package utils

import (
	"fmt"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

type Vector struct {
	V     *mat.VecDense
	DataP []float64 // Raw backing slice, shared with V
}

func NewVector(n int, dataO ...[]float64) (V Vector) {
	var data []float64
	if len(dataO) != 0 {
		if len(dataO[0]) != n {
			err := fmt.Errorf("mismatch in allocation: NewVector n = %v, len(data[0]) = %v",
				n, len(dataO[0]))
			panic(err)
		}
		data = dataO[0]
	} else {
		data = make([]float64, n)
	}
	V = Vector{
		mat.NewVecDense(n, data),
		data,
	}
	return
}

// NewVectorLinspace covers [xmin,xmax] with n equally spaced samples.
func NewVectorLinspace(xmin, xmax float64, n int) (V Vector) {
	V = NewVector(n)
	floats.Span(V.DataP, xmin, xmax)
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (v Vector) Dims() (r, c int)         { return v.V.Dims() }
func (v Vector) At(i, j int) float64      { return v.V.At(i, j) }
func (v Vector) T() mat.Matrix            { return v.V.T() }
func (v Vector) AtVec(i int) float64      { return v.V.AtVec(i) }
func (v Vector) RawVector() blas64.Vector { return v.V.RawVector() }

func (v Vector) Len() int {
	if v.V == nil {
		return 0
	}
	return v.V.Len()
}

// Chainable (extended) methods
func (v Vector) Copy() (R Vector) { // Does not change receiver
	dataR := make([]float64, v.Len())
	copy(dataR, v.DataP)
	R = NewVector(v.Len(), dataR)
	return
}

func (v Vector) Subtract(a Vector) Vector { // Changes receiver
	for i, val := range a.DataP {
		v.DataP[i] -= val
	}
	return v
}

func (v Vector) Scale(a float64) Vector { // Changes receiver
	for i, val := range v.DataP {
		v.DataP[i] = val * a
	}
	return v
}

func (v Vector) Apply(f func(float64) float64) Vector { // Changes receiver
	for i, val := range v.DataP {
		v.DataP[i] = f(val)
	}
	return v
}

func (v Vector) Min() float64 { return floats.Min(v.DataP) }
func (v Vector) Max() float64 { return floats.Max(v.DataP) }

// ToMatrix lays the vector out as a single-column matrix.
func (v Vector) ToMatrix() (R Matrix) {
	dataR := make([]float64, v.Len())
	copy(dataR, v.DataP)
	R = NewMatrix(v.Len(), 1, dataR)
	return
}

func (v Vector) String() (o string) {
	o = fmt.Sprintf("%8.5f", mat.Formatted(v.V.T(), mat.Squeeze()))
	return
}

func (v Vector) Print(msgI ...string) (o string) {
	var msg string
	if len(msgI) != 0 {
		msg = msgI[0]
	}
	o = fmt.Sprintf("%s = %s\n", msg, v.String())
	fmt.Print(o)
	return
}
