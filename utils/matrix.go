package utils

import (
	"fmt"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/lapack/lapack64"
	"gonum.org/v1/gonum/mat"
)

type Matrix struct {
	M        *mat.Dense
	DataP    []float64 // Raw row-major backing slice, shared with M
	readOnly bool
	name     string
}

func NewMatrix(nr, nc int, dataO ...[]float64) (R Matrix) {
	var data []float64
	if len(dataO) != 0 {
		if len(dataO[0]) != nr*nc {
			err := fmt.Errorf("mismatch in allocation: NewMatrix nr,nc = %v,%v, len(data[0]) = %v",
				nr, nc, len(dataO[0]))
			panic(err)
		}
		data = dataO[0]
	} else {
		data = make([]float64, nr*nc)
	}
	R = Matrix{
		mat.NewDense(nr, nc, data),
		data,
		false,
		"unnamed - hint: pass a variable name to SetReadOnly()",
	}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m Matrix) Dims() (r, c int) {
	if m.M == nil {
		return 0, 0 // Zero value: the empty (dimensionless) matrix
	}
	return m.M.Dims()
}
func (m Matrix) At(i, j int) float64       { return m.M.At(i, j) }
func (m Matrix) T() mat.Matrix             { return m.M.T() }
func (m Matrix) RawMatrix() blas64.General { return m.M.RawMatrix() }

func (m Matrix) IsEmpty() bool { return m.M == nil }

// Chainable methods (extended)
func (m *Matrix) SetReadOnly(name ...string) Matrix {
	if len(name) != 0 {
		m.name = name[0]
	}
	m.readOnly = true
	return *m
}

func (m *Matrix) SetWritable() Matrix {
	m.readOnly = false
	return *m
}

func (m Matrix) Copy() (R Matrix) { // Does not change receiver
	var (
		nr, nc = m.Dims()
		dataR  = make([]float64, nr*nc)
	)
	copy(dataR, m.DataP)
	R = NewMatrix(nr, nc, dataR)
	return
}

func (m Matrix) Transpose() (R Matrix) { // Does not change receiver
	var (
		nr, nc = m.Dims()
	)
	R = NewMatrix(nc, nr)
	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			R.DataP[j*nr+i] = m.DataP[i*nc+j]
		}
	}
	return
}

func (m Matrix) Mul(A Matrix) (R Matrix) { // Does not change receiver
	var (
		nrM, _ = m.M.Dims()
		_, ncA = A.M.Dims()
	)
	R = NewMatrix(nrM, ncA)
	R.M.Mul(m.M, A.M)
	return R
}

func (m Matrix) Set(i, j int, val float64) Matrix { // Changes receiver
	m.checkWritable()
	m.M.Set(i, j, val)
	return m
}

func (m Matrix) Scale(a float64) Matrix { // Changes receiver
	m.checkWritable()
	for i, val := range m.DataP {
		m.DataP[i] = val * a
	}
	return m
}

func (m Matrix) Subtract(A Matrix) Matrix { // Changes receiver
	m.checkWritable()
	for i, val := range A.DataP {
		m.DataP[i] -= val
	}
	return m
}

func (m Matrix) Row(i int) (V Vector) {
	var (
		_, nc = m.Dims()
		vData = make([]float64, nc)
	)
	copy(vData, m.DataP[i*nc:(i+1)*nc])
	return NewVector(nc, vData)
}

func (m Matrix) Col(j int) (V Vector) {
	var (
		nr, nc = m.Dims()
		vData  = make([]float64, nr)
	)
	for i := range vData {
		vData[i] = m.DataP[i*nc+j]
	}
	return NewVector(nr, vData)
}

func (m Matrix) Min() (min float64) {
	min = m.DataP[0]
	for _, val := range m.DataP {
		if val < min {
			min = val
		}
	}
	return
}

func (m Matrix) Max() (max float64) {
	max = m.DataP[0]
	for _, val := range m.DataP {
		if val > max {
			max = val
		}
	}
	return
}

// Inverse is computed via the LU factorization in lapack64. The receiver is
// unchanged, a singular matrix yields an error.
func (m Matrix) Inverse() (R Matrix, err error) {
	var (
		nr, nc = m.Dims()
	)
	R = m.Copy()
	iPiv := make([]int, nr)
	if ok := lapack64.Getrf(R.RawMatrix(), iPiv); !ok {
		err = fmt.Errorf("unable to invert, matrix is singular")
		return
	}
	work := make([]float64, nr*nc)
	if ok := lapack64.Getri(R.RawMatrix(), iPiv, work, nr*nc); !ok {
		err = fmt.Errorf("unable to invert, matrix is singular")
	}
	return
}

// QRSolve solves m x = b through the Householder QR factorization of m.
// The receiver is unchanged, a rank deficient system yields an error.
func (m Matrix) QRSolve(b Vector) (X Vector, err error) {
	var (
		nr, _ = m.Dims()
		qr    mat.QR
	)
	if b.Len() != nr {
		err = fmt.Errorf("dimension mismatch in QRSolve: matrix rows = %d, rhs length = %d",
			nr, b.Len())
		return
	}
	qr.Factorize(m.M)
	x := mat.NewVecDense(nr, nil)
	if err = qr.SolveVecTo(x, false, b.V); err != nil {
		return
	}
	X = NewVector(nr, x.RawVector().Data)
	return
}

// ConditionNumber is the 2-norm condition number from the singular values.
func (m Matrix) ConditionNumber() float64 {
	var svd mat.SVD
	if !svd.Factorize(m.M, mat.SVDThin) {
		return 1e16
	}
	values := svd.Values(nil)
	if len(values) == 0 || values[len(values)-1] < 1e-16 {
		return 1e16
	}
	return values[0] / values[len(values)-1]
}

func (m Matrix) String() (o string) {
	o = fmt.Sprintf("%8.5f", mat.Formatted(m.M, mat.Squeeze()))
	return
}

func (m Matrix) Print(msgI ...string) (o string) {
	var msg string
	if len(msgI) != 0 {
		msg = msgI[0]
	}
	o = fmt.Sprintf("%s = \n%s\n", msg, m.String())
	fmt.Print(o)
	return
}

func (m Matrix) checkWritable() {
	if m.readOnly {
		err := fmt.Errorf("attempt to write to a read only matrix named: \"%v\"", m.name)
		panic(err)
	}
}
