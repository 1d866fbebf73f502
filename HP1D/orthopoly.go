package HP1D

import (
	"math"

	"github.com/hpfem/hpbasis/utils"
)

/*
Orthogonal polynomial kernels on the unit interval [0,1]

All hierarchic shape functions are built from Legendre and Jacobi
polynomials shifted from [-1,1] to [0,1], together with their
antiderivatives. The antiderivatives are evaluated through the same three
term recurrences as the polynomials themselves, which keeps them stable up
to high degree, instead of accumulating a term by term integral.
*/

// LegendreEval evaluates the shifted Legendre polynomial of degree n at x.
func LegendreEval(n int, x float64) float64 {
	var (
		t    = 2*x - 1
		Ljm1 = 1.
		Lj   = t
	)
	if n == 0 {
		return Ljm1
	}
	if n == 1 {
		return Lj
	}
	for j := 1; j < n; j++ {
		fj := float64(j)
		Ljp1 := ((2*fj+1)*t*Lj - fj*Ljm1) / (fj + 1)
		Ljm1 = Lj
		Lj = Ljp1
	}
	return Lj
}

// LegendreIntegral evaluates the integrated shifted Legendre polynomial of
// degree n at x. Its derivative in x is LegendreEval(n-1, x). The n = 0
// case is defined as the constant -1 to complete the family.
func LegendreIntegral(n int, x float64) float64 {
	if n == 0 {
		return -1
	}
	if n == 1 {
		return x
	}
	var (
		t    = 2*x - 1
		Ljm2 = 1.
		Ljm1 = t
		Lj   = (3*t*t - 1) / 2
	)
	for j := 2; j < n; j++ {
		fj := float64(j)
		Ljp1 := ((2*fj+1)*t*Lj - fj*Ljm1) / (fj + 1)
		Ljm2 = Ljm1
		Ljm1 = Lj
		Lj = Ljp1
	}
	return (Lj - Ljm2) / float64(4*n-2)
}

// JacobiEval evaluates the shifted Jacobi polynomial of degree n with weight
// parameters (alpha, 0) at x. For alpha = 0 it reduces to LegendreEval.
func JacobiEval(n int, alpha, x float64) float64 {
	var (
		Pjm1 = 1.
		Pj   = (2+alpha)*x - 1
	)
	if n == 0 {
		return Pjm1
	}
	if n == 1 {
		return Pj
	}
	for j := 1; j < n; j++ {
		fjp1 := float64(j + 1)
		a := 2 * fjp1 * (fjp1 + alpha) * (2*fjp1 + alpha - 2)
		b := 2*fjp1 + alpha - 1
		c := (2*fjp1 + alpha) * (2*fjp1 + alpha - 2)
		d := 2 * (fjp1 + alpha - 1) * (fjp1 - 1) * (2*fjp1 + alpha)
		Pjp1 := (b*(c*(2*x-1)+alpha*alpha)*Pj - d*Pjm1) / a
		Pjm1 = Pj
		Pj = Pjp1
	}
	return Pj
}

// JacobiIntegral evaluates the integrated shifted Jacobi polynomial of
// degree n with weight parameters (alpha, 0) at x. Its derivative in x is
// JacobiEval(n-1, alpha, x). The n = 0 case is the constant -1.
func JacobiIntegral(n int, alpha, x float64) float64 {
	if n == 0 {
		return -1
	}
	if n == 1 {
		return x
	}
	// Run the eval recurrence up to degree n, keeping the last three values
	// for the closing linear combination
	var (
		Pjm2 = 1.
		Pjm1 = (2+alpha)*x - 1
	)
	a := 2 * 2 * (2 + alpha) * (2*2 + alpha - 2)
	b := 2*2 + alpha - 1
	c := (2*2 + alpha) * (2*2 + alpha - 2)
	d := 2 * (2 + alpha - 1) * (2 - 1) * (2*2 + alpha)
	Pj := (b*(c*(2*x-1)+alpha*alpha)*Pjm1 - d*Pjm2) / a
	for j := 2; j < n; j++ {
		fjp1 := float64(j + 1)
		a = 2 * fjp1 * (fjp1 + alpha) * (2*fjp1 + alpha - 2)
		b = 2*fjp1 + alpha - 1
		c = (2*fjp1 + alpha) * (2*fjp1 + alpha - 2)
		d = 2 * (fjp1 + alpha - 1) * (fjp1 - 1) * (2*fjp1 + alpha)
		Pjp1 := (b*(c*(2*x-1)+alpha*alpha)*Pj - d*Pjm1) / a
		Pjm2 = Pjm1
		Pjm1 = Pj
		Pj = Pjp1
	}
	fn := float64(n)
	aL := (fn + alpha) / ((2*fn + alpha - 1) * (2*fn + alpha))
	bL := alpha / ((2*fn + alpha - 2) * (2*fn + alpha))
	cL := (fn - 1) / ((2*fn + alpha - 2) * (2*fn + alpha - 1))
	return aL*Pj + bL*Pjm1 - cL*Pjm2
}

// ChebyshevNodes returns the n Chebyshev interpolation nodes mapped to the
// open unit interval (0,1), in ascending order. For n < 1 the empty vector
// is returned.
func ChebyshevNodes(n int) (R utils.Vector) {
	if n < 1 {
		return
	}
	R = utils.NewVector(n)
	for j := 0; j < n; j++ {
		R.DataP[j] = (1 - math.Cos(math.Pi*float64(j+1)/float64(n+1))) / 2
	}
	return
}
