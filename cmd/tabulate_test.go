package cmd

import (
	"testing"

	"github.com/magiconair/properties/assert"

	"github.com/hpfem/hpbasis/InputParameters"
	"github.com/hpfem/hpbasis/refel"
)

func TestTabulate(t *testing.T) {
	var (
		err error
	)
	fileInput := []byte(`
Title: Oriented quadratic quad
ElementType: quad
PolynomialOrder: 2
EdgeOrientations: [positive, negative, positive, negative]
SamplesPerAxis: 3
Functions: [4, 5]
`)
	var input InputParameters.BasisParameters
	if err = input.Parse(fileInput); err != nil {
		panic(err)
	}
	assert.Equal(t, input.PolynomialOrder, 2)
	assert.Equal(t, input.SamplesPerAxis, 3)
	input.Print()
	sf := buildBasis(&input)
	assert.Equal(t, sf.NumShapeFunctions(), 9)

	R := sampleGrid(sf.RefEl(), input.SamplesPerAxis)
	_, Npts := R.Dims()
	assert.Equal(t, Npts, 9)
	Tabulate(sf, R, false, false)
	Tabulate(sf, R, true, false)
	Tabulate(sf, R, false, true)
}

func TestSampleGrid(t *testing.T) {
	{ // Triangle samples stay inside x+y <= 1
		R := sampleGrid(refel.Triangle, 4)
		_, Npts := R.Dims()
		assert.Equal(t, Npts, 10)
		for j := 0; j < Npts; j++ {
			if R.At(0, j)+R.At(1, j) > 1+1.e-12 {
				t.Fatalf("sample %d outside the triangle", j)
			}
		}
	}
	{ // Segment samples span [0,1]
		R := sampleGrid(refel.Segment, 5)
		assert.Equal(t, R.At(0, 0), 0.)
		assert.Equal(t, R.At(0, 4), 1.)
	}
	{ // Point element has no coordinates
		R := sampleGrid(refel.Point, 3)
		if !R.IsEmpty() {
			t.Fatalf("expected an empty coordinate matrix for the point")
		}
	}
}
