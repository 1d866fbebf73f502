package InputParameters

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hpfem/hpbasis/refel"
)

func TestBasisParameters(t *testing.T) {
	data := []byte(`
Title: edge orientation demo
ElementType: tri
PolynomialOrder: 4
EdgeOrientations: [positive, negative, positive]
SamplesPerAxis: 25
Functions: [3, 4, 5]
`)
	var bp BasisParameters
	assert.NoError(t, bp.Parse(data))
	assert.Equal(t, "tri", bp.ElementType)
	assert.Equal(t, 4, bp.PolynomialOrder)
	assert.Equal(t, 25, bp.SamplesPerAxis)
	assert.Equal(t, []int{3, 4, 5}, bp.Functions)
	re, err := bp.RefEl()
	assert.NoError(t, err)
	assert.Equal(t, refel.Triangle, re)
	orient, err := bp.Orientations()
	assert.NoError(t, err)
	assert.Equal(t, []refel.Orientation{refel.Positive, refel.Negative, refel.Positive}, orient)

	{ // Empty orientation list defaults to all positive
		bp2 := BasisParameters{ElementType: "quad"}
		orient, err := bp2.Orientations()
		assert.NoError(t, err)
		assert.Equal(t, refel.Positives(4), orient)
	}
	{ // Bad names surface as errors
		bp3 := BasisParameters{ElementType: "hex"}
		_, err := bp3.RefEl()
		assert.Error(t, err)
		bp4 := BasisParameters{ElementType: "tri",
			EdgeOrientations: []string{"up", "down", "left"}}
		_, err = bp4.Orientations()
		assert.Error(t, err)
	}
}
