package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"

	"github.com/hpfem/hpbasis/refel"
)

// Parameters obtained from the YAML input file
type BasisParameters struct {
	Title            string   `yaml:"Title"`
	ElementType      string   `yaml:"ElementType"` // point, segment, tri, quad
	PolynomialOrder  int      `yaml:"PolynomialOrder"`
	EdgeOrientations []string `yaml:"EdgeOrientations"` // One entry per edge, empty means all positive
	SamplesPerAxis   int      `yaml:"SamplesPerAxis"`
	Functions        []int    `yaml:"Functions"` // Shape function indices selected for plotting
}

func (bp *BasisParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, bp)
}

// RefEl resolves the ElementType name to a reference element kind.
func (bp *BasisParameters) RefEl() (refel.RefEl, error) {
	return refel.ParseRefEl(bp.ElementType)
}

// Orientations resolves the EdgeOrientations names. An empty list yields
// the all positive vector for the element kind; length validation happens
// when the basis is constructed.
func (bp *BasisParameters) Orientations() ([]refel.Orientation, error) {
	re, err := bp.RefEl()
	if err != nil {
		return nil, err
	}
	if len(bp.EdgeOrientations) == 0 {
		return refel.Positives(re.NumEdges()), nil
	}
	orient := make([]refel.Orientation, len(bp.EdgeOrientations))
	for i, name := range bp.EdgeOrientations {
		if orient[i], err = refel.ParseOrientation(name); err != nil {
			return nil, err
		}
	}
	return orient, nil
}

func (bp *BasisParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", bp.Title)
	fmt.Printf("[%s]\t\t\t= Element Type\n", bp.ElementType)
	fmt.Printf("[%d]\t\t\t\t= Polynomial Order\n", bp.PolynomialOrder)
	fmt.Printf("%v\t\t= Edge Orientations\n", bp.EdgeOrientations)
	fmt.Printf("[%d]\t\t\t\t= Samples Per Axis\n", bp.SamplesPerAxis)
	fmt.Printf("%v\t\t= Plotted Functions\n", bp.Functions)
}
