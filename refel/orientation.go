package refel

import "fmt"

/*
Orientation records, per edge of a 2D cell, whether the cell's local edge
traversal direction agrees with the canonical global direction the mesh
assigned to that edge. It is an input supplied by the mesh topology, never
derived here: of all cells sharing an edge exactly one sees Positive. The
zero value is Positive.
*/
type Orientation uint8

const (
	Positive Orientation = iota
	Negative
)

func (o Orientation) String() (name string) {
	switch o {
	case Positive:
		name = "positive"
	case Negative:
		name = "negative"
	default:
		name = "unknown"
	}
	return
}

var orientationNameMap = map[string]Orientation{
	"positive": Positive,
	"pos":      Positive,
	"+":        Positive,
	"negative": Negative,
	"neg":      Negative,
	"-":        Negative,
}

func ParseOrientation(name string) (o Orientation, err error) {
	var ok bool
	if o, ok = orientationNameMap[name]; !ok {
		err = fmt.Errorf("unknown orientation %q: %w", name, ErrInvalidArgument)
	}
	return
}

// Positives is the all-Positive orientation vector of length n, the
// convention-free default when no mesh is involved.
func Positives(n int) []Orientation {
	return make([]Orientation, n)
}
