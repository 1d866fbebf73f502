package refel

import (
	"fmt"

	"github.com/hpfem/hpbasis/utils"
)

/*
RefEl enumerates the canonical reference elements every mesh cell is an
image of: the point, the unit segment [0,1], the unit triangle with vertices
(0,0),(1,0),(0,1) and the unit square with vertices (0,0),(1,0),(1,1),(0,1).

Values are compared by tag only and are freely copyable. All topological
queries are pure lookups into fixed tables; out of range arguments panic
with ErrInvalidArgument rather than clamping, so that indexing mistakes
surface at the call site instead of as silent numerical corruption.
*/
type RefEl uint8

const (
	Point RefEl = iota
	Segment
	Triangle
	Quad
)

// Local vertex numbers of the edges, the single source of truth for
// vertex-to-edge adjacency. Edge i runs from its first to its second vertex.
var (
	triangleEdgeVertices = [3][2]int{{0, 1}, {1, 2}, {2, 0}}
	quadEdgeVertices     = [4][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}}
)

func (re RefEl) String() (name string) {
	switch re {
	case Point:
		name = "Point"
	case Segment:
		name = "Segment"
	case Triangle:
		name = "Triangle"
	case Quad:
		name = "Quad"
	default:
		name = "Unknown"
	}
	return
}

var refElNameMap = map[string]RefEl{
	"point":         Point,
	"segment":       Segment,
	"seg":           Segment,
	"triangle":      Triangle,
	"tria":          Triangle,
	"tri":           Triangle,
	"quad":          Quad,
	"quadrilateral": Quad,
}

// ParseRefEl resolves a lowercase element kind name, accepting the common
// short forms used in parameter files and on the command line.
func ParseRefEl(name string) (re RefEl, err error) {
	var ok bool
	if re, ok = refElNameMap[name]; !ok {
		err = fmt.Errorf("unknown element kind %q: %w", name, ErrInvalidArgument)
	}
	return
}

func (re RefEl) Dimension() (dim int) {
	switch re {
	case Point:
		dim = 0
	case Segment:
		dim = 1
	case Triangle, Quad:
		dim = 2
	default:
		panic(fmt.Errorf("no dimension for element kind %d: %w", uint8(re), ErrInvalidArgument))
	}
	return
}

func (re RefEl) NumNodes() (nn int) {
	switch re {
	case Point:
		nn = 1
	case Segment:
		nn = 2
	case Triangle:
		nn = 3
	case Quad:
		nn = 4
	default:
		panic(fmt.Errorf("no node count for element kind %d: %w", uint8(re), ErrInvalidArgument))
	}
	return
}

// NumEdges is the number of codimension-1 segments bounding a 2D kind,
// which is also the length of the relative orientation vector a mesh
// supplies per cell. Point and Segment carry no edges.
func (re RefEl) NumEdges() (ne int) {
	if re.Dimension() == 2 {
		ne = re.NumNodes()
	}
	return
}

// NodeCoords lays the vertex coordinates out as a Dimension x NumNodes
// matrix, one point per column. The point element yields the empty matrix.
func (re RefEl) NodeCoords() (R utils.Matrix) {
	switch re {
	case Point:
		R = utils.Matrix{}
	case Segment:
		R = utils.NewMatrix(1, 2, []float64{0, 1})
	case Triangle:
		R = utils.NewMatrix(2, 3, []float64{
			0, 1, 0,
			0, 0, 1,
		})
	case Quad:
		R = utils.NewMatrix(2, 4, []float64{
			0, 1, 1, 0,
			0, 0, 1, 1,
		})
	}
	return
}

func (re RefEl) NumSubEntities(codim int) (count int) {
	if codim < 0 || codim > re.Dimension() {
		panic(fmt.Errorf("codim %d out of range [0,%d] for %v: %w",
			codim, re.Dimension(), re, ErrInvalidArgument))
	}
	switch codim {
	case 0:
		count = 1
	case re.Dimension():
		count = re.NumNodes()
	default:
		// Only reachable for the 2D kinds at codim 1
		count = re.NumEdges()
	}
	return
}

// SubEntityRefEl yields the kind of sub-entity idx at the given
// codimension: the receiver itself at codim 0, Point at codim Dimension,
// Segment in the single remaining case.
func (re RefEl) SubEntityRefEl(codim, idx int) (sub RefEl) {
	if idx < 0 || idx >= re.NumSubEntities(codim) {
		panic(fmt.Errorf("sub-entity index %d out of range for %v at codim %d: %w",
			idx, re, codim, ErrInvalidArgument))
	}
	switch codim {
	case 0:
		sub = re
	case re.Dimension():
		sub = Point
	default:
		sub = Segment
	}
	return
}

/*
MapSubSubEntity resolves a sub-entity of a sub-entity back to the
receiver's own local numbering: (codim, idx) names a sub-entity, and
(subCodim, subIdx) names an entity relative to it. For a Point the result
is 0; at codim 0 the sub-entity is the whole element so subIdx passes
through; at codim Dimension the sub-entity is a single vertex which is its
own only sub-sub-entity. In the one remaining case the sub-entity is an
edge of a 2D kind and the result comes from the edge-vertex tables.

Example: Triangle edge 1 connects vertices 1 and 2, so
MapSubSubEntity(1, 1, 1, 0) == 1 and MapSubSubEntity(1, 1, 1, 1) == 2.
*/
func (re RefEl) MapSubSubEntity(codim, idx, subCodim, subIdx int) (local int) {
	if subCodim < 0 || subCodim > re.Dimension()-codim {
		panic(fmt.Errorf("sub-sub codim %d out of range for %v at codim %d: %w",
			subCodim, re, codim, ErrInvalidArgument))
	}
	sub := re.SubEntityRefEl(codim, idx)
	if subIdx < 0 || subIdx >= sub.NumSubEntities(subCodim) {
		panic(fmt.Errorf("sub-sub index %d out of range for %v within %v: %w",
			subIdx, sub, re, ErrInvalidArgument))
	}
	switch {
	case re == Point:
		local = 0
	case codim == 0:
		local = subIdx
	case codim == re.Dimension():
		local = idx
	case re == Triangle:
		local = triangleEdgeVertices[idx][subIdx]
	default:
		local = quadEdgeVertices[idx][subIdx]
	}
	return
}
