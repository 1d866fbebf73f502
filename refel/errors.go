package refel

import "errors"

// The error taxonomy of the reference element layer. All misuse is raised by
// panicking with an error wrapping one of these sentinels, so that callers
// and tests can discriminate with errors.Is after recover.
var (
	// ErrInvalidArgument flags topology or basis queries outside their
	// legal codimension/index/degree ranges.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnsupportedOperation flags a request no element of the given kind
	// can serve, such as gradients on a point.
	ErrUnsupportedOperation = errors.New("unsupported operation")

	// ErrNumericalDegeneracy flags a degenerate linear system inside a
	// nodal to modal conversion.
	ErrNumericalDegeneracy = errors.New("numerical degeneracy")
)
