package advanced

import "github.com/pkg/errors"

var (
	// Fewer than three points, or coordinates that are NaN or infinite.
	ErrInvalidPolygon = errors.New("invalid polygon")
	// Tolerance that is not a finite positive number.
	ErrInvalidTolerance = errors.New("invalid tolerance")
	// The hull walk could not close a loop of at least three vertices, as
	// happens when every point is collinear.
	ErrDegenerateHull = errors.New("degenerate hull")
	// No candidate diagonal resolved a notch. The search is exhaustive, so
	// retrying the same input fails the same way.
	ErrDecompositionFailure = errors.New("decomposition failure")
)

// Threading errors up and down every level of the recursive decomposition
// would add a lot of noise to the driver. Instead, we panic with a
// decomposeError, and the public API recovers to convert it to an error.
type decomposeError struct {
	error
}

// Panic with a decomposeError wrapping kind.
func fatalf(kind error, format string, args ...interface{}) {
	panic(decomposeError{errors.Wrapf(kind, format, args...)})
}

// Panic with an error that is already wrapped.
func throw(err error) {
	panic(decomposeError{err})
}

func HandleDecomposePanicRecover(r interface{}) error {
	if r != nil {
		if decomposeErr, ok := r.(decomposeError); ok {
			return decomposeErr.error
		}
		panic(r)
	}
	return nil
}
