package findshape

import (
	"errors"
	"fmt"
)

// ErrNoTemplate is returned when no template object was provided.
var ErrNoTemplate = errors.New("no template shape selected")

// ErrToleranceExceeded reports that a candidate's residual error after
// normalization exceeds the configured tolerances. It is a per-candidate
// rejection reason, not a fault.
var ErrToleranceExceeded = errors.New("residual error exceeds tolerance")

var errNotComparable = errors.New("element type cannot be compared")

// MultiContourError reports that a curve decomposes into a number of
// disjoint contours other than one. The engine can only compare connected
// shapes; callers should skip the element rather than abort.
type MultiContourError struct {
	Contours int
}

func (e *MultiContourError) Error() string {
	return fmt.Sprintf("can only compare connected shapes (those with a single contour), got %d contours", e.Contours)
}

// DegenerateGeometryError reports geometry the normalization operations
// cannot work with: a zero-norm point set, or a singular Procrustes
// solution. It is recoverable; the matcher treats it as a non-match.
type DegenerateGeometryError struct {
	Op string
}

func (e *DegenerateGeometryError) Error() string {
	return fmt.Sprintf("degenerate geometry in %s", e.Op)
}

// PointCountMismatchError reports that two shapes have differing numbers of
// points and therefore cannot be compared. It is a fast-path rejection, not
// a fault; no geometry work happens before this check.
type PointCountMismatchError struct {
	Got, Want int
}

func (e *PointCountMismatchError) Error() string {
	return fmt.Sprintf("number of points differs: %d and %d", e.Got, e.Want)
}

// UnsupportedConfigurationError reports an option combination with no
// implemented algorithm. It is fatal and raised before any geometry work;
// the engine never silently approximates an unsupported configuration.
type UnsupportedConfigurationError struct {
	Reason string
}

func (e *UnsupportedConfigurationError) Error() string {
	return "unsupported configuration: " + e.Reason
}

// InvalidTemplateError reports that the selected template cannot be used,
// e.g. because it has more than one contour or is not a comparable element
// type. It is fatal to the whole run.
type InvalidTemplateError struct {
	ID  string
	Err error
}

func (e *InvalidTemplateError) Error() string {
	return fmt.Sprintf("invalid template %q: %v", e.ID, e.Err)
}

func (e *InvalidTemplateError) Unwrap() error {
	return e.Err
}
