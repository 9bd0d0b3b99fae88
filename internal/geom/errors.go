package geom

import "fmt"

// GeometryError reports a camera or vector setup that cannot produce a usable
// result, such as a zero-sized viewport or a singular projection.
type GeometryError struct {
	Op     string
	Reason string
	Err    error
}

func (e *GeometryError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("geom: %s: %s: %v", e.Op, e.Reason, e.Err)
	}
	return fmt.Sprintf("geom: %s: %s", e.Op, e.Reason)
}

func (e *GeometryError) Unwrap() error {
	return e.Err
}

func degenerate(op, reason string) *GeometryError {
	return &GeometryError{Op: op, Reason: reason}
}
