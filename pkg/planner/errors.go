package planner

import (
	"errors"
	"fmt"
)

// Common sentinel errors. All of these are ordinary negative outcomes the
// caller acts on; none indicate a bug in the planner.
var (
	// ErrInvalidLocation means the origin or destination is not in the graph.
	ErrInvalidLocation = errors.New("location not in world graph")
	// ErrNoRouteFound means the destination is unreachable within the hop bound.
	ErrNoRouteFound = errors.New("no route found")
	// ErrConstraintExhausted means candidates exist but none satisfy the
	// request's fuel, risk, and time limits.
	ErrConstraintExhausted = errors.New("no candidate satisfies constraints")
	// ErrInvalidRequest means the request failed structural validation.
	ErrInvalidRequest = errors.New("invalid navigation request")
)

// PlanError provides structured error information for planning operations.
type PlanError struct {
	Op          string // operation that failed (e.g. "Plan", "Generate")
	Origin      string
	Destination string
	Cause       error
}

// Error implements the error interface.
func (e *PlanError) Error() string {
	if e.Origin != "" || e.Destination != "" {
		return fmt.Sprintf("%s %s -> %s: %v", e.Op, e.Origin, e.Destination, e.Cause)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Cause)
}

// Unwrap returns the underlying cause for error chain support.
func (e *PlanError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target error matches this error or its cause.
func (e *PlanError) Is(target error) bool {
	if target == nil {
		return false
	}
	return errors.Is(e.Cause, target)
}

func planErr(op, origin, destination string, cause error) error {
	return &PlanError{Op: op, Origin: origin, Destination: destination, Cause: cause}
}
