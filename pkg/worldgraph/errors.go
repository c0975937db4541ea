package worldgraph

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	ErrUnknownNeighbor = errors.New("neighbor references undefined node")
	ErrDuplicateNode   = errors.New("duplicate node name")
	ErrEmptyTopology   = errors.New("topology has no nodes")
)

// BuildError reports why graph construction was aborted. Construction is
// atomic: a BuildError means no graph was produced at all, never a
// partially-connected one.
type BuildError struct {
	Node     string // node whose declaration failed
	Neighbor string // offending neighbor reference, if applicable
	Cause    error
}

func (e *BuildError) Error() string {
	if e.Neighbor != "" {
		return fmt.Sprintf("build graph: node %q neighbor %q: %v", e.Node, e.Neighbor, e.Cause)
	}
	if e.Node != "" {
		return fmt.Sprintf("build graph: node %q: %v", e.Node, e.Cause)
	}
	return fmt.Sprintf("build graph: %v", e.Cause)
}

// Unwrap returns the underlying cause for error chain support.
func (e *BuildError) Unwrap() error {
	return e.Cause
}
