package scrollkit

import (
	"errors"
	"fmt"
)

// ErrMissingDependency indicates that a required handle was nil or a
// required capability could not be found on the expected node.
var ErrMissingDependency = errors.New("missing dependency")

// MissingDependencyError reports which dependency an operation could not find.
// Helpers never panic on misconfiguration; they log, return this error, and
// leave themselves inert.
type MissingDependencyError struct {
	Op         string // Operation that failed (e.g., "new_wrap_content")
	Dependency string // What was missing (e.g., "panel", "render func")
}

func (e *MissingDependencyError) Error() string {
	return fmt.Sprintf("scrollkit: %s: %s: %v", e.Op, e.Dependency, ErrMissingDependency)
}

func (e *MissingDependencyError) Unwrap() error {
	return ErrMissingDependency
}

func newMissingDependencyError(op, dependency string) *MissingDependencyError {
	return &MissingDependencyError{Op: op, Dependency: dependency}
}

// IsMissingDependency checks if an error reports a missing dependency.
func IsMissingDependency(err error) bool {
	return errors.Is(err, ErrMissingDependency)
}
