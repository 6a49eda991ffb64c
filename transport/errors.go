package transport

import "fmt"

// This file implements the three error kinds from §7.
//
// Preconditions (programmer bugs: invalid index, non-monotone grid, a null
// handle dereferenced through Get) are asserted with panic and are never
// caught in a release build; see ids.go's Get methods.
//
// Construction validation errors are returned as *ValidationError so the
// registry builder can bubble them to the caller with a human-readable
// message and commit nothing partial.
//
// Runtime recoverable states (secondary allocator exhaustion, substepper
// budget exhaustion, an out-of-bounds cross-section request on an on-the-fly
// model) are never raised as errors: they are reflected directly on the
// track record by the stages that produce them.

// ValidationError reports a construction-time problem with options or
// tabulated data: out-of-bounds options, missing required particles,
// inconsistent energy ranges across models, or negative integrated ranges.
type ValidationError struct {
	Component string
	Reason    string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("transport: invalid %s: %s", e.Component, e.Reason)
}

// NewValidationError constructs a ValidationError for the named component.
func NewValidationError(component, reason string, args ...any) error {
	return &ValidationError{Component: component, Reason: fmt.Sprintf(reason, args...)}
}
