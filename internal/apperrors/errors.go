// Package apperrors defines the typed error taxonomy propagated out of loading and
// structural validation. Constraint and repair functions never return errors; data-driven
// infeasibility is always expressed as a violation count or penalty and left to evolution.
package apperrors

import "fmt"

// Kind classifies a SchedulingError per the propagation policy: only InvalidInput and
// InvariantViolation are expected to abort a run; InfeasibleResource and NumericInconsistency
// are recorded for diagnostics but the fields they decorate are themselves recoverable.
type Kind string

const (
	// InvalidInput marks malformed or missing entity fields caught at load time.
	InvalidInput Kind = "INVALID_INPUT"
	// InvariantViolation marks a population/context structural mismatch, e.g. crossover in
	// strict mode finding mismatched gene-identity sets, or post-load validation finding a
	// course with no qualified instructor while that constraint is enabled.
	InvariantViolation Kind = "INVARIANT_VIOLATION"
	// InfeasibleResource marks a seeder/mutation candidate search that found nothing; callers
	// degrade to a random fallback rather than raise, this Kind exists for diagnostics only.
	InfeasibleResource Kind = "INFEASIBLE_RESOURCE"
	// NumericInconsistency marks a fitness tuple or metric that failed a sanity check (NaN,
	// negative count, etc).
	NumericInconsistency Kind = "NUMERIC_INCONSISTENCY"
)

// SchedulingError is the error type returned by loader and invariant-checking code.
type SchedulingError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *SchedulingError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *SchedulingError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// New builds a SchedulingError with no wrapped cause.
func New(kind Kind, message string) *SchedulingError {
	return &SchedulingError{Kind: kind, Message: message}
}

// Wrap attaches a Kind and message to an existing error.
func Wrap(kind Kind, message string, err error) *SchedulingError {
	return &SchedulingError{Kind: kind, Message: message, Err: err}
}

// Invalid is shorthand for New(InvalidInput, ...).
func Invalid(format string, args ...any) *SchedulingError {
	return New(InvalidInput, fmt.Sprintf(format, args...))
}

// Invariant is shorthand for New(InvariantViolation, ...).
func Invariant(format string, args ...any) *SchedulingError {
	return New(InvariantViolation, fmt.Sprintf(format, args...))
}

// Is reports whether err is a SchedulingError of the given Kind, supporting errors.Is-style
// callers that just want to branch on Kind.
func Is(err error, kind Kind) bool {
	se, ok := err.(*SchedulingError)
	if !ok {
		return false
	}
	return se.Kind == kind
}
