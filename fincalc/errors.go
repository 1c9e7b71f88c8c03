/*
errors.go - Centralized error types for the calculation engine

PURPOSE:
  All engine error types in one place. Calculator packages wrap these
  with field-level context; the API layer maps them to HTTP statuses.

ERROR CATEGORIES:
  1. Invalid input - a numeric precondition is violated (non-positive
     principal, negative rate, non-positive term)
  2. Domain errors - inputs are individually valid but the combination
     is mathematically undefined (fees >= principal, waist <= neck)
  3. Non-convergence - an iterative routine could not reach an answer
     within its bounded iteration budget

USAGE:
  Callers classify with errors.Is:

    if errors.Is(err, fincalc.ErrNonConverging) {
        // payment never retires the balance
    }

SEE ALSO:
  - solver.go, payoff.go: The iterative routines that report non-convergence
  - api/handlers.go: HTTP status mapping
*/
package fincalc

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidInput is returned when a numeric precondition is violated.
	// These are always checked before arithmetic; the engine never lets a
	// bad input surface as NaN or Inf.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDomain is returned when individually valid inputs combine into a
	// mathematically undefined calculation.
	ErrDomain = errors.New("domain error")

	// ErrNonConverging is returned when an iterative calculation cannot
	// reach an answer within its bounded iteration budget.
	ErrNonConverging = errors.New("calculation does not converge")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// InputError identifies which input violated which precondition.
type InputError struct {
	Field  string
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid input %q: %s", e.Field, e.Reason)
}

func (e *InputError) Unwrap() error { return ErrInvalidInput }

// DomainError describes an undefined input combination.
type DomainError struct {
	Op     string // Calculation that was attempted
	Detail string // Why the combination is undefined
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Detail)
}

func (e *DomainError) Unwrap() error { return ErrDomain }

// NonConvergingError reports a bounded iteration that ran out of budget
// or a pre-check proving no answer exists.
type NonConvergingError struct {
	Op         string
	Iterations int // Iterations consumed before giving up; 0 if a pre-check fired
	Detail     string
}

func (e *NonConvergingError) Error() string {
	if e.Iterations > 0 {
		return fmt.Sprintf("%s: no convergence after %d iterations: %s", e.Op, e.Iterations, e.Detail)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Detail)
}

func (e *NonConvergingError) Unwrap() error { return ErrNonConverging }

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsClientError returns true when the error is caused by the caller's
// inputs rather than an engine defect. Every engine error currently
// qualifies; the helper exists so transport layers don't enumerate.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrDomain) ||
		errors.Is(err, ErrNonConverging)
}

// errNonPositive is a shorthand for the most common precondition failure.
func errNonPositive(field string) error {
	return &InputError{Field: field, Reason: "must be positive"}
}

// errNegative is a shorthand for fields that allow zero but not negatives.
func errNegative(field string) error {
	return &InputError{Field: field, Reason: "must not be negative"}
}
