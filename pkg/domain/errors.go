package domain

import (
	"errors"
	"fmt"
)

// ErrEmptyQuery is returned when a query has no text.
var ErrEmptyQuery = errors.New("query text is empty")

// ErrMissingIdentity is returned when a query names no identity.
var ErrMissingIdentity = errors.New("query identity is missing")

// ErrRecordNotFound is returned when an identity has no record.
var ErrRecordNotFound = errors.New("record not found")

// ErrDataUnavailable marks a stage that could not reach its data.
var ErrDataUnavailable = errors.New("data unavailable")

// ErrExplanationUnavailable marks a score that could not be narrated.
var ErrExplanationUnavailable = errors.New("explanation unavailable")

// ErrNotVisualizable marks a result with no chartable shape.
var ErrNotVisualizable = errors.New("result not visualizable")

// ErrRoutingAmbiguous marks a query that matched no intent rule.
var ErrRoutingAmbiguous = errors.New("routing ambiguous")

// ProtocolViolationError reports an internal sequencing bug: duplicate stage
// work, routing after the terminal stage, or similar. It is never caused by
// user input and always aborts the run.
type ProtocolViolationError struct {
	Stage  string
	Reason string
}

func (e *ProtocolViolationError) Error() string {
	return fmt.Sprintf("protocol violation in %s: %s", e.Stage, e.Reason)
}

// NewProtocolViolation builds a violation for the given stage.
func NewProtocolViolation(stage, reason string) error {
	return &ProtocolViolationError{Stage: stage, Reason: reason}
}

// IsProtocolViolation reports whether err is (or wraps) a protocol violation.
func IsProtocolViolation(err error) bool {
	var pv *ProtocolViolationError
	return errors.As(err, &pv)
}
