package clinic

import (
	"errors"
	"strings"
)

// Domain validation errors. These are terminal for a request: retrying
// without new input cannot change the outcome.
var (
	ErrCrossClinic             = errors.New("student and patient belong to different clinics")
	ErrPastScheduling          = errors.New("scheduled time must be in the future")
	ErrNonBusinessDay          = errors.New("appointments can only be scheduled Monday through Friday")
	ErrOutsideBusinessHours    = errors.New("appointments can only be scheduled between 08:00 and 18:00")
	ErrDoubleBooking           = errors.New("patient already has an appointment on this day")
	ErrInvalidPatientState     = errors.New("patient is not in the required care status")
	ErrInvalidAppointmentState = errors.New("appointment is not in the required status")
	ErrMissingProcedures       = errors.New("performed procedures description is required")
)

// Boundary read errors.
var (
	ErrStudentNotFound     = errors.New("student not found")
	ErrPatientNotFound     = errors.New("patient not found")
	ErrAppointmentNotFound = errors.New("appointment not found")
)

// ErrInfrastructure marks store failures (unavailable, timed out, corrupt
// row). Unlike validation errors the caller may retry; a failed commit
// never leaves a partial write behind.
var ErrInfrastructure = errors.New("entity store operation failed")

// ValidationError bundles every rule violation found for one operation so
// callers see the complete picture instead of fixing one failure at a
// time. errors.Is matches each wrapped sentinel.
type ValidationError struct {
	Violations []error
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		msgs[i] = v.Error()
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Unwrap exposes the individual violations to errors.Is / errors.As.
func (e *ValidationError) Unwrap() []error {
	return e.Violations
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// newValidationError returns nil when no rule failed.
func newValidationError(violations []error) error {
	if len(violations) == 0 {
		return nil
	}
	return &ValidationError{Violations: violations}
}
