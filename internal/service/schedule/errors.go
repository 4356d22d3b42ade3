package schedule

import "errors"

var (
	// ErrLoadFailed is returned when the working set could not be fetched.
	// The previous working set is kept so the screens never render a partial join.
	ErrLoadFailed = errors.New("schedule: failed to load working set")

	// ErrMalformedData is returned when a backend collection had an unexpected
	// shape and was coerced to empty.
	ErrMalformedData = errors.New("schedule: malformed collection in backend response")

	// ErrAppointmentNotFound is returned when the appointment is not in the
	// working set or unknown upstream.
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrInvalidStatus is returned for a status value the backend cannot report.
	ErrInvalidStatus = errors.New("invalid appointment status")

	// ErrTransitionNotAllowed is returned when the requested status change is
	// not in the transition table. No network call is made in that case.
	ErrTransitionNotAllowed = errors.New("status transition not allowed")

	// ErrInvalidInput is returned for unparsable filter or navigation values.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrUnauthorized is returned when the backend rejected the caller's token.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInternal is returned on unexpected failures.
	ErrInternal = errors.New("schedule service: internal error")
)
