package book_appointment

import "errors"

var (
	// ErrInvalidInput is returned when the request fails validation.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrTenantNotBookable is returned when the tenant is inactive, unknown,
	// or the administrative pseudo-tenant.
	ErrTenantNotBookable = errors.New("tenant is not bookable")

	// ErrServiceNotFound is returned when the service does not belong to the
	// selected tenant.
	ErrServiceNotFound = errors.New("service not found for tenant")

	// ErrCustomerCreateFailed is returned when the customer step was rejected;
	// no appointment is attempted in that case.
	ErrCustomerCreateFailed = errors.New("failed to create customer")

	// ErrAppointmentCreateFailed is returned when the appointment step was
	// rejected after the customer was created.
	ErrAppointmentCreateFailed = errors.New("failed to create appointment")

	// ErrUnauthorized is returned when the backend rejected the caller's token.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInternal is returned on unexpected failures.
	ErrInternal = errors.New("book_appointment usecase: internal error")
)
