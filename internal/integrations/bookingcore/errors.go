package bookingcore

import "errors"

var (
	// ErrUnauthorized is returned when the backend rejects the bearer token.
	// The admin UI treats it as session expiry.
	ErrUnauthorized = errors.New("bookingcore client: unauthorized")

	// ErrNotFound is returned when the requested entity does not exist upstream.
	ErrNotFound = errors.New("bookingcore client: not found")

	// ErrBadRequest is returned when the backend rejects the request payload.
	ErrBadRequest = errors.New("bookingcore client: bad request")

	// ErrInvalidResponse is returned when a 2xx response body has an
	// unexpected shape. List endpoints additionally coerce the collection to
	// empty so the rendering layer never sees a malformed join.
	ErrInvalidResponse = errors.New("bookingcore client: invalid response")

	// ErrInternal is returned on transport-level failures and unexpected
	// status codes.
	ErrInternal = errors.New("bookingcore client: internal error")
)
