package domain

import "errors"

// Sentinel errors for the service layer. Handlers map these to HTTP status
// codes; anything not matching one of them is treated as an internal error.
var (
	// ErrInvalidArgument indicates malformed or missing caller input.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound indicates no data matched the request.
	ErrNotFound = errors.New("not found")

	// ErrNotAuthorizedOrNotFound is returned by owner-guarded mutations when
	// no row matched the (id, owner) pair. Whether the entity is missing or
	// owned by someone else is deliberately not distinguishable, so callers
	// cannot probe for the existence of other users' content.
	ErrNotAuthorizedOrNotFound = errors.New("not found or not authorized")

	// ErrConflict indicates a uniqueness violation (e.g. username taken).
	ErrConflict = errors.New("already exists")

	// ErrUnauthenticated indicates missing or invalid credentials.
	ErrUnauthenticated = errors.New("unauthenticated")
)
