package entity

import "errors"

var (
	// ErrValidation is returned when input is rejected, client- or server-side.
	ErrValidation = errors.New("validation failed")
	// ErrAuth is returned when the session is missing, invalid or the
	// credentials are rejected.
	ErrAuth = errors.New("session rejected")
	// ErrNotFound is returned when a referenced record doesn't exist for this user.
	ErrNotFound = errors.New("record not found")
	// ErrTransport is returned when a request never reached the server.
	ErrTransport = errors.New("server unreachable")
	// ErrUnexpected is returned for any other failure.
	ErrUnexpected = errors.New("unexpected error")
)

var (
	// ErrInvalidURL is returned when a URL doesn't start with http:// or https://.
	ErrInvalidURL = errors.New("url must start with http:// or https://")
	// ErrEmptyDraft is returned when a create or save is attempted with an empty URL.
	ErrEmptyDraft = errors.New("url is empty")
	// ErrNoRecord is returned when an edit is requested for an id not in the collection.
	ErrNoRecord = errors.New("no such record in the collection")
	// ErrNotEditing is returned when a draft operation is attempted with no record in editing state.
	ErrNotEditing = errors.New("no record is being edited")
	// ErrMutationInFlight is returned when a mutation is requested for a record
	// that already has an outstanding request.
	ErrMutationInFlight = errors.New("record has a mutation in flight")
)
