package api

import (
	"fmt"
	"net/http"

	"github.com/avydrenko/shortdash/internal/entity"
)

// Error is a classified failure of an API call. It unwraps to one of the
// taxonomy sentinels in entity, so call sites match with errors.Is.
type Error struct {
	// Status is the HTTP status code, zero when the request never reached the server.
	Status int
	// Message is the server-provided message, when present.
	Message string

	kind  error
	cause error
}

func (e *Error) Error() string {
	switch {
	case e.Status == 0 && e.cause != nil:
		return fmt.Sprintf("api: %s: %v", e.kind, e.cause)
	case e.Message != "":
		return fmt.Sprintf("api: %s (status %d): %s", e.kind, e.Status, e.Message)
	default:
		return fmt.Sprintf("api: %s (status %d)", e.kind, e.Status)
	}
}

func (e *Error) Unwrap() []error {
	errs := []error{e.kind}
	if e.cause != nil {
		errs = append(errs, e.cause)
	}
	return errs
}

// classifyStatus maps a non-2xx status to its taxonomy sentinel.
func classifyStatus(status int) error {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return entity.ErrAuth
	case http.StatusNotFound:
		return entity.ErrNotFound
	case http.StatusBadRequest, http.StatusConflict, http.StatusUnprocessableEntity:
		return entity.ErrValidation
	default:
		return entity.ErrUnexpected
	}
}

// classifyLogin treats any client error as rejected credentials.
func classifyLogin(status int) error {
	if status >= 400 && status < 500 {
		return entity.ErrAuth
	}
	return entity.ErrUnexpected
}

func classifySignup(status int) error {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return entity.ErrAuth
	case http.StatusBadRequest, http.StatusConflict, http.StatusUnprocessableEntity:
		return entity.ErrValidation
	default:
		return entity.ErrUnexpected
	}
}
