// Package usecase turns user actions into REST calls and reconciles the
// record store with server responses. A failed call never leaves the
// collection in an inconsistent state: the prior state is simply kept.
package usecase

import (
	"context"
	"strings"

	"github.com/avydrenko/shortdash/internal/api"
	"github.com/avydrenko/shortdash/internal/entity"
	"github.com/go-playground/validator/v10"
)

// recordsClient defines the record operations needed by the dashboard.
type recordsClient interface {
	// GetAll returns the full ordered collection for the session.
	GetAll(ctx context.Context) ([]entity.Record, error)

	// GetByID returns one record.
	GetByID(ctx context.Context, id string) (*entity.Record, error)

	// Create shortens and persists originalURL, returning the created record.
	Create(ctx context.Context, originalURL string) (*entity.Record, error)

	// Update replaces originalURL for the given record.
	Update(ctx context.Context, id, originalURL string) (*entity.Record, error)

	// Delete removes the record, returning its identity.
	Delete(ctx context.Context, id string) (*entity.Record, error)
}

// sessionClient defines the authentication operations.
type sessionClient interface {
	Login(ctx context.Context, in api.LoginInput) error
	Signup(ctx context.Context, in api.SignupInput) error
	Logout(ctx context.Context) error
}

// Navigator receives the signal to move to the unauthenticated entry point.
type Navigator interface {
	ToLogin()
}

// Confirmer is the blocking yes/no gate in front of destructive actions.
type Confirmer interface {
	Confirm(prompt string) bool
}

const shortURLTag = "shorturl"

// newValidate builds the validator shared by the use cases, with the rule
// that a shortenable URL must start with http:// or https://.
func newValidate() *validator.Validate {
	v := validator.New()

	_ = v.RegisterValidation(shortURLTag, func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
	})

	return v
}
