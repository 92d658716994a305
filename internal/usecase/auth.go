package usecase

import (
	"context"
	"fmt"

	"github.com/avydrenko/shortdash/internal/api"
	"github.com/avydrenko/shortdash/internal/entity"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Auth validates credentials locally and drives the session operations.
// A validation failure blocks the action entirely; no request is sent.
type Auth struct {
	session  sessionClient
	validate *validator.Validate
	logger   *zap.Logger
}

func NewAuth(session sessionClient, logger *zap.Logger) *Auth {
	return &Auth{
		session:  session,
		validate: newValidate(),
		logger:   logger,
	}
}

// Login establishes a session for the given credentials.
func (a *Auth) Login(ctx context.Context, in api.LoginInput) error {
	const op = "usecase.Auth.Login"

	if err := a.validate.Struct(in); err != nil {
		return fmt.Errorf("%s: %w: %w", op, entity.ErrValidation, err)
	}

	if err := a.session.Login(ctx, in); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	a.logger.Info("logged in", zap.String("email", in.Email))
	return nil
}

// Signup creates an account and, on success, a session.
func (a *Auth) Signup(ctx context.Context, in api.SignupInput) error {
	const op = "usecase.Auth.Signup"

	if err := a.validate.Struct(in); err != nil {
		return fmt.Errorf("%s: %w: %w", op, entity.ErrValidation, err)
	}

	if err := a.session.Signup(ctx, in); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	a.logger.Info("signed up", zap.String("email", in.Email), zap.String("role", string(in.Role)))
	return nil
}
