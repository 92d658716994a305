package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/avydrenko/shortdash/internal/entity"
)

// LoginInput is the credentials payload for the login endpoint.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// SignupInput is the account payload for the signup endpoint.
type SignupInput struct {
	Email     string      `json:"email" validate:"required,email"`
	FirstName string      `json:"firstName" validate:"required"`
	LastName  string      `json:"lastName" validate:"required"`
	Role      entity.Role `json:"role" validate:"required,oneof=admin user"`
	Password  string      `json:"password" validate:"required,min=8"`
}

// SessionClient wraps the three authentication operations. It holds no state;
// the session established by the server lives in the shared cookie jar.
// Input validation is the caller's responsibility.
type SessionClient struct {
	client *Client
}

func NewSessionClient(client *Client) *SessionClient {
	return &SessionClient{client: client}
}

// Login establishes a session for the given credentials.
func (s *SessionClient) Login(ctx context.Context, in LoginInput) error {
	const op = "api.SessionClient.Login"

	if err := s.client.do(ctx, http.MethodPost, "/api/auth/login", in, nil, classifyLogin); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Signup creates an account; on success the server also establishes a session.
func (s *SessionClient) Signup(ctx context.Context, in SignupInput) error {
	const op = "api.SessionClient.Signup"

	if err := s.client.do(ctx, http.MethodPost, "/api/auth/signup", in, nil, classifySignup); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Logout invalidates the server-side session. Callers treat a failure here as
// non-fatal: the intent is to leave the authenticated area either way.
func (s *SessionClient) Logout(ctx context.Context) error {
	const op = "api.SessionClient.Logout"

	if err := s.client.do(ctx, http.MethodPost, "/api/auth/logout", nil, nil, classifyStatus); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
