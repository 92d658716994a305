package stubserver

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/avydrenko/shortdash/pkg/response"
	"github.com/go-chi/render"
	"github.com/golang-jwt/jwt/v4"
)

const accessTokenCookie = "accessToken"

type userIDKeyType string

const userIDKey userIDKeyType = "user_id"

// claims is jwt.RegisteredClaims with the owning user id.
type claims struct {
	jwt.RegisteredClaims
	UserID string
}

// sessions issues and verifies the cookie-carried session tokens.
type sessions struct {
	secretKey string
	tokenExp  time.Duration
}

func (s *sessions) issue(w http.ResponseWriter, userID string) error {
	const op = "stubserver.sessions.issue"

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.tokenExp)),
		},
		UserID: userID,
	})

	tokenString, err := token.SignedString([]byte(s.secretKey))
	if err != nil {
		return fmt.Errorf("%s: failed to sign token: %w", op, err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     accessTokenCookie,
		Value:    tokenString,
		Path:     "/",
		HttpOnly: true,
	})
	return nil
}

func (s *sessions) clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     accessTokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}

func (s *sessions) userID(r *http.Request) (string, error) {
	const op = "stubserver.sessions.userID"

	cookie, err := r.Cookie(accessTokenCookie)
	if err != nil {
		return "", fmt.Errorf("%s: no session cookie: %w", op, err)
	}

	c := &claims{}
	if _, err := jwt.ParseWithClaims(cookie.Value, c, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.secretKey), nil
	}); err != nil {
		return "", fmt.Errorf("%s: failed to parse token: %w", op, err)
	}

	return c.UserID, nil
}

// authenticate rejects requests without a valid session cookie and stores the
// user id in the request context.
func (s *sessions) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := s.userID(r)
		if err != nil {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.UnauthorizedResponse)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func userIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok
}
