// Package api wraps the REST surface of the shortening backend. The session
// credential is a cookie carried implicitly by the client's jar; no token is
// held beyond it. Failures are classified into the entity error taxonomy.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"github.com/avydrenko/shortdash/internal/entity"
	"go.uber.org/zap"
)

// Client is the shared transport for SessionClient and RecordsClient.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout bounds a whole request round trip. Zero means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// New creates a Client for the backend rooted at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	const op = "api.New"

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to create cookie jar: %w", op, err)
	}

	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Jar: jar},
		logger:     zap.NewNop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// BaseURL returns the backend root, used to present short links.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// envelope is the uniform response shape of the backend.
type envelope struct {
	Data       json.RawMessage `json:"data"`
	Message    string          `json:"message"`
	StatusCode int             `json:"statusCode"`
}

// do performs one round trip. On a 2xx response the envelope's data field is
// unmarshaled into out (when non-nil); on any other status the returned error
// unwraps to the sentinel chosen by classify.
func (c *Client) do(ctx context.Context, method, path string, body, out any, classify func(int) error) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &Error{kind: entity.ErrUnexpected, cause: err}
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return &Error{kind: entity.ErrUnexpected, cause: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("request failed", zap.String("method", method), zap.String("path", path), zap.Error(err))
		return &Error{kind: entity.ErrTransport, cause: err}
	}
	defer resp.Body.Close()

	var env envelope
	decErr := json.NewDecoder(resp.Body).Decode(&env)

	c.logger.Debug("request completed",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
	)

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil {
			return nil
		}
		if decErr != nil {
			return &Error{Status: resp.StatusCode, kind: entity.ErrUnexpected, cause: decErr}
		}
		if len(env.Data) == 0 || string(env.Data) == "null" {
			return nil
		}
		if err := json.Unmarshal(env.Data, out); err != nil {
			return &Error{Status: resp.StatusCode, kind: entity.ErrUnexpected, cause: err}
		}
		return nil
	}

	// A failure body that isn't the envelope is tolerated; the message stays empty.
	return &Error{Status: resp.StatusCode, Message: env.Message, kind: classify(resp.StatusCode)}
}
