package stubserver

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gavv/httpexpect/v2"
	"github.com/go-chi/httplog/v2"
)

type HandlersTestSuite struct {
	logger *httplog.Logger
	server *httptest.Server
	e      *httpexpect.Expect
}

func newHandlersSuite(t *testing.T) *HandlersTestSuite {
	t.Helper()

	suite := &HandlersTestSuite{
		logger: httplog.NewLogger("", httplog.Options{Writer: io.Discard}),
	}

	router := NewRouter(suite.logger, "testsecret", time.Hour)
	suite.server = httptest.NewServer(router)
	t.Cleanup(suite.server.Close)

	suite.e = httpexpect.Default(t, suite.server.URL)
	return suite
}

func (s *HandlersTestSuite) signup(email string) {
	s.e.POST("/api/auth/signup").
		WithJSON(map[string]string{
			"email":     email,
			"firstName": "Jane",
			"lastName":  "Doe",
			"role":      "user",
			"password":  "password123",
		}).
		Expect().
		Status(http.StatusCreated)
}

func (s *HandlersTestSuite) create(originalURL string) *httpexpect.Object {
	return s.e.POST("/api/records").
		WithJSON(map[string]string{"originalURL": originalURL}).
		Expect().
		Status(http.StatusCreated).
		JSON().Object()
}

func TestSignup(t *testing.T) {
	t.Run("validation error", func(t *testing.T) {
		s := newHandlersSuite(t)

		resp := s.e.POST("/api/auth/signup").
			WithJSON(map[string]string{
				"email":     "user@example.com",
				"firstName": "Jane",
				"lastName":  "Doe",
				"role":      "owner",
				"password":  "short",
			}).
			Expect().
			Status(http.StatusBadRequest).
			JSON().Object()

		resp.HasValue("statusCode", http.StatusBadRequest)
		resp.Value("message").String().Contains("role").Contains("password")
	})

	t.Run("empty request body", func(t *testing.T) {
		s := newHandlersSuite(t)

		s.e.POST("/api/auth/signup").
			Expect().
			Status(http.StatusBadRequest).
			JSON().Object().
			HasValue("statusCode", http.StatusBadRequest)
	})

	t.Run("success establishes a session", func(t *testing.T) {
		s := newHandlersSuite(t)

		resp := s.e.POST("/api/auth/signup").
			WithJSON(map[string]string{
				"email":     "user@example.com",
				"firstName": "Jane",
				"lastName":  "Doe",
				"role":      "user",
				"password":  "password123",
			}).
			Expect().
			Status(http.StatusCreated)

		resp.Cookie(accessTokenCookie).Value().NotEmpty()
		obj := resp.JSON().Object()
		obj.HasValue("statusCode", http.StatusCreated)
		obj.Value("data").Object().
			HasValue("email", "user@example.com").
			NotContainsKey("password")

		// The fresh session can read its empty collection.
		s.e.GET("/api/records").
			Expect().
			Status(http.StatusOK)
	})

	t.Run("duplicate email", func(t *testing.T) {
		s := newHandlersSuite(t)
		s.signup("user@example.com")

		s.e.POST("/api/auth/signup").
			WithJSON(map[string]string{
				"email":     "user@example.com",
				"firstName": "John",
				"lastName":  "Doe",
				"role":      "admin",
				"password":  "password123",
			}).
			Expect().
			Status(http.StatusConflict).
			JSON().Object().
			HasValue("statusCode", http.StatusConflict)
	})
}

func TestLogin(t *testing.T) {
	t.Run("unknown email", func(t *testing.T) {
		s := newHandlersSuite(t)

		s.e.POST("/api/auth/login").
			WithJSON(map[string]string{"email": "ghost@example.com", "password": "password123"}).
			Expect().
			Status(http.StatusUnauthorized)
	})

	t.Run("wrong password", func(t *testing.T) {
		s := newHandlersSuite(t)
		s.signup("user@example.com")

		s.e.POST("/api/auth/login").
			WithJSON(map[string]string{"email": "user@example.com", "password": "wrongpassword"}).
			Expect().
			Status(http.StatusUnauthorized)
	})

	t.Run("success", func(t *testing.T) {
		s := newHandlersSuite(t)
		s.signup("user@example.com")

		resp := s.e.POST("/api/auth/login").
			WithJSON(map[string]string{"email": "user@example.com", "password": "password123"}).
			Expect().
			Status(http.StatusOK)

		resp.Cookie(accessTokenCookie).Value().NotEmpty()
	})
}

func TestLogout(t *testing.T) {
	s := newHandlersSuite(t)
	s.signup("user@example.com")

	s.e.POST("/api/auth/logout").
		Expect().
		Status(http.StatusOK)

	s.e.GET("/api/records").
		Expect().
		Status(http.StatusUnauthorized)
}

func TestRecords(t *testing.T) {
	t.Run("unauthenticated", func(t *testing.T) {
		s := newHandlersSuite(t)

		s.e.GET("/api/records").
			Expect().
			Status(http.StatusUnauthorized).
			JSON().Object().
			HasValue("statusCode", http.StatusUnauthorized)
	})

	t.Run("create and list", func(t *testing.T) {
		s := newHandlersSuite(t)
		s.signup("user@example.com")

		created := s.create("https://example.com")
		data := created.Value("data").Object()
		data.Value("_id").String().NotEmpty()
		data.Value("shortURL").String().Length().IsEqual(shortURLLength)
		data.HasValue("originalURL", "https://example.com")
		data.HasValue("counter", 0)

		s.create("https://example.org")

		list := s.e.GET("/api/records").
			Expect().
			Status(http.StatusOK).
			JSON().Object().
			Value("data").Array()

		list.Length().IsEqual(2)
		list.Value(0).Object().HasValue("originalURL", "https://example.com")
		list.Value(1).Object().HasValue("originalURL", "https://example.org")
	})

	t.Run("create rejects a non-http url", func(t *testing.T) {
		s := newHandlersSuite(t)
		s.signup("user@example.com")

		s.e.POST("/api/records").
			WithJSON(map[string]string{"originalURL": "ftp://example.com"}).
			Expect().
			Status(http.StatusBadRequest).
			JSON().Object().
			Value("message").String().Contains("originalURL")
	})

	t.Run("get by id", func(t *testing.T) {
		s := newHandlersSuite(t)
		s.signup("user@example.com")
		id := s.create("https://example.com").Value("data").Object().Value("_id").String().Raw()

		s.e.GET("/api/records/" + id).
			Expect().
			Status(http.StatusOK).
			JSON().Object().
			Value("data").Object().
			HasValue("_id", id)

		s.e.GET("/api/records/unknown").
			Expect().
			Status(http.StatusNotFound)
	})

	t.Run("update", func(t *testing.T) {
		s := newHandlersSuite(t)
		s.signup("user@example.com")
		id := s.create("https://example.com").Value("data").Object().Value("_id").String().Raw()

		updated := s.e.PATCH("/api/records/" + id).
			WithJSON(map[string]string{"originalURL": "https://updated.com"}).
			Expect().
			Status(http.StatusOK).
			JSON().Object().
			Value("data").Object()

		updated.HasValue("_id", id)
		updated.HasValue("originalURL", "https://updated.com")

		s.e.PATCH("/api/records/unknown").
			WithJSON(map[string]string{"originalURL": "https://updated.com"}).
			Expect().
			Status(http.StatusNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		s := newHandlersSuite(t)
		s.signup("user@example.com")
		id := s.create("https://example.com").Value("data").Object().Value("_id").String().Raw()

		s.e.DELETE("/api/records/" + id).
			Expect().
			Status(http.StatusOK).
			JSON().Object().
			Value("data").Object().
			HasValue("_id", id)

		s.e.DELETE("/api/records/" + id).
			Expect().
			Status(http.StatusNotFound)
	})

	t.Run("records are scoped to their owner", func(t *testing.T) {
		s := newHandlersSuite(t)
		s.signup("first@example.com")
		s.create("https://example.com")

		s.signup("second@example.com")

		s.e.GET("/api/records").
			Expect().
			Status(http.StatusOK).
			JSON().Object().
			Value("data").Array().Length().IsEqual(0)
	})
}

func TestRedirect(t *testing.T) {
	s := newHandlersSuite(t)
	s.signup("user@example.com")

	data := s.create("https://example.com").Value("data").Object()
	id := data.Value("_id").String().Raw()
	short := data.Value("shortURL").String().Raw()

	s.e.GET("/"+short).
		WithRedirectPolicy(httpexpect.DontFollowRedirects).
		Expect().
		Status(http.StatusFound).
		Header("Location").IsEqual("https://example.com")

	// The click is counted.
	s.e.GET("/api/records/" + id).
		Expect().
		Status(http.StatusOK).
		JSON().Object().
		Value("data").Object().
		HasValue("counter", 1)

	s.e.GET("/unknown0").
		WithRedirectPolicy(httpexpect.DontFollowRedirects).
		Expect().
		Status(http.StatusNotFound)
}
