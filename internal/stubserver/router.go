package stubserver

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v2"
)

// NewRouter builds the stub backend with the REST surface the client
// consumes: /api/auth/{login,signup,logout}, /api/records CRUD and short-link
// redirects at the root.
func NewRouter(logger *httplog.Logger, secretKey string, tokenExp time.Duration) *chi.Mux {
	s := &Server{
		repo: newRepo(),
		sessions: &sessions{
			secretKey: secretKey,
			tokenExp:  tokenExp,
		},
		validate: newValidate(),
	}

	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://*", "https://*"},
		AllowedMethods:   []string{"POST", "GET", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           84600,
	}))
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(httplog.RequestLogger(logger))
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", s.handleLogin)
			r.Post("/signup", s.handleSignup)
			r.Post("/logout", s.handleLogout)
		})

		r.Route("/records", func(r chi.Router) {
			r.Use(s.sessions.authenticate)

			r.Get("/", s.handleGetRecords)
			r.Post("/", s.handleCreateRecord)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", s.handleGetRecord)
				r.Patch("/", s.handleUpdateRecord)
				r.Delete("/", s.handleDeleteRecord)
			})
		})
	})

	r.Get("/{shortURL}", s.handleRedirect)

	return r
}
