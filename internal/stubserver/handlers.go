package stubserver

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/avydrenko/shortdash/internal/entity"
	"github.com/avydrenko/shortdash/pkg/response"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"golang.org/x/crypto/bcrypt"
)

const shortURLLength = 7

// Server holds the stub backend's handlers and state.
type Server struct {
	repo     *repo
	sessions *sessions
	validate *validator.Validate
}

func validationErrorResponse(err error) response.Response {
	var fields []string
	var errs validator.ValidationErrors
	if errors.As(err, &errs) {
		for _, e := range errs {
			fields = append(fields, e.Field())
		}
	}
	if len(fields) == 0 {
		return response.Error(http.StatusBadRequest, "Validation failed.")
	}
	return response.Error(http.StatusBadRequest,
		fmt.Sprintf("Validation failed for: %s.", strings.Join(fields, ", ")))
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := render.DecodeJSON(r.Body, v); err != nil {
		if errors.Is(err, io.EOF) {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.EmptyRequestBodyResponse)
			return false
		}

		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.InvalidRequestBodyResponse)
		return false
	}

	if err := s.validate.Struct(v); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, validationErrorResponse(err))
		return false
	}

	return true
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if !s.decode(w, r, &req) {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.ServerErrorResponse)
		return
	}

	u, err := s.repo.createUser(req.Email, req.FirstName, req.LastName, entity.Role(req.Role), hash)
	if err != nil {
		render.Status(r, http.StatusConflict)
		render.JSON(w, r, response.EmailTakenResponse)
		return
	}

	if err := s.sessions.issue(w, u.ID); err != nil {
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.ServerErrorResponse)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, response.Success(http.StatusCreated, "Account created.", toUserResponse(u)))
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !s.decode(w, r, &req) {
		return
	}

	u, ok := s.repo.userByEmail(req.Email)
	if !ok || bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(req.Password)) != nil {
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, response.InvalidCredentialsResponse)
		return
	}

	if err := s.sessions.issue(w, u.ID); err != nil {
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.ServerErrorResponse)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, response.Success(http.StatusOK, "Logged in.", toUserResponse(u)))
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.sessions.clear(w)

	render.Status(r, http.StatusOK)
	render.JSON(w, r, response.Success(http.StatusOK, "Logged out.", nil))
}

func (s *Server) handleGetRecords(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, response.UnauthorizedResponse)
		return
	}

	records := s.repo.listRecords(userID)

	render.Status(r, http.StatusOK)
	render.JSON(w, r, response.Success(http.StatusOK, "Records fetched.", records))
}

func (s *Server) handleGetRecord(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromContext(r.Context())
	id := chi.URLParam(r, "id")

	record, ok := s.repo.getRecord(userID, id)
	if !ok {
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, response.RecordNotFoundResponse)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, response.Success(http.StatusOK, "Record fetched.", record))
}

func (s *Server) handleCreateRecord(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromContext(r.Context())

	var req recordRequest
	if !s.decode(w, r, &req) {
		return
	}

	// Retry on short-code collision the way a real shortener would.
	for {
		shortURL, err := gonanoid.New(shortURLLength)
		if err != nil {
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.ServerErrorResponse)
			return
		}

		record, err := s.repo.createRecord(userID, req.OriginalURL, shortURL)
		if err != nil {
			continue
		}

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, response.Success(http.StatusCreated, "Record created.", record))
		return
	}
}

func (s *Server) handleUpdateRecord(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromContext(r.Context())
	id := chi.URLParam(r, "id")

	var req recordRequest
	if !s.decode(w, r, &req) {
		return
	}

	record, ok := s.repo.updateRecord(userID, id, req.OriginalURL)
	if !ok {
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, response.RecordNotFoundResponse)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, response.Success(http.StatusOK, "Record updated.", record))
}

func (s *Server) handleDeleteRecord(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromContext(r.Context())
	id := chi.URLParam(r, "id")

	record, ok := s.repo.deleteRecord(userID, id)
	if !ok {
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, response.RecordNotFoundResponse)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, response.Success(http.StatusOK, "Record deleted.", record))
}

func (s *Server) handleRedirect(w http.ResponseWriter, r *http.Request) {
	shortURL := chi.URLParam(r, "shortURL")

	record, ok := s.repo.resolve(shortURL)
	if !ok {
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, response.RecordNotFoundResponse)
		return
	}

	http.Redirect(w, r, record.OriginalURL, http.StatusFound)
}
