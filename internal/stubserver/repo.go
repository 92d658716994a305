// Package stubserver is an in-process fake of the shortening backend. It
// implements the whole REST surface the client consumes: cookie sessions,
// per-user record CRUD and short-link redirects. State lives in memory; the
// package exists for local development and tests, not production.
package stubserver

import (
	"errors"
	"sync"
	"time"

	"github.com/avydrenko/shortdash/internal/entity"
	"github.com/google/uuid"
)

var (
	errEmailTaken = errors.New("email taken")
	errShortTaken = errors.New("short code taken")
)

// user is an account row. The password is stored as a bcrypt hash.
type user struct {
	ID           string
	Email        string
	FirstName    string
	LastName     string
	Role         entity.Role
	PasswordHash []byte
}

type repo struct {
	mu      sync.Mutex
	users   map[string]*user           // keyed by email
	records map[string][]entity.Record // keyed by owner id, insertion order
	short   map[string]string          // short token -> owner id
}

func newRepo() *repo {
	return &repo{
		users:   make(map[string]*user),
		records: make(map[string][]entity.Record),
		short:   make(map[string]string),
	}
}

func (r *repo) createUser(email, firstName, lastName string, role entity.Role, passwordHash []byte) (*user, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[email]; ok {
		return nil, errEmailTaken
	}

	u := &user{
		ID:           uuid.NewString(),
		Email:        email,
		FirstName:    firstName,
		LastName:     lastName,
		Role:         role,
		PasswordHash: passwordHash,
	}
	r.users[email] = u
	return u, nil
}

func (r *repo) userByEmail(email string) (*user, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[email]
	return u, ok
}

// listRecords returns the user's records in insertion order.
func (r *repo) listRecords(userID string) []entity.Record {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]entity.Record, len(r.records[userID]))
	copy(out, r.records[userID])
	return out
}

func (r *repo) getRecord(userID, id string) (entity.Record, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, rec := range r.records[userID] {
		if rec.ID == id {
			return rec, true
		}
	}
	return entity.Record{}, false
}

func (r *repo) createRecord(userID, originalURL, shortURL string) (entity.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.short[shortURL]; ok {
		return entity.Record{}, errShortTaken
	}

	now := time.Now().UTC()
	rec := entity.Record{
		ID:          uuid.NewString(),
		UserID:      userID,
		OriginalURL: originalURL,
		ShortURL:    shortURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	r.records[userID] = append(r.records[userID], rec)
	r.short[shortURL] = userID
	return rec, nil
}

func (r *repo) updateRecord(userID, id, originalURL string) (entity.Record, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	recs := r.records[userID]
	for i := range recs {
		if recs[i].ID == id {
			recs[i].OriginalURL = originalURL
			recs[i].UpdatedAt = time.Now().UTC()
			return recs[i], true
		}
	}
	return entity.Record{}, false
}

func (r *repo) deleteRecord(userID, id string) (entity.Record, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	recs := r.records[userID]
	for i := range recs {
		if recs[i].ID == id {
			rec := recs[i]
			r.records[userID] = append(recs[:i], recs[i+1:]...)
			delete(r.short, rec.ShortURL)
			return rec, true
		}
	}
	return entity.Record{}, false
}

// resolve looks up a short token and bumps its click counter.
func (r *repo) resolve(shortURL string) (entity.Record, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	userID, ok := r.short[shortURL]
	if !ok {
		return entity.Record{}, false
	}

	recs := r.records[userID]
	for i := range recs {
		if recs[i].ShortURL == shortURL {
			recs[i].Counter++
			return recs[i], true
		}
	}
	return entity.Record{}, false
}
