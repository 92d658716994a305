package usecase

import (
	"errors"

	"github.com/avydrenko/shortdash/internal/entity"
	"github.com/avydrenko/shortdash/internal/store"
	"go.uber.org/zap"
)

// SessionGuard reacts to authentication failures. Whenever any call is
// classified as an auth error, the local state is cleared and navigation to
// the unauthenticated entry point is signalled. Escalation is uniform across
// fetches and mutations.
type SessionGuard struct {
	store  *store.RecordStore
	nav    Navigator
	logger *zap.Logger
}

func NewSessionGuard(st *store.RecordStore, nav Navigator, logger *zap.Logger) *SessionGuard {
	return &SessionGuard{
		store:  st,
		nav:    nav,
		logger: logger,
	}
}

// Intercept clears the store and signals navigation when err is an auth
// failure. It reports whether it escalated.
func (g *SessionGuard) Intercept(err error) bool {
	if !errors.Is(err, entity.ErrAuth) {
		return false
	}

	g.logger.Warn("session rejected by server, clearing local state", zap.Error(err))
	g.store.Clear()
	g.nav.ToLogin()
	return true
}
