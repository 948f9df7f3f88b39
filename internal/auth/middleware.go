package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/docnhanh/newsdesk/internal/domain"
	"github.com/docnhanh/newsdesk/internal/repository"
)

type contextKey string

// ContextKeyActor is the key for storing the authenticated actor in
// request context.
const ContextKeyActor contextKey = "actor"

// Middleware handles bearer token authentication.
type Middleware struct {
	manager   *Manager
	actorRepo *repository.ActorRepository
}

// NewMiddleware creates an authentication middleware.
func NewMiddleware(manager *Manager, actorRepo *repository.ActorRepository) *Middleware {
	return &Middleware{
		manager:   manager,
		actorRepo: actorRepo,
	}
}

// Authenticate validates the bearer token, resolves the acting user and
// adds it to the request context. Disabled or unknown actors are
// rejected before any handler runs.
func (m *Middleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			http.Error(w, "missing authorization header", http.StatusUnauthorized)
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			http.Error(w, "invalid authorization header format", http.StatusUnauthorized)
			return
		}

		claims, err := m.manager.Verify(parts[1], time.Now())
		if err != nil {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}

		actor, err := m.actorRepo.GetByID(r.Context(), claims.ActorID)
		if err != nil {
			if errors.Is(err, domain.ErrActorNotFound) {
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

		if !actor.IsActive() {
			http.Error(w, "account disabled", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), ContextKeyActor, actor)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ActorFromContext retrieves the authenticated actor from request context.
func ActorFromContext(ctx context.Context) (*domain.Actor, error) {
	actor, ok := ctx.Value(ContextKeyActor).(*domain.Actor)
	if !ok || actor == nil {
		return nil, domain.ErrActorNotFound
	}
	return actor, nil
}
