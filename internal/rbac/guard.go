package rbac

import (
	"github.com/docnhanh/newsdesk/internal/domain"
)

// Guard authorizes an authenticated actor against the capability matrix.
// It is the single required checkpoint before any workflow mutation.
type Guard struct {
	matrix *Matrix
}

// NewGuard creates a Guard over an immutable matrix.
func NewGuard(matrix *Matrix) *Guard {
	return &Guard{matrix: matrix}
}

// Authorize verifies the actor is active and holds the capability.
// A non-active actor is rejected with an authentication-level error
// before the matrix is consulted; a capability miss returns a
// PermissionError carrying the module and action. On success the actor
// is returned unchanged so callers can thread it onward.
func (g *Guard) Authorize(actor *domain.Actor, module domain.Module, action domain.Action) (*domain.Actor, error) {
	if !actor.IsActive() {
		return nil, domain.ErrActorDisabled
	}
	if !g.matrix.Allows(actor.Role, module, action) {
		return nil, &domain.PermissionError{Module: module, Action: action}
	}
	return actor, nil
}
