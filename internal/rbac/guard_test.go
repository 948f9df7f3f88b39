package rbac

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docnhanh/newsdesk/internal/domain"
)

func TestGuard_AllowsCapableActor(t *testing.T) {
	guard := NewGuard(NewMatrix())
	actor := &domain.Actor{ID: "a1", Role: domain.RoleDepartmentHead, Status: domain.ActorStatusActive}

	got, err := guard.Authorize(actor, domain.ModuleTaskAssignment, domain.ActionCreate)
	require.NoError(t, err)
	assert.Same(t, actor, got)
}

func TestGuard_DeniesMissingCapability(t *testing.T) {
	guard := NewGuard(NewMatrix())
	actor := &domain.Actor{ID: "a1", Role: domain.RoleReporter, Status: domain.ActorStatusActive}

	_, err := guard.Authorize(actor, domain.ModuleHR, domain.ActionCreate)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)

	var perm *domain.PermissionError
	require.True(t, errors.As(err, &perm))
	assert.Equal(t, domain.ModuleHR, perm.Module)
	assert.Equal(t, domain.ActionCreate, perm.Action)
}

func TestGuard_RejectsDisabledActorBeforeMatrix(t *testing.T) {
	guard := NewGuard(NewMatrix())

	// Even an admin with every capability is rejected when disabled,
	// and the error is authentication-level, not a permission denial.
	actor := &domain.Actor{ID: "a1", Role: domain.RoleAdmin, Status: domain.ActorStatusDisabled}

	_, err := guard.Authorize(actor, domain.ModuleTaskAssignment, domain.ActionView)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrActorDisabled)
	assert.NotErrorIs(t, err, domain.ErrPermissionDenied)
}
