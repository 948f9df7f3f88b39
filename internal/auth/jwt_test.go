package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docnhanh/newsdesk/internal/domain"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	m, err := NewManager("test-secret", "newsdesk", 30*time.Minute)
	require.NoError(t, err)
	return m
}

func TestManager_RequiresSecret(t *testing.T) {
	_, err := NewManager("", "newsdesk", time.Minute)
	require.Error(t, err)
}

func TestManager_IssueAndVerify(t *testing.T) {
	m := newTestManager(t)
	now := time.Now()

	token, err := m.Issue(now, "actor-1", domain.RoleReporter)
	require.NoError(t, err)

	claims, err := m.Verify(token, now.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, "actor-1", claims.ActorID)
	assert.Equal(t, domain.RoleReporter, claims.Role)
	assert.Equal(t, "newsdesk", claims.Issuer)
	assert.NotEmpty(t, claims.ID)
}

func TestManager_RejectsExpiredToken(t *testing.T) {
	m := newTestManager(t)
	now := time.Now()

	token, err := m.Issue(now, "actor-1", domain.RoleReporter)
	require.NoError(t, err)

	_, err = m.Verify(token, now.Add(31*time.Minute))
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestManager_RejectsWrongSecret(t *testing.T) {
	m := newTestManager(t)
	other, err := NewManager("other-secret", "newsdesk", 30*time.Minute)
	require.NoError(t, err)

	token, err := m.Issue(time.Now(), "actor-1", domain.RoleAdmin)
	require.NoError(t, err)

	_, err = other.Verify(token, time.Now())
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestManager_RejectsWrongIssuer(t *testing.T) {
	m := newTestManager(t)
	foreign, err := NewManager("test-secret", "someone-else", 30*time.Minute)
	require.NoError(t, err)

	token, err := foreign.Issue(time.Now(), "actor-1", domain.RoleAdmin)
	require.NoError(t, err)

	_, err = m.Verify(token, time.Now())
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.True(t, CheckPassword("s3cret-pass", hash))
	assert.False(t, CheckPassword("wrong", hash))
}
