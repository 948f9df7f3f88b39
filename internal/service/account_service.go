package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/docnhanh/newsdesk/internal/audit"
	"github.com/docnhanh/newsdesk/internal/auth"
	"github.com/docnhanh/newsdesk/internal/domain"
	"github.com/docnhanh/newsdesk/internal/repository"
)

// AccountService handles login sessions. Tokens are stateless; logout
// only leaves an audit record.
type AccountService struct {
	pool      *pgxpool.Pool
	actorRepo *repository.ActorRepository
	tokens    *auth.Manager
	recorder  *audit.Recorder
}

// NewAccountService creates a new AccountService.
func NewAccountService(
	pool *pgxpool.Pool,
	actorRepo *repository.ActorRepository,
	tokens *auth.Manager,
	recorder *audit.Recorder,
) *AccountService {
	return &AccountService{
		pool:      pool,
		actorRepo: actorRepo,
		tokens:    tokens,
		recorder:  recorder,
	}
}

// Login verifies credentials and issues an access token. Unknown
// usernames and wrong passwords are indistinguishable to the caller.
func (s *AccountService) Login(ctx context.Context, username, password string) (string, *domain.Actor, error) {
	actor, err := s.actorRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrActorNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}
	if !auth.CheckPassword(password, actor.PasswordHash) {
		return "", nil, domain.ErrInvalidCredentials
	}
	if !actor.IsActive() {
		return "", nil, domain.ErrActorDisabled
	}

	token, err := s.tokens.Issue(time.Now(), actor.ID, actor.Role)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return "", nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer rollback(ctx, tx)

	if err := s.actorRepo.TouchLastLogin(ctx, tx, actor.ID); err != nil {
		return "", nil, err
	}

	actorID := actor.ID
	entry := &domain.AuditLogEntry{
		ActorID:    actor.ID,
		Action:     "user_login",
		ActionType: domain.AuditLogin,
		Module:     domain.ModuleAdministration,
		EntityType: "actor",
		EntityID:   &actorID,
		EntityName: actor.FullName,
	}
	if err := s.recorder.Record(ctx, tx, entry); err != nil {
		return "", nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return "", nil, fmt.Errorf("commit transaction: %w", err)
	}

	slog.Info("user logged in", "actor_id", actor.ID, "username", actor.Username)
	return token, actor, nil
}

// Logout records the end of a session. The token itself stays valid
// until it expires.
func (s *AccountService) Logout(ctx context.Context, actor *domain.Actor) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer rollback(ctx, tx)

	actorID := actor.ID
	entry := &domain.AuditLogEntry{
		ActorID:    actor.ID,
		Action:     "user_logout",
		ActionType: domain.AuditLogout,
		Module:     domain.ModuleAdministration,
		EntityType: "actor",
		EntityID:   &actorID,
		EntityName: actor.FullName,
	}
	if err := s.recorder.Record(ctx, tx, entry); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	slog.Info("user logged out", "actor_id", actor.ID)
	return nil
}
