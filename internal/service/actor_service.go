package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/docnhanh/newsdesk/internal/audit"
	"github.com/docnhanh/newsdesk/internal/auth"
	"github.com/docnhanh/newsdesk/internal/domain"
	"github.com/docnhanh/newsdesk/internal/rbac"
	"github.com/docnhanh/newsdesk/internal/repository"
)

// ActorService manages staff accounts behind the hr-management module.
type ActorService struct {
	pool      *pgxpool.Pool
	actorRepo *repository.ActorRepository
	guard     *rbac.Guard
	recorder  *audit.Recorder
}

// NewActorService creates a new ActorService.
func NewActorService(
	pool *pgxpool.Pool,
	actorRepo *repository.ActorRepository,
	guard *rbac.Guard,
	recorder *audit.Recorder,
) *ActorService {
	return &ActorService{
		pool:      pool,
		actorRepo: actorRepo,
		guard:     guard,
		recorder:  recorder,
	}
}

// CreateActorParams holds the fields accepted when registering staff.
type CreateActorParams struct {
	Username     string
	Email        string
	FullName     string
	Password     string
	Role         domain.Role
	DepartmentID *string
	Position     string
}

// ActorPatch is a closed set of optional profile edits.
type ActorPatch struct {
	Email        *string
	FullName     *string
	Password     *string
	Role         *domain.Role
	DepartmentID *string
	Position     *string
	Status       *domain.ActorStatus
}

func actorAuditEntry(actor *domain.Actor, action string, actionType domain.AuditActionType, subject *domain.Actor) *domain.AuditLogEntry {
	id := subject.ID
	return &domain.AuditLogEntry{
		ActorID:    actor.ID,
		Action:     action,
		ActionType: actionType,
		Module:     domain.ModuleHR,
		EntityType: "actor",
		EntityID:   &id,
		EntityName: subject.FullName,
	}
}

// GetActor returns a single staff account.
func (s *ActorService) GetActor(ctx context.Context, actor *domain.Actor, actorID string) (*domain.Actor, error) {
	if _, err := s.guard.Authorize(actor, domain.ModuleHR, domain.ActionView); err != nil {
		return nil, err
	}
	return s.actorRepo.GetByID(ctx, actorID)
}

// ListActors returns staff matching the filters plus the total count.
func (s *ActorService) ListActors(ctx context.Context, actor *domain.Actor, filters repository.ActorListFilters) ([]*domain.Actor, int, error) {
	if _, err := s.guard.Authorize(actor, domain.ModuleHR, domain.ActionView); err != nil {
		return nil, 0, err
	}
	return s.actorRepo.List(ctx, filters)
}

// CreateActor registers a new staff account with a hashed password.
func (s *ActorService) CreateActor(ctx context.Context, actor *domain.Actor, params CreateActorParams) (*domain.Actor, error) {
	if _, err := s.guard.Authorize(actor, domain.ModuleHR, domain.ActionCreate); err != nil {
		return nil, err
	}

	if strings.TrimSpace(params.Username) == "" {
		return nil, domain.NewValidationError("username", "must not be empty")
	}
	if strings.TrimSpace(params.FullName) == "" {
		return nil, domain.NewValidationError("full_name", "must not be empty")
	}
	if len(params.Password) < 8 {
		return nil, domain.NewValidationError("password", "must be at least 8 characters")
	}
	if !params.Role.IsValid() {
		return nil, domain.NewValidationError("role", fmt.Sprintf("unknown role %q", params.Role))
	}

	hash, err := auth.HashPassword(params.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	subject := &domain.Actor{
		Username:     params.Username,
		Email:        params.Email,
		FullName:     params.FullName,
		PasswordHash: hash,
		Role:         params.Role,
		DepartmentID: params.DepartmentID,
		Position:     params.Position,
		Status:       domain.ActorStatusActive,
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer rollback(ctx, tx)

	if err := s.actorRepo.Create(ctx, tx, subject); err != nil {
		return nil, err
	}
	if err := s.recorder.Record(ctx, tx, actorAuditEntry(actor, "user_created", domain.AuditCreate, subject)); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}

	slog.Info("actor created", "actor_id", subject.ID, "role", subject.Role, "created_by", actor.ID)
	return subject, nil
}

// UpdateActor applies a profile patch to a staff account.
func (s *ActorService) UpdateActor(ctx context.Context, actor *domain.Actor, actorID string, patch ActorPatch) (*domain.Actor, error) {
	if _, err := s.guard.Authorize(actor, domain.ModuleHR, domain.ActionEdit); err != nil {
		return nil, err
	}
	if patch.Role != nil && !patch.Role.IsValid() {
		return nil, domain.NewValidationError("role", fmt.Sprintf("unknown role %q", *patch.Role))
	}
	if patch.Status != nil && !patch.Status.IsValid() {
		return nil, domain.NewValidationError("status", fmt.Sprintf("unknown status %q", *patch.Status))
	}

	subject, err := s.actorRepo.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}

	oldFields := map[string]string{
		"email":     subject.Email,
		"full_name": subject.FullName,
		"role":      string(subject.Role),
		"status":    string(subject.Status),
		"position":  subject.Position,
	}

	if patch.Email != nil {
		subject.Email = *patch.Email
	}
	if patch.FullName != nil {
		subject.FullName = *patch.FullName
	}
	if patch.Password != nil {
		if len(*patch.Password) < 8 {
			return nil, domain.NewValidationError("password", "must be at least 8 characters")
		}
		hash, err := auth.HashPassword(*patch.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		subject.PasswordHash = hash
	}
	if patch.Role != nil {
		subject.Role = *patch.Role
	}
	if patch.DepartmentID != nil {
		subject.DepartmentID = patch.DepartmentID
	}
	if patch.Position != nil {
		subject.Position = *patch.Position
	}
	if patch.Status != nil {
		subject.Status = *patch.Status
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer rollback(ctx, tx)

	if err := s.actorRepo.Update(ctx, tx, subject); err != nil {
		return nil, err
	}

	entry := actorAuditEntry(actor, "user_updated", domain.AuditUpdate, subject)
	entry.OldValue = snapshot(oldFields)
	entry.NewValue = snapshot(map[string]string{
		"email":     subject.Email,
		"full_name": subject.FullName,
		"role":      string(subject.Role),
		"status":    string(subject.Status),
		"position":  subject.Position,
	})
	if err := s.recorder.Record(ctx, tx, entry); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}

	slog.Info("actor updated", "actor_id", subject.ID, "updated_by", actor.ID)
	return subject, nil
}

// DeleteActor removes a staff account. Actors cannot delete themselves.
func (s *ActorService) DeleteActor(ctx context.Context, actor *domain.Actor, actorID string) error {
	if _, err := s.guard.Authorize(actor, domain.ModuleHR, domain.ActionDelete); err != nil {
		return err
	}
	if actor.ID == actorID {
		return domain.NewValidationError("id", "cannot delete own account")
	}

	subject, err := s.actorRepo.GetByID(ctx, actorID)
	if err != nil {
		return err
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer rollback(ctx, tx)

	if err := s.actorRepo.Delete(ctx, tx, actorID); err != nil {
		return err
	}
	if err := s.recorder.Record(ctx, tx, actorAuditEntry(actor, "user_deleted", domain.AuditDelete, subject)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	slog.Info("actor deleted", "actor_id", actorID, "deleted_by", actor.ID)
	return nil
}
