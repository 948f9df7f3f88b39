package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/docnhanh/newsdesk/internal/audit"
	"github.com/docnhanh/newsdesk/internal/domain"
	"github.com/docnhanh/newsdesk/internal/rbac"
	"github.com/docnhanh/newsdesk/internal/repository"
)

// DepartmentService manages newsroom desks. Listing is open to any
// authenticated actor; mutations sit behind hr-management.
type DepartmentService struct {
	pool     *pgxpool.Pool
	deptRepo *repository.DepartmentRepository
	guard    *rbac.Guard
	recorder *audit.Recorder
}

// NewDepartmentService creates a new DepartmentService.
func NewDepartmentService(
	pool *pgxpool.Pool,
	deptRepo *repository.DepartmentRepository,
	guard *rbac.Guard,
	recorder *audit.Recorder,
) *DepartmentService {
	return &DepartmentService{
		pool:     pool,
		deptRepo: deptRepo,
		guard:    guard,
		recorder: recorder,
	}
}

// DepartmentParams holds the fields accepted when creating or updating
// a department.
type DepartmentParams struct {
	Name        string
	Description string
	LeaderID    *string
}

func departmentAuditEntry(actor *domain.Actor, action string, actionType domain.AuditActionType, dept *domain.Department) *domain.AuditLogEntry {
	id := dept.ID
	return &domain.AuditLogEntry{
		ActorID:    actor.ID,
		Action:     action,
		ActionType: actionType,
		Module:     domain.ModuleHR,
		EntityType: "department",
		EntityID:   &id,
		EntityName: dept.Name,
	}
}

// ListDepartments returns all departments with their member counts.
func (s *DepartmentService) ListDepartments(ctx context.Context) ([]*domain.Department, map[string]int, error) {
	return s.deptRepo.List(ctx)
}

// MemberCount returns how many actors belong to a department.
func (s *DepartmentService) MemberCount(ctx context.Context, departmentID string) (int, error) {
	return s.deptRepo.MemberCount(ctx, departmentID)
}

// CreateDepartment creates a new desk.
func (s *DepartmentService) CreateDepartment(ctx context.Context, actor *domain.Actor, params DepartmentParams) (*domain.Department, error) {
	if _, err := s.guard.Authorize(actor, domain.ModuleHR, domain.ActionCreate); err != nil {
		return nil, err
	}
	if strings.TrimSpace(params.Name) == "" {
		return nil, domain.NewValidationError("name", "must not be empty")
	}

	dept := &domain.Department{
		Name:        params.Name,
		Description: params.Description,
		LeaderID:    params.LeaderID,
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer rollback(ctx, tx)

	if err := s.deptRepo.Create(ctx, tx, dept); err != nil {
		return nil, err
	}
	if err := s.recorder.Record(ctx, tx, departmentAuditEntry(actor, "department_created", domain.AuditCreate, dept)); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}

	slog.Info("department created", "department_id", dept.ID, "created_by", actor.ID)
	return dept, nil
}

// UpdateDepartment updates a desk's name, description or leader.
func (s *DepartmentService) UpdateDepartment(ctx context.Context, actor *domain.Actor, departmentID string, params DepartmentParams) (*domain.Department, error) {
	if _, err := s.guard.Authorize(actor, domain.ModuleHR, domain.ActionEdit); err != nil {
		return nil, err
	}
	if strings.TrimSpace(params.Name) == "" {
		return nil, domain.NewValidationError("name", "must not be empty")
	}

	dept, err := s.deptRepo.GetByID(ctx, departmentID)
	if err != nil {
		return nil, err
	}

	oldName := dept.Name
	dept.Name = params.Name
	dept.Description = params.Description
	dept.LeaderID = params.LeaderID

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer rollback(ctx, tx)

	if err := s.deptRepo.Update(ctx, tx, dept); err != nil {
		return nil, err
	}

	entry := departmentAuditEntry(actor, "department_updated", domain.AuditUpdate, dept)
	entry.OldValue = &oldName
	entry.NewValue = &dept.Name
	if err := s.recorder.Record(ctx, tx, entry); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}

	slog.Info("department updated", "department_id", dept.ID, "updated_by", actor.ID)
	return dept, nil
}

// DeleteDepartment removes a desk. Departments with members cannot be
// deleted until staff are reassigned.
func (s *DepartmentService) DeleteDepartment(ctx context.Context, actor *domain.Actor, departmentID string) error {
	if _, err := s.guard.Authorize(actor, domain.ModuleHR, domain.ActionDelete); err != nil {
		return err
	}

	dept, err := s.deptRepo.GetByID(ctx, departmentID)
	if err != nil {
		return err
	}

	members, err := s.deptRepo.MemberCount(ctx, departmentID)
	if err != nil {
		return err
	}
	if members > 0 {
		return fmt.Errorf("%w: department has %d members", domain.ErrStateConflict, members)
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer rollback(ctx, tx)

	if err := s.deptRepo.Delete(ctx, tx, departmentID); err != nil {
		return err
	}
	if err := s.recorder.Record(ctx, tx, departmentAuditEntry(actor, "department_deleted", domain.AuditDelete, dept)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	slog.Info("department deleted", "department_id", departmentID, "deleted_by", actor.ID)
	return nil
}
