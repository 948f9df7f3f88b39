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

// ScanService records content-source scan requests. Execution belongs
// to an external worker; this service only creates and lists job rows.
type ScanService struct {
	pool     *pgxpool.Pool
	scanRepo *repository.ScanJobRepository
	guard    *rbac.Guard
	recorder *audit.Recorder
}

// NewScanService creates a new ScanService.
func NewScanService(
	pool *pgxpool.Pool,
	scanRepo *repository.ScanJobRepository,
	guard *rbac.Guard,
	recorder *audit.Recorder,
) *ScanService {
	return &ScanService{
		pool:     pool,
		scanRepo: scanRepo,
		guard:    guard,
		recorder: recorder,
	}
}

// CreateScanParams holds the fields accepted when requesting a scan.
type CreateScanParams struct {
	SourceName string
	SourceURL  string
	MaxItems   int
}

// ListScans returns a page of scan jobs, newest first, plus the total.
func (s *ScanService) ListScans(ctx context.Context, limit, offset int) ([]*domain.ScanJob, int, error) {
	return s.scanRepo.List(ctx, limit, offset)
}

// CreateScan queues a scan job in the pending state.
func (s *ScanService) CreateScan(ctx context.Context, actor *domain.Actor, params CreateScanParams) (*domain.ScanJob, error) {
	if _, err := s.guard.Authorize(actor, domain.ModuleAIContent, domain.ActionCreate); err != nil {
		return nil, err
	}
	if strings.TrimSpace(params.SourceName) == "" {
		return nil, domain.NewValidationError("source_name", "must not be empty")
	}
	if strings.TrimSpace(params.SourceURL) == "" {
		return nil, domain.NewValidationError("source_url", "must not be empty")
	}
	if params.MaxItems < 0 {
		return nil, domain.NewValidationError("max_items", "must not be negative")
	}

	job := &domain.ScanJob{
		SourceName: params.SourceName,
		SourceURL:  params.SourceURL,
		Status:     domain.ScanStatusPending,
		MaxItems:   params.MaxItems,
		CreatorID:  actor.ID,
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer rollback(ctx, tx)

	if err := s.scanRepo.Create(ctx, tx, job); err != nil {
		return nil, err
	}

	id := job.ID
	entry := &domain.AuditLogEntry{
		ActorID:    actor.ID,
		Action:     "scan_requested",
		ActionType: domain.AuditCreate,
		Module:     domain.ModuleAIContent,
		EntityType: "scan_job",
		EntityID:   &id,
		EntityName: job.SourceName,
	}
	if err := s.recorder.Record(ctx, tx, entry); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}

	slog.Info("scan job queued", "scan_id", job.ID, "source", job.SourceName, "actor_id", actor.ID)
	return job, nil
}
