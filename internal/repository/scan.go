package repository

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/docnhanh/newsdesk/internal/domain"
)

var scanJobColumns = []string{
	"id", "source_name", "source_url", "status", "items_found", "items_processed",
	"max_items", "creator_id", "error_message", "started_at", "completed_at", "created_at",
}

// ScanJobRepository handles database operations for content-source scan jobs.
type ScanJobRepository struct {
	pool *pgxpool.Pool
}

// NewScanJobRepository creates a new ScanJobRepository.
func NewScanJobRepository(pool *pgxpool.Pool) *ScanJobRepository {
	return &ScanJobRepository{pool: pool}
}

func scanScanJob(row pgx.Row) (*domain.ScanJob, error) {
	var job domain.ScanJob
	err := row.Scan(
		&job.ID,
		&job.SourceName,
		&job.SourceURL,
		&job.Status,
		&job.ItemsFound,
		&job.ItemsProcessed,
		&job.MaxItems,
		&job.CreatorID,
		&job.ErrorMessage,
		&job.StartedAt,
		&job.CompletedAt,
		&job.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrScanJobNotFound
		}
		return nil, fmt.Errorf("scan scan job: %w", err)
	}
	return &job, nil
}

// GetByID retrieves a scan job by ID.
func (r *ScanJobRepository) GetByID(ctx context.Context, jobID string) (*domain.ScanJob, error) {
	query, args, err := psql.
		Select(scanJobColumns...).
		From("scan_jobs").
		Where(sq.Eq{"id": jobID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build GetByID query for scan job %s: %w", jobID, err)
	}

	return scanScanJob(r.pool.QueryRow(ctx, query, args...))
}

// List retrieves scan jobs with pagination, newest first.
func (r *ScanJobRepository) List(ctx context.Context, limit, offset int) ([]*domain.ScanJob, int, error) {
	query, args, err := psql.
		Select(scanJobColumns...).
		From("scan_jobs").
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build List query for scan jobs: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("query scan jobs: %w", err)
	}
	defer rows.Close()

	var jobs []*domain.ScanJob
	for rows.Next() {
		job, err := scanScanJob(rows)
		if err != nil {
			return nil, 0, err
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate rows: %w", err)
	}

	var total int
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM scan_jobs").Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count scan jobs: %w", err)
	}

	return jobs, total, nil
}

// Create inserts a new pending scan job within a transaction. Execution
// belongs to the external scan worker.
func (r *ScanJobRepository) Create(ctx context.Context, tx pgx.Tx, job *domain.ScanJob) error {
	if job.Status == "" {
		job.Status = domain.ScanStatusPending
	}
	if job.MaxItems == 0 {
		job.MaxItems = 50
	}

	query, args, err := psql.
		Insert("scan_jobs").
		Columns("source_name", "source_url", "status", "max_items", "creator_id").
		Values(job.SourceName, job.SourceURL, job.Status, job.MaxItems, job.CreatorID).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build Create query for scan job: %w", err)
	}

	err = tx.QueryRow(ctx, query, args...).Scan(&job.ID, &job.CreatedAt)
	if err != nil {
		return fmt.Errorf("create scan job: %w", err)
	}
	return nil
}
