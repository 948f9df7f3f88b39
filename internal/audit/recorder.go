// Package audit writes and reads the system-wide activity trail.
//
// Entries are append-only: there is no update or delete path, by
// contract. Every state-changing operation records its entry inside the
// same transaction as the mutation itself, so a task is never left
// mutated-but-unaudited.
package audit

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/docnhanh/newsdesk/internal/domain"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var auditColumns = []string{
	"id", "actor_id", "action", "action_type", "module", "entity_type",
	"entity_id", "entity_name", "old_value", "new_value", "created_at",
}

// ErrInvalidEntry is returned for entries missing required fields.
var ErrInvalidEntry = errors.New("audit: invalid entry")

// Recorder is the append-only sink for audit entries. It has no
// business-rule knowledge.
type Recorder struct {
	clock func() time.Time
}

// NewRecorder creates a Recorder using the wall clock.
func NewRecorder() *Recorder {
	return &Recorder{clock: time.Now}
}

// Record validates and persists one entry within the caller's
// transaction. Called once per logically distinct mutation, not once per
// field.
func (r *Recorder) Record(ctx context.Context, tx pgx.Tx, entry *domain.AuditLogEntry) error {
	if entry.ActorID == "" || entry.Action == "" || entry.ActionType == "" || entry.Module == "" {
		return ErrInvalidEntry
	}
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = r.clock().UTC()
	}

	query, args, err := psql.
		Insert("audit_log").
		Columns(auditColumns...).
		Values(entry.ID, entry.ActorID, entry.Action, entry.ActionType, entry.Module,
			entry.EntityType, entry.EntityID, entry.EntityName,
			entry.OldValue, entry.NewValue, entry.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build audit insert: %w", err)
	}

	if _, err := tx.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("record audit entry: %w", err)
	}
	return nil
}

// ListFilters holds supported filters for reading the audit trail.
type ListFilters struct {
	Module     *domain.Module
	ActionType *domain.AuditActionType
	ActorID    *string
	From       *time.Time
	To         *time.Time
	Limit      int
	Offset     int
}

// Reader provides paginated access to the audit trail.
type Reader struct {
	pool *pgxpool.Pool
}

// NewReader creates a Reader over the shared pool.
func NewReader(pool *pgxpool.Pool) *Reader {
	return &Reader{pool: pool}
}

// List retrieves audit entries with filters, newest first.
func (r *Reader) List(ctx context.Context, filters ListFilters) ([]*domain.AuditLogEntry, int, error) {
	qb := psql.Select(auditColumns...).From("audit_log")
	countQb := psql.Select("COUNT(*)").From("audit_log")

	apply := func(qb sq.SelectBuilder) sq.SelectBuilder {
		if filters.Module != nil {
			qb = qb.Where(sq.Eq{"module": *filters.Module})
		}
		if filters.ActionType != nil {
			qb = qb.Where(sq.Eq{"action_type": *filters.ActionType})
		}
		if filters.ActorID != nil {
			qb = qb.Where(sq.Eq{"actor_id": *filters.ActorID})
		}
		if filters.From != nil {
			qb = qb.Where(sq.GtOrEq{"created_at": *filters.From})
		}
		if filters.To != nil {
			qb = qb.Where(sq.LtOrEq{"created_at": *filters.To})
		}
		return qb
	}

	query, args, err := apply(qb).
		OrderBy("created_at DESC").
		Limit(uint64(filters.Limit)).
		Offset(uint64(filters.Offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build audit list query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("query audit entries: %w", err)
	}
	defer rows.Close()

	var entries []*domain.AuditLogEntry
	for rows.Next() {
		var entry domain.AuditLogEntry
		err := rows.Scan(
			&entry.ID,
			&entry.ActorID,
			&entry.Action,
			&entry.ActionType,
			&entry.Module,
			&entry.EntityType,
			&entry.EntityID,
			&entry.EntityName,
			&entry.OldValue,
			&entry.NewValue,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("scan audit entry: %w", err)
		}
		entries = append(entries, &entry)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate rows: %w", err)
	}

	countQuery, countArgs, err := apply(countQb).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build audit count query: %w", err)
	}

	var total int
	if err := r.pool.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count audit entries: %w", err)
	}

	return entries, total, nil
}
