package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/docnhanh/newsdesk/internal/domain"
)

// TaskUpdateRepository handles database operations for task history records.
type TaskUpdateRepository struct {
	pool *pgxpool.Pool
}

// NewTaskUpdateRepository creates a new TaskUpdateRepository.
func NewTaskUpdateRepository(pool *pgxpool.Pool) *TaskUpdateRepository {
	return &TaskUpdateRepository{pool: pool}
}

// Create inserts a new history record within a transaction. Records are
// append-only; there is no update or delete path.
func (r *TaskUpdateRepository) Create(ctx context.Context, tx pgx.Tx, update *domain.TaskUpdate) error {
	if update.ChangedFields == nil {
		update.ChangedFields = []string{}
	}

	query, args, err := psql.
		Insert("task_updates").
		Columns("task_id", "type", "actor_id", "old_value", "new_value", "comment", "changed_fields").
		Values(update.TaskID, update.Type, update.ActorID, update.OldValue,
			update.NewValue, update.Comment, update.ChangedFields).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build Create query for task update: %w", err)
	}

	err = tx.QueryRow(ctx, query, args...).Scan(&update.ID, &update.CreatedAt)
	if err != nil {
		return fmt.Errorf("create task update: %w", err)
	}
	return nil
}

// GetByTaskID retrieves all history records for a task, newest first.
func (r *TaskUpdateRepository) GetByTaskID(ctx context.Context, taskID string) ([]*domain.TaskUpdate, error) {
	query, args, err := psql.
		Select("id", "task_id", "type", "actor_id", "old_value", "new_value", "comment", "changed_fields", "created_at").
		From("task_updates").
		Where(sq.Eq{"task_id": taskID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build GetByTaskID query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query task updates: %w", err)
	}
	defer rows.Close()

	var updates []*domain.TaskUpdate
	for rows.Next() {
		var update domain.TaskUpdate
		err := rows.Scan(
			&update.ID,
			&update.TaskID,
			&update.Type,
			&update.ActorID,
			&update.OldValue,
			&update.NewValue,
			&update.Comment,
			&update.ChangedFields,
			&update.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan task update: %w", err)
		}
		updates = append(updates, &update)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}

	return updates, nil
}

// CountByTaskID returns how many history records a task has.
func (r *TaskUpdateRepository) CountByTaskID(ctx context.Context, taskID string) (int, error) {
	query, args, err := psql.
		Select("COUNT(*)").
		From("task_updates").
		Where(sq.Eq{"task_id": taskID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build CountByTaskID query: %w", err)
	}

	var count int
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count task updates: %w", err)
	}
	return count, nil
}
