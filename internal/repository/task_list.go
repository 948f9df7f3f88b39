package repository

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/docnhanh/newsdesk/internal/domain"
)

// TaskListFilters holds all supported filters for task listing.
type TaskListFilters struct {
	Statuses     []string   // Optional: filter by status
	Priorities   []string   // Optional: filter by priority
	DepartmentID *string    // Optional: filter by department
	AssigneeID   *string    // Optional: filter by assignee
	CreatorID    *string    // Optional: filter by creator
	DueFrom      *time.Time // Optional: due date window start
	DueTo        *time.Time // Optional: due date window end
	Search       string     // Optional: substring match in title/description
	Limit        int        // Required: page size
	Offset       int        // Required: page offset
}

func (f TaskListFilters) apply(qb sq.SelectBuilder) sq.SelectBuilder {
	if len(f.Statuses) > 0 {
		qb = qb.Where(sq.Eq{"status": f.Statuses})
	}
	if len(f.Priorities) > 0 {
		qb = qb.Where(sq.Eq{"priority": f.Priorities})
	}
	if f.DepartmentID != nil {
		qb = qb.Where(sq.Eq{"department_id": *f.DepartmentID})
	}
	if f.AssigneeID != nil {
		qb = qb.Where(sq.Eq{"assignee_id": *f.AssigneeID})
	}
	if f.CreatorID != nil {
		qb = qb.Where(sq.Eq{"creator_id": *f.CreatorID})
	}
	if f.DueFrom != nil {
		qb = qb.Where(sq.GtOrEq{"due_date": *f.DueFrom})
	}
	if f.DueTo != nil {
		qb = qb.Where(sq.LtOrEq{"due_date": *f.DueTo})
	}
	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		qb = qb.Where(sq.Or{
			sq.ILike{"title": pattern},
			sq.ILike{"description": pattern},
		})
	}
	return qb
}

// List retrieves tasks with filters and pagination, newest first.
func (r *TaskRepository) List(ctx context.Context, filters TaskListFilters) ([]*domain.Task, int, error) {
	qb := filters.apply(psql.Select(taskColumns...).From("tasks")).
		OrderBy("created_at DESC").
		Limit(uint64(filters.Limit)).
		Offset(uint64(filters.Offset))

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build List query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("query tasks: %w", err)
	}

	tasks, err := scanTasks(rows)
	if err != nil {
		return nil, 0, err
	}

	countQuery, countArgs, err := filters.apply(psql.Select("COUNT(*)").From("tasks")).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}

	var total int
	if err := r.pool.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count tasks: %w", err)
	}

	return tasks, total, nil
}

// CountLinkedToArticle returns how many tasks reference an article.
func (r *TaskRepository) CountLinkedToArticle(ctx context.Context, articleID string) (int, error) {
	query, args, err := psql.
		Select("COUNT(*)").
		From("tasks").
		Where(sq.Eq{"article_id": articleID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build CountLinkedToArticle query: %w", err)
	}

	var count int
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count linked tasks: %w", err)
	}
	return count, nil
}
