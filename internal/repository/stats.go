package repository

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/docnhanh/newsdesk/internal/domain"
)

// StatsFilters holds filters for task statistics queries.
type StatsFilters struct {
	DepartmentID *string
	AssigneeID   *string
	From         *time.Time
	To           *time.Time
}

func (f StatsFilters) apply(qb sq.SelectBuilder) sq.SelectBuilder {
	if f.DepartmentID != nil {
		qb = qb.Where(sq.Eq{"department_id": *f.DepartmentID})
	}
	if f.AssigneeID != nil {
		qb = qb.Where(sq.Eq{"assignee_id": *f.AssigneeID})
	}
	if f.From != nil {
		qb = qb.Where(sq.GtOrEq{"created_at": *f.From})
	}
	if f.To != nil {
		qb = qb.Where(sq.LtOrEq{"created_at": *f.To})
	}
	return qb
}

// TaskStatsResult holds aggregate task statistics.
type TaskStatsResult struct {
	Total          int
	ByStatus       map[string]int
	ByPriority     map[string]int
	Overdue        int
	DueToday       int
	DueThisWeek    int
	CompletionRate float64
}

// openStatuses are the statuses counted against due-date deadlines.
var openStatuses = []domain.TaskStatus{domain.TaskStatusTodo, domain.TaskStatusInProgress}

// GetTaskStats computes aggregate counts for the dashboard.
func (r *TaskRepository) GetTaskStats(ctx context.Context, filters StatsFilters) (*TaskStatsResult, error) {
	result := &TaskStatsResult{
		ByStatus:   make(map[string]int),
		ByPriority: make(map[string]int),
	}

	statusQuery, statusArgs, err := filters.apply(
		psql.Select("status", "COUNT(*)").From("tasks"),
	).GroupBy("status").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build status stats query: %w", err)
	}

	rows, err := r.pool.Query(ctx, statusQuery, statusArgs...)
	if err != nil {
		return nil, fmt.Errorf("query tasks by status: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("scan status count: %w", err)
		}
		result.ByStatus[status] = count
		result.Total += count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate status rows: %w", err)
	}

	priorityQuery, priorityArgs, err := filters.apply(
		psql.Select("priority", "COUNT(*)").From("tasks"),
	).GroupBy("priority").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build priority stats query: %w", err)
	}

	prows, err := r.pool.Query(ctx, priorityQuery, priorityArgs...)
	if err != nil {
		return nil, fmt.Errorf("query tasks by priority: %w", err)
	}
	defer prows.Close()

	for prows.Next() {
		var priority string
		var count int
		if err := prows.Scan(&priority, &count); err != nil {
			return nil, fmt.Errorf("scan priority count: %w", err)
		}
		result.ByPriority[priority] = count
	}
	if err := prows.Err(); err != nil {
		return nil, fmt.Errorf("iterate priority rows: %w", err)
	}

	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	dueCounts := []struct {
		dest *int
		cond sq.Sqlizer
	}{
		{&result.Overdue, sq.Lt{"due_date": now}},
		{&result.DueToday, sq.And{sq.GtOrEq{"due_date": todayStart}, sq.Lt{"due_date": todayStart.AddDate(0, 0, 1)}}},
		{&result.DueThisWeek, sq.And{sq.GtOrEq{"due_date": todayStart}, sq.Lt{"due_date": todayStart.AddDate(0, 0, 7)}}},
	}

	for _, dc := range dueCounts {
		query, args, err := filters.apply(
			psql.Select("COUNT(*)").From("tasks").
				Where(sq.Eq{"status": openStatuses}).
				Where(dc.cond),
		).ToSql()
		if err != nil {
			return nil, fmt.Errorf("build due-date stats query: %w", err)
		}
		if err := r.pool.QueryRow(ctx, query, args...).Scan(dc.dest); err != nil {
			return nil, fmt.Errorf("count due tasks: %w", err)
		}
	}

	if result.Total > 0 {
		completed := result.ByStatus[string(domain.TaskStatusCompleted)]
		result.CompletionRate = float64(completed) / float64(result.Total) * 100
	}

	return result, nil
}
