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

// taskColumns is the shared list of columns for task queries.
var taskColumns = []string{
	"id", "title", "description", "assignee_id", "department_id", "creator_id",
	"status", "priority", "due_date", "article_id", "submission_status",
	"started_at", "completed_at", "submitted_at", "reviewed_at", "reviewer_id",
	"revision_notes", "revision", "created_at", "updated_at",
}

// TaskRepository handles database operations for tasks.
type TaskRepository struct {
	pool *pgxpool.Pool
}

// NewTaskRepository creates a new TaskRepository.
func NewTaskRepository(pool *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{pool: pool}
}

// scanTask scans a single row into a Task struct.
func scanTask(row pgx.Row) (*domain.Task, error) {
	var task domain.Task
	err := row.Scan(
		&task.ID,
		&task.Title,
		&task.Description,
		&task.AssigneeID,
		&task.DepartmentID,
		&task.CreatorID,
		&task.Status,
		&task.Priority,
		&task.DueDate,
		&task.ArticleID,
		&task.SubmissionStatus,
		&task.StartedAt,
		&task.CompletedAt,
		&task.SubmittedAt,
		&task.ReviewedAt,
		&task.ReviewerID,
		&task.RevisionNotes,
		&task.Revision,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, fmt.Errorf("scan task: %w", err)
	}
	return &task, nil
}

// scanTasks scans multiple rows into a slice of Task structs.
func scanTasks(rows pgx.Rows) ([]*domain.Task, error) {
	defer rows.Close()

	var tasks []*domain.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return tasks, nil
}

// GetByID retrieves a task by ID.
func (r *TaskRepository) GetByID(ctx context.Context, taskID string) (*domain.Task, error) {
	query, args, err := psql.
		Select(taskColumns...).
		From("tasks").
		Where(sq.Eq{"id": taskID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build GetByID query for task: %w", err)
	}

	return scanTask(r.pool.QueryRow(ctx, query, args...))
}

// GetByIDForUpdate retrieves a task by ID with FOR UPDATE lock (within transaction).
func (r *TaskRepository) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, taskID string) (*domain.Task, error) {
	query, args, err := psql.
		Select(taskColumns...).
		From("tasks").
		Where(sq.Eq{"id": taskID}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build GetByIDForUpdate query for task %s: %w", taskID, err)
	}

	return scanTask(tx.QueryRow(ctx, query, args...))
}

// Create creates a new task in the database within a transaction.
// The task starts at revision 0 with ID, CreatedAt, and UpdatedAt populated.
func (r *TaskRepository) Create(ctx context.Context, tx pgx.Tx, task *domain.Task) error {
	if task.Status == "" {
		task.Status = domain.TaskStatusTodo
	}
	if task.Priority == "" {
		task.Priority = domain.TaskPriorityMedium
	}
	if task.SubmissionStatus == "" {
		task.SubmissionStatus = domain.SubmissionNotSubmitted
	}

	query, args, err := psql.
		Insert("tasks").
		Columns("title", "description", "assignee_id", "department_id", "creator_id",
			"status", "priority", "due_date", "article_id", "submission_status").
		Values(task.Title, task.Description, task.AssigneeID, task.DepartmentID,
			task.CreatorID, task.Status, task.Priority, task.DueDate,
			task.ArticleID, task.SubmissionStatus).
		Suffix("RETURNING id, revision, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build Create query for task: %w", err)
	}

	err = tx.QueryRow(ctx, query, args...).Scan(&task.ID, &task.Revision, &task.CreatedAt, &task.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create task: %w", err)
	}
	return nil
}

// Save persists all mutable task fields within a transaction using
// optimistic concurrency: the update only applies if the stored revision
// still matches the loaded one, and increments it in the same statement.
// Returns ErrTaskModified when the row changed underneath the caller.
func (r *TaskRepository) Save(ctx context.Context, tx pgx.Tx, task *domain.Task) error {
	query, args, err := psql.
		Update("tasks").
		Set("title", task.Title).
		Set("description", task.Description).
		Set("assignee_id", task.AssigneeID).
		Set("department_id", task.DepartmentID).
		Set("status", task.Status).
		Set("priority", task.Priority).
		Set("due_date", task.DueDate).
		Set("article_id", task.ArticleID).
		Set("submission_status", task.SubmissionStatus).
		Set("started_at", task.StartedAt).
		Set("completed_at", task.CompletedAt).
		Set("submitted_at", task.SubmittedAt).
		Set("reviewed_at", task.ReviewedAt).
		Set("reviewer_id", task.ReviewerID).
		Set("revision_notes", task.RevisionNotes).
		Set("revision", task.Revision+1).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{
			"id":       task.ID,
			"revision": task.Revision,
		}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build Save query for task %s: %w", task.ID, err)
	}

	tag, err := tx.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("save task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTaskModified
	}

	task.Revision++
	return nil
}

// Delete removes a task within a transaction. History records go with it
// via the task_updates cascade.
func (r *TaskRepository) Delete(ctx context.Context, tx pgx.Tx, taskID string) error {
	query, args, err := psql.
		Delete("tasks").
		Where(sq.Eq{"id": taskID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build Delete query for task %s: %w", taskID, err)
	}

	tag, err := tx.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}
