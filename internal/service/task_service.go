package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/docnhanh/newsdesk/internal/audit"
	"github.com/docnhanh/newsdesk/internal/domain"
	"github.com/docnhanh/newsdesk/internal/notify"
	"github.com/docnhanh/newsdesk/internal/rbac"
	"github.com/docnhanh/newsdesk/internal/repository"
)

// TaskService coordinates task mutations: every operation runs in one
// transaction so the task row, its history record, and the audit entry
// commit or roll back together.
type TaskService struct {
	pool        *pgxpool.Pool
	taskRepo    *repository.TaskRepository
	updateRepo  *repository.TaskUpdateRepository
	actorRepo   *repository.ActorRepository
	deptRepo    *repository.DepartmentRepository
	articleRepo *repository.ArticleRepository
	guard       *rbac.Guard
	recorder    *audit.Recorder
	publisher   *notify.Publisher
}

// NewTaskService creates a new TaskService.
func NewTaskService(
	pool *pgxpool.Pool,
	taskRepo *repository.TaskRepository,
	updateRepo *repository.TaskUpdateRepository,
	actorRepo *repository.ActorRepository,
	deptRepo *repository.DepartmentRepository,
	articleRepo *repository.ArticleRepository,
	guard *rbac.Guard,
	recorder *audit.Recorder,
	publisher *notify.Publisher,
) *TaskService {
	return &TaskService{
		pool:        pool,
		taskRepo:    taskRepo,
		updateRepo:  updateRepo,
		actorRepo:   actorRepo,
		deptRepo:    deptRepo,
		articleRepo: articleRepo,
		guard:       guard,
		recorder:    recorder,
		publisher:   publisher,
	}
}

// CreateTaskParams holds the fields accepted when creating a task.
type CreateTaskParams struct {
	Title        string
	Description  string
	AssigneeID   string
	DepartmentID string
	Priority     domain.TaskPriority
	DueDate      time.Time
	ArticleID    *string
}

// TaskPatch is a closed set of optional field edits. Nil means
// "leave unchanged"; unknown fields cannot exist by construction.
type TaskPatch struct {
	Title        *string
	Description  *string
	AssigneeID   *string
	DepartmentID *string
	Status       *domain.TaskStatus
	Priority     *domain.TaskPriority
	DueDate      *time.Time
	Comment      *string
}

// BulkChange is the restricted field subset bulk update may touch.
type BulkChange struct {
	Status     *domain.TaskStatus
	Priority   *domain.TaskPriority
	AssigneeID *string
}

// rollback discards a transaction, ignoring the error from an already
// committed one.
func rollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && err.Error() != "tx is closed" {
		slog.Error("failed to rollback transaction", "error", err)
	}
}

// validateAssignee verifies the assignee exists and is active.
func (s *TaskService) validateAssignee(ctx context.Context, assigneeID string) error {
	assignee, err := s.actorRepo.GetByID(ctx, assigneeID)
	if err != nil {
		if errors.Is(err, domain.ErrActorNotFound) {
			return domain.NewValidationError("assignee_id", "unknown actor")
		}
		return err
	}
	if !assignee.IsActive() {
		return domain.NewValidationError("assignee_id", "actor is disabled")
	}
	return nil
}

// validateDepartment verifies the department exists.
func (s *TaskService) validateDepartment(ctx context.Context, departmentID string) error {
	if _, err := s.deptRepo.GetByID(ctx, departmentID); err != nil {
		if errors.Is(err, domain.ErrDepartmentNotFound) {
			return domain.NewValidationError("department_id", "unknown department")
		}
		return err
	}
	return nil
}

// recordUpdateAndCommit persists a history record and the audit entry
// within the transaction, then commits.
func (s *TaskService) recordUpdateAndCommit(
	ctx context.Context,
	tx pgx.Tx,
	update *domain.TaskUpdate,
	entry *domain.AuditLogEntry,
) error {
	if err := s.updateRepo.Create(ctx, tx, update); err != nil {
		return fmt.Errorf("create task update: %w", err)
	}
	if err := s.recorder.Record(ctx, tx, entry); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// taskAuditEntry builds the audit entry shared by all task operations.
func taskAuditEntry(actor *domain.Actor, action string, actionType domain.AuditActionType, task *domain.Task) *domain.AuditLogEntry {
	id := task.ID
	return &domain.AuditLogEntry{
		ActorID:    actor.ID,
		Action:     action,
		ActionType: actionType,
		Module:     domain.ModuleTaskAssignment,
		EntityType: "task",
		EntityID:   &id,
		EntityName: task.Title,
	}
}

// snapshot serializes a field map for history old/new values.
func snapshot(fields map[string]string) *string {
	if len(fields) == 0 {
		return nil
	}
	data, err := json.Marshal(fields)
	if err != nil {
		return nil
	}
	s := string(data)
	return &s
}

// CreateTask creates a task in the initial workflow state.
func (s *TaskService) CreateTask(ctx context.Context, actor *domain.Actor, params CreateTaskParams) (*domain.Task, error) {
	if _, err := s.guard.Authorize(actor, domain.ModuleTaskAssignment, domain.ActionCreate); err != nil {
		return nil, err
	}

	if strings.TrimSpace(params.Title) == "" {
		return nil, domain.NewValidationError("title", "must not be empty")
	}
	if params.Priority != "" && !params.Priority.IsValid() {
		return nil, domain.NewValidationError("priority", fmt.Sprintf("unknown priority %q", params.Priority))
	}
	if err := s.validateAssignee(ctx, params.AssigneeID); err != nil {
		return nil, err
	}
	if err := s.validateDepartment(ctx, params.DepartmentID); err != nil {
		return nil, err
	}
	if params.ArticleID != nil {
		if _, err := s.articleRepo.GetByID(ctx, *params.ArticleID); err != nil {
			if errors.Is(err, domain.ErrArticleNotFound) {
				return nil, domain.NewValidationError("article_id", "unknown article")
			}
			return nil, err
		}
	}

	task := &domain.Task{
		Title:            params.Title,
		Description:      params.Description,
		AssigneeID:       params.AssigneeID,
		DepartmentID:     params.DepartmentID,
		CreatorID:        actor.ID,
		Status:           domain.TaskStatusTodo,
		Priority:         params.Priority,
		DueDate:          params.DueDate,
		ArticleID:        params.ArticleID,
		SubmissionStatus: domain.SubmissionNotSubmitted,
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer rollback(ctx, tx)

	if err := s.taskRepo.Create(ctx, tx, task); err != nil {
		return nil, err
	}

	update := &domain.TaskUpdate{
		TaskID:  task.ID,
		Type:    domain.UpdateTypeCreated,
		ActorID: actor.ID,
		NewValue: snapshot(map[string]string{
			"status":      string(task.Status),
			"priority":    string(task.Priority),
			"assignee_id": task.AssigneeID,
		}),
	}
	if err := s.recordUpdateAndCommit(ctx, tx, update, taskAuditEntry(actor, "task_created", domain.AuditCreate, task)); err != nil {
		return nil, err
	}

	slog.Info("task created", "task_id", task.ID, "actor_id", actor.ID, "assignee_id", task.AssigneeID)

	s.publisher.Publish(ctx, notify.Event{
		Kind:       notify.EventTaskAssigned,
		TaskID:     task.ID,
		TaskTitle:  task.Title,
		ActorID:    actor.ID,
		AssigneeID: task.AssigneeID,
	})

	return task, nil
}

// GetTask returns a single task.
func (s *TaskService) GetTask(ctx context.Context, taskID string) (*domain.Task, error) {
	return s.taskRepo.GetByID(ctx, taskID)
}

// ListTasks returns tasks matching the filters plus the unpaginated total.
func (s *TaskService) ListTasks(ctx context.Context, filters repository.TaskListFilters) ([]*domain.Task, int, error) {
	return s.taskRepo.List(ctx, filters)
}

// GetTaskHistory returns a task's history records, newest first.
func (s *TaskService) GetTaskHistory(ctx context.Context, taskID string) ([]*domain.TaskUpdate, error) {
	if _, err := s.taskRepo.GetByID(ctx, taskID); err != nil {
		return nil, err
	}
	return s.updateRepo.GetByTaskID(ctx, taskID)
}

// TaskStats returns aggregate task counts for dashboards.
func (s *TaskService) TaskStats(ctx context.Context, actor *domain.Actor, filters repository.StatsFilters) (*repository.TaskStatsResult, error) {
	if _, err := s.guard.Authorize(actor, domain.ModuleReporting, domain.ActionView); err != nil {
		return nil, err
	}
	return s.taskRepo.GetTaskStats(ctx, filters)
}

// applyStatus sets a new status plus its timestamp side effects.
func applyStatus(task *domain.Task, status domain.TaskStatus, now time.Time) {
	task.Status = status
	switch status {
	case domain.TaskStatusInProgress:
		if task.StartedAt == nil {
			task.StartedAt = &now
		}
	case domain.TaskStatusCompleted:
		task.CompletedAt = &now
	}
}

// UpdateTask applies a field patch to a task. Allowed for the current
// assignee or anyone holding task-assignment/edit. All changed fields
// land in one history record tagged by the dominant change type, and
// one audit entry.
func (s *TaskService) UpdateTask(ctx context.Context, actor *domain.Actor, taskID string, patch TaskPatch) (*domain.Task, error) {
	if patch.Status != nil && !patch.Status.IsValid() {
		return nil, domain.NewValidationError("status", fmt.Sprintf("unknown status %q", *patch.Status))
	}
	if patch.Priority != nil && !patch.Priority.IsValid() {
		return nil, domain.NewValidationError("priority", fmt.Sprintf("unknown priority %q", *patch.Priority))
	}
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return nil, domain.NewValidationError("title", "must not be empty")
	}
	if patch.AssigneeID != nil {
		if err := s.validateAssignee(ctx, *patch.AssigneeID); err != nil {
			return nil, err
		}
	}
	if patch.DepartmentID != nil {
		if err := s.validateDepartment(ctx, *patch.DepartmentID); err != nil {
			return nil, err
		}
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer rollback(ctx, tx)

	task, err := s.taskRepo.GetByIDForUpdate(ctx, tx, taskID)
	if err != nil {
		return nil, err
	}

	if !task.IsAssignedTo(actor.ID) {
		if _, err := s.guard.Authorize(actor, domain.ModuleTaskAssignment, domain.ActionEdit); err != nil {
			return nil, err
		}
	} else if !actor.IsActive() {
		return nil, domain.ErrActorDisabled
	}

	now := time.Now().UTC()
	var changes []domain.FieldChange

	if patch.Title != nil && *patch.Title != task.Title {
		changes = append(changes, domain.FieldChange{Field: "title", Old: task.Title, New: *patch.Title})
		task.Title = *patch.Title
	}
	if patch.Description != nil && *patch.Description != task.Description {
		changes = append(changes, domain.FieldChange{Field: "description", Old: task.Description, New: *patch.Description})
		task.Description = *patch.Description
	}
	if patch.AssigneeID != nil && *patch.AssigneeID != task.AssigneeID {
		changes = append(changes, domain.FieldChange{Field: "assignee_id", Old: task.AssigneeID, New: *patch.AssigneeID})
		task.AssigneeID = *patch.AssigneeID
	}
	if patch.DepartmentID != nil && *patch.DepartmentID != task.DepartmentID {
		changes = append(changes, domain.FieldChange{Field: "department_id", Old: task.DepartmentID, New: *patch.DepartmentID})
		task.DepartmentID = *patch.DepartmentID
	}
	if patch.Status != nil && *patch.Status != task.Status {
		changes = append(changes, domain.FieldChange{Field: "status", Old: string(task.Status), New: string(*patch.Status)})
		applyStatus(task, *patch.Status, now)
	}
	if patch.Priority != nil && *patch.Priority != task.Priority {
		changes = append(changes, domain.FieldChange{Field: "priority", Old: string(task.Priority), New: string(*patch.Priority)})
		task.Priority = *patch.Priority
	}
	if patch.DueDate != nil && !patch.DueDate.Equal(task.DueDate) {
		changes = append(changes, domain.FieldChange{
			Field: "due_date",
			Old:   task.DueDate.Format(time.RFC3339),
			New:   patch.DueDate.Format(time.RFC3339),
		})
		task.DueDate = *patch.DueDate
	}

	if len(changes) == 0 {
		return task, nil
	}

	if err := task.Workflow().Validate(); err != nil {
		return nil, err
	}

	if err := s.taskRepo.Save(ctx, tx, task); err != nil {
		return nil, err
	}

	oldFields := make(map[string]string, len(changes))
	newFields := make(map[string]string, len(changes))
	changedFields := make([]string, 0, len(changes))
	for _, c := range changes {
		oldFields[c.Field] = c.Old
		newFields[c.Field] = c.New
		changedFields = append(changedFields, c.Field)
	}

	update := &domain.TaskUpdate{
		TaskID:        task.ID,
		Type:          domain.DominantUpdateType(changes),
		ActorID:       actor.ID,
		OldValue:      snapshot(oldFields),
		NewValue:      snapshot(newFields),
		Comment:       patch.Comment,
		ChangedFields: changedFields,
	}
	entry := taskAuditEntry(actor, "task_updated", domain.AuditUpdate, task)
	entry.OldValue = update.OldValue
	entry.NewValue = update.NewValue

	if err := s.recordUpdateAndCommit(ctx, tx, update, entry); err != nil {
		return nil, err
	}

	slog.Info("task updated",
		"task_id", task.ID,
		"actor_id", actor.ID,
		"update_type", update.Type,
		"changed_fields", changedFields,
	)

	switch update.Type {
	case domain.UpdateTypeStatusChanged:
		s.publisher.Publish(ctx, notify.Event{
			Kind:      notify.EventTaskStatusChanged,
			TaskID:    task.ID,
			TaskTitle: task.Title,
			ActorID:   actor.ID,
			Detail:    string(task.Status),
		})
	case domain.UpdateTypeReassigned:
		s.publisher.Publish(ctx, notify.Event{
			Kind:       notify.EventTaskAssigned,
			TaskID:     task.ID,
			TaskTitle:  task.Title,
			ActorID:    actor.ID,
			AssigneeID: task.AssigneeID,
		})
	}

	return task, nil
}

// SubmitTask puts the assignee's work up for review, optionally binding
// an article to the task.
func (s *TaskService) SubmitTask(ctx context.Context, actor *domain.Actor, taskID string, articleID *string) (*domain.Task, error) {
	if !actor.IsActive() {
		return nil, domain.ErrActorDisabled
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer rollback(ctx, tx)

	task, err := s.taskRepo.GetByIDForUpdate(ctx, tx, taskID)
	if err != nil {
		return nil, err
	}

	if !task.IsAssignedTo(actor.ID) {
		return nil, domain.ErrNotAssignee
	}
	if !task.Workflow().CanSubmit() {
		return nil, fmt.Errorf("%w: task is already pending review", domain.ErrStateConflict)
	}

	oldSubmission := task.SubmissionStatus
	now := time.Now().UTC()
	task.SubmissionStatus = domain.SubmissionPendingReview
	task.SubmittedAt = &now
	task.ReviewedAt = nil
	task.ReviewerID = nil

	if articleID != nil && !task.HasArticle() {
		if _, err := s.articleRepo.GetByID(ctx, *articleID); err != nil {
			if errors.Is(err, domain.ErrArticleNotFound) {
				return nil, domain.NewValidationError("article_id", "unknown article")
			}
			return nil, err
		}
		task.ArticleID = articleID
	}

	if err := task.Workflow().Validate(); err != nil {
		return nil, err
	}
	if err := s.taskRepo.Save(ctx, tx, task); err != nil {
		return nil, err
	}

	oldVal := string(oldSubmission)
	newVal := string(domain.SubmissionPendingReview)
	update := &domain.TaskUpdate{
		TaskID:   task.ID,
		Type:     domain.UpdateTypeSubmitted,
		ActorID:  actor.ID,
		OldValue: &oldVal,
		NewValue: &newVal,
	}
	if err := s.recordUpdateAndCommit(ctx, tx, update, taskAuditEntry(actor, "task_submitted", domain.AuditUpdate, task)); err != nil {
		return nil, err
	}

	slog.Info("task submitted", "task_id", task.ID, "actor_id", actor.ID)

	s.publisher.Publish(ctx, notify.Event{
		Kind:      notify.EventTaskSubmitted,
		TaskID:    task.ID,
		TaskTitle: task.Title,
		ActorID:   actor.ID,
	})

	return task, nil
}

// ReviewTask applies a review decision to a submitted task.
func (s *TaskService) ReviewTask(
	ctx context.Context,
	actor *domain.Actor,
	taskID string,
	action domain.ReviewAction,
	revisionNotes string,
) (*domain.Task, error) {
	if _, err := s.guard.Authorize(actor, domain.ModuleTaskAssignment, domain.ActionApprove); err != nil {
		return nil, err
	}
	if !action.IsValid() {
		return nil, domain.NewValidationError("action", fmt.Sprintf("unknown review action %q", action))
	}
	if action == domain.ReviewActionRequestRevision && strings.TrimSpace(revisionNotes) == "" {
		return nil, domain.NewValidationError("revision_notes", "required when requesting revision")
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer rollback(ctx, tx)

	task, err := s.taskRepo.GetByIDForUpdate(ctx, tx, taskID)
	if err != nil {
		return nil, err
	}

	if !task.Workflow().CanReview() {
		return nil, fmt.Errorf("%w: task is not pending review", domain.ErrStateConflict)
	}

	oldStatus := task.Status
	oldSubmission := task.SubmissionStatus
	now := time.Now().UTC()

	switch action {
	case domain.ReviewActionApprove:
		task.SubmissionStatus = domain.SubmissionApproved
		applyStatus(task, domain.TaskStatusCompleted, now)
	case domain.ReviewActionRequestRevision:
		task.SubmissionStatus = domain.SubmissionRevisionRequested
		task.Status = domain.TaskStatusTodo
		task.RevisionNotes = &revisionNotes
	}
	task.ReviewedAt = &now
	reviewerID := actor.ID
	task.ReviewerID = &reviewerID

	if err := task.Workflow().Validate(); err != nil {
		return nil, err
	}
	if err := s.taskRepo.Save(ctx, tx, task); err != nil {
		return nil, err
	}

	var comment *string
	if task.RevisionNotes != nil && action == domain.ReviewActionRequestRevision {
		comment = task.RevisionNotes
	}
	update := &domain.TaskUpdate{
		TaskID:  task.ID,
		Type:    domain.UpdateTypeReviewed,
		ActorID: actor.ID,
		OldValue: snapshot(map[string]string{
			"status":            string(oldStatus),
			"submission_status": string(oldSubmission),
		}),
		NewValue: snapshot(map[string]string{
			"status":            string(task.Status),
			"submission_status": string(task.SubmissionStatus),
		}),
		Comment: comment,
	}
	if err := s.recordUpdateAndCommit(ctx, tx, update, taskAuditEntry(actor, "task_reviewed", domain.AuditUpdate, task)); err != nil {
		return nil, err
	}

	slog.Info("task reviewed",
		"task_id", task.ID,
		"actor_id", actor.ID,
		"action", action,
	)

	s.publisher.Publish(ctx, notify.Event{
		Kind:       notify.EventTaskReviewed,
		TaskID:     task.ID,
		TaskTitle:  task.Title,
		ActorID:    actor.ID,
		AssigneeID: task.AssigneeID,
		Detail:     string(action),
	})

	return task, nil
}

// BulkUpdateTasks applies one change set across many tasks. Unknown IDs
// are skipped rather than failing the batch, and no per-task history
// records are written; only the batch itself is audited.
func (s *TaskService) BulkUpdateTasks(ctx context.Context, actor *domain.Actor, taskIDs []string, change BulkChange) (int, error) {
	if _, err := s.guard.Authorize(actor, domain.ModuleTaskAssignment, domain.ActionEdit); err != nil {
		return 0, err
	}
	if len(taskIDs) == 0 {
		return 0, domain.NewValidationError("task_ids", "must not be empty")
	}
	if change.Status == nil && change.Priority == nil && change.AssigneeID == nil {
		return 0, domain.NewValidationError("updates", "no changes supplied")
	}
	if change.Status != nil && !change.Status.IsValid() {
		return 0, domain.NewValidationError("status", fmt.Sprintf("unknown status %q", *change.Status))
	}
	if change.Priority != nil && !change.Priority.IsValid() {
		return 0, domain.NewValidationError("priority", fmt.Sprintf("unknown priority %q", *change.Priority))
	}
	if change.AssigneeID != nil {
		if err := s.validateAssignee(ctx, *change.AssigneeID); err != nil {
			return 0, err
		}
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer rollback(ctx, tx)

	now := time.Now().UTC()
	updated := 0
	for _, taskID := range taskIDs {
		task, err := s.taskRepo.GetByIDForUpdate(ctx, tx, taskID)
		if err != nil {
			if errors.Is(err, domain.ErrTaskNotFound) {
				continue
			}
			return 0, err
		}

		if change.Status != nil {
			applyStatus(task, *change.Status, now)
		}
		if change.Priority != nil {
			task.Priority = *change.Priority
		}
		if change.AssigneeID != nil {
			task.AssigneeID = *change.AssigneeID
		}

		if err := task.Workflow().Validate(); err != nil {
			return 0, err
		}
		if err := s.taskRepo.Save(ctx, tx, task); err != nil {
			return 0, err
		}
		updated++
	}

	ids := strings.Join(taskIDs, ",")
	entry := &domain.AuditLogEntry{
		ActorID:    actor.ID,
		Action:     "tasks_bulk_updated",
		ActionType: domain.AuditUpdate,
		Module:     domain.ModuleTaskAssignment,
		EntityType: "task",
		EntityName: fmt.Sprintf("%d tasks", updated),
		NewValue:   snapshot(bulkChangeFields(change)),
		OldValue:   &ids,
	}
	if err := s.recorder.Record(ctx, tx, entry); err != nil {
		return 0, err
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit transaction: %w", err)
	}

	slog.Info("tasks bulk updated",
		"actor_id", actor.ID,
		"requested", len(taskIDs),
		"updated", updated,
	)
	return updated, nil
}

func bulkChangeFields(change BulkChange) map[string]string {
	fields := make(map[string]string, 3)
	if change.Status != nil {
		fields["status"] = string(*change.Status)
	}
	if change.Priority != nil {
		fields["priority"] = string(*change.Priority)
	}
	if change.AssigneeID != nil {
		fields["assignee_id"] = *change.AssigneeID
	}
	return fields
}

// DeleteTask removes a task and its history. A task with a bound article
// cannot be deleted until the article is detached.
func (s *TaskService) DeleteTask(ctx context.Context, actor *domain.Actor, taskID string) error {
	if _, err := s.guard.Authorize(actor, domain.ModuleTaskAssignment, domain.ActionDelete); err != nil {
		return err
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer rollback(ctx, tx)

	task, err := s.taskRepo.GetByIDForUpdate(ctx, tx, taskID)
	if err != nil {
		return err
	}

	if task.HasArticle() {
		return fmt.Errorf("%w: task has a linked article", domain.ErrStateConflict)
	}

	if err := s.taskRepo.Delete(ctx, tx, taskID); err != nil {
		return err
	}
	if err := s.recorder.Record(ctx, tx, taskAuditEntry(actor, "task_deleted", domain.AuditDelete, task)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	slog.Info("task deleted", "task_id", taskID, "actor_id", actor.ID)
	return nil
}
