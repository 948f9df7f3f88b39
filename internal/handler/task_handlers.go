package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/docnhanh/newsdesk/internal/auth"
	"github.com/docnhanh/newsdesk/internal/domain"
	"github.com/docnhanh/newsdesk/internal/handler/dto"
	"github.com/docnhanh/newsdesk/internal/repository"
	"github.com/docnhanh/newsdesk/internal/service"
)

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

// parsePagination reads limit/offset query parameters with defaults.
func parsePagination(r *http.Request) (limit, offset int) {
	limit = defaultPageSize
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = min(n, maxPageSize)
		}
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}
	return limit, offset
}

// handleCreateTask creates a new task.
func (h *Handler) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "INVALID_TOKEN", "Authentication required")
		return
	}

	var req dto.CreateTaskRequest
	if err := decodeStrict(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	params := service.CreateTaskParams{
		Title:        req.Title,
		Description:  req.Description,
		AssigneeID:   req.AssigneeID,
		DepartmentID: req.DepartmentID,
		Priority:     domain.TaskPriority(req.Priority),
		ArticleID:    req.ArticleID,
	}
	if req.DueDate != nil {
		params.DueDate = *req.DueDate
	}

	task, err := h.taskService.CreateTask(ctx, actor, params)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, dto.ToTaskResponse(task))
}

// handleGetTask retrieves task details with its change history.
func (h *Handler) handleGetTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	taskID, ok := extractID(w, r)
	if !ok {
		return
	}

	task, err := h.taskService.GetTask(ctx, taskID)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	history, err := h.taskService.GetTaskHistory(ctx, taskID)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	actorIDs := make([]string, 0, len(history))
	for _, u := range history {
		actorIDs = append(actorIDs, u.ActorID)
	}
	names, err := h.actorRepo.Names(ctx, actorIDs)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	records := make([]dto.TaskUpdateResponse, 0, len(history))
	for _, u := range history {
		records = append(records, dto.TaskUpdateResponse{
			ID:            u.ID,
			Type:          string(u.Type),
			ActorID:       u.ActorID,
			ActorName:     names[u.ActorID],
			OldValue:      u.OldValue,
			NewValue:      u.NewValue,
			Comment:       u.Comment,
			ChangedFields: u.ChangedFields,
			CreatedAt:     u.CreatedAt,
		})
	}

	respondJSON(w, http.StatusOK, dto.TaskDetailResponse{
		Task:    dto.ToTaskResponse(task),
		History: records,
	})
}

// handleListTasks lists tasks with filters and pagination.
func (h *Handler) handleListTasks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	limit, offset := parsePagination(r)
	filters := repository.TaskListFilters{
		Search: q.Get("search"),
		Limit:  limit,
		Offset: offset,
	}
	if v := q.Get("status"); v != "" {
		filters.Statuses = strings.Split(v, ",")
	}
	if v := q.Get("priority"); v != "" {
		filters.Priorities = strings.Split(v, ",")
	}
	if v := q.Get("department_id"); v != "" {
		filters.DepartmentID = &v
	}
	if v := q.Get("assignee_id"); v != "" {
		if v == "me" {
			if actor, err := auth.ActorFromContext(ctx); err == nil {
				id := actor.ID
				filters.AssigneeID = &id
			}
		} else {
			filters.AssigneeID = &v
		}
	}
	if v := q.Get("creator_id"); v != "" {
		filters.CreatorID = &v
	}
	if v := q.Get("due_from"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			filters.DueFrom = &t
		}
	}
	if v := q.Get("due_to"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			filters.DueTo = &t
		}
	}

	tasks, total, err := h.taskService.ListTasks(ctx, filters)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	items := make([]dto.TaskResponse, 0, len(tasks))
	assigneeIDs := make([]string, 0, len(tasks))
	for _, task := range tasks {
		assigneeIDs = append(assigneeIDs, task.AssigneeID)
	}
	names, err := h.actorRepo.Names(ctx, assigneeIDs)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	for _, task := range tasks {
		item := dto.ToTaskResponse(task)
		item.AssigneeName = names[task.AssigneeID]
		items = append(items, item)
	}

	respondJSON(w, http.StatusOK, dto.TasksListResponse{
		Tasks:  items,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	})
}

// handleUpdateTask applies a field patch to a task.
func (h *Handler) handleUpdateTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "INVALID_TOKEN", "Authentication required")
		return
	}

	taskID, ok := extractID(w, r)
	if !ok {
		return
	}

	var req dto.UpdateTaskRequest
	if err := decodeStrict(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	patch := service.TaskPatch{
		Title:        req.Title,
		Description:  req.Description,
		AssigneeID:   req.AssigneeID,
		DepartmentID: req.DepartmentID,
		DueDate:      req.DueDate,
		Comment:      req.Comment,
	}
	if req.Status != nil {
		status := domain.TaskStatus(*req.Status)
		patch.Status = &status
	}
	if req.Priority != nil {
		priority := domain.TaskPriority(*req.Priority)
		patch.Priority = &priority
	}

	task, err := h.taskService.UpdateTask(ctx, actor, taskID, patch)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.ToTaskResponse(task))
}

// handleSubmitTask submits a task for review.
func (h *Handler) handleSubmitTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "INVALID_TOKEN", "Authentication required")
		return
	}

	taskID, ok := extractID(w, r)
	if !ok {
		return
	}

	var req dto.SubmitTaskRequest
	if r.ContentLength > 0 {
		if err := decodeStrict(r, &req); err != nil {
			respondError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
			return
		}
	}

	task, err := h.taskService.SubmitTask(ctx, actor, taskID, req.ArticleID)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.ToTaskResponse(task))
}

// handleReviewTask applies a review decision to a submitted task.
func (h *Handler) handleReviewTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "INVALID_TOKEN", "Authentication required")
		return
	}

	taskID, ok := extractID(w, r)
	if !ok {
		return
	}

	var req dto.ReviewTaskRequest
	if err := decodeStrict(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	task, err := h.taskService.ReviewTask(ctx, actor, taskID, domain.ReviewAction(req.Action), req.RevisionNotes)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.ToTaskResponse(task))
}

// handleBulkUpdateTasks applies one change set across many tasks.
func (h *Handler) handleBulkUpdateTasks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "INVALID_TOKEN", "Authentication required")
		return
	}

	var req dto.BulkUpdateRequest
	if err := decodeStrict(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	change := service.BulkChange{AssigneeID: req.Updates.AssigneeID}
	if req.Updates.Status != nil {
		status := domain.TaskStatus(*req.Updates.Status)
		change.Status = &status
	}
	if req.Updates.Priority != nil {
		priority := domain.TaskPriority(*req.Updates.Priority)
		change.Priority = &priority
	}

	updated, err := h.taskService.BulkUpdateTasks(ctx, actor, req.TaskIDs, change)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.BulkUpdateResponse{UpdatedCount: updated})
}

// handleDeleteTask removes a task and its history.
func (h *Handler) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "INVALID_TOKEN", "Authentication required")
		return
	}

	taskID, ok := extractID(w, r)
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(ctx, actor, taskID); err != nil {
		respondDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleTaskStats returns aggregate task counts.
func (h *Handler) handleTaskStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "INVALID_TOKEN", "Authentication required")
		return
	}

	var filters repository.StatsFilters
	if v := q.Get("department_id"); v != "" {
		filters.DepartmentID = &v
	}
	if v := q.Get("assignee_id"); v != "" {
		filters.AssigneeID = &v
	}
	if v := q.Get("from"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			filters.From = &t
		}
	}
	if v := q.Get("to"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			filters.To = &t
		}
	}

	stats, err := h.taskService.TaskStats(ctx, actor, filters)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.TaskStatsResponse{
		Total:          stats.Total,
		ByStatus:       stats.ByStatus,
		ByPriority:     stats.ByPriority,
		Overdue:        stats.Overdue,
		DueToday:       stats.DueToday,
		DueThisWeek:    stats.DueThisWeek,
		CompletionRate: stats.CompletionRate,
	})
}
