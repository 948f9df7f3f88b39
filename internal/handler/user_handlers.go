package handler

import (
	"net/http"

	"github.com/docnhanh/newsdesk/internal/auth"
	"github.com/docnhanh/newsdesk/internal/domain"
	"github.com/docnhanh/newsdesk/internal/handler/dto"
	"github.com/docnhanh/newsdesk/internal/repository"
	"github.com/docnhanh/newsdesk/internal/service"
)

// handleListUsers lists staff accounts with filters.
func (h *Handler) handleListUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "INVALID_TOKEN", "Authentication required")
		return
	}

	limit, offset := parsePagination(r)
	filters := repository.ActorListFilters{Limit: limit, Offset: offset}
	if v := q.Get("role"); v != "" {
		role := domain.Role(v)
		filters.Role = &role
	}
	if v := q.Get("department_id"); v != "" {
		filters.DepartmentID = &v
	}
	if v := q.Get("status"); v != "" {
		status := domain.ActorStatus(v)
		filters.Status = &status
	}

	actors, total, err := h.actorService.ListActors(ctx, actor, filters)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	users := make([]dto.UserResponse, 0, len(actors))
	for _, a := range actors {
		users = append(users, dto.ToUserResponse(a))
	}

	respondJSON(w, http.StatusOK, dto.UsersListResponse{Users: users, Total: total})
}

// handleGetUser returns one staff account.
func (h *Handler) handleGetUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "INVALID_TOKEN", "Authentication required")
		return
	}

	userID, ok := extractID(w, r)
	if !ok {
		return
	}

	subject, err := h.actorService.GetActor(ctx, actor, userID)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.ToUserResponse(subject))
}

// handleCreateUser registers a new staff account.
func (h *Handler) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "INVALID_TOKEN", "Authentication required")
		return
	}

	var req dto.CreateUserRequest
	if err := decodeStrict(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	subject, err := h.actorService.CreateActor(ctx, actor, service.CreateActorParams{
		Username:     req.Username,
		Email:        req.Email,
		FullName:     req.FullName,
		Password:     req.Password,
		Role:         domain.Role(req.Role),
		DepartmentID: req.DepartmentID,
		Position:     req.Position,
	})
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, dto.ToUserResponse(subject))
}

// handleUpdateUser applies a profile patch to a staff account.
func (h *Handler) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "INVALID_TOKEN", "Authentication required")
		return
	}

	userID, ok := extractID(w, r)
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if err := decodeStrict(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	patch := service.ActorPatch{
		Email:        req.Email,
		FullName:     req.FullName,
		Password:     req.Password,
		DepartmentID: req.DepartmentID,
		Position:     req.Position,
	}
	if req.Role != nil {
		role := domain.Role(*req.Role)
		patch.Role = &role
	}
	if req.Status != nil {
		status := domain.ActorStatus(*req.Status)
		patch.Status = &status
	}

	subject, err := h.actorService.UpdateActor(ctx, actor, userID, patch)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.ToUserResponse(subject))
}

// handleDeleteUser removes a staff account.
func (h *Handler) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "INVALID_TOKEN", "Authentication required")
		return
	}

	userID, ok := extractID(w, r)
	if !ok {
		return
	}

	if err := h.actorService.DeleteActor(ctx, actor, userID); err != nil {
		respondDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
