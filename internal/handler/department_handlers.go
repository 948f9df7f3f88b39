package handler

import (
	"net/http"

	"github.com/docnhanh/newsdesk/internal/auth"
	"github.com/docnhanh/newsdesk/internal/handler/dto"
	"github.com/docnhanh/newsdesk/internal/service"
)

// handleListDepartments lists all departments with member counts.
func (h *Handler) handleListDepartments(w http.ResponseWriter, r *http.Request) {
	departments, memberCounts, err := h.deptService.ListDepartments(r.Context())
	if err != nil {
		respondDomainError(w, err)
		return
	}

	items := make([]dto.DepartmentResponse, 0, len(departments))
	for _, dept := range departments {
		items = append(items, dto.ToDepartmentResponse(dept, memberCounts[dept.ID]))
	}
	respondJSON(w, http.StatusOK, items)
}

// handleCreateDepartment creates a new desk.
func (h *Handler) handleCreateDepartment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "INVALID_TOKEN", "Authentication required")
		return
	}

	var req dto.DepartmentRequest
	if err := decodeStrict(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	dept, err := h.deptService.CreateDepartment(ctx, actor, service.DepartmentParams{
		Name:        req.Name,
		Description: req.Description,
		LeaderID:    req.LeaderID,
	})
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, dto.ToDepartmentResponse(dept, 0))
}

// handleUpdateDepartment updates a desk.
func (h *Handler) handleUpdateDepartment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "INVALID_TOKEN", "Authentication required")
		return
	}

	deptID, ok := extractID(w, r)
	if !ok {
		return
	}

	var req dto.DepartmentRequest
	if err := decodeStrict(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	dept, err := h.deptService.UpdateDepartment(ctx, actor, deptID, service.DepartmentParams{
		Name:        req.Name,
		Description: req.Description,
		LeaderID:    req.LeaderID,
	})
	if err != nil {
		respondDomainError(w, err)
		return
	}

	count, err := h.deptService.MemberCount(ctx, deptID)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.ToDepartmentResponse(dept, count))
}

// handleDeleteDepartment removes an empty desk.
func (h *Handler) handleDeleteDepartment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "INVALID_TOKEN", "Authentication required")
		return
	}

	deptID, ok := extractID(w, r)
	if !ok {
		return
	}

	if err := h.deptService.DeleteDepartment(ctx, actor, deptID); err != nil {
		respondDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
