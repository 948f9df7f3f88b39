package handler

import (
	"net/http"
	"time"

	"github.com/docnhanh/newsdesk/internal/audit"
	"github.com/docnhanh/newsdesk/internal/auth"
	"github.com/docnhanh/newsdesk/internal/domain"
	"github.com/docnhanh/newsdesk/internal/handler/dto"
)

// handleListAuditLog returns a page of the system-wide activity trail.
func (h *Handler) handleListAuditLog(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "INVALID_TOKEN", "Authentication required")
		return
	}
	if _, err := h.guard.Authorize(actor, domain.ModuleAdministration, domain.ActionView); err != nil {
		respondDomainError(w, err)
		return
	}

	limit, offset := parsePagination(r)
	filters := audit.ListFilters{Limit: limit, Offset: offset}
	if v := q.Get("module"); v != "" {
		module := domain.Module(v)
		filters.Module = &module
	}
	if v := q.Get("action_type"); v != "" {
		actionType := domain.AuditActionType(v)
		filters.ActionType = &actionType
	}
	if v := q.Get("actor_id"); v != "" {
		filters.ActorID = &v
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

	entries, total, err := h.auditReader.List(ctx, filters)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	actorIDs := make([]string, 0, len(entries))
	for _, e := range entries {
		actorIDs = append(actorIDs, e.ActorID)
	}
	names, err := h.actorRepo.Names(ctx, actorIDs)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	items := make([]dto.AuditEntryResponse, 0, len(entries))
	for _, e := range entries {
		items = append(items, dto.AuditEntryResponse{
			ID:         e.ID,
			ActorID:    e.ActorID,
			ActorName:  names[e.ActorID],
			Action:     e.Action,
			ActionType: string(e.ActionType),
			Module:     string(e.Module),
			EntityType: e.EntityType,
			EntityID:   e.EntityID,
			EntityName: e.EntityName,
			OldValue:   e.OldValue,
			NewValue:   e.NewValue,
			CreatedAt:  e.CreatedAt,
		})
	}

	respondJSON(w, http.StatusOK, dto.AuditListResponse{
		Entries: items,
		Total:   total,
		Limit:   limit,
		Offset:  offset,
	})
}
