package handler

import (
	"net/http"

	"github.com/docnhanh/newsdesk/internal/auth"
	"github.com/docnhanh/newsdesk/internal/handler/dto"
	"github.com/docnhanh/newsdesk/internal/service"
)

// handleListScans lists scan jobs, newest first.
func (h *Handler) handleListScans(w http.ResponseWriter, r *http.Request) {
	limit, offset := parsePagination(r)

	jobs, total, err := h.scanService.ListScans(r.Context(), limit, offset)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	items := make([]dto.ScanJobResponse, 0, len(jobs))
	for _, job := range jobs {
		items = append(items, dto.ToScanJobResponse(job))
	}

	respondJSON(w, http.StatusOK, dto.ScansListResponse{Scans: items, Total: total})
}

// handleCreateScan queues a content-source scan.
func (h *Handler) handleCreateScan(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "INVALID_TOKEN", "Authentication required")
		return
	}

	var req dto.CreateScanRequest
	if err := decodeStrict(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	job, err := h.scanService.CreateScan(ctx, actor, service.CreateScanParams{
		SourceName: req.SourceName,
		SourceURL:  req.SourceURL,
		MaxItems:   req.MaxItems,
	})
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, dto.ToScanJobResponse(job))
}
