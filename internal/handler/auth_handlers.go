package handler

import (
	"net/http"

	"github.com/docnhanh/newsdesk/internal/auth"
	"github.com/docnhanh/newsdesk/internal/handler/dto"
)

// handleLogin exchanges credentials for an access token.
func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := decodeStrict(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}
	if req.Username == "" || req.Password == "" {
		respondError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "username and password are required")
		return
	}

	token, actor, err := h.accountService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.LoginResponse{
		Token: token,
		User:  dto.ToUserResponse(actor),
	})
}

// handleLogout ends the session for audit purposes.
func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	actor, err := auth.ActorFromContext(r.Context())
	if err != nil {
		respondError(w, http.StatusUnauthorized, "INVALID_TOKEN", "Authentication required")
		return
	}

	if err := h.accountService.Logout(r.Context(), actor); err != nil {
		respondDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleMe returns the authenticated actor's own profile.
func (h *Handler) handleMe(w http.ResponseWriter, r *http.Request) {
	actor, err := auth.ActorFromContext(r.Context())
	if err != nil {
		respondError(w, http.StatusUnauthorized, "INVALID_TOKEN", "Authentication required")
		return
	}

	respondJSON(w, http.StatusOK, dto.ToUserResponse(actor))
}
