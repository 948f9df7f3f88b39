package handler

import (
	"net/http"

	"github.com/docnhanh/newsdesk/internal/auth"
	"github.com/docnhanh/newsdesk/internal/handler/dto"
	"github.com/docnhanh/newsdesk/internal/service"
)

// handleListArticles lists articles, newest first.
func (h *Handler) handleListArticles(w http.ResponseWriter, r *http.Request) {
	limit, offset := parsePagination(r)

	articles, total, err := h.articleService.ListArticles(r.Context(), limit, offset)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	items := make([]dto.ArticleResponse, 0, len(articles))
	for _, article := range articles {
		items = append(items, dto.ToArticleResponse(article))
	}

	respondJSON(w, http.StatusOK, dto.ArticlesListResponse{Articles: items, Total: total})
}

// handleGetArticle returns a single article.
func (h *Handler) handleGetArticle(w http.ResponseWriter, r *http.Request) {
	articleID, ok := extractID(w, r)
	if !ok {
		return
	}

	article, err := h.articleService.GetArticle(r.Context(), articleID)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.ToArticleResponse(article))
}

// handleCreateArticle creates an article draft, AI-generated when
// instructions are supplied.
func (h *Handler) handleCreateArticle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "INVALID_TOKEN", "Authentication required")
		return
	}

	var req dto.CreateArticleRequest
	if err := decodeStrict(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	article, err := h.articleService.CreateDraft(ctx, actor, service.CreateDraftParams{
		Title:              req.Title,
		Topic:              req.Topic,
		EditorInstructions: req.EditorInstructions,
		SourceURL:          req.SourceURL,
		Keywords:           req.Keywords,
	})
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, dto.ToArticleResponse(article))
}

// handleDeleteArticle removes an article not linked from any task.
func (h *Handler) handleDeleteArticle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "INVALID_TOKEN", "Authentication required")
		return
	}

	articleID, ok := extractID(w, r)
	if !ok {
		return
	}

	if err := h.articleService.DeleteArticle(ctx, actor, articleID); err != nil {
		respondDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
