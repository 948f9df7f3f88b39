package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/docnhanh/newsdesk/internal/ai"
	"github.com/docnhanh/newsdesk/internal/audit"
	"github.com/docnhanh/newsdesk/internal/domain"
	"github.com/docnhanh/newsdesk/internal/rbac"
	"github.com/docnhanh/newsdesk/internal/repository"
)

// ArticleService manages articles behind the ai-content module. Drafts
// can be AI-generated when editor instructions are supplied and a model
// is configured; otherwise articles start as empty drafts.
type ArticleService struct {
	pool        *pgxpool.Pool
	articleRepo *repository.ArticleRepository
	taskRepo    *repository.TaskRepository
	guard       *rbac.Guard
	recorder    *audit.Recorder
	writer      *ai.Writer
}

// NewArticleService creates a new ArticleService.
func NewArticleService(
	pool *pgxpool.Pool,
	articleRepo *repository.ArticleRepository,
	taskRepo *repository.TaskRepository,
	guard *rbac.Guard,
	recorder *audit.Recorder,
	writer *ai.Writer,
) *ArticleService {
	return &ArticleService{
		pool:        pool,
		articleRepo: articleRepo,
		taskRepo:    taskRepo,
		guard:       guard,
		recorder:    recorder,
		writer:      writer,
	}
}

// CreateDraftParams holds the fields accepted when creating a draft.
type CreateDraftParams struct {
	Title              string
	Topic              string
	EditorInstructions *string
	SourceURL          *string
	Keywords           []string
}

// GetArticle returns a single article.
func (s *ArticleService) GetArticle(ctx context.Context, articleID string) (*domain.Article, error) {
	return s.articleRepo.GetByID(ctx, articleID)
}

// ListArticles returns a page of articles, newest first, plus the total.
func (s *ArticleService) ListArticles(ctx context.Context, limit, offset int) ([]*domain.Article, int, error) {
	return s.articleRepo.List(ctx, limit, offset)
}

// CreateDraft creates an article draft, generating content when
// instructions are given and the AI writer is enabled. Without a writer
// the article is stored as an empty draft for manual editing.
func (s *ArticleService) CreateDraft(ctx context.Context, actor *domain.Actor, params CreateDraftParams) (*domain.Article, error) {
	if _, err := s.guard.Authorize(actor, domain.ModuleAIContent, domain.ActionCreate); err != nil {
		return nil, err
	}
	if strings.TrimSpace(params.Title) == "" && strings.TrimSpace(params.Topic) == "" {
		return nil, domain.NewValidationError("title", "title or topic must be provided")
	}

	article := &domain.Article{
		Title:              params.Title,
		Status:             domain.ArticleStatusDraft,
		CreatorID:          actor.ID,
		SourceURL:          params.SourceURL,
		EditorInstructions: params.EditorInstructions,
	}
	if article.Title == "" {
		article.Title = params.Topic
	}

	if params.EditorInstructions != nil && s.writer.Enabled() {
		topic := params.Topic
		if topic == "" {
			topic = params.Title
		}
		draft, err := s.writer.Generate(ctx, ai.DraftRequest{
			Topic:    topic,
			Angle:    *params.EditorInstructions,
			Keywords: params.Keywords,
		})
		if err != nil {
			if errors.Is(err, ai.ErrDisabled) {
				slog.Warn("draft generation skipped, writer disabled")
			} else {
				return nil, fmt.Errorf("generate draft: %w", err)
			}
		} else {
			article.Title = draft.Title
			article.ContentHTML = toHTML(draft)
			prompt := topic + ": " + *params.EditorInstructions
			article.PromptUsed = &prompt
		}
	}
	article.WordCount = countWords(article.ContentHTML)

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer rollback(ctx, tx)

	if err := s.articleRepo.Create(ctx, tx, article); err != nil {
		return nil, err
	}

	id := article.ID
	entry := &domain.AuditLogEntry{
		ActorID:    actor.ID,
		Action:     "article_created",
		ActionType: domain.AuditCreate,
		Module:     domain.ModuleAIContent,
		EntityType: "article",
		EntityID:   &id,
		EntityName: article.Title,
	}
	if err := s.recorder.Record(ctx, tx, entry); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}

	slog.Info("article draft created",
		"article_id", article.ID,
		"actor_id", actor.ID,
		"word_count", article.WordCount,
		"generated", article.PromptUsed != nil,
	)
	return article, nil
}

// DeleteArticle removes an article. Articles still linked from tasks
// cannot be deleted.
func (s *ArticleService) DeleteArticle(ctx context.Context, actor *domain.Actor, articleID string) error {
	if _, err := s.guard.Authorize(actor, domain.ModuleAIContent, domain.ActionDelete); err != nil {
		return err
	}

	article, err := s.articleRepo.GetByID(ctx, articleID)
	if err != nil {
		return err
	}

	linked, err := s.taskRepo.CountLinkedToArticle(ctx, articleID)
	if err != nil {
		return err
	}
	if linked > 0 {
		return fmt.Errorf("%w: article is linked to %d tasks", domain.ErrStateConflict, linked)
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer rollback(ctx, tx)

	if err := s.articleRepo.Delete(ctx, tx, articleID); err != nil {
		return err
	}

	id := article.ID
	entry := &domain.AuditLogEntry{
		ActorID:    actor.ID,
		Action:     "article_deleted",
		ActionType: domain.AuditDelete,
		Module:     domain.ModuleAIContent,
		EntityType: "article",
		EntityID:   &id,
		EntityName: article.Title,
	}
	if err := s.recorder.Record(ctx, tx, entry); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	slog.Info("article deleted", "article_id", articleID, "actor_id", actor.ID)
	return nil
}

// toHTML renders a generated draft as simple paragraph markup.
func toHTML(draft *ai.Draft) string {
	var b strings.Builder
	if draft.Summary != "" {
		b.WriteString("<p><strong>" + draft.Summary + "</strong></p>\n")
	}
	for _, para := range strings.Split(draft.Body, "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		b.WriteString("<p>" + para + "</p>\n")
	}
	return b.String()
}

// countWords counts words in the HTML-stripped text of an article body.
func countWords(contentHTML string) int {
	var b strings.Builder
	inTag := false
	for _, r := range contentHTML {
		switch {
		case r == '<':
			inTag = true
			b.WriteRune(' ')
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return len(strings.Fields(b.String()))
}
