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

var articleColumns = []string{
	"id", "title", "content_html", "status", "creator_id", "source_url",
	"word_count", "editor_instructions", "prompt_used", "created_at", "updated_at",
}

// ArticleRepository handles database operations for articles.
type ArticleRepository struct {
	pool *pgxpool.Pool
}

// NewArticleRepository creates a new ArticleRepository.
func NewArticleRepository(pool *pgxpool.Pool) *ArticleRepository {
	return &ArticleRepository{pool: pool}
}

func scanArticle(row pgx.Row) (*domain.Article, error) {
	var article domain.Article
	err := row.Scan(
		&article.ID,
		&article.Title,
		&article.ContentHTML,
		&article.Status,
		&article.CreatorID,
		&article.SourceURL,
		&article.WordCount,
		&article.EditorInstructions,
		&article.PromptUsed,
		&article.CreatedAt,
		&article.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrArticleNotFound
		}
		return nil, fmt.Errorf("scan article: %w", err)
	}
	return &article, nil
}

// GetByID retrieves an article by ID.
func (r *ArticleRepository) GetByID(ctx context.Context, articleID string) (*domain.Article, error) {
	query, args, err := psql.
		Select(articleColumns...).
		From("articles").
		Where(sq.Eq{"id": articleID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build GetByID query for article %s: %w", articleID, err)
	}

	return scanArticle(r.pool.QueryRow(ctx, query, args...))
}

// List retrieves articles with pagination, newest first.
func (r *ArticleRepository) List(ctx context.Context, limit, offset int) ([]*domain.Article, int, error) {
	query, args, err := psql.
		Select(articleColumns...).
		From("articles").
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build List query for articles: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("query articles: %w", err)
	}
	defer rows.Close()

	var articles []*domain.Article
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, 0, err
		}
		articles = append(articles, article)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate rows: %w", err)
	}

	var total int
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM articles").Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count articles: %w", err)
	}

	return articles, total, nil
}

// Create inserts a new article within a transaction.
func (r *ArticleRepository) Create(ctx context.Context, tx pgx.Tx, article *domain.Article) error {
	if article.Status == "" {
		article.Status = domain.ArticleStatusDraft
	}

	query, args, err := psql.
		Insert("articles").
		Columns("title", "content_html", "status", "creator_id", "source_url",
			"word_count", "editor_instructions", "prompt_used").
		Values(article.Title, article.ContentHTML, article.Status, article.CreatorID,
			article.SourceURL, article.WordCount, article.EditorInstructions, article.PromptUsed).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build Create query for article: %w", err)
	}

	err = tx.QueryRow(ctx, query, args...).Scan(&article.ID, &article.CreatedAt, &article.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create article: %w", err)
	}
	return nil
}

// Delete removes an article within a transaction.
func (r *ArticleRepository) Delete(ctx context.Context, tx pgx.Tx, articleID string) error {
	query, args, err := psql.
		Delete("articles").
		Where(sq.Eq{"id": articleID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build Delete query for article %s: %w", articleID, err)
	}

	tag, err := tx.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrArticleNotFound
	}
	return nil
}
