package domain

import "time"

// ArticleStatus represents the publication state of an article.
type ArticleStatus string

const (
	ArticleStatusDraft      ArticleStatus = "draft"
	ArticleStatusProcessing ArticleStatus = "processing"
	ArticleStatusPublished  ArticleStatus = "published"
)

// Article represents a piece of content, possibly AI-drafted, that a task
// can link to.
type Article struct {
	ID                 string
	Title              string
	ContentHTML        string
	Status             ArticleStatus
	CreatorID          string
	SourceURL          *string
	WordCount          int
	EditorInstructions *string
	PromptUsed         *string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
