package dto

import (
	"time"

	"github.com/docnhanh/newsdesk/internal/domain"
)

// LoginResponse represents the response for POST /auth/login.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse represents a staff account. Password hashes never leave
// the server.
type UserResponse struct {
	ID           string     `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	FullName     string     `json:"full_name"`
	Role         string     `json:"role"`
	DepartmentID *string    `json:"department_id"`
	Position     string     `json:"position"`
	Status       string     `json:"status"`
	LastLoginAt  *time.Time `json:"last_login_at"`
	CreatedAt    time.Time  `json:"created_at"`
}

// ToUserResponse maps an actor to its API projection.
func ToUserResponse(actor *domain.Actor) UserResponse {
	return UserResponse{
		ID:           actor.ID,
		Username:     actor.Username,
		Email:        actor.Email,
		FullName:     actor.FullName,
		Role:         string(actor.Role),
		DepartmentID: actor.DepartmentID,
		Position:     actor.Position,
		Status:       string(actor.Status),
		LastLoginAt:  actor.LastLoginAt,
		CreatedAt:    actor.CreatedAt,
	}
}

// UsersListResponse represents the response for GET /users.
type UsersListResponse struct {
	Users []UserResponse `json:"users"`
	Total int            `json:"total"`
}

// TaskResponse represents a task in API responses.
type TaskResponse struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	AssigneeID       string     `json:"assignee_id"`
	AssigneeName     string     `json:"assignee_name,omitempty"`
	DepartmentID     string     `json:"department_id"`
	CreatorID        string     `json:"creator_id"`
	Status           string     `json:"status"`
	Priority         string     `json:"priority"`
	DueDate          time.Time  `json:"due_date"`
	ArticleID        *string    `json:"article_id"`
	SubmissionStatus string     `json:"submission_status"`
	StartedAt        *time.Time `json:"started_at"`
	CompletedAt      *time.Time `json:"completed_at"`
	SubmittedAt      *time.Time `json:"submitted_at"`
	ReviewedAt       *time.Time `json:"reviewed_at"`
	ReviewerID       *string    `json:"reviewer_id"`
	RevisionNotes    *string    `json:"revision_notes"`
	Revision         int        `json:"revision"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// ToTaskResponse maps a task to its API projection.
func ToTaskResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:               task.ID,
		Title:            task.Title,
		Description:      task.Description,
		AssigneeID:       task.AssigneeID,
		DepartmentID:     task.DepartmentID,
		CreatorID:        task.CreatorID,
		Status:           string(task.Status),
		Priority:         string(task.Priority),
		DueDate:          task.DueDate,
		ArticleID:        task.ArticleID,
		SubmissionStatus: string(task.SubmissionStatus),
		StartedAt:        task.StartedAt,
		CompletedAt:      task.CompletedAt,
		SubmittedAt:      task.SubmittedAt,
		ReviewedAt:       task.ReviewedAt,
		ReviewerID:       task.ReviewerID,
		RevisionNotes:    task.RevisionNotes,
		Revision:         task.Revision,
		CreatedAt:        task.CreatedAt,
		UpdatedAt:        task.UpdatedAt,
	}
}

// TasksListResponse represents the response for GET /tasks.
type TasksListResponse struct {
	Tasks  []TaskResponse `json:"tasks"`
	Total  int            `json:"total"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}

// TaskUpdateResponse represents one task history record.
type TaskUpdateResponse struct {
	ID            string    `json:"id"`
	Type          string    `json:"type"`
	ActorID       string    `json:"actor_id"`
	ActorName     string    `json:"actor_name,omitempty"`
	OldValue      *string   `json:"old_value"`
	NewValue      *string   `json:"new_value"`
	Comment       *string   `json:"comment"`
	ChangedFields []string  `json:"changed_fields"`
	CreatedAt     time.Time `json:"created_at"`
}

// TaskDetailResponse represents the response for GET /tasks/{id}.
type TaskDetailResponse struct {
	Task    TaskResponse         `json:"task"`
	History []TaskUpdateResponse `json:"history"`
}

// BulkUpdateResponse represents the response for POST /tasks/bulk-update.
type BulkUpdateResponse struct {
	UpdatedCount int `json:"updated_count"`
}

// TaskStatsResponse represents the response for GET /tasks/stats.
type TaskStatsResponse struct {
	Total          int            `json:"total"`
	ByStatus       map[string]int `json:"by_status"`
	ByPriority     map[string]int `json:"by_priority"`
	Overdue        int            `json:"overdue"`
	DueToday       int            `json:"due_today"`
	DueThisWeek    int            `json:"due_this_week"`
	CompletionRate float64        `json:"completion_rate"`
}

// DepartmentResponse represents a department with its member count.
type DepartmentResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	LeaderID    *string   `json:"leader_id"`
	MemberCount int       `json:"member_count"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToDepartmentResponse maps a department to its API projection.
func ToDepartmentResponse(dept *domain.Department, memberCount int) DepartmentResponse {
	return DepartmentResponse{
		ID:          dept.ID,
		Name:        dept.Name,
		Description: dept.Description,
		LeaderID:    dept.LeaderID,
		MemberCount: memberCount,
		CreatedAt:   dept.CreatedAt,
	}
}

// ArticleResponse represents an article in API responses.
type ArticleResponse struct {
	ID                 string    `json:"id"`
	Title              string    `json:"title"`
	ContentHTML        string    `json:"content_html"`
	Status             string    `json:"status"`
	CreatorID          string    `json:"creator_id"`
	SourceURL          *string   `json:"source_url"`
	WordCount          int       `json:"word_count"`
	EditorInstructions *string   `json:"editor_instructions"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// ToArticleResponse maps an article to its API projection.
func ToArticleResponse(article *domain.Article) ArticleResponse {
	return ArticleResponse{
		ID:                 article.ID,
		Title:              article.Title,
		ContentHTML:        article.ContentHTML,
		Status:             string(article.Status),
		CreatorID:          article.CreatorID,
		SourceURL:          article.SourceURL,
		WordCount:          article.WordCount,
		EditorInstructions: article.EditorInstructions,
		CreatedAt:          article.CreatedAt,
		UpdatedAt:          article.UpdatedAt,
	}
}

// ArticlesListResponse represents the response for GET /articles.
type ArticlesListResponse struct {
	Articles []ArticleResponse `json:"articles"`
	Total    int               `json:"total"`
}

// ScanJobResponse represents a scan job in API responses.
type ScanJobResponse struct {
	ID             string     `json:"id"`
	SourceName     string     `json:"source_name"`
	SourceURL      string     `json:"source_url"`
	Status         string     `json:"status"`
	ItemsFound     int        `json:"items_found"`
	ItemsProcessed int        `json:"items_processed"`
	MaxItems       int        `json:"max_items"`
	CreatorID      string     `json:"creator_id"`
	ErrorMessage   *string    `json:"error_message"`
	StartedAt      *time.Time `json:"started_at"`
	CompletedAt    *time.Time `json:"completed_at"`
	CreatedAt      time.Time  `json:"created_at"`
}

// ToScanJobResponse maps a scan job to its API projection.
func ToScanJobResponse(job *domain.ScanJob) ScanJobResponse {
	return ScanJobResponse{
		ID:             job.ID,
		SourceName:     job.SourceName,
		SourceURL:      job.SourceURL,
		Status:         string(job.Status),
		ItemsFound:     job.ItemsFound,
		ItemsProcessed: job.ItemsProcessed,
		MaxItems:       job.MaxItems,
		CreatorID:      job.CreatorID,
		ErrorMessage:   job.ErrorMessage,
		StartedAt:      job.StartedAt,
		CompletedAt:    job.CompletedAt,
		CreatedAt:      job.CreatedAt,
	}
}

// ScansListResponse represents the response for GET /scans.
type ScansListResponse struct {
	Scans []ScanJobResponse `json:"scans"`
	Total int               `json:"total"`
}

// AuditEntryResponse represents one audit trail record.
type AuditEntryResponse struct {
	ID         string    `json:"id"`
	ActorID    string    `json:"actor_id"`
	ActorName  string    `json:"actor_name,omitempty"`
	Action     string    `json:"action"`
	ActionType string    `json:"action_type"`
	Module     string    `json:"module"`
	EntityType string    `json:"entity_type"`
	EntityID   *string   `json:"entity_id"`
	EntityName string    `json:"entity_name"`
	OldValue   *string   `json:"old_value"`
	NewValue   *string   `json:"new_value"`
	CreatedAt  time.Time `json:"created_at"`
}

// AuditListResponse represents the response for GET /audit-log.
type AuditListResponse struct {
	Entries []AuditEntryResponse `json:"entries"`
	Total   int                  `json:"total"`
	Limit   int                  `json:"limit"`
	Offset  int                  `json:"offset"`
}
