package dto

import "time"

// LoginRequest represents the request body for POST /auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// CreateTaskRequest represents the request body for POST /tasks.
type CreateTaskRequest struct {
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	AssigneeID   string     `json:"assignee_id"`
	DepartmentID string     `json:"department_id"`
	Priority     string     `json:"priority,omitempty"`
	DueDate      *time.Time `json:"due_date,omitempty"`
	ArticleID    *string    `json:"article_id,omitempty"`
}

// UpdateTaskRequest represents the request body for PUT /tasks/{id}.
// Absent fields are left unchanged.
type UpdateTaskRequest struct {
	Title        *string    `json:"title,omitempty"`
	Description  *string    `json:"description,omitempty"`
	AssigneeID   *string    `json:"assignee_id,omitempty"`
	DepartmentID *string    `json:"department_id,omitempty"`
	Status       *string    `json:"status,omitempty"`
	Priority     *string    `json:"priority,omitempty"`
	DueDate      *time.Time `json:"due_date,omitempty"`
	Comment      *string    `json:"comment,omitempty"`
}

// SubmitTaskRequest represents the request body for POST /tasks/{id}/submit.
type SubmitTaskRequest struct {
	ArticleID *string `json:"article_id,omitempty"`
}

// ReviewTaskRequest represents the request body for POST /tasks/{id}/review.
type ReviewTaskRequest struct {
	Action        string `json:"action"`
	RevisionNotes string `json:"revision_notes,omitempty"`
}

// BulkUpdateRequest represents the request body for POST /tasks/bulk-update.
// Updates is a closed set of fields; anything else is rejected by the
// strict decoder.
type BulkUpdateRequest struct {
	TaskIDs []string          `json:"task_ids"`
	Updates BulkUpdateChanges `json:"updates"`
}

// BulkUpdateChanges is the restricted field subset bulk update accepts.
type BulkUpdateChanges struct {
	Status     *string `json:"status,omitempty"`
	Priority   *string `json:"priority,omitempty"`
	AssigneeID *string `json:"assignee_id,omitempty"`
}

// CreateUserRequest represents the request body for POST /users.
type CreateUserRequest struct {
	Username     string  `json:"username"`
	Email        string  `json:"email"`
	FullName     string  `json:"full_name"`
	Password     string  `json:"password"`
	Role         string  `json:"role"`
	DepartmentID *string `json:"department_id,omitempty"`
	Position     string  `json:"position,omitempty"`
}

// UpdateUserRequest represents the request body for PUT /users/{id}.
type UpdateUserRequest struct {
	Email        *string `json:"email,omitempty"`
	FullName     *string `json:"full_name,omitempty"`
	Password     *string `json:"password,omitempty"`
	Role         *string `json:"role,omitempty"`
	DepartmentID *string `json:"department_id,omitempty"`
	Position     *string `json:"position,omitempty"`
	Status       *string `json:"status,omitempty"`
}

// DepartmentRequest represents the request body for POST and PUT
// /departments.
type DepartmentRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	LeaderID    *string `json:"leader_id,omitempty"`
}

// CreateArticleRequest represents the request body for POST /articles.
type CreateArticleRequest struct {
	Title              string   `json:"title"`
	Topic              string   `json:"topic,omitempty"`
	EditorInstructions *string  `json:"editor_instructions,omitempty"`
	SourceURL          *string  `json:"source_url,omitempty"`
	Keywords           []string `json:"keywords,omitempty"`
}

// CreateScanRequest represents the request body for POST /scans.
type CreateScanRequest struct {
	SourceName string `json:"source_name"`
	SourceURL  string `json:"source_url"`
	MaxItems   int    `json:"max_items,omitempty"`
}
