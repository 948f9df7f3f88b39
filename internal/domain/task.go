package domain

import "time"

// TaskStatus represents the execution status of a task.
type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusBlocked    TaskStatus = "blocked"
)

// IsValid checks if the status is one of the allowed values.
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusCompleted, TaskStatusBlocked:
		return true
	default:
		return false
	}
}

// TaskPriority represents the priority level of a task.
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
	TaskPriorityUrgent TaskPriority = "urgent"
)

// IsValid checks if the priority is one of the allowed values.
func (p TaskPriority) IsValid() bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh, TaskPriorityUrgent:
		return true
	default:
		return false
	}
}

// SubmissionStatus represents where a task sits in the review cycle.
type SubmissionStatus string

const (
	SubmissionNotSubmitted      SubmissionStatus = "not_submitted"
	SubmissionPendingReview     SubmissionStatus = "pending_review"
	SubmissionApproved          SubmissionStatus = "approved"
	SubmissionRevisionRequested SubmissionStatus = "revision_requested"
)

// IsValid checks if the submission status is one of the allowed values.
func (s SubmissionStatus) IsValid() bool {
	switch s {
	case SubmissionNotSubmitted, SubmissionPendingReview, SubmissionApproved, SubmissionRevisionRequested:
		return true
	default:
		return false
	}
}

// ReviewAction is the decision a reviewer takes on a submitted task.
type ReviewAction string

const (
	ReviewActionApprove         ReviewAction = "approve"
	ReviewActionRequestRevision ReviewAction = "request_revision"
)

// IsValid checks if the action is one of the allowed values.
func (a ReviewAction) IsValid() bool {
	return a == ReviewActionApprove || a == ReviewActionRequestRevision
}

// Task represents a unit of assigned editorial work.
type Task struct {
	ID               string
	Title            string
	Description      string
	AssigneeID       string
	DepartmentID     string
	CreatorID        string
	Status           TaskStatus
	Priority         TaskPriority
	DueDate          time.Time
	ArticleID        *string
	SubmissionStatus SubmissionStatus
	StartedAt        *time.Time
	CompletedAt      *time.Time
	SubmittedAt      *time.Time
	ReviewedAt       *time.Time
	ReviewerID       *string
	RevisionNotes    *string
	Revision         int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// IsAssignedTo checks if the task is assigned to the given actor.
func (t *Task) IsAssignedTo(actorID string) bool {
	return t.AssigneeID == actorID
}

// HasArticle reports whether an article is bound to the task.
func (t *Task) HasArticle() bool {
	return t.ArticleID != nil
}

// Workflow returns the task's composite workflow state.
func (t *Task) Workflow() WorkflowState {
	return WorkflowState{Status: t.Status, Submission: t.SubmissionStatus}
}
