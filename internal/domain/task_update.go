package domain

import "time"

// UpdateType represents the dominant kind of change a task mutation made.
type UpdateType string

const (
	UpdateTypeCreated         UpdateType = "created"
	UpdateTypeStatusChanged   UpdateType = "status_changed"
	UpdateTypeReassigned      UpdateType = "reassigned"
	UpdateTypePriorityChanged UpdateType = "priority_changed"
	UpdateTypeDeadlineChanged UpdateType = "deadline_changed"
	UpdateTypeSubmitted       UpdateType = "submitted"
	UpdateTypeReviewed        UpdateType = "reviewed"
	UpdateTypeEdited          UpdateType = "edited"
)

// TaskUpdate is an immutable history record of one task mutation.
// Records are owned by the task and removed with it.
type TaskUpdate struct {
	ID            string
	TaskID        string
	Type          UpdateType
	ActorID       string
	OldValue      *string
	NewValue      *string
	Comment       *string
	ChangedFields []string
	CreatedAt     time.Time
}

// FieldChange captures the before/after of a single task field within a
// mutation request.
type FieldChange struct {
	Field string
	Old   string
	New   string
}

// updatePrecedence orders change kinds from most to least significant.
// When one request touches several fields, the history record is tagged
// by the most significant one.
var updatePrecedence = []struct {
	field string
	typ   UpdateType
}{
	{"status", UpdateTypeStatusChanged},
	{"assignee_id", UpdateTypeReassigned},
	{"priority", UpdateTypePriorityChanged},
	{"due_date", UpdateTypeDeadlineChanged},
}

// DominantUpdateType returns the update type for a set of field changes.
func DominantUpdateType(changes []FieldChange) UpdateType {
	for _, p := range updatePrecedence {
		for _, c := range changes {
			if c.Field == p.field {
				return p.typ
			}
		}
	}
	return UpdateTypeEdited
}
