package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWorkflowState_Validate(t *testing.T) {
	cases := []struct {
		name       string
		status     TaskStatus
		submission SubmissionStatus
		wantErr    error
	}{
		{"fresh task", TaskStatusTodo, SubmissionNotSubmitted, nil},
		{"working not submitted", TaskStatusInProgress, SubmissionNotSubmitted, nil},
		{"submitted while working", TaskStatusInProgress, SubmissionPendingReview, nil},
		{"submitted while blocked", TaskStatusBlocked, SubmissionPendingReview, nil},
		{"approved and completed", TaskStatusCompleted, SubmissionApproved, nil},
		{"revision back on todo", TaskStatusTodo, SubmissionRevisionRequested, nil},

		{"approved but not completed", TaskStatusInProgress, SubmissionApproved, ErrStateConflict},
		{"approved but todo", TaskStatusTodo, SubmissionApproved, ErrStateConflict},
		{"revision but in progress", TaskStatusInProgress, SubmissionRevisionRequested, ErrStateConflict},
		{"revision but completed", TaskStatusCompleted, SubmissionRevisionRequested, ErrStateConflict},

		{"unknown status", "archived", SubmissionNotSubmitted, ErrInvalidStatus},
		{"unknown submission", TaskStatusTodo, "withdrawn", ErrInvalidSubmission},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := WorkflowState{Status: tc.status, Submission: tc.submission}.Validate()
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}

func TestWorkflowState_SubmitAndReviewGates(t *testing.T) {
	pending := WorkflowState{Status: TaskStatusInProgress, Submission: SubmissionPendingReview}
	assert.False(t, pending.CanSubmit())
	assert.True(t, pending.CanReview())

	for _, sub := range []SubmissionStatus{SubmissionNotSubmitted, SubmissionApproved, SubmissionRevisionRequested} {
		w := WorkflowState{Status: TaskStatusTodo, Submission: sub}
		assert.True(t, w.CanSubmit(), "submission %s", sub)
		assert.False(t, w.CanReview(), "submission %s", sub)
	}
}

func TestDominantUpdateType(t *testing.T) {
	cases := []struct {
		name   string
		fields []string
		want   UpdateType
	}{
		{"status wins over everything", []string{"due_date", "priority", "assignee_id", "status"}, UpdateTypeStatusChanged},
		{"reassignment beats priority", []string{"priority", "assignee_id"}, UpdateTypeReassigned},
		{"priority beats deadline", []string{"due_date", "priority"}, UpdateTypePriorityChanged},
		{"deadline alone", []string{"due_date"}, UpdateTypeDeadlineChanged},
		{"text edits only", []string{"title", "description"}, UpdateTypeEdited},
		{"no changes", nil, UpdateTypeEdited},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			changes := make([]FieldChange, 0, len(tc.fields))
			for _, f := range tc.fields {
				changes = append(changes, FieldChange{Field: f})
			}
			assert.Equal(t, tc.want, DominantUpdateType(changes))
		})
	}
}
