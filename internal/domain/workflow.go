package domain

import "fmt"

// WorkflowState is the composite of a task's status and submission status.
// The two columns are stored independently, but only the combinations below
// are ever written; Validate is the single checkpoint that keeps illegal
// pairs out of the database.
type WorkflowState struct {
	Status     TaskStatus
	Submission SubmissionStatus
}

// Validate rejects combinations the review cycle can never produce:
// an approved task must be completed, and a task sent back for revision
// is always back on the todo pile.
func (w WorkflowState) Validate() error {
	if !w.Status.IsValid() {
		return fmt.Errorf("%w: status %q", ErrInvalidStatus, w.Status)
	}
	if !w.Submission.IsValid() {
		return fmt.Errorf("%w: submission status %q", ErrInvalidSubmission, w.Submission)
	}

	switch w.Submission {
	case SubmissionApproved:
		if w.Status != TaskStatusCompleted {
			return fmt.Errorf("%w: approved task must be completed, got %q", ErrStateConflict, w.Status)
		}
	case SubmissionRevisionRequested:
		if w.Status != TaskStatusTodo {
			return fmt.Errorf("%w: revision-requested task must be todo, got %q", ErrStateConflict, w.Status)
		}
	}
	return nil
}

// CanSubmit reports whether the task may be submitted for review from
// this state. Re-submitting while a review is already pending is a
// conflict, not a no-op.
func (w WorkflowState) CanSubmit() bool {
	return w.Submission != SubmissionPendingReview
}

// CanReview reports whether a review decision may be applied.
func (w WorkflowState) CanReview() bool {
	return w.Submission == SubmissionPendingReview
}
