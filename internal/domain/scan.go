package domain

import "time"

// ScanStatus represents the lifecycle of a content-source scan job.
type ScanStatus string

const (
	ScanStatusPending   ScanStatus = "pending"
	ScanStatusRunning   ScanStatus = "running"
	ScanStatusCompleted ScanStatus = "completed"
	ScanStatusFailed    ScanStatus = "failed"
)

// ScanJob records a request to scan an external content source.
// Execution is handled by an external worker; this core only creates and
// lists job records.
type ScanJob struct {
	ID             string
	SourceName     string
	SourceURL      string
	Status         ScanStatus
	ItemsFound     int
	ItemsProcessed int
	MaxItems       int
	CreatorID      string
	ErrorMessage   *string
	StartedAt      *time.Time
	CompletedAt    *time.Time
	CreatedAt      time.Time
}
