package domain

import "time"

// Department represents a desk within the newsroom.
type Department struct {
	ID          string
	Name        string
	Description string
	LeaderID    *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
