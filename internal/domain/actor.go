package domain

import "time"

// Role identifies a staff member's position in the newsroom hierarchy.
type Role string

const (
	RoleChiefEditor    Role = "chief-editor"
	RoleDepartmentHead Role = "department-head"
	RoleReporter       Role = "reporter"
	RoleSecretary      Role = "secretary"
	RoleAdmin          Role = "admin"
)

// IsValid checks if the role is one of the allowed values.
func (r Role) IsValid() bool {
	switch r {
	case RoleChiefEditor, RoleDepartmentHead, RoleReporter, RoleSecretary, RoleAdmin:
		return true
	default:
		return false
	}
}

// ActorStatus represents whether a staff account may authenticate.
type ActorStatus string

const (
	ActorStatusActive   ActorStatus = "active"
	ActorStatusDisabled ActorStatus = "disabled"
)

// IsValid checks if the status is one of the allowed values.
func (s ActorStatus) IsValid() bool {
	return s == ActorStatusActive || s == ActorStatusDisabled
}

// Actor represents a staff member registered in the system.
type Actor struct {
	ID           string
	Username     string
	Email        string
	FullName     string
	PasswordHash string
	Role         Role
	DepartmentID *string
	Position     string
	Status       ActorStatus
	LastLoginAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsActive reports whether the account may perform operations.
func (a *Actor) IsActive() bool {
	return a.Status == ActorStatusActive
}
