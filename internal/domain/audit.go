package domain

import "time"

// Module is a coarse functional area used to partition the capability
// table and tag audit entries.
type Module string

const (
	ModuleTaskAssignment Module = "task-assignment"
	ModuleAIContent      Module = "ai-content"
	ModuleHR             Module = "hr-management"
	ModuleAdministration Module = "administration"
	ModuleReporting      Module = "reporting"
)

// Action is a named capability inside a module.
type Action string

const (
	ActionView    Action = "view"
	ActionCreate  Action = "create"
	ActionEdit    Action = "edit"
	ActionDelete  Action = "delete"
	ActionAssign  Action = "assign"
	ActionApprove Action = "approve"
	ActionExport  Action = "export"
)

// AuditActionType categorizes an audit entry.
type AuditActionType string

const (
	AuditCreate AuditActionType = "create"
	AuditUpdate AuditActionType = "update"
	AuditDelete AuditActionType = "delete"
	AuditLogin  AuditActionType = "login"
	AuditLogout AuditActionType = "logout"
)

// AuditLogEntry is an immutable, system-wide record of a state-changing
// operation. Entries are append-only and never updated or deleted.
type AuditLogEntry struct {
	ID         string
	ActorID    string
	Action     string
	ActionType AuditActionType
	Module     Module
	EntityType string
	EntityID   *string
	EntityName string
	OldValue   *string
	NewValue   *string
	CreatedAt  time.Time
}
