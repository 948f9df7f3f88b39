// Package rbac holds the capability matrix and the permission guard that
// fronts every mutating operation. The matrix is the only place policy
// lives; handlers and services never check roles directly.
package rbac

import "github.com/docnhanh/newsdesk/internal/domain"

// roleSet is an immutable set of roles holding one capability.
type roleSet map[domain.Role]struct{}

func roles(rs ...domain.Role) roleSet {
	set := make(roleSet, len(rs))
	for _, r := range rs {
		set[r] = struct{}{}
	}
	return set
}

// allRoles grants a capability to every role defined in the system.
var allRoles = roles(
	domain.RoleChiefEditor,
	domain.RoleDepartmentHead,
	domain.RoleReporter,
	domain.RoleSecretary,
	domain.RoleAdmin,
)

// Matrix maps (module, action) to the set of roles holding that
// capability. It is built once at startup and never mutated; concurrent
// reads are safe.
type Matrix struct {
	table map[domain.Module]map[domain.Action]roleSet
}

// NewMatrix builds the capability table. Pairs absent from the table
// resolve to denied, so unknown module or action names never error.
func NewMatrix() *Matrix {
	editors := roles(domain.RoleChiefEditor, domain.RoleDepartmentHead, domain.RoleAdmin)
	seniors := roles(domain.RoleChiefEditor, domain.RoleAdmin)
	writers := roles(domain.RoleChiefEditor, domain.RoleDepartmentHead, domain.RoleReporter, domain.RoleAdmin)

	return &Matrix{table: map[domain.Module]map[domain.Action]roleSet{
		domain.ModuleTaskAssignment: {
			domain.ActionView:    allRoles,
			domain.ActionCreate:  editors,
			domain.ActionEdit:    editors,
			domain.ActionDelete:  seniors,
			domain.ActionAssign:  editors,
			domain.ActionApprove: editors,
			domain.ActionExport:  allRoles,
		},
		domain.ModuleAIContent: {
			domain.ActionView:    allRoles,
			domain.ActionCreate:  writers,
			domain.ActionEdit:    writers,
			domain.ActionDelete:  seniors,
			domain.ActionAssign:  editors,
			domain.ActionApprove: seniors,
			domain.ActionExport:  allRoles,
		},
		domain.ModuleHR: {
			domain.ActionView:   seniors,
			domain.ActionCreate: seniors,
			domain.ActionEdit:   seniors,
			domain.ActionDelete: seniors,
			domain.ActionExport: seniors,
		},
		domain.ModuleAdministration: {
			domain.ActionView:   seniors,
			domain.ActionCreate: seniors,
			domain.ActionEdit:   seniors,
			domain.ActionDelete: seniors,
			domain.ActionExport: seniors,
		},
		domain.ModuleReporting: {
			domain.ActionView:   editors,
			domain.ActionExport: editors,
		},
	}}
}

// Allows reports whether the role holds the capability. It is a total
// function: undefined (module, action) pairs are denied, never an error.
func (m *Matrix) Allows(role domain.Role, module domain.Module, action domain.Action) bool {
	actions, ok := m.table[module]
	if !ok {
		return false
	}
	set, ok := actions[action]
	if !ok {
		return false
	}
	_, ok = set[role]
	return ok
}
