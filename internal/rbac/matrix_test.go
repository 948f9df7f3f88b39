package rbac

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/docnhanh/newsdesk/internal/domain"
)

var everyRole = []domain.Role{
	domain.RoleChiefEditor,
	domain.RoleDepartmentHead,
	domain.RoleReporter,
	domain.RoleSecretary,
	domain.RoleAdmin,
}

// expected mirrors the reference policy: for each (module, action) the
// exact set of roles allowed. Actions missing from a module are denied
// for everyone.
var expected = map[domain.Module]map[domain.Action][]domain.Role{
	domain.ModuleTaskAssignment: {
		domain.ActionView:    everyRole,
		domain.ActionCreate:  {domain.RoleChiefEditor, domain.RoleDepartmentHead, domain.RoleAdmin},
		domain.ActionEdit:    {domain.RoleChiefEditor, domain.RoleDepartmentHead, domain.RoleAdmin},
		domain.ActionDelete:  {domain.RoleChiefEditor, domain.RoleAdmin},
		domain.ActionAssign:  {domain.RoleChiefEditor, domain.RoleDepartmentHead, domain.RoleAdmin},
		domain.ActionApprove: {domain.RoleChiefEditor, domain.RoleDepartmentHead, domain.RoleAdmin},
		domain.ActionExport:  everyRole,
	},
	domain.ModuleAIContent: {
		domain.ActionView:    everyRole,
		domain.ActionCreate:  {domain.RoleChiefEditor, domain.RoleDepartmentHead, domain.RoleReporter, domain.RoleAdmin},
		domain.ActionEdit:    {domain.RoleChiefEditor, domain.RoleDepartmentHead, domain.RoleReporter, domain.RoleAdmin},
		domain.ActionDelete:  {domain.RoleChiefEditor, domain.RoleAdmin},
		domain.ActionAssign:  {domain.RoleChiefEditor, domain.RoleDepartmentHead, domain.RoleAdmin},
		domain.ActionApprove: {domain.RoleChiefEditor, domain.RoleAdmin},
		domain.ActionExport:  everyRole,
	},
	domain.ModuleHR: {
		domain.ActionView:    {domain.RoleChiefEditor, domain.RoleAdmin},
		domain.ActionCreate:  {domain.RoleChiefEditor, domain.RoleAdmin},
		domain.ActionEdit:    {domain.RoleChiefEditor, domain.RoleAdmin},
		domain.ActionDelete:  {domain.RoleChiefEditor, domain.RoleAdmin},
		domain.ActionAssign:  {},
		domain.ActionApprove: {},
		domain.ActionExport:  {domain.RoleChiefEditor, domain.RoleAdmin},
	},
	domain.ModuleAdministration: {
		domain.ActionView:    {domain.RoleChiefEditor, domain.RoleAdmin},
		domain.ActionCreate:  {domain.RoleChiefEditor, domain.RoleAdmin},
		domain.ActionEdit:    {domain.RoleChiefEditor, domain.RoleAdmin},
		domain.ActionDelete:  {domain.RoleChiefEditor, domain.RoleAdmin},
		domain.ActionAssign:  {},
		domain.ActionApprove: {},
		domain.ActionExport:  {domain.RoleChiefEditor, domain.RoleAdmin},
	},
	domain.ModuleReporting: {
		domain.ActionView:    {domain.RoleChiefEditor, domain.RoleDepartmentHead, domain.RoleAdmin},
		domain.ActionCreate:  {},
		domain.ActionEdit:    {},
		domain.ActionDelete:  {},
		domain.ActionAssign:  {},
		domain.ActionApprove: {},
		domain.ActionExport:  {domain.RoleChiefEditor, domain.RoleDepartmentHead, domain.RoleAdmin},
	},
}

func TestMatrix_FullPolicyTable(t *testing.T) {
	m := NewMatrix()

	for module, actions := range expected {
		for action, allowed := range actions {
			allowedSet := make(map[domain.Role]bool, len(allowed))
			for _, r := range allowed {
				allowedSet[r] = true
			}
			for _, role := range everyRole {
				got := m.Allows(role, module, action)
				assert.Equalf(t, allowedSet[role], got,
					"%s/%s for role %s", module, action, role)
			}
		}
	}
}

func TestMatrix_UndefinedPairsDeny(t *testing.T) {
	m := NewMatrix()

	assert.False(t, m.Allows(domain.RoleAdmin, "no-such-module", domain.ActionView))
	assert.False(t, m.Allows(domain.RoleAdmin, domain.ModuleTaskAssignment, "no-such-action"))
	assert.False(t, m.Allows(domain.RoleChiefEditor, domain.ModuleReporting, domain.ActionApprove))
	assert.False(t, m.Allows("no-such-role", domain.ModuleTaskAssignment, domain.ActionView))
}
