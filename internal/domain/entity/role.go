// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role is the persisted role record referenced by every credential.
type Role struct {
	ID   uint
	Name RoleName
}

// RoleName identifies one of the fixed roles a credential can hold.
type RoleName string

const (
	// RoleAdmin is the ad-hoc role held by the bootstrap administrator.
	RoleAdmin RoleName = "admin"
	// RoleAdministrator is the regular administrator role.
	RoleAdministrator RoleName = "administrador"
	// RoleTeacher is the teaching staff role.
	RoleTeacher RoleName = "docente"
	// RoleStudent is the student role.
	RoleStudent RoleName = "estudiante"
	// RoleGuardian is the guardian (acudiente) role.
	RoleGuardian RoleName = "acudiente"
)

// String returns the string representation of the RoleName.
func (r RoleName) String() string {
	return string(r)
}

// IsValid checks if the RoleName is one of the known values.
func (r RoleName) IsValid() bool {
	switch r {
	case RoleAdmin, RoleAdministrator, RoleTeacher, RoleStudent, RoleGuardian:
		return true
	default:
		return false
	}
}

// SeededRoles is the fixed role set reconciled at startup. The "admin" role
// is excluded on purpose: it is ensured lazily by the bootstrap path only.
func SeededRoles() []RoleName {
	return []RoleName{RoleAdministrator, RoleTeacher, RoleStudent, RoleGuardian}
}

// RoleNames is a set of role names used for gate checks.
type RoleNames []RoleName

// Contains checks if the set contains a specific role name.
func (rs RoleNames) Contains(role RoleName) bool {
	return slices.Contains(rs, role)
}

// AdminRoles is the set of roles allowed to administer credentials and
// academic records.
func AdminRoles() RoleNames {
	return RoleNames{RoleAdmin, RoleAdministrator}
}

// GradingRoles is the set of roles allowed to create and modify grades and
// subjects.
func GradingRoles() RoleNames {
	return RoleNames{RoleAdmin, RoleAdministrator, RoleTeacher}
}
