package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleName_IsValid(t *testing.T) {
	for _, name := range []RoleName{RoleAdmin, RoleAdministrator, RoleTeacher, RoleStudent, RoleGuardian} {
		assert.True(t, name.IsValid(), "%q should be valid", name)
	}
	assert.False(t, RoleName("payaso").IsValid())
	assert.False(t, RoleName("").IsValid())
}

func TestSeededRolesExcludeAdmin(t *testing.T) {
	for _, name := range SeededRoles() {
		assert.NotEqual(t, RoleAdmin, name)
	}
	assert.Len(t, SeededRoles(), 4)
}

func TestUser_HasRole(t *testing.T) {
	teacher := &User{Role: &Role{Name: RoleTeacher}}

	assert.True(t, teacher.HasRole(GradingRoles()))
	assert.False(t, teacher.HasRole(AdminRoles()))

	var nilUser *User
	assert.False(t, nilUser.HasRole(AdminRoles()))
	assert.False(t, (&User{}).HasRole(AdminRoles()), "credential without resolved role never passes a gate")
}

func TestGateSets(t *testing.T) {
	assert.True(t, AdminRoles().Contains(RoleAdmin))
	assert.True(t, AdminRoles().Contains(RoleAdministrator))
	assert.False(t, AdminRoles().Contains(RoleTeacher))

	assert.True(t, GradingRoles().Contains(RoleTeacher))
	assert.False(t, GradingRoles().Contains(RoleStudent))
	assert.False(t, GradingRoles().Contains(RoleGuardian))
}
