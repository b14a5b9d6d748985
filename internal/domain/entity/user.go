// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is the persisted credential record: the identity a person logs in
// with. Profile data (student, teacher, guardian) lives in separate records
// that reference this one.
type User struct {
	ID           uint      // Autoincrement primary key.
	Username     string    // Unique login identifier, exact match on lookup.
	PasswordHash string    // Bcrypt hash; plaintext never stored.
	IsActive     bool      // Inactive credentials fail token verification.
	RoleID       uint      // Foreign key to the Role record.
	Role         *Role     // The resolved role, preloaded on lookup.
	CreatedAt    time.Time // Timestamp of when this credential was created.
	UpdatedAt    time.Time // Timestamp of the last modification.
}

// HasRole reports whether the credential's role name is a member of the
// allowed set. A credential with no resolved role never passes a gate.
func (u *User) HasRole(allowed RoleNames) bool {
	if u == nil || u.Role == nil {
		return false
	}

	return allowed.Contains(u.Role.Name)
}
