// Package models holds the persistent entities of gatepass.
package models

import "time"

// Role is the access level of an account.
type Role string

const (
	RoleStudent  Role = "student"
	RoleWarden   Role = "warden"
	RoleSecurity Role = "security"

	// RoleSuperAdmin is the privileged role. At most one account may hold it.
	RoleSuperAdmin Role = "superadmin"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleWarden, RoleSecurity, RoleSuperAdmin:
		return true
	}
	return false
}

type Account struct {
	ID           string
	UserName     string
	Email        string
	PasswordHash string
	Role         Role
	IsStaff      bool
	IsSuperuser  bool
	IsApproved   bool
	CreatedAt    time.Time
}
