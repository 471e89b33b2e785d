// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

// # Account Roles

// UserRole represents the authorization level granted to an account.
type UserRole string

const (
	// Unrestricted catalogue and account management
	RoleAdmin UserRole = "admin"

	// Default role for registered readers
	RoleUser UserRole = "user"
)

// IsValid reports whether r is a recognised role.
func (r UserRole) IsValid() bool {
	return r.level() > 0
}

// # Role Hierarchy

// AtLeast checks if the current role meets or exceeds the required target role.
func (r UserRole) AtLeast(target UserRole) bool {
	return r.level() >= target.level()
}

// level maps a role to a numeric hierarchy level for comparison logic.
func (r UserRole) level() int {
	switch r {
	case RoleAdmin:
		return 40
	case RoleUser:
		return 10
	default:
		return 0
	}
}
