package entity

import (
	coreentity "roadwise/core/entity"
)

// Role values for staff accounts.
const (
	RoleAdmin      = "admin"
	RoleStaff      = "staff"
	RoleInstructor = "instructor"
)

// User is a staff account. PasswordHash is nil for accounts created
// through Google sign-in only.
type User struct {
	Email        string  `db:"email" json:"email"`
	PasswordHash *string `db:"password_hash" json:"-"`
	FullName     string  `db:"full_name" json:"full_name"`
	Role         string  `db:"role" json:"role"`
	GoogleID     *string `db:"google_id" json:"-"`
	coreentity.BaseEntity
}
