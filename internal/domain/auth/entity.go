package auth

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Role represents a user role (matches user_role enum)
type Role string

const (
	RoleCustomer Role = "customer"
	RoleProvider Role = "provider"
)

// IsValidRole reports whether the given role is registerable
func IsValidRole(role string) bool {
	return role == string(RoleCustomer) || role == string(RoleProvider)
}

// User represents a user account (matches users table)
type User struct {
	ID           uuid.UUID `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	Role         Role      `db:"role"`

	FirstName sql.NullString `db:"first_name"`
	LastName  sql.NullString `db:"last_name"`
	Phone     sql.NullString `db:"phone"`

	LastLoginAt sql.NullTime `db:"last_login_at"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// IsProvider returns true if the user owns a provider profile
func (u *User) IsProvider() bool {
	return u.Role == RoleProvider
}

// DisplayName returns the user's name for UI purposes
func (u *User) DisplayName() string {
	switch {
	case u.FirstName.Valid && u.LastName.Valid:
		return u.FirstName.String + " " + u.LastName.String
	case u.FirstName.Valid:
		return u.FirstName.String
	default:
		return u.Email
	}
}
