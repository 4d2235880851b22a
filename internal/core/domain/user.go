package domain

import (
	"errors"
	"strings"
	"time"
)

// Role is the coarse-grained permission label carried by every user.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Valid reports whether r is one of the defined roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

var ErrInvalidRole = errors.New("invalid role")
var ErrSelfDemotion = errors.New("admins cannot demote themselves")
var ErrLastAdmin = errors.New("cannot demote the last remaining admin")
var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrForbidden = errors.New("access forbidden")
var ErrWeakPassword = errors.New("password must be at least 6 characters long")
var ErrInvalidResetToken = errors.New("invalid or expired reset token")

// User models an account. PasswordHash is empty for OAuth-only accounts and
// is never serialized.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NormalizeEmail lowercases and trims an address so that lookups and the
// unique index agree on a single canonical form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
