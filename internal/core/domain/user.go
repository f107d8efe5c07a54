package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin   = "admin"
	RoleStudent = "student"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// User models a registered account and the role it was registered with.
type User struct {
	ID           string    `json:"user_id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	RoleName     string    `json:"role_name"`
	CreatedAt    time.Time `json:"created_at"`
}

// UserFilter holds field-equality criteria for user lookups.
// Zero-valued fields are not part of the criteria.
type UserFilter struct {
	ID       string
	Username string
	RoleName string
}

// IsEmpty reports whether the filter would match every user.
func (f UserFilter) IsEmpty() bool {
	return f.ID == "" && f.Username == "" && f.RoleName == ""
}
