package model

import (
	"fmt"
	"time"
)

// Role is the closed set of roles the authorization gate understands. It is
// stored as a raw string and validated on read, so unknown roles in old rows
// fail loudly instead of silently passing a gate.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleUser, RoleAdmin:
		return Role(s), nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

type User struct {
	ID             int64     `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	HashedPassword string    `json:"-"` // Not exposed
	IsActive       bool      `json:"is_active"`
	Role           string    `json:"role"`
	PhoneNumber    string    `json:"phone_number"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Identity is the per-request resolved caller: who the session token says
// the user is. It is rebuilt from the cookie on every request, never cached.
type Identity struct {
	Username string `json:"username"`
	ID       int64  `json:"id"`
	Role     string `json:"role"`
}

func (i Identity) IsAdmin() bool {
	return i.Role == string(RoleAdmin)
}
