// Package auth provides authentication for the dashboard API.
package auth

import (
	"time"
)

// Roles known to the dashboard.
const (
	RoleAdmin    = "Admin"
	RoleManager  = "Manager"
	RoleOperator = "Operator"
)

// User is a dashboard user. Name is the display name attached to stock
// movements as the operator.
type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	Role         string `json:"role"`
	PasswordHash []byte `json:"-"`
}

// Credentials carries a login attempt.
type Credentials struct {
	Email    string
	Password string
}

// Session is an issued login session token.
type Session struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}
