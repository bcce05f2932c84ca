package model

import (
	"time"

	"github.com/google/uuid"
)

// Identity is the caller as resolved from a bearer token.
// The zero value is an anonymous caller.
type Identity struct {
	UserID uuid.UUID
}

// Anonymous reports whether no authenticated user is present.
func (i Identity) Anonymous() bool {
	return i.UserID == uuid.Nil
}

// User is a site account.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// RegisterRequest is the payload for creating an account.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=8,max=128"`
}

// LoginRequest is the payload for account authentication.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=6,max=128"`
}

// LoginResponse is returned after successful authentication.
type LoginResponse struct {
	Token string   `json:"token"`
	User  User     `json:"user"`
	Roles []string `json:"roles"`
}
