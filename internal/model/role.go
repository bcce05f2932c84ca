package model

import "github.com/google/uuid"

// RoleAdmin is the only role the role gate looks for. Matching is exact and case-sensitive.
const RoleAdmin = "admin"

// RoleAssignment grants a role to a user. A user may hold zero or more roles.
type RoleAssignment struct {
	UserID uuid.UUID `json:"user_id"`
	Role   string    `json:"role"`
}
