package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/ietdavv/iet-portal/internal/model"
	"github.com/rs/zerolog"
)

// RoleStore looks up the roles assigned to a user.
type RoleStore interface {
	ListByUser(ctx context.Context, viewer model.Identity, userID uuid.UUID) ([]model.RoleAssignment, error)
}

// RoleGate answers whether a caller holds the admin role. It decides which
// queries are worth issuing and which message to show; the row-level policies
// in the database remain the actual access control.
type RoleGate struct {
	roles RoleStore
	log   zerolog.Logger
}

func NewRoleGate(roles RoleStore, log zerolog.Logger) *RoleGate {
	return &RoleGate{
		roles: roles,
		log:   log.With().Str("component", "role_gate").Logger(),
	}
}

// IsAdmin reports whether viewer has a role assignment equal to "admin".
// An anonymous viewer is answered false without a lookup.
func (g *RoleGate) IsAdmin(ctx context.Context, viewer model.Identity) (bool, error) {
	if viewer.Anonymous() {
		return false, nil
	}

	roles, err := g.roles.ListByUser(ctx, viewer, viewer.UserID)
	if err != nil {
		g.log.Error().Err(err).Str("user_id", viewer.UserID.String()).Msg("failed to look up roles")
		return false, &FetchError{Collection: "user_roles", Err: err}
	}

	for _, r := range roles {
		if r.Role == model.RoleAdmin {
			return true, nil
		}
	}
	return false, nil
}
