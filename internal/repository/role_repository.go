package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/ietdavv/iet-portal/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RoleRepository handles role assignment data access.
type RoleRepository struct {
	pool *pgxpool.Pool
}

// NewRoleRepository creates a new RoleRepository.
func NewRoleRepository(pool *pgxpool.Pool) *RoleRepository {
	return &RoleRepository{pool: pool}
}

// ListByUser retrieves every role assigned to userID. The select policy only
// exposes a user's own rows, so viewer must be that user.
func (r *RoleRepository) ListByUser(ctx context.Context, viewer model.Identity, userID uuid.UUID) ([]model.RoleAssignment, error) {
	var roles []model.RoleAssignment
	err := withIdentity(ctx, r.pool, viewer, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx,
			`SELECT user_id, role FROM user_roles WHERE user_id = $1 ORDER BY role`, userID)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var ra model.RoleAssignment
			if err := rows.Scan(&ra.UserID, &ra.Role); err != nil {
				return err
			}
			roles = append(roles, ra)
		}
		return rows.Err()
	})
	return roles, err
}

// Assign grants role to userID. Requires a connection that bypasses row-level
// security (the table owner); used by the create-admin command.
func (r *RoleRepository) Assign(ctx context.Context, userID uuid.UUID, role string) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO user_roles (user_id, role) VALUES ($1, $2)
		 ON CONFLICT (user_id, role) DO NOTHING`, userID, role)
	return err
}
