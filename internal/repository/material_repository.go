package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/ietdavv/iet-portal/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// MaterialRepository handles academic material data access.
type MaterialRepository struct {
	pool *pgxpool.Pool
}

// NewMaterialRepository creates a new MaterialRepository.
func NewMaterialRepository(pool *pgxpool.Pool) *MaterialRepository {
	return &MaterialRepository{pool: pool}
}

const materialColumns = `id, title, description, subject, semester, category, file_url, downloads, created_at`

func scanMaterial(row pgx.Row, m *model.Material) error {
	return row.Scan(&m.ID, &m.Title, &m.Description, &m.Subject, &m.Semester, &m.Category, &m.FileURL, &m.Downloads, &m.CreatedAt)
}

// List returns all materials in the requested order.
func (r *MaterialRepository) List(ctx context.Context, viewer model.Identity, order Order) ([]model.Material, error) {
	clause, err := orderClause("materials", order)
	if err != nil {
		return nil, err
	}

	var materials []model.Material
	err = withIdentity(ctx, r.pool, viewer, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, `SELECT `+materialColumns+` FROM materials `+clause)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var m model.Material
			if err := scanMaterial(rows, &m); err != nil {
				return err
			}
			materials = append(materials, m)
		}
		return rows.Err()
	})
	return materials, err
}

// GetByID retrieves a material. Returns pgx.ErrNoRows when absent.
func (r *MaterialRepository) GetByID(ctx context.Context, viewer model.Identity, id uuid.UUID) (*model.Material, error) {
	m := &model.Material{}
	err := withIdentity(ctx, r.pool, viewer, func(tx pgx.Tx) error {
		return scanMaterial(tx.QueryRow(ctx, `SELECT `+materialColumns+` FROM materials WHERE id = $1`, id), m)
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

// GetDownloads reads the current download counter. A missing row yields nil, not an error.
func (r *MaterialRepository) GetDownloads(ctx context.Context, viewer model.Identity, id uuid.UUID) (*int, error) {
	var downloads int
	err := withIdentity(ctx, r.pool, viewer, func(tx pgx.Tx) error {
		return tx.QueryRow(ctx, `SELECT downloads FROM materials WHERE id = $1`, id).Scan(&downloads)
	})
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &downloads, nil
}

// SetDownloads overwrites the download counter. Only admins pass the update
// policy; for anyone else the statement matches no row and ErrPolicyRefused is returned.
func (r *MaterialRepository) SetDownloads(ctx context.Context, viewer model.Identity, id uuid.UUID, downloads int) error {
	return withIdentity(ctx, r.pool, viewer, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `UPDATE materials SET downloads = $1 WHERE id = $2`, downloads, id)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return ErrPolicyRefused
		}
		return nil
	})
}

// Create inserts a material. Used by the seed command.
func (r *MaterialRepository) Create(ctx context.Context, m *model.Material) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO materials (title, description, subject, semester, category, file_url)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, downloads, created_at`,
		m.Title, m.Description, m.Subject, m.Semester, m.Category, m.FileURL,
	).Scan(&m.ID, &m.Downloads, &m.CreatedAt)
}
