package repository

import (
	"context"
	"fmt"

	"github.com/ietdavv/iet-portal/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BulletinRepository struct {
	pool *pgxpool.Pool
}

func NewBulletinRepository(pool *pgxpool.Pool) *BulletinRepository {
	return &BulletinRepository{pool: pool}
}

// List returns bulletin items in the requested order. A row whose end date
// has no start date is reported as malformed rather than passed on.
func (r *BulletinRepository) List(ctx context.Context, viewer model.Identity, order Order) ([]model.BulletinItem, error) {
	clause, err := orderClause("bulletin_items", order)
	if err != nil {
		return nil, err
	}

	var items []model.BulletinItem
	err = withIdentity(ctx, r.pool, viewer, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx,
			`SELECT id, title, content, category, start_date, end_date, created_at
			 FROM bulletin_items `+clause)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var b model.BulletinItem
			if err := rows.Scan(&b.ID, &b.Title, &b.Content, &b.Category, &b.StartDate, &b.EndDate, &b.CreatedAt); err != nil {
				return err
			}
			if err := b.Validate(); err != nil {
				return fmt.Errorf("bulletin item %s: %w", b.ID, err)
			}
			items = append(items, b)
		}
		return rows.Err()
	})
	return items, err
}

func (r *BulletinRepository) Create(ctx context.Context, b *model.BulletinItem) error {
	if err := b.Validate(); err != nil {
		return err
	}
	return r.pool.QueryRow(ctx,
		`INSERT INTO bulletin_items (title, content, category, start_date, end_date)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		b.Title, b.Content, b.Category, b.StartDate, b.EndDate,
	).Scan(&b.ID, &b.CreatedAt)
}
