package repository

import (
	"context"

	"github.com/ietdavv/iet-portal/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NoticeRepository handles notice data access.
type NoticeRepository struct {
	pool *pgxpool.Pool
}

// NewNoticeRepository creates a new NoticeRepository.
func NewNoticeRepository(pool *pgxpool.Pool) *NoticeRepository {
	return &NoticeRepository{pool: pool}
}

// List returns all notices visible to viewer in the requested order.
func (r *NoticeRepository) List(ctx context.Context, viewer model.Identity, order Order) ([]model.Notice, error) {
	clause, err := orderClause("notices", order)
	if err != nil {
		return nil, err
	}

	var notices []model.Notice
	err = withIdentity(ctx, r.pool, viewer, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx,
			`SELECT id, title, content, category, priority, published_at, created_at
			 FROM notices `+clause)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var n model.Notice
			if err := rows.Scan(&n.ID, &n.Title, &n.Content, &n.Category, &n.Priority, &n.PublishedAt, &n.CreatedAt); err != nil {
				return err
			}
			notices = append(notices, n)
		}
		return rows.Err()
	})
	return notices, err
}

// Create inserts a notice. Used by the seed command.
func (r *NoticeRepository) Create(ctx context.Context, n *model.Notice) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO notices (title, content, category, priority, published_at)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		n.Title, n.Content, n.Category, n.Priority, n.PublishedAt,
	).Scan(&n.ID, &n.CreatedAt)
}
