package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/ietdavv/iet-portal/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ContactRepository handles contact form submissions.
type ContactRepository struct {
	pool *pgxpool.Pool
}

// NewContactRepository creates a new ContactRepository.
func NewContactRepository(pool *pgxpool.Pool) *ContactRepository {
	return &ContactRepository{pool: pool}
}

// Insert stores one submission. The id is generated here because the
// submitter may not read the row back (no RETURNING under the select policy).
func (r *ContactRepository) Insert(ctx context.Context, viewer model.Identity, form model.ContactForm) (*model.ContactMessage, error) {
	msg := &model.ContactMessage{
		ID:        uuid.New(),
		Name:      form.Name,
		Email:     form.Email,
		Subject:   form.Subject,
		Message:   form.Message,
		CreatedAt: time.Now().UTC(),
	}

	err := withIdentity(ctx, r.pool, viewer, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx,
			`INSERT INTO contacts (id, name, email, subject, message, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			msg.ID, msg.Name, msg.Email, msg.Subject, msg.Message, msg.CreatedAt,
		)
		return err
	})
	if err != nil {
		return nil, err
	}
	return msg, nil
}

// List returns submissions visible to viewer. The select policy hides every
// row from non-admins, so they get an empty list rather than an error.
func (r *ContactRepository) List(ctx context.Context, viewer model.Identity, order Order) ([]model.ContactMessage, error) {
	clause, err := orderClause("contacts", order)
	if err != nil {
		return nil, err
	}

	var messages []model.ContactMessage
	err = withIdentity(ctx, r.pool, viewer, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx,
			`SELECT id, name, email, subject, message, status, created_at
			 FROM contacts `+clause)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var m model.ContactMessage
			if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.Status, &m.CreatedAt); err != nil {
				return err
			}
			messages = append(messages, m)
		}
		return rows.Err()
	})
	return messages, err
}
