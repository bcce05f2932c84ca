package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/ietdavv/iet-portal/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Sentinel errors for data access.
var (
	ErrUnknownCollection = errors.New("unknown collection")
	ErrUnknownOrderField = errors.New("unknown order field")
	// ErrPolicyRefused means a write matched no row the caller is allowed to change.
	ErrPolicyRefused = errors.New("write refused by row-level policy")
)

// collections lists every table a list query may target and the columns it may be ordered by.
var collections = map[string]map[string]bool{
	"notices":        {"published_at": true, "created_at": true, "title": true},
	"bulletin_items": {"created_at": true, "start_date": true, "title": true},
	"materials":      {"created_at": true, "title": true, "downloads": true},
	"contacts":       {"created_at": true},
}

// Order selects the sort of a list query. The zero Ascending value sorts newest first.
type Order struct {
	Field     string
	Ascending bool
}

// orderClause validates the collection and field and returns the ORDER BY clause.
func orderClause(collection string, o Order) (string, error) {
	fields, ok := collections[collection]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownCollection, collection)
	}
	if !fields[o.Field] {
		return "", fmt.Errorf("%w: %s.%s", ErrUnknownOrderField, collection, o.Field)
	}
	dir := "DESC"
	if o.Ascending {
		dir = "ASC"
	}
	return fmt.Sprintf("ORDER BY %s %s, id %s", o.Field, dir, dir), nil
}

// appRole is the non-owner role row-level policies apply to. The schema grants
// it to the migrating user so the server can switch into it per transaction.
const appRole = "iet_app"

// withIdentity runs fn in a transaction as appRole with app.user_id carrying
// the caller, so the row-level policies in the schema see who is asking.
// An anonymous caller is recorded as an empty string.
func withIdentity(ctx context.Context, pool *pgxpool.Pool, viewer model.Identity, fn func(tx pgx.Tx) error) error {
	return pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, "SET LOCAL ROLE "+appRole); err != nil {
			return fmt.Errorf("set role: %w", err)
		}
		uid := ""
		if !viewer.Anonymous() {
			uid = viewer.UserID.String()
		}
		if _, err := tx.Exec(ctx, "SELECT set_config('app.user_id', $1, true)", uid); err != nil {
			return fmt.Errorf("set identity: %w", err)
		}
		return fn(tx)
	})
}
