package repository

import (
	"context"

	"github.com/ietdavv/iet-portal/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SettingRepository reads and writes site settings. app_settings carries no
// row-level policy; the server only ever reads whitelisted keys from it.
type SettingRepository struct {
	pool *pgxpool.Pool
}

func NewSettingRepository(pool *pgxpool.Pool) *SettingRepository {
	return &SettingRepository{pool: pool}
}

// ListByKeys returns the settings among keys that exist, ordered by key.
func (r *SettingRepository) ListByKeys(ctx context.Context, keys []string) ([]model.AppSetting, error) {
	if len(keys) == 0 {
		return []model.AppSetting{}, nil
	}
	rows, err := r.pool.Query(ctx,
		`SELECT key, value, updated_at FROM app_settings WHERE key = ANY($1) ORDER BY key`, keys)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByPos[model.AppSetting])
}

// Upsert stores a setting. updated_at only moves when the value changes,
// so re-running the seed command keeps the original timestamps.
func (r *SettingRepository) Upsert(ctx context.Context, key, value string) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO app_settings AS s (key, value) VALUES ($1, $2)
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
		 WHERE s.value IS DISTINCT FROM EXCLUDED.value`,
		key, value)
	return err
}
