package database

import (
	"context"
	"fmt"
	"time"

	"github.com/ietdavv/iet-portal/internal/config"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const applicationName = "iet-portal"

// NewPostgresPool opens the request pool. Repositories switch each
// transaction into the policy-bound application role, so DATABASE_URL may
// name the schema owner.
func NewPostgresPool(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*pgxpool.Pool, error) {
	return openPool(ctx, cfg.DatabaseURL, cfg.MaxDBConns, log)
}

// NewOwnerPool opens a small pool for the admin commands, preferring
// MIGRATE_DATABASE_URL.
func NewOwnerPool(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*pgxpool.Pool, error) {
	url := cfg.MigrateDatabaseURL
	if url == "" {
		url = cfg.DatabaseURL
	}
	return openPool(ctx, url, 2, log)
}

func openPool(ctx context.Context, url string, maxConns int32, log zerolog.Logger) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, fmt.Errorf("parse database URL: %w", err)
	}

	poolCfg.MaxConns = maxConns
	poolCfg.MaxConnIdleTime = 5 * time.Minute
	poolCfg.HealthCheckPeriod = time.Minute
	poolCfg.ConnConfig.RuntimeParams["application_name"] = applicationName
	// Timestamps are stored and compared in UTC; display zones are applied in Go.
	poolCfg.ConnConfig.RuntimeParams["timezone"] = "UTC"

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	if err := pingWithRetry(ctx, log, "postgres", pool.Ping); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	log.Info().
		Int32("max_conns", maxConns).
		Str("database", poolCfg.ConnConfig.Database).
		Str("user", poolCfg.ConnConfig.User).
		Msg("PostgreSQL connected")

	return pool, nil
}
