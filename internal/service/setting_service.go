package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/ietdavv/iet-portal/internal/config"
	"github.com/ietdavv/iet-portal/internal/model"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const publicSettingsTTL = 5 * time.Minute

// SettingStore reads site settings.
type SettingStore interface {
	ListByKeys(ctx context.Context, keys []string) ([]model.AppSetting, error)
}

type SettingService struct {
	store SettingStore
	rdb   *redis.Client
	log   zerolog.Logger
}

// NewSettingService creates a SettingService. rdb may be nil, which disables caching.
func NewSettingService(store SettingStore, rdb *redis.Client, log zerolog.Logger) *SettingService {
	return &SettingService{
		store: store,
		rdb:   rdb,
		log:   log.With().Str("component", "setting_service").Logger(),
	}
}

// GetPublicSettings returns the footer and contact page settings as a key/value map.
// Reads go through a short-lived Redis copy; cache errors fall back to the database.
func (s *SettingService) GetPublicSettings(ctx context.Context) (map[string]string, error) {
	if cached, ok := s.cached(ctx); ok {
		return cached, nil
	}

	settingsList, err := s.store.ListByKeys(ctx, model.PublicSettingKeys)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to get public settings")
		return nil, &FetchError{Collection: "app_settings", Err: err}
	}

	settingsMap := make(map[string]string, len(settingsList))
	for _, setting := range settingsList {
		settingsMap[setting.Key] = setting.Value
	}

	s.storeCached(ctx, settingsMap)
	return settingsMap, nil
}

func (s *SettingService) cached(ctx context.Context) (map[string]string, bool) {
	if s.rdb == nil {
		return nil, false
	}
	raw, err := s.rdb.Get(ctx, config.CacheKey.PublicSettingsKey()).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.log.Warn().Err(err).Msg("settings cache read failed")
		}
		return nil, false
	}
	var m map[string]string
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, false
	}
	return m, true
}

func (s *SettingService) storeCached(ctx context.Context, m map[string]string) {
	if s.rdb == nil {
		return
	}
	raw, err := json.Marshal(m)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, config.CacheKey.PublicSettingsKey(), raw, publicSettingsTTL).Err(); err != nil {
		s.log.Warn().Err(&BestEffortFailure{Op: "cache public settings", Err: err}).Msg("settings cache write failed")
	}
}
