package service

import (
	"context"
	"errors"
	"testing"

	"github.com/ietdavv/iet-portal/internal/model"
	"github.com/rs/zerolog"
)

type fakeSettingStore struct {
	settings []model.AppSetting
	err      error
	keys     []string
}

func (f *fakeSettingStore) ListByKeys(ctx context.Context, keys []string) ([]model.AppSetting, error) {
	f.keys = keys
	return f.settings, f.err
}

func TestGetPublicSettings(t *testing.T) {
	store := &fakeSettingStore{settings: []model.AppSetting{
		{Key: "address", Value: "Khandwa Road, Indore"},
		{Key: "phone", Value: "+91-731-2361116"},
	}}
	svc := NewSettingService(store, nil, zerolog.Nop())

	got, err := svc.GetPublicSettings(context.Background())
	if err != nil {
		t.Fatalf("GetPublicSettings: %v", err)
	}
	if got["address"] != "Khandwa Road, Indore" || got["phone"] != "+91-731-2361116" || len(got) != 2 {
		t.Errorf("settings = %v", got)
	}
	if len(store.keys) != len(model.PublicSettingKeys) {
		t.Errorf("queried keys = %v, want the public keys", store.keys)
	}
}

func TestGetPublicSettingsFailure(t *testing.T) {
	svc := NewSettingService(&fakeSettingStore{err: errors.New("down")}, nil, zerolog.Nop())

	_, err := svc.GetPublicSettings(context.Background())
	var fe *FetchError
	if !errors.As(err, &fe) || fe.Collection != "app_settings" {
		t.Fatalf("err = %v, want FetchError for app_settings", err)
	}
}
