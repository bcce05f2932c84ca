package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/ietdavv/iet-portal/internal/model"
	"github.com/rs/zerolog"
)

func TestIsAdminAnonymousMakesNoQuery(t *testing.T) {
	store := &fakeRoleStore{}
	gate := NewRoleGate(store, zerolog.Nop())

	ok, err := gate.IsAdmin(context.Background(), model.Identity{})
	if err != nil || ok {
		t.Fatalf("IsAdmin(anonymous) = %v, %v; want false, nil", ok, err)
	}
	if store.queries != 0 {
		t.Errorf("queries = %d, want 0", store.queries)
	}
}

func TestIsAdmin(t *testing.T) {
	admin, editor, shouty, nobody := uuid.New(), uuid.New(), uuid.New(), uuid.New()
	store := &fakeRoleStore{roles: map[uuid.UUID][]string{
		admin:  {"editor", "admin"},
		editor: {"editor"},
		shouty: {"Admin", "ADMIN", "admin "},
	}}
	gate := NewRoleGate(store, zerolog.Nop())

	tests := []struct {
		name string
		user uuid.UUID
		want bool
	}{
		{"admin among roles", admin, true},
		{"other role", editor, false},
		{"case and spacing differ", shouty, false},
		{"no roles", nobody, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := gate.IsAdmin(context.Background(), model.Identity{UserID: tt.user})
			if err != nil {
				t.Fatalf("IsAdmin: %v", err)
			}
			if ok != tt.want {
				t.Errorf("IsAdmin = %v, want %v", ok, tt.want)
			}
		})
	}
}

func TestAdminMessagesGated(t *testing.T) {
	user := uuid.New()
	roles := &fakeRoleStore{roles: map[uuid.UUID][]string{}}
	contacts := &fakeContactStore{messages: []model.ContactMessage{{Name: "x"}}}
	svc := NewAdminMessageService(NewRoleGate(roles, zerolog.Nop()), contacts, zerolog.Nop())

	if _, err := svc.List(context.Background(), model.Identity{UserID: user}); !errors.Is(err, ErrAuthorizationDenied) {
		t.Fatalf("err = %v, want ErrAuthorizationDenied", err)
	}
	if contacts.listed != 0 {
		t.Error("messages queried for a non-admin")
	}

	roles.roles[user] = []string{"admin"}
	views, err := svc.List(context.Background(), model.Identity{UserID: user})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(views) != 1 || views[0].StatusLabel != model.DefaultContactStatus {
		t.Errorf("views = %+v", views)
	}

	roles.err = errors.New("timeout")
	var fe *FetchError
	if _, err := svc.List(context.Background(), model.Identity{UserID: user}); !errors.As(err, &fe) {
		t.Errorf("role lookup failure: err = %v, want FetchError", err)
	}
}
