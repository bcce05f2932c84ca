package service

import (
	"context"

	"github.com/ietdavv/iet-portal/internal/model"
	"github.com/ietdavv/iet-portal/internal/repository"
	"github.com/rs/zerolog"
)

// AdminMessageService lists contact messages for administrators.
type AdminMessageService struct {
	gate  *RoleGate
	store ContactStore
	log   zerolog.Logger
}

func NewAdminMessageService(gate *RoleGate, store ContactStore, log zerolog.Logger) *AdminMessageService {
	return &AdminMessageService{
		gate:  gate,
		store: store,
		log:   log.With().Str("component", "admin_message_service").Logger(),
	}
}

// List returns all contact messages, newest first. Callers the role gate
// refuses get ErrAuthorizationDenied and the messages are never queried.
func (s *AdminMessageService) List(ctx context.Context, viewer model.Identity) ([]model.ContactMessageView, error) {
	ok, err := s.gate.IsAdmin(ctx, viewer)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrAuthorizationDenied
	}

	messages, err := s.store.List(ctx, viewer, repository.Order{Field: "created_at"})
	if err != nil {
		s.log.Error().Err(err).Msg("failed to load contact messages")
		return nil, &FetchError{Collection: "contacts", Err: err}
	}

	views := make([]model.ContactMessageView, 0, len(messages))
	for _, m := range messages {
		views = append(views, model.ContactMessageView{ContactMessage: m, StatusLabel: m.StatusLabel()})
	}
	return views, nil
}
