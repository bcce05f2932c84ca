package service

import (
	"context"

	"github.com/ietdavv/iet-portal/internal/model"
	"github.com/ietdavv/iet-portal/internal/repository"
	"github.com/rs/zerolog"
)

// ContactStore inserts and lists contact form submissions.
type ContactStore interface {
	Insert(ctx context.Context, viewer model.Identity, form model.ContactForm) (*model.ContactMessage, error)
	List(ctx context.Context, viewer model.Identity, order repository.Order) ([]model.ContactMessage, error)
}

// ContactNotifier hands a stored message to the e-mail pipeline.
type ContactNotifier interface {
	Enqueue(ctx context.Context, msg *model.ContactMessage) error
}

type ContactService struct {
	store    ContactStore
	notifier ContactNotifier
	log      zerolog.Logger
}

// NewContactService creates a ContactService. notifier may be nil.
func NewContactService(store ContactStore, notifier ContactNotifier, log zerolog.Logger) *ContactService {
	return &ContactService{
		store:    store,
		notifier: notifier,
		log:      log.With().Str("component", "contact_service").Logger(),
	}
}

// Submit stores one contact message. On success the returned form is empty,
// ready for the next message. On failure the submitted form is returned as-is
// together with a *MutationError.
func (s *ContactService) Submit(ctx context.Context, viewer model.Identity, form model.ContactForm) (model.ContactForm, error) {
	msg, err := s.store.Insert(ctx, viewer, form)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to store contact message")
		return form, &MutationError{Collection: "contacts", Err: err}
	}

	s.log.Info().Str("contact_id", msg.ID.String()).Msg("contact message received")

	if s.notifier != nil {
		if err := s.notifier.Enqueue(ctx, msg); err != nil {
			s.log.Warn().Err(&BestEffortFailure{Op: "enqueue contact notification", Err: err}).
				Str("contact_id", msg.ID.String()).
				Msg("contact notification skipped")
		}
	}

	return model.ContactForm{}, nil
}
