package service

import (
	"context"

	"github.com/ietdavv/iet-portal/internal/content"
	"github.com/ietdavv/iet-portal/internal/model"
	"github.com/ietdavv/iet-portal/internal/repository"
	"github.com/rs/zerolog"
)

// BulletinStore reads bulletin items.
type BulletinStore interface {
	List(ctx context.Context, viewer model.Identity, order repository.Order) ([]model.BulletinItem, error)
}

type BulletinService struct {
	store BulletinStore
	log   zerolog.Logger
}

func NewBulletinService(store BulletinStore, log zerolog.Logger) *BulletinService {
	return &BulletinService{
		store: store,
		log:   log.With().Str("component", "bulletin_service").Logger(),
	}
}

// List returns bulletin items newest first, restricted to category unless it
// is content.All or empty.
func (s *BulletinService) List(ctx context.Context, viewer model.Identity, category string) ([]model.BulletinItemView, error) {
	items, err := s.store.List(ctx, viewer, repository.Order{Field: "created_at"})
	if err != nil {
		s.log.Error().Err(err).Msg("failed to load bulletin items")
		return nil, &FetchError{Collection: "bulletin_items", Err: err}
	}

	if category == "" {
		category = content.All
	}
	items = content.FilterByCategory(items, category)

	views := make([]model.BulletinItemView, 0, len(items))
	for _, b := range items {
		c := content.ClassifyBulletin(b.Category)
		views = append(views, model.BulletinItemView{
			BulletinItem:  b,
			CategoryLabel: c.Label,
			BadgeVariant:  c.Emphasis,
			// Calendar dates, rendered as stored.
			DateDisplay:   content.BulletinDateDisplay(b.StartDate, b.EndDate, nil),
			ContentHTML:   content.RenderMarkdown(b.Content),
		})
	}
	return views, nil
}
