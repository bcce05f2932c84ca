package service

import (
	"context"
	"sort"
	"time"

	"github.com/ietdavv/iet-portal/internal/content"
	"github.com/ietdavv/iet-portal/internal/model"
	"github.com/ietdavv/iet-portal/internal/repository"
	"github.com/rs/zerolog"
)

// NoticeStore reads notices.
type NoticeStore interface {
	List(ctx context.Context, viewer model.Identity, order repository.Order) ([]model.Notice, error)
}

type NoticeService struct {
	store NoticeStore
	loc   *time.Location
	log   zerolog.Logger
}

func NewNoticeService(store NoticeStore, loc *time.Location, log zerolog.Logger) *NoticeService {
	return &NoticeService{
		store: store,
		loc:   loc,
		log:   log.With().Str("component", "notice_service").Logger(),
	}
}

// List returns every notice, most recently published first, decorated for display.
func (s *NoticeService) List(ctx context.Context, viewer model.Identity) ([]model.NoticeView, error) {
	notices, err := s.store.List(ctx, viewer, repository.Order{Field: "published_at"})
	if err != nil {
		s.log.Error().Err(err).Msg("failed to load notices")
		return nil, &FetchError{Collection: "notices", Err: err}
	}

	sort.SliceStable(notices, func(i, j int) bool {
		return notices[i].PublishedAt.After(notices[j].PublishedAt)
	})

	views := make([]model.NoticeView, 0, len(notices))
	for _, n := range notices {
		views = append(views, model.NoticeView{
			Notice:           n,
			CategoryLabel:    content.ClassifyNotice(n.Category).Label,
			PriorityEmphasis: content.ClassifyPriority(n.Priority).Emphasis,
			PublishedOn:      content.FormatLongDate(n.PublishedAt, s.loc),
			ContentHTML:      content.RenderMarkdown(n.Content),
		})
	}
	return views, nil
}
