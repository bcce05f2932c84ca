package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/ietdavv/iet-portal/internal/content"
	"github.com/ietdavv/iet-portal/internal/model"
	"github.com/ietdavv/iet-portal/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// MaterialStore reads materials and reads/writes their download counter.
type MaterialStore interface {
	List(ctx context.Context, viewer model.Identity, order repository.Order) ([]model.Material, error)
	GetByID(ctx context.Context, viewer model.Identity, id uuid.UUID) (*model.Material, error)
	GetDownloads(ctx context.Context, viewer model.Identity, id uuid.UUID) (*int, error)
	SetDownloads(ctx context.Context, viewer model.Identity, id uuid.UUID, downloads int) error
}

// MaterialService backs the academics page.
type MaterialService struct {
	store MaterialStore
	log   zerolog.Logger
}

// NewMaterialService creates a new MaterialService.
func NewMaterialService(store MaterialStore, log zerolog.Logger) *MaterialService {
	return &MaterialService{
		store: store,
		log:   log.With().Str("component", "material_service").Logger(),
	}
}

// List returns materials newest first, restricted to the selected tab.
func (s *MaterialService) List(ctx context.Context, viewer model.Identity, category string) ([]model.MaterialView, error) {
	materials, err := s.store.List(ctx, viewer, repository.Order{Field: "created_at"})
	if err != nil {
		s.log.Error().Err(err).Msg("failed to load materials")
		return nil, &FetchError{Collection: "materials", Err: err}
	}

	if category == "" {
		category = content.All
	}
	materials = content.FilterByCategory(materials, category)

	views := make([]model.MaterialView, 0, len(materials))
	for _, m := range materials {
		c := content.ClassifyMaterial(m.Category)
		views = append(views, model.MaterialView{
			Material:      m,
			CategoryName:  c.Label,
			Icon:          c.Icon,
			SemesterLabel: m.SemesterLabel(),
		})
	}
	return views, nil
}

// Open resolves the file of a material and counts the download. The counter
// update never affects the result: the URL is returned even when it fails.
func (s *MaterialService) Open(ctx context.Context, viewer model.Identity, id uuid.UUID) (string, error) {
	m, err := s.store.GetByID(ctx, viewer, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", ErrMaterialNotFound
	}
	if err != nil {
		s.log.Error().Err(err).Str("material_id", id.String()).Msg("failed to load material")
		return "", &FetchError{Collection: "materials", Err: err}
	}
	if !m.HasFile() {
		return "", ErrFileUnavailable
	}

	s.IncrementDownloads(ctx, viewer, id)
	return *m.FileURL, nil
}

// IncrementDownloads adds one to a material's download counter by reading the
// current value and writing back value+1.
//
// This is not atomic. Two callers that read the same value both write the same
// result and one increment is lost. Callers other than admins are refused by
// the update policy. Every failure is logged and swallowed.
func (s *MaterialService) IncrementDownloads(ctx context.Context, viewer model.Identity, id uuid.UUID) {
	current, err := s.store.GetDownloads(ctx, viewer, id)
	if err != nil {
		s.logBestEffort(id, &BestEffortFailure{Op: "read downloads", Err: err})
		return
	}
	if current == nil {
		s.log.Warn().Str("material_id", id.String()).Msg("download counter not found, skipping increment")
		return
	}

	if err := s.store.SetDownloads(ctx, viewer, id, *current+1); err != nil {
		s.logBestEffort(id, &BestEffortFailure{Op: "write downloads", Err: err})
	}
}

func (s *MaterialService) logBestEffort(id uuid.UUID, err *BestEffortFailure) {
	ev := s.log.Warn()
	if errors.Is(err, repository.ErrPolicyRefused) {
		ev = s.log.Debug()
	}
	ev.Err(err).Str("material_id", id.String()).Msg("download counter not updated")
}
