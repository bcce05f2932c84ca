package service

import (
	"context"

	"github.com/ietdavv/iet-portal/internal/model"
	"github.com/ietdavv/iet-portal/internal/repository"
	"github.com/rs/zerolog"
)

const topMaterialsLimit = 5

// DashboardStore reads the aggregate metrics shown to admins.
type DashboardStore interface {
	GetSummaryCounts(ctx context.Context, viewer model.Identity) (repository.DashboardSummary, error)
	GetContactStatusCounts(ctx context.Context, viewer model.Identity) (map[string]int, error)
	GetTopMaterials(ctx context.Context, viewer model.Identity, limit int) ([]repository.DashboardTopMaterial, error)
}

// DashboardData consolidates all metrics for the admin dashboard.
type DashboardData struct {
	repository.DashboardSummary
	ContactStatusCounts map[string]int                    `json:"contact_status_counts"`
	TopMaterials        []repository.DashboardTopMaterial `json:"top_materials"`
}

// DashboardService handles admin dashboard business logic.
type DashboardService struct {
	gate  *RoleGate
	store DashboardStore
	log   zerolog.Logger
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(gate *RoleGate, store DashboardStore, log zerolog.Logger) *DashboardService {
	return &DashboardService{
		gate:  gate,
		store: store,
		log:   log.With().Str("component", "dashboard_service").Logger(),
	}
}

// GetDashboardData fetches all dashboard metrics for an admin viewer.
func (s *DashboardService) GetDashboardData(ctx context.Context, viewer model.Identity) (*DashboardData, error) {
	ok, err := s.gate.IsAdmin(ctx, viewer)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrAuthorizationDenied
	}

	summary, err := s.store.GetSummaryCounts(ctx, viewer)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to count content")
		return nil, &FetchError{Collection: "dashboard", Err: err}
	}

	statusCounts, err := s.store.GetContactStatusCounts(ctx, viewer)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to count contact statuses")
		return nil, &FetchError{Collection: "contacts", Err: err}
	}

	top, err := s.store.GetTopMaterials(ctx, viewer, topMaterialsLimit)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to rank materials")
		return nil, &FetchError{Collection: "materials", Err: err}
	}

	return &DashboardData{
		DashboardSummary:    summary,
		ContactStatusCounts: statusCounts,
		TopMaterials:        top,
	}, nil
}
