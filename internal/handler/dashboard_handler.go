package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ietdavv/iet-portal/internal/middleware"
	"github.com/ietdavv/iet-portal/internal/response"
	"github.com/ietdavv/iet-portal/internal/service"
)

// DashboardHandler handles admin dashboard endpoints.
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetDashboardData godoc
// GET /api/v1/admin/dashboard
// Returns content totals, contact status distribution and the most downloaded materials.
func (h *DashboardHandler) GetDashboardData(c *gin.Context) {
	data, err := h.dashboardService.GetDashboardData(c.Request.Context(), middleware.GetIdentity(c))
	if err != nil {
		var fe *service.FetchError
		switch {
		case errors.Is(err, service.ErrAuthorizationDenied):
			response.Fail(c, http.StatusForbidden, response.ErrAdminAccessOnly)
		case errors.As(err, &fe):
			response.Fail(c, http.StatusServiceUnavailable, response.ErrFetchFailed)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	response.Success(c, http.StatusOK, data)
}
