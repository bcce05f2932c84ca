package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ietdavv/iet-portal/internal/content"
	"github.com/ietdavv/iet-portal/internal/middleware"
	"github.com/ietdavv/iet-portal/internal/model"
	"github.com/ietdavv/iet-portal/internal/response"
	"github.com/ietdavv/iet-portal/internal/service"
)

// MaterialHandler serves the academics page.
type MaterialHandler struct {
	materialService *service.MaterialService
}

// NewMaterialHandler creates a new MaterialHandler.
func NewMaterialHandler(materialService *service.MaterialService) *MaterialHandler {
	return &MaterialHandler{materialService: materialService}
}

// List godoc
// GET /api/v1/materials?category=notes
// Lists materials for one tab; "all" or no category lists everything.
func (h *MaterialHandler) List(c *gin.Context) {
	viewer := middleware.GetIdentity(c)
	category := c.DefaultQuery("category", content.All)
	serveFeed(c, "materials", func(ctx context.Context) ([]model.MaterialView, error) {
		return h.materialService.List(ctx, viewer, category)
	})
}

// Open godoc
// POST /api/v1/materials/:id/open
// Returns the file URL to open. The download counter is updated on a
// best-effort basis and never affects this response.
func (h *MaterialHandler) Open(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	url, err := h.materialService.Open(c.Request.Context(), middleware.GetIdentity(c), id)
	if err != nil {
		var fe *service.FetchError
		switch {
		case errors.Is(err, service.ErrMaterialNotFound):
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		case errors.Is(err, service.ErrFileUnavailable):
			response.Fail(c, http.StatusUnprocessableEntity, response.ErrFileUnavailable)
		case errors.As(err, &fe):
			response.Fail(c, http.StatusServiceUnavailable, response.ErrFetchFailed)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"url": url})
}
