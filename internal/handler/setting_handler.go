package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ietdavv/iet-portal/internal/model"
	"github.com/ietdavv/iet-portal/internal/response"
	"github.com/ietdavv/iet-portal/internal/service"
)

type SettingHandler struct {
	settingService *service.SettingService
}

func NewSettingHandler(settingService *service.SettingService) *SettingHandler {
	return &SettingHandler{settingService: settingService}
}

// GetPublicSettings godoc
// GET /api/v1/public/settings
// Footer and contact page details: address, phone, email, office hours.
func (h *SettingHandler) GetPublicSettings(c *gin.Context) {
	settings, err := h.settingService.GetPublicSettings(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusServiceUnavailable, response.ErrFetchFailed)
		return
	}
	response.Success(c, http.StatusOK, settings)
}

// GetGallery godoc
// GET /api/v1/public/gallery
func (h *SettingHandler) GetGallery(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"items": model.Gallery})
}
