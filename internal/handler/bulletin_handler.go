package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/ietdavv/iet-portal/internal/content"
	"github.com/ietdavv/iet-portal/internal/middleware"
	"github.com/ietdavv/iet-portal/internal/model"
	"github.com/ietdavv/iet-portal/internal/service"
)

type BulletinHandler struct {
	bulletinService *service.BulletinService
}

func NewBulletinHandler(bulletinService *service.BulletinService) *BulletinHandler {
	return &BulletinHandler{bulletinService: bulletinService}
}

// List godoc
// GET /api/v1/bulletin?category=exam
func (h *BulletinHandler) List(c *gin.Context) {
	viewer := middleware.GetIdentity(c)
	category := c.DefaultQuery("category", content.All)
	serveFeed(c, "items", func(ctx context.Context) ([]model.BulletinItemView, error) {
		return h.bulletinService.List(ctx, viewer, category)
	})
}
