package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/ietdavv/iet-portal/internal/middleware"
	"github.com/ietdavv/iet-portal/internal/model"
	"github.com/ietdavv/iet-portal/internal/service"
)

type NoticeHandler struct {
	noticeService *service.NoticeService
}

func NewNoticeHandler(noticeService *service.NoticeService) *NoticeHandler {
	return &NoticeHandler{noticeService: noticeService}
}

// List godoc
// GET /api/v1/notices
func (h *NoticeHandler) List(c *gin.Context) {
	viewer := middleware.GetIdentity(c)
	serveFeed(c, "notices", func(ctx context.Context) ([]model.NoticeView, error) {
		return h.noticeService.List(ctx, viewer)
	})
}
