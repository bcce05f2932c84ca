package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ietdavv/iet-portal/internal/middleware"
	"github.com/ietdavv/iet-portal/internal/model"
	"github.com/ietdavv/iet-portal/internal/response"
	"github.com/ietdavv/iet-portal/internal/service"
)

// AdminMessageHandler serves the contact message inbox.
type AdminMessageHandler struct {
	messageService *service.AdminMessageService
}

// NewAdminMessageHandler creates a new AdminMessageHandler.
func NewAdminMessageHandler(messageService *service.AdminMessageService) *AdminMessageHandler {
	return &AdminMessageHandler{messageService: messageService}
}

// List godoc
// GET /api/v1/admin/messages?page=1&per_page=20
// Non-admins receive 403 with an explicit "admins only" message.
func (h *AdminMessageHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "20"))

	messages, err := h.messageService.List(c.Request.Context(), middleware.GetIdentity(c))
	if err != nil {
		var fe *service.FetchError
		switch {
		case errors.Is(err, service.ErrAuthorizationDenied):
			response.Fail(c, http.StatusForbidden, response.ErrAdminAccessOnly)
		case errors.As(err, &fe):
			response.FailWithData(c, http.StatusServiceUnavailable, response.ErrFetchFailed, gin.H{"messages": []model.ContactMessageView{}})
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	pageItems, pagination := response.Page(messages, page, perPage)
	response.SuccessWithPagination(c, http.StatusOK, gin.H{"messages": pageItems}, pagination)
}
