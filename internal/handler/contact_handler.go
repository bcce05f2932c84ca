package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ietdavv/iet-portal/internal/middleware"
	"github.com/ietdavv/iet-portal/internal/model"
	"github.com/ietdavv/iet-portal/internal/response"
	"github.com/ietdavv/iet-portal/internal/service"
	"github.com/ietdavv/iet-portal/internal/validator"
)

const contactSuccessMessage = "Message sent successfully! We'll get back to you soon."

type ContactHandler struct {
	contactService *service.ContactService
}

func NewContactHandler(contactService *service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// Submit godoc
// POST /api/v1/contacts
// On success the response carries an empty form; on failure it carries the
// submitted form unchanged so nothing the visitor typed is lost.
func (h *ContactHandler) Submit(c *gin.Context) {
	var req model.ContactForm
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	form, err := h.contactService.Submit(c.Request.Context(), middleware.GetIdentity(c), req)
	if err != nil {
		response.FailWithData(c, http.StatusServiceUnavailable, response.ErrSubmitFailed, gin.H{"form": form})
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message": contactSuccessMessage,
		"form":    form,
	})
}
