package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ietdavv/iet-portal/internal/chat"
	"github.com/ietdavv/iet-portal/internal/model"
	"github.com/ietdavv/iet-portal/internal/response"
	"github.com/ietdavv/iet-portal/internal/service"
	"github.com/ietdavv/iet-portal/internal/validator"
)

// BotHandler exposes chat sessions over plain HTTP.
type BotHandler struct {
	botService *service.BotService
}

// NewBotHandler creates a new BotHandler.
func NewBotHandler(botService *service.BotService) *BotHandler {
	return &BotHandler{botService: botService}
}

// StartSession godoc
// POST /api/v1/bot/sessions
func (h *BotHandler) StartSession(c *gin.Context) {
	session, err := h.botService.StartSession(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusCreated, session)
}

// GetSession godoc
// GET /api/v1/bot/sessions/:id
func (h *BotHandler) GetSession(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	session, err := h.botService.Session(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, chat.ErrSessionNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, session)
}

// Send godoc
// POST /api/v1/bot/sessions/:id/messages
// A blank message is accepted and ignored. A relay failure still answers 200
// with the fallback reply appended and a notice to show.
func (h *BotHandler) Send(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	var req model.SendChatRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	resp, outcome, err := h.botService.Send(c.Request.Context(), id, req.Message)
	if err != nil {
		if errors.Is(err, chat.ErrSessionNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	if outcome == chat.OutcomeBusy {
		response.FailWithData(c, http.StatusConflict, response.ErrChatBusy, resp)
		return
	}
	response.Success(c, http.StatusOK, resp)
}

// sessionID reads and validates the :id parameter, answering 400 itself when invalid.
func sessionID(c *gin.Context) (string, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return "", false
	}
	return id.String(), true
}
