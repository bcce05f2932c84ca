package handler

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/ietdavv/iet-portal/internal/chat"
	"github.com/ietdavv/iet-portal/internal/middleware"
	"github.com/ietdavv/iet-portal/internal/service"
	ws "github.com/ietdavv/iet-portal/internal/websocket"
	"github.com/rs/zerolog"
)

// maxChatMessageLength matches the limit on the REST send endpoint.
const maxChatMessageLength = 2000

// buildUpgrader creates a WebSocket upgrader with origin validation.
// allowedOrigins comes from config.Config.AllowedOrigins.
// An empty slice permits all origins (development mode).
func buildUpgrader(allowedOrigins []string) websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			if len(allowedOrigins) == 0 {
				return true
			}
			origin := r.Header.Get("Origin")
			for _, allowed := range allowedOrigins {
				if strings.EqualFold(allowed, origin) {
					return true
				}
			}
			return false
		},
	}
}

// WSHandler handles the bot chat stream.
type WSHandler struct {
	botService *service.BotService
	log        zerolog.Logger
	upgrader   websocket.Upgrader
}

// NewWSHandler creates a new WSHandler.
func NewWSHandler(botService *service.BotService, log zerolog.Logger, allowedOrigins []string) *WSHandler {
	return &WSHandler{
		botService: botService,
		log:        log.With().Str("component", "ws_handler").Logger(),
		upgrader:   buildUpgrader(allowedOrigins),
	}
}

// BotStream godoc
// WS /ws/v1/bot
// Upgrades to WebSocket for a chat session that lives as long as the
// connection. Replies still in flight when the connection closes are dropped.
func (h *WSHandler) BotStream(c *gin.Context) {
	raw, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Error().Err(err).Msg("WebSocket upgrade failed")
		return
	}
	conn := ws.NewConn(raw)
	defer conn.Close()

	wsLog := h.log.With().Str("connection_id", uuid.NewString()).Logger()
	if viewer := middleware.GetIdentity(c); !viewer.Anonymous() {
		wsLog = wsLog.With().Str("user_id", viewer.UserID.String()).Logger()
	}
	wsLog.Info().Msg("Bot client connected")

	conv, session := h.botService.NewStream(wsLog)

	ctx, cancel := context.WithCancel(context.Background())
	var inflight sync.WaitGroup
	defer func() {
		cancel()
		inflight.Wait()
	}()

	entries, _ := session.Entries(ctx)
	if err := conn.WriteTyped(ws.TranscriptResponse{Event: ws.EventTranscript, Entries: entries}); err != nil {
		return
	}

	for {
		var msg ws.RequestPayload
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				wsLog.Warn().Err(err).Msg("Unexpected close")
			} else {
				wsLog.Debug().Msg("Connection closed")
			}
			return
		}

		switch msg.Action {
		case ws.ActionPing:
			_ = conn.WriteTyped(ws.PongResponse{Event: ws.EventPong})
		case ws.ActionSend:
			if utf8.RuneCountInString(msg.Message) > maxChatMessageLength {
				_ = conn.WriteError("message is too long")
				continue
			}
			if session.Busy() {
				_ = conn.WriteTyped(ws.BusyResponse{Event: ws.EventBusy})
				continue
			}
			inflight.Add(1)
			go func(text string) {
				defer inflight.Done()
				h.handleSend(ctx, conn, conv, session, text)
			}(msg.Message)
		default:
			wsLog.Warn().Str("action", string(msg.Action)).Msg("Unknown action")
			_ = conn.WriteError("unknown action: " + string(msg.Action))
		}
	}
}

// handleSend runs one send and reports its outcome.
func (h *WSHandler) handleSend(ctx context.Context, conn *ws.Conn, conv *chat.Conversation, session *chat.MemorySession, text string) {
	outcome, err := conv.Send(ctx, text)
	if err != nil {
		_ = conn.WriteError("send failed")
		return
	}

	switch outcome {
	case chat.OutcomeIgnored:
		return
	case chat.OutcomeBusy:
		_ = conn.WriteTyped(ws.BusyResponse{Event: ws.EventBusy})
		return
	}

	entries, _ := session.Entries(ctx)
	resp := ws.ReplyResponse{Event: ws.EventReply, Status: outcome.String(), Entries: entries}
	if outcome == chat.OutcomeFailed {
		resp.Notice = chat.FailureNotice
	}
	_ = conn.WriteTyped(resp)
}
