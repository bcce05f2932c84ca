package websocket

import "github.com/ietdavv/iet-portal/internal/model"

// ─── Actions (Client → Server) ──────────────────────────────────────

type Action string

const (
	ActionSend Action = "send"
	ActionPing Action = "ping"
)

// RequestPayload is any message sent by the client.
type RequestPayload struct {
	Action  Action `json:"action"`
	Message string `json:"message,omitempty"`
}

// ─── Events (Server → Client) ───────────────────────────────────────

type Event string

const (
	EventTranscript Event = "transcript"
	EventReply      Event = "reply"
	EventBusy       Event = "busy"
	EventError      Event = "error"
	EventPong       Event = "pong"
)

// TranscriptResponse carries the whole transcript. Sent on connect.
type TranscriptResponse struct {
	Event   Event             `json:"event"`
	Entries []model.ChatEntry `json:"entries"`
}

// ReplyResponse is sent when a send completes, successfully or with the
// fallback reply. Notice is set when the relay failed.
type ReplyResponse struct {
	Event   Event             `json:"event"`
	Status  string            `json:"status"`
	Entries []model.ChatEntry `json:"entries"`
	Notice  string            `json:"notice,omitempty"`
}

// BusyResponse refuses a send while another one is in flight.
type BusyResponse struct {
	Event Event `json:"event"`
}

type ErrorResponse struct {
	Event Event  `json:"event"`
	Error string `json:"error"`
}

type PongResponse struct {
	Event Event `json:"event"`
}
