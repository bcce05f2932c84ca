package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/ietdavv/iet-portal/internal/chat"
	"github.com/ietdavv/iet-portal/internal/model"
	"github.com/rs/zerolog"
)

// BotService manages chat sessions with the iet-bot function.
type BotService struct {
	sessions chat.SessionStore
	relay    chat.Relay
	log      zerolog.Logger
}

// NewBotService creates a BotService over REST sessions kept in sessions.
func NewBotService(sessions chat.SessionStore, relay chat.Relay, log zerolog.Logger) *BotService {
	return &BotService{
		sessions: sessions,
		relay:    relay,
		log:      log.With().Str("component", "bot_service").Logger(),
	}
}

// StartSession creates a transcript holding the greeting.
func (s *BotService) StartSession(ctx context.Context) (*model.ChatSession, error) {
	session := s.sessions.Open(uuid.New().String())
	if err := session.Start(ctx); err != nil {
		s.log.Error().Err(err).Msg("failed to start chat session")
		return nil, err
	}
	entries, err := session.Entries(ctx)
	if err != nil {
		return nil, err
	}
	return &model.ChatSession{ID: session.ID(), Entries: entries}, nil
}

// Session returns the transcript of id, or chat.ErrSessionNotFound.
func (s *BotService) Session(ctx context.Context, id string) (*model.ChatSession, error) {
	entries, err := s.sessions.Open(id).Entries(ctx)
	if err != nil {
		return nil, err
	}
	return &model.ChatSession{ID: id, Entries: entries}, nil
}

// Send relays text within session id and returns the updated transcript.
func (s *BotService) Send(ctx context.Context, id, text string) (*model.SendChatResponse, chat.Outcome, error) {
	session := s.sessions.Open(id)
	exists, err := session.Exists(ctx)
	if err != nil {
		return nil, chat.OutcomeIgnored, err
	}
	if !exists {
		return nil, chat.OutcomeIgnored, chat.ErrSessionNotFound
	}

	log := s.log.With().Str("session_id", id).Logger()
	outcome, err := chat.NewConversation(s.relay, session, session, log).Send(ctx, text)
	if err != nil {
		log.Error().Err(err).Msg("chat send failed")
		return nil, outcome, err
	}

	entries, err := session.Entries(ctx)
	if err != nil {
		return nil, outcome, err
	}
	return sendResponse(outcome, entries), outcome, nil
}

// NewStream returns a conversation whose transcript lives in memory, for one
// WebSocket connection.
func (s *BotService) NewStream(log zerolog.Logger) (*chat.Conversation, *chat.MemorySession) {
	session := chat.NewMemorySession()
	return chat.NewConversation(s.relay, session, session, log), session
}

func sendResponse(outcome chat.Outcome, entries []model.ChatEntry) *model.SendChatResponse {
	resp := &model.SendChatResponse{
		Accepted: outcome == chat.OutcomeReplied || outcome == chat.OutcomeFailed,
		Entries:  entries,
	}
	if outcome == chat.OutcomeFailed {
		resp.Notice = chat.FailureNotice
	}
	return resp
}
