package chat

import (
	"context"
	"sync"

	"github.com/ietdavv/iet-portal/internal/model"
)

// MemorySession is a transcript and busy flag held in process memory. It lives
// as long as one WebSocket connection.
type MemorySession struct {
	mu      sync.Mutex
	entries []model.ChatEntry
	busy    bool
}

// NewMemorySession returns a session seeded with the greeting.
func NewMemorySession() *MemorySession {
	return &MemorySession{
		entries: []model.ChatEntry{{Role: model.ChatRoleAssistant, Content: Greeting}},
	}
}

func (s *MemorySession) Append(_ context.Context, entry model.ChatEntry) error {
	s.mu.Lock()
	s.entries = append(s.entries, entry)
	s.mu.Unlock()
	return nil
}

// Entries returns a copy of the transcript.
func (s *MemorySession) Entries(_ context.Context) ([]model.ChatEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.ChatEntry, len(s.entries))
	copy(out, s.entries)
	return out, nil
}

func (s *MemorySession) Acquire(_ context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.busy {
		return false, nil
	}
	s.busy = true
	return true, nil
}

func (s *MemorySession) Release(_ context.Context) error {
	s.mu.Lock()
	s.busy = false
	s.mu.Unlock()
	return nil
}

// Busy reports whether a send is in progress.
func (s *MemorySession) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy
}
