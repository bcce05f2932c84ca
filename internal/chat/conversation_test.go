package chat

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/ietdavv/iet-portal/internal/model"
	"github.com/rs/zerolog"
)

type fakeRelay struct {
	calls   atomic.Int32
	reply   string
	err     error
	entered chan struct{}
	release chan struct{}
}

func (f *fakeRelay) Invoke(ctx context.Context, message string) (string, error) {
	f.calls.Add(1)
	if f.entered != nil {
		f.entered <- struct{}{}
		<-f.release
	}
	if f.err != nil {
		return "", f.err
	}
	return f.reply + message, nil
}

func newTestConversation(relay Relay) (*Conversation, *MemorySession) {
	session := NewMemorySession()
	return NewConversation(relay, session, session, zerolog.Nop()), session
}

func entries(t *testing.T, s *MemorySession) []model.ChatEntry {
	t.Helper()
	e, err := s.Entries(context.Background())
	if err != nil {
		t.Fatalf("Entries: %v", err)
	}
	return e
}

func TestSendBlankIsNoop(t *testing.T) {
	relay := &fakeRelay{}
	conv, session := newTestConversation(relay)

	for _, text := range []string{"", "   ", "\n\t "} {
		outcome, err := conv.Send(context.Background(), text)
		if err != nil {
			t.Fatalf("Send(%q): %v", text, err)
		}
		if outcome != OutcomeIgnored {
			t.Errorf("Send(%q) = %v, want ignored", text, outcome)
		}
	}

	if got := len(entries(t, session)); got != 1 {
		t.Errorf("transcript length = %d, want 1 (greeting only)", got)
	}
	if relay.calls.Load() != 0 {
		t.Errorf("relay invoked %d times, want 0", relay.calls.Load())
	}
}

func TestSendAppendsUserThenReply(t *testing.T) {
	relay := &fakeRelay{reply: "echo: "}
	conv, session := newTestConversation(relay)

	outcome, err := conv.Send(context.Background(), "  admissions?  ")
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if outcome != OutcomeReplied {
		t.Fatalf("outcome = %v, want replied", outcome)
	}

	got := entries(t, session)
	want := []model.ChatEntry{
		{Role: model.ChatRoleAssistant, Content: Greeting},
		{Role: model.ChatRoleUser, Content: "admissions?"},
		{Role: model.ChatRoleAssistant, Content: "echo: admissions?"},
	}
	if len(got) != len(want) {
		t.Fatalf("transcript = %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d = %+v, want %+v", i, got[i], want[i])
		}
	}
	if session.Busy() {
		t.Error("in-flight flag still set after reply")
	}
}

func TestSendRelayFailureAppendsFallback(t *testing.T) {
	relay := &fakeRelay{err: errors.New("function returned 500")}
	conv, session := newTestConversation(relay)

	outcome, err := conv.Send(context.Background(), "hello")
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if outcome != OutcomeFailed {
		t.Fatalf("outcome = %v, want failed", outcome)
	}

	got := entries(t, session)
	if len(got) != 3 {
		t.Fatalf("transcript length = %d, want 3", len(got))
	}
	if got[1].Role != model.ChatRoleUser || got[1].Content != "hello" {
		t.Errorf("user entry rolled back: %+v", got[1])
	}
	if got[2].Content != FallbackReply {
		t.Errorf("last entry = %q, want fallback", got[2].Content)
	}
	if session.Busy() {
		t.Error("in-flight flag still set after failure")
	}
}

func TestSendWhileInFlightIsRefused(t *testing.T) {
	relay := &fakeRelay{
		reply:   "ok ",
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
	conv, session := newTestConversation(relay)

	done := make(chan Outcome, 1)
	go func() {
		outcome, _ := conv.Send(context.Background(), "first")
		done <- outcome
	}()
	<-relay.entered

	outcome, err := conv.Send(context.Background(), "second")
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if outcome != OutcomeBusy {
		t.Errorf("concurrent send = %v, want busy", outcome)
	}
	if got := len(entries(t, session)); got != 2 {
		t.Errorf("transcript length during flight = %d, want 2", got)
	}

	close(relay.release)
	if got := <-done; got != OutcomeReplied {
		t.Errorf("first send = %v, want replied", got)
	}
	if relay.calls.Load() != 1 {
		t.Errorf("relay invoked %d times, want 1", relay.calls.Load())
	}

	// The flag is clear again, so a new send goes through.
	relay.entered = nil
	if outcome, _ := conv.Send(context.Background(), "third"); outcome != OutcomeReplied {
		t.Errorf("send after flight = %v, want replied", outcome)
	}
}
