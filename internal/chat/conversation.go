// Package chat relays visitor messages to the iet-bot function and keeps the
// resulting transcript.
package chat

import (
	"context"
	"errors"
	"strings"

	"github.com/ietdavv/iet-portal/internal/model"
	"github.com/rs/zerolog"
)

const (
	// FunctionName is the remote function answering chat messages.
	FunctionName = "iet-bot"

	// Greeting opens every new transcript.
	Greeting = "Hello! I'm IET Bot. I can help you with information about IET DAVV, admissions, courses, schedules, and more. How can I assist you today?"
	// FallbackReply is appended in place of a reply when the relay fails.
	FallbackReply = "Sorry, I'm having trouble responding right now. Please try again later."
	// FailureNotice is shown to the visitor alongside FallbackReply.
	FailureNotice = "Failed to get response. Please try again."
)

// ErrEmptyReply is returned by a relay whose answer carries no response text.
var ErrEmptyReply = errors.New("relay returned no response")

// Relay sends one message to the bot and waits for the whole reply.
type Relay interface {
	Invoke(ctx context.Context, message string) (string, error)
}

// Transcript is the ordered, append-only entry log of one session.
type Transcript interface {
	Append(ctx context.Context, entry model.ChatEntry) error
	Entries(ctx context.Context) ([]model.ChatEntry, error)
}

// Flight is the busy flag of one session. Acquire reports false when a send
// is already in progress.
type Flight interface {
	Acquire(ctx context.Context) (bool, error)
	Release(ctx context.Context) error
}

// Outcome is what a call to Send did.
type Outcome int

const (
	// OutcomeIgnored means the message was blank and nothing happened.
	OutcomeIgnored Outcome = iota
	// OutcomeBusy means another send on the session had not finished.
	OutcomeBusy
	// OutcomeReplied means the user entry and the bot reply were appended.
	OutcomeReplied
	// OutcomeFailed means the relay failed and FallbackReply was appended.
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeIgnored:
		return "ignored"
	case OutcomeBusy:
		return "busy"
	case OutcomeReplied:
		return "replied"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Conversation runs sends against one session.
type Conversation struct {
	relay      Relay
	transcript Transcript
	flight     Flight
	log        zerolog.Logger
}

// NewConversation binds a relay to a session's transcript and busy flag.
func NewConversation(relay Relay, transcript Transcript, flight Flight, log zerolog.Logger) *Conversation {
	return &Conversation{relay: relay, transcript: transcript, flight: flight, log: log}
}

// Send posts text to the bot in two phases. The user entry is appended first,
// then the relay is awaited and either its reply or FallbackReply is appended.
// Blank text is ignored and a send on a busy session is refused; in both cases
// the transcript is unchanged and the relay is not called.
//
// The returned error is non-nil only when the transcript or busy flag could
// not be read or written. A relay failure is reported as OutcomeFailed.
func (c *Conversation) Send(ctx context.Context, text string) (Outcome, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return OutcomeIgnored, nil
	}

	acquired, err := c.flight.Acquire(ctx)
	if err != nil {
		return OutcomeIgnored, err
	}
	if !acquired {
		return OutcomeBusy, nil
	}
	defer func() {
		if err := c.flight.Release(context.WithoutCancel(ctx)); err != nil {
			c.log.Error().Err(err).Msg("failed to clear in-flight flag")
		}
	}()

	if err := c.transcript.Append(ctx, model.ChatEntry{Role: model.ChatRoleUser, Content: text}); err != nil {
		return OutcomeIgnored, err
	}

	reply, relayErr := c.relay.Invoke(ctx, text)
	if relayErr != nil {
		c.log.Warn().Err(relayErr).Str("function", FunctionName).Msg("chat relay failed")
		if err := c.transcript.Append(context.WithoutCancel(ctx), model.ChatEntry{Role: model.ChatRoleAssistant, Content: FallbackReply}); err != nil {
			return OutcomeFailed, err
		}
		return OutcomeFailed, nil
	}

	if err := c.transcript.Append(context.WithoutCancel(ctx), model.ChatEntry{Role: model.ChatRoleAssistant, Content: reply}); err != nil {
		return OutcomeReplied, err
	}
	return OutcomeReplied, nil
}
