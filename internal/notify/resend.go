package notify

import (
	"context"
	"fmt"

	"github.com/ietdavv/iet-portal/internal/model"
	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog"
)

// ResendSender sends notifications through the Resend API.
type ResendSender struct {
	client *resend.Client
	from   string
	to     []string
	log    zerolog.Logger
}

// NewResendSender creates a sender mailing to from the given address.
func NewResendSender(apiKey, from string, to []string, log zerolog.Logger) *ResendSender {
	return &ResendSender{
		client: resend.NewClient(apiKey),
		from:   from,
		to:     to,
		log:    log.With().Str("component", "resend_sender").Logger(),
	}
}

func (s *ResendSender) SendContact(ctx context.Context, msg *model.ContactMessage) error {
	if len(s.to) == 0 {
		return fmt.Errorf("no notification recipients configured")
	}

	email, err := RenderContact(msg)
	if err != nil {
		return err
	}

	sent, err := s.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    s.from,
		To:      s.to,
		Subject: email.Subject,
		Html:    email.HTML,
		ReplyTo: email.ReplyTo,
	})
	if err != nil {
		return fmt.Errorf("resend send failed: %w", err)
	}

	s.log.Info().Str("message_id", sent.Id).Str("contact_id", msg.ID.String()).Msg("contact notification sent")
	return nil
}
