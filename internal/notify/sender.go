// Package notify delivers e-mail about new contact messages to the site inbox.
package notify

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/ietdavv/iet-portal/internal/model"
	"github.com/rs/zerolog"
)

// Sender delivers a contact notification.
type Sender interface {
	SendContact(ctx context.Context, msg *model.ContactMessage) error
}

// Email is a rendered notification.
type Email struct {
	Subject string
	HTML    string
	ReplyTo string
}

var contactTemplate = template.Must(template.New("contact").Parse(`<h2>New message from the contact form</h2>
<p><strong>Name:</strong> {{.Name}}<br>
<strong>Email:</strong> {{.Email}}<br>
<strong>Subject:</strong> {{.Subject}}</p>
<p style="white-space: pre-wrap">{{.Message}}</p>
<p style="color:#888">Received {{.CreatedAt.Format "02 Jan 2006 15:04 MST"}} · id {{.ID}}</p>
`))

// RenderContact builds the inbox e-mail for msg. Replies go to the sender.
func RenderContact(msg *model.ContactMessage) (Email, error) {
	var buf bytes.Buffer
	if err := contactTemplate.Execute(&buf, msg); err != nil {
		return Email{}, fmt.Errorf("render contact email: %w", err)
	}
	return Email{
		Subject: "[Contact] " + msg.Subject,
		HTML:    buf.String(),
		ReplyTo: msg.Email,
	}, nil
}

// NoopSender logs notifications instead of sending them. Used when no
// e-mail API key is configured.
type NoopSender struct {
	log zerolog.Logger
}

func NewNoopSender(log zerolog.Logger) *NoopSender {
	return &NoopSender{log: log.With().Str("component", "noop_sender").Logger()}
}

func (s *NoopSender) SendContact(_ context.Context, msg *model.ContactMessage) error {
	s.log.Info().Str("contact_id", msg.ID.String()).Str("subject", msg.Subject).Msg("email disabled, contact notification not sent")
	return nil
}
