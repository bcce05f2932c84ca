package model

import (
	"time"

	"github.com/google/uuid"
)

// DefaultContactStatus is how a message with no status is presented.
const DefaultContactStatus = "new"

// ContactMessage is a submission from the public contact form.
type ContactMessage struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Status    *string   `json:"status,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// StatusLabel returns the stored status or DefaultContactStatus.
func (m ContactMessage) StatusLabel() string {
	if m.Status == nil || *m.Status == "" {
		return DefaultContactStatus
	}
	return *m.Status
}

// ContactForm is the payload of the public contact form.
type ContactForm struct {
	Name    string `json:"name" binding:"required,notblank,max=200"`
	Email   string `json:"email" binding:"required,notblank,max=255"`
	Subject string `json:"subject" binding:"required,notblank,max=300"`
	Message string `json:"message" binding:"required,notblank,max=5000"`
}

// IsZero reports whether every field of the form is empty.
func (f ContactForm) IsZero() bool {
	return f == ContactForm{}
}

// ContactMessageView is a message as listed to admins.
type ContactMessageView struct {
	ContactMessage
	StatusLabel string `json:"status_label"`
}
