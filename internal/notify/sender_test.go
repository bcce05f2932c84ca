package notify

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ietdavv/iet-portal/internal/model"
)

func TestRenderContactEscapesInput(t *testing.T) {
	msg := &model.ContactMessage{
		ID:        uuid.New(),
		Name:      "<b>Ravi</b>",
		Email:     "ravi@example.com",
		Subject:   "Hostel",
		Message:   "Is there a <script>hostel</script> fee?",
		CreatedAt: time.Date(2024, time.July, 1, 10, 30, 0, 0, time.UTC),
	}

	email, err := RenderContact(msg)
	if err != nil {
		t.Fatalf("RenderContact: %v", err)
	}
	if email.Subject != "[Contact] Hostel" {
		t.Errorf("Subject = %q", email.Subject)
	}
	if email.ReplyTo != "ravi@example.com" {
		t.Errorf("ReplyTo = %q", email.ReplyTo)
	}
	if strings.Contains(email.HTML, "<script>") || strings.Contains(email.HTML, "<b>Ravi") {
		t.Errorf("unescaped input in body: %s", email.HTML)
	}
	if !strings.Contains(email.HTML, "01 Jul 2024 10:30 UTC") {
		t.Errorf("missing timestamp: %s", email.HTML)
	}
}
