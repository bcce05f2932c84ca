package model

import (
	"time"

	"github.com/google/uuid"
)

// Notice categories and priorities as stored in the notices table.
const (
	NoticeCategoryExam    = "exam"
	NoticeCategoryEvent   = "event"
	NoticeCategoryHoliday = "holiday"
	NoticeCategoryGeneral = "general"

	NoticePriorityHigh   = "high"
	NoticePriorityNormal = "normal"
)

// Notice is an announcement on the notice board. Published externally;
// this service only reads it.
type Notice struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Category    string    `json:"category"`
	Priority    string    `json:"priority"`
	PublishedAt time.Time `json:"published_at"`
	CreatedAt   time.Time `json:"created_at"`
}

// CategoryKey implements content.Categorized.
func (n Notice) CategoryKey() string { return n.Category }

// NoticeView is a notice decorated for display.
type NoticeView struct {
	Notice
	CategoryLabel    string `json:"category_label"`
	PriorityEmphasis string `json:"priority_emphasis"`
	PublishedOn      string `json:"published_on"`
	ContentHTML      string `json:"content_html"`
}
