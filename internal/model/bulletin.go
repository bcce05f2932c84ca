package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

const (
	BulletinCategorySchedule = "schedule"
	BulletinCategoryExam     = "exam"
	BulletinCategoryHoliday  = "holiday"
	BulletinCategoryEvent    = "event"
	BulletinCategoryOther    = "other"
)

// ErrOpenEndedRange is returned for a bulletin item with an end date but no start date.
var ErrOpenEndedRange = errors.New("bulletin item has end_date without start_date")

// BulletinItem is an entry on the bulletin board: timings, exam schedules, holidays.
type BulletinItem struct {
	ID        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Category  string     `json:"category"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// CategoryKey implements content.Categorized.
func (b BulletinItem) CategoryKey() string { return b.Category }

// Validate enforces that a date range is never open on the left.
func (b BulletinItem) Validate() error {
	if b.EndDate != nil && b.StartDate == nil {
		return ErrOpenEndedRange
	}
	return nil
}

// BulletinItemView is a bulletin item decorated for display.
type BulletinItemView struct {
	BulletinItem
	CategoryLabel string `json:"category_label"`
	BadgeVariant  string `json:"badge_variant"`
	DateDisplay   string `json:"date_display,omitempty"`
	ContentHTML   string `json:"content_html"`
}
