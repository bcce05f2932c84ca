package content

import (
	"strings"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestBulletinDateDisplay(t *testing.T) {
	tests := []struct {
		name       string
		start, end *time.Time
		want       string
	}{
		{"no dates", nil, nil, ""},
		{"single day", date(2024, time.April, 1), nil, "April 01, 2024"},
		{"range", date(2024, time.April, 1), date(2024, time.April, 3), "Apr 01 - Apr 03, 2024"},
		{"range across years", date(2024, time.December, 30), date(2025, time.January, 2), "Dec 30 - Jan 02, 2025"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BulletinDateDisplay(tt.start, tt.end, time.UTC); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatLongDateUsesLocation(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)
	// 20:00 UTC on Mar 4 is already Mar 5 in India.
	ts := time.Date(2024, time.March, 4, 20, 0, 0, 0, time.UTC)

	if got := FormatLongDate(ts, ist); got != "March 05, 2024" {
		t.Errorf("FormatLongDate(IST) = %q", got)
	}
	if got := FormatLongDate(ts, nil); got != "March 04, 2024" {
		t.Errorf("FormatLongDate(nil) = %q", got)
	}
}

func TestRenderMarkdownEscapesRawHTML(t *testing.T) {
	out := RenderMarkdown("**Exams** postponed\n<script>alert(1)</script>")
	if !strings.Contains(out, "<strong>Exams</strong>") {
		t.Errorf("expected bold markup, got %q", out)
	}
	if strings.Contains(out, "<script>") {
		t.Errorf("raw HTML leaked into output: %q", out)
	}
}
