package content

import "time"

const (
	longDateLayout  = "January 02, 2006"
	shortDateLayout = "Jan 02"
	rangeEndLayout  = "Jan 02, 2006"
)

// FormatLongDate renders t as "April 01, 2024" in loc.
func FormatLongDate(t time.Time, loc *time.Location) string {
	return inLocation(t, loc).Format(longDateLayout)
}

// BulletinDateDisplay renders the date line of a bulletin item. A single
// start date uses the long form; a range renders "Apr 01 - Apr 03, 2024".
// Items without a start date have no date line.
func BulletinDateDisplay(start, end *time.Time, loc *time.Location) string {
	if start == nil {
		return ""
	}
	if end == nil {
		return FormatLongDate(*start, loc)
	}
	return inLocation(*start, loc).Format(shortDateLayout) + " - " + inLocation(*end, loc).Format(rangeEndLayout)
}

func inLocation(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		return t
	}
	return t.In(loc)
}
