package types

import (
	"time"
)

// DayFormat is the wire format for business dates.
const DayFormat = "2006-01-02"

// Day truncates t to midnight in its own location. All daily records key on
// the store's local calendar day, never on the instant of creation.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// PreviousDay returns the midnight of the calendar day before t.
func PreviousDay(t time.Time) time.Time {
	return Day(t).AddDate(0, 0, -1)
}

// ParseDay parses a YYYY-MM-DD string into a midnight time in loc.
func ParseDay(s string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(DayFormat, s, loc)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// FormatDay renders a time as its YYYY-MM-DD business date.
func FormatDay(t time.Time) string {
	return t.Format(DayFormat)
}

// SameDay reports whether a and b fall on the same calendar day in a's location.
func SameDay(a, b time.Time) bool {
	return Day(a).Equal(Day(b.In(a.Location())))
}
