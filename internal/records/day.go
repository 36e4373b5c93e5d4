package records

import (
	"errors"
	"time"
)

// DayLayout is the calendar-day format used by every record date.
const DayLayout = "2006-01-02"

var ErrInvalidRecord = errors.New("invalid record")

// ParseDay parses a YYYY-MM-DD date as midnight UTC.
func ParseDay(s string) (time.Time, error) {
	return time.ParseInLocation(DayLayout, s, time.UTC)
}

// DayOf is ParseDay for dates that were already validated.
// An unparsable date yields the zero time.
func DayOf(s string) time.Time {
	t, err := ParseDay(s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func FormatDay(t time.Time) string {
	return t.UTC().Format(DayLayout)
}
