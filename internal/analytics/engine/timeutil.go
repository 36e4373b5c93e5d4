package engine

import (
	"time"

	"github.com/2beens/fitstats/internal/records"
)

// FormatBucketLabel renders a bucket key for an axis tick.
// Keys that do not parse are returned unchanged.
func FormatBucketLabel(key string, g Granularity) string {
	t, ok := parseKey(key)
	if !ok {
		return key
	}
	switch g.orDay() {
	case Month:
		return t.Format("Jan 2006")
	case Week:
		return t.Format("Jan 2")
	default:
		return t.Format("01/02")
	}
}

func TickFormatter(g Granularity) func(string) string {
	return func(key string) string {
		return FormatBucketLabel(key, g)
	}
}

func parseKey(key string) (time.Time, bool) {
	if t, err := records.ParseDay(key); err == nil {
		return t, true
	}
	if t, err := time.ParseInLocation(monthKeyLayout, key, time.UTC); err == nil {
		return t, true
	}
	return time.Time{}, false
}
