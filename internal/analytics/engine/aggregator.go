package engine

import (
	"slices"
	"time"

	"github.com/2beens/fitstats/internal/records"
)

const monthKeyLayout = "2006-01"

type Bucket[R any] struct {
	Date   string
	Anchor time.Time
	Value  R
}

// BucketAnchor is the start of the period t falls in: the day itself,
// the Monday of its week, or the 1st of its month.
func BucketAnchor(t time.Time, g Granularity) time.Time {
	t = t.UTC()
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	switch g.orDay() {
	case Week:
		sinceMonday := (int(day.Weekday()) + 6) % 7
		return day.AddDate(0, 0, -sinceMonday)
	case Month:
		return time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC)
	default:
		return day
	}
}

// BucketKey is the bucket's date label: YYYY-MM-DD of the anchor, or YYYY-MM for months.
func BucketKey(t time.Time, g Granularity) string {
	anchor := BucketAnchor(t, g)
	if g == Month {
		return anchor.Format(monthKeyLayout)
	}
	return anchor.Format(records.DayLayout)
}

// AggregateByTime groups items into calendar buckets and reduces each
// non-empty group once. Buckets come back oldest first.
func AggregateByTime[T Dated, R any](items []T, g Granularity, reduce func([]T) R) []Bucket[R] {
	type group struct {
		anchor time.Time
		items  []T
	}

	groups := make(map[string]*group)
	for _, item := range items {
		key := BucketKey(item.Day(), g)
		grp, ok := groups[key]
		if !ok {
			grp = &group{anchor: BucketAnchor(item.Day(), g)}
			groups[key] = grp
		}
		grp.items = append(grp.items, item)
	}

	buckets := make([]Bucket[R], 0, len(groups))
	for key, grp := range groups {
		buckets = append(buckets, Bucket[R]{
			Date:   key,
			Anchor: grp.anchor,
			Value:  reduce(grp.items),
		})
	}
	slices.SortFunc(buckets, func(a, b Bucket[R]) int {
		return a.Anchor.Compare(b.Anchor)
	})

	return buckets
}

type dateSetter[R any] interface {
	withDate(date string) R
}

func collect[R dateSetter[R]](buckets []Bucket[R]) []R {
	rows := make([]R, 0, len(buckets))
	for _, b := range buckets {
		rows = append(rows, b.Value.withDate(b.Date))
	}
	return rows
}
