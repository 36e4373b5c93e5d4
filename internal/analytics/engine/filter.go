package engine

// FilterByDateRange keeps the items whose day falls inside r.
// A nil range returns items as is.
func FilterByDateRange[T Dated](items []T, r *DateRange) []T {
	if r == nil {
		return items
	}
	filtered := make([]T, 0, len(items))
	for _, item := range items {
		if r.Contains(item.Day()) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}
