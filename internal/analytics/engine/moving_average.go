package engine

// MovingAverage computes a trailing average over each point and the
// window-1 points before it. Nil values are skipped; a window holding
// no values yields nil.
func MovingAverage(values []*float64, window int) []*float64 {
	if window < 1 {
		window = 1
	}
	out := make([]*float64, len(values))
	for i := range values {
		from := max(0, i-window+1)
		out[i] = averagePresent(values[from : i+1])
	}
	return out
}
