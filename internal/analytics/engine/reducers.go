package engine

import "github.com/2beens/fitstats/pkg"

// Sum is the plain total; 0 for no values.
func Sum(values []float64) float64 {
	var total float64
	for _, v := range values {
		total += v
	}
	return total
}

// Average is the one-decimal mean; 0 for no values.
func Average(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return Round1(Sum(values) / float64(len(values)))
}

// Round1 rounds half away from zero to one decimal.
func Round1(v float64) float64 {
	return pkg.Round(v, 1)
}

// averagePresent averages the non-nil values; nil if there are none.
func averagePresent(values []*float64) *float64 {
	present := make([]float64, 0, len(values))
	for _, v := range values {
		if v != nil {
			present = append(present, *v)
		}
	}
	if len(present) == 0 {
		return nil
	}
	avg := Average(present)
	return &avg
}

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
