package onerm

import (
	"github.com/2beens/fitstats/internal/records"
	"github.com/2beens/fitstats/pkg"
)

// MaxReps is the highest rep count the formulas are trusted for.
// Above it the lifted weight is returned as is.
const MaxReps = 10

type Result struct {
	Estimated1RM float64     `json:"estimated1RM"`
	Formula      FormulaInfo `json:"formulaUsed"`
	InputWeight  float64     `json:"inputWeight"`
	InputReps    int         `json:"inputReps"`
}

type Estimate struct {
	Formula      Formula `json:"formula"`
	Name         string  `json:"name"`
	Estimated1RM float64 `json:"estimated1RM"`
}

// Calculate estimates a one-rep max, rounded to one decimal.
func Calculate(weight float64, reps int, f Formula) float64 {
	return estimate(Lookup(f), weight, reps)
}

func estimate(info FormulaInfo, weight float64, reps int) float64 {
	switch {
	case weight <= 0 || reps <= 0:
		return 0
	case reps == 1 || reps > MaxReps:
		return pkg.Round(weight, 1)
	}
	return pkg.Round(info.estimate(weight, reps), 1)
}

func Estimate1RM(weight float64, reps int, f Formula) Result {
	info := Lookup(f)
	return Result{
		Estimated1RM: estimate(info, weight, reps),
		Formula:      info,
		InputWeight:  weight,
		InputReps:    reps,
	}
}

// CalculateAll runs every formula in display order.
func CalculateAll(weight float64, reps int) []Estimate {
	all := make([]Estimate, 0, len(formulaOrder))
	for _, info := range Formulas() {
		all = append(all, Estimate{
			Formula:      info.ID,
			Name:         info.Name,
			Estimated1RM: estimate(info, weight, reps),
		})
	}
	return all
}

// BestSet picks the working set with the highest weight x reps.
// The first one wins on ties.
func BestSet(sets []records.WorkoutSet) (records.WorkoutSet, bool) {
	var (
		best  records.WorkoutSet
		found bool
	)
	for _, s := range sets {
		if s.IsWarmup {
			continue
		}
		if !found || s.Volume() > best.Volume() {
			best = s
			found = true
		}
	}
	return best, found
}

// MaxEstimate is the highest estimated 1RM across the working sets.
func MaxEstimate(sets []records.WorkoutSet, f Formula) float64 {
	info := Lookup(f)
	var top float64
	for _, s := range sets {
		if s.IsWarmup {
			continue
		}
		if e := estimate(info, s.Weight, s.Reps); e > top {
			top = e
		}
	}
	return top
}

func Volume(sets []records.WorkoutSet) float64 {
	return records.SetsVolume(sets)
}
