package engine

import (
	"time"

	"github.com/2beens/fitstats/internal/onerm"
	"github.com/2beens/fitstats/internal/records"
)

var exerciseLabels = map[string]string{
	"volume":       "Volume (kg)",
	"estimated1RM": "Estimated 1RM (kg)",
	"maxWeight":    "Max Weight (kg)",
}

// ExerciseRow is the progress of one exercise over a day or bucket.
type ExerciseRow struct {
	Date          string  `json:"date"`
	Volume        float64 `json:"volume"`
	Estimated1RM  float64 `json:"estimated1RM"`
	MaxWeight     float64 `json:"maxWeight"`
	BestSetWeight float64 `json:"bestSetWeight"`
	BestSetReps   int     `json:"bestSetReps"`
	Sets          int     `json:"sets"`
}

func (r ExerciseRow) Day() time.Time {
	return records.DayOf(r.Date)
}

func (r ExerciseRow) withDate(date string) ExerciseRow {
	r.Date = date
	return r
}

func (r ExerciseRow) empty() bool {
	return r.Sets == 0 || (r.Volume == 0 && r.Estimated1RM == 0 && r.MaxWeight == 0)
}

// ExerciseChart tracks one exercise across sessions. Working sets of the
// same day are pooled; days without working sets are skipped.
func ExerciseChart(sessions []records.WorkoutSession, exerciseID int, formula onerm.Formula, cfg Config) *ChartProps[ExerciseRow] {
	daily := collect(AggregateByTime(sessions, Day, func(group []records.WorkoutSession) ExerciseRow {
		return exerciseRow(workingSetsOf(group, exerciseID), formula)
	}))

	rows := make([]ExerciseRow, 0, len(daily))
	for _, r := range daily {
		if !r.empty() {
			rows = append(rows, r)
		}
	}
	rows = FilterByDateRange(rows, cfg.Range)
	if g := cfg.granularity(); g != Day {
		rows = collect(AggregateByTime(rows, g, mergeExerciseRows))
	}

	return &ChartProps[ExerciseRow]{
		Data:  rows,
		XAxis: xAxis(cfg),
		YAxis: YAxis{
			Domain: [2]Bound{Fixed(0), Auto},
			Label:  "Weight (kg)",
		},
		Series: buildSeries(cfg, defaultColors, exerciseLabels),
	}
}

func workingSetsOf(sessions []records.WorkoutSession, exerciseID int) []records.WorkoutSet {
	var sets []records.WorkoutSet
	for _, s := range sessions {
		for _, e := range s.Exercises {
			if e.ExerciseID == exerciseID {
				sets = append(sets, e.WorkingSets()...)
			}
		}
	}
	return sets
}

func exerciseRow(sets []records.WorkoutSet, formula onerm.Formula) ExerciseRow {
	row := ExerciseRow{
		Volume:       Round1(onerm.Volume(sets)),
		Estimated1RM: onerm.MaxEstimate(sets, formula),
		Sets:         len(sets),
	}
	for _, s := range sets {
		if s.Weight > row.MaxWeight {
			row.MaxWeight = s.Weight
		}
	}
	row.MaxWeight = Round1(row.MaxWeight)
	if best, ok := onerm.BestSet(sets); ok {
		row.BestSetWeight = best.Weight
		row.BestSetReps = best.Reps
	}
	return row
}

func mergeExerciseRows(group []ExerciseRow) ExerciseRow {
	var (
		merged             ExerciseRow
		volumes, est, maxW []float64
		bestVolume         float64
	)
	for _, r := range group {
		volumes = append(volumes, r.Volume)
		est = append(est, r.Estimated1RM)
		maxW = append(maxW, r.MaxWeight)
		merged.Sets += r.Sets
		if v := r.BestSetWeight * float64(r.BestSetReps); v > bestVolume {
			bestVolume = v
			merged.BestSetWeight = r.BestSetWeight
			merged.BestSetReps = r.BestSetReps
		}
	}
	merged.Volume = Round1(Sum(volumes))
	merged.Estimated1RM = Average(est)
	merged.MaxWeight = Average(maxW)
	return merged
}

type ExerciseSummary struct {
	ExerciseID   int                 `json:"exerciseId"`
	ExerciseName string              `json:"exerciseName"`
	BodyPart     string              `json:"bodyPart,omitempty"`
	WorkingSets  int                 `json:"workingSets"`
	Volume       float64             `json:"volume"`
	BestSet      *records.WorkoutSet `json:"bestSet,omitempty"`
	Estimated1RM float64             `json:"estimated1RM"`
}

// SummarizeExercises reports each exercise of a session in session order.
// The estimated 1RM is that of the best set.
func SummarizeExercises(session records.WorkoutSession, formula onerm.Formula) []ExerciseSummary {
	summaries := make([]ExerciseSummary, 0, len(session.Exercises))
	for _, e := range session.Exercises {
		summary := ExerciseSummary{
			ExerciseID:   e.ExerciseID,
			ExerciseName: e.ExerciseName,
			BodyPart:     e.BodyPart,
			WorkingSets:  len(e.WorkingSets()),
			Volume:       Round1(e.Volume()),
		}
		if best, ok := onerm.BestSet(e.Sets); ok {
			summary.BestSet = &best
			summary.Estimated1RM = onerm.Calculate(best.Weight, best.Reps, formula)
		}
		summaries = append(summaries, summary)
	}
	return summaries
}
