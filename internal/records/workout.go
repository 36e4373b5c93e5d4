package records

import (
	"fmt"
	"time"
)

type WorkoutSet struct {
	SetNumber   int        `json:"setNumber"`
	Weight      float64    `json:"weight"`
	Reps        int        `json:"reps"`
	RPE         *float64   `json:"rpe,omitempty"`
	IsWarmup    bool       `json:"isWarmup"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// Volume is weight x reps; warmup sets carry no volume.
func (s WorkoutSet) Volume() float64 {
	if s.IsWarmup {
		return 0
	}
	return s.Weight * float64(s.Reps)
}

// SetsVolume sums the volume of the working sets.
func SetsVolume(sets []WorkoutSet) float64 {
	var total float64
	for _, s := range sets {
		total += s.Volume()
	}
	return total
}

type WorkoutExercise struct {
	ExerciseID   int          `json:"exerciseId"`
	ExerciseName string       `json:"exerciseName"`
	BodyPart     string       `json:"bodyPart,omitempty"`
	Sets         []WorkoutSet `json:"sets"`
	RestTimes    []int        `json:"restTimes,omitempty"`
}

func (e WorkoutExercise) WorkingSets() []WorkoutSet {
	working := make([]WorkoutSet, 0, len(e.Sets))
	for _, s := range e.Sets {
		if !s.IsWarmup {
			working = append(working, s)
		}
	}
	return working
}

func (e WorkoutExercise) Volume() float64 {
	return SetsVolume(e.Sets)
}

type WorkoutSession struct {
	ID          int               `json:"id,omitempty"`
	Date        string            `json:"date"`
	StartTime   *time.Time        `json:"startTime,omitempty"`
	EndTime     *time.Time        `json:"endTime,omitempty"`
	Exercises   []WorkoutExercise `json:"exercises"`
	TotalVolume float64           `json:"totalVolume"`
	Memo        string            `json:"memo,omitempty"`
}

func (w WorkoutSession) Day() time.Time {
	return DayOf(w.Date)
}

// ComputeVolume sums the working-set volume over all exercises.
// TotalVolume is left untouched.
func (w WorkoutSession) ComputeVolume() float64 {
	var total float64
	for _, e := range w.Exercises {
		total += e.Volume()
	}
	return total
}

// Exercise returns the first exercise entry with the given id.
func (w WorkoutSession) Exercise(exerciseID int) (WorkoutExercise, bool) {
	for _, e := range w.Exercises {
		if e.ExerciseID == exerciseID {
			return e, true
		}
	}
	return WorkoutExercise{}, false
}

func (w WorkoutSession) Validate() error {
	if _, err := ParseDay(w.Date); err != nil {
		return fmt.Errorf("%w: workout session date [%s]", ErrInvalidRecord, w.Date)
	}
	if w.TotalVolume < 0 {
		return fmt.Errorf("%w: negative total volume on %s", ErrInvalidRecord, w.Date)
	}
	if w.StartTime != nil && w.EndTime != nil && w.EndTime.Before(*w.StartTime) {
		return fmt.Errorf("%w: session on %s ends before it starts", ErrInvalidRecord, w.Date)
	}
	for _, e := range w.Exercises {
		for _, s := range e.Sets {
			if s.Weight < 0 || s.Reps <= 0 {
				return fmt.Errorf("%w: invalid weight/reps for exercise [%s] set %d", ErrInvalidRecord, e.ExerciseName, s.SetNumber)
			}
			if s.RPE != nil && (*s.RPE < 1 || *s.RPE > 10) {
				return fmt.Errorf("%w: rpe out of range for exercise [%s] set %d", ErrInvalidRecord, e.ExerciseName, s.SetNumber)
			}
		}
	}
	return nil
}
