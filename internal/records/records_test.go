package records

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func TestParseDay(t *testing.T) {
	d, err := ParseDay("2024-03-09")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC), d)
	assert.Equal(t, "2024-03-09", FormatDay(d))

	_, err = ParseDay("09/03/2024")
	assert.Error(t, err)
	assert.True(t, DayOf("garbage").IsZero())
}

func TestWeightRecord_Validate(t *testing.T) {
	valid := WeightRecord{Date: "2024-01-01", Weight: 70.2, BodyFatPercentage: ptr(18.5), Timing: TimingMorning}
	assert.NoError(t, valid.Validate())
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), valid.Day())

	testCases := []struct {
		name   string
		record WeightRecord
	}{
		{name: "bad date", record: WeightRecord{Date: "2024-13-01", Weight: 70}},
		{name: "zero weight", record: WeightRecord{Date: "2024-01-01"}},
		{name: "body fat over 100", record: WeightRecord{Date: "2024-01-01", Weight: 70, BodyFatPercentage: ptr(101.0)}},
		{name: "negative muscle mass", record: WeightRecord{Date: "2024-01-01", Weight: 70, MuscleMass: ptr(-1.0)}},
		{name: "unknown timing", record: WeightRecord{Date: "2024-01-01", Weight: 70, Timing: "noon"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.record.Validate(), ErrInvalidRecord)
		})
	}
}

func TestMealRecord_Validate(t *testing.T) {
	meal := MealRecord{Date: "2024-01-01", MealType: MealLunch, TotalCalories: 600}
	assert.NoError(t, meal.Validate())

	meal.MealType = "brunch"
	assert.ErrorIs(t, meal.Validate(), ErrInvalidRecord)

	meal.MealType = MealDinner
	meal.TotalFat = -3
	assert.ErrorIs(t, meal.Validate(), ErrInvalidRecord)

	meal.TotalFat = 0
	meal.Items = []MealItem{{FoodName: "rice", Amount: -100}}
	assert.ErrorIs(t, meal.Validate(), ErrInvalidRecord)
}

func TestWorkoutSession_ComputeVolume(t *testing.T) {
	session := WorkoutSession{
		Date: "2024-02-10",
		Exercises: []WorkoutExercise{
			{
				ExerciseID:   1,
				ExerciseName: "Bench Press",
				Sets: []WorkoutSet{
					{SetNumber: 1, Weight: 40, Reps: 10, IsWarmup: true},
					{SetNumber: 2, Weight: 80, Reps: 5},
					{SetNumber: 3, Weight: 80, Reps: 5},
				},
			},
			{
				ExerciseID:   2,
				ExerciseName: "Squat",
				Sets:         []WorkoutSet{{SetNumber: 1, Weight: 100, Reps: 3}},
			},
		},
		TotalVolume: 12345,
	}

	assert.Equal(t, 1100.0, session.ComputeVolume())
	assert.Equal(t, 12345.0, session.TotalVolume)

	bench, ok := session.Exercise(1)
	require.True(t, ok)
	assert.Len(t, bench.WorkingSets(), 2)
	assert.Equal(t, 800.0, bench.Volume())

	_, ok = session.Exercise(99)
	assert.False(t, ok)
}

func TestWorkoutSet_Volume(t *testing.T) {
	assert.Equal(t, 0.0, WorkoutSet{Weight: 60, Reps: 10, IsWarmup: true}.Volume())
	assert.Equal(t, 600.0, WorkoutSet{Weight: 60, Reps: 10}.Volume())
	assert.Equal(t, 0.0, SetsVolume(nil))
}

func TestWorkoutSession_Validate(t *testing.T) {
	start := time.Date(2024, 2, 10, 18, 0, 0, 0, time.UTC)
	end := start.Add(-time.Minute)

	session := WorkoutSession{Date: "2024-02-10", StartTime: &start, EndTime: &end}
	assert.ErrorIs(t, session.Validate(), ErrInvalidRecord)

	end = start.Add(time.Hour)
	assert.NoError(t, session.Validate())

	session.Exercises = []WorkoutExercise{{ExerciseName: "Row", Sets: []WorkoutSet{{SetNumber: 1, Weight: -5, Reps: 5}}}}
	assert.ErrorIs(t, session.Validate(), ErrInvalidRecord)
}

func TestWorkoutSet_ValidateRPE(t *testing.T) {
	session := WorkoutSession{
		Date: "2024-02-10",
		Exercises: []WorkoutExercise{{
			ExerciseName: "Deadlift",
			Sets:         []WorkoutSet{{SetNumber: 1, Weight: 140, Reps: 3, RPE: ptr(11.0)}},
		}},
	}
	assert.ErrorIs(t, session.Validate(), ErrInvalidRecord)

	session.Exercises[0].Sets[0].RPE = ptr(8.5)
	assert.NoError(t, session.Validate())

	session.Exercises[0].Sets[0].Reps = 0
	assert.ErrorIs(t, session.Validate(), ErrInvalidRecord)
}
