package analytics

import (
	"errors"
	"fmt"

	"github.com/2beens/fitstats/internal/analytics/engine"
	"github.com/2beens/fitstats/internal/onerm"
	"github.com/2beens/fitstats/internal/records"
)

var ErrInvalidRequest = errors.New("invalid analytics request")

type WeightChartRequest struct {
	Config  engine.Config          `json:"config"`
	Records []records.WeightRecord `json:"records"`
}

func (r WeightChartRequest) Validate() error {
	if err := r.Config.Validate(); err != nil {
		return err
	}
	for i, rec := range r.Records {
		if err := rec.Validate(); err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
	}
	return nil
}

type VolumeChartRequest struct {
	Config   engine.Config            `json:"config"`
	Sessions []records.WorkoutSession `json:"records"`
}

func (r VolumeChartRequest) Validate() error {
	if err := r.Config.Validate(); err != nil {
		return err
	}
	return validateSessions(r.Sessions)
}

type PFCChartRequest struct {
	Config engine.Config        `json:"config"`
	Meals  []records.MealRecord `json:"records"`
}

func (r PFCChartRequest) Validate() error {
	if err := r.Config.Validate(); err != nil {
		return err
	}
	for i, meal := range r.Meals {
		if err := meal.Validate(); err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
	}
	return nil
}

type ExerciseChartRequest struct {
	Config     engine.Config            `json:"config"`
	ExerciseID int                      `json:"exerciseId"`
	Formula    onerm.Formula            `json:"formula,omitempty"`
	Sessions   []records.WorkoutSession `json:"records"`
}

// Validate also rewrites Formula to its canonical id, so "Brzycki" becomes brzycki
// and an empty name becomes the default formula.
func (r *ExerciseChartRequest) Validate() error {
	if err := r.Config.Validate(); err != nil {
		return err
	}
	formula, err := onerm.ParseFormula(string(r.Formula))
	if err != nil {
		return err
	}
	r.Formula = formula
	return validateSessions(r.Sessions)
}

type PFCBalanceRequest struct {
	Protein float64 `json:"protein"`
	Fat     float64 `json:"fat"`
	Carbs   float64 `json:"carbs"`
}

func (r PFCBalanceRequest) Validate() error {
	if r.Protein < 0 || r.Fat < 0 || r.Carbs < 0 {
		return fmt.Errorf("negative macro grams: p=%v f=%v c=%v", r.Protein, r.Fat, r.Carbs)
	}
	return nil
}

type ExerciseSummaryRequest struct {
	Formula onerm.Formula          `json:"formula,omitempty"`
	Session records.WorkoutSession `json:"session"`
}

// Validate canonicalises Formula the same way ExerciseChartRequest does.
func (r *ExerciseSummaryRequest) Validate() error {
	formula, err := onerm.ParseFormula(string(r.Formula))
	if err != nil {
		return err
	}
	r.Formula = formula
	return r.Session.Validate()
}

func validateSessions(sessions []records.WorkoutSession) error {
	for i, s := range sessions {
		if err := s.Validate(); err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
	}
	return nil
}
