package records

import (
	"fmt"
	"time"
)

type WeightTiming string

const (
	TimingMorning WeightTiming = "morning"
	TimingEvening WeightTiming = "evening"
	TimingOther   WeightTiming = "other"
)

// WeightRecord is a single body measurement. Body fat and muscle mass
// are optional; nil means not measured, which is different from 0.
type WeightRecord struct {
	ID                int          `json:"id,omitempty"`
	Date              string       `json:"date"`
	Weight            float64      `json:"weight"`
	BodyFatPercentage *float64     `json:"bodyFatPercentage,omitempty"`
	MuscleMass        *float64     `json:"muscleMass,omitempty"`
	Timing            WeightTiming `json:"timing,omitempty"`
	Memo              string       `json:"memo,omitempty"`
}

func (r WeightRecord) Day() time.Time {
	return DayOf(r.Date)
}

func (r WeightRecord) Validate() error {
	if _, err := ParseDay(r.Date); err != nil {
		return fmt.Errorf("%w: weight record date [%s]", ErrInvalidRecord, r.Date)
	}
	if r.Weight <= 0 {
		return fmt.Errorf("%w: weight must be positive, got %v", ErrInvalidRecord, r.Weight)
	}
	if r.BodyFatPercentage != nil && (*r.BodyFatPercentage < 0 || *r.BodyFatPercentage > 100) {
		return fmt.Errorf("%w: body fat percentage out of range: %v", ErrInvalidRecord, *r.BodyFatPercentage)
	}
	if r.MuscleMass != nil && *r.MuscleMass < 0 {
		return fmt.Errorf("%w: negative muscle mass: %v", ErrInvalidRecord, *r.MuscleMass)
	}
	switch r.Timing {
	case "", TimingMorning, TimingEvening, TimingOther:
	default:
		return fmt.Errorf("%w: unknown weight timing [%s]", ErrInvalidRecord, r.Timing)
	}
	return nil
}
