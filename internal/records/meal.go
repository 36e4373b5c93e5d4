package records

import (
	"fmt"
	"time"
)

type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

// Food is a master entry with nutrients per 100 g.
type Food struct {
	ID              int     `json:"id,omitempty"`
	Name            string  `json:"name"`
	CaloriesPer100g float64 `json:"calories"`
	ProteinPer100g  float64 `json:"protein"`
	FatPer100g      float64 `json:"fat"`
	CarbsPer100g    float64 `json:"carbs"`
}

type MealItem struct {
	FoodID   int     `json:"foodId,omitempty"`
	FoodName string  `json:"foodName"`
	Amount   float64 `json:"amount"`
	Unit     string  `json:"unit,omitempty"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Fat      float64 `json:"fat"`
	Carbs    float64 `json:"carbs"`
}

// MealRecord totals are trusted as given; see nutrition.ApplyTotals
// for recomputing them from the items.
type MealRecord struct {
	ID            int        `json:"id,omitempty"`
	Date          string     `json:"date"`
	MealType      MealType   `json:"mealType"`
	Items         []MealItem `json:"items,omitempty"`
	TotalCalories float64    `json:"totalCalories"`
	TotalProtein  float64    `json:"totalProtein"`
	TotalFat      float64    `json:"totalFat"`
	TotalCarbs    float64    `json:"totalCarbs"`
	Memo          string     `json:"memo,omitempty"`
}

func (m MealRecord) Day() time.Time {
	return DayOf(m.Date)
}

func (m MealRecord) Validate() error {
	if _, err := ParseDay(m.Date); err != nil {
		return fmt.Errorf("%w: meal record date [%s]", ErrInvalidRecord, m.Date)
	}
	switch m.MealType {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
	default:
		return fmt.Errorf("%w: unknown meal type [%s]", ErrInvalidRecord, m.MealType)
	}
	if m.TotalCalories < 0 || m.TotalProtein < 0 || m.TotalFat < 0 || m.TotalCarbs < 0 {
		return fmt.Errorf("%w: negative meal totals on %s", ErrInvalidRecord, m.Date)
	}
	for i, item := range m.Items {
		if item.Amount < 0 {
			return fmt.Errorf("%w: meal item %d has negative amount", ErrInvalidRecord, i)
		}
	}
	return nil
}
