package nutrition

import (
	"math"

	"github.com/2beens/fitstats/internal/records"
	"github.com/2beens/fitstats/pkg"
)

// Energy per gram of each macro, in kcal.
const (
	KcalPerGramProtein = 4
	KcalPerGramFat     = 9
	KcalPerGramCarbs   = 4
)

type Nutrients struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Fat      float64 `json:"fat"`
	Carbs    float64 `json:"carbs"`
}

// ForAmount scales the per-100g values of a food to the given grams.
// Calories are whole numbers, macros have one decimal.
func ForAmount(food records.Food, grams float64) Nutrients {
	m := grams / 100
	return Nutrients{
		Calories: math.Round(food.CaloriesPer100g * m),
		Protein:  pkg.Round(food.ProteinPer100g*m, 1),
		Fat:      pkg.Round(food.FatPer100g*m, 1),
		Carbs:    pkg.Round(food.CarbsPer100g*m, 1),
	}
}

func NewMealItem(food records.Food, grams float64) records.MealItem {
	n := ForAmount(food, grams)
	return records.MealItem{
		FoodID:   food.ID,
		FoodName: food.Name,
		Amount:   grams,
		Unit:     "g",
		Calories: n.Calories,
		Protein:  n.Protein,
		Fat:      n.Fat,
		Carbs:    n.Carbs,
	}
}

// MealTotals sums the items; macro totals are kept at one decimal as they accumulate.
func MealTotals(items []records.MealItem) Nutrients {
	var t Nutrients
	for _, item := range items {
		t.Calories += item.Calories
		t.Protein = pkg.Round(t.Protein+item.Protein, 1)
		t.Fat = pkg.Round(t.Fat+item.Fat, 1)
		t.Carbs = pkg.Round(t.Carbs+item.Carbs, 1)
	}
	return t
}

// ApplyTotals returns a copy of the meal with totals recomputed from its items.
func ApplyTotals(meal records.MealRecord) records.MealRecord {
	t := MealTotals(meal.Items)
	meal.Items = append([]records.MealItem(nil), meal.Items...)
	meal.TotalCalories = t.Calories
	meal.TotalProtein = t.Protein
	meal.TotalFat = t.Fat
	meal.TotalCarbs = t.Carbs
	return meal
}

// WithItemTotals recomputes the totals of every meal that has items.
// Meals logged as totals only are kept as given.
func WithItemTotals(meals []records.MealRecord) []records.MealRecord {
	out := make([]records.MealRecord, len(meals))
	for i, meal := range meals {
		if len(meal.Items) > 0 {
			meal = ApplyTotals(meal)
		}
		out[i] = meal
	}
	return out
}

// DayTotals is the intake over the given meals, item totals taking precedence.
func DayTotals(meals []records.MealRecord) Nutrients {
	var t Nutrients
	for _, meal := range WithItemTotals(meals) {
		t.Calories += meal.TotalCalories
		t.Protein = pkg.Round(t.Protein+meal.TotalProtein, 1)
		t.Fat = pkg.Round(t.Fat+meal.TotalFat, 1)
		t.Carbs = pkg.Round(t.Carbs+meal.TotalCarbs, 1)
	}
	return t
}

type Ratio struct {
	Protein int `json:"proteinRatio"`
	Fat     int `json:"fatRatio"`
	Carbs   int `json:"carbsRatio"`
}

// Energy converts macro grams to kcal.
func Energy(protein, fat, carbs float64) (proteinKcal, fatKcal, carbsKcal float64) {
	return protein * KcalPerGramProtein, fat * KcalPerGramFat, carbs * KcalPerGramCarbs
}

// PFCRatio is the share of energy from each macro in whole percent.
// The parts are rounded independently and may not add up to 100.
func PFCRatio(protein, fat, carbs float64) Ratio {
	p, f, c := Energy(protein, fat, carbs)
	total := p + f + c
	if total <= 0 {
		return Ratio{}
	}
	return Ratio{
		Protein: int(math.Round(p / total * 100)),
		Fat:     int(math.Round(f / total * 100)),
		Carbs:   int(math.Round(c / total * 100)),
	}
}

// Progress toward a target in whole percent, capped at 100.
func Progress(current, target float64) int {
	if target == 0 {
		return 0
	}
	return int(math.Min(math.Round(current/target*100), 100))
}

type Change struct {
	Change float64 `json:"change"`
	IsGain bool    `json:"isGain"`
	IsLoss bool    `json:"isLoss"`
}

func WeightChange(current, previous float64) Change {
	change := pkg.Round(current-previous, 1)
	return Change{
		Change: change,
		IsGain: change > 0,
		IsLoss: change < 0,
	}
}
