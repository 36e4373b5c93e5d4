package engine

import (
	"slices"
	"time"

	"github.com/2beens/fitstats/internal/records"
)

var pfcPalette = []string{"#ef4444", "#f59e0b", "#10b981", "#3b82f6"}

var pfcLabels = map[string]string{
	"calories": "Calories",
	"protein":  "Protein (g)",
	"fat":      "Fat (g)",
	"carbs":    "Carbs (g)",
}

type PFCRow struct {
	Date     string  `json:"date"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Fat      float64 `json:"fat"`
	Carbs    float64 `json:"carbs"`
}

func (r PFCRow) Day() time.Time {
	return records.DayOf(r.Date)
}

func (r PFCRow) withDate(date string) PFCRow {
	r.Date = date
	return r
}

// PFCChart sums meals into daily intake first. Week and month buckets are
// the average daily intake, not the average meal.
func PFCChart(meals []records.MealRecord, cfg Config) *ChartProps[PFCRow] {
	rows := collect(AggregateByTime(meals, Day, sumMeals))
	rows = FilterByDateRange(rows, cfg.Range)
	if g := cfg.granularity(); g != Day {
		rows = collect(AggregateByTime(rows, g, averageDays))
	}

	yLabel := "Grams"
	if slices.Contains(cfg.Mapping.Y, "calories") {
		yLabel = "Calories"
	}

	return &ChartProps[PFCRow]{
		Data:  rows,
		XAxis: xAxis(cfg),
		YAxis: YAxis{
			Domain: [2]Bound{Fixed(0), Auto},
			Label:  yLabel,
		},
		Series: buildSeries(cfg, pfcPalette, pfcLabels),
	}
}

type macroColumns struct {
	calories, protein, fat, carbs []float64
}

func (c *macroColumns) add(calories, protein, fat, carbs float64) {
	c.calories = append(c.calories, calories)
	c.protein = append(c.protein, protein)
	c.fat = append(c.fat, fat)
	c.carbs = append(c.carbs, carbs)
}

func sumMeals(group []records.MealRecord) PFCRow {
	var cols macroColumns
	for _, m := range group {
		cols.add(m.TotalCalories, m.TotalProtein, m.TotalFat, m.TotalCarbs)
	}
	return PFCRow{
		Calories: Round1(Sum(cols.calories)),
		Protein:  Round1(Sum(cols.protein)),
		Fat:      Round1(Sum(cols.fat)),
		Carbs:    Round1(Sum(cols.carbs)),
	}
}

func averageDays(group []PFCRow) PFCRow {
	var cols macroColumns
	for _, d := range group {
		cols.add(d.Calories, d.Protein, d.Fat, d.Carbs)
	}
	return PFCRow{
		Calories: Average(cols.calories),
		Protein:  Average(cols.protein),
		Fat:      Average(cols.fat),
		Carbs:    Average(cols.carbs),
	}
}
