package analytics

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/2beens/fitstats/internal/nutrition"
	"github.com/2beens/fitstats/internal/records"
	"github.com/2beens/fitstats/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

type MealItemRequest struct {
	Food   records.Food `json:"food"`
	Amount float64      `json:"amount"`
}

func (r MealItemRequest) Validate() error {
	if strings.TrimSpace(r.Food.Name) == "" {
		return fmt.Errorf("%w: food name is empty", records.ErrInvalidRecord)
	}
	if r.Amount <= 0 {
		return fmt.Errorf("%w: amount must be positive, got %v", records.ErrInvalidRecord, r.Amount)
	}
	f := r.Food
	if f.CaloriesPer100g < 0 || f.ProteinPer100g < 0 || f.FatPer100g < 0 || f.CarbsPer100g < 0 {
		return fmt.Errorf("%w: negative nutrients for food [%s]", records.ErrInvalidRecord, f.Name)
	}
	return nil
}

type DailyNutritionRequest struct {
	Date  string               `json:"date"`
	Meals []records.MealRecord `json:"records"`
	// Targets are optional daily goals; zero fields report no progress.
	Targets *nutrition.Nutrients `json:"targets,omitempty"`
}

func (r DailyNutritionRequest) Validate() error {
	if _, err := records.ParseDay(r.Date); err != nil {
		return fmt.Errorf("%w: date [%s]", records.ErrInvalidRecord, r.Date)
	}
	for i, meal := range r.Meals {
		if err := meal.Validate(); err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
	}
	if t := r.Targets; t != nil && (t.Calories < 0 || t.Protein < 0 || t.Fat < 0 || t.Carbs < 0) {
		return fmt.Errorf("%w: negative nutrition targets", records.ErrInvalidRecord)
	}
	return nil
}

type NutritionProgress struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Fat      int `json:"fat"`
	Carbs    int `json:"carbs"`
}

type DailyNutritionSummary struct {
	Date      string              `json:"date"`
	MealCount int                 `json:"mealCount"`
	Totals    nutrition.Nutrients `json:"totals"`
	Ratio     nutrition.Ratio     `json:"ratio"`
	Progress  *NutritionProgress  `json:"progress,omitempty"`
}

type WeightSummaryRequest struct {
	Records []records.WeightRecord `json:"records"`
}

func (r WeightSummaryRequest) Validate() error {
	for i, rec := range r.Records {
		if err := rec.Validate(); err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
	}
	return nil
}

// WeightSummary compares the latest measurement with the one before it.
type WeightSummary struct {
	Latest   *records.WeightRecord `json:"latest,omitempty"`
	Previous *records.WeightRecord `json:"previous,omitempty"`
	Change   *nutrition.Change     `json:"change,omitempty"`
}

func (s *Service) MealItem(ctx context.Context, req MealItemRequest) (_ *records.MealItem, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "service.nutrition.meal_item")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	item := nutrition.NewMealItem(req.Food, req.Amount)
	return &item, nil
}

// DailyNutrition sums the meals logged on req.Date; meals on other days are ignored.
func (s *Service) DailyNutrition(ctx context.Context, req DailyNutritionRequest) (_ *DailyNutritionSummary, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "service.nutrition.daily")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	var meals []records.MealRecord
	for _, meal := range req.Meals {
		if meal.Date == req.Date {
			meals = append(meals, meal)
		}
	}
	span.SetAttributes(attribute.Int("meals", len(meals)))

	totals := nutrition.DayTotals(meals)
	summary := &DailyNutritionSummary{
		Date:      req.Date,
		MealCount: len(meals),
		Totals:    totals,
		Ratio:     nutrition.PFCRatio(totals.Protein, totals.Fat, totals.Carbs),
	}
	if t := req.Targets; t != nil {
		summary.Progress = &NutritionProgress{
			Calories: nutrition.Progress(totals.Calories, t.Calories),
			Protein:  nutrition.Progress(totals.Protein, t.Protein),
			Fat:      nutrition.Progress(totals.Fat, t.Fat),
			Carbs:    nutrition.Progress(totals.Carbs, t.Carbs),
		}
	}
	return summary, nil
}

func (s *Service) WeightSummary(ctx context.Context, req WeightSummaryRequest) (_ *WeightSummary, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "service.analytics.weight_summary")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	sorted := slices.Clone(req.Records)
	slices.SortStableFunc(sorted, func(a, b records.WeightRecord) int {
		return strings.Compare(a.Date, b.Date)
	})

	summary := &WeightSummary{}
	if n := len(sorted); n > 0 {
		summary.Latest = &sorted[n-1]
		if n > 1 {
			summary.Previous = &sorted[n-2]
			change := nutrition.WeightChange(summary.Latest.Weight, summary.Previous.Weight)
			summary.Change = &change
		}
	}
	return summary, nil
}
