package engine

import (
	"slices"
	"strings"

	"github.com/2beens/fitstats/internal/records"
)

var weightPalette = []string{"#3b82f6", "#10b981", "#f59e0b"}

var weightLabels = map[string]string{
	"weight":            "Weight (kg)",
	"bodyFatPercentage": "Body Fat (%)",
	"muscleMass":        "Muscle Mass (kg)",
	"weightTrend":       "Weight Trend (kg)",
}

type WeightRow struct {
	Date              string   `json:"date"`
	Weight            float64  `json:"weight"`
	BodyFatPercentage *float64 `json:"bodyFatPercentage,omitempty"`
	MuscleMass        *float64 `json:"muscleMass,omitempty"`
	WeightTrend       *float64 `json:"weightTrend,omitempty"`
}

func (r WeightRow) withDate(date string) WeightRow {
	r.Date = date
	return r
}

func WeightChart(recs []records.WeightRecord, cfg Config) *ChartProps[WeightRow] {
	filtered := FilterByDateRange(recs, cfg.Range)

	var rows []WeightRow
	if g := cfg.granularity(); g != Day {
		rows = collect(AggregateByTime(filtered, g, averageWeights))
	} else {
		rows = make([]WeightRow, 0, len(filtered))
		for _, r := range filtered {
			rows = append(rows, WeightRow{
				Date:              r.Date,
				Weight:            r.Weight,
				BodyFatPercentage: copyFloat(r.BodyFatPercentage),
				MuscleMass:        copyFloat(r.MuscleMass),
			})
		}
		slices.SortStableFunc(rows, func(a, b WeightRow) int {
			return strings.Compare(a.Date, b.Date)
		})
	}

	if cfg.MovingAverage > 0 {
		weights := make([]*float64, len(rows))
		for i := range rows {
			weights[i] = &rows[i].Weight
		}
		for i, avg := range MovingAverage(weights, cfg.MovingAverage) {
			rows[i].WeightTrend = avg
		}
	}

	return &ChartProps[WeightRow]{
		Data:  rows,
		XAxis: xAxis(cfg),
		YAxis: YAxis{
			Domain: [2]Bound{Auto, Auto},
			Label:  "Value",
		},
		Series: buildSeries(cfg, weightPalette, weightLabels),
	}
}

func averageWeights(group []records.WeightRecord) WeightRow {
	weights := make([]float64, 0, len(group))
	bodyFat := make([]*float64, 0, len(group))
	muscle := make([]*float64, 0, len(group))
	for _, r := range group {
		weights = append(weights, r.Weight)
		bodyFat = append(bodyFat, r.BodyFatPercentage)
		muscle = append(muscle, r.MuscleMass)
	}
	return WeightRow{
		Weight:            Average(weights),
		BodyFatPercentage: averagePresent(bodyFat),
		MuscleMass:        averagePresent(muscle),
	}
}
