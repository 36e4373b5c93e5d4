package engine

import (
	"time"

	"github.com/2beens/fitstats/internal/records"
)

var volumePalette = []string{"#8b5cf6", "#ec4899"}

var volumeLabels = map[string]string{
	"totalVolume":  "Total Volume (kg)",
	"sessionCount": "Session Count",
}

type VolumeRow struct {
	Date         string  `json:"date"`
	TotalVolume  float64 `json:"totalVolume"`
	SessionCount int     `json:"sessionCount"`
}

func (r VolumeRow) Day() time.Time {
	return records.DayOf(r.Date)
}

func (r VolumeRow) withDate(date string) VolumeRow {
	r.Date = date
	return r
}

// VolumeChart plots session volume. Sessions on the same day are summed
// into one point; week and month buckets sum the days.
func VolumeChart(sessions []records.WorkoutSession, cfg Config) *ChartProps[VolumeRow] {
	rows := collect(AggregateByTime(sessions, Day, sumSessions))
	rows = FilterByDateRange(rows, cfg.Range)
	if g := cfg.granularity(); g != Day {
		rows = collect(AggregateByTime(rows, g, sumVolumeRows))
	}

	return &ChartProps[VolumeRow]{
		Data:  rows,
		XAxis: xAxis(cfg),
		YAxis: YAxis{
			Domain: [2]Bound{Fixed(0), Auto},
			Label:  "Volume (kg)",
		},
		Series: buildSeries(cfg, volumePalette, volumeLabels),
	}
}

func sumSessions(group []records.WorkoutSession) VolumeRow {
	volumes := make([]float64, 0, len(group))
	for _, s := range group {
		volumes = append(volumes, s.TotalVolume)
	}
	return VolumeRow{
		TotalVolume:  Round1(Sum(volumes)),
		SessionCount: len(group),
	}
}

func sumVolumeRows(group []VolumeRow) VolumeRow {
	var row VolumeRow
	volumes := make([]float64, 0, len(group))
	for _, r := range group {
		volumes = append(volumes, r.TotalVolume)
		row.SessionCount += r.SessionCount
	}
	row.TotalVolume = Round1(Sum(volumes))
	return row
}
