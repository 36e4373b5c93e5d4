package engine

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fitstats/internal/records"
)

type ChartType string

const (
	ChartTypeLine ChartType = "line"
	ChartTypeBar  ChartType = "bar"
	ChartTypeArea ChartType = "area"
	ChartTypePie  ChartType = "pie"
)

func (ct ChartType) IsValid() bool {
	switch ct {
	case ChartTypeLine, ChartTypeBar, ChartTypeArea, ChartTypePie:
		return true
	}
	return false
}

type Granularity string

const (
	Day   Granularity = "day"
	Week  Granularity = "week"
	Month Granularity = "month"
)

func (g Granularity) IsValid() bool {
	switch g {
	case Day, Week, Month:
		return true
	}
	return false
}

// orDay maps anything that is not week or month to day.
func (g Granularity) orDay() Granularity {
	if g == Week || g == Month {
		return g
	}
	return Day
}

// Dated is implemented by anything the engine can filter and bucket.
type Dated interface {
	Day() time.Time
}

// DateRange is inclusive on both ends.
type DateRange struct {
	Start time.Time
	End   time.Time
}

func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

type dateRangeJSON struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

func (r DateRange) MarshalJSON() ([]byte, error) {
	return json.Marshal(dateRangeJSON{
		Start: r.Start.Format(time.RFC3339),
		End:   r.End.Format(time.RFC3339),
	})
}

// UnmarshalJSON accepts both YYYY-MM-DD and RFC 3339 bounds.
func (r *DateRange) UnmarshalJSON(b []byte) error {
	var raw dateRangeJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	start, err := parseBound(raw.Start)
	if err != nil {
		return fmt.Errorf("range start: %w", err)
	}
	end, err := parseBound(raw.End)
	if err != nil {
		return fmt.Errorf("range end: %w", err)
	}
	r.Start, r.End = start, end
	return nil
}

func parseBound(s string) (time.Time, error) {
	if t, err := records.ParseDay(s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// Fields is one or more y-field names. In JSON it may be a single string.
type Fields []string

func (f *Fields) UnmarshalJSON(b []byte) error {
	var single string
	if err := json.Unmarshal(b, &single); err == nil {
		*f = Fields{single}
		return nil
	}
	var many []string
	if err := json.Unmarshal(b, &many); err != nil {
		return fmt.Errorf("y mapping must be a string or a list of strings: %w", err)
	}
	*f = many
	return nil
}

type Mapping struct {
	X string `json:"x"`
	Y Fields `json:"y"`
}

var ErrInvalidConfig = errors.New("invalid chart config")

type Config struct {
	Type     ChartType   `json:"type"`
	Title    string      `json:"title,omitempty"`
	Grouping Granularity `json:"grouping,omitempty"`
	Range    *DateRange  `json:"range,omitempty"`
	Mapping  Mapping     `json:"mapping"`
	Colors   []string    `json:"colors,omitempty"`
	// MovingAverage is a trailing window size; 0 disables it.
	MovingAverage int `json:"movingAverage,omitempty"`
}

func (c Config) Validate() error {
	if !c.Type.IsValid() {
		return fmt.Errorf("%w: unknown chart type [%s]", ErrInvalidConfig, c.Type)
	}
	if c.Grouping != "" && !c.Grouping.IsValid() {
		return fmt.Errorf("%w: unknown grouping [%s]", ErrInvalidConfig, c.Grouping)
	}
	if c.Mapping.X == "" {
		return fmt.Errorf("%w: x mapping is empty", ErrInvalidConfig)
	}
	if len(c.Mapping.Y) == 0 {
		return fmt.Errorf("%w: y mapping is empty", ErrInvalidConfig)
	}
	for _, field := range c.Mapping.Y {
		if field == "" {
			return fmt.Errorf("%w: empty y field", ErrInvalidConfig)
		}
	}
	if c.Range != nil {
		if c.Range.Start.IsZero() || c.Range.End.IsZero() {
			return fmt.Errorf("%w: range needs both start and end", ErrInvalidConfig)
		}
		if c.Range.End.Before(c.Range.Start) {
			return fmt.Errorf("%w: range ends before it starts", ErrInvalidConfig)
		}
	}
	if c.MovingAverage < 0 {
		return fmt.Errorf("%w: negative moving average window", ErrInvalidConfig)
	}
	return nil
}

// Bound is a y-axis domain bound: a number or "auto".
type Bound struct {
	Auto  bool
	Value float64
}

var Auto = Bound{Auto: true}

func Fixed(v float64) Bound {
	return Bound{Value: v}
}

func (b Bound) MarshalJSON() ([]byte, error) {
	if b.Auto {
		return []byte(`"auto"`), nil
	}
	return json.Marshal(b.Value)
}

func (b *Bound) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s != "auto" {
			return fmt.Errorf("invalid axis bound [%s]", s)
		}
		*b = Auto
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*b = Fixed(v)
	return nil
}

type XAxis struct {
	DataKey  string      `json:"dataKey"`
	Label    string      `json:"label,omitempty"`
	Grouping Granularity `json:"grouping"`
	// TickFormatter renders bucket keys for display; rebuilt from Grouping after decoding.
	TickFormatter func(string) string `json:"-"`
}

type YAxis struct {
	Domain [2]Bound `json:"domain"`
	Label  string   `json:"label,omitempty"`
}

type Series struct {
	Type    ChartType `json:"type"`
	DataKey string    `json:"dataKey"`
	Name    string    `json:"name"`
	Color   string    `json:"color"`
	Fill    string    `json:"fill,omitempty"`
}

type ChartProps[R any] struct {
	Data   []R      `json:"data"`
	XAxis  XAxis    `json:"xAxis"`
	YAxis  YAxis    `json:"yAxis"`
	Series []Series `json:"series"`
}
