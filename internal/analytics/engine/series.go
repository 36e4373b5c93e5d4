package engine

const dateAxisLabel = "Date"

func (c Config) granularity() Granularity {
	return c.Grouping.orDay()
}

func xAxis(cfg Config) XAxis {
	g := cfg.granularity()
	return XAxis{
		DataKey:       cfg.Mapping.X,
		Label:         dateAxisLabel,
		Grouping:      g,
		TickFormatter: TickFormatter(g),
	}
}

// buildSeries emits one series per y-field, cycling through the config
// colors or, when none are set, the domain palette.
func buildSeries(cfg Config, palette []string, labels map[string]string) []Series {
	colors := cfg.Colors
	if len(colors) == 0 {
		colors = palette
	}

	series := make([]Series, 0, len(cfg.Mapping.Y))
	for i, field := range cfg.Mapping.Y {
		color := colors[i%len(colors)]
		s := Series{
			Type:    cfg.Type,
			DataKey: field,
			Name:    fieldLabel(labels, field),
			Color:   color,
		}
		if cfg.Type == ChartTypeArea {
			s.Fill = color
		}
		series = append(series, s)
	}
	return series
}

func fieldLabel(labels map[string]string, field string) string {
	if label, ok := labels[field]; ok {
		return label
	}
	return field
}
