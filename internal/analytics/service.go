package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/2beens/fitstats/internal/analytics/engine"
	"github.com/2beens/fitstats/internal/cache"
	"github.com/2beens/fitstats/internal/nutrition"
	"github.com/2beens/fitstats/internal/telemetry/metrics"
	"github.com/2beens/fitstats/internal/telemetry/tracing"

	"github.com/cespare/xxhash/v2"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const (
	chartKindWeight     = "weight"
	chartKindVolume     = "volume"
	chartKindPFC        = "pfc"
	chartKindExercise   = "exercise"
	chartKindPFCBalance = "pfc_balance"
)

type validator interface {
	Validate() error
}

// Service builds chart props from records, memoising results in the chart cache.
type Service struct {
	chartCache     cache.Cache
	metricsManager *metrics.Manager
}

func NewService(chartCache cache.Cache, metricsManager *metrics.Manager) *Service {
	return &Service{
		chartCache:     chartCache,
		metricsManager: metricsManager,
	}
}

func (s *Service) WeightChart(ctx context.Context, req WeightChartRequest) (*engine.ChartProps[engine.WeightRow], error) {
	return buildChart(ctx, s, chartKindWeight, req, func() *engine.ChartProps[engine.WeightRow] {
		return engine.WeightChart(req.Records, req.Config)
	})
}

func (s *Service) VolumeChart(ctx context.Context, req VolumeChartRequest) (*engine.ChartProps[engine.VolumeRow], error) {
	return buildChart(ctx, s, chartKindVolume, req, func() *engine.ChartProps[engine.VolumeRow] {
		return engine.VolumeChart(req.Sessions, req.Config)
	})
}

func (s *Service) PFCChart(ctx context.Context, req PFCChartRequest) (*engine.ChartProps[engine.PFCRow], error) {
	return buildChart(ctx, s, chartKindPFC, req, func() *engine.ChartProps[engine.PFCRow] {
		return engine.PFCChart(nutrition.WithItemTotals(req.Meals), req.Config)
	})
}

func (s *Service) ExerciseChart(ctx context.Context, req ExerciseChartRequest) (*engine.ChartProps[engine.ExerciseRow], error) {
	// Validate canonicalises req.Formula in place before the build runs
	return buildChart(ctx, s, chartKindExercise, &req, func() *engine.ChartProps[engine.ExerciseRow] {
		return engine.ExerciseChart(req.Sessions, req.ExerciseID, req.Formula, req.Config)
	})
}

func (s *Service) PFCBalanceChart(ctx context.Context, req PFCBalanceRequest) (*engine.ChartProps[engine.BalanceSlice], error) {
	return buildChart(ctx, s, chartKindPFCBalance, req, func() *engine.ChartProps[engine.BalanceSlice] {
		return engine.PFCBalanceChart(req.Protein, req.Fat, req.Carbs)
	})
}

func (s *Service) ExerciseSummaries(ctx context.Context, req ExerciseSummaryRequest) (_ []engine.ExerciseSummary, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "service.analytics.exercise_summaries")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	span.SetAttributes(
		attribute.Int("exercises", len(req.Session.Exercises)),
		attribute.String("formula", string(req.Formula)),
	)
	return engine.SummarizeExercises(req.Session, req.Formula), nil
}

func buildChart[R any](
	ctx context.Context,
	s *Service,
	kind string,
	req validator,
	build func() *engine.ChartProps[R],
) (_ *engine.ChartProps[R], err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.analytics."+kind)
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	key, err := cacheKey(kind, req)
	if err != nil {
		return nil, fmt.Errorf("cache key: %w", err)
	}
	span.SetAttributes(attribute.String("chart.kind", kind))

	if props, ok := cachedChart[R](ctx, s.chartCache, key); ok {
		s.metricsManager.CounterChartCacheHits.WithLabelValues(kind).Inc()
		span.SetAttributes(attribute.Bool("cache.hit", true))
		return props, nil
	}
	s.metricsManager.CounterChartCacheMisses.WithLabelValues(kind).Inc()

	begin := time.Now()
	props := build()
	s.metricsManager.HistTransformDuration.WithLabelValues(kind).Observe(time.Since(begin).Seconds())
	s.metricsManager.CounterChartsBuilt.WithLabelValues(kind).Inc()
	span.SetAttributes(attribute.Int("chart.points", len(props.Data)))

	propsJson, err := json.Marshal(props)
	if err != nil {
		log.Errorf("failed to marshal %s chart for cache: %s", kind, err)
		return props, nil
	}
	if err := s.chartCache.Set(ctx, key, propsJson); err != nil {
		log.Warnf("failed to cache %s chart: %s", kind, err)
	}

	return props, nil
}

func cachedChart[R any](ctx context.Context, chartCache cache.Cache, key string) (*engine.ChartProps[R], bool) {
	raw, ok := chartCache.Get(ctx, key)
	if !ok {
		return nil, false
	}

	var props engine.ChartProps[R]
	if err := json.Unmarshal(raw, &props); err != nil {
		log.Errorf("failed to decode cached chart [%s]: %s", key, err)
		return nil, false
	}
	if props.XAxis.Grouping != "" {
		props.XAxis.TickFormatter = engine.TickFormatter(props.XAxis.Grouping)
	}
	log.Tracef("chart [%s] served from cache", key)
	return &props, true
}

func cacheKey(kind string, req any) (string, error) {
	reqJson, err := json.Marshal(req)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s:%016x", kind, xxhash.Sum64(reqJson)), nil
}
