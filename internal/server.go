package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"

	"github.com/2beens/fitstats/internal/analytics"
	"github.com/2beens/fitstats/internal/cache"
	"github.com/2beens/fitstats/internal/config"
	"github.com/2beens/fitstats/internal/middleware"
	"github.com/2beens/fitstats/internal/telemetry/metrics"
	"github.com/2beens/fitstats/internal/telemetry/tracing"
	"github.com/2beens/fitstats/pkg"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config      *config.Config
	redisClient *redis.Client
	chartCache  cache.Cache
	rateLimiter middleware.RequestRateLimiter

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config      *config.Config
	Secrets     config.Secrets
	VersionInfo string
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	promRegistry := metrics.SetupPrometheus()
	metricsManager := metrics.NewManager("fitstats", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	s := &Server{
		config:         params.Config,
		versionInfo:    params.VersionInfo,
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
	}

	if params.Config.NeedsRedis() {
		rdb := redis.NewClient(&redis.Options{
			Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
			Password: params.Secrets.RedisPassword,
			DB:       0, // use default DB
		})

		rdbStatus := rdb.Ping(ctx)
		if err := rdbStatus.Err(); err != nil {
			log.Errorf("--> failed to ping redis: %s", err)
		} else {
			log.Debugf("redis ping: %s", rdbStatus.Val())
		}
		s.redisClient = rdb

		if params.Config.RateLimitEnabled {
			s.rateLimiter = redis_rate.NewLimiter(rdb)
		}
	}

	chartCache, err := newChartCache(params.Config, s.redisClient)
	if err != nil {
		return nil, err
	}
	s.chartCache = chartCache
	if params.Config.ChartCacheClearOnStart {
		clearChartCache(ctx, chartCache)
	}

	// use honeycomb distro to setup OpenTelemetry SDK
	s.otelShutdown, err = tracing.HoneycombSetup(params.Secrets.HoneycombEnabled)
	if err != nil {
		return nil, err
	}

	return s, nil
}

func newChartCache(cfg *config.Config, rdb *redis.Client) (cache.Cache, error) {
	ttl := time.Duration(cfg.ChartCacheTTLSeconds) * time.Second
	switch cfg.ChartCacheBackend {
	case config.CacheBackendRedis:
		if rdb == nil {
			return nil, errors.New("redis chart cache requested without a redis client")
		}
		log.Debugf("chart cache: redis, ttl %s", ttl)
		return cache.NewRedisCache(rdb, cache.DefaultRedisKeyPrefix, ttl), nil
	case config.CacheBackendMemory, "":
		log.Debugf("chart cache: memory, %d MB, ttl %s", cfg.ChartCacheSizeMB, ttl)
		return cache.NewMemoryCache(cfg.ChartCacheSizeMB, cfg.ChartCacheTTLSeconds), nil
	default:
		return nil, fmt.Errorf("unknown chart cache backend: %s", cfg.ChartCacheBackend)
	}
}

// clearChartCache drops every cached chart; a failure is only logged.
func clearChartCache(ctx context.Context, chartCache cache.Cache) {
	if err := chartCache.Clear(ctx); err != nil {
		log.Errorf("failed to clear chart cache: %s", err)
		return
	}
	log.Debugln("chart cache cleared")
}

func (s *Server) routerSetup() (*mux.Router, error) {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("fitstats-router"))

	analyticsHandler := analytics.NewHandler(
		analytics.NewService(s.chartCache, s.metricsManager),
	)

	analyticsRouter := r.PathPrefix("/analytics").Subrouter()
	analyticsRouter.HandleFunc("/weight", analyticsHandler.HandleWeightChart).Methods("POST", "OPTIONS").Name("weight-chart")
	analyticsRouter.HandleFunc("/volume", analyticsHandler.HandleVolumeChart).Methods("POST", "OPTIONS").Name("volume-chart")
	analyticsRouter.HandleFunc("/pfc", analyticsHandler.HandlePFCChart).Methods("POST", "OPTIONS").Name("pfc-chart")
	analyticsRouter.HandleFunc("/pfc/balance", analyticsHandler.HandlePFCBalance).Methods("POST", "OPTIONS").Name("pfc-balance")
	analyticsRouter.HandleFunc("/exercise", analyticsHandler.HandleExerciseChart).Methods("POST", "OPTIONS").Name("exercise-chart")
	analyticsRouter.HandleFunc("/exercise/summary", analyticsHandler.HandleExerciseSummary).Methods("POST", "OPTIONS").Name("exercise-summary")
	analyticsRouter.HandleFunc("/weight/summary", analyticsHandler.HandleWeightSummary).Methods("POST", "OPTIONS").Name("weight-summary")
	analyticsRouter.HandleFunc("/types", analyticsHandler.HandleDataTypes).Methods("GET", "OPTIONS").Name("data-types")
	if s.rateLimiter != nil {
		analyticsRouter.Use(middleware.RateLimit(
			s.rateLimiter,
			s.metricsManager,
			"analytics",
			s.config.RateLimitPerMinute,
		))
	}

	nutritionRouter := r.PathPrefix("/nutrition").Subrouter()
	nutritionRouter.HandleFunc("/daily", analyticsHandler.HandleDailyNutrition).Methods("POST", "OPTIONS").Name("daily-nutrition")
	nutritionRouter.HandleFunc("/item", analyticsHandler.HandleMealItem).Methods("POST", "OPTIONS").Name("meal-item")

	r.HandleFunc("/onerm", analyticsHandler.HandleOneRM).Methods("GET", "OPTIONS").Name("onerm")
	r.HandleFunc("/onerm/all", analyticsHandler.HandleOneRMAll).Methods("GET", "OPTIONS").Name("onerm-all")
	r.HandleFunc("/version", s.handleVersion).Methods("GET", "OPTIONS").Name("version")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "OPTIONS").Name("unknown")

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.AllowedOrigins))
	r.Use(middleware.LimitAndDrainRequest(middleware.DefaultMaxBodyBytes))

	return r, nil
}

func (s *Server) handleVersion(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, s.versionInfo)
}

func (s *Server) Serve(host string, port int) {
	router, err := s.routerSetup()
	if err != nil {
		log.Fatalf("failed to setup router: %s", err)
	}

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.InstrumentMetricHandler(
		s.promRegistry,
		promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}),
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	if s.otelShutdown != nil {
		s.otelShutdown()
		log.Trace("otel shut down ...")
	}

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown http server")
		}
		log.Warnln("server shut down")
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown metrics http server")
		}
		log.Warnln("metrics server shut down")
	}
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
