package internal

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/2beens/fitstats/internal/cache"
	"github.com/2beens/fitstats/internal/config"
	"github.com/2beens/fitstats/internal/telemetry/metrics"

	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingRateLimiter struct {
	mu      sync.Mutex
	allowed int
	calls   map[string]int
}

func (l *countingRateLimiter) Allow(_ context.Context, key string, _ redis_rate.Limit) (*redis_rate.Result, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.calls[key]++
	if l.calls[key] > l.allowed {
		return &redis_rate.Result{Allowed: 0}, nil
	}
	return &redis_rate.Result{Allowed: 1, Remaining: l.allowed - l.calls[key]}, nil
}

func newTestServer(t *testing.T, rateLimiter *countingRateLimiter) (*Server, *mux.Router, *cache.TestCache) {
	t.Helper()

	chartCache := cache.NewTestCache()
	s := &Server{
		versionInfo: "v1.2.3",
		config: &config.Config{
			Port:               9000,
			RateLimitEnabled:   rateLimiter != nil,
			RateLimitPerMinute: 2,
			AllowedOrigins:     []string{"http://localhost:5173"},
		},
		chartCache:     chartCache,
		metricsManager: metrics.NewTestManager(),
	}
	if rateLimiter != nil {
		s.rateLimiter = rateLimiter
	}

	router, err := s.routerSetup()
	require.NoError(t, err)
	return s, router, chartCache
}

const weightChartBody = `{
	"config": {"type": "line", "grouping": "week", "mapping": {"x": "date", "y": ["weight"]}},
	"records": [{"date": "2024-01-01", "weight": 70}, {"date": "2024-01-08", "weight": 69}]
}`

func postJSON(target, body string) *http.Request {
	req := httptest.NewRequest("POST", target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestServer_Version(t *testing.T) {
	_, router, _ := newTestServer(t, nil)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest("GET", "/version", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "v1.2.3", rr.Body.String())
}

func TestServer_UnknownPath(t *testing.T) {
	_, router, _ := newTestServer(t, nil)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest("GET", "/nope", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestServer_WeightChartIsCached(t *testing.T) {
	s, router, chartCache := newTestServer(t, nil)

	for i := 0; i < 2; i++ {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, postJSON("/analytics/weight", weightChartBody))
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"weight":69`)
	}

	assert.Equal(t, 1, chartCache.Len())
	assert.Equal(t, 1.0, testutil.ToFloat64(s.metricsManager.CounterChartCacheHits.WithLabelValues("weight")))
	assert.Equal(t, 2.0, testutil.ToFloat64(s.metricsManager.CounterRequests.WithLabelValues("POST", "200")))
}

func TestServer_InvalidChartConfig(t *testing.T) {
	_, router, _ := newTestServer(t, nil)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, postJSON("/analytics/weight", `{"config": {"type": "radar", "mapping": {"x": "date", "y": "weight"}}, "records": []}`))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestServer_Cors(t *testing.T) {
	_, router, _ := newTestServer(t, nil)

	req := httptest.NewRequest("OPTIONS", "/analytics/weight", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "http://localhost:5173", rr.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest("GET", "/onerm?weight=100&reps=5", nil)
	req.Header.Set("Origin", "http://evil.example")
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestServer_AnalyticsRateLimited(t *testing.T) {
	limiter := &countingRateLimiter{allowed: 2, calls: make(map[string]int)}
	s, router, _ := newTestServer(t, limiter)

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest("GET", "/analytics/types", nil))
		codes = append(codes, rr.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
	assert.Equal(t, 1.0, testutil.ToFloat64(s.metricsManager.CounterRateLimitedRequests))

	// 1RM calculator sits outside the analytics subrouter
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest("GET", "/onerm?weight=100&reps=5", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestNewChartCache(t *testing.T) {
	memCache, err := newChartCache(&config.Config{ChartCacheBackend: config.CacheBackendMemory, ChartCacheSizeMB: 1}, nil)
	require.NoError(t, err)
	assert.IsType(t, &cache.MemoryCache{}, memCache)

	_, err = newChartCache(&config.Config{ChartCacheBackend: config.CacheBackendRedis}, nil)
	assert.Error(t, err)

	rdb := redis.NewClient(&redis.Options{Addr: "localhost:0"})
	defer rdb.Close()
	redisCache, err := newChartCache(&config.Config{ChartCacheBackend: config.CacheBackendRedis}, rdb)
	require.NoError(t, err)
	assert.IsType(t, &cache.RedisCache{}, redisCache)

	_, err = newChartCache(&config.Config{ChartCacheBackend: "memcached"}, nil)
	assert.Error(t, err)
}

func TestServer_GracefulShutdownWithoutServe(t *testing.T) {
	s, _, _ := newTestServer(t, nil)
	s.metricsManager.GaugeLifeSignal.Set(1)
	s.GracefulShutdown()
	assert.Equal(t, 0.0, testutil.ToFloat64(s.metricsManager.GaugeLifeSignal))
}

func TestClearChartCache(t *testing.T) {
	_, router, chartCache := newTestServer(t, nil)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, postJSON("/analytics/weight", weightChartBody))
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, 1, chartCache.Len())

	clearChartCache(context.Background(), chartCache)
	assert.Equal(t, 0, chartCache.Len())
}

func TestServer_NutritionAndSummaryRoutes(t *testing.T) {
	_, router, _ := newTestServer(t, nil)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, postJSON("/nutrition/item", `{"food": {"name": "Rice", "calories": 130, "protein": 2.7, "fat": 0.3, "carbs": 28}, "amount": 200}`))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"calories":260`)

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, postJSON("/nutrition/daily", `{
		"date": "2024-01-01",
		"records": [{"date": "2024-01-01", "mealType": "lunch", "totalCalories": 500, "totalProtein": 40}]
	}`))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"mealCount":1`)

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, postJSON("/analytics/weight/summary", weightChartBody))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"isLoss":true`)
}
