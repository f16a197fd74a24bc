package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andresuchdata/inventory-analytics/backend-go/internal/api"
	"github.com/andresuchdata/inventory-analytics/backend-go/internal/cache"
	"github.com/andresuchdata/inventory-analytics/backend-go/internal/domain"
	"github.com/andresuchdata/inventory-analytics/backend-go/internal/engine"
	"github.com/andresuchdata/inventory-analytics/backend-go/internal/service"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	eng := engine.New(engine.Options{
		Clock:      func() time.Time { return time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC) },
		NewSampler: func() engine.Sampler { return engine.NewSampler(42) },
	})
	svc := service.NewAnalyticsService(eng, cache.NewNoopAnalyticsCache())
	return api.NewRouter(svc, nil)
}

func postJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func analyticsRequest() domain.AnalyticsRequest {
	return domain.AnalyticsRequest{
		Products: []domain.Product{
			{ID: "p1", Name: "Widget", SKU: "W-1", CategoryID: "catA", Quantity: 10, UnitPrice: 5},
		},
		SalesHistory: []domain.SalesRecord{
			{ProductID: "p1", Quantity: 5, Date: "2024-05-14", Revenue: 25},
			{ProductID: "p1", Quantity: 5, Date: "2024-05-13", Revenue: 25},
		},
		TimeRange: 10,
	}
}

func TestRootEndpoint(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Inventory Analytics API is running!")
}

func TestGetRecommendations(t *testing.T) {
	router := newTestRouter()

	w := postJSON(t, router, "/api/v1/analytics/recommendations", analyticsRequest())
	require.Equal(t, http.StatusOK, w.Code)

	var report domain.RecommendationReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	require.Len(t, report.Recommendations, 1)

	rec := report.Recommendations[0]
	assert.Equal(t, "p1", rec.ProductID)
	assert.Equal(t, 1.0, rec.AvgDailySales)
	assert.Equal(t, domain.UrgencyMedium, rec.Urgency)
	assert.Equal(t, domain.ActionReorderSoon, rec.Action)
	assert.Equal(t, 1, report.Summary.TotalProducts)
}

func TestGetRecommendationsMissingProducts(t *testing.T) {
	router := newTestRouter()

	w := postJSON(t, router, "/api/v1/analytics/recommendations", map[string]any{"timeRange": 10})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request payload")
}

func TestGetSalesForecast(t *testing.T) {
	router := newTestRouter()

	w := postJSON(t, router, "/api/v1/analytics/sales-forecast", analyticsRequest())
	require.Equal(t, http.StatusOK, w.Code)

	var report domain.ForecastReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	for _, forecast := range report.Forecasts {
		assert.Len(t, forecast.Forecast, 30)
	}
	assert.NotEmpty(t, report.GeneratedAt)
}

func TestGetABCAnalysis(t *testing.T) {
	router := newTestRouter()

	w := postJSON(t, router, "/api/v1/analytics/abc-analysis", analyticsRequest())
	require.Equal(t, http.StatusOK, w.Code)

	var report domain.ABCReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	require.Len(t, report.Analysis, 1)
	assert.Equal(t, domain.ABCTierA, report.Analysis[0].Category)
	assert.Equal(t, 50.0, report.Summary.TotalRevenue)
}

func TestGetPerformanceMetrics(t *testing.T) {
	router := newTestRouter()

	w := postJSON(t, router, "/api/v1/analytics/performance-metrics", analyticsRequest())
	require.Equal(t, http.StatusOK, w.Code)

	var report domain.PerformanceReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.Equal(t, 50.0, report.OverallMetrics.TotalRevenue)
	assert.Equal(t, 10, report.OverallMetrics.TotalQuantitySold)
	assert.Equal(t, "10 days", report.OverallMetrics.AnalysisPeriod)
	require.Len(t, report.TopProducts, 1)
	assert.Equal(t, "p1", report.TopProducts[0].ProductID)
}

func TestGetDashboard(t *testing.T) {
	router := newTestRouter()

	w := postJSON(t, router, "/api/v1/analytics/dashboard", analyticsRequest())
	require.Equal(t, http.StatusOK, w.Code)

	var dashboard domain.Dashboard
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dashboard))
	assert.NotNil(t, dashboard.Recommendations)
	assert.NotNil(t, dashboard.Forecast)
	assert.NotNil(t, dashboard.ABCAnalysis)
	assert.NotNil(t, dashboard.Performance)
}

func TestRequestIDHeaderSet(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
