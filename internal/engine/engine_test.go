package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andresuchdata/inventory-analytics/backend-go/internal/domain"
)

// fakeSampler cycles through canned draws so tests are fully deterministic.
type fakeSampler struct {
	base     []int
	baseIdx  int
	noise    []float64
	noiseIdx int
}

func (f *fakeSampler) BaseSales() int {
	if len(f.base) == 0 {
		return 0
	}
	v := f.base[f.baseIdx%len(f.base)]
	f.baseIdx++
	return v
}

func (f *fakeSampler) Noise() float64 {
	if len(f.noise) == 0 {
		return 1.0
	}
	v := f.noise[f.noiseIdx%len(f.noise)]
	f.noiseIdx++
	return v
}

// testNow is a Wednesday so weekday/weekend handling is predictable.
var testNow = time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

func testProduct(id string, stock int, price float64) domain.Product {
	return domain.Product{
		ID:         id,
		Name:       "Product " + id,
		SKU:        "SKU-" + id,
		CategoryID: "cat-1",
		Quantity:   stock,
		UnitPrice:  price,
	}
}

func salesOn(productID string, quantity int, date string, revenue float64) domain.SalesRecord {
	return domain.SalesRecord{
		ProductID: productID,
		Quantity:  quantity,
		Date:      date,
		Revenue:   revenue,
	}
}

func TestEngineDefaults(t *testing.T) {
	e := New(Options{})

	assert.Equal(t, DefaultTimeRange, e.defaultTimeRange)
	assert.Equal(t, DefaultForecastHistoryDays, e.forecastHistoryDays)
	assert.Equal(t, DefaultForecastHorizonDays, e.forecastHorizonDays)
	assert.Equal(t, DefaultTopProducts, e.topProducts)
	assert.NotNil(t, e.clock)
	assert.NotNil(t, e.newSampler)
}

func TestEngineTimeRangeFallback(t *testing.T) {
	e := New(Options{Clock: fixedClock})

	assert.Equal(t, DefaultTimeRange, e.timeRange(0))
	assert.Equal(t, DefaultTimeRange, e.timeRange(-5))
	assert.Equal(t, 7, e.timeRange(7))
}

func TestEngineSyntheticFallbackIsSeedDeterministic(t *testing.T) {
	newEngine := func() *Engine {
		return New(Options{
			Clock:      fixedClock,
			NewSampler: func() Sampler { return NewSampler(42) },
		})
	}

	req := domain.AnalyticsRequest{
		Products:  []domain.Product{testProduct("p1", 10, 5), testProduct("p2", 3, 2)},
		TimeRange: 14,
	}

	first, err := newEngine().Recommendations(req)
	require.NoError(t, err)
	second, err := newEngine().Recommendations(req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestEngineSuppliedHistoryPassesThrough(t *testing.T) {
	e := New(Options{
		Clock: fixedClock,
		// A sampler that would generate nothing; supplied history must be
		// used instead of a synthetic one.
		NewSampler: func() Sampler { return &fakeSampler{base: []int{0}} },
	})

	req := domain.AnalyticsRequest{
		Products:     []domain.Product{testProduct("p1", 10, 5)},
		SalesHistory: []domain.SalesRecord{salesOn("p1", 5, "2024-05-14", 25)},
		TimeRange:    10,
	}

	report, err := e.Recommendations(req)
	require.NoError(t, err)
	require.Len(t, report.Recommendations, 1)

	// The sampler alone would produce a NO_DATA recommendation.
	rec := report.Recommendations[0]
	assert.Equal(t, domain.ActionMonitor, rec.Action)
	assert.Equal(t, 0.5, rec.AvgDailySales)
}

func TestEngineEmptyProductList(t *testing.T) {
	e := New(Options{Clock: fixedClock, NewSampler: func() Sampler { return NewSampler(1) }})
	req := domain.AnalyticsRequest{TimeRange: 30}

	recs, err := e.Recommendations(req)
	require.NoError(t, err)
	assert.Empty(t, recs.Recommendations)
	assert.Equal(t, 0, recs.Summary.TotalProducts)
	assert.Equal(t, 0, recs.Summary.HighUrgency)

	forecast, err := e.SalesForecast(req)
	require.NoError(t, err)
	assert.Empty(t, forecast.Forecasts)

	abc, err := e.ABCAnalysis(req)
	require.NoError(t, err)
	assert.Empty(t, abc.Analysis)
	assert.Equal(t, 0, abc.Summary.TotalProducts)

	perf, err := e.PerformanceMetrics(req)
	require.NoError(t, err)
	assert.Zero(t, perf.OverallMetrics.TotalRevenue)
	assert.Empty(t, perf.TopProducts)
}
