// Package engine implements the inventory analytics core: reorder
// recommendations, short-term sales forecasts, ABC revenue classification
// and catalog-wide performance metrics. All operations are pure functions
// over (products, history, timeRange); the only non-determinism is the
// injectable Sampler used for synthetic histories and forecast noise.
package engine

import (
	"fmt"
	"math"
	"time"

	"github.com/andresuchdata/inventory-analytics/backend-go/internal/domain"
)

// Defaults applied when Options fields are zero.
const (
	DefaultTimeRange           = 30
	DefaultForecastHistoryDays = 90
	DefaultForecastHorizonDays = 30
	DefaultTopProducts         = 5
)

// Clock supplies the current time. Injectable so tests can pin "today".
type Clock func() time.Time

// Options configures an Engine.
type Options struct {
	// DefaultTimeRange replaces non-positive request time ranges.
	DefaultTimeRange int
	// ForecastHistoryDays is the length of the synthetic series the
	// forecast operation regenerates internally.
	ForecastHistoryDays int
	// ForecastHorizonDays is the number of future days to project.
	ForecastHorizonDays int
	// TopProducts caps the performance report's top-product list.
	TopProducts int
	// Clock defaults to time.Now.
	Clock Clock
	// NewSampler builds one Sampler per operation. Defaults to a
	// wall-clock-seeded math/rand sampler.
	NewSampler func() Sampler
}

// Engine evaluates the four analytics operations. It holds no mutable state,
// so a single instance serves concurrent requests without coordination.
type Engine struct {
	defaultTimeRange    int
	forecastHistoryDays int
	forecastHorizonDays int
	topProducts         int
	clock               Clock
	newSampler          func() Sampler
}

// New builds an Engine, filling unset options with defaults.
func New(opts Options) *Engine {
	e := &Engine{
		defaultTimeRange:    opts.DefaultTimeRange,
		forecastHistoryDays: opts.ForecastHistoryDays,
		forecastHorizonDays: opts.ForecastHorizonDays,
		topProducts:         opts.TopProducts,
		clock:               opts.Clock,
		newSampler:          opts.NewSampler,
	}
	if e.defaultTimeRange <= 0 {
		e.defaultTimeRange = DefaultTimeRange
	}
	if e.forecastHistoryDays <= 0 {
		e.forecastHistoryDays = DefaultForecastHistoryDays
	}
	if e.forecastHorizonDays <= 0 {
		e.forecastHorizonDays = DefaultForecastHorizonDays
	}
	if e.topProducts <= 0 {
		e.topProducts = DefaultTopProducts
	}
	if e.clock == nil {
		e.clock = time.Now
	}
	if e.newSampler == nil {
		e.newSampler = NewRandomSampler
	}
	return e
}

// Recommendations derives reorder advice for every product in the request.
func (e *Engine) Recommendations(req domain.AnalyticsRequest) (report *domain.RecommendationReport, err error) {
	defer recoverOp("recommendation", &err)

	timeRange := e.timeRange(req.TimeRange)
	history := e.resolveHistory(req, timeRange)
	return buildRecommendations(req.Products, history, timeRange, e.clock()), nil
}

// SalesForecast projects demand for the next horizon. It always regenerates
// its own synthetic history, even when the request carries one; callers rely
// on the forecast being independent of the supplied records.
func (e *Engine) SalesForecast(req domain.AnalyticsRequest) (report *domain.ForecastReport, err error) {
	defer recoverOp("forecast", &err)

	sampler := e.newSampler()
	now := e.clock()
	history := GenerateHistory(req.Products, e.forecastHistoryDays, now, sampler)
	return buildForecast(req.Products, history, e.forecastHorizonDays, now, sampler), nil
}

// ABCAnalysis partitions the products into revenue-concentration tiers.
func (e *Engine) ABCAnalysis(req domain.AnalyticsRequest) (report *domain.ABCReport, err error) {
	defer recoverOp("abc", &err)

	timeRange := e.timeRange(req.TimeRange)
	history := e.resolveHistory(req, timeRange)
	return buildABC(req.Products, history, e.clock()), nil
}

// PerformanceMetrics computes catalog-wide totals and category shares.
func (e *Engine) PerformanceMetrics(req domain.AnalyticsRequest) (report *domain.PerformanceReport, err error) {
	defer recoverOp("performance", &err)

	timeRange := e.timeRange(req.TimeRange)
	history := e.resolveHistory(req, timeRange)
	return buildPerformance(req.Products, history, timeRange, e.topProducts, e.clock()), nil
}

// resolveHistory passes a caller-supplied history through unchanged and
// fabricates a synthetic one otherwise.
func (e *Engine) resolveHistory(req domain.AnalyticsRequest, timeRange int) []domain.SalesRecord {
	if len(req.SalesHistory) > 0 {
		return req.SalesHistory
	}
	return GenerateHistory(req.Products, timeRange, e.clock(), e.newSampler())
}

func (e *Engine) timeRange(requested int) int {
	if requested <= 0 {
		return e.defaultTimeRange
	}
	return requested
}

// recoverOp converts a panic inside an operation into an error.
func recoverOp(op string, err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("%s analysis failed: %v", op, r)
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
