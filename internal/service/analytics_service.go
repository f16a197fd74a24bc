package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/andresuchdata/inventory-analytics/backend-go/internal/cache"
	"github.com/andresuchdata/inventory-analytics/backend-go/internal/domain"
	"github.com/andresuchdata/inventory-analytics/backend-go/internal/engine"
)

// AnalyticsService orchestrates the analytics engine: result caching for
// deterministic requests and concurrent fan-out for the combined dashboard.
type AnalyticsService struct {
	engine *engine.Engine
	cache  cache.AnalyticsCache
}

func NewAnalyticsService(eng *engine.Engine, cacheImpl cache.AnalyticsCache) *AnalyticsService {
	if cacheImpl == nil {
		cacheImpl = cache.NewNoopAnalyticsCache()
	}
	return &AnalyticsService{engine: eng, cache: cacheImpl}
}

func (s *AnalyticsService) Recommendations(ctx context.Context, req domain.AnalyticsRequest) (*domain.RecommendationReport, error) {
	var cached domain.RecommendationReport
	if s.tryCache(ctx, "recommendations", req, &cached) {
		return &cached, nil
	}

	report, err := s.engine.Recommendations(req)
	if err != nil {
		return nil, err
	}

	s.storeCache(ctx, "recommendations", req, report)
	return report, nil
}

// SalesForecast is never cached: it resamples its synthetic history on every
// call regardless of the supplied records.
func (s *AnalyticsService) SalesForecast(ctx context.Context, req domain.AnalyticsRequest) (*domain.ForecastReport, error) {
	return s.engine.SalesForecast(req)
}

func (s *AnalyticsService) ABCAnalysis(ctx context.Context, req domain.AnalyticsRequest) (*domain.ABCReport, error) {
	var cached domain.ABCReport
	if s.tryCache(ctx, "abc", req, &cached) {
		return &cached, nil
	}

	report, err := s.engine.ABCAnalysis(req)
	if err != nil {
		return nil, err
	}

	s.storeCache(ctx, "abc", req, report)
	return report, nil
}

func (s *AnalyticsService) PerformanceMetrics(ctx context.Context, req domain.AnalyticsRequest) (*domain.PerformanceReport, error) {
	var cached domain.PerformanceReport
	if s.tryCache(ctx, "performance", req, &cached) {
		return &cached, nil
	}

	report, err := s.engine.PerformanceMetrics(req)
	if err != nil {
		return nil, err
	}

	s.storeCache(ctx, "performance", req, report)
	return report, nil
}

// Dashboard runs all four analyses concurrently. Each operation works on
// request-local data only, so the fan-out needs no coordination beyond the
// errgroup.
func (s *AnalyticsService) Dashboard(ctx context.Context, req domain.AnalyticsRequest) (*domain.Dashboard, error) {
	dashboard := &domain.Dashboard{
		GeneratedAt: time.Now().Format(time.RFC3339),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		report, err := s.Recommendations(gctx, req)
		dashboard.Recommendations = report
		return err
	})
	g.Go(func() error {
		report, err := s.SalesForecast(gctx, req)
		dashboard.Forecast = report
		return err
	})
	g.Go(func() error {
		report, err := s.ABCAnalysis(gctx, req)
		dashboard.ABCAnalysis = report
		return err
	})
	g.Go(func() error {
		report, err := s.PerformanceMetrics(gctx, req)
		dashboard.Performance = report
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return dashboard, nil
}

// tryCache reads a cached result for deterministic requests. Requests
// without a supplied history would be recomputed from fresh random draws, so
// caching them would pin one sample forever.
func (s *AnalyticsService) tryCache(ctx context.Context, op string, req domain.AnalyticsRequest, out any) bool {
	if len(req.SalesHistory) == 0 {
		return false
	}

	hit, err := s.cache.Get(ctx, op, req, out)
	if err != nil {
		log.Warn().Err(err).Str("op", op).Msg("analytics: cache get failed")
		return false
	}
	return hit
}

func (s *AnalyticsService) storeCache(ctx context.Context, op string, req domain.AnalyticsRequest, result any) {
	if len(req.SalesHistory) == 0 {
		return
	}

	if err := s.cache.Set(ctx, op, req, result); err != nil {
		log.Warn().Err(err).Str("op", op).Msg("analytics: cache set failed")
	}
}
