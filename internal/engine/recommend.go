package engine

import (
	"math"
	"time"

	"github.com/andresuchdata/inventory-analytics/backend-go/internal/domain"
)

const (
	// Floor applied to average daily sales before dividing, which both
	// avoids division by zero and caps the reported runway.
	minDailySalesRate = 0.1

	reorderNowHorizon  = 7.0
	reorderSoonHorizon = 14.0

	reorderNowSupplyDays  = 30
	reorderSoonSupplyDays = 20

	fastMovingVelocity   = 2.0
	mediumMovingVelocity = 0.5
)

// buildRecommendations derives reorder advice for every product from its
// current stock and the aggregated sales history.
func buildRecommendations(products []domain.Product, history []domain.SalesRecord, timeRange int, now time.Time) *domain.RecommendationReport {
	aggs := AggregateByProduct(history, timeRange)

	recommendations := make([]domain.Recommendation, 0, len(products))
	for _, p := range products {
		agg, ok := aggs[p.ID]
		if !ok {
			// No sales data at all; distinct from merely slow sales.
			recommendations = append(recommendations, domain.Recommendation{
				ProductID:         p.ID,
				ProductName:       p.Name,
				SKU:               p.SKU,
				CurrentStock:      p.Quantity,
				DaysUntilStockout: domain.StockoutDays(math.Inf(1)),
				Urgency:           domain.UrgencyLow,
				Action:            domain.ActionNoData,
				Performance:       domain.PerformanceNoData,
			})
			continue
		}

		avgDailySales := agg.AvgDailySales
		daysUntilStockout := float64(p.Quantity) / math.Max(avgDailySales, minDailySalesRate)

		var urgency, action string
		var recommendedQuantity int
		switch {
		case daysUntilStockout < reorderNowHorizon:
			urgency = domain.UrgencyHigh
			action = domain.ActionReorderNow
			recommendedQuantity = int(avgDailySales * reorderNowSupplyDays)
		case daysUntilStockout < reorderSoonHorizon:
			urgency = domain.UrgencyMedium
			action = domain.ActionReorderSoon
			recommendedQuantity = int(avgDailySales * reorderSoonSupplyDays)
		default:
			urgency = domain.UrgencyLow
			action = domain.ActionMonitor
		}

		velocity := avgDailySales
		var performance string
		switch {
		case velocity > fastMovingVelocity:
			performance = domain.PerformanceFastMoving
		case velocity > mediumMovingVelocity:
			performance = domain.PerformanceMediumMoving
		default:
			performance = domain.PerformanceSlowMoving
		}

		recommendations = append(recommendations, domain.Recommendation{
			ProductID:           p.ID,
			ProductName:         p.Name,
			SKU:                 p.SKU,
			CurrentStock:        p.Quantity,
			AvgDailySales:       round2(avgDailySales),
			DaysUntilStockout:   domain.StockoutDays(round2(daysUntilStockout)),
			Urgency:             urgency,
			Action:              action,
			RecommendedQuantity: recommendedQuantity,
			Performance:         performance,
			TotalRevenue:        round2(agg.TotalRevenue),
			Velocity:            round2(velocity),
		})
	}

	summary := domain.RecommendationSummary{
		TotalProducts: len(products),
		AnalysisDate:  now.Format(time.RFC3339),
	}
	for _, rec := range recommendations {
		switch rec.Urgency {
		case domain.UrgencyHigh:
			summary.HighUrgency++
		case domain.UrgencyMedium:
			summary.MediumUrgency++
		case domain.UrgencyLow:
			summary.LowUrgency++
		}
	}

	return &domain.RecommendationReport{
		Recommendations: recommendations,
		Summary:         summary,
	}
}
