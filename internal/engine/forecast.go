package engine

import (
	"time"

	"github.com/andresuchdata/inventory-analytics/backend-go/internal/domain"
)

const (
	movingAvgWindow    = 30
	forecastTrendSlope = 0.1
)

// buildForecast projects per-product demand over the next `horizon` days
// from a simple moving average of the most recent quantity values in the
// synthetic series. Products with no records in the series are omitted from
// the result rather than emitted as zero forecasts.
func buildForecast(products []domain.Product, history []domain.SalesRecord, horizon int, now time.Time, s Sampler) *domain.ForecastReport {
	// The generator emits each product's records newest-day first, so the
	// head of the slice is the most recent window.
	quantities := make(map[string][]int, len(products))
	for _, rec := range history {
		quantities[rec.ProductID] = append(quantities[rec.ProductID], rec.Quantity)
	}

	forecasts := make([]domain.ProductForecast, 0, len(products))
	for _, p := range products {
		recent, ok := quantities[p.ID]
		if !ok || len(recent) == 0 {
			continue
		}
		if len(recent) > movingAvgWindow {
			recent = recent[:movingAvgWindow]
		}

		var sum int
		for _, q := range recent {
			sum += q
		}
		avgSales := float64(sum) / float64(len(recent))

		points := make([]domain.ForecastPoint, 0, horizon)
		var totalQuantity int
		var totalRevenue float64
		for day := 0; day < horizon; day++ {
			trend := 1 + float64(day)/float64(horizon)*forecastTrendSlope
			noise := s.Noise()

			predicted := int(avgSales * trend * noise)
			if predicted < 0 {
				predicted = 0
			}
			revenue := float64(predicted) * p.UnitPrice

			points = append(points, domain.ForecastPoint{
				Date:              now.AddDate(0, 0, day+1).Format(dateLayout),
				PredictedQuantity: predicted,
				PredictedRevenue:  revenue,
			})
			totalQuantity += predicted
			totalRevenue += revenue
		}

		forecasts = append(forecasts, domain.ProductForecast{
			ProductID:             p.ID,
			ProductName:           p.Name,
			SKU:                   p.SKU,
			Forecast:              points,
			TotalPredictedSales:   totalQuantity,
			TotalPredictedRevenue: totalRevenue,
		})
	}

	return &domain.ForecastReport{
		Forecasts:   forecasts,
		GeneratedAt: now.Format(time.RFC3339),
	}
}
