package engine

import (
	"fmt"
	"sort"
	"time"

	"github.com/andresuchdata/inventory-analytics/backend-go/internal/domain"
)

// buildPerformance computes catalog-wide totals, per-category revenue shares
// and the top products by revenue over the analysis window.
func buildPerformance(products []domain.Product, history []domain.SalesRecord, timeRange, topN int, now time.Time) *domain.PerformanceReport {
	normalized := normalizeHistory(products, history)

	var totalRevenue float64
	var totalQuantity int
	for _, rec := range normalized {
		totalRevenue += rec.Revenue
		totalQuantity += rec.Quantity
	}

	var avgOrderValue float64
	if len(normalized) > 0 {
		avgOrderValue = totalRevenue / float64(len(normalized))
	}

	// Stock value comes from current stock levels, independent of the
	// sales history.
	var totalStockValue float64
	for _, p := range products {
		totalStockValue += float64(p.Quantity) * p.UnitPrice
	}

	categories := GroupByCategory(normalized)
	categoryPerformance := make([]domain.CategoryPerformance, 0, len(categories))
	for _, g := range categories {
		var share float64
		if totalRevenue > 0 {
			share = g.Revenue / totalRevenue * 100
		}
		categoryPerformance = append(categoryPerformance, domain.CategoryPerformance{
			CategoryID:    g.CategoryID,
			TotalRevenue:  round2(g.Revenue),
			TotalQuantity: g.Quantity,
			RevenueShare:  round2(share),
		})
	}

	groups := GroupByProduct(normalized)
	// Stable sort keeps grouping order for revenue ties.
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Revenue > groups[j].Revenue
	})
	if len(groups) > topN {
		groups = groups[:topN]
	}

	topProducts := make([]domain.TopProduct, 0, len(groups))
	for _, g := range groups {
		topProducts = append(topProducts, domain.TopProduct{
			ProductID:   g.ProductID,
			ProductName: g.ProductName,
			Revenue:     round2(g.Revenue),
			Quantity:    g.Quantity,
		})
	}

	return &domain.PerformanceReport{
		OverallMetrics: domain.OverallMetrics{
			TotalRevenue:      round2(totalRevenue),
			TotalQuantitySold: totalQuantity,
			AverageOrderValue: round2(avgOrderValue),
			TotalStockValue:   round2(totalStockValue),
			NumberOfProducts:  len(products),
			AnalysisPeriod:    fmt.Sprintf("%d days", timeRange),
		},
		CategoryPerformance: categoryPerformance,
		TopProducts:         topProducts,
		GeneratedAt:         now.Format(time.RFC3339),
	}
}
