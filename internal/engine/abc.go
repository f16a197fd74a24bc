package engine

import (
	"sort"
	"time"

	"github.com/andresuchdata/inventory-analytics/backend-go/internal/domain"
)

const (
	tierACumulativeShare = 80.0
	tierBCumulativeShare = 95.0
)

// buildABC ranks products by total revenue and partitions them into A/B/C
// tiers by cumulative revenue share. Products with no records in the history
// do not participate in the ranking.
func buildABC(products []domain.Product, history []domain.SalesRecord, now time.Time) *domain.ABCReport {
	groups := GroupByProduct(normalizeHistory(products, history))

	sort.Slice(groups, func(i, j int) bool {
		if groups[i].Revenue != groups[j].Revenue {
			return groups[i].Revenue > groups[j].Revenue
		}
		return groups[i].ProductID < groups[j].ProductID
	})

	var totalRevenue float64
	for _, g := range groups {
		totalRevenue += g.Revenue
	}

	analysis := make([]domain.ABCEntry, 0, len(groups))
	summary := domain.ABCSummary{
		TotalProducts: len(groups),
		TotalRevenue:  round2(totalRevenue),
		AnalysisDate:  now.Format(time.RFC3339),
	}

	var cumulative float64
	for _, g := range groups {
		cumulative += g.Revenue

		var percentage float64
		if totalRevenue > 0 {
			percentage = cumulative / totalRevenue * 100
		}

		var tier string
		switch {
		case percentage <= tierACumulativeShare:
			tier = domain.ABCTierA
			summary.CategoryA++
		case percentage <= tierBCumulativeShare:
			tier = domain.ABCTierB
			summary.CategoryB++
		default:
			tier = domain.ABCTierC
			summary.CategoryC++
		}

		analysis = append(analysis, domain.ABCEntry{
			ProductID:         g.ProductID,
			ProductName:       g.ProductName,
			SKU:               g.SKU,
			Revenue:           round2(g.Revenue),
			Quantity:          g.Quantity,
			RevenuePercentage: round2(percentage),
			Category:          tier,
			Description:       domain.ABCTierDescription(tier),
		})
	}

	return &domain.ABCReport{
		Analysis: analysis,
		Summary:  summary,
	}
}
