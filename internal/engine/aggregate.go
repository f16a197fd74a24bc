package engine

import (
	"github.com/andresuchdata/inventory-analytics/backend-go/internal/domain"
)

// ProductAggregate sums a product's sales over the analysis window.
type ProductAggregate struct {
	TotalQuantity int
	TotalRevenue  float64
	AvgDailySales float64
}

// ProductGroup is the per-product rollup used for ranking. ProductName and
// SKU are taken from the first record seen for the product.
type ProductGroup struct {
	ProductID   string
	ProductName string
	SKU         string
	Quantity    int
	Revenue     float64
}

// CategoryGroup is the per-category rollup.
type CategoryGroup struct {
	CategoryID string
	Quantity   int
	Revenue    float64
}

// AggregateByProduct sums quantity and revenue per product and derives the
// average daily sales over the caller-supplied window. The divisor is the
// full window, not the number of days with records, so sparse histories
// still average over the whole range.
//
// The map holds entries only for products with at least one record; a
// missing key means "no sales data", which downstream treats differently
// from an all-zero aggregate.
func AggregateByProduct(history []domain.SalesRecord, timeRange int) map[string]ProductAggregate {
	if timeRange <= 0 {
		timeRange = 1
	}

	aggs := make(map[string]ProductAggregate, len(history))
	for _, rec := range history {
		agg := aggs[rec.ProductID]
		agg.TotalQuantity += rec.Quantity
		agg.TotalRevenue += rec.Revenue
		aggs[rec.ProductID] = agg
	}
	for id, agg := range aggs {
		agg.AvgDailySales = float64(agg.TotalQuantity) / float64(timeRange)
		aggs[id] = agg
	}

	return aggs
}

// GroupByProduct rolls the history up per product, preserving first-seen
// order so that revenue ties downstream resolve deterministically.
func GroupByProduct(history []domain.SalesRecord) []ProductGroup {
	index := make(map[string]int, len(history))
	groups := make([]ProductGroup, 0)

	for _, rec := range history {
		i, ok := index[rec.ProductID]
		if !ok {
			i = len(groups)
			index[rec.ProductID] = i
			groups = append(groups, ProductGroup{
				ProductID:   rec.ProductID,
				ProductName: rec.ProductName,
				SKU:         rec.SKU,
			})
		}
		groups[i].Quantity += rec.Quantity
		groups[i].Revenue += rec.Revenue
	}

	return groups
}

// GroupByCategory rolls the history up per category in first-seen order.
func GroupByCategory(history []domain.SalesRecord) []CategoryGroup {
	index := make(map[string]int, len(history))
	groups := make([]CategoryGroup, 0)

	for _, rec := range history {
		i, ok := index[rec.CategoryID]
		if !ok {
			i = len(groups)
			index[rec.CategoryID] = i
			groups = append(groups, CategoryGroup{CategoryID: rec.CategoryID})
		}
		groups[i].Quantity += rec.Quantity
		groups[i].Revenue += rec.Revenue
	}

	return groups
}

// normalizeHistory drops records whose productId has no matching product and
// backfills empty denormalized fields from the catalog. Revenue is trusted
// as given and never re-derived.
func normalizeHistory(products []domain.Product, history []domain.SalesRecord) []domain.SalesRecord {
	byID := make(map[string]domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	normalized := make([]domain.SalesRecord, 0, len(history))
	for _, rec := range history {
		p, ok := byID[rec.ProductID]
		if !ok {
			continue
		}
		if rec.ProductName == "" {
			rec.ProductName = p.Name
		}
		if rec.SKU == "" {
			rec.SKU = p.SKU
		}
		if rec.CategoryID == "" {
			rec.CategoryID = p.CategoryID
		}
		if rec.UnitPrice == 0 {
			rec.UnitPrice = p.UnitPrice
		}
		normalized = append(normalized, rec)
	}

	return normalized
}
