package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andresuchdata/inventory-analytics/backend-go/internal/domain"
)

func TestAggregateByProduct(t *testing.T) {
	history := []domain.SalesRecord{
		salesOn("p1", 3, "2024-05-14", 30),
		salesOn("p1", 2, "2024-05-13", 20),
		salesOn("p2", 1, "2024-05-14", 5),
		// Duplicate product/date pairs are summed, not deduplicated.
		salesOn("p2", 1, "2024-05-14", 5),
	}

	aggs := AggregateByProduct(history, 10)

	require.Len(t, aggs, 2)
	assert.Equal(t, 5, aggs["p1"].TotalQuantity)
	assert.Equal(t, 50.0, aggs["p1"].TotalRevenue)
	// Divided by the full window, not the two days with records.
	assert.Equal(t, 0.5, aggs["p1"].AvgDailySales)
	assert.Equal(t, 2, aggs["p2"].TotalQuantity)

	_, ok := aggs["p3"]
	assert.False(t, ok, "products without records must be absent, not zero-valued")
}

func TestAggregateByProductEmptyHistory(t *testing.T) {
	aggs := AggregateByProduct(nil, 30)
	assert.Empty(t, aggs)
}

func TestGroupByProductFirstSeenOrder(t *testing.T) {
	history := []domain.SalesRecord{
		{ProductID: "p2", ProductName: "Two", SKU: "S2", Quantity: 1, Revenue: 10},
		{ProductID: "p1", ProductName: "One", SKU: "S1", Quantity: 2, Revenue: 20},
		{ProductID: "p2", ProductName: "Two (renamed)", SKU: "S2-alt", Quantity: 3, Revenue: 30},
	}

	groups := GroupByProduct(history)

	require.Len(t, groups, 2)
	assert.Equal(t, "p2", groups[0].ProductID)
	// Representative name/SKU come from the first record seen.
	assert.Equal(t, "Two", groups[0].ProductName)
	assert.Equal(t, "S2", groups[0].SKU)
	assert.Equal(t, 4, groups[0].Quantity)
	assert.Equal(t, 40.0, groups[0].Revenue)
	assert.Equal(t, "p1", groups[1].ProductID)
}

func TestGroupByCategory(t *testing.T) {
	history := []domain.SalesRecord{
		{ProductID: "p1", CategoryID: "catA", Quantity: 2, Revenue: 20},
		{ProductID: "p2", CategoryID: "catB", Quantity: 1, Revenue: 5},
		{ProductID: "p3", CategoryID: "catA", Quantity: 3, Revenue: 15},
	}

	groups := GroupByCategory(history)

	require.Len(t, groups, 2)
	assert.Equal(t, "catA", groups[0].CategoryID)
	assert.Equal(t, 5, groups[0].Quantity)
	assert.Equal(t, 35.0, groups[0].Revenue)
	assert.Equal(t, "catB", groups[1].CategoryID)
}

func TestNormalizeHistory(t *testing.T) {
	products := []domain.Product{testProduct("p1", 10, 2.5)}
	history := []domain.SalesRecord{
		salesOn("p1", 2, "2024-05-14", 5),
		salesOn("ghost", 9, "2024-05-14", 900), // unknown product
	}

	normalized := normalizeHistory(products, history)

	require.Len(t, normalized, 1)
	rec := normalized[0]
	assert.Equal(t, "p1", rec.ProductID)
	// Denormalized fields backfilled from the catalog.
	assert.Equal(t, "Product p1", rec.ProductName)
	assert.Equal(t, "SKU-p1", rec.SKU)
	assert.Equal(t, "cat-1", rec.CategoryID)
	assert.Equal(t, 2.5, rec.UnitPrice)
	// Revenue trusted as given, never re-derived.
	assert.Equal(t, 5.0, rec.Revenue)
}
