package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andresuchdata/inventory-analytics/backend-go/internal/domain"
)

func TestGenerateHistoryQuantities(t *testing.T) {
	product := testProduct("p1", 10, 2.0)
	s := &fakeSampler{base: []int{5}}

	records := GenerateHistory([]domain.Product{product}, 10, testNow, s)

	// Constant positive base sales means every day emits a record.
	require.Len(t, records, 10)

	// Day 0 is Wednesday 2024-05-15: weekday factor 1.2, trend factor 1.
	day0 := records[0]
	assert.Equal(t, "2024-05-15", day0.Date)
	assert.Equal(t, 6, day0.Quantity) // floor(5 * 1.2 * 1.0)
	assert.Equal(t, 12.0, day0.Revenue)
	assert.Equal(t, "p1", day0.ProductID)
	assert.Equal(t, "Product p1", day0.ProductName)
	assert.Equal(t, "SKU-p1", day0.SKU)
	assert.Equal(t, "cat-1", day0.CategoryID)
	assert.Equal(t, 2.0, day0.UnitPrice)

	// Day 3 is Sunday 2024-05-12: weekend factor 0.8, trend 1.15.
	day3 := records[3]
	assert.Equal(t, "2024-05-12", day3.Date)
	assert.Equal(t, 4, day3.Quantity) // floor(5 * 0.8 * 1.15) = floor(4.6)

	// Day 9 is Monday 2024-05-06: the trend multiplier grows with the day
	// offset, so this record outsells day 0.
	day9 := records[9]
	assert.Equal(t, "2024-05-06", day9.Date)
	assert.Equal(t, 8, day9.Quantity) // floor(5 * 1.2 * 1.45) = floor(8.7)
	assert.Greater(t, day9.Quantity, day0.Quantity)
}

func TestGenerateHistoryOmitsZeroQuantityDays(t *testing.T) {
	product := testProduct("p1", 10, 2.0)
	s := &fakeSampler{base: []int{0, 5}} // alternating zero-sales days

	records := GenerateHistory([]domain.Product{product}, 10, testNow, s)

	require.Len(t, records, 5)
	for _, rec := range records {
		assert.Positive(t, rec.Quantity)
	}
}

func TestGenerateHistoryNonPositiveDays(t *testing.T) {
	product := testProduct("p1", 10, 2.0)

	assert.Empty(t, GenerateHistory([]domain.Product{product}, 0, testNow, &fakeSampler{base: []int{5}}))
	assert.Empty(t, GenerateHistory([]domain.Product{product}, -3, testNow, &fakeSampler{base: []int{5}}))
}

func TestGenerateHistoryPerProductNewestFirst(t *testing.T) {
	products := []domain.Product{testProduct("p1", 1, 1), testProduct("p2", 1, 1)}
	s := &fakeSampler{base: []int{5}}

	records := GenerateHistory(products, 3, testNow, s)

	require.Len(t, records, 6)
	assert.Equal(t, "p1", records[0].ProductID)
	assert.Equal(t, "p2", records[3].ProductID)

	for _, block := range [][]domain.SalesRecord{records[:3], records[3:]} {
		for i := 1; i < len(block); i++ {
			prev, errPrev := time.Parse(dateLayout, block[i-1].Date)
			require.NoError(t, errPrev)
			cur, errCur := time.Parse(dateLayout, block[i].Date)
			require.NoError(t, errCur)
			assert.True(t, cur.Before(prev), "records should run newest to oldest")
		}
	}
}

func TestSamplerSeedReproducibility(t *testing.T) {
	a := NewSampler(7)
	b := NewSampler(7)

	for i := 0; i < 100; i++ {
		assert.Equal(t, a.BaseSales(), b.BaseSales())
		assert.Equal(t, a.Noise(), b.Noise())
	}
}

func TestSamplerRanges(t *testing.T) {
	s := NewSampler(99)

	for i := 0; i < 1000; i++ {
		base := s.BaseSales()
		assert.GreaterOrEqual(t, base, 0)
		assert.LessOrEqual(t, base, 10)

		noise := s.Noise()
		assert.GreaterOrEqual(t, noise, 0.8)
		assert.Less(t, noise, 1.2)
	}
}
