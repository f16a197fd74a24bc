package engine

import (
	"time"

	"github.com/andresuchdata/inventory-analytics/backend-go/internal/domain"
)

const (
	dateLayout = "2006-01-02"

	weekdayFactor = 1.2
	weekendFactor = 0.8
	trendSlope    = 0.5
)

// GenerateHistory fabricates a plausible sales history for the product set:
// one candidate record per product per day over the last `days` days.
// Zero-quantity days are omitted entirely. Each emitted record carries the
// product's denormalized name, SKU and category, and revenue derived from
// the unit price.
//
// The trend multiplier grows with the day offset, so days further in the
// past are weighted more heavily. Existing consumers depend on this shape of
// the series, so it must not be flipped to favor recency.
func GenerateHistory(products []domain.Product, days int, now time.Time, s Sampler) []domain.SalesRecord {
	if days <= 0 {
		return nil
	}

	records := make([]domain.SalesRecord, 0, len(products)*days)
	for _, p := range products {
		for day := 0; day < days; day++ {
			date := now.AddDate(0, 0, -day)

			base := s.BaseSales()

			weekday := weekendFactor
			if wd := date.Weekday(); wd != time.Saturday && wd != time.Sunday {
				weekday = weekdayFactor
			}
			trend := 1 + float64(day)/float64(days)*trendSlope

			quantity := int(float64(base) * weekday * trend)
			if quantity <= 0 {
				continue
			}

			records = append(records, domain.SalesRecord{
				ProductID:   p.ID,
				ProductName: p.Name,
				SKU:         p.SKU,
				CategoryID:  p.CategoryID,
				Quantity:    quantity,
				Date:        date.Format(dateLayout),
				Revenue:     float64(quantity) * p.UnitPrice,
				UnitPrice:   p.UnitPrice,
			})
		}
	}

	return records
}
