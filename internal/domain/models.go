// backend-go/internal/domain/models.go
package domain

// Product represents a catalog item as supplied by the caller. It is
// read-only for the duration of a request.
type Product struct {
	ID           string  `json:"id" db:"id"`
	Name         string  `json:"name" db:"name"`
	SKU          string  `json:"sku" db:"sku"`
	CategoryID   string  `json:"categoryId" db:"category_id"`
	Quantity     int     `json:"quantity" db:"quantity"`
	UnitPrice    float64 `json:"unitPrice" db:"unit_price"`
	ReorderLevel int     `json:"reorderLevel" db:"reorder_level"`
}

// SalesRecord represents one sale of a product on a calendar day. Multiple
// records may share a productId and/or date; they are summed, never
// deduplicated. The denormalized product fields are filled in by the
// synthetic generator and may be empty on caller-supplied records.
type SalesRecord struct {
	ProductID   string  `json:"productId" db:"product_id"`
	ProductName string  `json:"productName,omitempty" db:"product_name"`
	SKU         string  `json:"sku,omitempty" db:"sku"`
	CategoryID  string  `json:"categoryId,omitempty" db:"category_id"`
	Quantity    int     `json:"quantity" db:"quantity"`
	Date        string  `json:"date" db:"date"`
	Revenue     float64 `json:"revenue" db:"revenue"`
	UnitPrice   float64 `json:"unitPrice,omitempty" db:"unit_price"`
}

// AnalyticsRequest is the common input for all analytics operations.
// SalesHistory is optional; when empty a synthetic history is generated over
// TimeRange days. TimeRange defaults to 30 when not positive.
type AnalyticsRequest struct {
	Products     []Product     `json:"products" binding:"required"`
	SalesHistory []SalesRecord `json:"salesHistory"`
	TimeRange    int           `json:"timeRange"`
}
