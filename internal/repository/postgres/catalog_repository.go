package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/andresuchdata/inventory-analytics/backend-go/internal/domain"
)

// CatalogRepository loads products and sales history for the offline CLI.
// The analytics engine itself never touches the database; this is a
// convenience data source that materializes inputs before the engine runs.
type CatalogRepository struct {
	db *sqlx.DB
}

func NewCatalogRepository(db *sqlx.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// ListProducts returns the full product catalog.
func (r *CatalogRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	const query = `
		SELECT id, name, sku, category_id, quantity, unit_price, reorder_level
		FROM products
		ORDER BY id`

	products := make([]domain.Product, 0)
	if err := r.db.SelectContext(ctx, &products, query); err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}
	return products, nil
}

// ListSales returns sales records dated on or after `since`, newest first.
// Dates are stored as calendar days (no time component).
func (r *CatalogRepository) ListSales(ctx context.Context, since time.Time) ([]domain.SalesRecord, error) {
	const query = `
		SELECT s.product_id,
		       p.name        AS product_name,
		       p.sku         AS sku,
		       p.category_id AS category_id,
		       s.quantity,
		       to_char(s.date, 'YYYY-MM-DD') AS date,
		       s.revenue,
		       p.unit_price  AS unit_price
		FROM sales s
		JOIN products p ON p.id = s.product_id
		WHERE s.date >= $1
		ORDER BY s.date DESC, s.product_id`

	records := make([]domain.SalesRecord, 0)
	if err := r.db.SelectContext(ctx, &records, query, since.Format("2006-01-02")); err != nil {
		return nil, fmt.Errorf("failed to load sales history: %w", err)
	}
	return records, nil
}
