// internal/repository/inventory_repository.go
package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/cornexhq/cornex-connect/internal/domain"
	"github.com/jmoiron/sqlx"
)

// InventoryFilter narrows the inventory snapshot query
type InventoryFilter struct {
	Warehouse string
	Category  string
}

type InventoryRepository interface {
	// GetSnapshot returns the inventory joined with its products, in stable
	// SKU order. The snapshot feeds the recommendation engine unmodified.
	GetSnapshot(ctx context.Context, filter InventoryFilter) ([]domain.InventoryRecord, error)
	ListWarehouses(ctx context.Context) ([]string, error)
}

type inventoryRepository struct {
	db *sqlx.DB
}

func NewInventoryRepository(db *sqlx.DB) InventoryRepository {
	return &inventoryRepository{db: db}
}

func (r *inventoryRepository) GetSnapshot(ctx context.Context, filter InventoryFilter) ([]domain.InventoryRecord, error) {
	query := `
        SELECT
            i.product_id,
            p.sku,
            p.name,
            p.base_price,
            p.currency,
            i.current_stock,
            i.reorder_point,
            i.max_stock,
            i.warehouse,
            i.updated_at
        FROM inventory i
        JOIN products p ON p.id = i.product_id
        WHERE 1=1
    `

	var args []interface{}
	var conditions []string
	argCounter := 1

	if filter.Warehouse != "" {
		conditions = append(conditions, fmt.Sprintf("i.warehouse = $%d", argCounter))
		args = append(args, filter.Warehouse)
		argCounter++
	}

	if filter.Category != "" {
		conditions = append(conditions, fmt.Sprintf("p.category = $%d", argCounter))
		args = append(args, filter.Category)
		argCounter++
	}

	if len(conditions) > 0 {
		query += " AND " + strings.Join(conditions, " AND ")
	}

	query += " ORDER BY p.sku"

	var records []domain.InventoryRecord
	if err := r.db.SelectContext(ctx, &records, query, args...); err != nil {
		return nil, fmt.Errorf("error getting inventory snapshot: %w", err)
	}

	return records, nil
}

func (r *inventoryRepository) ListWarehouses(ctx context.Context) ([]string, error) {
	query := `
        SELECT DISTINCT warehouse
        FROM inventory
        ORDER BY warehouse
    `

	var warehouses []string
	if err := r.db.SelectContext(ctx, &warehouses, query); err != nil {
		return nil, fmt.Errorf("error listing warehouses: %w", err)
	}

	return warehouses, nil
}
