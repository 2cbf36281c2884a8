// internal/api/handlers/dto.go
package handlers

import (
	"encoding/json"

	"github.com/cornexhq/cornex-connect/internal/domain"
	"github.com/shopspring/decimal"
)

// flexDecimal accepts a JSON number or numeric string and coerces anything
// unparsable to zero, per the engine's malformed-input contract.
type flexDecimal struct {
	decimal.Decimal
}

func (f *flexDecimal) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		f.Decimal = decimal.Zero
		return nil
	}

	switch v := raw.(type) {
	case float64:
		f.Decimal = decimal.NewFromFloat(v)
	case string:
		d, err := decimal.NewFromString(v)
		if err != nil {
			d = decimal.Zero
		}
		f.Decimal = d
	default:
		f.Decimal = decimal.Zero
	}

	return nil
}

// inventoryRecordDTO tolerates both the flattened and the nested upstream
// record shapes: stock fields may sit at the top level or under "inventory",
// identity and price fields at the top level or under "product". A nested
// value wins over the top-level one when present.
type inventoryRecordDTO struct {
	ProductID    string      `json:"product_id"`
	SKU          string      `json:"sku"`
	Name         string      `json:"name"`
	BasePrice    flexDecimal `json:"base_price"`
	Currency     string      `json:"currency"`
	CurrentStock *int        `json:"current_stock"`
	ReorderPoint *int        `json:"reorder_point"`
	MaxStock     *int        `json:"max_stock"`

	Inventory *struct {
		CurrentStock *int `json:"current_stock"`
		ReorderPoint *int `json:"reorder_point"`
		MaxStock     *int `json:"max_stock"`
	} `json:"inventory"`

	Product *struct {
		ID        string       `json:"id"`
		SKU       string       `json:"sku"`
		Name      string       `json:"name"`
		BasePrice *flexDecimal `json:"base_price"`
		Currency  string       `json:"currency"`
	} `json:"product"`
}

func intOrZero(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

// toDomain normalizes the DTO into the engine's flat input type. This is
// the single place the flat/nested fallback happens; business logic never
// sees the alternative shapes.
func (d inventoryRecordDTO) toDomain() domain.InventoryRecord {
	record := domain.InventoryRecord{
		ProductID:    d.ProductID,
		SKU:          d.SKU,
		Name:         d.Name,
		BasePrice:    d.BasePrice.Decimal,
		Currency:     d.Currency,
		CurrentStock: intOrZero(d.CurrentStock),
		ReorderPoint: intOrZero(d.ReorderPoint),
		MaxStock:     intOrZero(d.MaxStock),
	}

	if d.Inventory != nil {
		if d.Inventory.CurrentStock != nil {
			record.CurrentStock = *d.Inventory.CurrentStock
		}
		if d.Inventory.ReorderPoint != nil {
			record.ReorderPoint = *d.Inventory.ReorderPoint
		}
		if d.Inventory.MaxStock != nil {
			record.MaxStock = *d.Inventory.MaxStock
		}
	}

	if d.Product != nil {
		if d.Product.ID != "" {
			record.ProductID = d.Product.ID
		}
		if d.Product.SKU != "" {
			record.SKU = d.Product.SKU
		}
		if d.Product.Name != "" {
			record.Name = d.Product.Name
		}
		if d.Product.BasePrice != nil {
			record.BasePrice = d.Product.BasePrice.Decimal
		}
		if d.Product.Currency != "" {
			record.Currency = d.Product.Currency
		}
	}

	return record
}
