package handlers

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInventoryRecordDTO_FlatShape(t *testing.T) {
	payload := `{
		"product_id": "p1",
		"sku": "SKU-1",
		"name": "Widget",
		"base_price": 12.5,
		"currency": "USD",
		"current_stock": 5,
		"reorder_point": 10,
		"max_stock": 100
	}`

	var dto inventoryRecordDTO
	require.NoError(t, json.Unmarshal([]byte(payload), &dto))

	record := dto.toDomain()
	assert.Equal(t, "p1", record.ProductID)
	assert.Equal(t, "SKU-1", record.SKU)
	assert.Equal(t, 5, record.CurrentStock)
	assert.Equal(t, 10, record.ReorderPoint)
	assert.Equal(t, 100, record.MaxStock)
	assert.True(t, record.BasePrice.Equal(decimal.NewFromFloat(12.5)))
}

func TestInventoryRecordDTO_NestedShapeWins(t *testing.T) {
	payload := `{
		"sku": "outer",
		"current_stock": 1,
		"base_price": "1",
		"inventory": {"current_stock": 7, "reorder_point": 3},
		"product": {"sku": "inner", "name": "Inner", "base_price": "9.99"}
	}`

	var dto inventoryRecordDTO
	require.NoError(t, json.Unmarshal([]byte(payload), &dto))

	record := dto.toDomain()
	assert.Equal(t, "inner", record.SKU)
	assert.Equal(t, "Inner", record.Name)
	assert.Equal(t, 7, record.CurrentStock)
	assert.Equal(t, 3, record.ReorderPoint)
	// max_stock absent everywhere stays zero here; the engine substitutes its default
	assert.Equal(t, 0, record.MaxStock)
	assert.True(t, record.BasePrice.Equal(decimal.NewFromFloat(9.99)))
}

func TestInventoryRecordDTO_TopLevelFallback(t *testing.T) {
	payload := `{
		"sku": "outer",
		"current_stock": 4,
		"base_price": "2.50",
		"inventory": {"reorder_point": 9},
		"product": {}
	}`

	var dto inventoryRecordDTO
	require.NoError(t, json.Unmarshal([]byte(payload), &dto))

	record := dto.toDomain()
	assert.Equal(t, "outer", record.SKU)
	assert.Equal(t, 4, record.CurrentStock)
	assert.Equal(t, 9, record.ReorderPoint)
	assert.True(t, record.BasePrice.Equal(decimal.NewFromFloat(2.5)))
}

func TestFlexDecimal_UnparsableCoercesToZero(t *testing.T) {
	var dto inventoryRecordDTO
	require.NoError(t, json.Unmarshal([]byte(`{"base_price": "not a number"}`), &dto))
	assert.True(t, dto.BasePrice.IsZero())

	require.NoError(t, json.Unmarshal([]byte(`{"base_price": null}`), &dto))
	assert.True(t, dto.BasePrice.IsZero())

	require.NoError(t, json.Unmarshal([]byte(`{"base_price": {"weird": true}}`), &dto))
	assert.True(t, dto.BasePrice.IsZero())
}
