// internal/domain/models.go
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents a catalog product
type Product struct {
	ID        string          `json:"id" db:"id"`
	SKU       string          `json:"sku" db:"sku"`
	Name      string          `json:"name" db:"name"`
	Category  string          `json:"category" db:"category"`
	BasePrice decimal.Decimal `json:"base_price" db:"base_price"`
	Currency  string          `json:"currency" db:"currency"`
	ImageURL  string          `json:"image_url" db:"image_url"`
	CreatedAt time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt time.Time       `json:"updated_at" db:"updated_at"`
}

// InventoryRecord is a read-only snapshot of one product's stock position.
// It is the input to the recommendation engine and is never mutated.
type InventoryRecord struct {
	ProductID    string          `json:"product_id" db:"product_id"`
	SKU          string          `json:"sku" db:"sku"`
	Name         string          `json:"name" db:"name"`
	BasePrice    decimal.Decimal `json:"base_price" db:"base_price"`
	Currency     string          `json:"currency" db:"currency"`
	CurrentStock int             `json:"current_stock" db:"current_stock"`
	ReorderPoint int             `json:"reorder_point" db:"reorder_point"`
	MaxStock     int             `json:"max_stock" db:"max_stock"`
	Warehouse    string          `json:"warehouse" db:"warehouse"`
	UpdatedAt    time.Time       `json:"updated_at" db:"updated_at"`
}

// StockClassification buckets an inventory record by stock health
type StockClassification string

const (
	StockCritical StockClassification = "critical"
	StockReorder  StockClassification = "reorder"
	StockExcess   StockClassification = "excess"
	StockOptimal  StockClassification = "optimal"
)

// Priority is the coarse severity tier used to order recommendations
type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
)

// Recommendation is the derived, ephemeral output of the engine for a
// single inventory record. Computed fresh per request, never persisted.
type Recommendation struct {
	Record             InventoryRecord     `json:"record"`
	Classification     StockClassification `json:"classification"`
	Action             string              `json:"action"`
	Priority           Priority            `json:"priority"`
	PotentialSavings   decimal.Decimal     `json:"potential_savings"`
	UtilizationPercent float64             `json:"utilization_percent"`
}

// RecommendationSummary aggregates a ranked recommendation list
type RecommendationSummary struct {
	TotalPotentialSavings decimal.Decimal  `json:"total_potential_savings"`
	CountsByPriority      map[Priority]int `json:"counts_by_priority"`
}

// ScheduleEntry represents one scheduled production run
type ScheduleEntry struct {
	ID              string           `json:"id" db:"id"`
	ProductID       string           `json:"product_id" db:"product_id"`
	ProductName     string           `json:"product_name" db:"product_name"`
	ScheduledDate   time.Time        `json:"scheduled_date" db:"scheduled_date"`
	Status          ScheduleStatus   `json:"status" db:"status"`
	ProductionLine  string           `json:"production_line" db:"production_line"`
	PlannedQuantity int              `json:"planned_quantity" db:"planned_quantity"`
	ActualQuantity  int              `json:"actual_quantity" db:"actual_quantity"`
	Priority        SchedulePriority `json:"priority" db:"priority"`
	Notes           string           `json:"notes" db:"notes"`
	CreatedAt       time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at" db:"updated_at"`
}

// CalendarDay is the derived per-day view of the schedule grid. Dots holds
// the indicator classes for at most the first two entries of the day;
// Entries keeps the full untruncated list for the day detail panel.
type CalendarDay struct {
	Date     string          `json:"date"`
	Entries  []ScheduleEntry `json:"entries"`
	Dots     []string        `json:"dots"`
	Overflow int             `json:"overflow"`
}

// Distributor represents a distribution partner shown on the country map
type Distributor struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Country   string    `json:"country" db:"country"`
	City      string    `json:"city" db:"city"`
	Latitude  float64   `json:"latitude" db:"latitude"`
	Longitude float64   `json:"longitude" db:"longitude"`
	Phone     string    `json:"phone" db:"phone"`
	Email     string    `json:"email" db:"email"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Achievement represents one gamification badge and its unlock state
type Achievement struct {
	ID          string     `json:"id" db:"id"`
	UserID      string     `json:"user_id" db:"user_id"`
	Code        string     `json:"code" db:"code"`
	Title       string     `json:"title" db:"title"`
	Description string     `json:"description" db:"description"`
	Points      int        `json:"points" db:"points"`
	UnlockedAt  *time.Time `json:"unlocked_at" db:"unlocked_at"`
}

// AuditEntry records a user-visible change for the audit trail page
type AuditEntry struct {
	ID         int64     `json:"id" db:"id"`
	Actor      string    `json:"actor" db:"actor"`
	Action     string    `json:"action" db:"action"`
	EntityType string    `json:"entity_type" db:"entity_type"`
	EntityID   string    `json:"entity_id" db:"entity_id"`
	Detail     string    `json:"detail" db:"detail"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// ProductFilter represents filters for catalog queries
type ProductFilter struct {
	Category string `json:"category"`
	Search   string `json:"search"`
	Page     int    `json:"page"`
	PageSize int    `json:"page_size"`
}

// AuditFilter represents filters for audit trail queries
type AuditFilter struct {
	EntityType string `json:"entity_type"`
	Page       int    `json:"page"`
	PageSize   int    `json:"page_size"`
}
