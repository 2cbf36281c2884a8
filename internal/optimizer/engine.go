// Package optimizer turns inventory snapshots into severity-ranked
// reorder recommendations. All functions are pure and stateless; the
// engine never mutates or retains its input.
package optimizer

import (
	"fmt"
	"math"
	"sort"

	"github.com/cornexhq/cornex-connect/internal/domain"
	"github.com/shopspring/decimal"
)

// DefaultMaxStock substitutes a missing or zero max stock ceiling.
const DefaultMaxStock = 10000

var priorityWeights = map[domain.Priority]int{
	domain.PriorityCritical: 4,
	domain.PriorityHigh:     3,
	domain.PriorityMedium:   2,
	domain.PriorityLow:      1,
}

var (
	savingsReorderFactor = decimal.NewFromFloat(0.1)
	savingsExcessFactor  = decimal.NewFromFloat(0.2)
)

// Engine computes stock classifications and recommendation rankings
type Engine struct{}

// NewEngine creates a new recommendation engine
func NewEngine() *Engine {
	return &Engine{}
}

// normalize coerces malformed numeric fields to documented defaults so
// classification never fails for a well-typed record.
func normalize(record domain.InventoryRecord) domain.InventoryRecord {
	if record.CurrentStock < 0 {
		record.CurrentStock = 0
	}
	if record.ReorderPoint < 0 {
		record.ReorderPoint = 0
	}
	if record.MaxStock <= 0 {
		record.MaxStock = DefaultMaxStock
	}
	if record.BasePrice.IsNegative() {
		record.BasePrice = decimal.Zero
	}

	return record
}

// Classify computes the stock-health classification, recommended action,
// priority tier and estimated saving for one inventory record. Rules are
// evaluated in strict precedence order; the first match wins.
func (e *Engine) Classify(record domain.InventoryRecord) domain.Recommendation {
	record = normalize(record)

	rec := domain.Recommendation{
		Record:             record,
		UtilizationPercent: float64(record.CurrentStock) / float64(record.MaxStock) * 100,
	}

	excessThreshold := float64(record.MaxStock) * 0.8
	excessTarget := int(math.Floor(float64(record.MaxStock) * 0.7))

	switch {
	case record.CurrentStock == 0:
		rec.Classification = domain.StockCritical
		rec.Priority = domain.PriorityCritical
		rec.Action = fmt.Sprintf("Immediate reorder of %d units", 2*record.ReorderPoint)
		rec.PotentialSavings = record.BasePrice.Mul(decimal.NewFromInt(int64(record.ReorderPoint)))

	case record.CurrentStock <= record.ReorderPoint:
		qty := record.MaxStock - record.CurrentStock
		rec.Classification = domain.StockReorder
		rec.Priority = domain.PriorityHigh
		rec.Action = fmt.Sprintf("Reorder %d units", qty)
		rec.PotentialSavings = record.BasePrice.
			Mul(decimal.NewFromInt(int64(qty))).
			Mul(savingsReorderFactor)

	case float64(record.CurrentStock) > excessThreshold:
		qty := record.CurrentStock - excessTarget
		rec.Classification = domain.StockExcess
		rec.Priority = domain.PriorityMedium
		rec.Action = fmt.Sprintf("Reduce stock by %d units", qty)
		rec.PotentialSavings = record.BasePrice.
			Mul(decimal.NewFromInt(int64(qty))).
			Mul(savingsExcessFactor)

	default:
		rec.Classification = domain.StockOptimal
		rec.Priority = domain.PriorityLow
		rec.Action = "No action needed"
		rec.PotentialSavings = decimal.Zero
	}

	return rec
}

// ClassifyAll maps Classify over a snapshot. Every input record yields
// exactly one recommendation; none are dropped or merged.
func (e *Engine) ClassifyAll(records []domain.InventoryRecord) []domain.Recommendation {
	recs := make([]domain.Recommendation, 0, len(records))
	for _, record := range records {
		recs = append(recs, e.Classify(record))
	}

	return recs
}

// Rank orders recommendations by descending priority weight. The sort is
// stable: equal-priority items keep their relative input order. There is
// intentionally no secondary key, so a truncated top-N view stays
// consistent with upstream ordering.
func (e *Engine) Rank(recs []domain.Recommendation) []domain.Recommendation {
	ranked := make([]domain.Recommendation, len(recs))
	copy(ranked, recs)

	sort.SliceStable(ranked, func(i, j int) bool {
		return priorityWeights[ranked[i].Priority] > priorityWeights[ranked[j].Priority]
	})

	return ranked
}

// Summarize aggregates savings and per-tier counts. An empty input yields
// zero totals, which callers must treat as a valid state.
func (e *Engine) Summarize(recs []domain.Recommendation) domain.RecommendationSummary {
	summary := domain.RecommendationSummary{
		TotalPotentialSavings: decimal.Zero,
		CountsByPriority: map[domain.Priority]int{
			domain.PriorityCritical: 0,
			domain.PriorityHigh:     0,
			domain.PriorityMedium:   0,
			domain.PriorityLow:      0,
		},
	}

	for _, rec := range recs {
		summary.TotalPotentialSavings = summary.TotalPotentialSavings.Add(rec.PotentialSavings)
		summary.CountsByPriority[rec.Priority]++
	}

	return summary
}

// Recommend runs the full classify, rank and summarize pass over a snapshot.
func (e *Engine) Recommend(records []domain.InventoryRecord) ([]domain.Recommendation, domain.RecommendationSummary) {
	ranked := e.Rank(e.ClassifyAll(records))

	return ranked, e.Summarize(ranked)
}
