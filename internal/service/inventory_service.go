package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/cornexhq/cornex-connect/internal/cache"
	"github.com/cornexhq/cornex-connect/internal/domain"
	"github.com/cornexhq/cornex-connect/internal/optimizer"
	"github.com/cornexhq/cornex-connect/internal/repository"
	"github.com/rs/zerolog/log"
)

type InventoryService struct {
	repo   repository.InventoryRepository
	cache  cache.RecommendationCache
	engine *optimizer.Engine
}

func NewInventoryService(repo repository.InventoryRepository, cacheImpl cache.RecommendationCache) *InventoryService {
	if cacheImpl == nil {
		cacheImpl = cache.NewNoopRecommendationCache()
	}
	return &InventoryService{
		repo:   repo,
		cache:  cacheImpl,
		engine: optimizer.NewEngine(),
	}
}

func (s *InventoryService) GetSnapshot(ctx context.Context, filter repository.InventoryFilter) ([]domain.InventoryRecord, error) {
	return s.repo.GetSnapshot(ctx, filter)
}

func (s *InventoryService) ListWarehouses(ctx context.Context) ([]string, error) {
	return s.repo.ListWarehouses(ctx)
}

// GetRecommendations fetches the inventory snapshot and runs the full
// classify/rank/summarize pass. Results are cached briefly per filter;
// they are never persisted.
func (s *InventoryService) GetRecommendations(ctx context.Context, filter repository.InventoryFilter) (*cache.RecommendationResult, error) {
	if result, ok, err := s.cache.Get(ctx, filter); err == nil && ok {
		return result, nil
	} else if err != nil {
		log.Warn().Err(err).Msg("inventory: cache get recommendations failed")
	}

	records, err := s.repo.GetSnapshot(ctx, filter)
	if err != nil {
		return nil, err
	}

	ranked, summary := s.engine.Recommend(records)
	result := &cache.RecommendationResult{
		Recommendations: ranked,
		Summary:         summary,
	}

	if err := s.cache.Set(ctx, filter, result); err != nil {
		log.Warn().Err(err).Msg("inventory: cache set recommendations failed")
	}

	return result, nil
}

// WriteRecommendationsCSV streams the ranked recommendation list as CSV.
func (s *InventoryService) WriteRecommendationsCSV(w io.Writer, recs []domain.Recommendation) error {
	writer := csv.NewWriter(w)

	header := []string{
		"sku", "name", "classification", "priority", "action",
		"current_stock", "reorder_point", "max_stock",
		"utilization_percent", "potential_savings", "currency",
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("error writing csv header: %w", err)
	}

	for _, rec := range recs {
		row := []string{
			rec.Record.SKU,
			rec.Record.Name,
			string(rec.Classification),
			string(rec.Priority),
			rec.Action,
			fmt.Sprintf("%d", rec.Record.CurrentStock),
			fmt.Sprintf("%d", rec.Record.ReorderPoint),
			fmt.Sprintf("%d", rec.Record.MaxStock),
			fmt.Sprintf("%.1f", rec.UtilizationPercent),
			rec.PotentialSavings.StringFixed(2),
			rec.Record.Currency,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("error writing csv row: %w", err)
		}
	}

	writer.Flush()

	return writer.Error()
}
