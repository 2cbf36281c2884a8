package service

import (
	"context"

	"github.com/cornexhq/cornex-connect/internal/ai"
	"github.com/cornexhq/cornex-connect/internal/domain"
	"github.com/cornexhq/cornex-connect/internal/repository"
	"github.com/rs/zerolog/log"
)

// InsightService assembles the operating context for the LLM collaborator
// and proxies its mood suggestion. The engine output it reads is the same
// ephemeral recommendation result the dashboard shows.
type InsightService struct {
	ai        ai.InsightService
	inventory *InventoryService
	catalog   *CatalogService
}

func NewInsightService(aiSvc ai.InsightService, inventory *InventoryService, catalog *CatalogService) *InsightService {
	return &InsightService{ai: aiSvc, inventory: inventory, catalog: catalog}
}

func (s *InsightService) SuggestMood(ctx context.Context, country string) (*ai.MoodSuggestion, error) {
	req := ai.MoodRequest{Country: country}

	if result, err := s.inventory.GetRecommendations(ctx, repository.InventoryFilter{}); err == nil {
		req.CriticalItems = result.Summary.CountsByPriority[domain.PriorityCritical]
	} else {
		log.Warn().Err(err).Msg("insight: recommendations unavailable, mood context has no critical count")
	}

	if categories, err := s.catalog.ListCategories(ctx); err == nil {
		if len(categories) > 3 {
			categories = categories[:3]
		}
		req.TopCategories = categories
	} else {
		log.Warn().Err(err).Msg("insight: categories unavailable, mood context has no category list")
	}

	return s.ai.SuggestMood(ctx, req)
}
