package service

import (
	"context"

	"github.com/cornexhq/cornex-connect/internal/domain"
	"github.com/cornexhq/cornex-connect/internal/repository"
)

// NetworkService serves the distributor map and the audit trail pages.
type NetworkService struct {
	distributors repository.DistributorRepository
	achievements repository.AchievementRepository
	audit        repository.AuditRepository
}

func NewNetworkService(
	distributors repository.DistributorRepository,
	achievements repository.AchievementRepository,
	audit repository.AuditRepository,
) *NetworkService {
	return &NetworkService{
		distributors: distributors,
		achievements: achievements,
		audit:        audit,
	}
}

func (s *NetworkService) ListDistributors(ctx context.Context, country string) ([]domain.Distributor, error) {
	return s.distributors.ListDistributors(ctx, country)
}

func (s *NetworkService) ListCountries(ctx context.Context) ([]string, error) {
	return s.distributors.ListCountries(ctx)
}

func (s *NetworkService) ListAchievements(ctx context.Context, userID string) ([]domain.Achievement, error) {
	return s.achievements.ListAchievements(ctx, userID)
}

func (s *NetworkService) UnlockAchievement(ctx context.Context, id string) error {
	return s.achievements.Unlock(ctx, id)
}

func (s *NetworkService) ListAuditEntries(ctx context.Context, filter domain.AuditFilter) ([]domain.AuditEntry, int, error) {
	return s.audit.ListEntries(ctx, filter)
}
