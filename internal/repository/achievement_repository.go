// internal/repository/achievement_repository.go
package repository

import (
	"context"
	"fmt"

	"github.com/cornexhq/cornex-connect/internal/domain"
	"github.com/jmoiron/sqlx"
)

type AchievementRepository interface {
	ListAchievements(ctx context.Context, userID string) ([]domain.Achievement, error)
	Unlock(ctx context.Context, id string) error
}

type achievementRepository struct {
	db *sqlx.DB
}

func NewAchievementRepository(db *sqlx.DB) AchievementRepository {
	return &achievementRepository{db: db}
}

func (r *achievementRepository) ListAchievements(ctx context.Context, userID string) ([]domain.Achievement, error) {
	query := `
        SELECT id, user_id, code, title, description, points, unlocked_at
        FROM achievements
        WHERE user_id = $1
        ORDER BY points DESC, code
    `

	var achievements []domain.Achievement
	if err := r.db.SelectContext(ctx, &achievements, query, userID); err != nil {
		return nil, fmt.Errorf("error listing achievements: %w", err)
	}

	return achievements, nil
}

func (r *achievementRepository) Unlock(ctx context.Context, id string) error {
	query := `
        UPDATE achievements
        SET unlocked_at = now()
        WHERE id = $1 AND unlocked_at IS NULL
    `

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("error unlocking achievement: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking achievement unlock: %w", err)
	}
	if rows == 0 {
		return domain.ErrNotFound
	}

	return nil
}
