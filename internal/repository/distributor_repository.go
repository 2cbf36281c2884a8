// internal/repository/distributor_repository.go
package repository

import (
	"context"
	"fmt"

	"github.com/cornexhq/cornex-connect/internal/domain"
	"github.com/jmoiron/sqlx"
)

type DistributorRepository interface {
	ListDistributors(ctx context.Context, country string) ([]domain.Distributor, error)
	ListCountries(ctx context.Context) ([]string, error)
}

type distributorRepository struct {
	db *sqlx.DB
}

func NewDistributorRepository(db *sqlx.DB) DistributorRepository {
	return &distributorRepository{db: db}
}

func (r *distributorRepository) ListDistributors(ctx context.Context, country string) ([]domain.Distributor, error) {
	query := `
        SELECT id, name, country, city, latitude, longitude, phone, email, created_at
        FROM distributors
        WHERE 1=1
    `

	var args []interface{}
	if country != "" {
		query += " AND country = $1"
		args = append(args, country)
	}

	query += " ORDER BY name"

	var distributors []domain.Distributor
	if err := r.db.SelectContext(ctx, &distributors, query, args...); err != nil {
		return nil, fmt.Errorf("error listing distributors: %w", err)
	}

	return distributors, nil
}

func (r *distributorRepository) ListCountries(ctx context.Context) ([]string, error) {
	query := `
        SELECT DISTINCT country
        FROM distributors
        ORDER BY country
    `

	var countries []string
	if err := r.db.SelectContext(ctx, &countries, query); err != nil {
		return nil, fmt.Errorf("error listing distributor countries: %w", err)
	}

	return countries, nil
}
