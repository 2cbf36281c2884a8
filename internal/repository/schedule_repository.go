// internal/repository/schedule_repository.go
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/cornexhq/cornex-connect/internal/domain"
	"github.com/cornexhq/cornex-connect/internal/repository/postgres"
	"github.com/jmoiron/sqlx"
)

type ScheduleRepository interface {
	// ListEntriesForRange returns entries with scheduled_date in [from, to),
	// ordered by scheduled date then creation time.
	ListEntriesForRange(ctx context.Context, from, to time.Time) ([]domain.ScheduleEntry, error)
	GetEntry(ctx context.Context, id string) (*domain.ScheduleEntry, error)
	// CreateEntry and UpdateStatus write the entry and its audit row in one
	// transaction; a nil audit skips the audit row.
	CreateEntry(ctx context.Context, entry *domain.ScheduleEntry, audit *domain.AuditEntry) error
	UpdateStatus(ctx context.Context, id string, status domain.ScheduleStatus, actualQuantity int, audit *domain.AuditEntry) error
}

type scheduleRepository struct {
	db *postgres.DB
}

func NewScheduleRepository(db *postgres.DB) ScheduleRepository {
	return &scheduleRepository{db: db}
}

const scheduleColumns = `
    s.id, s.product_id, p.name AS product_name, s.scheduled_date, s.status,
    s.production_line, s.planned_quantity, s.actual_quantity, s.priority,
    s.notes, s.created_at, s.updated_at
`

func (r *scheduleRepository) ListEntriesForRange(ctx context.Context, from, to time.Time) ([]domain.ScheduleEntry, error) {
	query := `
        SELECT ` + scheduleColumns + `
        FROM schedule_entries s
        JOIN products p ON p.id = s.product_id
        WHERE s.scheduled_date >= $1 AND s.scheduled_date < $2
        ORDER BY s.scheduled_date, s.created_at
    `

	var entries []domain.ScheduleEntry
	if err := r.db.SelectContext(ctx, &entries, query, from, to); err != nil {
		return nil, fmt.Errorf("error listing schedule entries: %w", err)
	}

	return entries, nil
}

func (r *scheduleRepository) GetEntry(ctx context.Context, id string) (*domain.ScheduleEntry, error) {
	query := `
        SELECT ` + scheduleColumns + `
        FROM schedule_entries s
        JOIN products p ON p.id = s.product_id
        WHERE s.id = $1
    `

	var entry domain.ScheduleEntry
	if err := r.db.GetContext(ctx, &entry, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("error getting schedule entry: %w", err)
	}

	return &entry, nil
}

func (r *scheduleRepository) CreateEntry(ctx context.Context, entry *domain.ScheduleEntry, audit *domain.AuditEntry) error {
	query := `
        INSERT INTO schedule_entries (
            id, product_id, scheduled_date, status, production_line,
            planned_quantity, actual_quantity, priority, notes,
            created_at, updated_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now(), now())
    `

	return r.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, query,
			entry.ID, entry.ProductID, entry.ScheduledDate, entry.Status,
			entry.ProductionLine, entry.PlannedQuantity, entry.ActualQuantity,
			entry.Priority, entry.Notes,
		); err != nil {
			return fmt.Errorf("error creating schedule entry: %w", err)
		}

		if audit == nil {
			return nil
		}
		return insertAuditEntry(ctx, tx, audit)
	})
}

func (r *scheduleRepository) UpdateStatus(ctx context.Context, id string, status domain.ScheduleStatus, actualQuantity int, audit *domain.AuditEntry) error {
	query := `
        UPDATE schedule_entries
        SET status = $2, actual_quantity = $3, updated_at = now()
        WHERE id = $1
    `

	return r.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		result, err := tx.ExecContext(ctx, query, id, status, actualQuantity)
		if err != nil {
			return fmt.Errorf("error updating schedule entry status: %w", err)
		}

		rows, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("error checking schedule entry update: %w", err)
		}
		if rows == 0 {
			return domain.ErrNotFound
		}

		if audit == nil {
			return nil
		}
		return insertAuditEntry(ctx, tx, audit)
	})
}
