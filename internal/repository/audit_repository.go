// internal/repository/audit_repository.go
package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/cornexhq/cornex-connect/internal/domain"
	"github.com/jmoiron/sqlx"
)

type AuditRepository interface {
	ListEntries(ctx context.Context, filter domain.AuditFilter) ([]domain.AuditEntry, int, error)
	Record(ctx context.Context, entry *domain.AuditEntry) error
}

type auditRepository struct {
	db *sqlx.DB
}

func NewAuditRepository(db *sqlx.DB) AuditRepository {
	return &auditRepository{db: db}
}

func (r *auditRepository) ListEntries(ctx context.Context, filter domain.AuditFilter) ([]domain.AuditEntry, int, error) {
	countQuery := `
        SELECT COUNT(*)
        FROM audit_entries
        WHERE 1=1
    `

	query := `
        SELECT id, actor, action, entity_type, entity_id, detail, created_at
        FROM audit_entries
        WHERE 1=1
    `

	var args []interface{}
	var conditions []string
	argCounter := 1

	if filter.EntityType != "" {
		conditions = append(conditions, fmt.Sprintf("entity_type = $%d", argCounter))
		args = append(args, filter.EntityType)
		argCounter++
	}

	if len(conditions) > 0 {
		whereClause := " AND " + strings.Join(conditions, " AND ")
		query += whereClause
		countQuery += whereClause
	}

	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("error counting audit entries: %w", err)
	}

	query += " ORDER BY created_at DESC"

	if filter.PageSize > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		offset := (page - 1) * filter.PageSize
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argCounter, argCounter+1)
		args = append(args, filter.PageSize, offset)
	}

	var entries []domain.AuditEntry
	if err := r.db.SelectContext(ctx, &entries, query, args...); err != nil {
		return nil, 0, fmt.Errorf("error listing audit entries: %w", err)
	}

	return entries, total, nil
}

func (r *auditRepository) Record(ctx context.Context, entry *domain.AuditEntry) error {
	return insertAuditEntry(ctx, r.db, entry)
}

// insertAuditEntry writes one audit row on any executor, so repositories can
// record audit trail inside their own transactions.
func insertAuditEntry(ctx context.Context, ext sqlx.ExtContext, entry *domain.AuditEntry) error {
	query := `
        INSERT INTO audit_entries (actor, action, entity_type, entity_id, detail, created_at)
        VALUES ($1, $2, $3, $4, $5, now())
    `

	if _, err := ext.ExecContext(ctx, query,
		entry.Actor, entry.Action, entry.EntityType, entry.EntityID, entry.Detail,
	); err != nil {
		return fmt.Errorf("error recording audit entry: %w", err)
	}

	return nil
}
