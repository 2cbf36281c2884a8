package service

import (
	"context"
	"time"

	"github.com/cornexhq/cornex-connect/internal/domain"
	"github.com/cornexhq/cornex-connect/internal/repository"
	"github.com/cornexhq/cornex-connect/internal/schedule"
	"github.com/google/uuid"
)

type ScheduleService struct {
	repo repository.ScheduleRepository
	loc  *time.Location
}

func NewScheduleService(repo repository.ScheduleRepository, loc *time.Location) *ScheduleService {
	if loc == nil {
		loc = time.UTC
	}
	return &ScheduleService{repo: repo, loc: loc}
}

// Location is the timezone the calendar is displayed in.
func (s *ScheduleService) Location() *time.Location {
	return s.loc
}

// GetMonth builds the calendar grid for a displayed month. The query range
// is widened by a day on each side so entries whose UTC timestamp falls on
// a neighboring day in the display timezone still land in the right cell.
func (s *ScheduleService) GetMonth(ctx context.Context, year int, month time.Month) (schedule.MonthGrid, error) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, s.loc).AddDate(0, 0, -1)
	nextYear, nextMonth := schedule.NextMonth(year, month)
	to := time.Date(nextYear, nextMonth, 1, 0, 0, 0, 0, s.loc).AddDate(0, 0, 1)

	entries, err := s.repo.ListEntriesForRange(ctx, from, to)
	if err != nil {
		return schedule.MonthGrid{}, err
	}

	return schedule.BuildMonth(year, month, entries, s.loc), nil
}

// GetDay returns the full untruncated entry list for one calendar date.
// The date argument names a calendar day, not an instant: its year, month
// and day are re-anchored to midnight in the display timezone so a UTC
// midnight from a date-only parse still means that same calendar day.
func (s *ScheduleService) GetDay(ctx context.Context, date time.Time) ([]domain.ScheduleEntry, error) {
	year, month, day := date.Date()
	anchored := time.Date(year, month, day, 0, 0, 0, 0, s.loc)

	from := anchored.AddDate(0, 0, -1)
	to := anchored.AddDate(0, 0, 2)

	entries, err := s.repo.ListEntriesForRange(ctx, from, to)
	if err != nil {
		return nil, err
	}

	matched := schedule.EntriesForDate(entries, anchored, s.loc)
	if matched == nil {
		matched = make([]domain.ScheduleEntry, 0)
	}

	return matched, nil
}

func (s *ScheduleService) CreateEntry(ctx context.Context, entry *domain.ScheduleEntry) (*domain.ScheduleEntry, error) {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.Status == "" {
		entry.Status = domain.ScheduleScheduled
	}
	if entry.Priority == "" {
		entry.Priority = domain.ScheduleNormal
	}

	audit := auditEntryFor("schedule.create", entry.ID, "scheduled "+entry.ProductID)
	if err := s.repo.CreateEntry(ctx, entry, audit); err != nil {
		return nil, err
	}

	return s.repo.GetEntry(ctx, entry.ID)
}

func (s *ScheduleService) UpdateStatus(ctx context.Context, id string, statusLabel string, actualQuantity int) (*domain.ScheduleEntry, error) {
	status, ok := domain.ParseScheduleStatus(statusLabel)
	if !ok {
		return nil, domain.ErrInvalidStatus
	}

	audit := auditEntryFor("schedule.status", id, "status set to "+string(status))
	if err := s.repo.UpdateStatus(ctx, id, status, actualQuantity, audit); err != nil {
		return nil, err
	}

	return s.repo.GetEntry(ctx, id)
}

// auditEntryFor builds the audit row persisted alongside a schedule change.
// The repository writes both in one transaction, so the trail never drifts
// from the entries it describes.
func auditEntryFor(action, entityID, detail string) *domain.AuditEntry {
	return &domain.AuditEntry{
		Actor:      "system",
		Action:     action,
		EntityType: "schedule_entry",
		EntityID:   entityID,
		Detail:     detail,
	}
}
