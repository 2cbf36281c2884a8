package schedule_test

import (
	"testing"
	"time"

	"github.com/cornexhq/cornex-connect/internal/domain"
	"github.com/cornexhq/cornex-connect/internal/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(id string, scheduled time.Time, status domain.ScheduleStatus) domain.ScheduleEntry {
	return domain.ScheduleEntry{
		ID:            id,
		ProductID:     "p-" + id,
		ScheduledDate: scheduled,
		Status:        status,
	}
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 29, schedule.DaysInMonth(2024, time.February))
	assert.Equal(t, 28, schedule.DaysInMonth(2023, time.February))
	assert.Equal(t, 31, schedule.DaysInMonth(2024, time.January))
	assert.Equal(t, 30, schedule.DaysInMonth(2024, time.April))
	assert.Equal(t, 31, schedule.DaysInMonth(2024, time.December))
	// century leap rules
	assert.Equal(t, 28, schedule.DaysInMonth(1900, time.February))
	assert.Equal(t, 29, schedule.DaysInMonth(2000, time.February))
}

func TestFirstWeekday(t *testing.T) {
	// 2024-03-01 was a Friday
	assert.Equal(t, 5, schedule.FirstWeekday(2024, time.March))
	// 2024-09-01 was a Sunday
	assert.Equal(t, 0, schedule.FirstWeekday(2024, time.September))
}

func TestMonthNavigation_YearRollover(t *testing.T) {
	year, month := schedule.NextMonth(2024, time.December)
	assert.Equal(t, 2025, year)
	assert.Equal(t, time.January, month)

	year, month = schedule.PrevMonth(2024, time.January)
	assert.Equal(t, 2023, year)
	assert.Equal(t, time.December, month)

	year, month = schedule.NextMonth(2024, time.May)
	assert.Equal(t, 2024, year)
	assert.Equal(t, time.June, month)
}

func TestEntriesForDate_IgnoresTimeOfDay(t *testing.T) {
	date := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)
	entries := []domain.ScheduleEntry{
		entry("late", time.Date(2024, time.March, 5, 23, 59, 0, 0, time.UTC), domain.ScheduleScheduled),
		entry("early", time.Date(2024, time.March, 5, 0, 0, 1, 0, time.UTC), domain.ScheduleScheduled),
		entry("other", time.Date(2024, time.March, 6, 0, 0, 0, 0, time.UTC), domain.ScheduleScheduled),
	}

	matched := schedule.EntriesForDate(entries, date, time.UTC)

	require.Len(t, matched, 2)
	assert.Equal(t, "late", matched[0].ID)
	assert.Equal(t, "early", matched[1].ID)
}

func TestEntriesForDate_ExcludesZeroDates(t *testing.T) {
	date := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)
	entries := []domain.ScheduleEntry{
		entry("ok", time.Date(2024, time.March, 5, 10, 0, 0, 0, time.UTC), domain.ScheduleScheduled),
		entry("invalid", time.Time{}, domain.ScheduleScheduled),
	}

	matched := schedule.EntriesForDate(entries, date, time.UTC)

	require.Len(t, matched, 1)
	assert.Equal(t, "ok", matched[0].ID)
}

func TestSummarizeDay_DotTruncationAndOverflow(t *testing.T) {
	date := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)
	entries := []domain.ScheduleEntry{
		entry("a", date, domain.ScheduleCompleted),
		entry("b", date, domain.ScheduleInProgress),
		entry("c", date, domain.ScheduleScheduled),
		entry("d", date, domain.ScheduleCancelled),
	}

	day := schedule.SummarizeDay(date, entries)

	assert.Equal(t, "2024-03-05", day.Date)
	assert.Equal(t, []string{"done", "active"}, day.Dots)
	assert.Equal(t, 2, day.Overflow)
	// full untruncated list stays queryable
	assert.Len(t, day.Entries, 4)
}

func TestSummarizeDay_NoOverflowForTwoOrFewer(t *testing.T) {
	date := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)

	day := schedule.SummarizeDay(date, []domain.ScheduleEntry{
		entry("a", date, domain.ScheduleScheduled),
	})

	assert.Equal(t, []string{"pending"}, day.Dots)
	assert.Equal(t, 0, day.Overflow)
}

func TestStatusIndicator_UnknownStatusIsNeutral(t *testing.T) {
	assert.Equal(t, "done", schedule.StatusIndicator(domain.ScheduleCompleted))
	assert.Equal(t, "active", schedule.StatusIndicator(domain.ScheduleInProgress))
	assert.Equal(t, "pending", schedule.StatusIndicator(domain.ScheduleScheduled))
	assert.Equal(t, "cancelled", schedule.StatusIndicator(domain.ScheduleCancelled))
	assert.Equal(t, "neutral", schedule.StatusIndicator(domain.ScheduleStatus("paused")))
}

func TestBuildMonth(t *testing.T) {
	entries := []domain.ScheduleEntry{
		entry("a", time.Date(2024, time.February, 29, 8, 0, 0, 0, time.UTC), domain.ScheduleInProgress),
		entry("b", time.Date(2024, time.February, 1, 15, 30, 0, 0, time.UTC), domain.ScheduleCompleted),
		entry("march", time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), domain.ScheduleScheduled),
	}

	grid := schedule.BuildMonth(2024, time.February, entries, time.UTC)

	require.Len(t, grid.Days, 29)
	// 2024-02-01 was a Thursday
	assert.Equal(t, 4, grid.LeadingBlanks)

	first := grid.Days[0]
	assert.Equal(t, "2024-02-01", first.Date)
	assert.Equal(t, []string{"done"}, first.Dots)

	last := grid.Days[28]
	assert.Equal(t, "2024-02-29", last.Date)
	assert.Equal(t, []string{"active"}, last.Dots)

	// the March entry is outside the displayed month
	for _, day := range grid.Days {
		for _, e := range day.Entries {
			assert.NotEqual(t, "march", e.ID)
		}
	}
}

func TestBuildMonth_EmptyEntries(t *testing.T) {
	grid := schedule.BuildMonth(2023, time.February, nil, nil)

	require.Len(t, grid.Days, 28)
	for _, day := range grid.Days {
		assert.Empty(t, day.Dots)
		assert.Empty(t, day.Entries)
		assert.Equal(t, 0, day.Overflow)
	}
}
