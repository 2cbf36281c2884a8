// Package schedule groups flat production-schedule entries into the
// per-day view the calendar grid renders. Pure functions; the input
// slice is never mutated.
package schedule

import (
	"time"

	"github.com/cornexhq/cornex-connect/internal/domain"
)

// maxDots caps the per-day status indicators shown in a grid cell.
// Remaining entries are surfaced as an overflow count; the full day
// list stays available through CalendarDay.Entries.
const maxDots = 2

var statusIndicators = map[domain.ScheduleStatus]string{
	domain.ScheduleCompleted:  "done",
	domain.ScheduleInProgress: "active",
	domain.ScheduleScheduled:  "pending",
	domain.ScheduleCancelled:  "cancelled",
}

// neutralIndicator is used for statuses the UI does not recognize.
const neutralIndicator = "neutral"

// StatusIndicator maps a schedule status to its grid indicator class.
func StatusIndicator(status domain.ScheduleStatus) string {
	if indicator, ok := statusIndicators[status]; ok {
		return indicator
	}

	return neutralIndicator
}

// DaysInMonth returns the Gregorian day count for a month, leap years included.
func DaysInMonth(year int, month time.Month) int {
	// day 0 of the next month is the last day of this one
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekday returns the weekday of the 1st of the month,
// 0=Sunday through 6=Saturday, for computing leading blank cells.
func FirstWeekday(year int, month time.Month) int {
	return int(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday())
}

// NextMonth advances a (year, month) pair, rolling over December.
func NextMonth(year int, month time.Month) (int, time.Month) {
	if month == time.December {
		return year + 1, time.January
	}

	return year, month + 1
}

// PrevMonth rewinds a (year, month) pair, rolling back from January.
func PrevMonth(year int, month time.Month) (int, time.Month) {
	if month == time.January {
		return year - 1, time.December
	}

	return year, month - 1
}

// sameDay reports whether two instants fall on the same calendar day in loc.
// Comparison is by date, not timestamp; time-of-day never matters.
func sameDay(a, b time.Time, loc *time.Location) bool {
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()

	return ay == by && am == bm && ad == bd
}

// EntriesForDate filters entries scheduled on the given calendar date in loc,
// preserving input order. Entries with a zero scheduled date are excluded.
func EntriesForDate(entries []domain.ScheduleEntry, date time.Time, loc *time.Location) []domain.ScheduleEntry {
	var matched []domain.ScheduleEntry
	for _, entry := range entries {
		if entry.ScheduledDate.IsZero() {
			continue
		}
		if sameDay(entry.ScheduledDate, date, loc) {
			matched = append(matched, entry)
		}
	}

	return matched
}

// SummarizeDay builds the CalendarDay cell for one date: the first two
// entries become indicator dots, the rest an overflow count, and the
// untruncated list rides along for the day detail panel.
func SummarizeDay(date time.Time, dayEntries []domain.ScheduleEntry) domain.CalendarDay {
	day := domain.CalendarDay{
		Date:    date.Format("2006-01-02"),
		Entries: dayEntries,
		Dots:    make([]string, 0, maxDots),
	}

	for i, entry := range dayEntries {
		if i == maxDots {
			break
		}
		day.Dots = append(day.Dots, StatusIndicator(entry.Status))
	}

	if len(dayEntries) > maxDots {
		day.Overflow = len(dayEntries) - maxDots
	}

	return day
}

// MonthGrid is the rendered month: leading blank cells plus one
// CalendarDay per day of the month, in order.
type MonthGrid struct {
	Year          int                  `json:"year"`
	Month         int                  `json:"month"`
	LeadingBlanks int                  `json:"leading_blanks"`
	Days          []domain.CalendarDay `json:"days"`
}

// BuildMonth assembles the month grid for a displayed (year, month) from a
// flat entry list. Entries outside the month are ignored; zero-dated
// entries never appear in any day.
func BuildMonth(year int, month time.Month, entries []domain.ScheduleEntry, loc *time.Location) MonthGrid {
	if loc == nil {
		loc = time.UTC
	}

	grid := MonthGrid{
		Year:          year,
		Month:         int(month),
		LeadingBlanks: FirstWeekday(year, month),
	}

	total := DaysInMonth(year, month)
	grid.Days = make([]domain.CalendarDay, 0, total)
	for dayNum := 1; dayNum <= total; dayNum++ {
		date := time.Date(year, month, dayNum, 0, 0, 0, 0, loc)
		grid.Days = append(grid.Days, SummarizeDay(date, EntriesForDate(entries, date, loc)))
	}

	return grid
}
