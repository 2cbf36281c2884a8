package domain

import "strings"

// ScheduleStatus is the lifecycle state of a production schedule entry
type ScheduleStatus string

const (
	ScheduleCompleted  ScheduleStatus = "completed"
	ScheduleInProgress ScheduleStatus = "in_progress"
	ScheduleScheduled  ScheduleStatus = "scheduled"
	ScheduleCancelled  ScheduleStatus = "cancelled"
)

// SchedulePriority is the planning priority of a schedule entry
type SchedulePriority string

const (
	ScheduleHigh   SchedulePriority = "high"
	ScheduleNormal SchedulePriority = "normal"
	ScheduleLow    SchedulePriority = "low"
)

var scheduleStatuses = map[string]ScheduleStatus{
	"completed":   ScheduleCompleted,
	"in_progress": ScheduleInProgress,
	"scheduled":   ScheduleScheduled,
	"cancelled":   ScheduleCancelled,
}

var schedulePriorities = map[string]SchedulePriority{
	"high":   ScheduleHigh,
	"normal": ScheduleNormal,
	"low":    ScheduleLow,
}

// ParseScheduleStatus returns the status for a given label (case-insensitive).
func ParseScheduleStatus(label string) (ScheduleStatus, bool) {
	status, ok := scheduleStatuses[strings.ToLower(strings.TrimSpace(label))]

	return status, ok
}

// ParseSchedulePriority returns the priority for a given label (case-insensitive).
// Unknown labels fall back to normal.
func ParseSchedulePriority(label string) SchedulePriority {
	if p, ok := schedulePriorities[strings.ToLower(strings.TrimSpace(label))]; ok {
		return p
	}

	return ScheduleNormal
}
