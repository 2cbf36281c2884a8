package ai

import "context"

var _ InsightService = (*StaticInsightService)(nil)

// StaticInsightService is the deterministic fallback used when no API key
// is configured, and the stand-in for tests.
type StaticInsightService struct{}

func NewStaticInsightService() *StaticInsightService {
	return &StaticInsightService{}
}

func (s *StaticInsightService) SuggestMood(_ context.Context, req MoodRequest) (*MoodSuggestion, error) {
	if req.CriticalItems > 0 {
		return &MoodSuggestion{
			Mood:    "urgent",
			Theme:   "warm",
			Message: "Critical stock needs attention first. Clear the reorder queue and the day is yours.",
		}, nil
	}

	return &MoodSuggestion{
		Mood:    "focused",
		Theme:   "light",
		Message: "Inventory looks steady. A good day to get ahead of next week's schedule.",
	}, nil
}
