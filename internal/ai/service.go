// Package ai holds the pluggable insight-generation service. The LLM is an
// external collaborator with nondeterministic output; everything behind
// InsightService is swappable, and a deterministic static implementation
// backs tests and keyless deployments.
package ai

import "context"

// MoodRequest carries the dashboard context the mood suggestion is based on.
type MoodRequest struct {
	Country       string   `json:"country"`
	TopCategories []string `json:"top_categories"`
	CriticalItems int      `json:"critical_items"`
}

// MoodSuggestion is the generated dashboard mood payload.
type MoodSuggestion struct {
	Mood    string `json:"mood"`
	Theme   string `json:"theme"`
	Message string `json:"message"`
}

// InsightService generates dashboard mood suggestions.
type InsightService interface {
	SuggestMood(ctx context.Context, req MoodRequest) (*MoodSuggestion, error)
}
