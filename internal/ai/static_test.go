package ai_test

import (
	"context"
	"testing"

	"github.com/cornexhq/cornex-connect/internal/ai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticInsightService_UrgentWhenCriticalItems(t *testing.T) {
	svc := ai.NewStaticInsightService()

	got, err := svc.SuggestMood(context.Background(), ai.MoodRequest{CriticalItems: 3})

	require.NoError(t, err)
	assert.Equal(t, "urgent", got.Mood)
}

func TestStaticInsightService_FocusedOtherwise(t *testing.T) {
	svc := ai.NewStaticInsightService()

	got, err := svc.SuggestMood(context.Background(), ai.MoodRequest{Country: "DE"})

	require.NoError(t, err)
	assert.Equal(t, "focused", got.Mood)
	assert.NotEmpty(t, got.Message)
}
