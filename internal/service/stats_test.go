package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/feedback-service/internal/domain"
)

func sampleFeedbacks() []domain.Feedback {
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	ack := base.Add(time.Hour)
	return []domain.Feedback{
		{
			ID:             "f1",
			Strengths:      "Great communication",
			AreasToImprove: "More documentation",
			Sentiment:      domain.SentimentPositive,
			CreatedAt:      base,
			UpdatedAt:      base,
			IsAcknowledged: true,
			AcknowledgedAt: &ack,
		},
		{
			ID:             "f2",
			Strengths:      "Solid debugging",
			AreasToImprove: "Speak up in planning",
			Sentiment:      domain.SentimentNeutral,
			CreatedAt:      base.Add(time.Minute),
			UpdatedAt:      base.Add(time.Minute),
		},
		{
			ID:             "f3",
			Strengths:      "Owns incidents end to end",
			AreasToImprove: "Delegate more",
			Sentiment:      domain.SentimentNegative,
			CreatedAt:      base.Add(2 * time.Minute),
			UpdatedAt:      base.Add(2 * time.Minute),
		},
	}
}

func TestComputeStats_Counts(t *testing.T) {
	stats := ComputeStats(sampleFeedbacks())

	assert.Equal(t, 3, stats.TotalFeedbacks)
	assert.Equal(t, 1, stats.PositiveCount)
	assert.Equal(t, 1, stats.NeutralCount)
	assert.Equal(t, 1, stats.NegativeCount)
	assert.Equal(t, 1, stats.AcknowledgedCount)
	assert.Equal(t, 2, stats.PendingCount)
}

func TestComputeStats_Invariants(t *testing.T) {
	cases := [][]domain.Feedback{
		nil,
		{},
		sampleFeedbacks(),
		sampleFeedbacks()[:1],
	}
	for _, fs := range cases {
		stats := ComputeStats(fs)
		assert.Equal(t, stats.TotalFeedbacks, stats.PositiveCount+stats.NeutralCount+stats.NegativeCount)
		assert.Equal(t, stats.TotalFeedbacks, stats.AcknowledgedCount+stats.PendingCount)
		assert.Equal(t, len(fs), stats.TotalFeedbacks)
	}
}

func TestFilter_IdentityWhenAllFiltersOff(t *testing.T) {
	fs := sampleFeedbacks()

	for _, opts := range []FilterOptions{
		{},
		{Sentiment: FilterAll, Status: FilterAll},
		{SearchTerm: "   "},
	} {
		result := Filter(fs, opts)
		require.Len(t, result, len(fs))
		for i := range fs {
			assert.Equal(t, fs[i].ID, result[i].ID)
		}
	}
}

func TestFilter_SearchTermMatchesEitherField(t *testing.T) {
	fs := sampleFeedbacks()

	result := Filter(fs, FilterOptions{SearchTerm: "DOCUMENTATION"})
	require.Len(t, result, 1)
	assert.Equal(t, "f1", result[0].ID)

	result = Filter(fs, FilterOptions{SearchTerm: "debugging"})
	require.Len(t, result, 1)
	assert.Equal(t, "f2", result[0].ID)

	result = Filter(fs, FilterOptions{SearchTerm: "no such text"})
	assert.Empty(t, result)
}

func TestFilter_Sentiment(t *testing.T) {
	result := Filter(sampleFeedbacks(), FilterOptions{Sentiment: "positive"})
	require.Len(t, result, 1)
	assert.Equal(t, "f1", result[0].ID)
}

func TestFilter_StatusPendingPreservesOrder(t *testing.T) {
	result := Filter(sampleFeedbacks(), FilterOptions{Status: StatusPending})
	require.Len(t, result, 2)
	assert.Equal(t, "f2", result[0].ID)
	assert.Equal(t, "f3", result[1].ID)
}

func TestFilter_StatusAcknowledged(t *testing.T) {
	result := Filter(sampleFeedbacks(), FilterOptions{Status: StatusAcknowledged})
	require.Len(t, result, 1)
	assert.Equal(t, "f1", result[0].ID)
}

func TestFilter_Conjunction(t *testing.T) {
	fs := sampleFeedbacks()

	result := Filter(fs, FilterOptions{SearchTerm: "communication", Status: StatusPending})
	assert.Empty(t, result, "f1 matches the term but is acknowledged")

	result = Filter(fs, FilterOptions{SearchTerm: "delegate", Sentiment: "negative", Status: StatusPending})
	require.Len(t, result, 1)
	assert.Equal(t, "f3", result[0].ID)
}

func TestFilter_Narrowing(t *testing.T) {
	fs := sampleFeedbacks()
	opts := []FilterOptions{
		{SearchTerm: "a"},
		{Sentiment: "neutral"},
		{Status: StatusAcknowledged},
		{SearchTerm: "z", Sentiment: "positive", Status: StatusPending},
	}
	for _, o := range opts {
		assert.LessOrEqual(t, len(Filter(fs, o)), len(fs))
	}
}
