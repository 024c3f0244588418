package service

import (
	"strings"

	"github.com/spec-kit/feedback-service/internal/domain"
)

// Filter selector values. The zero value of each field means "all".
const (
	FilterAll          = "all"
	StatusAcknowledged = "acknowledged"
	StatusPending      = "pending"
)

// FilterOptions narrows a feedback sequence. Filters compose
// conjunctively and order of application does not matter.
type FilterOptions struct {
	SearchTerm string
	Sentiment  string
	Status     string
}

// ComputeStats derives aggregate counts over a feedback sequence.
func ComputeStats(feedbacks []domain.Feedback) domain.DashboardStats {
	stats := domain.DashboardStats{TotalFeedbacks: len(feedbacks)}
	for _, feedback := range feedbacks {
		switch feedback.Sentiment {
		case domain.SentimentPositive:
			stats.PositiveCount++
		case domain.SentimentNeutral:
			stats.NeutralCount++
		case domain.SentimentNegative:
			stats.NegativeCount++
		}
		if feedback.IsAcknowledged {
			stats.AcknowledgedCount++
		}
	}
	stats.PendingCount = stats.TotalFeedbacks - stats.AcknowledgedCount
	return stats
}

// Filter returns the records matching every active filter, preserving
// the input order. With no active filters the input is returned as-is.
func Filter(feedbacks []domain.Feedback, opts FilterOptions) []domain.Feedback {
	term := strings.ToLower(strings.TrimSpace(opts.SearchTerm))
	sentiment := normalizeSelector(opts.Sentiment)
	status := normalizeSelector(opts.Status)

	if term == "" && sentiment == FilterAll && status == FilterAll {
		return feedbacks
	}

	result := make([]domain.Feedback, 0, len(feedbacks))
	for _, feedback := range feedbacks {
		if term != "" && !matchesTerm(feedback, term) {
			continue
		}
		if sentiment != FilterAll && string(feedback.Sentiment) != sentiment {
			continue
		}
		if status == StatusAcknowledged && !feedback.IsAcknowledged {
			continue
		}
		if status == StatusPending && feedback.IsAcknowledged {
			continue
		}
		result = append(result, feedback)
	}
	return result
}

func matchesTerm(feedback domain.Feedback, term string) bool {
	return strings.Contains(strings.ToLower(feedback.Strengths), term) ||
		strings.Contains(strings.ToLower(feedback.AreasToImprove), term)
}

func normalizeSelector(value string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return FilterAll
	}
	return value
}
