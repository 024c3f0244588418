package domain

// DashboardStats aggregates counts over a feedback collection.
// PositiveCount+NeutralCount+NegativeCount and
// AcknowledgedCount+PendingCount both sum to TotalFeedbacks.
type DashboardStats struct {
	TotalFeedbacks    int `json:"total_feedbacks"`
	PositiveCount     int `json:"positive_count"`
	NeutralCount      int `json:"neutral_count"`
	NegativeCount     int `json:"negative_count"`
	AcknowledgedCount int `json:"acknowledged_count"`
	PendingCount      int `json:"pending_count"`
}
