package dto

import (
	"github.com/spec-kit/feedback-service/internal/domain"
)

// TeamMemberSummary is the per-report card on the manager dashboard.
type TeamMemberSummary struct {
	User            UserResponse      `json:"user"`
	FeedbackCount   int               `json:"feedback_count"`
	LatestSentiment *domain.Sentiment `json:"latest_sentiment,omitempty"`
}

// ManagerDashboardResponse bundles everything the manager view needs.
type ManagerDashboardResponse struct {
	Stats     domain.DashboardStats `json:"stats"`
	Team      []TeamMemberSummary   `json:"team"`
	Feedbacks []FeedbackResponse    `json:"feedbacks"`
}

// EmployeeDashboardResponse bundles everything the employee view needs.
type EmployeeDashboardResponse struct {
	Stats     domain.DashboardStats `json:"stats"`
	Feedbacks []FeedbackResponse    `json:"feedbacks"`
}
