package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/feedback-service/internal/api/dto"
	"github.com/spec-kit/feedback-service/internal/auth"
	"github.com/spec-kit/feedback-service/internal/domain"
	"github.com/spec-kit/feedback-service/internal/service"
	apperrors "github.com/spec-kit/feedback-service/pkg/util"
)

// DashboardHandler serves the role-specific dashboard payloads.
// Stats are computed over the full collection; search/sentiment/status
// query parameters narrow the returned list only.
type DashboardHandler struct {
	feedback  *service.FeedbackService
	directory *service.DirectoryService
}

// NewDashboardHandler constructs handler.
func NewDashboardHandler(feedbackService *service.FeedbackService, directoryService *service.DirectoryService) *DashboardHandler {
	return &DashboardHandler{feedback: feedbackService, directory: directoryService}
}

// Manager GET /dashboard/manager.
func (h *DashboardHandler) Manager(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("authentication required")
	}
	manager := principal.User

	feedbacks, err := h.feedback.ListForManager(c.Context(), manager.ID)
	if err != nil {
		return err
	}
	members, err := h.directory.TeamMembersOf(c.Context(), manager.ID)
	if err != nil {
		return err
	}

	team := make([]dto.TeamMemberSummary, 0, len(members))
	for i := range members {
		team = append(team, memberSummary(&members[i], feedbacks))
	}

	filtered := service.Filter(feedbacks, filterFromQuery(c))

	return c.JSON(fiber.Map{"data": dto.ManagerDashboardResponse{
		Stats:     service.ComputeStats(feedbacks),
		Team:      team,
		Feedbacks: dto.NewFeedbackResponses(filtered),
	}})
}

// Employee GET /dashboard/employee.
func (h *DashboardHandler) Employee(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("authentication required")
	}

	feedbacks, err := h.feedback.ListForRecipient(c.Context(), principal.User.ID)
	if err != nil {
		return err
	}

	filtered := service.Filter(feedbacks, filterFromQuery(c))

	return c.JSON(fiber.Map{"data": dto.EmployeeDashboardResponse{
		Stats:     service.ComputeStats(feedbacks),
		Feedbacks: dto.NewFeedbackResponses(filtered),
	}})
}

// Team GET /team.
func (h *DashboardHandler) Team(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("authentication required")
	}

	members, err := h.directory.TeamMembersOf(c.Context(), principal.User.ID)
	if err != nil {
		return err
	}

	result := make([]dto.UserResponse, 0, len(members))
	for i := range members {
		result = append(result, dto.NewUserResponse(&members[i]))
	}
	return c.JSON(fiber.Map{"data": result})
}

func filterFromQuery(c *fiber.Ctx) service.FilterOptions {
	return service.FilterOptions{
		SearchTerm: c.Query("search"),
		Sentiment:  c.Query("sentiment"),
		Status:     c.Query("status"),
	}
}

func memberSummary(member *domain.User, feedbacks []domain.Feedback) dto.TeamMemberSummary {
	summary := dto.TeamMemberSummary{User: dto.NewUserResponse(member)}
	var latest *domain.Feedback
	for i := range feedbacks {
		feedback := &feedbacks[i]
		if feedback.ToUserID != member.ID {
			continue
		}
		summary.FeedbackCount++
		if latest == nil || feedback.CreatedAt.After(latest.CreatedAt) {
			latest = feedback
		}
	}
	if latest != nil {
		sentiment := latest.Sentiment
		summary.LatestSentiment = &sentiment
	}
	return summary
}
