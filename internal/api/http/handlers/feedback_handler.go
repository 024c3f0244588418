package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/feedback-service/internal/api/dto"
	"github.com/spec-kit/feedback-service/internal/auth"
	"github.com/spec-kit/feedback-service/internal/domain"
	"github.com/spec-kit/feedback-service/internal/service"
	apperrors "github.com/spec-kit/feedback-service/pkg/util"
)

// FeedbackHandler manages feedback CRUD endpoints. Author-only edits
// and recipient-only acknowledgment are enforced here; the store
// itself trusts the caller.
type FeedbackHandler struct {
	feedback  *service.FeedbackService
	directory *service.DirectoryService
}

// NewFeedbackHandler constructs handler.
func NewFeedbackHandler(feedbackService *service.FeedbackService, directoryService *service.DirectoryService) *FeedbackHandler {
	return &FeedbackHandler{feedback: feedbackService, directory: directoryService}
}

// Create POST /feedback.
func (h *FeedbackHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.CreateFeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.ToUserID == "" {
		return apperrors.NewValidationError("to_user_id required", nil)
	}

	feedback, err := h.feedback.Create(c.Context(), service.CreateInput{
		FromUserID:     principal.User.ID,
		ToUserID:       req.ToUserID,
		Strengths:      req.Strengths,
		AreasToImprove: req.AreasToImprove,
		Sentiment:      req.Sentiment,
		Tags:           req.Tags,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewFeedbackResponse(feedback)})
}

// Update PATCH /feedback/:id.
func (h *FeedbackHandler) Update(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("authentication required")
	}
	id := c.Params("id")

	existing, err := h.feedback.GetByID(c.Context(), id)
	if err != nil {
		return err
	}
	if existing.FromUserID != principal.User.ID {
		return apperrors.NewForbidden("only the author can edit feedback")
	}

	var req dto.UpdateFeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	updated, err := h.feedback.Update(c.Context(), id, service.UpdateInput{
		Strengths:      req.Strengths,
		AreasToImprove: req.AreasToImprove,
		Sentiment:      req.Sentiment,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewFeedbackResponse(updated)})
}

// Acknowledge POST /feedback/:id/acknowledge.
func (h *FeedbackHandler) Acknowledge(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("authentication required")
	}
	id := c.Params("id")

	existing, err := h.feedback.GetByID(c.Context(), id)
	if err != nil {
		return err
	}
	if existing.ToUserID != principal.User.ID {
		return apperrors.NewForbidden("only the recipient can acknowledge feedback")
	}

	updated, err := h.feedback.Acknowledge(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewFeedbackResponse(updated)})
}

// Get GET /feedback/:id.
func (h *FeedbackHandler) Get(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("authentication required")
	}
	id := c.Params("id")

	feedback, err := h.feedback.GetByID(c.Context(), id)
	if err != nil {
		return err
	}
	if feedback.FromUserID != principal.User.ID && feedback.ToUserID != principal.User.ID {
		return apperrors.NewForbidden("feedback is visible to its author and recipient only")
	}

	detail, err := h.detailResponse(c, feedback)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": detail})
}

func (h *FeedbackHandler) detailResponse(c *fiber.Ctx, feedback *domain.Feedback) (*dto.FeedbackDetailResponse, error) {
	from, err := h.directory.FindUserByID(c.Context(), feedback.FromUserID)
	if err != nil {
		return nil, err
	}
	to, err := h.directory.FindUserByID(c.Context(), feedback.ToUserID)
	if err != nil {
		return nil, err
	}
	return &dto.FeedbackDetailResponse{
		FeedbackResponse: dto.NewFeedbackResponse(feedback),
		FromUser:         dto.NewUserResponse(from),
		ToUser:           dto.NewUserResponse(to),
	}, nil
}
