package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/feedback-service/internal/domain"
	apperrors "github.com/spec-kit/feedback-service/pkg/util"
)

// RequireRole ensures the authenticated user holds the given role.
// On mismatch the error details carry the caller's own dashboard path
// so clients can redirect there instead of showing a dead end.
func RequireRole(role domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok || principal.User == nil {
			return apperrors.NewUnauthorized("authentication required")
		}
		if principal.User.Role != role {
			return apperrors.NewDomainError("FORBIDDEN", "role mismatch", fiber.StatusForbidden, map[string]any{
				"redirect": DashboardPath(principal.User.Role),
			})
		}
		return c.Next()
	}
}

// RequireAuthenticated ensures a principal is present, any role.
func RequireAuthenticated() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := PrincipalFromContext(c); !ok {
			return apperrors.NewUnauthorized("authentication required")
		}
		return c.Next()
	}
}

// DashboardPath maps a role to its dashboard route.
func DashboardPath(role domain.Role) string {
	switch role {
	case domain.RoleManager:
		return "/dashboard/manager"
	case domain.RoleEmployee:
		return "/dashboard/employee"
	}
	return "/login"
}
