package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/feedback-service/internal/api/http/handlers"
	"github.com/spec-kit/feedback-service/internal/auth"
	"github.com/spec-kit/feedback-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Feedback       *handlers.FeedbackHandler
	Dashboard      *handlers.DashboardHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes. Role-gated groups mirror the
// navigation contract: unauthenticated access is rejected, and a role
// mismatch carries the caller's own dashboard path in the error.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/auth/login", cfg.Auth.Login)
	app.Get("/auth/me", cfg.Auth.Me)

	// Role gates are attached per route rather than via prefix groups:
	// an empty-prefix group would run its middleware for every route
	// registered after it, so the two role gates would collide.
	authn := cfg.AuthMiddleware.Handle
	anyRole := auth.RequireAuthenticated()
	managerOnly := auth.RequireRole(domain.RoleManager)
	employeeOnly := auth.RequireRole(domain.RoleEmployee)

	app.Post("/auth/logout", authn, anyRole, cfg.Auth.Logout)
	app.Get("/feedback/:id", authn, anyRole, cfg.Feedback.Get)

	app.Post("/feedback", authn, managerOnly, cfg.Feedback.Create)
	app.Patch("/feedback/:id", authn, managerOnly, cfg.Feedback.Update)
	app.Get("/dashboard/manager", authn, managerOnly, cfg.Dashboard.Manager)
	app.Get("/team", authn, managerOnly, cfg.Dashboard.Team)

	app.Post("/feedback/:id/acknowledge", authn, employeeOnly, cfg.Feedback.Acknowledge)
	app.Get("/dashboard/employee", authn, employeeOnly, cfg.Dashboard.Employee)
}
