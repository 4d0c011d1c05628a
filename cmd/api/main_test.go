package main

import (
	"context"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"ignite-backend/internal/domain"
	"ignite-backend/internal/handler"
	"ignite-backend/internal/middleware"
	"ignite-backend/internal/service"
)

// stubAuthService satisfies the auth dependency so routes can be registered
// without a database.
type stubAuthService struct{}

func (stubAuthService) Signup(ctx context.Context, input domain.SignupInput) (*domain.User, error) {
	return nil, nil
}

func (stubAuthService) Login(ctx context.Context, input domain.LoginInput) (*domain.User, *domain.TokenPair, error) {
	return nil, nil, nil
}

func (stubAuthService) RefreshToken(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
	return nil, nil
}

func (stubAuthService) ValidateAccessToken(token string) (*service.Claims, error) {
	return nil, service.ErrInvalidToken
}

func (stubAuthService) IssueAccessToken(user *domain.User) (string, error) {
	return "", nil
}

func (stubAuthService) GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return nil, nil
}

func (stubAuthService) RequestPasswordReset(ctx context.Context, email string) error {
	return nil
}

func (stubAuthService) ConfirmPasswordReset(ctx context.Context, email, otp, newPassword string) error {
	return nil
}

func TestSetupRoutes(t *testing.T) {
	authSvc := stubAuthService{}
	handlers := handler.NewHandlers(&service.Services{Auth: authSvc})

	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler})
	setupRoutes(app, handlers, authSvc)

	registered := make(map[string]bool)
	for _, route := range app.GetRoutes() {
		path := strings.TrimSuffix(route.Path, "/")
		if path == "" {
			path = "/"
		}
		registered[route.Method+" "+path] = true
	}

	expected := []string{
		"GET /health",

		"POST /api/user/signup",
		"POST /api/user/login",
		"POST /api/user/forgot-password",
		"POST /api/user/verify-otp",
		"GET /api/user/profile",
		"PUT /api/user/profile",
		"DELETE /api/user/profile",
		"GET /api/user/public-profile/:id",

		"GET /api/projects",
		"POST /api/projects",
		"GET /api/projects/my-projects/list",
		"GET /api/projects/my-applications/list",
		"GET /api/projects/:id",
		"PUT /api/projects/:id",
		"DELETE /api/projects/:id",
		"GET /api/projects/:id/applications",
		"POST /api/projects/:id/apply",
		"POST /api/projects/:id/submit",
		"PATCH /api/projects/:projectId/applications/:applicationId/status",
		"POST /api/projects/:projectId/applications/:applicationId/tasks",
		"PATCH /api/projects/:projectId/applications/:applicationId/tasks/:taskId",
		"DELETE /api/projects/:projectId/applications/:applicationId/tasks/:taskId",
		"PATCH /api/projects/:projectId/submissions/:submissionId/status",

		"GET /api/notifications",
		"PATCH /api/notifications/read-all",

		"GET /api/testimonials",
		"POST /api/testimonials",

		"GET /api/admin/users",
		"GET /api/admin/stats/users",
		"GET /api/admin/projects",
		"PATCH /api/admin/projects/:id/featured",
		"GET /api/admin/applicants",
		"PATCH /api/admin/applicants/:projectId/:applicantId/status",
		"GET /api/admin/testimonials",
		"PATCH /api/admin/testimonials/:id/visibility",
	}

	for _, want := range expected {
		assert.True(t, registered[want], "missing route %s", want)
	}
}
