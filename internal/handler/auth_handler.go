package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"ignite-backend/internal/domain"
	"ignite-backend/internal/middleware"
	"ignite-backend/internal/service"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var input domain.SignupInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	if input.Name == "" || input.Email == "" || input.Password == "" {
		return middleware.BadRequest("Name, email and password are required")
	}

	user, err := h.authService.Signup(c.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCaptchaFailed):
			return middleware.BadRequest("Captcha verification failed")
		case errors.Is(err, service.ErrInvalidRole):
			return middleware.BadRequest("Invalid role")
		case errors.Is(err, service.ErrEmailExists):
			return middleware.BadRequest("User already exists")
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"user":    user,
		"message": "Signup successful. You can now log in.",
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input domain.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	user, tokens, err := h.authService.Login(c.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			return middleware.NotFound("No account found for this email")
		case errors.Is(err, service.ErrInvalidCredentials):
			return middleware.Unauthorized("Invalid email or password")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"user":          user,
		"access_token":  tokens.AccessToken,
		"refresh_token": tokens.RefreshToken,
		"expires_in":    tokens.ExpiresIn,
	})
}

func (h *AuthHandler) RefreshToken(c *fiber.Ctx) error {
	var input struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	tokens, err := h.authService.RefreshToken(c.Context(), input.RefreshToken)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidToken):
			return middleware.Unauthorized("Invalid refresh token")
		case errors.Is(err, service.ErrUserNotFound):
			return middleware.Unauthorized("User not found")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"access_token":  tokens.AccessToken,
		"refresh_token": tokens.RefreshToken,
		"expires_in":    tokens.ExpiresIn,
	})
}

func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var input struct {
		Email string `json:"email" validate:"required,email"`
	}
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if input.Email == "" {
		return middleware.BadRequest("Email is required")
	}

	if err := h.authService.RequestPasswordReset(c.Context(), input.Email); err != nil {
		if errors.Is(err, service.ErrOTPDispatchFailed) {
			return middleware.NewError(fiber.StatusInternalServerError, "Failed to send password reset email")
		}
		return err
	}

	// Same response whether or not the account exists.
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "If the email exists, an OTP has been sent",
	})
}

func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var input struct {
		Email       string `json:"email" validate:"required,email"`
		OTP         string `json:"otp" validate:"required"`
		NewPassword string `json:"new_password" validate:"required,min=8"`
	}
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if input.Email == "" || input.OTP == "" || input.NewPassword == "" {
		return middleware.BadRequest("Email, OTP and new password are required")
	}

	if err := h.authService.ConfirmPasswordReset(c.Context(), input.Email, input.OTP, input.NewPassword); err != nil {
		if errors.Is(err, service.ErrInvalidOTP) {
			return middleware.BadRequest("OTP is invalid or has expired")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Password has been reset successfully",
	})
}
