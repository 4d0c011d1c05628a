package handler

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"ignite-backend/internal/domain"
	"ignite-backend/internal/middleware"
	"ignite-backend/internal/service"
)

type UserHandler struct {
	userService  service.UserService
	authService  service.AuthService
	mediaService service.MediaService
}

func NewUserHandler(userService service.UserService, authService service.AuthService, mediaService service.MediaService) *UserHandler {
	return &UserHandler{
		userService:  userService,
		authService:  authService,
		mediaService: mediaService,
	}
}

func (h *UserHandler) Me(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("Not authenticated")
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"user": user})
}

// UpdateProfile accepts multipart form data: a "user" part with the JSON
// payload plus an optional "image" file. A fresh access token is issued so
// the client's cached claims reflect the updated profile.
func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	var input domain.UpdateProfileInput
	if payload := c.FormValue("user"); payload != "" {
		if err := json.Unmarshal([]byte(payload), &input); err != nil {
			return middleware.BadRequest("Invalid user payload")
		}
	} else if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	var imageURL *string
	if file, err := c.FormFile("image"); err == nil && file != nil {
		src, err := file.Open()
		if err != nil {
			return middleware.BadRequest("Failed to read uploaded image")
		}
		defer src.Close()

		url, err := h.mediaService.UploadImage(c.Context(), "avatars", file.Filename, file.Size, file.Header.Get("Content-Type"), src)
		if err != nil {
			if errors.Is(err, service.ErrMediaStorageUnavailable) {
				return middleware.NewError(fiber.StatusServiceUnavailable, "Media storage is not configured")
			}
			return err
		}
		imageURL = &url
	}

	user, err := h.userService.UpdateProfile(c.Context(), userID, input, imageURL)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return middleware.NotFound("User not found")
		}
		return err
	}

	token, err := h.authService.IssueAccessToken(user)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"user":         user,
		"access_token": token,
	})
}

func (h *UserHandler) PublicProfile(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid user ID")
	}

	profile, err := h.userService.GetPublicProfile(c.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return middleware.NotFound("User not found")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"user": profile})
}

func (h *UserHandler) DeleteAccount(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	if err := h.userService.DeleteAccount(c.Context(), userID); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return middleware.NotFound("User not found")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Account deleted successfully",
	})
}
