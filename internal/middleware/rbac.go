package middleware

import (
	"github.com/gofiber/fiber/v2"

	"ignite-backend/internal/domain"
)

// Marketplace roles are disjoint: a freelancer is never a client and neither
// is an admin. RequireRole therefore checks equality, not a hierarchy.
func RequireRole(role domain.UserRole) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := GetCurrentUser(c)
		if user == nil {
			return Unauthorized("User not found")
		}

		if user.Role != role {
			return Forbidden("Insufficient permissions for this operation")
		}

		return c.Next()
	}
}

func RequireAnyRole(roles ...domain.UserRole) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := GetCurrentUser(c)
		if user == nil {
			return Unauthorized("User not found")
		}

		for _, role := range roles {
			if user.Role == role {
				return c.Next()
			}
		}

		return Forbidden("Insufficient permissions for this operation")
	}
}

func GetCurrentUserRole(c *fiber.Ctx) domain.UserRole {
	user := GetCurrentUser(c)
	if user == nil {
		return ""
	}
	return user.Role
}
