package middleware

import (
	"strings"

	"ringkas-aset/internal/model"
	"ringkas-aset/internal/repository"
	"ringkas-aset/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

// CurrentUserKey is the Locals key holding the authenticated *model.User
const CurrentUserKey = "current_user"

// RequireAuth validates the JWT and loads the user fresh from the database,
// responsible locations included, so visibility scoping always reflects the
// current assignment rather than whatever the token was minted with.
func RequireAuth(userRepo repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(401).JSON(fiber.Map{"error": "Missing authorization token"})
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid authorization format. Use: Bearer <token>"})
		}

		claims, err := jwt.ValidateToken(parts[1])
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid or expired token"})
		}

		user, err := userRepo.FindByID(claims.UserID)
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"error": "User not found"})
		}

		if !user.IsActive {
			return c.Status(401).JSON(fiber.Map{"error": "User account is inactive"})
		}

		if user.TokenVersion != claims.TokenVersion {
			return c.Status(401).JSON(fiber.Map{"error": "Session expired (logged in on another device)"})
		}

		c.Locals(CurrentUserKey, user)
		return c.Next()
	}
}

// RequireAdmin gates the management flows (locations, users) to the Admin role
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := c.Locals(CurrentUserKey).(*model.User)
		if !ok {
			return c.Status(403).JSON(fiber.Map{"error": "No authenticated user"})
		}
		if !user.IsAdmin() {
			return c.Status(403).JSON(fiber.Map{"error": "Forbidden: requires Admin role"})
		}
		return c.Next()
	}
}

// CurrentUser pulls the authenticated user out of the request context
func CurrentUser(c *fiber.Ctx) *model.User {
	user, _ := c.Locals(CurrentUserKey).(*model.User)
	return user
}
