package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/studentmatch/backend/internal/config"
	"github.com/studentmatch/backend/internal/model"
)

// Protected validates the bearer token and stores user_id and role in
// request locals. Role gating happens once here at the web boundary; nothing
// deeper re-derives roles.
func Protected(cfg *config.AuthConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Missing token"})
		}
		tokenStr := authHeader[7:]

		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid token"})
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid claims"})
		}

		userID, ok := claims["user_id"].(string)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid claims"})
		}
		if _, err := uuid.Parse(userID); err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid claims"})
		}
		role, _ := claims["role"].(string)

		c.Locals("user_id", userID)
		c.Locals("role", role)
		return c.Next()
	}
}

// RequireRole rejects requests whose token does not carry the given role.
func RequireRole(role model.UserRole) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Locals("role") != string(role) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "Unauthorized"})
		}
		return c.Next()
	}
}

// UserID returns the authenticated user's id from request locals.
func UserID(c *fiber.Ctx) uuid.UUID {
	raw, _ := c.Locals("user_id").(string)
	id, _ := uuid.Parse(raw)
	return id
}
