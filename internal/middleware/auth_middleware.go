package middleware

import (
	"strings"

	"go-warehouse-ops/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

// Locals keys set by RequireAuth
const (
	LocalUsername      = "username"
	LocalName          = "user_name"
	LocalUpstreamToken = "upstream_token"
)

// RequireAuth is middleware that validates the gateway token and sets the session in context
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Get Authorization header
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

		c.Locals(LocalUsername, claims.Username)
		c.Locals(LocalName, claims.Name)
		c.Locals(LocalUpstreamToken, claims.UpstreamToken)

		return c.Next()
	}
}

// Username returns the authenticated user, or "" outside RequireAuth.
func Username(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUsername).(string)
	return s
}

func UpstreamToken(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUpstreamToken).(string)
	return s
}
