package handler

import (
	"errors"
	"strings"

	"go-warehouse-ops/internal/service"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login forwards the credentials upstream and returns a gateway session
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	response, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		var lerr *service.LoginError
		if errors.As(err, &lerr) {
			return c.Status(401).JSON(fiber.Map{"error": lerr.Message})
		}
		return respondError(c, err)
	}

	return c.JSON(response)
}

// ValidateToken checks a gateway token
// POST /api/v1/auth/validate-token
func (h *AuthHandler) ValidateToken(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	if token == "" {
		var body struct {
			Token string `json:"token"`
		}
		_ = c.BodyParser(&body)
		token = body.Token
	}

	user, err := h.authService.ValidateToken(token)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"valid": true, "user": user})
}
