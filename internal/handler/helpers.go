package handler

import (
	"errors"

	"go-warehouse-ops/internal/middleware"
	"go-warehouse-ops/internal/service"
	"go-warehouse-ops/pkg/lock"
	"go-warehouse-ops/pkg/validator"

	"github.com/gofiber/fiber/v2"
)

// Helper untuk ambil session dari JWT context (set by auth middleware)
func session(c *fiber.Ctx) service.Session {
	return service.Session{
		Username: middleware.Username(c),
		Token:    middleware.UpstreamToken(c),
	}
}

// respondError maps service errors to HTTP: local validation is a 422
// warning, a busy form 409, a failed upstream call 502.
func respondError(c *fiber.Ctx, err error) error {
	var uerr *service.UpstreamError
	switch {
	case errors.Is(err, service.ErrFormNotFound):
		return c.Status(404).JSON(fiber.Map{"error": "Form not found"})
	case errors.Is(err, lock.ErrBusy):
		return c.Status(409).JSON(fiber.Map{"error": "Sedang diproses, coba lagi sebentar"})
	case service.IsValidation(err):
		return c.Status(422).JSON(fiber.Map{"error": err.Error(), "level": "warning"})
	case errors.As(err, &uerr):
		return c.Status(502).JSON(fiber.Map{"error": uerr.Message})
	default:
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
}

// parseBody decodes and validates a request body.
func parseBody(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if err := validator.FirstError(validator.ValidateStruct(out)); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return nil
}
