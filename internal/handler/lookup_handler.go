package handler

import (
	"go-warehouse-ops/internal/service"

	"github.com/gofiber/fiber/v2"
)

type LookupHandler struct {
	service service.LookupService
}

func NewLookupHandler(s service.LookupService) *LookupHandler {
	return &LookupHandler{service: s}
}

func (h *LookupHandler) GetWarehouses(c *fiber.Ctx) error {
	warehouses, err := h.service.Warehouses(session(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": warehouses})
}

func (h *LookupHandler) GetCorrectionTypes(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.service.CorrectionTypes()})
}
