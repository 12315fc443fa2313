package handler

import (
	"go-warehouse-ops/internal/model"
	"go-warehouse-ops/internal/service"

	"github.com/gofiber/fiber/v2"
)

type RealizationHandler struct {
	service service.RealizationService
}

func NewRealizationHandler(s service.RealizationService) *RealizationHandler {
	return &RealizationHandler{service: s}
}

type ScanRequest struct {
	RowKey  string `json:"row_key"`
	Barcode string `json:"barcode"`
}

type LineNotesRequest struct {
	Note     string `json:"note"`
	Operator string `json:"operator"`
}

func (h *RealizationHandler) OpenSheet(c *fiber.Ctx) error {
	return c.Status(201).JSON(h.service.OpenSheet(session(c)))
}

func (h *RealizationHandler) GetSheet(c *fiber.Ctx) error {
	view, err := h.service.GetSheet(session(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(view)
}

func (h *RealizationHandler) CloseSheet(c *fiber.Ctx) error {
	if err := h.service.CloseSheet(session(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Form closed"})
}

func (h *RealizationHandler) UpdateHeader(c *fiber.Ctx) error {
	var header model.RealizationHeader
	if err := c.BodyParser(&header); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	view, err := h.service.UpdateHeader(session(c), c.Params("id"), header)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(view)
}

func (h *RealizationHandler) Scan(c *fiber.Ctx) error {
	var req ScanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	view, err := h.service.Scan(session(c), c.Params("id"), req.RowKey, req.Barcode)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(view)
}

func (h *RealizationHandler) UpdateLine(c *fiber.Ctx) error {
	var req LineNotesRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	view, err := h.service.UpdateLine(session(c), c.Params("id"), c.Params("key"), req.Note, req.Operator)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(view)
}

func (h *RealizationHandler) RemoveLine(c *fiber.Ctx) error {
	view, err := h.service.RemoveLine(session(c), c.Params("id"), c.Params("key"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(view)
}

func (h *RealizationHandler) Save(c *fiber.Ctx) error {
	n, err := h.service.Save(session(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Data berhasil disimpan", "barcodes": n})
}
