package handler

import (
	"strconv"

	"go-warehouse-ops/internal/correction"
	"go-warehouse-ops/internal/export"
	"go-warehouse-ops/internal/model"
	"go-warehouse-ops/internal/service"

	"github.com/gofiber/fiber/v2"
)

type CorrectionHandler struct {
	service service.CorrectionService
}

func NewCorrectionHandler(s service.CorrectionService) *CorrectionHandler {
	return &CorrectionHandler{service: s}
}

type PickRequest struct {
	Index *int   `json:"index"`
	SKU   string `json:"sku"`
}

type DraftRequest struct {
	Value string `json:"value"`
}

type CommitRequest struct {
	Value string `json:"value"`
	Keep  bool   `json:"keep"`
}

type AdjustRequest struct {
	Delta float64 `json:"delta" validate:"ne=0"`
}

func (h *CorrectionHandler) OpenForm(c *fiber.Ctx) error {
	return c.Status(201).JSON(h.service.OpenForm(session(c)))
}

func (h *CorrectionHandler) GetForm(c *fiber.Ctx) error {
	view, err := h.service.GetForm(session(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(view)
}

func (h *CorrectionHandler) CloseForm(c *fiber.Ctx) error {
	if err := h.service.CloseForm(session(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Form closed"})
}

func (h *CorrectionHandler) UpdateHeader(c *fiber.Ctx) error {
	var header model.CorrectionHeader
	if err := c.BodyParser(&header); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	view, err := h.service.UpdateHeader(session(c), c.Params("id"), header)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(view)
}

func (h *CorrectionHandler) InsertLine(c *fiber.Ctx) error {
	view, err := h.service.InsertLine(session(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(201).JSON(view)
}

func (h *CorrectionHandler) RemoveLine(c *fiber.Ctx) error {
	view, err := h.service.RemoveLine(session(c), c.Params("id"), c.Params("key"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(view)
}

// SearchStock queries the form's warehouse
// Query params: q
func (h *CorrectionHandler) SearchStock(c *fiber.Ctx) error {
	records, err := h.service.SearchStock(session(c), c.Params("id"), c.Query("q"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": records})
}

func (h *CorrectionHandler) Pick(c *fiber.Ctx) error {
	var req PickRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	view, err := h.service.Pick(session(c), c.Params("id"), req.Index, req.SKU)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(view)
}

func (h *CorrectionHandler) ImportStock(c *fiber.Ctx) error {
	view, err := h.service.ImportStock(session(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(view)
}

func lineField(c *fiber.Ctx) (correction.Field, error) {
	return correction.ParseField(c.Params("field"))
}

func (h *CorrectionHandler) StageDraft(c *fiber.Ctx) error {
	field, err := lineField(c)
	if err != nil {
		return respondError(c, err)
	}
	var req DraftRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	view, err := h.service.Stage(session(c), c.Params("id"), c.Params("key"), field, req.Value)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(view)
}

func (h *CorrectionHandler) Commit(c *fiber.Ctx) error {
	field, err := lineField(c)
	if err != nil {
		return respondError(c, err)
	}
	var req CommitRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	view, err := h.service.Commit(session(c), c.Params("id"), c.Params("key"), field, req.Value, req.Keep)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(view)
}

func (h *CorrectionHandler) Adjust(c *fiber.Ctx) error {
	field, err := lineField(c)
	if err != nil {
		return respondError(c, err)
	}
	var req AdjustRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	view, err := h.service.Adjust(session(c), c.Params("id"), c.Params("key"), field, req.Delta)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(view)
}

func (h *CorrectionHandler) Labels(c *fiber.Ctx) error {
	labels, err := h.service.Labels(session(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": labels})
}

func (h *CorrectionHandler) Export(c *fiber.Ctx) error {
	buf, name, err := h.service.Export(session(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, export.ContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+name+`"`)
	return c.Send(buf.Bytes())
}

func (h *CorrectionHandler) Save(c *fiber.Ctx) error {
	res, err := h.service.Save(session(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Simpan Berhasil", "data": res})
}

// ListDocuments returns saved corrections
// Query params: start_date, end_date (YYYY-MM-DD, default last 30 days) or days
func (h *CorrectionHandler) ListDocuments(c *fiber.Ctx) error {
	days, _ := strconv.Atoi(c.Query("days"))
	list, err := h.service.ListDocuments(session(c), service.DocumentQuery{
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
		Days:      days,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

func (h *CorrectionHandler) DeleteDocument(c *fiber.Ctx) error {
	if err := h.service.DeleteDocument(session(c), c.Params("number")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Hapus data sukses."})
}

func (h *CorrectionHandler) PrintURL(c *fiber.Ctx) error {
	url, err := h.service.PrintURL(c.Params("number"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"url": url})
}
