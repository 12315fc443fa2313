package handler

import (
	"strconv"

	"go-warehouse-ops/internal/service"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	lookup  service.LookupService
	journal service.JournalService
}

func NewDashboardHandler(lookup service.LookupService, journal service.JournalService) *DashboardHandler {
	return &DashboardHandler{lookup: lookup, journal: journal}
}

// GetMenu returns the home screen tiles
func (h *DashboardHandler) GetMenu(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.lookup.Menu()})
}

// GetJournal returns the latest submissions
// Query params: limit (default 50)
func (h *DashboardHandler) GetJournal(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "50"))

	entries, err := h.journal.Recent(limit)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch journal"})
	}
	return c.JSON(fiber.Map{"data": entries})
}

// GetActivity returns succeeded/failed submissions per day
// Query params: days (default 7)
func (h *DashboardHandler) GetActivity(c *fiber.Ctx) error {
	daysStr := c.Query("days", "7")
	days, err := strconv.Atoi(daysStr)
	if err != nil || days <= 0 {
		days = 7
	}

	data, err := h.journal.Activity(days)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch activity"})
	}

	return c.JSON(fiber.Map{
		"period": days,
		"data":   data,
	})
}
