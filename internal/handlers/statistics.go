package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/seekline/jobtrack/internal/services"
	"github.com/seekline/jobtrack/internal/store"
	"github.com/seekline/jobtrack/internal/utils"
)

// StatisticsHandler handles the statistics route
type StatisticsHandler struct {
	Store store.RecordStore
}

// Summary handles GET /statistics/
// @Summary Application statistics
// @Description Count-by-status summary of the acting user's applications. Keys keep stored casing.
// @Tags Statistics
// @Produce json
// @Success 200 {object} services.Statistics
// @Failure 401 {object} utils.ErrorResponseStruct
// @Router /statistics/ [get]
func (h *StatisticsHandler) Summary(c *fiber.Ctx) error {
	stats, err := services.Summarize(c.UserContext(), h.Store, actingOwnerID(c))
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "statistics.summary")
	}
	return c.Status(fiber.StatusOK).JSON(stats)
}
