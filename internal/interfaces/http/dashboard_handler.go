package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gemeinde/wegewart-api/internal/application/analytics"
)

// DashboardHandler per-role start page counters.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler builds the dashboard handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary godoc
// @Summary      Dashboard counters for the actor's broadest role
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.GetSummary(c.Context(), GetActor(c))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}
