package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Leadflow-api/internal/application/analytics"
)

// DashboardHandler expone los KPIs del tablero principal (protegido).
type DashboardHandler struct {
	uc *analytics.UseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.UseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Metrics godoc
// @Summary      KPIs del dashboard (totales, pagos, demos activas, embudo)
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardMetricsDTO
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Metrics(c *fiber.Ctx) error {
	out, err := h.uc.Dashboard(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
