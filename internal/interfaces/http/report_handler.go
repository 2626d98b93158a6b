package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Leadflow-api/internal/application/analytics"
)

// ReportHandler expone los reportes de la vista de análisis (protegido).
type ReportHandler struct {
	uc *analytics.UseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *analytics.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Funnel godoc
// @Summary      Reporte de embudo con tasas de conversión
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.FunnelReportDTO
// @Router       /api/reports/funnel [get]
func (h *ReportHandler) Funnel(c *fiber.Ctx) error {
	out, err := h.uc.FunnelReport(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Sources godoc
// @Summary      Análisis de leads por fuente de captación
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.SourceStatDTO
// @Router       /api/reports/sources [get]
func (h *ReportHandler) Sources(c *fiber.Ctx) error {
	out, err := h.uc.SourceAnalysis(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Demos godoc
// @Summary      Demos vigentes/vencidas y recaudo acumulado
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DemoReportDTO
// @Router       /api/reports/demos [get]
func (h *ReportHandler) Demos(c *fiber.Ctx) error {
	out, err := h.uc.DemoReport(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// StatusDistribution godoc
// @Summary      Distribución de leads por estado
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.StatusCountDTO
// @Router       /api/reports/status [get]
func (h *ReportHandler) StatusDistribution(c *fiber.Ctx) error {
	out, err := h.uc.StatusDistribution(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
