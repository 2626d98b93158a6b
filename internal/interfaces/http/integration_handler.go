package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Leadflow-api/internal/application/dto"
	"github.com/jhoicas/Leadflow-api/internal/application/lifecycle"
	"github.com/jhoicas/Leadflow-api/internal/application/usecase"
)

// IntegrationHandler maneja las peticiones HTTP para integraciones (protegido).
type IntegrationHandler struct {
	uc        *usecase.IntegrationUseCase
	lifecycle *lifecycle.UseCase
}

// NewIntegrationHandler construye el handler.
func NewIntegrationHandler(uc *usecase.IntegrationUseCase, lc *lifecycle.UseCase) *IntegrationHandler {
	return &IntegrationHandler{uc: uc, lifecycle: lc}
}

// List godoc
// @Summary      Listar integraciones con contacto del lead
// @Tags         integrations
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.IntegrationResponse
// @Router       /api/integrations [get]
func (h *IntegrationHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Start godoc
// @Summary      Iniciar integración (mueve el lead a Integrated)
// @Tags         integrations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StartIntegrationRequest  true  "Integración"
// @Success      201   {object}  dto.IntegrationResponse
// @Router       /api/integrations [post]
func (h *IntegrationHandler) Start(c *fiber.Ctx) error {
	var in dto.StartIntegrationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.lifecycle.StartIntegration(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Editar integración (no toca el estado del lead)
// @Tags         integrations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la integración"
// @Param        body  body  dto.UpdateIntegrationRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.IntegrationResponse
// @Router       /api/integrations/{id} [put]
func (h *IntegrationHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateIntegrationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.lifecycle.UpdateIntegration(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar integración
// @Tags         integrations
// @Security     Bearer
// @Param        id  path  string  true  "ID de la integración"
// @Success      204
// @Router       /api/integrations/{id} [delete]
func (h *IntegrationHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
