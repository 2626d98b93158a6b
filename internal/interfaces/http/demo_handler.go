package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Leadflow-api/internal/application/dto"
	"github.com/jhoicas/Leadflow-api/internal/application/lifecycle"
	"github.com/jhoicas/Leadflow-api/internal/application/usecase"
)

// DemoHandler maneja las peticiones HTTP para demos (protegido).
type DemoHandler struct {
	uc        *usecase.DemoUseCase
	lifecycle *lifecycle.UseCase
}

// NewDemoHandler construye el handler.
func NewDemoHandler(uc *usecase.DemoUseCase, lc *lifecycle.UseCase) *DemoHandler {
	return &DemoHandler{uc: uc, lifecycle: lc}
}

// List godoc
// @Summary      Listar demos con vigencia y contacto del lead
// @Tags         demos
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.DemoResponse
// @Router       /api/demos [get]
func (h *DemoHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Assign godoc
// @Summary      Asignar demo a un lead (lo mueve a estado Demo)
// @Tags         demos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AssignDemoRequest  true  "Demo a asignar"
// @Success      201   {object}  dto.DemoResponse
// @Router       /api/demos [post]
func (h *DemoHandler) Assign(c *fiber.Ctx) error {
	var in dto.AssignDemoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.lifecycle.AssignDemo(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Outcome godoc
// @Summary      Registrar resultado de la demo
// @Tags         demos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la demo"
// @Param        body  body  dto.DemoOutcomeRequest  true  "interested | not_responded | follow_up"
// @Success      200   {object}  dto.LeadResponse
// @Router       /api/demos/{id}/outcome [post]
func (h *DemoHandler) Outcome(c *fiber.Ctx) error {
	var in dto.DemoOutcomeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.lifecycle.RecordDemoOutcome(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar demo
// @Tags         demos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la demo"
// @Param        body  body  dto.UpdateDemoRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.DemoResponse
// @Router       /api/demos/{id} [put]
func (h *DemoHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateDemoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar demo
// @Tags         demos
// @Security     Bearer
// @Param        id  path  string  true  "ID de la demo"
// @Success      204
// @Router       /api/demos/{id} [delete]
func (h *DemoHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
