package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Leadflow-api/internal/application/dto"
	"github.com/jhoicas/Leadflow-api/internal/application/usecase"
)

// NotificationHandler maneja las peticiones HTTP para notificaciones (protegido).
type NotificationHandler struct {
	uc *usecase.NotificationUseCase
}

// NewNotificationHandler construye el handler.
func NewNotificationHandler(uc *usecase.NotificationUseCase) *NotificationHandler {
	return &NotificationHandler{uc: uc}
}

// List godoc
// @Summary      Listar notificaciones (más reciente primero)
// @Tags         notifications
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.NotificationResponse
// @Router       /api/notifications [get]
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear notificación manual
// @Tags         notifications
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateNotificationRequest  true  "Notificación"
// @Success      201   {object}  dto.NotificationResponse
// @Router       /api/notifications [post]
func (h *NotificationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateNotificationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// MarkRead godoc
// @Summary      Marcar notificación como leída
// @Tags         notifications
// @Security     Bearer
// @Param        id  path  string  true  "ID de la notificación"
// @Success      204
// @Router       /api/notifications/{id}/read [put]
func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	if err := h.uc.MarkRead(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete godoc
// @Summary      Eliminar notificación
// @Tags         notifications
// @Security     Bearer
// @Param        id  path  string  true  "ID de la notificación"
// @Success      204
// @Router       /api/notifications/{id} [delete]
func (h *NotificationHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
