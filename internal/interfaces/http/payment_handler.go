package http

import (
	"bytes"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Leadflow-api/internal/application/dto"
	"github.com/jhoicas/Leadflow-api/internal/application/lifecycle"
	"github.com/jhoicas/Leadflow-api/internal/application/usecase"
)

// PaymentHandler maneja las peticiones HTTP para pagos (protegido).
type PaymentHandler struct {
	uc        *usecase.PaymentUseCase
	lifecycle *lifecycle.UseCase
}

// NewPaymentHandler construye el handler.
func NewPaymentHandler(uc *usecase.PaymentUseCase, lc *lifecycle.UseCase) *PaymentHandler {
	return &PaymentHandler{uc: uc, lifecycle: lc}
}

// List godoc
// @Summary      Listar pagos con contacto del lead
// @Tags         payments
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.PaymentResponse
// @Router       /api/payments [get]
func (h *PaymentHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Record godoc
// @Summary      Registrar pago (Paid mueve el lead a Paid)
// @Tags         payments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordPaymentRequest  true  "Pago"
// @Success      201   {object}  dto.PaymentResponse
// @Router       /api/payments [post]
func (h *PaymentHandler) Record(c *fiber.Ctx) error {
	var in dto.RecordPaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.lifecycle.RecordPayment(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener pago por ID
// @Tags         payments
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del pago"
// @Success      200  {object}  dto.PaymentResponse
// @Router       /api/payments/{id} [get]
func (h *PaymentHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar pago
// @Tags         payments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del pago"
// @Param        body  body  dto.UpdatePaymentRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.PaymentResponse
// @Router       /api/payments/{id} [put]
func (h *PaymentHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePaymentRequest
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
// @Summary      Eliminar pago
// @Tags         payments
// @Security     Bearer
// @Param        id  path  string  true  "ID del pago"
// @Success      204
// @Router       /api/payments/{id} [delete]
func (h *PaymentHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Receipt godoc
// @Summary      Descargar recibo de pago en PDF
// @Tags         payments
// @Security     Bearer
// @Produce      octet-stream
// @Param        id  path  string  true  "ID del pago"
// @Success      200
// @Router       /api/payments/{id}/receipt [get]
func (h *PaymentHandler) Receipt(c *fiber.Ctx) error {
	data, err := h.uc.Receipt(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="recibo.pdf"`)
	return c.SendStream(bytes.NewReader(data), len(data))
}
