package http

import (
	"bytes"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Leadflow-api/internal/application/dto"
	"github.com/jhoicas/Leadflow-api/internal/application/leads"
	"github.com/jhoicas/Leadflow-api/internal/application/lifecycle"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// LeadHandler maneja las peticiones HTTP para leads (protegido).
type LeadHandler struct {
	uc        *leads.UseCase
	lifecycle *lifecycle.UseCase
}

// NewLeadHandler construye el handler.
func NewLeadHandler(uc *leads.UseCase, lc *lifecycle.UseCase) *LeadHandler {
	return &LeadHandler{uc: uc, lifecycle: lc}
}

// Create godoc
// @Summary      Crear lead manual
// @Tags         leads
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateLeadRequest  true  "Datos del lead"
// @Success      201   {object}  dto.LeadResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/leads [post]
func (h *LeadHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateLeadRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar leads (filtro opcional por estado)
// @Tags         leads
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "New | Contacted | Rejected | Demo | Integrated | Paid | Unpaid"
// @Success      200  {array}  dto.LeadResponse
// @Router       /api/leads [get]
func (h *LeadHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), c.Query("status"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener lead por ID
// @Tags         leads
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del lead"
// @Success      200  {object}  dto.LeadResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/leads/{id} [get]
func (h *LeadHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar lead (panel maestro)
// @Tags         leads
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del lead"
// @Param        body  body  dto.UpdateLeadRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.LeadResponse
// @Router       /api/leads/{id} [put]
func (h *LeadHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateLeadRequest
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
// @Summary      Eliminar lead
// @Tags         leads
// @Security     Bearer
// @Param        id  path  string  true  "ID del lead"
// @Success      204
// @Router       /api/leads/{id} [delete]
func (h *LeadHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// RecordCall godoc
// @Summary      Registrar resultado de llamada
// @Tags         leads
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del lead"
// @Param        body  body  dto.RecordCallRequest  true  "Resultado"
// @Success      200   {object}  dto.LeadResponse
// @Router       /api/leads/{id}/call [post]
func (h *LeadHandler) RecordCall(c *fiber.Ctx) error {
	var in dto.RecordCallRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.lifecycle.RecordCallOutcome(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Import godoc
// @Summary      Importar leads desde planilla XLSX
// @Tags         leads
// @Security     Bearer
// @Accept       mpfd
// @Produce      json
// @Param        file  formData  file  true  "Planilla de leads"
// @Success      200   {object}  dto.ImportResult
// @Router       /api/leads/import [post]
func (h *LeadHandler) Import(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "campo file requerido"})
	}
	f, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "no se pudo leer el archivo"})
	}
	defer f.Close()

	out, err := h.uc.Import(c.Context(), f)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Export godoc
// @Summary      Descargar todos los leads en XLSX
// @Tags         leads
// @Security     Bearer
// @Produce      octet-stream
// @Success      200
// @Router       /api/leads/export [get]
func (h *LeadHandler) Export(c *fiber.Ctx) error {
	data, err := h.uc.Export(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="leads.xlsx"`)
	return c.SendStream(bytes.NewReader(data), len(data))
}

// Template godoc
// @Summary      Descargar planilla vacía de importación
// @Tags         leads
// @Security     Bearer
// @Produce      octet-stream
// @Success      200
// @Router       /api/leads/template [get]
func (h *LeadHandler) Template(c *fiber.Ctx) error {
	data, err := h.uc.Template(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="leads_template.xlsx"`)
	return c.SendStream(bytes.NewReader(data), len(data))
}
