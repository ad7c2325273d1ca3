package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/crm-pro/internal/application/crm"
	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/application/usecase"
)

// LeadHandler maneja las peticiones HTTP del pipeline de leads.
type LeadHandler struct {
	uc      *usecase.LeadUseCase
	convert *crm.ConvertLeadUseCase
}

// NewLeadHandler construye el handler.
func NewLeadHandler(uc *usecase.LeadUseCase, convert *crm.ConvertLeadUseCase) *LeadHandler {
	return &LeadHandler{uc: uc, convert: convert}
}

// Create POST /api/leads
func (h *LeadHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateLeadRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	lead, err := h.uc.Create(in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(lead)
}

// List GET /api/leads?limit=20&offset=0&q=texto
// Con q busca por nombre/email/empresa, insensible a acentos.
func (h *LeadHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	if q := c.Query("q"); q != "" {
		list, err := h.uc.Search(q, limit, offset)
		if err != nil {
			return errorResponse(c, err)
		}
		return c.JSON(list)
	}
	list, err := h.uc.List(limit, offset)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /api/leads/:id
func (h *LeadHandler) GetByID(c *fiber.Ctx) error {
	lead, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(lead)
}

// Update PUT /api/leads/:id
func (h *LeadHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateLeadRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	lead, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(lead)
}

// ChangeStatus PATCH /api/leads/:id/status
func (h *LeadHandler) ChangeStatus(c *fiber.Ctx) error {
	var in dto.ChangeLeadStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	lead, err := h.uc.ChangeStatus(c.Params("id"), in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(lead)
}

// Convert POST /api/leads/:id/convert
// Crea el customer a partir del lead ganado y copia sus personas de contacto.
func (h *LeadHandler) Convert(c *fiber.Ctx) error {
	var in dto.ConvertLeadRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		}
	}
	customer, err := h.convert.Convert(c.Context(), GetActor(c), c.Params("id"), in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(customer)
}

// Delete DELETE /api/leads/:id
// Soft delete del lead con cascada dura a sus contactos y seguimientos.
func (h *LeadHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return errorResponse(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
