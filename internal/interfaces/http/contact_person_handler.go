package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/crm-pro/internal/application/crm"
	"github.com/tu-usuario/crm-pro/internal/application/dto"
)

// ContactPersonHandler maneja las peticiones HTTP de personas de contacto.
// Todas las rutas pasan por ResolveActor: las decisiones de permiso y la regla
// de "solo padres business" viven en el caso de uso.
type ContactPersonHandler struct {
	uc *crm.ContactPersonUseCase
}

// NewContactPersonHandler construye el handler.
func NewContactPersonHandler(uc *crm.ContactPersonUseCase) *ContactPersonHandler {
	return &ContactPersonHandler{uc: uc}
}

// Create POST /api/contact-persons
func (h *ContactPersonHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateContactPersonRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	contact, err := h.uc.Add(c.Context(), GetActor(c), in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(contact)
}

// ListByParent GET /api/contact-persons?parent_type=lead&parent_id=...
func (h *ContactPersonHandler) ListByParent(c *fiber.Ctx) error {
	parentType := c.Query("parent_type")
	parentID := c.Query("parent_id")
	if parentType == "" || parentID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parent_type y parent_id son requeridos"})
	}
	list, err := h.uc.ListByParent(GetActor(c), parentType, parentID)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(list)
}

// Update PUT /api/contact-persons/:id
func (h *ContactPersonHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateContactPersonRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	contact, err := h.uc.Update(c.Context(), GetActor(c), c.Params("id"), in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(contact)
}

// SetPrimary POST /api/contact-persons/:id/set-primary
func (h *ContactPersonHandler) SetPrimary(c *fiber.Ctx) error {
	contact, err := h.uc.SetPrimary(c.Context(), GetActor(c), c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(contact)
}

// Delete DELETE /api/contact-persons/:id
func (h *ContactPersonHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetActor(c), c.Params("id")); err != nil {
		return errorResponse(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
