package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/crm-pro/internal/application/crm"
	"github.com/tu-usuario/crm-pro/internal/application/dto"
)

// FollowUpHandler maneja las peticiones HTTP de seguimientos.
type FollowUpHandler struct {
	uc *crm.FollowUpUseCase
}

// NewFollowUpHandler construye el handler.
func NewFollowUpHandler(uc *crm.FollowUpUseCase) *FollowUpHandler {
	return &FollowUpHandler{uc: uc}
}

// Create POST /api/follow-ups
func (h *FollowUpHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateFollowUpRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	followUp, err := h.uc.Add(GetActor(c), in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(followUp)
}

// ListByParent GET /api/follow-ups?parent_type=lead&parent_id=...
func (h *FollowUpHandler) ListByParent(c *fiber.Ctx) error {
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

// ListOverdue GET /api/follow-ups/overdue?limit=20&offset=0
func (h *FollowUpHandler) ListOverdue(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	list, err := h.uc.ListOverdue(GetActor(c), limit, offset)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(list)
}

// Update PUT /api/follow-ups/:id
func (h *FollowUpHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateFollowUpRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	followUp, err := h.uc.Update(GetActor(c), c.Params("id"), in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(followUp)
}

// Complete POST /api/follow-ups/:id/complete
// Sella completed_by/completed_at; solo sobre seguimientos pendientes.
func (h *FollowUpHandler) Complete(c *fiber.Ctx) error {
	followUp, err := h.uc.MarkCompleted(GetActor(c), c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(followUp)
}

// Cancel POST /api/follow-ups/:id/cancel
func (h *FollowUpHandler) Cancel(c *fiber.Ctx) error {
	followUp, err := h.uc.MarkCancelled(GetActor(c), c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(followUp)
}

// Delete DELETE /api/follow-ups/:id
func (h *FollowUpHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetActor(c), c.Params("id")); err != nil {
		return errorResponse(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
