package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/application/usecase"
)

// CustomerHandler maneja las peticiones HTTP de customers.
type CustomerHandler struct {
	uc        *usecase.CustomerUseCase
	projectUC *usecase.ProjectUseCase
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *usecase.CustomerUseCase, projectUC *usecase.ProjectUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc, projectUC: projectUC}
}

// Create POST /api/customers
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	customer, err := h.uc.Create(in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(customer)
}

// List GET /api/customers?limit=20&offset=0&q=texto
func (h *CustomerHandler) List(c *fiber.Ctx) error {
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

// GetByID GET /api/customers/:id
func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	customer, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(customer)
}

// ListProjects GET /api/customers/:id/projects
func (h *CustomerHandler) ListProjects(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	list, err := h.projectUC.ListByCustomer(c.Params("id"), limit, offset)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(list)
}

// Update PUT /api/customers/:id
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	customer, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(customer)
}

// Delete DELETE /api/customers/:id
// Soft delete del customer con cascada dura a sus contactos y seguimientos.
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return errorResponse(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
