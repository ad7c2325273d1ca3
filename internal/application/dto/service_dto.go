package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateServiceRequest entrada para crear un service.
type CreateServiceRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Status      string          `json:"status" validate:"omitempty,oneof=active inactive"`
}

// UpdateServiceRequest entrada para editar un service.
type UpdateServiceRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Status      string          `json:"status" validate:"required,oneof=active inactive"`
}

// ServiceResponse salida de un service.
type ServiceResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
