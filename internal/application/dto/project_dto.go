package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProjectRequest entrada para crear un project.
type CreateProjectRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Description string          `json:"description"`
	CustomerID  *string         `json:"customer_id" validate:"omitempty,uuid"`
	ServiceID   *string         `json:"service_id" validate:"omitempty,uuid"`
	Status      string          `json:"status" validate:"omitempty"`
	Budget      decimal.Decimal `json:"budget"`
	StartDate   *time.Time      `json:"start_date"`
	EndDate     *time.Time      `json:"end_date"`
	AssignedTo  *string         `json:"assigned_to" validate:"omitempty,uuid"`
}

// UpdateProjectRequest entrada para editar un project.
type UpdateProjectRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Description string          `json:"description"`
	CustomerID  *string         `json:"customer_id" validate:"omitempty,uuid"`
	ServiceID   *string         `json:"service_id" validate:"omitempty,uuid"`
	Status      string          `json:"status" validate:"required"`
	Budget      decimal.Decimal `json:"budget"`
	StartDate   *time.Time      `json:"start_date"`
	EndDate     *time.Time      `json:"end_date"`
	AssignedTo  *string         `json:"assigned_to" validate:"omitempty,uuid"`
}

// ProjectResponse salida de un project.
type ProjectResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	CustomerID  *string         `json:"customer_id,omitempty"`
	ServiceID   *string         `json:"service_id,omitempty"`
	Status      string          `json:"status"`
	Budget      decimal.Decimal `json:"budget"`
	StartDate   *time.Time      `json:"start_date,omitempty"`
	EndDate     *time.Time      `json:"end_date,omitempty"`
	AssignedTo  *string         `json:"assigned_to,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
