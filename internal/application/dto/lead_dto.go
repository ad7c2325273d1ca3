package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateLeadRequest entrada para crear un lead. El estado inicial siempre es "new".
type CreateLeadRequest struct {
	Name           string          `json:"name" validate:"required,min=1,max=200"`
	EntityType     string          `json:"entity_type" validate:"required,oneof=individual business"`
	Email          string          `json:"email" validate:"omitempty,email"`
	Phone          string          `json:"phone" validate:"omitempty,max=50"`
	Company        string          `json:"company" validate:"omitempty,max=200"`
	Source         string          `json:"source" validate:"required"`
	EstimatedValue decimal.Decimal `json:"estimated_value"`
	Notes          string          `json:"notes"`
	AssignedTo     *string         `json:"assigned_to" validate:"omitempty,uuid"`
	BusinessID     *string         `json:"business_id" validate:"omitempty,uuid"`
	ServiceID      *string         `json:"service_id" validate:"omitempty,uuid"`
}

// UpdateLeadRequest entrada para editar un lead. Email y teléfono son inmutables
// en el flujo de edición y por eso no aparecen aquí.
type UpdateLeadRequest struct {
	Name           string          `json:"name" validate:"required,min=1,max=200"`
	Company        string          `json:"company" validate:"omitempty,max=200"`
	Source         string          `json:"source" validate:"required"`
	EstimatedValue decimal.Decimal `json:"estimated_value"`
	Notes          string          `json:"notes"`
	AssignedTo     *string         `json:"assigned_to" validate:"omitempty,uuid"`
	BusinessID     *string         `json:"business_id" validate:"omitempty,uuid"`
	ServiceID      *string         `json:"service_id" validate:"omitempty,uuid"`
}

// ChangeLeadStatusRequest entrada para mover el lead en el pipeline.
type ChangeLeadStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// LeadResponse salida de un lead, con la bandera derivada de conversión.
type LeadResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	EntityType     string          `json:"entity_type"`
	Email          string          `json:"email"`
	Phone          string          `json:"phone"`
	Company        string          `json:"company"`
	Source         string          `json:"source"`
	Status         string          `json:"status"`
	EstimatedValue decimal.Decimal `json:"estimated_value"`
	Notes          string          `json:"notes"`
	AssignedTo     *string         `json:"assigned_to,omitempty"`
	BusinessID     *string         `json:"business_id,omitempty"`
	ServiceID      *string         `json:"service_id,omitempty"`
	CanBeConverted bool            `json:"can_be_converted"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// LeadListResponse listado paginado de leads.
type LeadListResponse struct {
	Items []LeadResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
