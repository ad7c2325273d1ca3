package dto

import "time"

// CreateCustomerRequest entrada para crear un customer directamente (sin conversión).
type CreateCustomerRequest struct {
	Name       string  `json:"name" validate:"required,min=1,max=200"`
	EntityType string  `json:"entity_type" validate:"required,oneof=individual business"`
	Email      string  `json:"email" validate:"omitempty,email"`
	Phone      string  `json:"phone" validate:"omitempty,max=50"`
	Company    string  `json:"company" validate:"omitempty,max=200"`
	Address    string  `json:"address"`
	City       string  `json:"city"`
	State      string  `json:"state"`
	Country    string  `json:"country"`
	PostalCode string  `json:"postal_code"`
	Status     string  `json:"status" validate:"omitempty,oneof=active inactive churned"`
	Notes      string  `json:"notes"`
	AssignedTo *string `json:"assigned_to" validate:"omitempty,uuid"`
	BusinessID *string `json:"business_id" validate:"omitempty,uuid"`
}

// UpdateCustomerRequest entrada para editar un customer.
type UpdateCustomerRequest struct {
	Name       string  `json:"name" validate:"required,min=1,max=200"`
	Email      string  `json:"email" validate:"omitempty,email"`
	Phone      string  `json:"phone" validate:"omitempty,max=50"`
	Company    string  `json:"company" validate:"omitempty,max=200"`
	Address    string  `json:"address"`
	City       string  `json:"city"`
	State      string  `json:"state"`
	Country    string  `json:"country"`
	PostalCode string  `json:"postal_code"`
	Status     string  `json:"status" validate:"required,oneof=active inactive churned"`
	Notes      string  `json:"notes"`
	AssignedTo *string `json:"assigned_to" validate:"omitempty,uuid"`
	BusinessID *string `json:"business_id" validate:"omitempty,uuid"`
}

// ConvertLeadRequest bolsa de overrides para la conversión. Todo campo ausente se
// precarga desde el lead; entity_type no es sobrescribible (se copia del lead).
type ConvertLeadRequest struct {
	Name       *string `json:"name" validate:"omitempty,min=1,max=200"`
	Email      *string `json:"email" validate:"omitempty,email"`
	Phone      *string `json:"phone" validate:"omitempty,max=50"`
	Company    *string `json:"company" validate:"omitempty,max=200"`
	Address    *string `json:"address"`
	City       *string `json:"city"`
	State      *string `json:"state"`
	Country    *string `json:"country"`
	PostalCode *string `json:"postal_code"`
	Status     *string `json:"status" validate:"omitempty,oneof=active inactive churned"`
	Notes      *string `json:"notes"`
	AssignedTo *string `json:"assigned_to" validate:"omitempty,uuid"`
	BusinessID *string `json:"business_id" validate:"omitempty,uuid"`
}

// CustomerResponse salida de un customer.
type CustomerResponse struct {
	ID                  string    `json:"id"`
	Name                string    `json:"name"`
	EntityType          string    `json:"entity_type"`
	Email               string    `json:"email"`
	Phone               string    `json:"phone"`
	Company             string    `json:"company"`
	Address             string    `json:"address"`
	City                string    `json:"city"`
	State               string    `json:"state"`
	Country             string    `json:"country"`
	PostalCode          string    `json:"postal_code"`
	Status              string    `json:"status"`
	Notes               string    `json:"notes"`
	AssignedTo          *string   `json:"assigned_to,omitempty"`
	BusinessID          *string   `json:"business_id,omitempty"`
	ConvertedFromLeadID *string   `json:"converted_from_lead_id,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// CustomerListResponse listado paginado de customers.
type CustomerListResponse struct {
	Items []CustomerResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
