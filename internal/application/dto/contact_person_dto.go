package dto

import "time"

// CreateContactPersonRequest entrada para crear una persona de contacto.
// El padre (lead o customer) debe ser de tipo business.
type CreateContactPersonRequest struct {
	ParentRequest
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Email       string `json:"email" validate:"omitempty,email"`
	Mobile      string `json:"mobile" validate:"omitempty,max=50"`
	Designation string `json:"designation" validate:"omitempty,max=100"`
	IsPrimary   bool   `json:"is_primary"`
}

// UpdateContactPersonRequest entrada para editar una persona de contacto.
// is_primary no se toca aquí; va por el endpoint de set-primary.
type UpdateContactPersonRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Email       string `json:"email" validate:"omitempty,email"`
	Mobile      string `json:"mobile" validate:"omitempty,max=50"`
	Designation string `json:"designation" validate:"omitempty,max=100"`
}

// ContactPersonResponse salida de una persona de contacto.
type ContactPersonResponse struct {
	ID          string    `json:"id"`
	ParentType  string    `json:"parent_type"`
	ParentID    string    `json:"parent_id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Mobile      string    `json:"mobile"`
	Designation string    `json:"designation"`
	IsPrimary   bool      `json:"is_primary"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
