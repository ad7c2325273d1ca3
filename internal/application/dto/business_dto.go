package dto

import "time"

// CreateBusinessRequest entrada para crear un business.
type CreateBusinessRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=200"`
	Email   string `json:"email" validate:"omitempty,email"`
	Phone   string `json:"phone" validate:"omitempty,max=50"`
	Address string `json:"address"`
	Status  string `json:"status" validate:"omitempty,oneof=active inactive pending"`
}

// UpdateBusinessRequest entrada para editar un business.
type UpdateBusinessRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=200"`
	Email   string `json:"email" validate:"omitempty,email"`
	Phone   string `json:"phone" validate:"omitempty,max=50"`
	Address string `json:"address"`
	Status  string `json:"status" validate:"required,oneof=active inactive pending"`
}

// BusinessResponse salida de un business.
type BusinessResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
