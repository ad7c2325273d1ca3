package dto

import "time"

// CreateFollowUpRequest entrada para agendar un seguimiento.
// Aplica a padres individual y business, a diferencia de los contactos.
type CreateFollowUpRequest struct {
	ParentRequest
	FollowUpDate time.Time `json:"follow_up_date" validate:"required"`
	Notes        string    `json:"notes"`
}

// UpdateFollowUpRequest entrada para editar fecha/notas/estado directamente.
// La semántica de completado (sellos y completador) va por el endpoint de complete.
type UpdateFollowUpRequest struct {
	FollowUpDate time.Time `json:"follow_up_date" validate:"required"`
	Notes        string    `json:"notes"`
	Status       string    `json:"status" validate:"required,oneof=pending completed cancelled"`
}

// FollowUpResponse salida de un seguimiento, con la bandera derivada de vencimiento.
type FollowUpResponse struct {
	ID           string     `json:"id"`
	ParentType   string     `json:"parent_type"`
	ParentID     string     `json:"parent_id"`
	FollowUpDate time.Time  `json:"follow_up_date"`
	Notes        string     `json:"notes"`
	Status       string     `json:"status"`
	CreatedBy    string     `json:"created_by"`
	CompletedBy  *string    `json:"completed_by,omitempty"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	IsOverdue    bool       `json:"is_overdue"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
