package entity

import "time"

// Estados válidos de un business.
const (
	BusinessStatusActive   = "active"
	BusinessStatusInactive = "inactive"
	BusinessStatusPending  = "pending"
)

// ValidBusinessStatus informa si el estado es válido.
func ValidBusinessStatus(s string) bool {
	return s == BusinessStatusActive || s == BusinessStatusInactive || s == BusinessStatusPending
}

// Business unidad de negocio a la que pueden asociarse leads y customers.
type Business struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Address   string
	Status    string // active | inactive | pending
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time // soft delete
}
