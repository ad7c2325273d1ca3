package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos de un service.
const (
	ServiceStatusActive   = "active"
	ServiceStatusInactive = "inactive"
)

// ValidServiceStatus informa si el estado es válido.
func ValidServiceStatus(s string) bool {
	return s == ServiceStatusActive || s == ServiceStatusInactive
}

// Service servicio ofrecido; los leads pueden referenciarlo (nullable).
// Al eliminar un service se anula leads.service_id, no se borra el lead.
type Service struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal
	Status      string // active | inactive
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time // soft delete
}
