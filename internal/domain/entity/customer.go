package entity

import "time"

// Estados válidos de un customer.
const (
	CustomerStatusActive   = "active"
	CustomerStatusInactive = "inactive"
	CustomerStatusChurned  = "churned"
)

// ValidCustomerStatus informa si el estado es válido.
func ValidCustomerStatus(s string) bool {
	return s == CustomerStatusActive || s == CustomerStatusInactive || s == CustomerStatusChurned
}

// Customer cuenta activa, creada directamente o por conversión de un lead.
// Si ConvertedFromLeadID no es nil, exactamente un lead posee esa referencia (1:1)
// y el lead nunca vuelve a ser convertible.
type Customer struct {
	ID                  string
	Name                string
	EntityType          string // individual | business, copiado del lead en conversión
	Email               string
	Phone               string
	Company             string
	Address             string
	City                string
	State               string
	Country             string
	PostalCode          string
	Status              string // active | inactive | churned
	Notes               string
	AssignedTo          *string
	BusinessID          *string
	ConvertedFromLeadID *string
	CreatedAt           time.Time
	UpdatedAt           time.Time
	DeletedAt           *time.Time // soft delete
}

// AcceptsContactPersons solo los padres de tipo business admiten personas de contacto.
func (c *Customer) AcceptsContactPersons() bool { return c.EntityType == EntityTypeBusiness }
