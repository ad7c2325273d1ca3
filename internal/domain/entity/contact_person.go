package entity

import "time"

// ContactPerson persona de contacto ligada polimórficamente a un Lead o Customer.
// Invariante: como máximo una persona de contacto con IsPrimary=true por padre;
// lo mantiene el servicio (crm.ContactPersonUseCase), no el esquema.
type ContactPerson struct {
	ID          string
	Parent      ParentRef
	Name        string
	Email       string
	Mobile      string
	Designation string
	IsPrimary   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
