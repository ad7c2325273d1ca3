package entity

import "time"

// Estados de un seguimiento. completed y cancelled son terminales.
const (
	FollowUpStatusPending   = "pending"
	FollowUpStatusCompleted = "completed"
	FollowUpStatusCancelled = "cancelled"
)

// ValidFollowUpStatus informa si el estado es válido.
func ValidFollowUpStatus(s string) bool {
	return s == FollowUpStatusPending || s == FollowUpStatusCompleted || s == FollowUpStatusCancelled
}

// FollowUp recordatorio fechado ligado polimórficamente a un Lead o Customer.
// A diferencia de ContactPerson aplica a padres individual y business.
type FollowUp struct {
	ID           string
	Parent       ParentRef
	FollowUpDate time.Time // solo fecha; la hora se ignora en comparaciones
	Notes        string
	Status       string
	CreatedBy    string
	CompletedBy  *string
	CompletedAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsPending informa si el seguimiento sigue pendiente.
func (f *FollowUp) IsPending() bool { return f.Status == FollowUpStatusPending }

// IsOverdue informa si el seguimiento está vencido respecto a today.
// Comparación solo de fecha; un seguimiento completado o cancelado nunca está vencido.
func (f *FollowUp) IsOverdue(today time.Time) bool {
	if !f.IsPending() {
		return false
	}
	due := time.Date(f.FollowUpDate.Year(), f.FollowUpDate.Month(), f.FollowUpDate.Day(), 0, 0, 0, 0, time.UTC)
	ref := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	return due.Before(ref)
}
