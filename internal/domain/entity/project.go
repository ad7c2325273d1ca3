package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos de un project.
const (
	ProjectStatusPending    = "pending"
	ProjectStatusInProgress = "in_progress"
	ProjectStatusOnHold     = "on_hold"
	ProjectStatusCompleted  = "completed"
	ProjectStatusCancelled  = "cancelled"
)

// projectStatuses set de estados válidos.
var projectStatuses = map[string]bool{
	ProjectStatusPending: true, ProjectStatusInProgress: true, ProjectStatusOnHold: true,
	ProjectStatusCompleted: true, ProjectStatusCancelled: true,
}

// ValidProjectStatus informa si el estado es válido.
func ValidProjectStatus(s string) bool { return projectStatuses[s] }

// Project trabajo contratado, normalmente ligado a un customer y un service.
type Project struct {
	ID          string
	Name        string
	Description string
	CustomerID  *string
	ServiceID   *string
	Status      string // pending | in_progress | on_hold | completed | cancelled
	Budget      decimal.Decimal
	StartDate   *time.Time
	EndDate     *time.Time
	AssignedTo  *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time // soft delete
}
