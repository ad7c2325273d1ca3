package repository

import (
	"time"

	"github.com/tu-usuario/crm-pro/internal/domain/entity"
)

// FollowUpRepository define el puerto de persistencia para FollowUp.
// Delete es hard delete.
type FollowUpRepository interface {
	Create(followUp *entity.FollowUp) error
	GetByID(id string) (*entity.FollowUp, error)
	ListByParent(parent entity.ParentRef) ([]*entity.FollowUp, error)
	// ListOverdue lista seguimientos pendientes con fecha anterior a today (solo fecha).
	ListOverdue(today time.Time, limit, offset int) ([]*entity.FollowUp, error)
	Update(followUp *entity.FollowUp) error
	// Complete marca como completado solo si el estado actual es pending
	// (UPDATE condicional). Devuelve false si no había fila pendiente que actualizar.
	Complete(id, completedBy string, completedAt time.Time) (bool, error)
	Cancel(id string) error
	Delete(id string) error
	// DeleteByParent elimina en cascada al borrar el padre.
	DeleteByParent(parent entity.ParentRef) error
}
