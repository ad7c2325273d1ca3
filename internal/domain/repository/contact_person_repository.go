package repository

import "github.com/tu-usuario/crm-pro/internal/domain/entity"

// ContactPersonRepository define el puerto de persistencia para ContactPerson.
// Delete es hard delete.
type ContactPersonRepository interface {
	Create(contact *entity.ContactPerson) error
	GetByID(id string) (*entity.ContactPerson, error)
	ListByParent(parent entity.ParentRef) ([]*entity.ContactPerson, error)
	Update(contact *entity.ContactPerson) error
	Delete(id string) error
	// DeleteByParent elimina en cascada al borrar el padre.
	DeleteByParent(parent entity.ParentRef) error
	// ClearPrimary quita is_primary de todos los contactos del padre.
	ClearPrimary(parent entity.ParentRef) error
	// LockParent toma un lock de fila sobre los contactos del padre (FOR UPDATE).
	// Solo tiene efecto dentro de una transacción; serializa los cambios de primario.
	LockParent(parent entity.ParentRef) error
}
