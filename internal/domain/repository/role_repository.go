package repository

import "github.com/tu-usuario/crm-pro/internal/domain/entity"

// RoleRepository define el puerto de persistencia para Role.
type RoleRepository interface {
	Create(role *entity.Role) error
	GetByID(id string) (*entity.Role, error)
	GetByName(name string) (*entity.Role, error)
	// GetByNames resuelve varios roles de una vez (cálculo del permiso efectivo).
	GetByNames(names []string) ([]*entity.Role, error)
	List(limit, offset int) ([]*entity.Role, error)
	Update(role *entity.Role) error
	Delete(id string) error
	// Upsert inserta o actualiza por nombre; lo usa la siembra del catálogo.
	Upsert(role *entity.Role) error
}
