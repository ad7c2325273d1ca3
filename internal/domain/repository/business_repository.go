package repository

import "github.com/tu-usuario/crm-pro/internal/domain/entity"

// BusinessRepository define el puerto de persistencia para Business.
// Delete es soft delete.
type BusinessRepository interface {
	Create(business *entity.Business) error
	GetByID(id string) (*entity.Business, error)
	List(limit, offset int) ([]*entity.Business, error)
	Update(business *entity.Business) error
	Delete(id string) error
}
