package repository

import "github.com/tu-usuario/crm-pro/internal/domain/entity"

// ServiceRepository define el puerto de persistencia para Service.
// Delete es soft delete.
type ServiceRepository interface {
	Create(service *entity.Service) error
	GetByID(id string) (*entity.Service, error)
	List(limit, offset int) ([]*entity.Service, error)
	Update(service *entity.Service) error
	Delete(id string) error
}
