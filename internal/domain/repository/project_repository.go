package repository

import "github.com/tu-usuario/crm-pro/internal/domain/entity"

// ProjectRepository define el puerto de persistencia para Project.
// Delete es soft delete.
type ProjectRepository interface {
	Create(project *entity.Project) error
	GetByID(id string) (*entity.Project, error)
	List(limit, offset int) ([]*entity.Project, error)
	ListByCustomer(customerID string, limit, offset int) ([]*entity.Project, error)
	Update(project *entity.Project) error
	Delete(id string) error
}
