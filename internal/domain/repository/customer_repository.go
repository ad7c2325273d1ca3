package repository

import "github.com/tu-usuario/crm-pro/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para Customer.
// Delete es soft delete; las lecturas excluyen registros eliminados.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	// GetByConvertedFromLead devuelve el customer creado a partir del lead, o nil.
	// Es el guard de idempotencia de la conversión.
	GetByConvertedFromLead(leadID string) (*entity.Customer, error)
	List(limit, offset int) ([]*entity.Customer, error)
	Search(query string, limit, offset int) ([]*entity.Customer, error)
	Update(customer *entity.Customer) error
	Delete(id string) error
}
