package repository

import "github.com/tu-usuario/crm-pro/internal/domain/entity"

// LeadRepository define el puerto de persistencia para Lead.
// Delete es soft delete; las lecturas excluyen registros eliminados.
type LeadRepository interface {
	Create(lead *entity.Lead) error
	GetByID(id string) (*entity.Lead, error)
	List(limit, offset int) ([]*entity.Lead, error)
	// Search busca por nombre/email/empresa normalizados (sin acentos).
	Search(query string, limit, offset int) ([]*entity.Lead, error)
	Update(lead *entity.Lead) error
	Delete(id string) error
	// ClearService anula service_id en todos los leads que referencian el service.
	ClearService(serviceID string) error
}
