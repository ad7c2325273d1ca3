package crm

import (
	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

// Parent vista común de un padre polimórfico, suficiente para los servicios
// de contactos y seguimientos (no hace falta la entidad completa).
type Parent struct {
	Ref        entity.ParentRef
	EntityType string // individual | business
	Name       string
}

// AcceptsContactPersons solo los padres de tipo business admiten personas de contacto.
func (p *Parent) AcceptsContactPersons() bool {
	return p.EntityType == entity.EntityTypeBusiness
}

// ParentResolver resuelve una ParentRef contra el repo que corresponda.
// Mantiene los dos tipos de padre intercambiables en la capa de servicio.
type ParentResolver struct {
	leadRepo     repository.LeadRepository
	customerRepo repository.CustomerRepository
}

// NewParentResolver construye el resolver.
func NewParentResolver(leadRepo repository.LeadRepository, customerRepo repository.CustomerRepository) *ParentResolver {
	return &ParentResolver{leadRepo: leadRepo, customerRepo: customerRepo}
}

// Resolve carga el padre referenciado. Devuelve domain.ErrInvalidInput si el
// kind no es válido y domain.ErrNotFound si el padre no existe.
func (r *ParentResolver) Resolve(ref entity.ParentRef) (*Parent, error) {
	switch ref.Kind {
	case entity.ParentLead:
		lead, err := r.leadRepo.GetByID(ref.ID)
		if err != nil {
			return nil, err
		}
		if lead == nil {
			return nil, domain.ErrNotFound
		}
		return &Parent{Ref: ref, EntityType: lead.EntityType, Name: lead.Name}, nil
	case entity.ParentCustomer:
		customer, err := r.customerRepo.GetByID(ref.ID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, domain.ErrNotFound
		}
		return &Parent{Ref: ref, EntityType: customer.EntityType, Name: customer.Name}, nil
	default:
		return nil, domain.ErrInvalidInput
	}
}
