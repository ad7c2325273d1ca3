package crm

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/crm-pro/internal/application/authz"
	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

// ConvertLeadUseCase convierte un lead ganado en un customer.
// La conversión es de una sola vía: el lead queda en won y el guard de
// idempotencia es la existencia del customer con converted_from_lead_id.
type ConvertLeadUseCase struct {
	tx           TxRunner
	leadRepo     repository.LeadRepository
	customerRepo repository.CustomerRepository
	contactRepo  repository.ContactPersonRepository
}

// NewConvertLeadUseCase construye el caso de uso.
func NewConvertLeadUseCase(
	tx TxRunner,
	leadRepo repository.LeadRepository,
	customerRepo repository.CustomerRepository,
	contactRepo repository.ContactPersonRepository,
) *ConvertLeadUseCase {
	return &ConvertLeadUseCase{tx: tx, leadRepo: leadRepo, customerRepo: customerRepo, contactRepo: contactRepo}
}

// CanBeConverted informa si el lead es convertible: estado won y ningún
// customer lo referencia todavía. Alimenta el gate de autorización y la
// bandera can_be_converted de las respuestas.
func (uc *ConvertLeadUseCase) CanBeConverted(lead *entity.Lead) (bool, error) {
	if !lead.IsWon() {
		return false, nil
	}
	existing, err := uc.customerRepo.GetByConvertedFromLead(lead.ID)
	if err != nil {
		return false, err
	}
	return existing == nil, nil
}

// Convert crea el customer a partir del lead y copia sus personas de contacto.
// Precondiciones (fallo de autorización, nunca escritura parcial):
//   - el actor tiene el permiso "convert leads"
//   - el lead está en won y no fue convertido antes
//
// El lead no se muta: sigue en won y queda excluido de futuras conversiones
// solo por la existencia del customer.
func (uc *ConvertLeadUseCase) Convert(ctx context.Context, actor *authz.Actor, leadID string, in dto.ConvertLeadRequest) (*dto.CustomerResponse, error) {
	lead, err := uc.leadRepo.GetByID(leadID)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, domain.ErrNotFound
	}
	existing, err := uc.customerRepo.GetByConvertedFromLead(lead.ID)
	if err != nil {
		return nil, err
	}
	if !actor.Can(domain.PermConvertLeads) {
		return nil, domain.ErrForbidden
	}
	if !authz.CanConvertLead(actor, lead, existing != nil) {
		return nil, domain.ErrLeadNotConvertible
	}

	contacts, err := uc.contactRepo.ListByParent(entity.LeadRef(lead.ID))
	if err != nil {
		return nil, err
	}

	now := time.Now()
	leadID = lead.ID
	customer := &entity.Customer{
		ID:                  uuid.New().String(),
		Name:                override(in.Name, lead.Name),
		EntityType:          lead.EntityType, // copiado tal cual, no sobrescribible
		Email:               override(in.Email, lead.Email),
		Phone:               override(in.Phone, lead.Phone),
		Company:             override(in.Company, lead.Company),
		Address:             override(in.Address, ""),
		City:                override(in.City, ""),
		State:               override(in.State, ""),
		Country:             override(in.Country, ""),
		PostalCode:          override(in.PostalCode, ""),
		Status:              override(in.Status, entity.CustomerStatusActive),
		Notes:               override(in.Notes, lead.Notes),
		AssignedTo:          overridePtr(in.AssignedTo, lead.AssignedTo),
		BusinessID:          overridePtr(in.BusinessID, lead.BusinessID),
		ConvertedFromLeadID: &leadID,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if !entity.ValidCustomerStatus(customer.Status) {
		return nil, domain.ErrInvalidInput
	}

	// Alta del customer y copia de contactos en una sola transacción.
	err = uc.tx.RunConversion(ctx, func(
		customerRepo repository.CustomerRepository,
		contactRepo repository.ContactPersonRepository,
	) error {
		if err := customerRepo.Create(customer); err != nil {
			return err
		}
		for _, c := range contacts {
			dup := &entity.ContactPerson{
				ID:          uuid.New().String(),
				Parent:      entity.CustomerRef(customer.ID),
				Name:        c.Name,
				Email:       c.Email,
				Mobile:      c.Mobile,
				Designation: c.Designation,
				IsPrimary:   c.IsPrimary, // el origen ya cumple "un solo primario"
				CreatedAt:   now,
				UpdatedAt:   now,
			}
			if err := contactRepo.Create(dup); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return customerToResponse(customer), nil
}

// override devuelve el valor del override si está presente, o el default.
func override(v *string, def string) string {
	if v != nil {
		return *v
	}
	return def
}

// overridePtr igual que override pero para campos nullable.
func overridePtr(v *string, def *string) *string {
	if v != nil {
		return v
	}
	return def
}

// customerToResponse mapea la entidad a DTO de salida.
func customerToResponse(c *entity.Customer) *dto.CustomerResponse {
	if c == nil {
		return nil
	}
	return &dto.CustomerResponse{
		ID:                  c.ID,
		Name:                c.Name,
		EntityType:          c.EntityType,
		Email:               c.Email,
		Phone:               c.Phone,
		Company:             c.Company,
		Address:             c.Address,
		City:                c.City,
		State:               c.State,
		Country:             c.Country,
		PostalCode:          c.PostalCode,
		Status:              c.Status,
		Notes:               c.Notes,
		AssignedTo:          c.AssignedTo,
		BusinessID:          c.BusinessID,
		ConvertedFromLeadID: c.ConvertedFromLeadID,
		CreatedAt:           c.CreatedAt,
		UpdatedAt:           c.UpdatedAt,
	}
}
