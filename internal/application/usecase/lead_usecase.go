package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/crm-pro/internal/application/crm"
	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
	"github.com/tu-usuario/crm-pro/pkg/search"
)

// LeadUseCase casos de uso CRUD y de pipeline para leads. La conversión a
// customer vive aparte en crm.ConvertLeadUseCase.
type LeadUseCase struct {
	repo         repository.LeadRepository
	customerRepo repository.CustomerRepository
	tx           crm.TxRunner
}

// NewLeadUseCase construye el caso de uso.
func NewLeadUseCase(repo repository.LeadRepository, customerRepo repository.CustomerRepository, tx crm.TxRunner) *LeadUseCase {
	return &LeadUseCase{repo: repo, customerRepo: customerRepo, tx: tx}
}

// Create crea un lead en estado new.
func (uc *LeadUseCase) Create(in dto.CreateLeadRequest) (*dto.LeadResponse, error) {
	if in.Name == "" || !entity.ValidEntityType(in.EntityType) || !entity.ValidLeadSource(in.Source) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	lead := &entity.Lead{
		ID:             uuid.New().String(),
		Name:           in.Name,
		EntityType:     in.EntityType,
		Email:          in.Email,
		Phone:          in.Phone,
		Company:        in.Company,
		Source:         in.Source,
		Status:         entity.LeadStatusNew,
		EstimatedValue: in.EstimatedValue,
		Notes:          in.Notes,
		AssignedTo:     in.AssignedTo,
		BusinessID:     in.BusinessID,
		ServiceID:      in.ServiceID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(lead); err != nil {
		return nil, err
	}
	// Un lead nuevo jamás es convertible (estado new).
	return uc.toResponse(lead, false), nil
}

// GetByID obtiene un lead con su bandera can_be_converted.
func (uc *LeadUseCase) GetByID(id string) (*dto.LeadResponse, error) {
	lead, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, domain.ErrNotFound
	}
	convertible, err := uc.canBeConverted(lead)
	if err != nil {
		return nil, err
	}
	return uc.toResponse(lead, convertible), nil
}

// List lista leads con paginación.
func (uc *LeadUseCase) List(limit, offset int) (*dto.LeadListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	return uc.toListResponse(list, limit, offset)
}

// Search busca leads por nombre/email/empresa, insensible a acentos.
func (uc *LeadUseCase) Search(query string, limit, offset int) (*dto.LeadListResponse, error) {
	list, err := uc.repo.Search(search.Normalize(query), limit, offset)
	if err != nil {
		return nil, err
	}
	return uc.toListResponse(list, limit, offset)
}

// Update edita un lead. Email y teléfono son inmutables en el flujo de edición:
// el DTO no los trae y aquí no se tocan.
func (uc *LeadUseCase) Update(id string, in dto.UpdateLeadRequest) (*dto.LeadResponse, error) {
	if in.Name == "" || !entity.ValidLeadSource(in.Source) {
		return nil, domain.ErrInvalidInput
	}
	lead, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, domain.ErrNotFound
	}
	lead.Name = in.Name
	lead.Company = in.Company
	lead.Source = in.Source
	lead.EstimatedValue = in.EstimatedValue
	lead.Notes = in.Notes
	lead.AssignedTo = in.AssignedTo
	lead.BusinessID = in.BusinessID
	lead.ServiceID = in.ServiceID
	lead.UpdatedAt = time.Now()
	if err := uc.repo.Update(lead); err != nil {
		return nil, err
	}
	convertible, err := uc.canBeConverted(lead)
	if err != nil {
		return nil, err
	}
	return uc.toResponse(lead, convertible), nil
}

// ChangeStatus mueve el lead por el pipeline validando la transición.
func (uc *LeadUseCase) ChangeStatus(id string, in dto.ChangeLeadStatusRequest) (*dto.LeadResponse, error) {
	if !entity.ValidLeadStatus(in.Status) {
		return nil, domain.ErrInvalidInput
	}
	lead, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, domain.ErrNotFound
	}
	if !lead.CanTransitionTo(in.Status) {
		return nil, domain.ErrInvalidTransition
	}
	lead.Status = in.Status
	lead.UpdatedAt = time.Now()
	if err := uc.repo.Update(lead); err != nil {
		return nil, err
	}
	convertible, err := uc.canBeConverted(lead)
	if err != nil {
		return nil, err
	}
	return uc.toResponse(lead, convertible), nil
}

// Delete hace soft delete del lead y borra en cascada sus contactos y
// seguimientos, todo en una transacción.
func (uc *LeadUseCase) Delete(ctx context.Context, id string) error {
	lead, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if lead == nil {
		return domain.ErrNotFound
	}
	ref := entity.LeadRef(id)
	return uc.tx.RunCascade(ctx, func(
		leadRepo repository.LeadRepository,
		_ repository.CustomerRepository,
		contactRepo repository.ContactPersonRepository,
		followUpRepo repository.FollowUpRepository,
	) error {
		if err := contactRepo.DeleteByParent(ref); err != nil {
			return err
		}
		if err := followUpRepo.DeleteByParent(ref); err != nil {
			return err
		}
		return leadRepo.Delete(id)
	})
}

// canBeConverted estado won y sin customer que referencie al lead.
func (uc *LeadUseCase) canBeConverted(lead *entity.Lead) (bool, error) {
	if !lead.IsWon() {
		return false, nil
	}
	existing, err := uc.customerRepo.GetByConvertedFromLead(lead.ID)
	if err != nil {
		return false, err
	}
	return existing == nil, nil
}

func (uc *LeadUseCase) toListResponse(list []*entity.Lead, limit, offset int) (*dto.LeadListResponse, error) {
	items := make([]dto.LeadResponse, 0, len(list))
	for _, l := range list {
		convertible, err := uc.canBeConverted(l)
		if err != nil {
			return nil, err
		}
		items = append(items, *uc.toResponse(l, convertible))
	}
	return &dto.LeadListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func (uc *LeadUseCase) toResponse(l *entity.Lead, convertible bool) *dto.LeadResponse {
	return &dto.LeadResponse{
		ID:             l.ID,
		Name:           l.Name,
		EntityType:     l.EntityType,
		Email:          l.Email,
		Phone:          l.Phone,
		Company:        l.Company,
		Source:         l.Source,
		Status:         l.Status,
		EstimatedValue: l.EstimatedValue,
		Notes:          l.Notes,
		AssignedTo:     l.AssignedTo,
		BusinessID:     l.BusinessID,
		ServiceID:      l.ServiceID,
		CanBeConverted: convertible,
		CreatedAt:      l.CreatedAt,
		UpdatedAt:      l.UpdatedAt,
	}
}
