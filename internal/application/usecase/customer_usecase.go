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

// CustomerUseCase casos de uso CRUD para customers creados directamente.
// Un customer nunca vuelve a ser lead.
type CustomerUseCase struct {
	repo repository.CustomerRepository
	tx   crm.TxRunner
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository, tx crm.TxRunner) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, tx: tx}
}

// Create crea un customer directo (sin conversión, sin converted_from_lead_id).
func (uc *CustomerUseCase) Create(in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.Name == "" || !entity.ValidEntityType(in.EntityType) {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.CustomerStatusActive
	}
	if !entity.ValidCustomerStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	customer := &entity.Customer{
		ID:         uuid.New().String(),
		Name:       in.Name,
		EntityType: in.EntityType,
		Email:      in.Email,
		Phone:      in.Phone,
		Company:    in.Company,
		Address:    in.Address,
		City:       in.City,
		State:      in.State,
		Country:    in.Country,
		PostalCode: in.PostalCode,
		Status:     status,
		Notes:      in.Notes,
		AssignedTo: in.AssignedTo,
		BusinessID: in.BusinessID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(customer); err != nil {
		return nil, err
	}
	return customerToResponse(customer), nil
}

// GetByID obtiene un customer por ID.
func (uc *CustomerUseCase) GetByID(id string) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	return customerToResponse(customer), nil
}

// List lista customers con paginación.
func (uc *CustomerUseCase) List(limit, offset int) (*dto.CustomerListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	return toCustomerList(list, limit, offset), nil
}

// Search busca customers por nombre/email/empresa, insensible a acentos.
func (uc *CustomerUseCase) Search(query string, limit, offset int) (*dto.CustomerListResponse, error) {
	list, err := uc.repo.Search(search.Normalize(query), limit, offset)
	if err != nil {
		return nil, err
	}
	return toCustomerList(list, limit, offset), nil
}

// Update edita un customer. converted_from_lead_id y entity_type no se tocan.
func (uc *CustomerUseCase) Update(id string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.Name == "" || !entity.ValidCustomerStatus(in.Status) {
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	customer.Name = in.Name
	customer.Email = in.Email
	customer.Phone = in.Phone
	customer.Company = in.Company
	customer.Address = in.Address
	customer.City = in.City
	customer.State = in.State
	customer.Country = in.Country
	customer.PostalCode = in.PostalCode
	customer.Status = in.Status
	customer.Notes = in.Notes
	customer.AssignedTo = in.AssignedTo
	customer.BusinessID = in.BusinessID
	customer.UpdatedAt = time.Now()
	if err := uc.repo.Update(customer); err != nil {
		return nil, err
	}
	return customerToResponse(customer), nil
}

// Delete hace soft delete del customer y borra en cascada sus contactos y
// seguimientos, todo en una transacción.
func (uc *CustomerUseCase) Delete(ctx context.Context, id string) error {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if customer == nil {
		return domain.ErrNotFound
	}
	ref := entity.CustomerRef(id)
	return uc.tx.RunCascade(ctx, func(
		_ repository.LeadRepository,
		customerRepo repository.CustomerRepository,
		contactRepo repository.ContactPersonRepository,
		followUpRepo repository.FollowUpRepository,
	) error {
		if err := contactRepo.DeleteByParent(ref); err != nil {
			return err
		}
		if err := followUpRepo.DeleteByParent(ref); err != nil {
			return err
		}
		return customerRepo.Delete(id)
	})
}

func toCustomerList(list []*entity.Customer, limit, offset int) *dto.CustomerListResponse {
	items := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *customerToResponse(c))
	}
	return &dto.CustomerListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
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
