package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

// ServiceUseCase casos de uso CRUD para services.
type ServiceUseCase struct {
	repo     repository.ServiceRepository
	leadRepo repository.LeadRepository
}

// NewServiceUseCase construye el caso de uso.
func NewServiceUseCase(repo repository.ServiceRepository, leadRepo repository.LeadRepository) *ServiceUseCase {
	return &ServiceUseCase{repo: repo, leadRepo: leadRepo}
}

// Create crea un service; el estado por defecto es active.
func (uc *ServiceUseCase) Create(in dto.CreateServiceRequest) (*dto.ServiceResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.ServiceStatusActive
	}
	if !entity.ValidServiceStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	service := &entity.Service{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(service); err != nil {
		return nil, err
	}
	return serviceToResponse(service), nil
}

// GetByID obtiene un service por ID.
func (uc *ServiceUseCase) GetByID(id string) (*dto.ServiceResponse, error) {
	service, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, domain.ErrNotFound
	}
	return serviceToResponse(service), nil
}

// List lista services con paginación.
func (uc *ServiceUseCase) List(limit, offset int) ([]*dto.ServiceResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ServiceResponse, 0, len(list))
	for _, s := range list {
		out = append(out, serviceToResponse(s))
	}
	return out, nil
}

// Update edita un service.
func (uc *ServiceUseCase) Update(id string, in dto.UpdateServiceRequest) (*dto.ServiceResponse, error) {
	if in.Name == "" || !entity.ValidServiceStatus(in.Status) {
		return nil, domain.ErrInvalidInput
	}
	service, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, domain.ErrNotFound
	}
	service.Name = in.Name
	service.Description = in.Description
	service.Price = in.Price
	service.Status = in.Status
	service.UpdatedAt = time.Now()
	if err := uc.repo.Update(service); err != nil {
		return nil, err
	}
	return serviceToResponse(service), nil
}

// Delete hace soft delete del service y anula service_id en los leads que lo
// referencian (regla de nullify, no de cascada).
func (uc *ServiceUseCase) Delete(id string) error {
	service, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if service == nil {
		return domain.ErrNotFound
	}
	if err := uc.leadRepo.ClearService(id); err != nil {
		return err
	}
	return uc.repo.Delete(id)
}

func serviceToResponse(s *entity.Service) *dto.ServiceResponse {
	if s == nil {
		return nil
	}
	return &dto.ServiceResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Price:       s.Price,
		Status:      s.Status,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}
