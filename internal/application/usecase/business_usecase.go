package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

// BusinessUseCase casos de uso CRUD para businesses.
type BusinessUseCase struct {
	repo repository.BusinessRepository
}

// NewBusinessUseCase construye el caso de uso.
func NewBusinessUseCase(repo repository.BusinessRepository) *BusinessUseCase {
	return &BusinessUseCase{repo: repo}
}

// Create crea un business; el estado por defecto es pending.
func (uc *BusinessUseCase) Create(in dto.CreateBusinessRequest) (*dto.BusinessResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.BusinessStatusPending
	}
	if !entity.ValidBusinessStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	business := &entity.Business{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Address:   in.Address,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(business); err != nil {
		return nil, err
	}
	return businessToResponse(business), nil
}

// GetByID obtiene un business por ID.
func (uc *BusinessUseCase) GetByID(id string) (*dto.BusinessResponse, error) {
	business, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, domain.ErrNotFound
	}
	return businessToResponse(business), nil
}

// List lista businesses con paginación.
func (uc *BusinessUseCase) List(limit, offset int) ([]*dto.BusinessResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.BusinessResponse, 0, len(list))
	for _, b := range list {
		out = append(out, businessToResponse(b))
	}
	return out, nil
}

// Update edita un business.
func (uc *BusinessUseCase) Update(id string, in dto.UpdateBusinessRequest) (*dto.BusinessResponse, error) {
	if in.Name == "" || !entity.ValidBusinessStatus(in.Status) {
		return nil, domain.ErrInvalidInput
	}
	business, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, domain.ErrNotFound
	}
	business.Name = in.Name
	business.Email = in.Email
	business.Phone = in.Phone
	business.Address = in.Address
	business.Status = in.Status
	business.UpdatedAt = time.Now()
	if err := uc.repo.Update(business); err != nil {
		return nil, err
	}
	return businessToResponse(business), nil
}

// Delete hace soft delete del business.
func (uc *BusinessUseCase) Delete(id string) error {
	business, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if business == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func businessToResponse(b *entity.Business) *dto.BusinessResponse {
	if b == nil {
		return nil
	}
	return &dto.BusinessResponse{
		ID:        b.ID,
		Name:      b.Name,
		Email:     b.Email,
		Phone:     b.Phone,
		Address:   b.Address,
		Status:    b.Status,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}
