package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

// ProjectUseCase casos de uso CRUD para projects.
type ProjectUseCase struct {
	repo         repository.ProjectRepository
	customerRepo repository.CustomerRepository
}

// NewProjectUseCase construye el caso de uso.
func NewProjectUseCase(repo repository.ProjectRepository, customerRepo repository.CustomerRepository) *ProjectUseCase {
	return &ProjectUseCase{repo: repo, customerRepo: customerRepo}
}

// Create crea un project; el estado por defecto es pending. Si viene
// customer_id se valida que el customer exista.
func (uc *ProjectUseCase) Create(in dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.ProjectStatusPending
	}
	if !entity.ValidProjectStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	if in.CustomerID != nil {
		customer, err := uc.customerRepo.GetByID(*in.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, domain.ErrNotFound
		}
	}
	now := time.Now()
	project := &entity.Project{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		CustomerID:  in.CustomerID,
		ServiceID:   in.ServiceID,
		Status:      status,
		Budget:      in.Budget,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		AssignedTo:  in.AssignedTo,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(project); err != nil {
		return nil, err
	}
	return projectToResponse(project), nil
}

// GetByID obtiene un project por ID.
func (uc *ProjectUseCase) GetByID(id string) (*dto.ProjectResponse, error) {
	project, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.ErrNotFound
	}
	return projectToResponse(project), nil
}

// List lista projects con paginación.
func (uc *ProjectUseCase) List(limit, offset int) ([]*dto.ProjectResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	return projectsToResponses(list), nil
}

// ListByCustomer lista projects de un customer.
func (uc *ProjectUseCase) ListByCustomer(customerID string, limit, offset int) ([]*dto.ProjectResponse, error) {
	list, err := uc.repo.ListByCustomer(customerID, limit, offset)
	if err != nil {
		return nil, err
	}
	return projectsToResponses(list), nil
}

// Update edita un project.
func (uc *ProjectUseCase) Update(id string, in dto.UpdateProjectRequest) (*dto.ProjectResponse, error) {
	if in.Name == "" || !entity.ValidProjectStatus(in.Status) {
		return nil, domain.ErrInvalidInput
	}
	project, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.ErrNotFound
	}
	project.Name = in.Name
	project.Description = in.Description
	project.CustomerID = in.CustomerID
	project.ServiceID = in.ServiceID
	project.Status = in.Status
	project.Budget = in.Budget
	project.StartDate = in.StartDate
	project.EndDate = in.EndDate
	project.AssignedTo = in.AssignedTo
	project.UpdatedAt = time.Now()
	if err := uc.repo.Update(project); err != nil {
		return nil, err
	}
	return projectToResponse(project), nil
}

// Delete hace soft delete del project.
func (uc *ProjectUseCase) Delete(id string) error {
	project, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if project == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func projectsToResponses(list []*entity.Project) []*dto.ProjectResponse {
	out := make([]*dto.ProjectResponse, 0, len(list))
	for _, p := range list {
		out = append(out, projectToResponse(p))
	}
	return out
}

func projectToResponse(p *entity.Project) *dto.ProjectResponse {
	if p == nil {
		return nil
	}
	return &dto.ProjectResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		CustomerID:  p.CustomerID,
		ServiceID:   p.ServiceID,
		Status:      p.Status,
		Budget:      p.Budget,
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
		AssignedTo:  p.AssignedTo,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
