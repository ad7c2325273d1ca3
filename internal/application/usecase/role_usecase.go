package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/crm-pro/internal/application/authz"
	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

// RoleUseCase administración de roles. Los roles de sistema (super-admin,
// admin, user) no se pueden eliminar con ningún permiso.
type RoleUseCase struct {
	repo repository.RoleRepository
}

// NewRoleUseCase construye el caso de uso.
func NewRoleUseCase(repo repository.RoleRepository) *RoleUseCase {
	return &RoleUseCase{repo: repo}
}

// Create crea un rol; los permisos deben pertenecer al catálogo.
func (uc *RoleUseCase) Create(actor *authz.Actor, in dto.CreateRoleRequest) (*dto.RoleResponse, error) {
	if !actor.Can(domain.PermCreateRoles) {
		return nil, domain.ErrForbidden
	}
	if in.Name == "" || !validPermissions(in.Permissions) {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByName(in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	role := &entity.Role{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		Permissions: in.Permissions,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(role); err != nil {
		return nil, err
	}
	return roleToResponse(role), nil
}

// GetByID obtiene un rol por ID.
func (uc *RoleUseCase) GetByID(actor *authz.Actor, id string) (*dto.RoleResponse, error) {
	if !actor.Can(domain.PermViewRoles) {
		return nil, domain.ErrForbidden
	}
	role, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, domain.ErrNotFound
	}
	return roleToResponse(role), nil
}

// List lista roles con paginación.
func (uc *RoleUseCase) List(actor *authz.Actor, limit, offset int) ([]*dto.RoleResponse, error) {
	if !actor.Can(domain.PermViewRoles) {
		return nil, domain.ErrForbidden
	}
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.RoleResponse, 0, len(list))
	for _, r := range list {
		out = append(out, roleToResponse(r))
	}
	return out, nil
}

// Update edita descripción y permisos de un rol. El nombre es inmutable.
func (uc *RoleUseCase) Update(actor *authz.Actor, id string, in dto.UpdateRoleRequest) (*dto.RoleResponse, error) {
	if !actor.Can(domain.PermEditRoles) {
		return nil, domain.ErrForbidden
	}
	if !validPermissions(in.Permissions) {
		return nil, domain.ErrInvalidInput
	}
	role, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, domain.ErrNotFound
	}
	role.Description = in.Description
	role.Permissions = in.Permissions
	role.UpdatedAt = time.Now()
	if err := uc.repo.Update(role); err != nil {
		return nil, err
	}
	return roleToResponse(role), nil
}

// Delete elimina un rol. Los roles de sistema devuelven ErrSystemRole.
func (uc *RoleUseCase) Delete(actor *authz.Actor, id string) error {
	role, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if role == nil {
		return domain.ErrNotFound
	}
	if !actor.Can(domain.PermDeleteRoles) {
		return domain.ErrForbidden
	}
	if !authz.CanDeleteRole(actor, role) {
		return domain.ErrSystemRole
	}
	return uc.repo.Delete(id)
}

// validPermissions comprueba que todos los permisos pertenecen al catálogo.
func validPermissions(perms []string) bool {
	catalog := make(map[string]bool)
	for _, p := range domain.AllPermissions() {
		catalog[p] = true
	}
	for _, p := range perms {
		if !catalog[p] {
			return false
		}
	}
	return true
}

func roleToResponse(r *entity.Role) *dto.RoleResponse {
	if r == nil {
		return nil
	}
	return &dto.RoleResponse{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Permissions: r.Permissions,
		IsSystem:    domain.IsSystemRole(r.Name),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
