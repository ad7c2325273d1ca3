package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/crm-pro/internal/application/authz"
	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// UserUseCase administración de usuarios. Atajos de propiedad: un usuario
// siempre puede ver y editar su propio registro, y nunca eliminarse a sí mismo.
type UserUseCase struct {
	repo     repository.UserRepository
	roleRepo repository.RoleRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository, roleRepo repository.RoleRepository) *UserUseCase {
	return &UserUseCase{repo: repo, roleRepo: roleRepo}
}

// Create crea un usuario con roles asignados; valida que los roles existan.
func (uc *UserUseCase) Create(actor *authz.Actor, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if !actor.Can(domain.PermCreateUsers) {
		return nil, domain.ErrForbidden
	}
	if in.Name == "" || in.Email == "" || len(in.Password) < 8 {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	if err := uc.validateRoles(in.Roles); err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Status:       entity.UserStatusActive,
		Roles:        in.Roles,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(user); err != nil {
		return nil, err
	}
	return userToResponse(user), nil
}

// GetByID obtiene un usuario. El actor puede ver su propio registro sin permiso.
func (uc *UserUseCase) GetByID(actor *authz.Actor, id string) (*dto.UserResponse, error) {
	if !authz.CanViewUser(actor, id) {
		return nil, domain.ErrForbidden
	}
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return userToResponse(user), nil
}

// List lista usuarios con paginación.
func (uc *UserUseCase) List(actor *authz.Actor, limit, offset int) ([]*dto.UserResponse, error) {
	if !actor.Can(domain.PermViewUsers) {
		return nil, domain.ErrForbidden
	}
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, userToResponse(u))
	}
	return out, nil
}

// Update edita un usuario. El actor puede editar su propio registro sin permiso,
// pero cambiar roles o estado siempre exige el permiso de edición.
func (uc *UserUseCase) Update(actor *authz.Actor, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if !authz.CanUpdateUser(actor, id) {
		return nil, domain.ErrForbidden
	}
	if in.Name == "" || in.Email == "" || !entity.ValidUserStatus(in.Status) {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	rolesChanged := !equalRoles(user.Roles, in.Roles)
	statusChanged := user.Status != in.Status
	if (rolesChanged || statusChanged) && !actor.Can(domain.PermEditUsers) {
		return nil, domain.ErrForbidden
	}
	if rolesChanged {
		if err := uc.validateRoles(in.Roles); err != nil {
			return nil, err
		}
		user.Roles = in.Roles
	}
	user.Name = in.Name
	user.Email = in.Email
	user.Status = in.Status
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return userToResponse(user), nil
}

// Delete elimina un usuario (hard delete). Autoborrado prohibido siempre.
func (uc *UserUseCase) Delete(actor *authz.Actor, id string) error {
	if !authz.CanDeleteUser(actor, id) {
		return domain.ErrForbidden
	}
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// validateRoles comprueba que todos los roles asignados existen.
func (uc *UserUseCase) validateRoles(names []string) error {
	if len(names) == 0 {
		return nil
	}
	roles, err := uc.roleRepo.GetByNames(names)
	if err != nil {
		return err
	}
	if len(roles) != len(names) {
		return domain.ErrInvalidInput
	}
	return nil
}

func equalRoles(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	set := make(map[string]bool, len(a))
	for _, r := range a {
		set[r] = true
	}
	for _, r := range b {
		if !set[r] {
			return false
		}
	}
	return true
}

func userToResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Status:    u.Status,
		Roles:     u.Roles,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
