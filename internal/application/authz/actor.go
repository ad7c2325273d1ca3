package authz

import (
	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

// Actor usuario actuante con su set efectivo de permisos (unión plana de los
// permisos de sus roles). Se calcula una vez por petición.
type Actor struct {
	UserID      string
	Roles       []string
	permissions map[string]struct{}
}

// NewActor construye un actor a partir del set de permisos ya calculado.
func NewActor(userID string, roles []string, perms []string) *Actor {
	set := make(map[string]struct{}, len(perms))
	for _, p := range perms {
		set[p] = struct{}{}
	}
	return &Actor{UserID: userID, Roles: roles, permissions: set}
}

// Can informa si el actor tiene el permiso indicado.
func (a *Actor) Can(permission string) bool {
	if a == nil {
		return false
	}
	_, ok := a.permissions[permission]
	return ok
}

// Permissions devuelve los permisos del actor (copia).
func (a *Actor) Permissions() []string {
	out := make([]string, 0, len(a.permissions))
	for p := range a.permissions {
		out = append(out, p)
	}
	return out
}

// PermissionService resuelve el actor de una petición: usuario → roles → unión
// de permisos. Es el único punto que conoce cómo se compone el permiso efectivo.
type PermissionService struct {
	userRepo repository.UserRepository
	roleRepo repository.RoleRepository
}

// NewPermissionService construye el servicio.
func NewPermissionService(userRepo repository.UserRepository, roleRepo repository.RoleRepository) *PermissionService {
	return &PermissionService{userRepo: userRepo, roleRepo: roleRepo}
}

// ActorFor carga el usuario y calcula su set de permisos.
// Devuelve domain.ErrUserNotFound si el usuario no existe y domain.ErrForbidden
// si está inactivo.
func (s *PermissionService) ActorFor(userID string) (*Actor, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if user.Status != entity.UserStatusActive {
		return nil, domain.ErrForbidden
	}
	roles, err := s.roleRepo.GetByNames(user.Roles)
	if err != nil {
		return nil, err
	}
	var perms []string
	for _, r := range roles {
		perms = append(perms, r.Permissions...)
	}
	return NewActor(user.ID, user.Roles, perms), nil
}
