package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/crm-pro/internal/application/authz"
	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/application/usecase"
	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
)

func roleAdminActor() *authz.Actor {
	return authz.NewActor("admin-1", []string{domain.RoleAdmin}, []string{
		domain.PermViewRoles, domain.PermCreateRoles, domain.PermEditRoles, domain.PermDeleteRoles,
	})
}

func newRoleFixture() (*memRoleRepo, *usecase.RoleUseCase) {
	repo := newMemRoleRepo()
	return repo, usecase.NewRoleUseCase(repo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Creación y validación del catálogo de permisos
// ──────────────────────────────────────────────────────────────────────────────

func TestRoleCreate_PermisosDelCatalogo(t *testing.T) {
	_, uc := newRoleFixture()

	out, err := uc.Create(roleAdminActor(), dto.CreateRoleRequest{
		Name:        "ventas-senior",
		Description: "ventas con conversión",
		Permissions: []string{domain.PermViewLeads, domain.PermConvertLeads},
	})
	require.NoError(t, err)
	assert.Equal(t, "ventas-senior", out.Name)
	assert.False(t, out.IsSystem)
}

// Un permiso fuera del catálogo invalida toda la petición.
func TestRoleCreate_PermisoDesconocidoRechazado(t *testing.T) {
	_, uc := newRoleFixture()

	_, err := uc.Create(roleAdminActor(), dto.CreateRoleRequest{
		Name:        "ventas-senior",
		Permissions: []string{domain.PermViewLeads, "launch missiles"},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRoleCreate_NombreDuplicado(t *testing.T) {
	repo, uc := newRoleFixture()
	require.NoError(t, repo.Create(&entity.Role{ID: "r1", Name: "ventas-senior"}))

	_, err := uc.Create(roleAdminActor(), dto.CreateRoleRequest{Name: "ventas-senior"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestRoleUpdate_PermisoDesconocidoRechazado(t *testing.T) {
	repo, uc := newRoleFixture()
	require.NoError(t, repo.Create(&entity.Role{ID: "r1", Name: "ventas-senior"}))

	_, err := uc.Update(roleAdminActor(), "r1", dto.UpdateRoleRequest{
		Permissions: []string{"nope"},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Protección de roles de sistema
// ──────────────────────────────────────────────────────────────────────────────

// Los roles de sistema no se eliminan ni con el permiso de borrado.
func TestRoleDelete_RolDeSistemaProtegido(t *testing.T) {
	repo, uc := newRoleFixture()
	require.NoError(t, repo.Create(&entity.Role{ID: "r1", Name: domain.RoleSuperAdmin}))

	err := uc.Delete(roleAdminActor(), "r1")
	assert.ErrorIs(t, err, domain.ErrSystemRole)

	stored, _ := repo.GetByID("r1")
	assert.NotNil(t, stored, "el rol de sistema sigue existiendo")
}

func TestRoleDelete_RolPersonalizado(t *testing.T) {
	repo, uc := newRoleFixture()
	require.NoError(t, repo.Create(&entity.Role{ID: "r1", Name: "ventas-senior"}))

	require.NoError(t, uc.Delete(roleAdminActor(), "r1"))
	stored, _ := repo.GetByID("r1")
	assert.Nil(t, stored)
}

func TestRoleDelete_SinPermiso(t *testing.T) {
	repo, uc := newRoleFixture()
	require.NoError(t, repo.Create(&entity.Role{ID: "r1", Name: "ventas-senior"}))

	actor := authz.NewActor("user-1", []string{domain.RoleUser}, []string{domain.PermViewRoles})
	err := uc.Delete(actor, "r1")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// El catálogo base marca is_system en la respuesta.
func TestRoleGetByID_MarcaSistema(t *testing.T) {
	repo, uc := newRoleFixture()
	require.NoError(t, repo.Create(&entity.Role{ID: "r1", Name: domain.RoleAdmin}))

	out, err := uc.GetByID(roleAdminActor(), "r1")
	require.NoError(t, err)
	assert.True(t, out.IsSystem)
}
