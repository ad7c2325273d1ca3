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

func newUserFixture() (*memUserRepo, *usecase.UserUseCase) {
	userRepo := newMemUserRepo()
	roleRepo := newMemRoleRepo()
	return userRepo, usecase.NewUserUseCase(userRepo, roleRepo)
}

func seedUser(t *testing.T, repo *memUserRepo, id string) {
	t.Helper()
	require.NoError(t, repo.Create(&entity.User{
		ID: id, Name: "Ana", Email: "ana@crm.co", Status: entity.UserStatusActive,
	}))
}

func selfActor(id string) *authz.Actor {
	return authz.NewActor(id, []string{domain.RoleUser}, nil)
}

func userAdminActor() *authz.Actor {
	return authz.NewActor("admin-1", []string{domain.RoleAdmin},
		[]string{domain.PermViewUsers, domain.PermEditUsers})
}

func updateReq(status string) dto.UpdateUserRequest {
	return dto.UpdateUserRequest{Name: "Ana", Email: "ana@crm.co", Status: status}
}

// ──────────────────────────────────────────────────────────────────────────────
// Edición: estado validado y protegido
// ──────────────────────────────────────────────────────────────────────────────

// Un estado fuera de active|inactive se rechaza y no se persiste.
func TestUserUpdate_EstadoInvalidoRechazado(t *testing.T) {
	repo, uc := newUserFixture()
	seedUser(t, repo, "u1")

	_, err := uc.Update(userAdminActor(), "u1", updateReq("zombie"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	stored, _ := repo.GetByID("u1")
	assert.Equal(t, entity.UserStatusActive, stored.Status, "el estado original no se toca")
}

// El atajo de edición propia no alcanza para cambiar el propio estado.
func TestUserUpdate_PropioNoPuedeCambiarEstado(t *testing.T) {
	repo, uc := newUserFixture()
	seedUser(t, repo, "u1")

	_, err := uc.Update(selfActor("u1"), "u1", updateReq(entity.UserStatusInactive))
	assert.ErrorIs(t, err, domain.ErrForbidden)

	stored, _ := repo.GetByID("u1")
	assert.Equal(t, entity.UserStatusActive, stored.Status)
}

// Editar nombre/email propios sin tocar estado ni roles sigue permitido sin permiso.
func TestUserUpdate_PropioSinCambioDeEstado(t *testing.T) {
	repo, uc := newUserFixture()
	seedUser(t, repo, "u1")

	out, err := uc.Update(selfActor("u1"), "u1", dto.UpdateUserRequest{
		Name: "Ana María", Email: "ana@crm.co", Status: entity.UserStatusActive,
	})
	require.NoError(t, err)
	assert.Equal(t, "Ana María", out.Name)
}

// Con el permiso de edición el cambio de estado sí procede.
func TestUserUpdate_AdminCambiaEstado(t *testing.T) {
	repo, uc := newUserFixture()
	seedUser(t, repo, "u1")

	out, err := uc.Update(userAdminActor(), "u1", updateReq(entity.UserStatusInactive))
	require.NoError(t, err)
	assert.Equal(t, entity.UserStatusInactive, out.Status)

	stored, _ := repo.GetByID("u1")
	assert.Equal(t, entity.UserStatusInactive, stored.Status)
}

// Cambiar roles sin el permiso de edición también se rechaza, incluso sobre uno mismo.
func TestUserUpdate_PropioNoPuedeCambiarRoles(t *testing.T) {
	repo, uc := newUserFixture()
	seedUser(t, repo, "u1")

	in := updateReq(entity.UserStatusActive)
	in.Roles = []string{domain.RoleAdmin}
	_, err := uc.Update(selfActor("u1"), "u1", in)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
