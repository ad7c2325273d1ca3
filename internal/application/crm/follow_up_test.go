package crm_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/crm-pro/internal/application/authz"
	"github.com/tu-usuario/crm-pro/internal/application/crm"
	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
)

type followUpFixture struct {
	leadRepo     *fakeLeadRepo
	customerRepo *fakeCustomerRepo
	followUpRepo *fakeFollowUpRepo
	uc           *crm.FollowUpUseCase
}

func newFollowUpFixture() *followUpFixture {
	leadRepo := newFakeLeadRepo()
	customerRepo := newFakeCustomerRepo()
	followUpRepo := newFakeFollowUpRepo()
	resolver := crm.NewParentResolver(leadRepo, customerRepo)
	return &followUpFixture{
		leadRepo:     leadRepo,
		customerRepo: customerRepo,
		followUpRepo: followUpRepo,
		uc:           crm.NewFollowUpUseCase(followUpRepo, resolver),
	}
}

func followUpActor(userID string) *authz.Actor {
	return authz.NewActor(userID, []string{domain.RoleSales}, []string{
		domain.PermManageFollowUps,
		domain.PermViewFollowUps,
		domain.PermCompleteFollowUps,
	})
}

func followUpRequest(parentID string, date time.Time) dto.CreateFollowUpRequest {
	return dto.CreateFollowUpRequest{
		ParentRequest: dto.ParentRequest{ParentType: "lead", ParentID: parentID},
		FollowUpDate:  date,
		Notes:         "llamar para cotización",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Agendar
// ──────────────────────────────────────────────────────────────────────────────

// Agendar crea un seguimiento pendiente con el creador sellado.
func TestFollowUp_AddCreaPendienteConCreador(t *testing.T) {
	f := newFollowUpFixture()
	require.NoError(t, f.leadRepo.Create(businessLead("lead-1")))

	tomorrow := time.Now().UTC().AddDate(0, 0, 1)
	out, err := f.uc.Add(followUpActor("user-1"), followUpRequest("lead-1", tomorrow))
	require.NoError(t, err)

	assert.Equal(t, entity.FollowUpStatusPending, out.Status)
	assert.Equal(t, "user-1", out.CreatedBy)
	assert.Nil(t, out.CompletedBy)
	assert.Nil(t, out.CompletedAt)
	assert.False(t, out.IsOverdue, "una fecha futura no está vencida")
}

// Los seguimientos sí aplican a padres individual.
func TestFollowUp_PadreIndividualPermitido(t *testing.T) {
	f := newFollowUpFixture()
	lead := businessLead("lead-1")
	lead.EntityType = entity.EntityTypeIndividual
	require.NoError(t, f.leadRepo.Create(lead))

	_, err := f.uc.Add(followUpActor("user-1"), followUpRequest("lead-1", time.Now().UTC()))
	require.NoError(t, err)
}

func TestFollowUp_SinFechaRechazado(t *testing.T) {
	f := newFollowUpFixture()
	require.NoError(t, f.leadRepo.Create(businessLead("lead-1")))

	_, err := f.uc.Add(followUpActor("user-1"), followUpRequest("lead-1", time.Time{}))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestFollowUp_PadreInexistente(t *testing.T) {
	f := newFollowUpFixture()
	_, err := f.uc.Add(followUpActor("user-1"), followUpRequest("nope", time.Now().UTC()))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Completar y cancelar
// ──────────────────────────────────────────────────────────────────────────────

// Completar sella quién completó y cuándo.
func TestFollowUp_MarkCompletedSellaCompletador(t *testing.T) {
	f := newFollowUpFixture()
	require.NoError(t, f.leadRepo.Create(businessLead("lead-1")))

	created, err := f.uc.Add(followUpActor("user-1"), followUpRequest("lead-1", time.Now().UTC()))
	require.NoError(t, err)

	out, err := f.uc.MarkCompleted(followUpActor("user-2"), created.ID)
	require.NoError(t, err)

	assert.Equal(t, entity.FollowUpStatusCompleted, out.Status)
	require.NotNil(t, out.CompletedBy)
	assert.Equal(t, "user-2", *out.CompletedBy, "completa quien ejecuta, no quien creó")
	assert.NotNil(t, out.CompletedAt)
}

// Completar dos veces se rechaza y los sellos originales quedan intactos.
func TestFollowUp_DobleCompletadoRechazado(t *testing.T) {
	f := newFollowUpFixture()
	require.NoError(t, f.leadRepo.Create(businessLead("lead-1")))

	created, err := f.uc.Add(followUpActor("user-1"), followUpRequest("lead-1", time.Now().UTC()))
	require.NoError(t, err)
	_, err = f.uc.MarkCompleted(followUpActor("user-2"), created.ID)
	require.NoError(t, err)

	_, err = f.uc.MarkCompleted(followUpActor("user-3"), created.ID)
	assert.ErrorIs(t, err, domain.ErrFollowUpNotPending)

	stored, _ := f.followUpRepo.GetByID(created.ID)
	require.NotNil(t, stored.CompletedBy)
	assert.Equal(t, "user-2", *stored.CompletedBy, "los sellos del primer completado no se pisan")
}

// Un seguimiento cancelado tampoco puede completarse.
func TestFollowUp_CompletarCanceladoRechazado(t *testing.T) {
	f := newFollowUpFixture()
	require.NoError(t, f.leadRepo.Create(businessLead("lead-1")))

	created, err := f.uc.Add(followUpActor("user-1"), followUpRequest("lead-1", time.Now().UTC()))
	require.NoError(t, err)
	_, err = f.uc.MarkCancelled(followUpActor("user-1"), created.ID)
	require.NoError(t, err)

	_, err = f.uc.MarkCompleted(followUpActor("user-2"), created.ID)
	assert.ErrorIs(t, err, domain.ErrFollowUpNotPending)
}

// Cancelar no sella completador ni timestamp.
func TestFollowUp_MarkCancelledSinSellos(t *testing.T) {
	f := newFollowUpFixture()
	require.NoError(t, f.leadRepo.Create(businessLead("lead-1")))

	created, err := f.uc.Add(followUpActor("user-1"), followUpRequest("lead-1", time.Now().UTC()))
	require.NoError(t, err)

	out, err := f.uc.MarkCancelled(followUpActor("user-1"), created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.FollowUpStatusCancelled, out.Status)
	assert.Nil(t, out.CompletedBy)
	assert.Nil(t, out.CompletedAt)
}

func TestFollowUp_CompletarSinPermiso(t *testing.T) {
	f := newFollowUpFixture()
	require.NoError(t, f.leadRepo.Create(businessLead("lead-1")))

	created, err := f.uc.Add(followUpActor("user-1"), followUpRequest("lead-1", time.Now().UTC()))
	require.NoError(t, err)

	actor := authz.NewActor("user-2", []string{domain.RoleUser}, []string{domain.PermViewFollowUps})
	_, err = f.uc.MarkCompleted(actor, created.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// ──────────────────────────────────────────────────────────────────────────────
// Vencimiento
// ──────────────────────────────────────────────────────────────────────────────

// Solo los pendientes con fecha anterior a hoy aparecen como vencidos.
func TestFollowUp_ListOverdue(t *testing.T) {
	f := newFollowUpFixture()
	require.NoError(t, f.leadRepo.Create(businessLead("lead-1")))
	actor := followUpActor("user-1")

	yesterday := time.Now().UTC().AddDate(0, 0, -1)
	today := time.Now().UTC()
	tomorrow := time.Now().UTC().AddDate(0, 0, 1)

	overdue, err := f.uc.Add(actor, followUpRequest("lead-1", yesterday))
	require.NoError(t, err)
	_, err = f.uc.Add(actor, followUpRequest("lead-1", today))
	require.NoError(t, err)
	_, err = f.uc.Add(actor, followUpRequest("lead-1", tomorrow))
	require.NoError(t, err)

	// Uno vencido pero ya completado: no cuenta.
	done, err := f.uc.Add(actor, followUpRequest("lead-1", yesterday))
	require.NoError(t, err)
	_, err = f.uc.MarkCompleted(actor, done.ID)
	require.NoError(t, err)

	list, err := f.uc.ListOverdue(actor, 100, 0)
	require.NoError(t, err)
	require.Len(t, list, 1, "solo el pendiente de ayer está vencido")
	assert.Equal(t, overdue.ID, list[0].ID)
	assert.True(t, list[0].IsOverdue)
}
