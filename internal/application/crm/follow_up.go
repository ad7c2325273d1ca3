package crm

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/crm-pro/internal/application/authz"
	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

// FollowUpUseCase agenda, completa y cancela seguimientos sobre un padre
// polimórfico. Aplica a padres individual y business.
type FollowUpUseCase struct {
	followUpRepo repository.FollowUpRepository
	resolver     *ParentResolver
	now          func() time.Time // inyectable en tests
}

// NewFollowUpUseCase construye el caso de uso.
func NewFollowUpUseCase(followUpRepo repository.FollowUpRepository, resolver *ParentResolver) *FollowUpUseCase {
	return &FollowUpUseCase{followUpRepo: followUpRepo, resolver: resolver, now: time.Now}
}

// Add agenda un seguimiento pendiente contra el padre, sellando created_by.
func (uc *FollowUpUseCase) Add(actor *authz.Actor, in dto.CreateFollowUpRequest) (*dto.FollowUpResponse, error) {
	if !actor.Can(domain.PermManageFollowUps) {
		return nil, domain.ErrForbidden
	}
	if in.FollowUpDate.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	ref := entity.ParentRef{Kind: entity.ParentKind(in.ParentType), ID: in.ParentID}
	if _, err := uc.resolver.Resolve(ref); err != nil {
		return nil, err
	}
	now := uc.now()
	followUp := &entity.FollowUp{
		ID:           uuid.New().String(),
		Parent:       ref,
		FollowUpDate: in.FollowUpDate,
		Notes:        in.Notes,
		Status:       entity.FollowUpStatusPending,
		CreatedBy:    actor.UserID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.followUpRepo.Create(followUp); err != nil {
		return nil, err
	}
	return uc.followUpToResponse(followUp), nil
}

// Update edita fecha/notas/estado directamente, sin sellos. Quien necesite la
// semántica de completado (completador + timestamp) debe usar MarkCompleted.
func (uc *FollowUpUseCase) Update(actor *authz.Actor, id string, in dto.UpdateFollowUpRequest) (*dto.FollowUpResponse, error) {
	if !actor.Can(domain.PermManageFollowUps) {
		return nil, domain.ErrForbidden
	}
	if !entity.ValidFollowUpStatus(in.Status) || in.FollowUpDate.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	followUp, err := uc.followUpRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if followUp == nil {
		return nil, domain.ErrNotFound
	}
	followUp.FollowUpDate = in.FollowUpDate
	followUp.Notes = in.Notes
	followUp.Status = in.Status
	followUp.UpdatedAt = uc.now()
	if err := uc.followUpRepo.Update(followUp); err != nil {
		return nil, err
	}
	return uc.followUpToResponse(followUp), nil
}

// MarkCompleted completa un seguimiento pendiente sellando completed_by y
// completed_at. Sobre un seguimiento completado o cancelado se rechaza en el
// límite de autorización y los sellos previos quedan intactos. El UPDATE
// condicionado a status=pending cierra la carrera de doble completado.
func (uc *FollowUpUseCase) MarkCompleted(actor *authz.Actor, id string) (*dto.FollowUpResponse, error) {
	followUp, err := uc.followUpRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if followUp == nil {
		return nil, domain.ErrNotFound
	}
	if !actor.Can(domain.PermCompleteFollowUps) {
		return nil, domain.ErrForbidden
	}
	if !authz.CanCompleteFollowUp(actor, followUp) {
		return nil, domain.ErrFollowUpNotPending
	}
	completedAt := uc.now()
	updated, err := uc.followUpRepo.Complete(id, actor.UserID, completedAt)
	if err != nil {
		return nil, err
	}
	if !updated {
		// Otro request lo completó o canceló entre la lectura y el update.
		return nil, domain.ErrFollowUpNotPending
	}
	completedBy := actor.UserID
	followUp.Status = entity.FollowUpStatusCompleted
	followUp.CompletedBy = &completedBy
	followUp.CompletedAt = &completedAt
	followUp.UpdatedAt = completedAt
	return uc.followUpToResponse(followUp), nil
}

// MarkCancelled cancela el seguimiento sin sellar completador ni timestamp.
func (uc *FollowUpUseCase) MarkCancelled(actor *authz.Actor, id string) (*dto.FollowUpResponse, error) {
	if !actor.Can(domain.PermManageFollowUps) {
		return nil, domain.ErrForbidden
	}
	followUp, err := uc.followUpRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if followUp == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.followUpRepo.Cancel(id); err != nil {
		return nil, err
	}
	followUp.Status = entity.FollowUpStatusCancelled
	followUp.UpdatedAt = uc.now()
	return uc.followUpToResponse(followUp), nil
}

// Delete elimina el seguimiento (hard delete).
func (uc *FollowUpUseCase) Delete(actor *authz.Actor, id string) error {
	if !actor.Can(domain.PermManageFollowUps) {
		return domain.ErrForbidden
	}
	followUp, err := uc.followUpRepo.GetByID(id)
	if err != nil {
		return err
	}
	if followUp == nil {
		return domain.ErrNotFound
	}
	return uc.followUpRepo.Delete(id)
}

// ListByParent lista los seguimientos del padre.
func (uc *FollowUpUseCase) ListByParent(actor *authz.Actor, parentType, parentID string) ([]*dto.FollowUpResponse, error) {
	if !actor.Can(domain.PermViewFollowUps) {
		return nil, domain.ErrForbidden
	}
	ref := entity.ParentRef{Kind: entity.ParentKind(parentType), ID: parentID}
	if _, err := uc.resolver.Resolve(ref); err != nil {
		return nil, err
	}
	list, err := uc.followUpRepo.ListByParent(ref)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.FollowUpResponse, 0, len(list))
	for _, f := range list {
		out = append(out, uc.followUpToResponse(f))
	}
	return out, nil
}

// ListOverdue lista seguimientos pendientes ya vencidos (comparación solo de fecha).
func (uc *FollowUpUseCase) ListOverdue(actor *authz.Actor, limit, offset int) ([]*dto.FollowUpResponse, error) {
	if !actor.Can(domain.PermViewFollowUps) {
		return nil, domain.ErrForbidden
	}
	list, err := uc.followUpRepo.ListOverdue(uc.now(), limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.FollowUpResponse, 0, len(list))
	for _, f := range list {
		out = append(out, uc.followUpToResponse(f))
	}
	return out, nil
}

// followUpToResponse mapea la entidad a DTO, calculando is_overdue contra hoy.
func (uc *FollowUpUseCase) followUpToResponse(f *entity.FollowUp) *dto.FollowUpResponse {
	if f == nil {
		return nil
	}
	return &dto.FollowUpResponse{
		ID:           f.ID,
		ParentType:   string(f.Parent.Kind),
		ParentID:     f.Parent.ID,
		FollowUpDate: f.FollowUpDate,
		Notes:        f.Notes,
		Status:       f.Status,
		CreatedBy:    f.CreatedBy,
		CompletedBy:  f.CompletedBy,
		CompletedAt:  f.CompletedAt,
		IsOverdue:    f.IsOverdue(uc.now()),
		CreatedAt:    f.CreatedAt,
		UpdatedAt:    f.UpdatedAt,
	}
}
