package crm

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/crm-pro/internal/application/authz"
	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

// ContactPersonUseCase mantiene las personas de contacto de un padre polimórfico.
// Invariantes: solo padres de tipo business, y como máximo un contacto primario
// por padre. Los cambios de primario se serializan con un lock de fila sobre el
// set de contactos del padre.
type ContactPersonUseCase struct {
	tx          TxRunner
	contactRepo repository.ContactPersonRepository
	resolver    *ParentResolver
}

// NewContactPersonUseCase construye el caso de uso.
func NewContactPersonUseCase(tx TxRunner, contactRepo repository.ContactPersonRepository, resolver *ParentResolver) *ContactPersonUseCase {
	return &ContactPersonUseCase{tx: tx, contactRepo: contactRepo, resolver: resolver}
}

// Add crea una persona de contacto ligada al padre. Si is_primary viene en true,
// primero limpia el primario de los hermanos dentro de la misma transacción.
// Padres de tipo individual devuelven ErrInvalidContactPerson sin insertar nada.
func (uc *ContactPersonUseCase) Add(ctx context.Context, actor *authz.Actor, in dto.CreateContactPersonRequest) (*dto.ContactPersonResponse, error) {
	if !actor.Can(domain.PermManageContactPersons) {
		return nil, domain.ErrForbidden
	}
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	ref := entity.ParentRef{Kind: entity.ParentKind(in.ParentType), ID: in.ParentID}
	parent, err := uc.resolver.Resolve(ref)
	if err != nil {
		return nil, err
	}
	// El permiso ya pasó: si el predicado falla es por el tipo de entidad del padre.
	if !authz.CanCreateContactPerson(actor, parent.EntityType) {
		return nil, domain.ErrInvalidContactPerson
	}

	now := time.Now()
	contact := &entity.ContactPerson{
		ID:          uuid.New().String(),
		Parent:      ref,
		Name:        in.Name,
		Email:       in.Email,
		Mobile:      in.Mobile,
		Designation: in.Designation,
		IsPrimary:   in.IsPrimary,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	err = uc.tx.RunContacts(ctx, func(contactRepo repository.ContactPersonRepository) error {
		if err := contactRepo.LockParent(ref); err != nil {
			return err
		}
		if in.IsPrimary {
			if err := contactRepo.ClearPrimary(ref); err != nil {
				return err
			}
		}
		return contactRepo.Create(contact)
	})
	if err != nil {
		return nil, err
	}
	return contactToResponse(contact), nil
}

// Update edita nombre/email/móvil/cargo. is_primary no se toca aquí: eso va por
// SetPrimary. El padre es inmutable después de la creación.
func (uc *ContactPersonUseCase) Update(ctx context.Context, actor *authz.Actor, id string, in dto.UpdateContactPersonRequest) (*dto.ContactPersonResponse, error) {
	if !actor.Can(domain.PermManageContactPersons) {
		return nil, domain.ErrForbidden
	}
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	contact, err := uc.contactRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, domain.ErrNotFound
	}
	contact.Name = in.Name
	contact.Email = in.Email
	contact.Mobile = in.Mobile
	contact.Designation = in.Designation
	contact.UpdatedAt = time.Now()
	if err := uc.contactRepo.Update(contact); err != nil {
		return nil, err
	}
	return contactToResponse(contact), nil
}

// SetPrimary designa el contacto como primario: limpia el primario de todos los
// hermanos y lo marca, bajo el lock del padre. Idempotente.
func (uc *ContactPersonUseCase) SetPrimary(ctx context.Context, actor *authz.Actor, id string) (*dto.ContactPersonResponse, error) {
	if !actor.Can(domain.PermManageContactPersons) {
		return nil, domain.ErrForbidden
	}
	contact, err := uc.contactRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, domain.ErrNotFound
	}
	err = uc.tx.RunContacts(ctx, func(contactRepo repository.ContactPersonRepository) error {
		if err := contactRepo.LockParent(contact.Parent); err != nil {
			return err
		}
		if err := contactRepo.ClearPrimary(contact.Parent); err != nil {
			return err
		}
		contact.IsPrimary = true
		contact.UpdatedAt = time.Now()
		return contactRepo.Update(contact)
	})
	if err != nil {
		return nil, err
	}
	return contactToResponse(contact), nil
}

// Delete elimina el contacto (hard delete). No reasigna el primario: un padre
// puede quedar sin contacto primario y es un estado válido.
func (uc *ContactPersonUseCase) Delete(ctx context.Context, actor *authz.Actor, id string) error {
	if !actor.Can(domain.PermManageContactPersons) {
		return domain.ErrForbidden
	}
	contact, err := uc.contactRepo.GetByID(id)
	if err != nil {
		return err
	}
	if contact == nil {
		return domain.ErrNotFound
	}
	return uc.contactRepo.Delete(id)
}

// ListByParent lista los contactos del padre.
func (uc *ContactPersonUseCase) ListByParent(actor *authz.Actor, parentType, parentID string) ([]*dto.ContactPersonResponse, error) {
	if !actor.Can(domain.PermViewContactPersons) {
		return nil, domain.ErrForbidden
	}
	ref := entity.ParentRef{Kind: entity.ParentKind(parentType), ID: parentID}
	if _, err := uc.resolver.Resolve(ref); err != nil {
		return nil, err
	}
	list, err := uc.contactRepo.ListByParent(ref)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ContactPersonResponse, 0, len(list))
	for _, c := range list {
		out = append(out, contactToResponse(c))
	}
	return out, nil
}

// contactToResponse mapea la entidad a DTO de salida.
func contactToResponse(c *entity.ContactPerson) *dto.ContactPersonResponse {
	if c == nil {
		return nil
	}
	return &dto.ContactPersonResponse{
		ID:          c.ID,
		ParentType:  string(c.Parent.Kind),
		ParentID:    c.Parent.ID,
		Name:        c.Name,
		Email:       c.Email,
		Mobile:      c.Mobile,
		Designation: c.Designation,
		IsPrimary:   c.IsPrimary,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
