package authz

import (
	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
)

// Predicados de autorización por entidad. Son funciones puras de
// (actor, objetivo) → bool; se evalúan antes de ejecutar cualquier mutación.
// Las precondiciones de entidad (lead convertible, seguimiento pendiente,
// padre de tipo business) se comprueban aquí además de en el servicio, para
// que el rechazo aparezca como 403 antes de intentar el workflow.

// CanConvertLead requiere el permiso y que el lead sea convertible:
// estado won y sin customer que lo referencie.
func CanConvertLead(a *Actor, lead *entity.Lead, alreadyConverted bool) bool {
	return a.Can(domain.PermConvertLeads) && lead.IsWon() && !alreadyConverted
}

// CanCreateContactPerson requiere el permiso y que el padre sea de tipo business.
func CanCreateContactPerson(a *Actor, parentEntityType string) bool {
	return a.Can(domain.PermManageContactPersons) && parentEntityType == entity.EntityTypeBusiness
}

// CanCompleteFollowUp requiere el permiso y que el seguimiento esté pendiente.
func CanCompleteFollowUp(a *Actor, f *entity.FollowUp) bool {
	return a.Can(domain.PermCompleteFollowUps) && f.IsPending()
}

// CanViewUser un usuario siempre puede ver su propio registro.
func CanViewUser(a *Actor, targetUserID string) bool {
	return a.Can(domain.PermViewUsers) || a.UserID == targetUserID
}

// CanUpdateUser un usuario siempre puede editar su propio registro.
func CanUpdateUser(a *Actor, targetUserID string) bool {
	return a.Can(domain.PermEditUsers) || a.UserID == targetUserID
}

// CanDeleteUser un usuario nunca puede eliminarse a sí mismo.
func CanDeleteUser(a *Actor, targetUserID string) bool {
	return a.Can(domain.PermDeleteUsers) && a.UserID != targetUserID
}

// CanDeleteRole los roles de sistema no se eliminan, con o sin permiso.
func CanDeleteRole(a *Actor, role *entity.Role) bool {
	return a.Can(domain.PermDeleteRoles) && !domain.IsSystemRole(role.Name)
}
