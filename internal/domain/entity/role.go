package entity

import "time"

// Role conjunto nombrado de permisos. Los roles base se siembran al arrancar
// desde el catálogo estático (domain.BaselineRoleGrants).
type Role struct {
	ID          string
	Name        string
	Description string
	Permissions []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HasPermission informa si el rol otorga el permiso indicado.
func (r *Role) HasPermission(name string) bool {
	for _, p := range r.Permissions {
		if p == name {
			return true
		}
	}
	return false
}
