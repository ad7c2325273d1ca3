package entity

import "time"

// Estados válidos de un user.
const (
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
)

// ValidUserStatus informa si el estado es válido.
func ValidUserStatus(s string) bool {
	return s == UserStatusActive || s == UserStatusInactive
}

// User usuario del sistema. Tiene cero o más roles; su permiso efectivo es la
// unión de los permisos de sus roles (ver authz.Actor).
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Status       string // active | inactive
	Roles        []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasRole informa si el usuario tiene el rol indicado.
func (u *User) HasRole(name string) bool {
	for _, r := range u.Roles {
		if r == name {
			return true
		}
	}
	return false
}
