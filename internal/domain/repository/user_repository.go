package repository

import "github.com/tu-usuario/crm-pro/internal/domain/entity"

// UserRepository define el puerto de persistencia para User.
// Delete es hard delete.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	List(limit, offset int) ([]*entity.User, error)
	Update(user *entity.User) error
	Delete(id string) error
}
